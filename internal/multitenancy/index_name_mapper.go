/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package multitenancy

import (
	"fmt"
	"hash/fnv"
	"regexp"
	"strings"
)

// TenantIndexName returns the name of the private index of the given tenant, derived from the name of the shared
// dashboards index. The result is `<index>_<hash>_<sanitized tenant>`, where the hash is the FNV-1a checksum of the
// tenant identifier, in decimal. The checksum keeps tenants apart when their sanitized forms coincide, for example
// tenants that differ only in punctuation, and it must stay stable across processes and releases because the
// resulting names are persisted in the cluster.
func TenantIndexName(index, tenant string) (result string, err error) {
	if tenant == "" {
		err = fmt.Errorf("tenant is mandatory to calculate the tenant index name for index '%s'", index)
		return
	}
	checksum := fnv.New32a()
	checksum.Write([]byte(tenant))
	sanitized := tenantIndexNameSanitizeRegex.ReplaceAllString(strings.ToLower(tenant), "")
	result = fmt.Sprintf("%s_%d_%s", index, checksum.Sum32(), sanitized)
	return
}

// tenantIndexNameSanitizeRegex matches the characters that are stripped from tenant identifiers when they are used
// as part of an index name.
var tenantIndexNameSanitizeRegex = regexp.MustCompile(`[^a-z0-9]+`)
