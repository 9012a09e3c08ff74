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
	"context"
	"errors"
	"log/slog"

	"github.com/hardik-k-shah/security/internal/cluster"
	"github.com/hardik-k-shah/security/internal/requests"
)

// tenantIndexSuffix is appended to the tenant index name to form the name of the concrete index, leaving the plain
// name free to be used as an alias.
const tenantIndexSuffix = "_1"

// tenantIndexSettings are the settings used when creating tenant indexes.
var tenantIndexSettings = map[string]string{
	"index.number_of_shards":     "1",
	"index.auto_expand_replicas": "0-1",
}

// IndexProvisionerBuilder contains the data and logic needed to create an index provisioner.
type IndexProvisionerBuilder struct {
	logger *slog.Logger
}

// IndexProvisioner builds the request that creates a tenant index when it doesn't exist yet.
type IndexProvisioner struct {
	logger *slog.Logger
}

// NewIndexProvisioner creates a builder that can then be used to configure and create an index provisioner.
func NewIndexProvisioner() *IndexProvisionerBuilder {
	return &IndexProvisionerBuilder{}
}

// SetLogger sets the logger that will be used to write to the log. This is mandatory.
func (b *IndexProvisionerBuilder) SetLogger(value *slog.Logger) *IndexProvisionerBuilder {
	b.logger = value
	return b
}

// Build uses the data stored in the builder to create a new index provisioner.
func (b *IndexProvisionerBuilder) Build() (result *IndexProvisioner, err error) {
	// Check that the logger has been set:
	if b.logger == nil {
		err = errors.New("logger is mandatory")
		return
	}

	// Create the provisioner:
	result = &IndexProvisioner{
		logger: b.logger,
	}
	return
}

// BuildIfAbsent returns the request that creates the tenant index with the given name, or nil if the name, or the
// concrete name with the suffix, already exists in the namespace snapshot. The snapshot may be stale: a concurrent
// evaluation may have created the index already, so the executor of the returned request must treat an "already
// exists" outcome as success.
func (p *IndexProvisioner) BuildIfAbsent(ctx context.Context, snapshot *cluster.Snapshot,
	name string) *requests.CreateIndexRequest {
	concrete := name + tenantIndexSuffix
	for _, candidate := range []string{name, concrete} {
		entry, ok := snapshot.Lookup(candidate)
		if ok {
			p.logger.DebugContext(
				ctx,
				"Tenant index already exists",
				slog.String("kind", string(entry.Kind)),
				slog.String("name", entry.Name),
			)
			return nil
		}
	}
	return requests.NewCreateIndexRequest(concrete).
		SetAlias(name).
		SetSettings(tenantIndexSettings)
}
