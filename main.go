/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/hardik-k-shah/security/internal/cmd"
	"github.com/hardik-k-shah/security/internal/version"
)

func main() {
	// Create the root command:
	root := &cobra.Command{
		Use:           "security",
		Short:         "Dashboards multitenancy tools",
		Version:       version.Get(),
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Add the sub-commands:
	root.AddCommand(cmd.NewTenantIndexCommand())
	root.AddCommand(cmd.NewCheckAccessCommand())

	// Execute the root command:
	err := root.Execute()
	if err != nil {
		os.Exit(1)
	}
}
