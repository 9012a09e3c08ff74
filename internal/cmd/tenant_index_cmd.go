/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hardik-k-shah/security/internal/config"
	"github.com/hardik-k-shah/security/internal/multitenancy"
)

// NewTenantIndexCommand creates and returns the `tenant-index` command.
func NewTenantIndexCommand() *cobra.Command {
	runner := &tenantIndexCommandRunner{}
	command := &cobra.Command{
		Use:   "tenant-index",
		Short: "Calculates the name of the private index of a tenant",
		Args:  cobra.NoArgs,
		RunE:  runner.run,
	}
	flags := command.Flags()
	flags.StringVar(
		&runner.args.index,
		"index",
		config.DefaultIndexName,
		"Name of the shared dashboards index.",
	)
	flags.StringVar(
		&runner.args.tenant,
		"tenant",
		"",
		"Tenant identifier.",
	)
	return command
}

// tenantIndexCommandRunner contains the data and logic needed to run the `tenant-index` command.
type tenantIndexCommandRunner struct {
	args struct {
		index  string
		tenant string
	}
}

// run runs the `tenant-index` command.
func (c *tenantIndexCommandRunner) run(cmd *cobra.Command, argv []string) error {
	name, err := multitenancy.TenantIndexName(c.args.index, c.args.tenant)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), name)
	return err
}
