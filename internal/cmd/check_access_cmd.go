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
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/hardik-k-shah/security/internal/auth"
	"github.com/hardik-k-shah/security/internal/cluster"
	"github.com/hardik-k-shah/security/internal/config"
	"github.com/hardik-k-shah/security/internal/logging"
	"github.com/hardik-k-shah/security/internal/multitenancy"
	"github.com/hardik-k-shah/security/internal/requests"
)

// NewCheckAccessCommand creates and returns the `check-access` command. It evaluates one interception decision from
// a YAML fixture, as a dry run: nothing is executed against any cluster.
func NewCheckAccessCommand() *cobra.Command {
	runner := &checkAccessCommandRunner{}
	command := &cobra.Command{
		Use:   "check-access",
		Short: "Evaluates an interception decision from a fixture file",
		Args:  cobra.NoArgs,
		RunE:  runner.run,
	}
	flags := command.Flags()
	flags.StringVar(
		&runner.args.file,
		"file",
		"",
		"File containing the fixture to evaluate.",
	)
	flags.StringVar(
		&runner.args.logLevel,
		"log-level",
		"info",
		"Log level.",
	)
	return command
}

// checkAccessCommandRunner contains the data and logic needed to run the `check-access` command.
type checkAccessCommandRunner struct {
	args struct {
		file     string
		logLevel string
	}
}

// checkAccessFixture is the YAML document that describes one request evaluation.
type checkAccessFixture struct {
	Action string    `yaml:"action"`
	User   auth.User `yaml:"user"`
	Config struct {
		MultitenancyEnabled *bool  `yaml:"multitenancy_enabled"`
		ServerUsername      string `yaml:"server_username"`
		IndexName           string `yaml:"index_name"`
	} `yaml:"config"`
	Resolved struct {
		Indices []string `yaml:"indices"`
		Aliases []string `yaml:"aliases"`
	} `yaml:"resolved"`
	Tenants   map[string]bool `yaml:"tenants"`
	Namespace struct {
		Indices []string `yaml:"indices"`
		Aliases []string `yaml:"aliases"`
	} `yaml:"namespace"`
	Request struct {
		Kind    string   `yaml:"kind"`
		Index   string   `yaml:"index"`
		ID      string   `yaml:"id"`
		Indices []string `yaml:"indices"`
	} `yaml:"request"`
}

// run runs the `check-access` command.
func (c *checkAccessCommandRunner) run(cmd *cobra.Command, argv []string) error {
	// Get the context:
	ctx := cmd.Context()

	// Check the flags:
	if c.args.file == "" {
		return fmt.Errorf("the '--file' flag is mandatory")
	}

	// Create the logger:
	logger, err := logging.NewLogger().
		SetLevel(c.args.logLevel).
		Build()
	if err != nil {
		return err
	}

	// Load the fixture:
	data, err := os.ReadFile(c.args.file)
	if err != nil {
		return fmt.Errorf("failed to read fixture file '%s': %w", c.args.file, err)
	}
	fixture := &checkAccessFixture{}
	err = yaml.Unmarshal(data, fixture)
	if err != nil {
		return fmt.Errorf("failed to parse fixture file '%s': %w", c.args.file, err)
	}

	// Apply the configuration defaults:
	cfg := &config.Config{
		MultitenancyEnabled: true,
		ServerUsername:      config.DefaultServerUsername,
		IndexName:           config.DefaultIndexName,
	}
	if fixture.Config.MultitenancyEnabled != nil {
		cfg.MultitenancyEnabled = *fixture.Config.MultitenancyEnabled
	}
	if fixture.Config.ServerUsername != "" {
		cfg.ServerUsername = fixture.Config.ServerUsername
	}
	if fixture.Config.IndexName != "" {
		cfg.IndexName = fixture.Config.IndexName
	}

	// Build the request:
	request, err := c.buildRequest(fixture)
	if err != nil {
		return err
	}

	// Build the namespace snapshot:
	builder := cluster.NewSnapshot()
	for _, name := range fixture.Namespace.Indices {
		builder.AddIndex(name)
	}
	for _, name := range fixture.Namespace.Aliases {
		builder.AddAlias(name)
	}
	snapshot, err := builder.Build()
	if err != nil {
		return err
	}

	// Create the interceptor and evaluate the decision:
	interceptor, err := multitenancy.NewPrivilegesInterceptor().
		SetLogger(logger).
		Build()
	if err != nil {
		return err
	}
	resolved := cluster.NewResolved(fixture.Resolved.Indices, fixture.Resolved.Aliases)
	result, err := interceptor.Intercept(
		ctx, request, fixture.Action, &fixture.User, cfg, resolved, fixture.Tenants, snapshot,
	)
	if err != nil {
		return err
	}

	// Write the outcome:
	out := cmd.OutOrStdout()
	_, err = fmt.Fprintf(out, "decision: %s\n", result.Decision)
	if err != nil {
		return err
	}
	if settable, ok := request.(requests.IndexSettable); ok {
		_, err = fmt.Fprintf(out, "index: %s\n", settable.Index())
		if err != nil {
			return err
		}
	}
	if replaceable, ok := request.(requests.IndicesReplaceable); ok {
		_, err = fmt.Fprintf(out, "indices: %v\n", replaceable.Indices())
		if err != nil {
			return err
		}
	}
	if result.Create != nil {
		_, err = fmt.Fprintf(
			out, "create: %s (alias %s)\n",
			result.Create.Index(), result.Create.Alias(),
		)
		if err != nil {
			return err
		}
	}
	return nil
}

// buildRequest builds the request described by the fixture.
func (c *checkAccessCommandRunner) buildRequest(fixture *checkAccessFixture) (result requests.Request, err error) {
	switch fixture.Request.Kind {
	case "index":
		result = requests.NewIndexRequest(fixture.Request.Index, fixture.Request.ID)
	case "delete":
		result = requests.NewDeleteRequest(fixture.Request.Index, fixture.Request.ID)
	case "update":
		result = requests.NewUpdateRequest(fixture.Request.Index, fixture.Request.ID)
	case "get":
		result = requests.NewGetRequest(fixture.Request.Index, fixture.Request.ID)
	case "search":
		result = requests.NewSearchRequest(fixture.Request.Indices...)
	case "refresh":
		result = requests.NewRefreshRequest(fixture.Request.Indices...)
	case "create_index":
		result = requests.NewCreateIndexRequest(fixture.Request.Index)
	default:
		err = fmt.Errorf("unknown request kind '%s'", fixture.Request.Kind)
	}
	return
}
