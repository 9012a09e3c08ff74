/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package config

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the point in time multitenancy configuration that the caller passes into each evaluation.
type Config struct {
	// MultitenancyEnabled indicates if dashboards multitenancy is enabled. When disabled the interceptor lets
	// every request continue through the regular evaluation flow.
	MultitenancyEnabled bool `yaml:"multitenancy_enabled"`

	// ServerUsername is the name of the distinguished dashboards server user. Requests made by it are never
	// rewritten.
	ServerUsername string `yaml:"server_username"`

	// IndexName is the name of the shared dashboards index, or of the alias pointing to it.
	IndexName string `yaml:"index_name"`
}

// Default values, matching what dashboards deployments historically used.
const (
	DefaultServerUsername = "kibanaserver"
	DefaultIndexName      = ".kibana"
)

// LoaderBuilder contains the data and logic needed to load the configuration.
type LoaderBuilder struct {
	logger *slog.Logger
	file   string
	data   []byte
}

// NewLoader creates a builder that can then be used to configure and load the configuration.
func NewLoader() *LoaderBuilder {
	return &LoaderBuilder{}
}

// SetLogger sets the logger that will be used to write to the log. This is mandatory.
func (b *LoaderBuilder) SetLogger(value *slog.Logger) *LoaderBuilder {
	b.logger = value
	return b
}

// SetFile sets the configuration file to load. This is optional; without a file or data the defaults are returned.
func (b *LoaderBuilder) SetFile(value string) *LoaderBuilder {
	b.file = value
	return b
}

// SetData sets the configuration document to load. This is optional, and intended mostly for tests.
func (b *LoaderBuilder) SetData(value []byte) *LoaderBuilder {
	b.data = value
	return b
}

// Build loads and validates the configuration.
func (b *LoaderBuilder) Build() (result *Config, err error) {
	// Check parameters:
	if b.logger == nil {
		err = errors.New("logger is mandatory")
		return
	}
	if b.file != "" && b.data != nil {
		err = errors.New("file and data are mutually exclusive")
		return
	}

	// Start with the defaults, so that values absent from the document are preserved:
	config := &Config{
		MultitenancyEnabled: true,
		ServerUsername:      DefaultServerUsername,
		IndexName:           DefaultIndexName,
	}

	// Read the document, if there is one:
	data := b.data
	if b.file != "" {
		data, err = os.ReadFile(b.file)
		if err != nil {
			err = fmt.Errorf("failed to read configuration file '%s': %w", b.file, err)
			return
		}
	}
	if data != nil {
		decoder := yaml.NewDecoder(bytes.NewReader(data))
		decoder.KnownFields(true)
		err = decoder.Decode(config)
		if err != nil {
			err = fmt.Errorf("failed to parse configuration: %w", err)
			return
		}
	}

	// Check the values:
	if config.ServerUsername == "" {
		err = errors.New("server username can't be empty")
		return
	}
	if config.IndexName == "" {
		err = errors.New("index name can't be empty")
		return
	}

	b.logger.Debug(
		"Loaded configuration",
		slog.Bool("multitenancy_enabled", config.MultitenancyEnabled),
		slog.String("server_username", config.ServerUsername),
		slog.String("index_name", config.IndexName),
	)
	result = config
	return
}
