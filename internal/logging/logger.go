/*
Copyright (c) 2025 Red Hat Inc.

Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the
License. You may obtain a copy of the License at

  http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
"AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the specific
language governing permissions and limitations under the License.
*/

package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// LoggerBuilder contains the data and logic needed to create a logger.
type LoggerBuilder struct {
	level  string
	writer io.Writer
}

// NewLogger creates a builder that can then be used to configure and create a logger.
func NewLogger() *LoggerBuilder {
	return &LoggerBuilder{
		level: slog.LevelInfo.String(),
	}
}

// SetLevel sets the log level. Valid values are 'debug', 'info', 'warn' and 'error', ignoring case. The default is
// 'info'.
func (b *LoggerBuilder) SetLevel(value string) *LoggerBuilder {
	b.level = value
	return b
}

// SetWriter sets the writer that the logger will write to. The default is the standard error stream.
func (b *LoggerBuilder) SetWriter(value io.Writer) *LoggerBuilder {
	b.writer = value
	return b
}

// Build uses the data stored in the builder to create and configure a new logger.
func (b *LoggerBuilder) Build() (result *slog.Logger, err error) {
	// Check parameters:
	if b.level == "" {
		err = errors.New("level is mandatory")
		return
	}

	// Parse the level:
	var level slog.Level
	err = level.UnmarshalText([]byte(b.level))
	if err != nil {
		err = fmt.Errorf("level '%s' isn't valid: %w", b.level, err)
		return
	}

	// Select the writer:
	writer := b.writer
	if writer == nil {
		writer = os.Stderr
	}

	// Create the logger:
	handler := slog.NewTextHandler(writer, &slog.HandlerOptions{
		Level: level,
	})
	result = slog.New(handler)
	return
}
