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

// RequestRewriterBuilder contains the data and logic needed to create a request rewriter.
type RequestRewriterBuilder struct {
	logger *slog.Logger
}

// RequestRewriter replaces the index targets embedded in a request with the name of the tenant index, across all the
// request types that the dashboards front end is known to send.
type RequestRewriter struct {
	logger      *slog.Logger
	provisioner *IndexProvisioner
}

// NewRequestRewriter creates a builder that can then be used to configure and create a request rewriter.
func NewRequestRewriter() *RequestRewriterBuilder {
	return &RequestRewriterBuilder{}
}

// SetLogger sets the logger that will be used to write to the log. This is mandatory.
func (b *RequestRewriterBuilder) SetLogger(value *slog.Logger) *RequestRewriterBuilder {
	b.logger = value
	return b
}

// Build uses the data stored in the builder to create a new request rewriter.
func (b *RequestRewriterBuilder) Build() (result *RequestRewriter, err error) {
	// Check that the logger has been set:
	if b.logger == nil {
		err = errors.New("logger is mandatory")
		return
	}

	// Create the provisioner:
	provisioner, err := NewIndexProvisioner().
		SetLogger(b.logger).
		Build()
	if err != nil {
		return
	}

	// Create the rewriter:
	result = &RequestRewriter{
		logger:      b.logger,
		provisioner: provisioner,
	}
	return
}

// Rewrite replaces the index targets of the request, so that what used to point to the shared index points to the
// tenant index instead. It returns the request that creates the tenant index when the rewrite introduced a write to
// an index that doesn't exist in the namespace snapshot, and nil otherwise.
//
// Requests of unknown types are returned unmodified, with a warning: the access decision was already made by the
// caller, so an unknown type here means the request proceeds without the rewrite. Keeping the dispatch below
// exhaustive over the types of the requests package is what guards against that.
func (r *RequestRewriter) Rewrite(ctx context.Context, request requests.Request, snapshot *cluster.Snapshot,
	oldName, newName string) *requests.CreateIndexRequest {
	r.logger.DebugContext(
		ctx,
		"Replacing index in request",
		slog.String("kind", request.Kind()),
		slog.String("old", oldName),
		slog.String("new", newName),
	)

	var create *requests.CreateIndexRequest
	switch typed := request.(type) {
	case *requests.CreateIndexRequest:
		// Use the new name for the alias and the suffixed form for the concrete index:
		typed.SetIndex(newName + tenantIndexSuffix)
		typed.SetAlias(newName)
	case *requests.BulkRequest:
		for _, item := range typed.Requests() {
			switch item.(type) {
			case *requests.IndexRequest:
				// The first document write in the batch decides whether the tenant index needs to
				// be created:
				if create == nil {
					create = r.provisioner.BuildIfAbsent(ctx, snapshot, newName)
				}
			}
			item.SetIndex(newName)
		}
	case *requests.MultiGetRequest:
		for _, item := range typed.Items() {
			item.SetIndex(newName)
		}
	case *requests.MultiSearchRequest:
		for _, item := range typed.Requests() {
			item.SetIndices(newName)
		}
	case *requests.MultiTermVectorsRequest:
		for _, item := range typed.Requests() {
			item.SetIndex(newName)
		}
	case *requests.IndexRequest:
		create = r.provisioner.BuildIfAbsent(ctx, snapshot, newName)
		typed.SetIndex(newName)
	case *requests.DeleteRequest:
		typed.SetIndex(newName)
	case *requests.UpdateRequest:
		typed.SetIndex(newName)
	case *requests.RefreshRequest:
		typed.SetIndices(newName)
	case *requests.GetFieldMappingsRequest, *requests.GetFieldMappingsIndexRequest:
		// Read only and already resolved, nothing to replace.
	case requests.IndexSettable:
		typed.SetIndex(newName)
	case requests.IndicesReplaceable:
		typed.SetIndices(newName)
	default:
		r.logger.WarnContext(
			ctx,
			"Don't know how to replace the index of this request",
			slog.String("kind", request.Kind()),
		)
	}
	return create
}
