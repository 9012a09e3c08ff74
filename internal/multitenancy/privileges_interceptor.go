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
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hardik-k-shah/security/internal/auth"
	"github.com/hardik-k-shah/security/internal/cluster"
	"github.com/hardik-k-shah/security/internal/config"
	"github.com/hardik-k-shah/security/internal/requests"
)

// PrivilegesInterceptorBuilder contains the data and logic needed to create a privileges interceptor.
type PrivilegesInterceptorBuilder struct {
	logger            *slog.Logger
	metricsSubsystem  string
	metricsRegisterer prometheus.Registerer
}

// PrivilegesInterceptor decides, for each intercepted storage request, whether to deny it, to transparently retarget
// it at the private index of the requested tenant, or to let it continue through the regular privilege evaluation
// flow. It holds no mutable state: every evaluation is a pure function of the request and of the snapshots supplied
// by the caller, so a single instance is safe for concurrent use from multiple request handling goroutines.
type PrivilegesInterceptor struct {
	logger    *slog.Logger
	checker   *TenantAccessChecker
	rewriter  *RequestRewriter
	decisions *prometheus.CounterVec
}

// NewPrivilegesInterceptor creates a builder that can then be used to configure and create a privileges interceptor.
func NewPrivilegesInterceptor() *PrivilegesInterceptorBuilder {
	return &PrivilegesInterceptorBuilder{}
}

// SetLogger sets the logger that will be used to write to the log. This is mandatory.
func (b *PrivilegesInterceptorBuilder) SetLogger(value *slog.Logger) *PrivilegesInterceptorBuilder {
	b.logger = value
	return b
}

// SetMetricsSubsystem sets the subsystem that will be used for metrics. This is optional, if not specified then no
// metrics will be collected.
func (b *PrivilegesInterceptorBuilder) SetMetricsSubsystem(value string) *PrivilegesInterceptorBuilder {
	b.metricsSubsystem = value
	return b
}

// SetMetricsRegisterer sets the metrics registry that will be used for metrics. This is optional, if not specified
// then the default metrics registry will be used.
func (b *PrivilegesInterceptorBuilder) SetMetricsRegisterer(value prometheus.Registerer) *PrivilegesInterceptorBuilder {
	b.metricsRegisterer = value
	return b
}

// Build uses the data stored in the builder to create and configure a new privileges interceptor.
func (b *PrivilegesInterceptorBuilder) Build() (result *PrivilegesInterceptor, err error) {
	// Check that the logger has been set:
	if b.logger == nil {
		err = errors.New("logger is mandatory")
		return
	}

	// Create the collaborators:
	checker, err := NewTenantAccessChecker().
		SetLogger(b.logger).
		Build()
	if err != nil {
		return
	}
	rewriter, err := NewRequestRewriter().
		SetLogger(b.logger).
		Build()
	if err != nil {
		return
	}

	// Create the metrics:
	var decisions *prometheus.CounterVec
	if b.metricsSubsystem != "" {
		decisions = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Subsystem: b.metricsSubsystem,
				Name:      "decisions_total",
				Help:      "Number of interception decisions, by outcome.",
			},
			[]string{"decision"},
		)
		registerer := b.metricsRegisterer
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}
		err = registerer.Register(decisions)
		if err != nil {
			var registered prometheus.AlreadyRegisteredError
			if errors.As(err, &registered) {
				decisions = registered.ExistingCollector.(*prometheus.CounterVec)
				err = nil
			} else {
				return
			}
		}
	}

	// Create the interceptor:
	result = &PrivilegesInterceptor{
		logger:    b.logger,
		checker:   checker,
		rewriter:  rewriter,
		decisions: decisions,
	}
	return
}

// Intercept evaluates one storage request. The caller supplies the action name, the authenticated user, the
// configuration, the resolved targets of the request, the tenant permissions table and a snapshot of the index
// namespace, all taken at a single point in time. When the returned decision is granted with a rewrite the request
// has been mutated in place, and the caller must execute the returned creation request, if any, before or alongside
// it.
func (i *PrivilegesInterceptor) Intercept(ctx context.Context, request requests.Request, action string,
	user *auth.User, cfg *config.Config, resolved cluster.Resolved, tenants auth.Permissions,
	snapshot *cluster.Snapshot) (result Result, err error) {
	result, err = i.intercept(ctx, request, action, user, cfg, resolved, tenants, snapshot)
	if err == nil && i.decisions != nil {
		i.decisions.WithLabelValues(string(result.Decision)).Inc()
	}
	return
}

func (i *PrivilegesInterceptor) intercept(ctx context.Context, request requests.Request, action string,
	user *auth.User, cfg *config.Config, resolved cluster.Resolved, tenants auth.Permissions,
	snapshot *cluster.Snapshot) (result Result, err error) {
	// When multitenancy is disabled the request goes through the regular evaluation flow:
	if !cfg.MultitenancyEnabled {
		result = ContinueResult
		return
	}

	requestedTenant := user.RequestedTenant
	i.logger.DebugContext(
		ctx,
		"Intercepting request",
		slog.String("kind", request.Kind()),
		slog.String("action", action),
		slog.String("user", user.Name),
		slog.String("requested_tenant", requestedTenant),
	)

	// Rewriting only applies when the request was not made by the dashboards server itself and the shared index
	// is the only index or alias involved:
	sharedIndexOnly := user.Name != cfg.ServerUsername && ResolvesToSharedIndex(resolved, cfg.IndexName)

	// Without a requested tenant the request targets the shared state, gated by the global tenant:
	if requestedTenant == "" {
		i.logger.DebugContext(
			ctx,
			"No tenant requested, resolving to the shared index",
			slog.String("index", cfg.IndexName),
		)
		if sharedIndexOnly && !i.checker.IsAllowed(ctx, user, action, tenants, auth.GlobalTenant) {
			result = DeniedResult
			return
		}
		result = ContinueResult
		return
	}

	// Replace the private tenant marker with the name of the user:
	if requestedTenant == auth.UserTenant {
		requestedTenant = user.Name
	}

	// If the request already targets only the tenant index there is nothing to rewrite:
	if user.Name != cfg.ServerUsername {
		var tenantIndex string
		tenantIndex, err = TenantIndexName(cfg.IndexName, requestedTenant)
		if err != nil {
			return
		}
		indices := resolved.Indices.Values()
		if len(indices) == 1 && strings.HasPrefix(indices[0], tenantIndex) &&
			i.checker.IsAllowed(ctx, user, action, tenants, requestedTenant) {
			result = GrantedResult
			return
		}
	}

	if sharedIndexOnly {
		if !i.checker.IsAllowed(ctx, user, action, tenants, requestedTenant) {
			result = DeniedResult
			return
		}
		var tenantIndex string
		tenantIndex, err = TenantIndexName(cfg.IndexName, requestedTenant)
		if err != nil {
			return
		}
		create := i.rewriter.Rewrite(ctx, request, snapshot, cfg.IndexName, tenantIndex)
		result = Result{
			Decision: DecisionGranted,
			Create:   create,
		}
		return
	}

	// The request touches the shared index together with unrelated indexes, or doesn't touch it at all. Tenant
	// isolation isn't enforced for such requests, they continue unmodified through the regular evaluation flow.
	if user.Name != cfg.ServerUsername {
		i.logger.DebugContext(
			ctx,
			"Not a request to only the shared index",
			slog.String("user", user.Name),
			slog.String("index", cfg.IndexName),
		)
	}
	result = ContinueResult
	return
}
