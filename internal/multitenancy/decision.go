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
	"github.com/hardik-k-shah/security/internal/requests"
)

// Decision is the outcome of intercepting a request.
type Decision string

const (
	// DecisionContinue indicates that the interceptor took no position and the request must go through the
	// regular privilege evaluation flow, unmodified.
	DecisionContinue Decision = "continue"

	// DecisionDenied indicates that the request must be rejected with an authorization failure.
	DecisionDenied Decision = "denied"

	// DecisionGranted indicates that the request is allowed, possibly after having been rewritten to target a
	// tenant index.
	DecisionGranted Decision = "granted"
)

// Result is what the interceptor returns to the caller: the decision and, when access was granted with a rewrite,
// the optional request that creates the tenant index. The caller is responsible for executing the creation before or
// alongside the rewritten request.
type Result struct {
	// Decision is the outcome.
	Decision Decision

	// Create is the request that creates the missing tenant index, or nil when no creation is needed.
	Create *requests.CreateIndexRequest
}

var (
	// ContinueResult is the result used when the request must continue through the regular evaluation flow.
	ContinueResult = Result{Decision: DecisionContinue}

	// DeniedResult is the result used when the request must be rejected.
	DeniedResult = Result{Decision: DecisionDenied}

	// GrantedResult is the result used when the request is allowed and nothing needs to be created.
	GrantedResult = Result{Decision: DecisionGranted}
)
