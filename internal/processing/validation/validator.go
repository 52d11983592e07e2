// Package validation holds the per-product rule sets. Rules are declared in
// order and evaluated in order; the first violation is the one surfaced to
// the caller, so declaration order is part of the contract.
package validation

import (
	"context"

	"onboard/internal/processing/models"
)

// Violation is a (code, message) pair produced by a failed rule.
type Violation struct {
	Code    string
	Message string
}

// Validator evaluates a product's rule set against an application and returns
// the violations in rule-declaration order.
type Validator interface {
	Validate(ctx context.Context, app models.Application) []Violation
}
