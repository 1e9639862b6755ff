package admin

import (
	"context"

	"plastic-world/internal/model"
)

// StaticPrompter answers every prompt with pre-decided answers. The HTTP
// layer builds one from the decisions carried in each request.
type StaticPrompter struct {
	LocalSave Decision
	Delete    Decision
}

// ConfirmLocalSave returns the pre-decided local-save answer.
func (p StaticPrompter) ConfirmLocalSave(ctx context.Context, reason string) Decision {
	return p.LocalSave
}

// ConfirmDelete returns the pre-decided delete answer.
func (p StaticPrompter) ConfirmDelete(ctx context.Context, product model.Product) Decision {
	return p.Delete
}

// ParseDecision maps the wire value to a Decision; anything other than
// "proceed" aborts.
func ParseDecision(s string) Decision {
	if s == "proceed" {
		return Proceed
	}
	return Abort
}
