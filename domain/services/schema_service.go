package services

import "context"

// SchemaService owns the idempotent schema bootstrap: safe to invoke any
// number of times, partial application self-heals on retry.
type SchemaService interface {
	Bootstrap(ctx context.Context) error
}
