package tx

import "context"

// Manager wraps operations that touch more than one store (sqlite row plus
// master.log line) behind one boundary.
type Manager interface {
	Within(ctx context.Context, fn func(context.Context) error) error
}

type NoopManager struct{}

func (NoopManager) Within(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}
