package ports

import (
	"context"

	"github.com/99minutos/tracking-demo/internal/core/domain"
)

// Notifier delivers user-facing notifications. Implementations must not
// block the caller on slow consumers.
type Notifier interface {
	Notify(ctx context.Context, n domain.Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, n domain.Notification)

func (f NotifierFunc) Notify(ctx context.Context, n domain.Notification) { f(ctx, n) }
