package ports

import (
	"context"

	"github.com/sustainastock/sustainastock-ui/internal/domain/model"
)

// FlashStore holds one-shot notifications between a form POST and the redirected GET.
type FlashStore interface {
	// Put stores n and returns the id to hand to the browser.
	Put(ctx context.Context, n model.Notification) (string, error)
	// Take returns and removes the notification; ok is false when it is gone or expired.
	Take(ctx context.Context, id string) (n model.Notification, ok bool, err error)
}
