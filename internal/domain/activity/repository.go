package activity

import "context"

type ActivityLogRepository interface {
	Create(ctx context.Context, entry *Entry) error
	Recent(ctx context.Context, limit int) ([]Entry, error)
}
