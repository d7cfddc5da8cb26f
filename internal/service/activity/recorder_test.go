package activity

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
)

type fakeActivityLogRepo struct {
	entries   []activity.Entry
	createErr error
}

func (f *fakeActivityLogRepo) Create(_ context.Context, entry *activity.Entry) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeActivityLogRepo) Recent(_ context.Context, limit int) ([]activity.Entry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func TestRecord(t *testing.T) {
	logger := slog.New(slog.DiscardHandler)

	t.Run("appends the entry", func(t *testing.T) {
		repo := &fakeActivityLogRepo{}
		rec := NewRecorder(repo, logger)

		rec.Record(context.Background(), activity.Entry{
			ActorID: "user-1",
			Action:  activity.ActionAttendanceCheckIn,
		})

		assert.Len(t, repo.entries, 1)
	})

	t.Run("a failing writer does not panic or propagate", func(t *testing.T) {
		repo := &fakeActivityLogRepo{createErr: errors.New("connection refused")}
		rec := NewRecorder(repo, logger)

		assert.NotPanics(t, func() {
			rec.Record(context.Background(), activity.Entry{
				ActorID: "user-1",
				Action:  activity.ActionAttendanceCheckOut,
			})
		})
		assert.Empty(t, repo.entries)
	})
}
