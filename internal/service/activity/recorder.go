package activity

import (
	"context"
	"log/slog"

	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
)

type recorder struct {
	activityLogRepo activity.ActivityLogRepository
	logger          *slog.Logger
}

func NewRecorder(activityLogRepo activity.ActivityLogRepository, logger *slog.Logger) activity.Recorder {
	return &recorder{
		activityLogRepo: activityLogRepo,
		logger:          logger,
	}
}

func (r *recorder) Record(ctx context.Context, entry activity.Entry) {
	if err := r.activityLogRepo.Create(ctx, &entry); err != nil {
		r.logger.ErrorContext(ctx, "failed to record activity",
			slog.String("action", string(entry.Action)),
			slog.String("actor_id", entry.ActorID),
			slog.Any("error", err),
		)
	}
}
