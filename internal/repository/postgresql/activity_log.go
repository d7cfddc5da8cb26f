package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/workpulse/hrms-backend-go/internal/domain/activity"
	"github.com/workpulse/hrms-backend-go/internal/pkg/database"
)

type activityLogRepository struct {
	db *database.DB
}

func NewActivityLogRepository(db *database.DB) activity.ActivityLogRepository {
	return &activityLogRepository{db: db}
}

// Create implements activity.ActivityLogRepository.
func (r *activityLogRepository) Create(ctx context.Context, entry *activity.Entry) error {
	q := GetQuerier(ctx, r.db)

	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	query := `
		INSERT INTO activity_logs (
			id, actor_id, action, entity_type, entity_id, details
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		entry.ID,
		entry.ActorID,
		entry.Action,
		entry.EntityType,
		entry.EntityID,
		entry.Details,
	).Scan(&entry.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to create activity log: %w", err)
	}

	return nil
}

// Recent implements activity.ActivityLogRepository.
func (r *activityLogRepository) Recent(ctx context.Context, limit int) ([]activity.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.actor_id, a.action, a.entity_type, a.entity_id, a.details, a.created_at,
			   e.full_name AS actor_name,
			   u.role AS actor_role
		FROM activity_logs a
		LEFT JOIN users u ON u.id = a.actor_id
		LEFT JOIN employees e ON e.id = u.employee_id
		ORDER BY a.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activity logs: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		err := rows.Scan(
			&entry.ID, &entry.ActorID, &entry.Action, &entry.EntityType, &entry.EntityID,
			&entry.Details, &entry.CreatedAt,
			&entry.ActorName, &entry.ActorRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}
