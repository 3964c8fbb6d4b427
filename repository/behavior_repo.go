package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"energy_recommend/db"
	"energy_recommend/models"
)

// BehaviorRepo 用户行为日志的MySQL实现，只追加与窗口查询，从不更新
type BehaviorRepo struct{}

func NewBehaviorRepo() *BehaviorRepo {
	return &BehaviorRepo{}
}

// Insert 追加一条行为事件，ID与时间戳缺省时自动补齐
func (r *BehaviorRepo) Insert(ctx context.Context, event *models.BehaviorEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_, err := db.DB.ExecContext(ctx, `
		INSERT INTO user_behaviors (id, user_id, action, content_id, duration, timestamp)
		VALUES (?, ?, ?, ?, ?, ?)
	`, event.ID, event.UserID, string(event.Action), event.ContentID, event.Duration, event.Timestamp)
	return err
}

// EventsSince 返回用户自 since 起的全部行为事件，按时间升序
func (r *BehaviorRepo) EventsSince(ctx context.Context, userID string, since time.Time) ([]models.BehaviorEvent, error) {
	rows, err := db.DB.QueryContext(ctx, `
		SELECT id, user_id, action, content_id, duration, timestamp
		FROM user_behaviors
		WHERE user_id = ? AND timestamp >= ?
		ORDER BY timestamp ASC
	`, userID, since)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]models.BehaviorEvent, 0)
	for rows.Next() {
		var e models.BehaviorEvent
		var duration sql.NullInt64
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.ContentID, &duration, &e.Timestamp); err != nil {
			continue
		}
		e.Duration = int(duration.Int64)
		events = append(events, e)
	}
	return events, rows.Err()
}
