package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	db "github.com/deliveryease/dispatch/db/sqlc"
)

const (
	TaskSendNotification = "notification:send"
)

// SendNotificationPayload 发送通知任务载荷
type SendNotificationPayload struct {
	DriverID    int64  `json:"driver_id"`
	Type        string `json:"type"` // assignment/delivery/system
	Title       string `json:"title"`
	Content     string `json:"content"`
	RelatedType string `json:"related_type,omitempty"` // batch/order
	RelatedID   int64  `json:"related_id,omitempty"`
}

// DistributeTaskSendNotification 分发发送通知任务
func (distributor *RedisTaskDistributor) DistributeTaskSendNotification(
	ctx context.Context,
	payload *SendNotificationPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskSendNotification, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("driver_id", payload.DriverID).
		Str("notification_type", payload.Type).
		Msg("enqueued notification task")

	return nil
}

// ProcessTaskSendNotification 处理发送通知任务
func (processor *RedisTaskProcessor) ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error {
	var payload SendNotificationPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	createParams := db.CreateNotificationParams{
		Type:    payload.Type,
		Title:   payload.Title,
		Content: payload.Content,
	}
	if payload.DriverID > 0 {
		createParams.DriverID = pgtype.Int8{Int64: payload.DriverID, Valid: true}
	}
	if payload.RelatedType != "" {
		createParams.RelatedType = pgtype.Text{String: payload.RelatedType, Valid: true}
	}
	if payload.RelatedID > 0 {
		createParams.RelatedID = pgtype.Int8{Int64: payload.RelatedID, Valid: true}
	}

	notification, err := processor.store.CreateNotification(ctx, createParams)
	if err != nil {
		return fmt.Errorf("create notification: %w", err)
	}

	log.Info().
		Int64("notification_id", notification.ID).
		Int64("driver_id", payload.DriverID).
		Str("type", payload.Type).
		Msg("notification created")

	return nil
}
