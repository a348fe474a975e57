package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskDispatchPass = "dispatch:pass"
)

// DispatchPassPayload 调度轮次任务载荷
type DispatchPassPayload struct {
	// Reason 触发来源，只用于日志（order_approved/manual/...）
	Reason string `json:"reason"`
}

// DistributeTaskDispatchPass 分发一轮调度任务
func (distributor *RedisTaskDistributor) DistributeTaskDispatchPass(
	ctx context.Context,
	payload *DispatchPassPayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskDispatchPass, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Str("reason", payload.Reason).
		Msg("enqueued dispatch pass task")

	return nil
}

// ProcessTaskDispatchPass 处理调度轮次任务
func (processor *RedisTaskProcessor) ProcessTaskDispatchPass(ctx context.Context, task *asynq.Task) error {
	var payload DispatchPassPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	log.Info().Str("reason", payload.Reason).Msg("processing dispatch pass task")

	if err := processor.pipeline.RunPass(ctx); err != nil {
		return fmt.Errorf("run dispatch pass: %w", err)
	}
	return nil
}
