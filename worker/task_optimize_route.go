package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

const (
	TaskOptimizeRoute = "route:optimize"
)

// OptimizeRoutePayload 路线优化任务载荷
type OptimizeRoutePayload struct {
	BatchID int64 `json:"batch_id"`
}

// DistributeTaskOptimizeRoute 分发路线优化任务
func (distributor *RedisTaskDistributor) DistributeTaskOptimizeRoute(
	ctx context.Context,
	payload *OptimizeRoutePayload,
	opts ...asynq.Option,
) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	task := asynq.NewTask(TaskOptimizeRoute, jsonPayload, opts...)
	info, err := distributor.client.EnqueueContext(ctx, task)
	if err != nil {
		return fmt.Errorf("enqueue task: %w", err)
	}

	log.Debug().
		Str("type", task.Type()).
		Str("queue", info.Queue).
		Int64("batch_id", payload.BatchID).
		Msg("enqueued route optimization task")

	return nil
}

// ProcessTaskOptimizeRoute 处理路线优化任务：跑遗传搜索并把结果写入缓存。
// 优化是建议性计算，可能跑数秒，只能在这里异步做，不能阻塞调度流水线。
func (processor *RedisTaskProcessor) ProcessTaskOptimizeRoute(ctx context.Context, task *asynq.Task) error {
	var payload OptimizeRoutePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return fmt.Errorf("unmarshal payload: %w", err)
	}

	plan, err := processor.planner.PlanForBatch(ctx, payload.BatchID)
	if err != nil {
		return fmt.Errorf("plan route for batch %d: %w", payload.BatchID, err)
	}

	log.Info().
		Int64("batch_id", payload.BatchID).
		Int("stops", len(plan.StopOrder)).
		Int("unrouted", len(plan.Unrouted)).
		Float64("distance_km", plan.DistanceKm).
		Int("score", plan.Score).
		Msg("route optimization task completed")

	return nil
}
