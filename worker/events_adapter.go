package worker

import (
	"context"
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/deliveryease/dispatch/db/sqlc"
)

// EventsAdapter 将 TaskDistributor 适配为 dispatch.Events，
// 避免 dispatch 包反向依赖 worker 包。
// 入队失败只记录：调度状态已提交，事件是 fire-and-forget 的。
type EventsAdapter struct {
	distributor TaskDistributor
}

// NewEventsAdapter 创建事件适配器
func NewEventsAdapter(distributor TaskDistributor) *EventsAdapter {
	return &EventsAdapter{
		distributor: distributor,
	}
}

// BatchAssigned 实现 dispatch.Events 接口：给司机发指派通知
func (a *EventsAdapter) BatchAssigned(ctx context.Context, batch db.Batch, driver db.Driver) {
	err := a.distributor.DistributeTaskSendNotification(ctx, &SendNotificationPayload{
		DriverID:    driver.ID,
		Type:        "assignment",
		Title:       "新配送批次",
		Content:     fmt.Sprintf("批次 %s（%.0f kg）已指派给你", batch.Label, batch.TotalWeightKg),
		RelatedType: "batch",
		RelatedID:   batch.ID,
	}, asynq.Queue(QueueCritical))
	if err != nil {
		log.Error().Err(err).Int64("batch_id", batch.ID).Msg("failed to enqueue assignment notification")
	}
}

// BatchDelivered 实现 dispatch.Events 接口：批次完成通知
func (a *EventsAdapter) BatchDelivered(ctx context.Context, batch db.Batch) {
	payload := &SendNotificationPayload{
		Type:        "delivery",
		Title:       "批次配送完成",
		Content:     fmt.Sprintf("批次 %s 的所有订单已送达", batch.Label),
		RelatedType: "batch",
		RelatedID:   batch.ID,
	}
	if batch.DriverID.Valid {
		payload.DriverID = batch.DriverID.Int64
	}
	if err := a.distributor.DistributeTaskSendNotification(ctx, payload); err != nil {
		log.Error().Err(err).Int64("batch_id", batch.ID).Msg("failed to enqueue delivery notification")
	}
}

// RoutePlanInvalidated 实现 dispatch.Events 接口：异步重算路线
func (a *EventsAdapter) RoutePlanInvalidated(ctx context.Context, batchID int64) {
	err := a.distributor.DistributeTaskOptimizeRoute(ctx, &OptimizeRoutePayload{
		BatchID: batchID,
	})
	if err != nil {
		log.Error().Err(err).Int64("batch_id", batchID).Msg("failed to enqueue route optimization")
	}
}
