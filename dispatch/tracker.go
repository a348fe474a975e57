package dispatch

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/deliveryease/dispatch/algorithm"
	db "github.com/deliveryease/dispatch/db/sqlc"
)

// RoutePlanner 为批次提供当前有效的路线
type RoutePlanner interface {
	PlanForBatch(ctx context.Context, batchID int64) (algorithm.RoutePlan, error)
}

// Tracker 配送进度：司机逐站上报送达，跟踪器给出按路线顺序的下一站
type Tracker struct {
	store   db.Store
	planner RoutePlanner
	events  Events
}

// NewTracker 创建进度跟踪器
func NewTracker(store db.Store, planner RoutePlanner, events Events) *Tracker {
	return &Tracker{
		store:   store,
		planner: planner,
		events:  events,
	}
}

// StopResult 一次站点完成上报的结果
type StopResult struct {
	Order          db.Order `json:"order"`
	Batch          db.Batch `json:"batch"`
	RemainingStops int64    `json:"remaining_stops"`
	// NextOrderID 路线顺序中的下一个未送达站点，批次完成时为 0
	NextOrderID   int64 `json:"next_order_id"`
	BatchComplete bool  `json:"batch_complete"`
}

// CompleteStop marks one order of a batch as delivered on behalf of the
// batch's assigned driver. Completion is idempotent (a retried tap on an
// already-delivered stop is a no-op), and the next stop is re-derived by
// scanning the optimizer's sequence, so out-of-order completions in the
// field never confuse the pointer. The delivered event fires exactly
// once, on the call that actually finished the batch.
func (t *Tracker) CompleteStop(ctx context.Context, batchID, orderID, driverID int64) (StopResult, error) {
	txResult, err := t.store.CompleteStopTx(ctx, db.CompleteStopTxParams{
		BatchID:  batchID,
		OrderID:  orderID,
		DriverID: driverID,
	})
	if err != nil {
		return StopResult{}, err
	}

	result := StopResult{
		Order:          txResult.Order,
		Batch:          txResult.Batch,
		RemainingStops: txResult.Remaining,
		BatchComplete:  txResult.Remaining == 0,
	}

	if txResult.Completed {
		log.Info().
			Int64("batch_id", batchID).
			Int64("driver_id", driverID).
			Msg("batch fully delivered")
		t.events.BatchDelivered(ctx, txResult.Batch)
	}

	if txResult.Remaining > 0 {
		result.NextOrderID = t.nextStop(ctx, batchID)
	}
	return result, nil
}

// nextStop 下一站 = 路线顺序里第一个未送达的站点；
// 无坐标的 unrouted 站点排在有序站点之后。
// 路线不可用时退回订单插入顺序，只影响顺序建议，不影响送达状态。
func (t *Tracker) nextStop(ctx context.Context, batchID int64) int64 {
	orders, err := t.store.ListBatchOrders(ctx, pgtype.Int8{Int64: batchID, Valid: true})
	if err != nil {
		log.Warn().Err(err).Int64("batch_id", batchID).Msg("failed to list batch orders for next stop")
		return 0
	}

	undelivered := make(map[int64]bool, len(orders))
	for _, order := range orders {
		if order.DeliveryStatus != db.OrderDeliveryDelivered {
			undelivered[order.ID] = true
		}
	}
	if len(undelivered) == 0 {
		return 0
	}

	plan, err := t.planner.PlanForBatch(ctx, batchID)
	if err != nil {
		log.Warn().Err(err).Int64("batch_id", batchID).Msg("route plan unavailable, falling back to insertion order")
		for _, order := range orders {
			if undelivered[order.ID] {
				return order.ID
			}
		}
		return 0
	}

	sequence := append(append([]int64{}, plan.StopOrder...), plan.Unrouted...)
	for _, id := range sequence {
		if undelivered[id] {
			return id
		}
	}
	// 路线里找不到未送达的站点说明集合已变且缓存未及时失效
	for _, order := range orders {
		if undelivered[order.ID] {
			return order.ID
		}
	}
	return 0
}

// BatchProgress 查询批次的当前进度（剩余站点数和下一站）
func (t *Tracker) BatchProgress(ctx context.Context, batchID int64) (remaining int64, nextOrderID int64, err error) {
	remaining, err = t.store.CountUndeliveredBatchOrders(ctx, pgtype.Int8{Int64: batchID, Valid: true})
	if err != nil {
		return 0, 0, fmt.Errorf("count undelivered orders: %w", err)
	}
	if remaining == 0 {
		return 0, 0, nil
	}
	return remaining, t.nextStop(ctx, batchID), nil
}
