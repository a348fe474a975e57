package dispatch

import (
	"context"

	db "github.com/deliveryease/dispatch/db/sqlc"
)

// Events 引擎在关键状态转换后触发的外部副作用（客户通知、路线重算）。
// 所有回调都是 fire-and-forget：回调失败不得回滚已提交的调度状态，
// 实现方自行记录失败。
type Events interface {
	// BatchAssigned 批次绑定司机成功后触发
	BatchAssigned(ctx context.Context, batch db.Batch, driver db.Driver)
	// BatchDelivered 批次全部送达后触发（每个批次恰好一次）
	BatchDelivered(ctx context.Context, batch db.Batch)
	// RoutePlanInvalidated 批次的订单集合发生变化后触发，
	// 接收方应异步重算该批次的路线
	RoutePlanInvalidated(ctx context.Context, batchID int64)
}

// NopEvents 空实现，用于测试和未接入通知的场景
type NopEvents struct{}

func (NopEvents) BatchAssigned(ctx context.Context, batch db.Batch, driver db.Driver) {}
func (NopEvents) BatchDelivered(ctx context.Context, batch db.Batch)                  {}
func (NopEvents) RoutePlanInvalidated(ctx context.Context, batchID int64)             {}
