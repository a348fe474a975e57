package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrNotAssignedDriver is returned when the acting driver is not the driver
// bound to the batch.
var ErrNotAssignedDriver = errors.New("driver is not assigned to this batch")

// ErrOrderNotInBatch is returned when the stop being completed does not belong
// to the batch.
var ErrOrderNotInBatch = errors.New("order does not belong to this batch")

// CompleteStopTxParams contains the input parameters for completing one stop
type CompleteStopTxParams struct {
	BatchID  int64
	OrderID  int64
	DriverID int64 // 操作者，必须是批次绑定的司机
}

// CompleteStopTxResult contains the result of the stop completion transaction
type CompleteStopTxResult struct {
	Order     Order
	Batch     Batch
	Remaining int64 // 批次内尚未送达的订单数
	// Completed reports whether THIS call transitioned the batch to delivered.
	// Retries of the final stop see Remaining == 0 but Completed == false.
	Completed bool
}

// CompleteStopTx marks one stop's order as delivered, idempotently:
// 1. Lock the batch and check the acting driver is its assigned driver
// 2. Mark the order delivered (a no-op when already delivered)
// 3. Move the batch assigned → delivering on the first completed stop
// 4. Transition the batch to delivered exactly once when no undelivered
//    member orders remain
func (store *SQLStore) CompleteStopTx(ctx context.Context, arg CompleteStopTxParams) (CompleteStopTxResult, error) {
	var result CompleteStopTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		batch, err := q.GetBatchForUpdate(ctx, arg.BatchID)
		if err != nil {
			return fmt.Errorf("lock batch: %w", err)
		}
		if !batch.DriverID.Valid || batch.DriverID.Int64 != arg.DriverID {
			return ErrNotAssignedDriver
		}

		order, err := q.GetOrder(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if !order.BatchID.Valid || order.BatchID.Int64 != batch.ID {
			return ErrOrderNotInBatch
		}

		if order.DeliveryStatus == OrderDeliveryDelivered {
			result.Order = order
		} else {
			result.Order, err = q.MarkOrderDelivered(ctx, order.ID)
			if err != nil {
				return fmt.Errorf("mark order delivered: %w", err)
			}
		}

		if batch.Status == BatchStatusAssigned {
			batch, err = q.UpdateBatchStatus(ctx, UpdateBatchStatusParams{
				ID:     batch.ID,
				Status: BatchStatusDelivering,
			})
			if err != nil {
				return fmt.Errorf("update batch status: %w", err)
			}
		}

		result.Remaining, err = q.CountUndeliveredBatchOrders(ctx, pgtype.Int8{Int64: batch.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("count undelivered orders: %w", err)
		}

		if result.Remaining == 0 && batch.Status != BatchStatusDelivered {
			batch, err = q.UpdateBatchStatus(ctx, UpdateBatchStatusParams{
				ID:     batch.ID,
				Status: BatchStatusDelivered,
			})
			if err != nil {
				return fmt.Errorf("complete batch: %w", err)
			}
			result.Completed = true
		}

		result.Batch = batch
		return nil
	})

	return result, err
}
