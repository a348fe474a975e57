package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// AddOrderToBatchTxParams contains the input parameters for attaching an
// approved order to a batch
type AddOrderToBatchTxParams struct {
	OrderID     int64
	MaxWeightKg float64 // 新建批次的容量上限
}

// AddOrderToBatchTxResult contains the result of the batch formation transaction
type AddOrderToBatchTxResult struct {
	Order   Order
	Batch   Batch
	Created bool // 是否为此订单新建了批次
}

// AddOrderToBatchTx attaches one approved order to an open pending batch for its
// locality, or creates a new batch when no open batch can take the weight:
// 1. Lock each candidate batch and recompute its weight from live member rows
// 2. Pick the first candidate where weight + order weight <= ceiling
// 3. Create a new pending batch when none fits
// 4. Attach the order and recompute the batch weight from the full member set
//
// The weight is always re-derived from member rows, never incremented, so
// out-of-band order edits cannot desynchronize the stored total.
func (store *SQLStore) AddOrderToBatchTx(ctx context.Context, arg AddOrderToBatchTxParams) (AddOrderToBatchTxResult, error) {
	var result AddOrderToBatchTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		order, err := q.GetOrder(ctx, arg.OrderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if order.ApprovalStatus != OrderApprovalApproved {
			return fmt.Errorf("order %d is not approved", order.ID)
		}
		if order.BatchID.Valid {
			return fmt.Errorf("order %d already belongs to batch %d", order.ID, order.BatchID.Int64)
		}

		candidates, err := q.ListPendingBatchesByLabel(ctx, order.Locality)
		if err != nil {
			return fmt.Errorf("list pending batches: %w", err)
		}

		var target Batch
		found := false
		for _, candidate := range candidates {
			locked, err := q.GetBatchForUpdate(ctx, candidate.ID)
			if err != nil {
				return fmt.Errorf("lock batch %d: %w", candidate.ID, err)
			}
			if locked.Status != BatchStatusPending {
				continue
			}

			weight, err := q.SumBatchOrderWeight(ctx, pgtype.Int8{Int64: locked.ID, Valid: true})
			if err != nil {
				return fmt.Errorf("sum batch %d weight: %w", locked.ID, err)
			}
			if weight+order.WeightKg <= locked.MaxWeightKg {
				target = locked
				found = true
				break
			}
		}

		if !found {
			target, err = q.CreateBatch(ctx, CreateBatchParams{
				Label:       order.Locality,
				MaxWeightKg: arg.MaxWeightKg,
			})
			if err != nil {
				return fmt.Errorf("create batch: %w", err)
			}
			result.Created = true
		}

		result.Order, err = q.UpdateOrderBatch(ctx, UpdateOrderBatchParams{
			ID:      order.ID,
			BatchID: pgtype.Int8{Int64: target.ID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("attach order to batch: %w", err)
		}

		newWeight, err := q.SumBatchOrderWeight(ctx, pgtype.Int8{Int64: target.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("recompute batch weight: %w", err)
		}

		result.Batch, err = q.UpdateBatchWeight(ctx, UpdateBatchWeightParams{
			ID:            target.ID,
			TotalWeightKg: newWeight,
		})
		if err != nil {
			return fmt.Errorf("update batch weight: %w", err)
		}

		return nil
	})

	return result, err
}
