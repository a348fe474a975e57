package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrDriverUnavailable is returned when the chosen driver already has an active
// batch within the current service day window.
var ErrDriverUnavailable = errors.New("driver already has an active batch today")

// ErrBatchBelowAssignWeight is returned when a batch's live weight dropped
// below the assignment threshold between the eligibility scan and the bind.
var ErrBatchBelowAssignWeight = errors.New("batch weight below assignment threshold")

// AssignDriverTxParams contains the input parameters for binding a batch to a driver
type AssignDriverTxParams struct {
	BatchID     int64
	DriverID    int64
	MinWeightKg float64   // 可指派的最低重量阈值
	WindowStart time.Time // 当前服务日窗口（08:00 边界）
	WindowEnd   time.Time
	AssignedAt  time.Time
}

// AssignDriverTxResult contains the result of the assignment transaction
type AssignDriverTxResult struct {
	Batch Batch
}

// AssignDriverTx binds a batch to a driver under the once-per-service-day rule:
// 1. Lock the batch, verify it is still open and unassigned
// 2. Recompute the batch weight from live member rows against the threshold
// 3. Re-verify inside the transaction that the driver has no active batch in
//    the service day window
// 4. Bind the driver and transition the batch to assigned
func (store *SQLStore) AssignDriverTx(ctx context.Context, arg AssignDriverTxParams) (AssignDriverTxResult, error) {
	var result AssignDriverTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		batch, err := q.GetBatchForUpdate(ctx, arg.BatchID)
		if err != nil {
			return fmt.Errorf("lock batch: %w", err)
		}
		if batch.Status != BatchStatusPending && batch.Status != BatchStatusReadyForDelivery {
			return fmt.Errorf("batch %d is %s, not assignable", batch.ID, batch.Status)
		}
		if batch.DriverID.Valid {
			return fmt.Errorf("batch %d already has driver %d", batch.ID, batch.DriverID.Int64)
		}

		weight, err := q.SumBatchOrderWeight(ctx, pgtype.Int8{Int64: batch.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("sum batch weight: %w", err)
		}
		if weight < arg.MinWeightKg {
			return ErrBatchBelowAssignWeight
		}

		active, err := q.CountDriverActiveBatches(ctx, CountDriverActiveBatchesParams{
			DriverID:    pgtype.Int8{Int64: arg.DriverID, Valid: true},
			WindowStart: pgtype.Timestamptz{Time: arg.WindowStart, Valid: true},
			WindowEnd:   pgtype.Timestamptz{Time: arg.WindowEnd, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("count driver active batches: %w", err)
		}
		if active > 0 {
			return ErrDriverUnavailable
		}

		result.Batch, err = q.AssignBatchDriver(ctx, AssignBatchDriverParams{
			ID:         batch.ID,
			DriverID:   pgtype.Int8{Int64: arg.DriverID, Valid: true},
			AssignedAt: pgtype.Timestamptz{Time: arg.AssignedAt, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("assign driver: %w", err)
		}

		return nil
	})

	return result, err
}
