package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

// ErrBatchOverCapacity is returned when absorbing a batch would push the seed
// batch over its weight ceiling. The merge is rejected, never partially applied.
var ErrBatchOverCapacity = errors.New("merge would exceed batch weight ceiling")

// AbsorbBatchTxParams contains the input parameters for absorbing one batch
// into a merge seed
type AbsorbBatchTxParams struct {
	SeedID         int64
	AbsorbedID     int64
	MergedLabel    string // 合并后种子批次的复合标签，例如 "Riverside + Lakeside"
	TombstoneLabel string // 被吸收批次的溯源标签，例如 "MERGED: Lakeside → Riverside"
}

// AbsorbBatchTxResult contains the result of the absorb transaction
type AbsorbBatchTxResult struct {
	Seed     Batch
	Absorbed Batch
}

// AbsorbBatchTx moves all member orders of one batch into a merge seed:
// 1. Lock both batches, re-verify they are still open
// 2. Recompute both weights from live member rows and reject over-capacity merges
// 3. Reassign the absorbed batch's orders to the seed
// 4. Tombstone the absorbed batch (status merged, weight 0, provenance label)
// 5. Recompute the seed weight from its enlarged member set and set the merged label
func (store *SQLStore) AbsorbBatchTx(ctx context.Context, arg AbsorbBatchTxParams) (AbsorbBatchTxResult, error) {
	var result AbsorbBatchTxResult

	err := store.execTx(ctx, func(q *Queries) error {
		seed, err := q.GetBatchForUpdate(ctx, arg.SeedID)
		if err != nil {
			return fmt.Errorf("lock seed batch: %w", err)
		}
		absorbed, err := q.GetBatchForUpdate(ctx, arg.AbsorbedID)
		if err != nil {
			return fmt.Errorf("lock absorbed batch: %w", err)
		}

		if !batchOpenForMerge(seed.Status) {
			return fmt.Errorf("seed batch %d is %s, not open for merging", seed.ID, seed.Status)
		}
		if !batchOpenForMerge(absorbed.Status) {
			return fmt.Errorf("batch %d is %s, not open for merging", absorbed.ID, absorbed.Status)
		}

		seedWeight, err := q.SumBatchOrderWeight(ctx, pgtype.Int8{Int64: seed.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("sum seed weight: %w", err)
		}
		absorbedWeight, err := q.SumBatchOrderWeight(ctx, pgtype.Int8{Int64: absorbed.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("sum absorbed weight: %w", err)
		}
		if seedWeight+absorbedWeight > seed.MaxWeightKg {
			return ErrBatchOverCapacity
		}

		err = q.ReassignBatchOrders(ctx, ReassignBatchOrdersParams{
			FromBatchID: pgtype.Int8{Int64: absorbed.ID, Valid: true},
			ToBatchID:   pgtype.Int8{Int64: seed.ID, Valid: true},
		})
		if err != nil {
			return fmt.Errorf("reassign orders: %w", err)
		}

		result.Absorbed, err = q.TombstoneBatch(ctx, TombstoneBatchParams{
			ID:    absorbed.ID,
			Label: arg.TombstoneLabel,
		})
		if err != nil {
			return fmt.Errorf("tombstone batch: %w", err)
		}

		newWeight, err := q.SumBatchOrderWeight(ctx, pgtype.Int8{Int64: seed.ID, Valid: true})
		if err != nil {
			return fmt.Errorf("recompute seed weight: %w", err)
		}
		if _, err = q.UpdateBatchWeight(ctx, UpdateBatchWeightParams{
			ID:            seed.ID,
			TotalWeightKg: newWeight,
		}); err != nil {
			return fmt.Errorf("update seed weight: %w", err)
		}

		result.Seed, err = q.UpdateBatchLabel(ctx, UpdateBatchLabelParams{
			ID:    seed.ID,
			Label: arg.MergedLabel,
		})
		if err != nil {
			return fmt.Errorf("update seed label: %w", err)
		}

		return nil
	})

	return result, err
}

func batchOpenForMerge(status string) bool {
	return status == BatchStatusPending || status == BatchStatusReadyForDelivery
}
