package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	db "github.com/deliveryease/dispatch/db/sqlc"
)

// Assigner 司机指派：达到起送重量的批次绑定当日尚未出车的司机
type Assigner struct {
	store        db.Store
	events       Events
	minWeightKg  float64
	boundaryHour int
	now          func() time.Time // 测试时注入
}

// NewAssigner 创建指派器
func NewAssigner(store db.Store, events Events, minWeightKg float64, boundaryHour int) *Assigner {
	return &Assigner{
		store:        store,
		events:       events,
		minWeightKg:  minWeightKg,
		boundaryHour: boundaryHour,
		now:          time.Now,
	}
}

// AssignPass runs one assignment pass. Batches at or above the minimum
// weight are promoted to ready_for_delivery and bound to the first driver
// with no active batch in the current service day window. Running out of
// drivers is not an error: unassigned batches wait for the next pass
// (driver availability resets at the service day boundary).
func (a *Assigner) AssignPass(ctx context.Context) error {
	batches, err := a.store.ListBatchesByStatus(ctx, []string{
		db.BatchStatusPending,
		db.BatchStatusReadyForDelivery,
	})
	if err != nil {
		return fmt.Errorf("list open batches: %w", err)
	}

	drivers, err := a.store.ListActiveDrivers(ctx)
	if err != nil {
		return fmt.Errorf("list active drivers: %w", err)
	}

	now := a.now()
	windowStart, windowEnd := ServiceDayWindow(now, a.boundaryHour)
	// 本轮内已绑定的司机不再重复询问
	taken := make(map[int64]bool)

	for _, batch := range batches {
		if batch.DriverID.Valid || batch.Label == "" {
			continue
		}
		if batch.TotalWeightKg < a.minWeightKg {
			continue
		}

		if batch.Status == db.BatchStatusPending {
			batch, err = a.store.UpdateBatchStatus(ctx, db.UpdateBatchStatusParams{
				ID:     batch.ID,
				Status: db.BatchStatusReadyForDelivery,
			})
			if err != nil {
				log.Error().Err(err).Int64("batch_id", batch.ID).Msg("failed to promote batch")
				continue
			}
			log.Info().Int64("batch_id", batch.ID).Str("label", batch.Label).Msg("batch ready for delivery")
		}

		a.assignBatch(ctx, batch, drivers, taken, windowStart, windowEnd, now)
	}
	return nil
}

// assignBatch 逐个尝试司机，绑定成功即止；没有可用司机不算失败
func (a *Assigner) assignBatch(ctx context.Context, batch db.Batch, drivers []db.Driver, taken map[int64]bool, windowStart, windowEnd, now time.Time) {
	for _, driver := range drivers {
		if taken[driver.ID] {
			continue
		}

		result, err := a.store.AssignDriverTx(ctx, db.AssignDriverTxParams{
			BatchID:     batch.ID,
			DriverID:    driver.ID,
			MinWeightKg: a.minWeightKg,
			WindowStart: windowStart,
			WindowEnd:   windowEnd,
			AssignedAt:  now,
		})
		if err != nil {
			switch {
			case errors.Is(err, db.ErrDriverUnavailable):
				// 今天已经出过车了，下一位
				taken[driver.ID] = true
				continue
			case errors.Is(err, db.ErrBatchBelowAssignWeight):
				// 并发合并/订单修改把重量拉回阈值以下，放回下一轮
				log.Info().Int64("batch_id", batch.ID).Msg("batch dropped below assignment weight, deferring")
				return
			default:
				log.Error().Err(err).Int64("batch_id", batch.ID).Int64("driver_id", driver.ID).Msg("failed to assign driver")
				return
			}
		}

		taken[driver.ID] = true
		log.Info().
			Int64("batch_id", batch.ID).
			Int64("driver_id", driver.ID).
			Str("label", result.Batch.Label).
			Float64("weight_kg", result.Batch.TotalWeightKg).
			Str("service_day", ServiceDayID(now, a.boundaryHour)).
			Msg("batch assigned to driver")

		a.events.BatchAssigned(ctx, result.Batch, driver)
		// 指派后预热路线
		a.events.RoutePlanInvalidated(ctx, result.Batch.ID)
		return
	}

	log.Info().Int64("batch_id", batch.ID).Msg("no driver available, batch waits for next pass")
}
