package dispatch

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/geocode"
)

// Former 批次形成：把已审核、未入批的订单按地区标签装入容量内的批次
type Former struct {
	store       db.Store
	geocoder    geocode.Geocoder
	events      Events
	maxWeightKg float64
}

// NewFormer 创建批次形成器
func NewFormer(store db.Store, geocoder geocode.Geocoder, events Events, maxWeightKg float64) *Former {
	return &Former{
		store:       store,
		geocoder:    geocoder,
		events:      events,
		maxWeightKg: maxWeightKg,
	}
}

// FormPass runs one formation pass over all approved, unbatched orders.
// Each order is attached inside its own transaction, so one bad order
// never blocks the rest of the pass. Orders without a locality label are
// skipped until the label is fixed upstream; orders without coordinates
// get a best-effort geocode backfill but are batched either way (they
// surface later as unrouted stops).
func (f *Former) FormPass(ctx context.Context) error {
	orders, err := f.store.ListApprovedOrdersWithoutBatch(ctx)
	if err != nil {
		return fmt.Errorf("list approved orders: %w", err)
	}
	if len(orders) == 0 {
		return nil
	}

	touched := make(map[int64]bool)
	for _, order := range orders {
		if order.Locality == "" {
			log.Warn().Int64("order_id", order.ID).Msg("order has no locality label, skipping formation")
			continue
		}

		if !order.Latitude.Valid || !order.Longitude.Valid {
			f.backfillLocation(ctx, order)
		}

		result, err := f.store.AddOrderToBatchTx(ctx, db.AddOrderToBatchTxParams{
			OrderID:     order.ID,
			MaxWeightKg: f.maxWeightKg,
		})
		if err != nil {
			log.Error().Err(err).Int64("order_id", order.ID).Msg("failed to attach order to batch")
			continue
		}

		touched[result.Batch.ID] = true
		log.Info().
			Int64("order_id", order.ID).
			Int64("batch_id", result.Batch.ID).
			Str("label", result.Batch.Label).
			Float64("batch_weight_kg", result.Batch.TotalWeightKg).
			Bool("created", result.Created).
			Msg("order attached to batch")
	}

	// 订单集合变了，通知重算路线
	for batchID := range touched {
		f.events.RoutePlanInvalidated(ctx, batchID)
	}
	return nil
}

// backfillLocation 按地区标签做一次地理编码回填。
// 编码失败只记录：订单照常入批，之后作为 unrouted 站点上报。
func (f *Former) backfillLocation(ctx context.Context, order db.Order) {
	result, err := f.geocoder.Geocode(ctx, order.Locality)
	if err != nil {
		log.Warn().Err(err).
			Int64("order_id", order.ID).
			Str("locality", order.Locality).
			Msg("geocode backfill failed")
		return
	}

	_, err = f.store.UpdateOrderLocation(ctx, db.UpdateOrderLocationParams{
		ID:        order.ID,
		Latitude:  pgtype.Float8{Float64: result.Latitude, Valid: true},
		Longitude: pgtype.Float8{Float64: result.Longitude, Valid: true},
	})
	if err != nil {
		log.Warn().Err(err).Int64("order_id", order.ID).Msg("failed to store backfilled location")
		return
	}

	log.Info().
		Int64("order_id", order.ID).
		Float64("latitude", result.Latitude).
		Float64("longitude", result.Longitude).
		Msg("order location backfilled")
}
