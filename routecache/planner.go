package routecache

import (
	"context"
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"

	"github.com/deliveryease/dispatch/algorithm"
	db "github.com/deliveryease/dispatch/db/sqlc"
)

var optimizerRunDuration = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Name:    "route_optimizer_run_duration_seconds",
		Help:    "Duration of genetic route optimizer runs",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 15},
	},
)

// Planner 按批次提供路线：有效站点集合未变时直接用缓存，
// 集合变了（指纹不匹配）或无缓存时重新跑遗传搜索。
// 站点的送达状态不参与指纹：完成一个站点不会触发重算。
type Planner struct {
	store db.Store
	cache Cache
	depot algorithm.Location
	cfg   algorithm.OptimizerConfig
}

// NewPlanner 创建路线提供者
func NewPlanner(store db.Store, cache Cache, depot algorithm.Location, cfg algorithm.OptimizerConfig) *Planner {
	return &Planner{
		store: store,
		cache: cache,
		depot: depot,
		cfg:   cfg,
	}
}

// PlanForBatch 返回批次当前有效的路线（必要时计算并写入缓存）
func (p *Planner) PlanForBatch(ctx context.Context, batchID int64) (algorithm.RoutePlan, error) {
	orders, err := p.store.ListBatchOrders(ctx, pgtype.Int8{Int64: batchID, Valid: true})
	if err != nil {
		return algorithm.RoutePlan{}, fmt.Errorf("list batch orders: %w", err)
	}

	stops := StopsFromOrders(orders)
	fingerprint := Fingerprint(stops)

	cached, err := p.cache.Get(ctx, batchID)
	if err != nil {
		// 缓存读失败只降级为重算
		log.Warn().Err(err).Int64("batch_id", batchID).Msg("route cache read failed")
	}
	if cached != nil && cached.Fingerprint == fingerprint {
		return cached.Plan, nil
	}

	started := time.Now()
	plan := algorithm.Optimize(p.depot, stops, p.cfg)
	optimizerRunDuration.Observe(time.Since(started).Seconds())

	log.Info().
		Int64("batch_id", batchID).
		Int("stops", len(plan.StopOrder)).
		Float64("distance_km", plan.DistanceKm).
		Int("score", plan.Score).
		Str("chosen_route", plan.Comparison.Chosen).
		Float64("improvement_km", plan.Comparison.ImprovementKm).
		Msg("computed route plan")

	if err := p.cache.Set(ctx, batchID, &CachedPlan{Plan: plan, Fingerprint: fingerprint}); err != nil {
		// 路线是建议性数据，缓存写失败不影响结果
		log.Warn().Err(err).Int64("batch_id", batchID).Msg("route cache write failed")
	}

	return plan, nil
}

// StopsFromOrders 把批次订单转换为优化器站点；缺坐标的订单保留零值坐标，
// 由优化器单独报告为 unrouted
func StopsFromOrders(orders []db.Order) []algorithm.Stop {
	stops := make([]algorithm.Stop, 0, len(orders))
	for _, order := range orders {
		stop := algorithm.Stop{
			OrderID:    order.ID,
			WeightKg:   order.WeightKg,
			ValueCents: order.ValueCents,
		}
		if order.Latitude.Valid && order.Longitude.Valid {
			stop.Location = algorithm.Location{
				Latitude:  order.Latitude.Float64,
				Longitude: order.Longitude.Float64,
			}
		}
		stops = append(stops, stop)
	}
	return stops
}

// Fingerprint 有效站点集合的指纹：订单ID和坐标参与，送达状态不参与
func Fingerprint(stops []algorithm.Stop) string {
	keys := make([]string, 0, len(stops))
	for _, s := range stops {
		if s.Location.Latitude == 0 && s.Location.Longitude == 0 {
			continue
		}
		keys = append(keys, fmt.Sprintf("%d:%.6f:%.6f", s.OrderID, s.Location.Latitude, s.Location.Longitude))
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum64())
}
