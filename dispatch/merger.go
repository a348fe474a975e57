package dispatch

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/rs/zerolog/log"

	"github.com/deliveryease/dispatch/algorithm"
	db "github.com/deliveryease/dispatch/db/sqlc"
)

const (
	// MergeSeparator 合并后种子批次复合标签的连接符，例如 "Riverside + Lakeside"
	MergeSeparator = " + "
	// TombstonePrefix 被吸收批次的溯源标签前缀
	TombstonePrefix = "MERGED: "
)

// Merger 批次合并：把质心相近的开放批次并入同一个批次，减少出车数
type Merger struct {
	store    db.Store
	events   Events
	radiusKm float64
}

// NewMerger 创建批次合并器
func NewMerger(store db.Store, events Events, radiusKm float64) *Merger {
	return &Merger{
		store:    store,
		events:   events,
		radiusKm: radiusKm,
	}
}

// mergeCandidate 一个参与合并评估的批次及其派生的质心
type mergeCandidate struct {
	batch    db.Batch
	weight   float64
	centroid algorithm.Location
	located  bool // 是否有至少一个已编码坐标的成员
}

// MergePass runs one merge pass over all open batches:
// seeds are picked heaviest-first, each seed absorbs nearby candidates
// (centroid distance within the radius) in ascending distance order as
// long as the combined weight stays under the seed's ceiling. Absorbed
// batches are tombstoned; a failed absorption is logged and skipped so
// one bad victim never aborts the pass.
func (m *Merger) MergePass(ctx context.Context) error {
	batches, err := m.store.ListBatchesByStatus(ctx, []string{
		db.BatchStatusPending,
		db.BatchStatusReadyForDelivery,
	})
	if err != nil {
		return fmt.Errorf("list open batches: %w", err)
	}

	candidates := m.collectCandidates(ctx, batches)
	if len(candidates) < 2 {
		return nil
	}

	// 重量降序选种子，重量相同时按 ID 升序保证确定性
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].weight != candidates[j].weight {
			return candidates[i].weight > candidates[j].weight
		}
		return candidates[i].batch.ID < candidates[j].batch.ID
	})

	processed := make(map[int64]bool)
	for i := range candidates {
		seed := candidates[i]
		if processed[seed.batch.ID] {
			continue
		}
		processed[seed.batch.ID] = true
		if !seed.located {
			continue
		}
		m.absorbAround(ctx, seed, candidates, processed)
	}
	return nil
}

// collectCandidates 过滤出可参与合并的批次并计算质心。
// 空批次、零重量批次不参与；带墓碑标签却仍开放的批次属于
// 前次合并半途失败留下的残留状态，就地补打墓碑。
// 复合标签（已含连接符）的批次不再参与合并。
func (m *Merger) collectCandidates(ctx context.Context, batches []db.Batch) []mergeCandidate {
	candidates := make([]mergeCandidate, 0, len(batches))
	for _, batch := range batches {
		orders, err := m.store.ListBatchOrders(ctx, pgtype.Int8{Int64: batch.ID, Valid: true})
		if err != nil {
			log.Error().Err(err).Int64("batch_id", batch.ID).Msg("failed to list batch orders for merge")
			continue
		}

		weight := 0.0
		points := make([]algorithm.Location, 0, len(orders))
		for _, order := range orders {
			weight += order.WeightKg
			if order.Latitude.Valid && order.Longitude.Valid {
				points = append(points, algorithm.Location{
					Latitude:  order.Latitude.Float64,
					Longitude: order.Longitude.Float64,
				})
			}
		}

		if len(orders) == 0 || weight <= 0 {
			if strings.HasPrefix(batch.Label, TombstonePrefix) {
				m.tombstoneCorrupted(ctx, batch)
			}
			continue
		}
		if strings.Contains(batch.Label, MergeSeparator) {
			continue
		}

		candidates = append(candidates, mergeCandidate{
			batch:    batch,
			weight:   weight,
			centroid: algorithm.CenterPoint(points),
			located:  len(points) > 0,
		})
	}
	return candidates
}

// absorbAround 把种子半径内的候选按距离升序吸收进种子
func (m *Merger) absorbAround(ctx context.Context, seed mergeCandidate, candidates []mergeCandidate, processed map[int64]bool) {
	type closeCandidate struct {
		cand mergeCandidate
		dist float64
	}
	var nearby []closeCandidate
	for _, cand := range candidates {
		if processed[cand.batch.ID] || !cand.located {
			continue
		}
		dist := algorithm.HaversineKm(seed.centroid, cand.centroid)
		if dist <= m.radiusKm {
			nearby = append(nearby, closeCandidate{cand: cand, dist: dist})
		}
	}
	if len(nearby) == 0 {
		return
	}

	sort.SliceStable(nearby, func(i, j int) bool {
		if nearby[i].dist != nearby[j].dist {
			return nearby[i].dist < nearby[j].dist
		}
		return nearby[i].cand.batch.ID < nearby[j].cand.batch.ID
	})

	seedID := seed.batch.ID
	seedLabel := seed.batch.Label
	seedWeight := seed.weight
	for _, c := range nearby {
		victim := c.cand
		if seedWeight+victim.weight > seed.batch.MaxWeightKg {
			continue
		}

		mergedLabel := seedLabel + MergeSeparator + victim.batch.Label
		result, err := m.store.AbsorbBatchTx(ctx, db.AbsorbBatchTxParams{
			SeedID:         seedID,
			AbsorbedID:     victim.batch.ID,
			MergedLabel:    mergedLabel,
			TombstoneLabel: fmt.Sprintf("%s%s → %s", TombstonePrefix, victim.batch.Label, mergedLabel),
		})
		if err != nil {
			// 被吸收批次的并发变化（超重、已被指派）不算错误，跳过即可
			if errors.Is(err, db.ErrBatchOverCapacity) {
				log.Debug().Int64("seed_id", seedID).Int64("absorbed_id", victim.batch.ID).Msg("merge rejected: over capacity")
			} else {
				log.Error().Err(err).Int64("seed_id", seedID).Int64("absorbed_id", victim.batch.ID).Msg("failed to absorb batch")
			}
			continue
		}

		processed[victim.batch.ID] = true
		seedLabel = result.Seed.Label
		seedWeight = result.Seed.TotalWeightKg
		log.Info().
			Int64("seed_id", seedID).
			Int64("absorbed_id", victim.batch.ID).
			Str("label", result.Seed.Label).
			Float64("weight_kg", result.Seed.TotalWeightKg).
			Float64("distance_km", c.dist).
			Msg("batch absorbed")

		m.events.RoutePlanInvalidated(ctx, seedID)
	}
}

// tombstoneCorrupted 给残留的半合并批次补打墓碑
func (m *Merger) tombstoneCorrupted(ctx context.Context, batch db.Batch) {
	_, err := m.store.TombstoneBatch(ctx, db.TombstoneBatchParams{
		ID:    batch.ID,
		Label: batch.Label,
	})
	if err != nil {
		log.Error().Err(err).Int64("batch_id", batch.ID).Msg("failed to tombstone corrupted batch")
		return
	}
	log.Warn().Int64("batch_id", batch.ID).Str("label", batch.Label).Msg("tombstoned corrupted merge leftover")
}
