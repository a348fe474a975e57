package algorithm

import (
	"math"
	"math/rand"
	"time"

	"github.com/google/uuid"
)

// Optimize 为一个批次计算最优访问顺序
// 路线为 仓库 → 各站点 → 仓库，使用双种群遗传搜索：
// 独立种子各跑一次（路线A、路线B），再对两个最优个体做一次交叉精炼，
// 最终取适应度更高者。缺少坐标的站点不参与优化，单独报告。
func Optimize(depot Location, stops []Stop, cfg OptimizerConfig) RoutePlan {
	valid := make([]Stop, 0, len(stops))
	var unrouted []int64
	for _, s := range stops {
		if s.Location.Latitude == 0 && s.Location.Longitude == 0 {
			unrouted = append(unrouted, s.OrderID)
			continue
		}
		valid = append(valid, s)
	}

	plan := RoutePlan{
		ID:         uuid.NewString(),
		Unrouted:   unrouted,
		ComputedAt: time.Now(),
	}
	if len(valid) == 0 {
		return plan
	}

	points := make([]Location, len(valid))
	for i, s := range valid {
		points[i] = s.Location
	}

	searchA := newGeneticSearch(depot, points, cfg, rand.New(rand.NewSource(cfg.SeedA)))
	searchB := newGeneticSearch(depot, points, cfg, rand.New(rand.NewSource(cfg.SeedB)))

	bestA := searchA.run()
	bestB := searchB.run()

	distA := searchA.permDistanceKm(bestA.perm)
	distB := searchB.permDistanceKm(bestB.perm)

	// 交叉精炼：用两条最优路线再生成一个子代，若更优则并入对应一侧
	refined := false
	if len(valid) > 1 {
		rng := rand.New(rand.NewSource(cfg.SeedA + cfg.SeedB))
		child := orderCrossover(bestA.perm, bestB.perm, rng)
		childFitness := searchA.evaluate(child)
		if childFitness > bestA.fitness && childFitness > bestB.fitness {
			if distA <= distB {
				bestA = individual{perm: child, fitness: childFitness}
				distA = searchA.permDistanceKm(child)
			} else {
				bestB = individual{perm: child, fitness: childFitness}
				distB = searchB.permDistanceKm(child)
			}
			refined = true
		}
	}

	chosen := bestA
	chosenDist := distA
	comparison := RouteComparison{
		Chosen:            "A",
		DistanceAKm:       distA,
		DistanceBKm:       distB,
		ImprovementKm:     distB - distA,
		RefinementApplied: refined,
	}
	if bestB.fitness > bestA.fitness {
		chosen = bestB
		chosenDist = distB
		comparison.Chosen = "B"
		comparison.ImprovementKm = distA - distB
	}

	stopOrder := make([]int64, len(chosen.perm))
	for i, idx := range chosen.perm {
		stopOrder[i] = valid[idx].OrderID
	}

	plan.StopOrder = stopOrder
	plan.DistanceKm = chosenDist
	plan.DurationHours = EstimateTravelHours(chosenDist, cfg.AvgSpeedKmh)
	plan.Score = optimizationScore(chosenDist, RouteDistanceKm(depot, points))
	plan.FuelCostCents = fuelCostCents(chosenDist, cfg)
	plan.Comparison = comparison
	return plan
}

// optimizationScore 0-100 评分，距离越短分数越高
// 以原始录入顺序的路线为基准：r = 优化距离/基准距离，
// score = clamp(100*(1.5-r), 0, 100)。r=1（无改进）得 50 分，
// 优化到基准一半及以下得 100 分
func optimizationScore(bestKm, baselineKm float64) int {
	if baselineKm <= 0 {
		return 100
	}
	ratio := bestKm / baselineKm
	score := int(math.Round(100 * (1.5 - ratio)))
	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score
}

// fuelCostCents 按油耗估算燃油成本（分）
func fuelCostCents(distanceKm float64, cfg OptimizerConfig) int64 {
	if cfg.KmPerLiter <= 0 {
		return 0
	}
	liters := distanceKm / cfg.KmPerLiter
	return int64(math.Round(liters * float64(cfg.FuelPriceCentsPerL)))
}
