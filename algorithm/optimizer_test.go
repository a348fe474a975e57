package algorithm

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

var testDepot = Location{Longitude: 124.6319, Latitude: 8.4542}

func testStops() []Stop {
	return []Stop{
		{OrderID: 101, Location: Location{Longitude: 124.6450, Latitude: 8.4800}, WeightKg: 300},
		{OrderID: 102, Location: Location{Longitude: 124.6100, Latitude: 8.4300}, WeightKg: 450},
		{OrderID: 103, Location: Location{Longitude: 124.6550, Latitude: 8.4650}, WeightKg: 200},
		{OrderID: 104, Location: Location{Longitude: 124.6000, Latitude: 8.4900}, WeightKg: 500},
		{OrderID: 105, Location: Location{Longitude: 124.6380, Latitude: 8.4550}, WeightKg: 150},
	}
}

func TestOptimizeBijection(t *testing.T) {
	stops := testStops()
	plan := Optimize(testDepot, stops, DefaultOptimizerConfig())

	// 输出必须是输入站点集合的一个排列：不重不漏，无外来ID
	require.Len(t, plan.StopOrder, len(stops))
	seen := make(map[int64]bool)
	valid := make(map[int64]bool)
	for _, s := range stops {
		valid[s.OrderID] = true
	}
	for _, id := range plan.StopOrder {
		require.True(t, valid[id], "foreign order id %d", id)
		require.False(t, seen[id], "duplicated order id %d", id)
		seen[id] = true
	}
	require.Empty(t, plan.Unrouted)
}

func TestOptimizeBeatsInsertionOrder(t *testing.T) {
	stops := testStops()
	points := make([]Location, len(stops))
	for i, s := range stops {
		points[i] = s.Location
	}
	baseline := RouteDistanceKm(testDepot, points)

	plan := Optimize(testDepot, stops, DefaultOptimizerConfig())
	require.LessOrEqual(t, plan.DistanceKm, baseline)
	require.Greater(t, plan.DistanceKm, 0.0)
}

func TestOptimizeSkipsStopsWithoutLocation(t *testing.T) {
	stops := testStops()
	stops = append(stops, Stop{OrderID: 999}) // 未成功地理编码

	plan := Optimize(testDepot, stops, DefaultOptimizerConfig())
	require.Len(t, plan.StopOrder, 5)
	require.Equal(t, []int64{999}, plan.Unrouted)
	require.NotContains(t, plan.StopOrder, int64(999))
}

func TestOptimizeEmptyInput(t *testing.T) {
	plan := Optimize(testDepot, nil, DefaultOptimizerConfig())
	require.Empty(t, plan.StopOrder)
	require.Equal(t, 0.0, plan.DistanceKm)

	// 全部缺坐标也返回空路线而不是错误
	plan = Optimize(testDepot, []Stop{{OrderID: 1}, {OrderID: 2}}, DefaultOptimizerConfig())
	require.Empty(t, plan.StopOrder)
	require.Equal(t, []int64{1, 2}, plan.Unrouted)
}

func TestOptimizeSingleStop(t *testing.T) {
	stops := testStops()[:1]
	plan := Optimize(testDepot, stops, DefaultOptimizerConfig())
	require.Equal(t, []int64{101}, plan.StopOrder)

	roundTrip := 2 * HaversineKm(testDepot, stops[0].Location)
	require.InDelta(t, roundTrip, plan.DistanceKm, 1e-9)
}

func TestOptimizeDeterministicWithSameSeeds(t *testing.T) {
	stops := testStops()
	cfg := DefaultOptimizerConfig()

	plan1 := Optimize(testDepot, stops, cfg)
	plan2 := Optimize(testDepot, stops, cfg)
	require.Equal(t, plan1.StopOrder, plan2.StopOrder)
	require.Equal(t, plan1.DistanceKm, plan2.DistanceKm)
	require.Equal(t, plan1.Comparison.Chosen, plan2.Comparison.Chosen)
}

func TestOptimizeComparisonRecord(t *testing.T) {
	plan := Optimize(testDepot, testStops(), DefaultOptimizerConfig())

	c := plan.Comparison
	require.Contains(t, []string{"A", "B"}, c.Chosen)
	require.Greater(t, c.DistanceAKm, 0.0)
	require.Greater(t, c.DistanceBKm, 0.0)
	if c.Chosen == "A" {
		require.InDelta(t, c.DistanceBKm-c.DistanceAKm, c.ImprovementKm, 1e-9)
		require.InDelta(t, c.DistanceAKm, plan.DistanceKm, 1e-9)
	} else {
		require.InDelta(t, c.DistanceAKm-c.DistanceBKm, c.ImprovementKm, 1e-9)
		require.InDelta(t, c.DistanceBKm, plan.DistanceKm, 1e-9)
	}
}

func TestOptimizationScoreMonotonic(t *testing.T) {
	baseline := 20.0
	// 距离越短分数越高
	require.GreaterOrEqual(t, optimizationScore(10, baseline), optimizationScore(15, baseline))
	require.GreaterOrEqual(t, optimizationScore(15, baseline), optimizationScore(20, baseline))
	// 无改进得 50 分，优化到一半以内满分
	require.Equal(t, 50, optimizationScore(20, baseline))
	require.Equal(t, 100, optimizationScore(10, baseline))
	require.Equal(t, 100, optimizationScore(0, 0))
}

func TestOrderCrossoverKeepsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	parentA := []int{0, 1, 2, 3, 4, 5, 6, 7}
	parentB := []int{7, 6, 5, 4, 3, 2, 1, 0}

	for i := 0; i < 100; i++ {
		child := orderCrossover(parentA, parentB, rng)
		require.Len(t, child, len(parentA))
		seen := make(map[int]bool)
		for _, gene := range child {
			require.False(t, seen[gene])
			seen[gene] = true
		}
	}
}

func TestFuelCostCents(t *testing.T) {
	cfg := DefaultOptimizerConfig()
	// 20km / 10km·L = 2L × ₱65 = ₱130
	require.Equal(t, int64(13000), fuelCostCents(20, cfg))

	cfg.KmPerLiter = 0
	require.Equal(t, int64(0), fuelCostCents(20, cfg))
}
