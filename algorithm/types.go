// Package algorithm 提供路线优化相关的纯算法（距离计算、遗传搜索）
// 该包独立于业务逻辑，便于测试和升级
package algorithm

import "time"

// Location 地理位置
type Location struct {
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

// Stop 一个待配送站点（对应一个订单的收货点）
type Stop struct {
	OrderID    int64    `json:"order_id"`
	Location   Location `json:"location"`
	WeightKg   float64  `json:"weight_kg"`
	ValueCents int64    `json:"value_cents"`
}

// RoutePlan 一条优化后的配送路线
// 路线为 仓库 → 站点（按 StopOrder 顺序）→ 仓库
type RoutePlan struct {
	ID            string          `json:"id"`
	StopOrder     []int64         `json:"stop_order"`     // 订单ID的访问顺序
	Unrouted      []int64         `json:"unrouted"`       // 缺少坐标、未参与优化的订单
	DistanceKm    float64         `json:"distance_km"`    // 总距离（公里）
	DurationHours float64         `json:"duration_hours"` // 预计耗时（小时）
	Score         int             `json:"score"`          // 优化评分 0-100，越高越好
	FuelCostCents int64           `json:"fuel_cost_cents"`
	Comparison    RouteComparison `json:"comparison"`
	ComputedAt    time.Time       `json:"computed_at"`
}

// RouteComparison 双路线对比记录（可观测性用）
type RouteComparison struct {
	Chosen            string  `json:"chosen"` // "A" 或 "B"
	DistanceAKm       float64 `json:"distance_a_km"`
	DistanceBKm       float64 `json:"distance_b_km"`
	ImprovementKm     float64 `json:"improvement_km"` // 相对落选路线的距离改进
	RefinementApplied bool    `json:"refinement_applied"`
}

// OptimizerConfig 遗传算法配置
type OptimizerConfig struct {
	PopulationSize int     `json:"population_size"`
	MaxGenerations int     `json:"max_generations"`
	Patience       int     `json:"patience"`      // 连续多少代无改进则提前停止
	MutationRate   float64 `json:"mutation_rate"` // 交换变异概率
	EliteCount     int     `json:"elite_count"`

	AvgSpeedKmh        float64 `json:"avg_speed_kmh"`
	KmPerLiter         float64 `json:"km_per_liter"`
	FuelPriceCentsPerL int64   `json:"fuel_price_cents_per_l"`

	// 双路线搜索的随机种子；相同输入和种子产生相同结果
	SeedA int64 `json:"seed_a"`
	SeedB int64 `json:"seed_b"`
}

// DefaultOptimizerConfig 默认配置
func DefaultOptimizerConfig() OptimizerConfig {
	return OptimizerConfig{
		PopulationSize:     120,
		MaxGenerations:     400,
		Patience:           60,
		MutationRate:       0.025,
		EliteCount:         6,
		AvgSpeedKmh:        40,
		KmPerLiter:         10,
		FuelPriceCentsPerL: 6500, // ₱65.00/L
		SeedA:              1,
		SeedB:              2,
	}
}
