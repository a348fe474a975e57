package algorithm

import "math"

const (
	// 地球半径（公里）
	earthRadiusKm = 6371.0
)

// HaversineKm 计算两点间的球面距离（公里）
// 使用 Haversine 公式
func HaversineKm(loc1, loc2 Location) float64 {
	lat1 := toRadians(loc1.Latitude)
	lat2 := toRadians(loc2.Latitude)
	deltaLat := toRadians(loc2.Latitude - loc1.Latitude)
	deltaLng := toRadians(loc2.Longitude - loc1.Longitude)

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// CenterPoint 计算多个点的中心点（算术平均）
func CenterPoint(locations []Location) Location {
	if len(locations) == 0 {
		return Location{}
	}
	if len(locations) == 1 {
		return locations[0]
	}

	var sumLat, sumLng float64
	for _, loc := range locations {
		sumLat += loc.Latitude
		sumLng += loc.Longitude
	}

	n := float64(len(locations))
	return Location{
		Longitude: sumLng / n,
		Latitude:  sumLat / n,
	}
}

// EstimateTravelHours 按平均车速估算行驶时间（小时）
func EstimateTravelHours(distanceKm, avgSpeedKmh float64) float64 {
	if distanceKm <= 0 || avgSpeedKmh <= 0 {
		return 0
	}
	return distanceKm / avgSpeedKmh
}

// RouteDistanceKm 计算 仓库 → 各站点（按给定顺序）→ 仓库 的总距离（公里）
func RouteDistanceKm(depot Location, points []Location) float64 {
	if len(points) == 0 {
		return 0
	}

	total := 0.0
	current := depot
	for _, p := range points {
		total += HaversineKm(current, p)
		current = p
	}
	total += HaversineKm(current, depot)
	return total
}

// toRadians 角度转弧度
func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
