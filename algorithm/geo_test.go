package algorithm

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHaversineKm(t *testing.T) {
	// 测试：市中心仓库到利姆克特基地（约 8.7km）
	depot := Location{Longitude: 124.6319, Latitude: 8.4542}
	lumbia := Location{Longitude: 124.6110, Latitude: 8.3760}

	distance := HaversineKm(depot, lumbia)
	require.InDelta(t, 8.8, distance, 0.5)

	// 同一点距离为 0
	d0 := HaversineKm(depot, depot)
	require.Equal(t, 0.0, d0)
}

func TestCenterPoint(t *testing.T) {
	locations := []Location{
		{Longitude: 124.60, Latitude: 8.40},
		{Longitude: 124.70, Latitude: 8.50},
	}
	center := CenterPoint(locations)
	require.InDelta(t, 124.65, center.Longitude, 0.001)
	require.InDelta(t, 8.45, center.Latitude, 0.001)

	// 空列表
	empty := CenterPoint([]Location{})
	require.Equal(t, Location{}, empty)

	// 单点
	single := CenterPoint(locations[:1])
	require.Equal(t, locations[0], single)
}

func TestEstimateTravelHours(t *testing.T) {
	require.InDelta(t, 0.5, EstimateTravelHours(20, 40), 0.001)
	require.Equal(t, 0.0, EstimateTravelHours(0, 40))
	require.Equal(t, 0.0, EstimateTravelHours(10, 0))
}

func TestRouteDistanceKm(t *testing.T) {
	depot := Location{Longitude: 124.6319, Latitude: 8.4542}
	points := []Location{
		{Longitude: 124.6400, Latitude: 8.4600},
		{Longitude: 124.6500, Latitude: 8.4700},
	}

	total := RouteDistanceKm(depot, points)
	legs := HaversineKm(depot, points[0]) +
		HaversineKm(points[0], points[1]) +
		HaversineKm(points[1], depot)
	require.InDelta(t, legs, total, 1e-9)

	require.Equal(t, 0.0, RouteDistanceKm(depot, nil))
}
