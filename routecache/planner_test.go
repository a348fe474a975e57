package routecache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deliveryease/dispatch/algorithm"
	mockdb "github.com/deliveryease/dispatch/db/mock"
	db "github.com/deliveryease/dispatch/db/sqlc"
)

var testDepot = algorithm.Location{Longitude: 124.6319, Latitude: 8.4542}

func newTestCache(t *testing.T) Cache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewCacheWithClient(client)
}

func batchOrders(batchID int64) []db.Order {
	return []db.Order{
		{
			ID:        201,
			WeightKg:  400,
			Latitude:  pgtype.Float8{Float64: 8.4800, Valid: true},
			Longitude: pgtype.Float8{Float64: 124.6450, Valid: true},
			BatchID:   pgtype.Int8{Int64: batchID, Valid: true},
		},
		{
			ID:        202,
			WeightKg:  300,
			Latitude:  pgtype.Float8{Float64: 8.4300, Valid: true},
			Longitude: pgtype.Float8{Float64: 124.6100, Valid: true},
			BatchID:   pgtype.Int8{Int64: batchID, Valid: true},
		},
		{
			ID:        203,
			WeightKg:  250,
			Latitude:  pgtype.Float8{Float64: 8.4650, Valid: true},
			Longitude: pgtype.Float8{Float64: 124.6550, Valid: true},
			BatchID:   pgtype.Int8{Int64: batchID, Valid: true},
		},
	}
}

func TestPlanForBatchComputesAndCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)
	cache := newTestCache(t)

	const batchID = int64(7)
	orders := batchOrders(batchID)

	// 第二次调用应命中缓存，但订单列表每次都会读取
	store.EXPECT().
		ListBatchOrders(gomock.Any(), gomock.Eq(pgtype.Int8{Int64: batchID, Valid: true})).
		Times(2).
		Return(orders, nil)

	planner := NewPlanner(store, cache, testDepot, algorithm.DefaultOptimizerConfig())

	plan1, err := planner.PlanForBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.Len(t, plan1.StopOrder, 3)

	plan2, err := planner.PlanForBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.Equal(t, plan1.ID, plan2.ID, "second call should return the cached plan")
	require.Equal(t, plan1.StopOrder, plan2.StopOrder)
}

func TestPlanForBatchRecomputesWhenStopSetChanges(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)
	cache := newTestCache(t)

	const batchID = int64(8)
	orders := batchOrders(batchID)

	first := store.EXPECT().
		ListBatchOrders(gomock.Any(), gomock.Any()).
		Times(1).
		Return(orders, nil)

	// 批次吸收了一个新订单：站点集合变化，缓存路线作废
	grown := append([]db.Order{}, orders...)
	grown = append(grown, db.Order{
		ID:        204,
		WeightKg:  100,
		Latitude:  pgtype.Float8{Float64: 8.4900, Valid: true},
		Longitude: pgtype.Float8{Float64: 124.6000, Valid: true},
		BatchID:   pgtype.Int8{Int64: batchID, Valid: true},
	})
	store.EXPECT().
		ListBatchOrders(gomock.Any(), gomock.Any()).
		Times(1).
		After(first).
		Return(grown, nil)

	planner := NewPlanner(store, cache, testDepot, algorithm.DefaultOptimizerConfig())

	plan1, err := planner.PlanForBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.Len(t, plan1.StopOrder, 3)

	plan2, err := planner.PlanForBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.NotEqual(t, plan1.ID, plan2.ID, "changed stop set must invalidate the cached plan")
	require.Len(t, plan2.StopOrder, 4)
}

func TestPlanForBatchCompletionDoesNotInvalidate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)
	cache := newTestCache(t)

	const batchID = int64(9)
	orders := batchOrders(batchID)

	first := store.EXPECT().
		ListBatchOrders(gomock.Any(), gomock.Any()).
		Times(1).
		Return(orders, nil)

	// 一个站点完成送达：集合不变，只有状态变了
	delivered := append([]db.Order{}, orders...)
	delivered[0].DeliveryStatus = db.OrderDeliveryDelivered
	store.EXPECT().
		ListBatchOrders(gomock.Any(), gomock.Any()).
		Times(1).
		After(first).
		Return(delivered, nil)

	planner := NewPlanner(store, cache, testDepot, algorithm.DefaultOptimizerConfig())

	plan1, err := planner.PlanForBatch(context.Background(), batchID)
	require.NoError(t, err)

	plan2, err := planner.PlanForBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.Equal(t, plan1.ID, plan2.ID, "stop completion must not trigger recomputation")
}

func TestFingerprintIgnoresUngeocodedStops(t *testing.T) {
	stops := []algorithm.Stop{
		{OrderID: 1, Location: algorithm.Location{Latitude: 8.48, Longitude: 124.64}},
		{OrderID: 2},
	}
	withExtra := append([]algorithm.Stop{}, stops...)
	withExtra = append(withExtra, algorithm.Stop{OrderID: 3})

	// 缺坐标的站点不参与指纹
	require.Equal(t, Fingerprint(stops), Fingerprint(withExtra))
}

func TestFingerprintOrderIndependent(t *testing.T) {
	a := algorithm.Stop{OrderID: 1, Location: algorithm.Location{Latitude: 8.48, Longitude: 124.64}}
	b := algorithm.Stop{OrderID: 2, Location: algorithm.Location{Latitude: 8.43, Longitude: 124.61}}

	require.Equal(t,
		Fingerprint([]algorithm.Stop{a, b}),
		Fingerprint([]algorithm.Stop{b, a}),
	)
}
