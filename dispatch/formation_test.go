package dispatch

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mockdb "github.com/deliveryease/dispatch/db/mock"
	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/geocode"
)

func TestFormPassAttachesApprovedOrders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)
	events := &recorderEvents{}

	orders := []db.Order{
		{
			ID:             1,
			Locality:       "Riverside",
			WeightKg:       800,
			Latitude:       pgtype.Float8{Float64: 8.480, Valid: true},
			Longitude:      pgtype.Float8{Float64: 124.630, Valid: true},
			ApprovalStatus: db.OrderApprovalApproved,
		},
		{
			ID:             2,
			Locality:       "Riverside",
			WeightKg:       600,
			Latitude:       pgtype.Float8{Float64: 8.482, Valid: true},
			Longitude:      pgtype.Float8{Float64: 124.632, Valid: true},
			ApprovalStatus: db.OrderApprovalApproved,
		},
	}

	store.EXPECT().
		ListApprovedOrdersWithoutBatch(gomock.Any()).
		Times(1).
		Return(orders, nil)

	batch := db.Batch{ID: 5, Label: "Riverside", Status: db.BatchStatusPending}
	for _, order := range orders {
		store.EXPECT().
			AddOrderToBatchTx(gomock.Any(), gomock.Eq(db.AddOrderToBatchTxParams{
				OrderID:     order.ID,
				MaxWeightKg: 5000,
			})).
			Times(1).
			Return(db.AddOrderToBatchTxResult{Order: order, Batch: batch}, nil)
	}

	former := NewFormer(store, &fakeGeocoder{}, events, 5000)
	err := former.FormPass(context.Background())
	require.NoError(t, err)

	// 两个订单进了同一个批次，重算事件只发一次
	require.Equal(t, []int64{5}, events.invalidated)
}

func TestFormPassSkipsOrderWithoutLocality(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().
		ListApprovedOrdersWithoutBatch(gomock.Any()).
		Times(1).
		Return([]db.Order{
			{ID: 1, Locality: "", WeightKg: 500, ApprovalStatus: db.OrderApprovalApproved},
		}, nil)
	// 没有地区标签的订单不入批：AddOrderToBatchTx 不应被调用

	former := NewFormer(store, &fakeGeocoder{}, &recorderEvents{}, 5000)
	err := former.FormPass(context.Background())
	require.NoError(t, err)
}

func TestFormPassBackfillsMissingLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	order := db.Order{ID: 3, Locality: "Lakeside", WeightKg: 400, ApprovalStatus: db.OrderApprovalApproved}
	store.EXPECT().
		ListApprovedOrdersWithoutBatch(gomock.Any()).
		Times(1).
		Return([]db.Order{order}, nil)

	geocoder := &fakeGeocoder{result: &geocode.Result{Latitude: 8.475, Longitude: 124.640}}
	store.EXPECT().
		UpdateOrderLocation(gomock.Any(), gomock.Eq(db.UpdateOrderLocationParams{
			ID:        order.ID,
			Latitude:  pgtype.Float8{Float64: 8.475, Valid: true},
			Longitude: pgtype.Float8{Float64: 124.640, Valid: true},
		})).
		Times(1).
		Return(order, nil)
	store.EXPECT().
		AddOrderToBatchTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.AddOrderToBatchTxResult{Batch: db.Batch{ID: 6}}, nil)

	former := NewFormer(store, geocoder, &recorderEvents{}, 5000)
	err := former.FormPass(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, geocoder.calls)
}

func TestFormPassGeocodeFailureStillBatches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	order := db.Order{ID: 4, Locality: "Hillside", WeightKg: 300, ApprovalStatus: db.OrderApprovalApproved}
	store.EXPECT().
		ListApprovedOrdersWithoutBatch(gomock.Any()).
		Times(1).
		Return([]db.Order{order}, nil)

	// 编码失败：不写坐标，但订单照常入批
	store.EXPECT().
		AddOrderToBatchTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.AddOrderToBatchTxResult{Batch: db.Batch{ID: 7}}, nil)

	former := NewFormer(store, &fakeGeocoder{err: errBoom}, &recorderEvents{}, 5000)
	err := former.FormPass(context.Background())
	require.NoError(t, err)
}

func TestFormPassOneBadOrderDoesNotBlockRest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)
	events := &recorderEvents{}

	orders := []db.Order{
		{ID: 1, Locality: "Riverside", WeightKg: 800, Latitude: pgtype.Float8{Float64: 8.48, Valid: true}, Longitude: pgtype.Float8{Float64: 124.63, Valid: true}},
		{ID: 2, Locality: "Lakeside", WeightKg: 600, Latitude: pgtype.Float8{Float64: 8.47, Valid: true}, Longitude: pgtype.Float8{Float64: 124.64, Valid: true}},
	}
	store.EXPECT().
		ListApprovedOrdersWithoutBatch(gomock.Any()).
		Times(1).
		Return(orders, nil)

	first := store.EXPECT().
		AddOrderToBatchTx(gomock.Any(), gomock.Any()).
		Times(1).
		Return(db.AddOrderToBatchTxResult{}, errBoom)
	store.EXPECT().
		AddOrderToBatchTx(gomock.Any(), gomock.Any()).
		Times(1).
		After(first).
		Return(db.AddOrderToBatchTxResult{Batch: db.Batch{ID: 9}}, nil)

	former := NewFormer(store, &fakeGeocoder{}, events, 5000)
	err := former.FormPass(context.Background())
	require.NoError(t, err)
	require.Equal(t, []int64{9}, events.invalidated)
}
