package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deliveryease/dispatch/algorithm"
	mockdb "github.com/deliveryease/dispatch/db/mock"
	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/dispatch"
)

func TestGetBatchAPI(t *testing.T) {
	batch := db.Batch{
		ID:            10,
		Label:         "Riverside",
		TotalWeightKg: 3400,
		MaxWeightKg:   5000,
		Status:        db.BatchStatusAssigned,
	}
	orders := []db.Order{
		{ID: 1, BatchID: pgtype.Int8{Int64: 10, Valid: true}},
		{ID: 2, BatchID: pgtype.Int8{Int64: 10, Valid: true}},
	}

	testCases := []struct {
		name          string
		batchID       string
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name:    "OK",
			batchID: "10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBatch(gomock.Any(), gomock.Eq(int64(10))).
					Times(1).
					Return(batch, nil)
				store.EXPECT().
					ListBatchOrders(gomock.Any(), gomock.Eq(pgtype.Int8{Int64: 10, Valid: true})).
					Times(1).
					Return(orders, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				data, err := io.ReadAll(recorder.Body)
				require.NoError(t, err)
				var got batchResponse
				require.NoError(t, json.Unmarshal(data, &got))
				require.Equal(t, batch.ID, got.Batch.ID)
				require.Len(t, got.Orders, 2)
			},
		},
		{
			name:    "NotFound",
			batchID: "99",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBatch(gomock.Any(), gomock.Eq(int64(99))).
					Times(1).
					Return(db.Batch{}, pgx.ErrNoRows)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusNotFound, recorder.Code)
			},
		},
		{
			name:       "InvalidID",
			batchID:    "0",
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
		{
			name:    "InternalError",
			batchID: "10",
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					GetBatch(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.Batch{}, errBoom)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusInternalServerError, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			server := newTestServer(t, store, nil, nil)
			recorder := httptest.NewRecorder()

			url := fmt.Sprintf("/v1/batches/%s", tc.batchID)
			request, err := http.NewRequest(http.MethodGet, url, nil)
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestGetBatchRouteAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	store.EXPECT().
		GetBatch(gomock.Any(), gomock.Eq(int64(10))).
		Times(1).
		Return(db.Batch{ID: 10, Status: db.BatchStatusAssigned}, nil)

	planner := &fakePlanner{plan: algorithm.RoutePlan{
		ID:         "plan-1",
		StopOrder:  []int64{2, 1, 3},
		DistanceKm: 12.5,
		Score:      78,
	}}

	server := newTestServer(t, store, planner, nil)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodGet, "/v1/batches/10/route", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusOK, recorder.Code)

	var got algorithm.RoutePlan
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
	require.Equal(t, []int64{2, 1, 3}, got.StopOrder)
	require.Equal(t, 78, got.Score)
}

func TestCompleteStopAPI(t *testing.T) {
	testCases := []struct {
		name          string
		body          gin.H
		buildStubs    func(store *mockdb.MockStore)
		checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	}{
		{
			name: "OK",
			body: gin.H{"driver_id": 7},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CompleteStopTx(gomock.Any(), gomock.Eq(db.CompleteStopTxParams{
						BatchID:  10,
						OrderID:  2,
						DriverID: 7,
					})).
					Times(1).
					Return(db.CompleteStopTxResult{
						Order:     db.Order{ID: 2, DeliveryStatus: db.OrderDeliveryDelivered},
						Batch:     db.Batch{ID: 10, Status: db.BatchStatusDelivering},
						Remaining: 1,
					}, nil)
				store.EXPECT().
					ListBatchOrders(gomock.Any(), gomock.Any()).
					Times(1).
					Return([]db.Order{
						{ID: 1, DeliveryStatus: db.OrderDeliveryPending},
						{ID: 2, DeliveryStatus: db.OrderDeliveryDelivered},
					}, nil)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusOK, recorder.Code)

				var got dispatch.StopResult
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &got))
				require.False(t, got.BatchComplete)
				require.Equal(t, int64(1), got.NextOrderID)
			},
		},
		{
			name: "WrongDriver",
			body: gin.H{"driver_id": 99},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CompleteStopTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CompleteStopTxResult{}, db.ErrNotAssignedDriver)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusForbidden, recorder.Code)
			},
		},
		{
			name: "OrderNotInBatch",
			body: gin.H{"driver_id": 7},
			buildStubs: func(store *mockdb.MockStore) {
				store.EXPECT().
					CompleteStopTx(gomock.Any(), gomock.Any()).
					Times(1).
					Return(db.CompleteStopTxResult{}, db.ErrOrderNotInBatch)
			},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusConflict, recorder.Code)
			},
		},
		{
			name:       "MissingDriverID",
			body:       gin.H{},
			buildStubs: func(store *mockdb.MockStore) {},
			checkResponse: func(t *testing.T, recorder *httptest.ResponseRecorder) {
				require.Equal(t, http.StatusBadRequest, recorder.Code)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			store := mockdb.NewMockStore(ctrl)
			tc.buildStubs(store)

			planner := &fakePlanner{plan: algorithm.RoutePlan{StopOrder: []int64{2, 1}}}
			server := newTestServer(t, store, planner, nil)
			recorder := httptest.NewRecorder()

			data, err := json.Marshal(tc.body)
			require.NoError(t, err)

			request, err := http.NewRequest(http.MethodPost, "/v1/batches/10/stops/2/complete", bytes.NewReader(data))
			require.NoError(t, err)

			server.router.ServeHTTP(recorder, request)
			tc.checkResponse(t, recorder)
		})
	}
}

func TestTriggerDispatchAPI(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	store := mockdb.NewMockStore(ctrl)
	distributor := &fakeDistributor{}

	server := newTestServer(t, store, nil, distributor)
	recorder := httptest.NewRecorder()

	request, err := http.NewRequest(http.MethodPost, "/v1/dispatch/run", nil)
	require.NoError(t, err)

	server.router.ServeHTTP(recorder, request)
	require.Equal(t, http.StatusAccepted, recorder.Code)
	require.Len(t, distributor.dispatchPayloads, 1)
	require.Equal(t, "manual", distributor.dispatchPayloads[0].Reason)
}
