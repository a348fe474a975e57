package worker

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/deliveryease/dispatch/algorithm"
	mockdb "github.com/deliveryease/dispatch/db/mock"
	db "github.com/deliveryease/dispatch/db/sqlc"
)

type fakePlanner struct {
	plan    algorithm.RoutePlan
	batchID int64
}

func (f *fakePlanner) PlanForBatch(ctx context.Context, batchID int64) (algorithm.RoutePlan, error) {
	f.batchID = batchID
	return f.plan, nil
}

type fakePipeline struct {
	runs int
}

func (f *fakePipeline) RunPass(ctx context.Context) error {
	f.runs++
	return nil
}

func TestProcessTaskOptimizeRoute(t *testing.T) {
	planner := &fakePlanner{plan: algorithm.RoutePlan{StopOrder: []int64{2, 1}}}
	processor := NewTestTaskProcessor(nil, planner, nil)

	payload, err := json.Marshal(&OptimizeRoutePayload{BatchID: 42})
	require.NoError(t, err)

	task := asynq.NewTask(TaskOptimizeRoute, payload)
	err = processor.ProcessTaskOptimizeRoute(context.Background(), task)
	require.NoError(t, err)
	require.Equal(t, int64(42), planner.batchID)
}

func TestProcessTaskOptimizeRouteBadPayload(t *testing.T) {
	processor := NewTestTaskProcessor(nil, &fakePlanner{}, nil)

	task := asynq.NewTask(TaskOptimizeRoute, []byte("not json"))
	err := processor.ProcessTaskOptimizeRoute(context.Background(), task)
	require.Error(t, err)
}

func TestProcessTaskDispatchPass(t *testing.T) {
	pipeline := &fakePipeline{}
	processor := NewTestTaskProcessor(nil, nil, pipeline)

	payload, err := json.Marshal(&DispatchPassPayload{Reason: "order_approved"})
	require.NoError(t, err)

	task := asynq.NewTask(TaskDispatchPass, payload)
	err = processor.ProcessTaskDispatchPass(context.Background(), task)
	require.NoError(t, err)
	require.Equal(t, 1, pipeline.runs)
}

func TestProcessTaskSendNotification(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	store := mockdb.NewMockStore(ctrl)

	store.EXPECT().
		CreateNotification(gomock.Any(), gomock.Eq(db.CreateNotificationParams{
			DriverID:    pgtype.Int8{Int64: 7, Valid: true},
			Type:        "assignment",
			Title:       "新配送批次",
			Content:     "批次 Riverside（4000 kg）已指派给你",
			RelatedType: pgtype.Text{String: "batch", Valid: true},
			RelatedID:   pgtype.Int8{Int64: 10, Valid: true},
		})).
		Times(1).
		Return(db.Notification{ID: 1}, nil)

	processor := NewTestTaskProcessor(store, nil, nil)

	payload, err := json.Marshal(&SendNotificationPayload{
		DriverID:    7,
		Type:        "assignment",
		Title:       "新配送批次",
		Content:     "批次 Riverside（4000 kg）已指派给你",
		RelatedType: "batch",
		RelatedID:   10,
	})
	require.NoError(t, err)

	task := asynq.NewTask(TaskSendNotification, payload)
	err = processor.ProcessTaskSendNotification(context.Background(), task)
	require.NoError(t, err)
}
