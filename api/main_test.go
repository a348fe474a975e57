package api

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/require"

	"github.com/deliveryease/dispatch/algorithm"
	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/dispatch"
	"github.com/deliveryease/dispatch/util"
	"github.com/deliveryease/dispatch/worker"
)

// fakePlanner 固定返回一条路线
type fakePlanner struct {
	plan algorithm.RoutePlan
	err  error
}

func (f *fakePlanner) PlanForBatch(ctx context.Context, batchID int64) (algorithm.RoutePlan, error) {
	if f.err != nil {
		return algorithm.RoutePlan{}, f.err
	}
	return f.plan, nil
}

// fakeDistributor 记录入队的任务
type fakeDistributor struct {
	optimizePayloads     []*worker.OptimizeRoutePayload
	dispatchPayloads     []*worker.DispatchPassPayload
	notificationPayloads []*worker.SendNotificationPayload
	err                  error
}

func (f *fakeDistributor) DistributeTaskOptimizeRoute(ctx context.Context, payload *worker.OptimizeRoutePayload, opts ...asynq.Option) error {
	if f.err != nil {
		return f.err
	}
	f.optimizePayloads = append(f.optimizePayloads, payload)
	return nil
}

func (f *fakeDistributor) DistributeTaskDispatchPass(ctx context.Context, payload *worker.DispatchPassPayload, opts ...asynq.Option) error {
	if f.err != nil {
		return f.err
	}
	f.dispatchPayloads = append(f.dispatchPayloads, payload)
	return nil
}

func (f *fakeDistributor) DistributeTaskSendNotification(ctx context.Context, payload *worker.SendNotificationPayload, opts ...asynq.Option) error {
	if f.err != nil {
		return f.err
	}
	f.notificationPayloads = append(f.notificationPayloads, payload)
	return nil
}

func newTestServer(t *testing.T, store db.Store, planner dispatch.RoutePlanner, distributor worker.TaskDistributor) *Server {
	if planner == nil {
		planner = &fakePlanner{}
	}
	if distributor == nil {
		distributor = &fakeDistributor{}
	}

	config := util.Config{
		Environment: "test",
	}
	tracker := dispatch.NewTracker(store, planner, dispatch.NopEvents{})

	server, err := NewServer(config, store, planner, tracker, distributor)
	require.NoError(t, err)

	return server
}

var errBoom = errors.New("boom")

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	os.Exit(m.Run())
}
