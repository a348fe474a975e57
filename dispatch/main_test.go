package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/deliveryease/dispatch/algorithm"
	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/geocode"
)

// recorderEvents 记录引擎触发的副作用，供断言用
type recorderEvents struct {
	mu          sync.Mutex
	assigned    []int64 // batch IDs
	delivered   []int64 // batch IDs
	invalidated []int64 // batch IDs
}

func (r *recorderEvents) BatchAssigned(ctx context.Context, batch db.Batch, driver db.Driver) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.assigned = append(r.assigned, batch.ID)
}

func (r *recorderEvents) BatchDelivered(ctx context.Context, batch db.Batch) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delivered = append(r.delivered, batch.ID)
}

func (r *recorderEvents) RoutePlanInvalidated(ctx context.Context, batchID int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.invalidated = append(r.invalidated, batchID)
}

// fakeGeocoder 固定返回一个点或一个错误
type fakeGeocoder struct {
	result *geocode.Result
	err    error
	calls  int
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (*geocode.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

// fakePlanner 固定返回一条路线或一个错误
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

var errBoom = errors.New("boom")
