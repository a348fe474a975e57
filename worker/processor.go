package worker

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"

	db "github.com/deliveryease/dispatch/db/sqlc"
	"github.com/deliveryease/dispatch/dispatch"
)

const (
	QueueCritical = "critical"
	QueueDefault  = "default"
)

// DispatchPipeline 一轮完整调度（形成 → 合并 → 指派）的入口
type DispatchPipeline interface {
	RunPass(ctx context.Context) error
}

// TaskProcessor 任务处理接口
type TaskProcessor interface {
	Start() error
	Shutdown()
	// ProcessTaskOptimizeRoute 处理路线优化任务
	ProcessTaskOptimizeRoute(ctx context.Context, task *asynq.Task) error
	// ProcessTaskDispatchPass 处理调度轮次任务
	ProcessTaskDispatchPass(ctx context.Context, task *asynq.Task) error
	// ProcessTaskSendNotification 处理发送通知任务
	ProcessTaskSendNotification(ctx context.Context, task *asynq.Task) error
}

type RedisTaskProcessor struct {
	server   *asynq.Server
	store    db.Store
	planner  dispatch.RoutePlanner // 路线优化入口（内部带缓存）
	pipeline DispatchPipeline
}

func NewRedisTaskProcessor(
	redisOpt asynq.RedisClientOpt,
	store db.Store,
	planner dispatch.RoutePlanner,
	pipeline DispatchPipeline,
) TaskProcessor {
	logger := NewLogger()
	redis.SetLogger(logger)

	server := asynq.NewServer(
		redisOpt,
		asynq.Config{
			Queues: map[string]int{
				QueueCritical: 10,
				QueueDefault:  5,
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				log.Error().Err(err).Str("type", task.Type()).
					Bytes("payload", task.Payload()).Msg("process task failed")
			}),
			Logger:          logger,
			ShutdownTimeout: 10 * time.Second,
		},
	)

	return &RedisTaskProcessor{
		server:   server,
		store:    store,
		planner:  planner,
		pipeline: pipeline,
	}
}

// NewTestTaskProcessor 创建用于测试的处理器实例（不需要Redis连接）
func NewTestTaskProcessor(
	store db.Store,
	planner dispatch.RoutePlanner,
	pipeline DispatchPipeline,
) *RedisTaskProcessor {
	return &RedisTaskProcessor{
		store:    store,
		planner:  planner,
		pipeline: pipeline,
	}
}

func (processor *RedisTaskProcessor) Start() error {
	mux := asynq.NewServeMux()

	// 注册任务处理器
	mux.HandleFunc(TaskOptimizeRoute, processor.ProcessTaskOptimizeRoute)
	mux.HandleFunc(TaskDispatchPass, processor.ProcessTaskDispatchPass)
	mux.HandleFunc(TaskSendNotification, processor.ProcessTaskSendNotification)

	return processor.server.Start(mux)
}

func (processor *RedisTaskProcessor) Shutdown() {
	processor.server.Shutdown()
}
