package worker

import (
	"context"

	"github.com/hibiken/asynq"
)

// TaskDistributor 任务分发接口
type TaskDistributor interface {
	// DistributeTaskOptimizeRoute 分发路线优化任务
	DistributeTaskOptimizeRoute(
		ctx context.Context,
		payload *OptimizeRoutePayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskDispatchPass 分发一轮调度任务（订单审核通过、手动触发时使用）
	DistributeTaskDispatchPass(
		ctx context.Context,
		payload *DispatchPassPayload,
		opts ...asynq.Option,
	) error

	// DistributeTaskSendNotification 分发发送通知任务
	DistributeTaskSendNotification(
		ctx context.Context,
		payload *SendNotificationPayload,
		opts ...asynq.Option,
	) error
}

type RedisTaskDistributor struct {
	client *asynq.Client
}

func NewRedisTaskDistributor(redisOpt asynq.RedisClientOpt) TaskDistributor {
	client := asynq.NewClient(redisOpt)
	return &RedisTaskDistributor{
		client: client,
	}
}
