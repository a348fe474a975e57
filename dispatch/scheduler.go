package dispatch

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
)

// 单轮调度的超时上限，防止外部协作方挂起拖死后续轮次
const passTimeout = 5 * time.Minute

// Scheduler 调度器：按固定周期跑流水线，另在每日服务日边界
// （司机可用性重置的时刻）补跑一轮指派
type Scheduler struct {
	cron         *cron.Cron
	pipeline     *Pipeline
	interval     time.Duration
	boundaryHour int
}

// NewScheduler 创建调度器
func NewScheduler(pipeline *Pipeline, interval time.Duration, boundaryHour int) *Scheduler {
	return &Scheduler{
		cron:         cron.New(),
		pipeline:     pipeline,
		interval:     interval,
		boundaryHour: boundaryHour,
	}
}

// Start 启动调度器
func (s *Scheduler) Start() error {
	// 周期性调度
	_, err := s.cron.AddFunc(fmt.Sprintf("@every %s", s.interval), s.runPass)
	if err != nil {
		return fmt.Errorf("schedule periodic pass: %w", err)
	}

	// 服务日边界：司机刚刚重置，昨天没派出去的批次马上再试一轮
	_, err = s.cron.AddFunc(fmt.Sprintf("0 %d * * *", s.boundaryHour), s.runPass)
	if err != nil {
		return fmt.Errorf("schedule boundary pass: %w", err)
	}

	s.cron.Start()
	log.Info().
		Dur("interval", s.interval).
		Int("boundary_hour", s.boundaryHour).
		Msg("dispatch scheduler started")

	// 启动时立即执行一次
	go s.runPass()

	return nil
}

// Stop 停止调度器，等待进行中的一轮跑完
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Info().Msg("dispatch scheduler stopped")
}

func (s *Scheduler) runPass() {
	ctx, cancel := context.WithTimeout(context.Background(), passTimeout)
	defer cancel()

	if err := s.pipeline.RunPass(ctx); err != nil {
		log.Error().Err(err).Msg("dispatch pass finished with errors")
	}
}
