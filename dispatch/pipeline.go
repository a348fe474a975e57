package dispatch

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
)

// Pipeline 调度流水线：形成 → 合并 → 指派
type Pipeline struct {
	former   *Former
	merger   *Merger
	assigner *Assigner
}

// NewPipeline 创建调度流水线
func NewPipeline(former *Former, merger *Merger, assigner *Assigner) *Pipeline {
	return &Pipeline{
		former:   former,
		merger:   merger,
		assigner: assigner,
	}
}

// RunPass 跑一轮完整的调度。单个阶段失败只记录并汇总上报，
// 不阻断后续阶段：合并失败不应该挡住已成形批次的指派。
func (p *Pipeline) RunPass(ctx context.Context) error {
	var errs []error

	stages := []struct {
		name string
		run  func(context.Context) error
	}{
		{"formation", p.former.FormPass},
		{"merge", p.merger.MergePass},
		{"assignment", p.assigner.AssignPass},
	}

	for _, stage := range stages {
		start := time.Now()
		err := stage.run(ctx)
		observeStage(stage.name, time.Since(start).Seconds(), err)
		if err != nil {
			log.Error().Err(err).Str("stage", stage.name).Msg("dispatch stage failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
