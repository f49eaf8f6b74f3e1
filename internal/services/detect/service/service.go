// Package service implements the detect service
package service

import (
	"context"
	"sync"
	"time"

	"chardetcompat/internal/core/legacy"
	perr "chardetcompat/internal/platform/errors"
	"chardetcompat/internal/platform/logger"
	str "chardetcompat/internal/platform/strings"
	"chardetcompat/internal/services/detect/domain"
)

// Config for the detect service
type Config struct {
	RenameLegacy bool // default when Input.Rename is nil
	Workers      int
}

// Service implements domain.DetectorPort
type Service struct {
	Adapter domain.AdapterPort
	Cfg     Config
	log     *logger.Logger
}

// New constructs a new detect service
func New(adapter domain.AdapterPort, cfg Config, log *logger.Logger) *Service {
	if adapter == nil {
		panic("detect service: adapter is required")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if log == nil {
		log = logger.Named("detect")
	}
	return &Service{Adapter: adapter, Cfg: cfg, log: log}
}

// Detect runs one input through the adapter
func (s *Service) Detect(ctx context.Context, in domain.Input) (legacy.Result, error) {
	if err := ctx.Err(); err != nil {
		return legacy.Result{}, perr.Wrap(err, perr.ErrorCodeUnknown, "detect canceled")
	}

	rename := s.Cfg.RenameLegacy
	if in.Rename != nil {
		rename = *in.Rename
	}

	start := time.Now()
	res, err := s.Adapter.Detect(in.Data, legacy.Options{ShouldRenameLegacy: rename, Extra: in.Extra})
	if err != nil {
		s.log.Debug().Err(err).Str("source", in.Source).Msg("detect rejected input")
		return legacy.Result{}, perr.WithOp(err, "detect.Detect")
	}

	s.log.Debug().
		Str("source", in.Source).
		Str("encoding", str.DerefOr(res.Encoding, "none")).
		Float64("confidence", res.Confidence).
		Dur("took", time.Since(start)).
		Msg("detect done")
	return res, nil
}

// DetectAll runs xs on a bounded pool of Cfg.Workers goroutines
func (s *Service) DetectAll(ctx context.Context, xs []domain.Input) []domain.Output {
	out := make([]domain.Output, len(xs))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}

	for i := range xs {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			res, err := s.Detect(ctx, xs[i])
			out[i] = domain.Output{Source: xs[i].Source, Result: res, Err: err}
		}(i)
	}
	wg.Wait()

	return out
}
