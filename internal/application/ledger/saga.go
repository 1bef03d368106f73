package ledger

import (
	"context"

	"go.uber.org/zap"
)

// sagaStep is one (apply, compensate) pair in a multi-record operation. The
// store only guarantees atomicity per record, so cross-record consistency is
// faked by running steps in order and compensating the applied prefix in
// reverse when a later step fails.
type sagaStep struct {
	name       string
	apply      func(ctx context.Context) error
	compensate func(ctx context.Context) error
}

// saga executes steps sequentially and tracks which ones have been applied
type saga struct {
	log     *zap.Logger
	applied []sagaStep
}

func newSaga(log *zap.Logger) *saga {
	return &saga{log: log}
}

// run applies one step. On failure it compensates every previously applied
// step in reverse order and returns the step's original error.
func (s *saga) run(ctx context.Context, step sagaStep) error {
	if err := step.apply(ctx); err != nil {
		s.log.Warn("saga step failed, rolling back",
			zap.String("step", step.name),
			zap.Int("applied_steps", len(s.applied)),
			zap.Error(err),
		)
		s.rollback(ctx)
		return err
	}
	s.applied = append(s.applied, step)
	return nil
}

// rollback compensates applied steps in reverse order. Compensation is
// best-effort: a failing compensating write is logged and the remaining
// compensations still run. Operators should alert on these log entries, the
// store may be left inconsistent.
func (s *saga) rollback(ctx context.Context) {
	for i := len(s.applied) - 1; i >= 0; i-- {
		step := s.applied[i]
		if step.compensate == nil {
			continue
		}
		if err := step.compensate(ctx); err != nil {
			s.log.Error("compensation failed",
				zap.String("step", step.name),
				zap.Error(err),
			)
		}
	}
	s.applied = nil
}
