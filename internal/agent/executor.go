package agent

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/ibeckermayer/judgmentroutingbot/internal/metrics"
	"github.com/ibeckermayer/judgmentroutingbot/internal/platform"
)

// Outcome classifies the result of a single platform action
type Outcome string

const (
	OutcomeSuccess   Outcome = metrics.OutcomeSuccess
	OutcomeDuplicate Outcome = metrics.OutcomeDuplicate
	OutcomeThrottled Outcome = metrics.OutcomeThrottled
	OutcomeFailed    Outcome = metrics.OutcomeFailed
	OutcomeSkipped   Outcome = metrics.OutcomeSkipped
)

// Done reports whether the action took effect or had already taken effect
func (o Outcome) Done() bool {
	return o == OutcomeSuccess || o == OutcomeDuplicate
}

// Classify maps an action error onto an outcome
func Classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeSuccess
	case platform.IsDuplicate(err):
		return OutcomeDuplicate
	case platform.IsThrottled(err):
		return OutcomeThrottled
	default:
		return OutcomeFailed
	}
}

// Executor performs side-effecting platform calls exactly once each and
// reports how they went. It never retries; the next cycle is the retry.
type Executor struct {
	log     logrus.FieldLogger
	metrics *metrics.Metrics
}

// NewExecutor creates an executor
func NewExecutor(logger logrus.FieldLogger, m *metrics.Metrics) *Executor {
	return &Executor{log: logger, metrics: m}
}

// Run calls fn once and classifies its error. Benign duplicates log at
// debug, rate limits at warn, other failures at error.
func (e *Executor) Run(ctx context.Context, action string, fields logrus.Fields, fn func(ctx context.Context) error) (Outcome, error) {
	err := fn(ctx)
	outcome := Classify(err)
	if err != nil && errors.Is(err, context.Canceled) {
		outcome = OutcomeSkipped
	}

	log := e.log.WithFields(fields).WithField("action", action)
	switch outcome {
	case OutcomeSuccess:
		log.Info("action succeeded")
	case OutcomeDuplicate:
		log.WithError(err).Debug("action already performed")
	case OutcomeThrottled:
		log.WithError(err).Warn("rate limited, dropping action until next cycle")
	case OutcomeSkipped:
		log.WithError(err).Debug("action canceled")
	default:
		log.WithError(err).Error("action failed")
	}

	if e.metrics != nil {
		e.metrics.Action(action, string(outcome))
	}
	return outcome, err
}

// Skip records an action that was not attempted
func (e *Executor) Skip(action string, fields logrus.Fields, reason string) {
	e.log.WithFields(fields).WithField("action", action).Info(reason)
	if e.metrics != nil {
		e.metrics.Action(action, string(OutcomeSkipped))
	}
}
