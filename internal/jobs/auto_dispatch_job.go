package jobs

import (
	"context"
	"errors"
	"time"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/courier"
	"foodorder/internal/core/domain/model/order"
	"foodorder/internal/core/domain/services"
	"foodorder/internal/pkg/logger"
	"foodorder/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Dispatcher assigns the oldest open order to an available courier.
type Dispatcher interface {
	Handle(ctx context.Context, cmd commands.DispatchOpenOrderCommand) (*order.Order, error)
}

// AutoDispatchJob periodically pushes open orders to idle couriers through the
// admin assign transition, so it races courier claims under the same rules.
type AutoDispatchJob struct {
	handler  Dispatcher
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *zap.Logger
	metrics  *metrics.Metrics
}

// NewAutoDispatchJob takes a six field cron schedule (seconds first).
func NewAutoDispatchJob(
	handler Dispatcher,
	schedule string,
	timeout time.Duration,
	log *zap.Logger,
	m *metrics.Metrics,
) *AutoDispatchJob {
	return &AutoDispatchJob{
		handler:  handler,
		schedule: schedule,
		timeout:  timeout,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger:  log.With(logger.Component("auto_dispatch_job")),
		metrics: m,
	}
}

func (j *AutoDispatchJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.tick); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("auto dispatch job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running dispatch to finish.
func (j *AutoDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("auto dispatch job stopped")
}

func (j *AutoDispatchJob) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		j.logger.Error("auto dispatch failed", zap.Error(err))
	}
}

// RunOnce dispatches at most one order. Having nothing to dispatch and losing
// a race to a courier claim are not errors.
func (j *AutoDispatchJob) RunOnce(ctx context.Context) error {
	o, err := j.handler.Handle(ctx, commands.NewDispatchOpenOrderCommand())
	switch {
	case err == nil:
		j.metrics.ObserveDelivery("dispatch", metrics.OutcomeSuccess)
		j.logger.Info("order dispatched",
			zap.Stringer("order_id", o.ID()),
			zap.Stringer("courier_id", o.Courier()),
		)
		return nil
	case errors.Is(err, commands.ErrNoOpenOrders), errors.Is(err, services.ErrCourierNotFound):
		return nil
	case errors.Is(err, order.ErrAlreadyClaimed), errors.Is(err, courier.ErrCourierUnavailable):
		j.metrics.ObserveDelivery("dispatch", metrics.OutcomeConflict)
		j.logger.Debug("dispatch lost a race", zap.Error(err))
		return nil
	default:
		j.metrics.ObserveDelivery("dispatch", metrics.OutcomeError)
		return err
	}
}
