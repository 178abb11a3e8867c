package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	xlogger "github.com/nsurendrareddy/Crypto-Price-Predictor/pkg/logger"
)

// Warmer re-predicts a configured set of coins on a cron schedule so
// popular requests hit warm caches instead of paying for an upstream
// round-trip plus a model fit.
type Warmer struct {
	predictor  *Predictor
	logger     *xlogger.Logger
	cron       *cron.Cron
	schedule   string
	coins      []string
	vsCurrency string
}

func NewWarmer(predictor *Predictor, logger *xlogger.Logger, schedule string, coins []string, vsCurrency string) *Warmer {
	return &Warmer{
		predictor:  predictor,
		logger:     logger,
		cron:       cron.New(),
		schedule:   schedule,
		coins:      coins,
		vsCurrency: vsCurrency,
	}
}

// Start registers the refresh job and runs one initial pass in the
// background.
func (w *Warmer) Start() error {
	if len(w.coins) == 0 {
		return nil
	}
	if _, err := w.cron.AddFunc(w.schedule, w.refresh); err != nil {
		return fmt.Errorf("warmup schedule %q: %w", w.schedule, err)
	}
	w.cron.Start()
	go w.refresh()

	w.logger.Info("cache warmer started",
		xlogger.String("schedule", w.schedule),
		xlogger.Strings("coins", w.coins),
	)
	return nil
}

// Stop waits for a running refresh to finish, up to the context deadline.
func (w *Warmer) Stop(ctx context.Context) error {
	done := w.cron.Stop().Done()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Warmer) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	for _, coin := range w.coins {
		if _, err := w.predictor.Predict(ctx, coin, strings.ToUpper(coin), w.vsCurrency); err != nil {
			w.logger.Warn("cache warmup failed",
				xlogger.String("coin", coin),
				xlogger.Error(err),
			)
		}
	}
}
