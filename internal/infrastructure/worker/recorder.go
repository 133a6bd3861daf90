package worker

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/achaudhary7/SilverInfo-sub002/internal/application"
)

var _ application.Worker = (*Recorder)(nil)

// Recorder periodically resolves a fresh price and writes the day's ledger
// entry. Repeated runs within a day simply overwrite that day's row.
type Recorder struct {
	Svc   *application.PriceService
	Every time.Duration
	Log   *zap.Logger
}

func (w *Recorder) Start(ctx context.Context) {
	log := w.Log
	if log == nil {
		log = zap.NewNop()
	}
	if w.Every <= 0 {
		w.Every = 6 * time.Hour
	}

	t := time.NewTicker(w.Every)
	defer t.Stop()

	log.Info("recorder_started", zap.Duration("every", w.Every))
	w.tick(ctx, log)
	for {
		select {
		case <-ctx.Done():
			log.Info("recorder_stopped")
			return
		case <-t.C:
			w.tick(ctx, log)
		}
	}
}

func (w *Recorder) tick(ctx context.Context, log *zap.Logger) {
	entry, err := w.Svc.RecordToday(ctx)
	if err != nil {
		if errors.Is(err, application.ErrSimulatedPrice) {
			log.Warn("record_skipped", zap.Error(err), zap.NamedError("cause", w.Svc.ResolverError()))
			return
		}
		log.Warn("record_failed", zap.Error(err))
		return
	}
	log.Info("record_done",
		zap.String("date", entry.Date.Format("2006-01-02")),
		zap.Float64("gram", entry.Gram),
		zap.String("source", string(entry.Source)),
	)
}
