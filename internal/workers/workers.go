package workers

import (
	"github.com/keybridge-io/keybridge/internal/config"
	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. A zero
// VerifyInterval disables the account-verify worker.
func NewWorkers(cfg config.Workers, services *service.Services, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.VerifyInterval > 0 {
		w.workers = append(w.workers, newVerifyWorker(services.VerifyService, cfg.VerifyInterval, logger))
	}

	return w
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
