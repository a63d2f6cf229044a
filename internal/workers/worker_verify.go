// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/keybridge-io/keybridge/internal/logger"
	"github.com/keybridge-io/keybridge/internal/service"
)

// verifyWorker periodically checks every stored team against the remote
// vault, so inactive or payment-blocked accounts surface in the logs before
// a redemption fails for an agent.
type verifyWorker struct {
	verify   service.VerifyService
	interval time.Duration

	logger *logger.Logger
}

func newVerifyWorker(verify service.VerifyService, interval time.Duration, logger *logger.Logger) *verifyWorker {
	return &verifyWorker{
		verify:   verify,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the periodic sweep in a background goroutine and returns
// immediately. The goroutine lives for the remainder of the process.
func (w *verifyWorker) Run() {
	w.logger.Info().Dur("interval", w.interval).Msg("starting account-verify worker")

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for range ticker.C {
			w.sweep()
		}
	}()
}

func (w *verifyWorker) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), w.interval)
	defer cancel()

	if err := w.verify.VerifyAllTeams(ctx); err != nil {
		w.logger.Err(err).Msg("account-verify sweep failed")
		return
	}

	w.logger.Debug().Msg("account-verify sweep finished")
}
