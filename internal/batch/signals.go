package batch

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

// installSignalCleanup derives a cancellable context from ctx that is
// canceled on SIGINT/SIGTERM, and returns a cleanup function the
// caller invokes with the set of temp files (batch + result) to remove.
// Cancellation stops new batches from starting; batches already in
// progress run to completion. The signal is not re-raised: Run removes
// the temp files and returns an "interrupted" error.
func installSignalCleanup(ctx context.Context, logger logrus.FieldLogger) (context.Context, context.CancelFunc, func(tempFiles []string)) {
	sigCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)

	cleanup := func(tempFiles []string) {
		stop()
		if sigCtx.Err() != nil {
			logger.Warn("batch: interrupt received, cleaning up temporary files")
		}
		RemoveTempFiles(tempFiles...)
	}
	return sigCtx, stop, cleanup
}
