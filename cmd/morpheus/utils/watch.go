// Package utils provides refresh mode functionality for continuous CLI monitoring.
//
// List commands accept --refresh N to redraw their output every N seconds
// until interrupted, which is handy while waiting for invoices to recalculate
// or networks to finish syncing.
package utils

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"
	"time"

	"github.com/concave-dev/morpheus-cli/internal/logging"
)

// refreshUnit is the unit of the --refresh interval.
var refreshUnit = time.Second

// RunWithRefresh executes fn once, or repeatedly every interval seconds when
// interval is positive. The screen is cleared before each redraw. The loop
// ends on SIGINT/SIGTERM or when ctx is cancelled; errors after the first
// successful draw are logged and the loop keeps going.
func RunWithRefresh(ctx context.Context, out io.Writer, interval int, fn func(context.Context) error) error {
	if interval <= 0 {
		return fn(ctx)
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(time.Duration(interval) * refreshUnit)
	defer ticker.Stop()

	every := FormatDuration(time.Duration(interval) * refreshUnit)
	fmt.Fprint(out, "\033[2J\033[H")
	if err := fn(ctx); err != nil {
		return err
	}
	fmt.Fprintf(out, "\nRefreshing every %s (Ctrl+C to stop)\n", every)

	for {
		select {
		case <-ticker.C:
			fmt.Fprint(out, "\033[2J\033[H")
			if err := fn(ctx); err != nil {
				logging.Error("Error refreshing display: %v", err)
				continue
			}
			fmt.Fprintf(out, "\nRefreshing every %s (Ctrl+C to stop)\n", every)
		case <-ctx.Done():
			fmt.Fprintln(out, "\nRefresh interrupted")
			return nil
		}
	}
}
