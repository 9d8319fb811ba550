package tracker

import (
	"context"
	"time"
)

// Run calls tick every interval until ctx is done. It returns ctx.Err().
func Run(ctx context.Context, interval time.Duration, tick func(time.Time)) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			tick(now)
		}
	}
}
