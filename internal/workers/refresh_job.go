// Package workers runs the client's background jobs.
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/hwalton/snapcram/internal/logger"
	"github.com/hwalton/snapcram/internal/service"
)

// RefreshJob periodically re-mirrors the backend's deck list into the local
// cache while the user is logged in. Failures are logged and swallowed; the
// job never surfaces errors because the screens already handle stale data.
type RefreshJob struct {
	decks  service.DeckService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewRefreshJob creates a RefreshJob over decks. The job is idle until Start
// is called.
func NewRefreshJob(decks service.DeckService, log *logger.Logger) *RefreshJob {
	return &RefreshJob{decks: decks, logger: log}
}

// Start stops any previously running job, then launches a goroutine that
// calls Refresh every interval. If interval is zero or negative it defaults
// to 5 minutes. The goroutine exits when ctx is cancelled or Stop is called.
func (j *RefreshJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if _, stale, err := j.decks.Refresh(jobCtx); err != nil {
					j.logger.Warn().Err(err).Msg("background deck refresh failed")
				} else if stale {
					j.logger.Debug().Msg("background deck refresh served cached decks")
				}
			}
		}
	}()
}

// Stop cancels the background goroutine and blocks until it has exited.
// Safe to call when the job is not running.
func (j *RefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
