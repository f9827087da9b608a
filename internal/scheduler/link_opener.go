package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/MrSnakeDoc/sharelink/internal/actions"
	"github.com/MrSnakeDoc/sharelink/internal/domain"
	"github.com/MrSnakeDoc/sharelink/internal/logger"
)

// DefaultOpenDelay spaces successive opens so popup blockers let them through.
const DefaultOpenDelay = time.Second

// LinkOpener opens generated links one after another with a fixed delay.
//
// Each OpenAll call starts its own fire-and-forget sequence: link i is opened
// at i*delay, a failed open is logged and the sequence moves on.
// Stop sets the cancellation flag checked before every open.
type LinkOpener struct {
	opener actions.URLOpener
	logger logger.Logger
	delay  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// mu guards stopped and wg.Add.
	mu      sync.Mutex
	stopped bool
}

// NewLinkOpener creates a link opener. A non-positive delay uses DefaultOpenDelay.
func NewLinkOpener(opener actions.URLOpener, log logger.Logger, delay time.Duration) *LinkOpener {
	if delay <= 0 {
		delay = DefaultOpenDelay
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &LinkOpener{
		opener: opener,
		logger: log,
		delay:  delay,
		ctx:    ctx,
		cancel: cancel,
	}
}

// Delay returns the spacing between two opens.
func (lo *LinkOpener) Delay() time.Duration {
	return lo.delay
}

// OpenAll schedules every link and returns how many were scheduled.
// It returns immediately.
func (lo *LinkOpener) OpenAll(links []domain.GeneratedLink) int {
	if len(links) == 0 {
		return 0
	}

	urls := make([]string, len(links))
	for i, l := range links {
		urls[i] = l.URL
	}

	lo.mu.Lock()
	if lo.stopped {
		lo.mu.Unlock()
		lo.logger.Warn("link opener stopped, sequence dropped", logger.Int("count", len(urls)))
		return 0
	}
	lo.wg.Add(1)
	lo.mu.Unlock()

	go func() {
		defer lo.wg.Done()
		lo.run(urls)
	}()

	lo.logger.Info("link sequence scheduled",
		logger.Int("count", len(urls)),
		logger.Duration("delay", lo.delay))
	return len(urls)
}

func (lo *LinkOpener) run(urls []string) {
	timer := time.NewTimer(0)
	defer timer.Stop()

	for i, url := range urls {
		if i > 0 {
			timer.Reset(lo.delay)
		}
		select {
		case <-timer.C:
		case <-lo.ctx.Done():
			lo.logger.Info("link sequence cancelled",
				logger.Int("opened", i),
				logger.Int("remaining", len(urls)-i))
			return
		}

		if lo.ctx.Err() != nil {
			return
		}

		if err := lo.opener.Open(url); err != nil {
			lo.logger.Warn("failed to open link",
				logger.Int("position", i+1),
				logger.Error(err))
			continue
		}
		lo.logger.Debug("link opened", logger.String("url", url))
	}
}

// Wait blocks until every scheduled sequence has finished.
func (lo *LinkOpener) Wait() {
	lo.wg.Wait()
}

// Stop cancels pending opens and waits for running sequences to exit.
// OpenAll schedules nothing after Stop.
func (lo *LinkOpener) Stop() {
	lo.mu.Lock()
	lo.stopped = true
	lo.cancel()
	lo.mu.Unlock()

	lo.wg.Wait()
}
