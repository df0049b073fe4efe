package poller

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Poller invokes a refresh function once on start and then on a fixed
// interval until stopped. Every tick fires unconditionally: there is no
// backoff after a failed run and no de-duplication, so a run still
// outstanding when the next tick lands simply overlaps it. The trigger is
// isolated here so it can later be swapped for a push mechanism without
// touching the view-model contract.
type Poller struct {
	interval time.Duration
	fn       func(ctx context.Context)

	mu     sync.Mutex
	cancel context.CancelFunc
}

func New(interval time.Duration, fn func(ctx context.Context)) *Poller {
	return &Poller{
		interval: interval,
		fn:       fn,
	}
}

// Start begins polling. Starting an already running poller is a no-op.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	log.Debug().Dur("interval", p.interval).Msg("starting poller")

	go p.run(ctx)
}

// Stop cancels the timer. Runs already in flight are not interrupted; their
// results are the caller's to discard.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cancel == nil {
		return
	}

	log.Debug().Msg("stopping poller")

	p.cancel()
	p.cancel = nil
}

func (p *Poller) run(ctx context.Context) {
	go p.fn(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.fn(ctx)
		}
	}
}
