package adapter

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-comment-board/models"
)

// CommentPoller periodically fetches new comments of a single item and hands
// each non-empty page to a callback. The cursor advances to the id of the
// last comment of every page, so each comment is delivered at most once.
type CommentPoller interface {
	// Start launches the background polling loop. A previously running loop
	// is stopped first. If interval is zero or negative it defaults to
	// 10 seconds. The loop exits when ctx is cancelled or Stop is called.
	Start(ctx context.Context, itemID int64, interval time.Duration)

	// Stop cancels the background loop and blocks until it has fully exited.
	// Safe to call when the poller is not running.
	Stop()
}

type commentPoller struct {
	client BoardClient
	onPage func([]models.Comment)

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewCommentPoller creates a poller that fetches pages through client and
// reports them to onPage. The poller is idle until Start is called.
func NewCommentPoller(client BoardClient, onPage func([]models.Comment)) CommentPoller {
	return &commentPoller{client: client, onPage: onPage}
}

func (p *commentPoller) Start(ctx context.Context, itemID int64, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Second
	}

	p.Stop()

	p.mu.Lock()
	pollCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		var lastID int64
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-t.C:
				page, err := p.client.Comments(pollCtx, itemID, lastID)
				if err != nil || len(page) == 0 {
					continue
				}

				lastID = page[len(page)-1].ID
				p.onPage(page)
			}
		}
	}()
}

func (p *commentPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
