package overlay

import (
	"context"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// Overlay is a transient on-screen message surface implementing
// gamelog.DisplaySink. Shown lines appear in a tview TextView colored by
// severity and disappear once their display duration passes. Show is a
// silent no-op while no tview application is attached.
type Overlay struct {
	mu   sync.Mutex
	app  *tview.Application
	view *tview.TextView
	list *MessageList
}

// New creates a new, unattached Overlay.
func New() *Overlay {
	return &Overlay{
		view: tview.NewTextView().
			SetDynamicColors(true).
			SetScrollable(false).
			SetWrap(true),
		list: NewMessageList(),
	}
}

// View returns the underlying tview.TextView for layout composition.
func (o *Overlay) View() *tview.TextView {
	return o.view
}

// Attach connects the overlay to a tview application. Until attached, shown
// lines are discarded.
func (o *Overlay) Attach(app *tview.Application) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.app = app
}

// Show implements gamelog.DisplaySink.
func (o *Overlay) Show(line string, color tcell.Color, duration time.Duration) {
	o.mu.Lock()
	app := o.app
	o.mu.Unlock()
	if app == nil {
		return
	}

	o.list.Push(line, color, duration)
	o.redraw(app)
}

// Start begins the expiry loop, pruning stale entries until ctx is
// cancelled.
func (o *Overlay) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(250 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case now := <-ticker.C:
				if o.list.Prune(now) {
					o.mu.Lock()
					app := o.app
					o.mu.Unlock()
					if app != nil {
						o.redraw(app)
					}
				}
			}
		}
	}()
}

func (o *Overlay) redraw(app *tview.Application) {
	text := o.list.Tagged()
	go app.QueueUpdateDraw(func() {
		o.view.SetText(text)
	})
}
