// Package overlay provides a transient on-screen display sink for the
// gamelog facade, backed by a tview text view.
package overlay

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

// maxMessages caps the message list; the oldest entries are dropped first.
const maxMessages = 64

type message struct {
	line    string
	color   tcell.Color
	expires time.Time
}

// MessageList holds the currently visible overlay entries. Entries carry an
// expiry deadline and are removed by Prune once it passes. It is
// thread-safe.
type MessageList struct {
	mu       sync.Mutex
	max      int
	messages []message
}

// NewMessageList creates a new MessageList.
func NewMessageList() *MessageList {
	return &MessageList{max: maxMessages}
}

// Push appends an entry that stays visible for the given duration. Entries
// never replace one another; pushing the same line twice shows it twice.
func (ml *MessageList) Push(line string, color tcell.Color, duration time.Duration) {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	ml.messages = append(ml.messages, message{
		line:    line,
		color:   color,
		expires: time.Now().Add(duration),
	})
	if len(ml.messages) > ml.max {
		ml.messages = ml.messages[len(ml.messages)-ml.max:]
	}
}

// Prune removes entries whose deadline has passed as of now. It reports
// whether anything was removed.
func (ml *MessageList) Prune(now time.Time) bool {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	kept := ml.messages[:0]
	for _, m := range ml.messages {
		if m.expires.After(now) {
			kept = append(kept, m)
		}
	}
	changed := len(kept) != len(ml.messages)
	ml.messages = kept
	return changed
}

// Len returns the number of visible entries.
func (ml *MessageList) Len() int {
	ml.mu.Lock()
	defer ml.mu.Unlock()
	return len(ml.messages)
}

// Tagged renders the visible entries as tview dynamic-color markup, one
// entry per line, oldest first.
func (ml *MessageList) Tagged() string {
	ml.mu.Lock()
	defer ml.mu.Unlock()

	var b strings.Builder
	for _, m := range ml.messages {
		b.WriteString(colorTag(m.color))
		b.WriteString(tview.Escape(m.line))
		b.WriteString("[-]\n")
	}
	return b.String()
}

// colorTag renders a tcell color as a tview color tag. Colors without a
// valid RGB value fall back to white.
func colorTag(color tcell.Color) string {
	hex := color.Hex()
	if hex < 0 {
		return "[white]"
	}
	return fmt.Sprintf("[#%06x]", hex)
}
