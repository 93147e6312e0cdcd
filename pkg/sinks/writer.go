// Package sinks provides permanent log sink implementations for the gamelog
// facade.
package sinks

import (
	"io"
	"log"
	"sync"

	"github.com/gronkutils/gamelog/pkg/gamelog"
)

// WriterSink routes the permanent log stream to an io.Writer through a
// standard log.Logger, prefixing each line with a timestamp.
type WriterSink struct {
	mu    sync.Mutex
	goLog *log.Logger
}

// NewWriterSink creates a sink writing to w. A nil writer discards output.
func NewWriterSink(w io.Writer) *WriterSink {
	if w == nil {
		w = io.Discard
	}
	return &WriterSink{
		goLog: log.New(w, "", log.LstdFlags),
	}
}

// Write implements gamelog.PermanentSink. The line already carries its
// severity tag, so every severity shares the one writer channel here.
func (s *WriterSink) Write(_ gamelog.Severity, line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goLog.Println(line)
}
