// Package notify carries advisory diagnostics (such as unmapped column
// types) out of the generator. Sinks must not fail and must not block.
package notify

import (
	"io"
	"log"
	"sync"
)

// Notifier receives one advisory message at a time.
type Notifier interface {
	Notify(msg string)
}

// Func adapts a plain function to Notifier.
type Func func(msg string)

func (f Func) Notify(msg string) {
	if f != nil {
		f(msg)
	}
}

// Discard drops every message.
var Discard Notifier = Func(nil)

// Log writes messages through a standard logger.
type Log struct {
	mu     sync.Mutex
	logger *log.Logger
}

// NewLog returns a sink writing to w with the given prefix.
func NewLog(w io.Writer, prefix string) *Log {
	return &Log{logger: log.New(w, prefix, log.LstdFlags)}
}

// FromLogger wraps an existing logger.
func FromLogger(l *log.Logger) *Log {
	return &Log{logger: l}
}

func (l *Log) Notify(msg string) {
	if l == nil || l.logger == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.logger.Print(msg)
}

// Collector keeps messages in memory so they can be returned alongside
// generated output.
type Collector struct {
	mu   sync.Mutex
	msgs []string
}

func (c *Collector) Notify(msg string) {
	c.mu.Lock()
	c.msgs = append(c.msgs, msg)
	c.mu.Unlock()
}

// Messages returns a copy of everything collected so far.
func (c *Collector) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Reset drops collected messages.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.msgs = nil
	c.mu.Unlock()
}

// Broadcast fans every message out to all sinks, in order. Nil sinks are
// skipped and a panicking sink does not stop the others.
type Broadcast []Notifier

func (b Broadcast) Notify(msg string) {
	for _, n := range b {
		if n == nil {
			continue
		}
		deliver(n, msg)
	}
}

func deliver(n Notifier, msg string) {
	defer func() { _ = recover() }()
	n.Notify(msg)
}

// Safe wraps n so that a nil notifier or a panicking one is harmless.
func Safe(n Notifier) Notifier {
	if n == nil {
		return Discard
	}
	return Broadcast{n}
}
