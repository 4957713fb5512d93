package dialect

import (
	"bytes"
	"strings"
)

// Layout controls how a statement is laid out as text.
type Layout int

const (
	// LayoutVerbose is the classic source layout: one list item per line,
	// blank separator lines and a "-- *" marker after SELECT.
	LayoutVerbose Layout = iota
	// LayoutCompact renders the whole statement on one line.
	LayoutCompact
)

// ParseLayout accepts "verbose" or "compact".
func ParseLayout(s string) (Layout, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "verbose":
		return LayoutVerbose, true
	case "compact":
		return LayoutCompact, true
	}
	return LayoutVerbose, false
}

// stmtWriter accumulates one statement. Each call to Generate owns its
// writer, so templates share no buffers.
type stmtWriter struct {
	layout Layout
	buf    bytes.Buffer
	tokens []string
}

func newWriter(l Layout) *stmtWriter {
	return &stmtWriter{layout: l}
}

func (w *stmtWriter) line(s string) {
	if w.layout == LayoutCompact {
		w.tokens = append(w.tokens, s)
		return
	}
	w.buf.WriteString(s)
	w.buf.WriteByte('\n')
}

func (w *stmtWriter) blank() {
	if w.layout == LayoutVerbose {
		w.buf.WriteByte('\n')
	}
}

// commented writes s followed by a trailing line comment; the comment is
// dropped in the compact layout.
func (w *stmtWriter) commented(s, comment string) {
	if w.layout == LayoutCompact {
		w.line(s)
		return
	}
	w.line(s + "  " + comment)
}

// list writes items separated by j. In the verbose layout every item
// but the last ends its line with the joiner, and the list is closed by
// a newline even when empty.
func (w *stmtWriter) list(items []string, j Joiner) {
	if w.layout == LayoutCompact {
		if len(items) > 0 {
			w.tokens = append(w.tokens, JoinList(items, j))
		}
		return
	}
	w.buf.WriteString(strings.Join(items, string(j)+"\n"))
	w.buf.WriteByte('\n')
}

// terminated writes items each followed by term, including the last.
func (w *stmtWriter) terminated(items []string, term string) {
	for _, it := range items {
		if w.layout == LayoutCompact {
			w.tokens = append(w.tokens, it+term)
			continue
		}
		w.buf.WriteString(it)
		w.buf.WriteString(term)
		w.buf.WriteByte('\n')
	}
}

func (w *stmtWriter) String() string {
	if w.layout == LayoutVerbose {
		return w.buf.String()
	}
	s := strings.Join(w.tokens, " ")
	s = strings.ReplaceAll(s, "( ", "(")
	s = strings.ReplaceAll(s, " )", ")")
	return s
}
