// Package diag provides the diagnostics channel shared by the
// assembler, the CPU, and the machine facade: an ordered, append-only
// log of leveled messages produced while performing one operation.
package diag

import "fmt"

// Level classifies a diagnostic entry.
type Level int

const (
	Info Level = iota
	Error
	Debug
)

// String renders the level the way a terminal front-end prefixes it.
func (l Level) String() string {
	switch l {
	case Info:
		return "INFO"
	case Error:
		return "ERROR"
	case Debug:
		return "DEBUG"
	default:
		return "UNKNOWN"
	}
}

// Entry is a single diagnostic message.
type Entry struct {
	Level Level
	Text  string
	// Line is the 0-based source line this entry refers to, or -1 if
	// it isn't tied to a specific line.
	Line int
}

// Channel is an ordered, append-only collection of diagnostic entries
// produced by one operation (assembling, ticking, priming, ...).
type Channel struct {
	Entries []Entry
}

// New returns an empty diagnostics channel.
func New() *Channel {
	return &Channel{}
}

func (c *Channel) add(level Level, line int, text string) {
	c.Entries = append(c.Entries, Entry{Level: level, Text: text, Line: line})
}

// Info appends an informational entry.
func (c *Channel) Info(text string) {
	c.add(Info, -1, text)
}

// Infof appends a formatted informational entry.
func (c *Channel) Infof(format string, args ...any) {
	c.add(Info, -1, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (c *Channel) Error(text string) {
	c.add(Error, -1, text)
}

// Errorf appends a formatted error entry.
func (c *Channel) Errorf(format string, args ...any) {
	c.add(Error, -1, fmt.Sprintf(format, args...))
}

// ErrorAtLine appends a formatted error entry tied to a source line.
func (c *Channel) ErrorAtLine(line int, format string, args ...any) {
	c.add(Error, line, fmt.Sprintf(format, args...))
}

// Debug appends a debug entry.
func (c *Channel) Debug(text string) {
	c.add(Debug, -1, text)
}

// Debugf appends a formatted debug entry.
func (c *Channel) Debugf(format string, args ...any) {
	c.add(Debug, -1, fmt.Sprintf(format, args...))
}

// HasErrors reports whether any Error-level entry has been recorded.
func (c *Channel) HasErrors() bool {
	for _, e := range c.Entries {
		if e.Level == Error {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of Error-level entries.
func (c *Channel) ErrorCount() int {
	n := 0
	for _, e := range c.Entries {
		if e.Level == Error {
			n++
		}
	}
	return n
}

// Combine appends other's entries to c, in order. Monoidal: combining
// with an empty channel is a no-op.
func (c *Channel) Combine(other *Channel) {
	if other == nil {
		return
	}
	c.Entries = append(c.Entries, other.Entries...)
}
