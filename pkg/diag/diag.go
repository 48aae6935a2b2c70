// Package diag carries failure reports from the table to whoever wants to
// surface them. The table only produces a Report; a Handler decides whether it
// ends up in a log, in a slice for later inspection, or nowhere at all.
package diag

import (
	"strings"
	"sync"

	"github.com/op/go-logging"
)

// Severity ranks a report
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	Fatal
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "INFO"
	case Warning:
		return "WARNING"
	case Error:
		return "ERROR"
	case Fatal:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// Report describes a failed or degraded operation
type Report struct {
	Err      error    // underlying error, usually wrapping a package sentinel
	Severity Severity // how bad it is
	Op       string   // operation that produced the report
	Message  string   // what went wrong
	Action   string   // what was done about it
}

func (r *Report) Error() string {
	var sb strings.Builder
	sb.WriteString(r.Severity.String())
	sb.WriteString(" ")
	sb.WriteString(r.Op)
	sb.WriteString(": ")
	sb.WriteString(r.Message)
	if r.Action != "" {
		sb.WriteString(" (")
		sb.WriteString(r.Action)
		sb.WriteString(")")
	}
	return sb.String()
}

func (r *Report) Unwrap() error {
	return r.Err
}

// Handler receives reports
type Handler interface {
	Handle(r *Report)
}

// HandlerFunc adapts a function to the Handler interface
type HandlerFunc func(r *Report)

func (fn HandlerFunc) Handle(r *Report) {
	fn(r)
}

// Discard drops every report
var Discard Handler = HandlerFunc(func(*Report) {})

type logHandler struct {
	log *logging.Logger
}

// NewLogHandler returns a Handler writing each report to log at the level
// matching its severity
func NewLogHandler(log *logging.Logger) Handler {
	return &logHandler{log: log}
}

func (h *logHandler) Handle(r *Report) {
	switch r.Severity {
	case Info:
		h.log.Info(r.Error())
	case Warning:
		h.log.Warning(r.Error())
	case Error:
		h.log.Error(r.Error())
	default:
		h.log.Critical(r.Error())
	}
}

// Collector keeps every report it is handed
type Collector struct {
	mu      sync.Mutex
	reports []*Report
}

func (c *Collector) Handle(r *Report) {
	c.mu.Lock()
	c.reports = append(c.reports, r)
	c.mu.Unlock()
}

// Reports returns a copy of the collected reports
func (c *Collector) Reports() []*Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]*Report, len(c.reports))
	copy(out, c.reports)
	return out
}

// Count returns how many collected reports have the given severity
func (c *Collector) Count(s Severity) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	var n int
	for _, r := range c.reports {
		if r.Severity == s {
			n++
		}
	}
	return n
}

// Reset drops the collected reports
func (c *Collector) Reset() {
	c.mu.Lock()
	c.reports = nil
	c.mu.Unlock()
}

// Tee fans a report out to every handler
func Tee(handlers ...Handler) Handler {
	return HandlerFunc(func(r *Report) {
		for _, h := range handlers {
			if h != nil {
				h.Handle(r)
			}
		}
	})
}
