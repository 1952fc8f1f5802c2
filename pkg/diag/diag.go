// Package diag provides sinks for diagnostics reported by the scanner and parser.
package diag

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Reporter receives diagnostics. Implementations must not panic or block the caller.
type Reporter interface {
	Report(line int, message string)
}

// LocatedReporter is implemented by reporters that keep the "where" part of a
// diagnostic (e.g. " at 'x'") separate from its message.
type LocatedReporter interface {
	Reporter
	ReportAt(line int, where, message string)
}

// ReportAt sends a located diagnostic to r, folding where into the message
// when r does not implement LocatedReporter.
func ReportAt(r Reporter, line int, where, message string) {
	if lr, ok := r.(LocatedReporter); ok {
		lr.ReportAt(line, where, message)
		return
	}
	if where == "" {
		r.Report(line, message)
		return
	}
	r.Report(line, strings.TrimPrefix(where, " ")+": "+message)
}

// Diagnostic is a single reported problem.
type Diagnostic struct {
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Discard drops every report.
var Discard Reporter = discard{}

type discard struct{}

func (discard) Report(int, string) {}

func (discard) ReportAt(int, string, string) {}

// Collector records every diagnostic it receives.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Report(line int, message string) {
	c.ReportAt(line, "", message)
}

func (c *Collector) ReportAt(line int, where, message string) {
	c.diags = append(c.diags, Diagnostic{Line: line, Where: where, Message: message})
}

// HadError reports whether anything was reported since the last Reset.
func (c *Collector) HadError() bool {
	return len(c.diags) > 0
}

// Diagnostics returns a copy of the recorded diagnostics in report order.
func (c *Collector) Diagnostics() []Diagnostic {
	out := make([]Diagnostic, len(c.diags))
	copy(out, c.diags)
	return out
}

// Reset clears the recorded diagnostics.
func (c *Collector) Reset() {
	c.diags = c.diags[:0]
}

// LogReporter forwards diagnostics to a structured logger.
type LogReporter struct {
	Logger *slog.Logger
}

func (r LogReporter) Report(line int, message string) {
	r.ReportAt(line, "", message)
}

func (r LogReporter) ReportAt(line int, where, message string) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if where == "" {
		logger.Error("diagnostic", "line", line, "message", message)
		return
	}
	logger.Error("diagnostic", "line", line, "where", strings.TrimSpace(where), "message", message)
}

var (
	colorError = lipgloss.Color("#EF4444")
	colorMuted = lipgloss.Color("#6B7280")

	lineStyle    = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	messageStyle = lipgloss.NewStyle()
)

// ConsoleReporter writes human readable diagnostics to W.
type ConsoleReporter struct {
	W     io.Writer
	Color bool
}

func (r ConsoleReporter) Report(line int, message string) {
	r.ReportAt(line, "", message)
}

func (r ConsoleReporter) ReportAt(line int, where, message string) {
	if !r.Color {
		fmt.Fprintln(r.W, Diagnostic{Line: line, Where: where, Message: message}.String())
		return
	}
	fmt.Fprintf(r.W, "%s %s %s\n",
		lineStyle.Render(fmt.Sprintf("[line %d]", line)),
		errorStyle.Render("Error"+where+":"),
		messageStyle.Render(message),
	)
}

type multi []Reporter

func (m multi) Report(line int, message string) {
	for _, r := range m {
		r.Report(line, message)
	}
}

func (m multi) ReportAt(line int, where, message string) {
	for _, r := range m {
		ReportAt(r, line, where, message)
	}
}

// Multi returns a Reporter that forwards each report to every non-nil reporter in order.
func Multi(reporters ...Reporter) Reporter {
	var m multi
	for _, r := range reporters {
		if r != nil {
			m = append(m, r)
		}
	}
	return m
}
