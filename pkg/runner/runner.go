// Package runner drives the front end: it scans source text, optionally
// parses it, and writes the result. It is what the nlox command runs.
package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"

	"github.com/agenthands/nlox/pkg/compiler/lexer"
	"github.com/agenthands/nlox/pkg/compiler/parser"
	"github.com/agenthands/nlox/pkg/compiler/printer"
	"github.com/agenthands/nlox/pkg/config"
	"github.com/agenthands/nlox/pkg/diag"
	"github.com/agenthands/nlox/pkg/logging"
)

var (
	// ErrLexical means the scanner reported at least one diagnostic.
	ErrLexical = errors.New("lexical error")
	// ErrSyntax means the parser rejected the token stream.
	ErrSyntax = errors.New("syntax error")
)

// Prompt is written before each line read by (*Runner).Prompt.
const Prompt = "> "

// Runner executes source in the configured mode.
type Runner struct {
	cfg    config.Config
	logger *slog.Logger
	out    io.Writer
	errOut io.Writer
}

// New creates a runner. Results go to out, diagnostics to errOut.
// A nil logger discards log records.
func New(cfg config.Config, logger *slog.Logger, out, errOut io.Writer) *Runner {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Runner{cfg: cfg, logger: logger, out: out, errOut: errOut}
}

// sink picks where diagnostics go: structured log records when logging JSON,
// the console otherwise. The collector always sees them.
func (r *Runner) sink(c *diag.Collector, logger *slog.Logger) diag.Reporter {
	if strings.EqualFold(r.cfg.Log.Format, "json") {
		return diag.Multi(c, diag.LogReporter{Logger: logger})
	}
	return diag.Multi(c, diag.ConsoleReporter{W: r.errOut, Color: r.cfg.Color})
}

// Execute runs one complete source text. Each call starts from a clean
// error state, so consecutive calls are independent.
func (r *Runner) Execute(source string) error {
	logger := r.logger.With("run", uuid.NewString())
	collector := diag.NewCollector()
	sink := r.sink(collector, logger)

	tokens := lexer.ScanTokens(source, sink)
	logger.Debug("scanned", "tokens", len(tokens), "lines", tokens[len(tokens)-1].Line)

	if collector.HadError() {
		n := len(collector.Diagnostics())
		logger.Debug("scan failed", "errors", n)
		return fmt.Errorf("%w: %d error(s)", ErrLexical, n)
	}

	switch r.cfg.Mode {
	case config.ModeAST:
		expr, err := parser.New(tokens, sink).ParseExpression()
		if err != nil {
			logger.Debug("parse failed", "error", err)
			return fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		fmt.Fprintln(r.out, printer.Print(expr))
	default:
		for _, tok := range tokens {
			fmt.Fprintln(r.out, tok)
		}
	}
	return nil
}

// ExecuteFile reads path and executes its contents.
func (r *Runner) ExecuteFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	r.logger.Debug("executing file", "path", path, "bytes", len(src))
	if err := r.Execute(string(src)); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// Prompt reads lines from in and executes each one. It stops at end of
// input, on an empty line, or when ctx is done. Lexical and syntax errors
// are reported and the prompt continues with the next line.
func (r *Runner) Prompt(ctx context.Context, in io.Reader) error {
	sc := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(r.out, Prompt)
		if !sc.Scan() {
			break
		}
		line := sc.Text()
		if line == "" {
			break
		}
		err := r.Execute(line)
		switch {
		case err == nil:
		case errors.Is(err, ErrLexical), errors.Is(err, ErrSyntax):
			r.logger.Debug("line rejected", "error", err)
		default:
			return err
		}
	}
	return sc.Err()
}
