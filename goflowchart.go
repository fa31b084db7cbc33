package goflowchart

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cdfmlr/goflowchart/internal/compiler"
	"github.com/cdfmlr/goflowchart/pkg/flowchart"
)

// Version is the library release tag, surfaced by the CLI and the HTTP API.
const Version = "0.4.0"

// config collects the charting knobs applied by Options.
type config struct {
	field      string
	inner      bool
	simplify   bool
	condsAlign bool
	logger     *slog.Logger
}

// Option defines a functional option for configuring a charting call.
type Option func(*config)

// WithField selects a single function to chart, as a dotted path:
// "Foo", "Bar.Method", or "Foo.closure" for a closure inside Foo.
func WithField(field string) Option {
	return func(c *config) {
		c.field = field
	}
}

// WithInner controls whether the selected function is charted as its bare
// body (true, the default) or framed with start/input/end boxes.
func WithInner(inner bool) Option {
	return func(c *config) {
		c.inner = inner
	}
}

// WithSimplify toggles collapsing one-statement conditionals and loops into
// single boxes. On by default.
func WithSimplify(simplify bool) Option {
	return func(c *config) {
		c.simplify = simplify
	}
}

// WithCondsAlign enables the align-next=no layout hint on consecutive
// conditionals. Off by default.
func WithCondsAlign(align bool) Option {
	return func(c *config) {
		c.condsAlign = align
	}
}

// WithLogger sets a custom structured logger for the charting call.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// Chart compiles Go source, either a full file or a bare statement snippet,
// into a flowchart graph. Callers that only want the DSL text should use
// FromCode instead.
func Chart(code string, opts ...Option) (*flowchart.Flowchart, error) {
	cfg := &config{inner: true, simplify: true}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	fc, err := compiler.Compile(code, compiler.Options{
		Field:      cfg.field,
		Inner:      cfg.inner,
		Simplify:   cfg.simplify,
		CondsAlign: cfg.condsAlign,
	})
	if err != nil {
		return nil, fmt.Errorf("chart code: %w", err)
	}

	cfg.logger.Debug("charted code",
		"bytes", len(code),
		"field", cfg.field,
		"inner", cfg.inner,
		"simplify", cfg.simplify,
	)
	return fc, nil
}

// FromCode compiles Go source into flowchart.js DSL text.
func FromCode(code string, opts ...Option) (string, error) {
	fc, err := Chart(code, opts...)
	if err != nil {
		return "", err
	}
	return fc.Render(), nil
}
