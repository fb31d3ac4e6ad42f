// Package demo runs the pattern walkthroughs behind the patternlab commands.
package demo

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/ajitpratap0/patternlab/pkg/config"
	"github.com/ajitpratap0/patternlab/pkg/json"
	"github.com/ajitpratap0/patternlab/pkg/logger"
	"github.com/ajitpratap0/patternlab/pkg/metrics"
	"github.com/ajitpratap0/patternlab/pkg/pool"
)

// Runner writes walkthroughs to an output stream.
type Runner struct {
	out      io.Writer
	cfg      *config.AppConfig
	logger   *zap.Logger
	registry *pool.Registry
	delay    time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for progress records.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) { r.logger = l }
}

// WithRegistry sets the registry holding shared pools.
func WithRegistry(reg *pool.Registry) Option {
	return func(r *Runner) { r.registry = reg }
}

// WithDelay overrides the configured pause between steps.
func WithDelay(d time.Duration) Option {
	return func(r *Runner) { r.delay = d }
}

// New creates a Runner. A nil cfg uses config.NewAppConfig.
func New(out io.Writer, cfg *config.AppConfig, opts ...Option) *Runner {
	if cfg == nil {
		cfg = config.NewAppConfig()
	}
	r := &Runner{
		out:   out,
		cfg:   cfg,
		delay: cfg.Demo.Delay,
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = logger.OrNop(r.logger)
	if r.registry == nil {
		r.registry = pool.NewRegistry(r.logger)
	}
	return r
}

// All runs every walkthrough in order.
func (r *Runner) All(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{"builder", r.Builder},
		{"pool", r.Pool},
		{"zoo", r.Zoo},
		{"enhance", func(ctx context.Context) error { return r.Enhance(ctx, false) }},
		{"org", func(ctx context.Context) error { return r.Org(ctx, false) }},
		{"ecosystem", r.Ecosystem},
		{"cafeteria", func(ctx context.Context) error { return r.Cafeteria(ctx, false) }},
	}
	for i, s := range steps {
		if i > 0 {
			if _, err := fmt.Fprintln(r.out); err != nil {
				return err
			}
		}
		if err := s.run(ctx); err != nil {
			return fmt.Errorf("%s demo: %w", s.name, err)
		}
	}
	return nil
}

func (r *Runner) log(ctx context.Context, demo string) *zap.Logger {
	return logger.Annotate(logger.WithDemo(ctx, demo), r.logger)
}

func (r *Runner) poolOptions() []pool.Option {
	opts := []pool.Option{pool.WithLogger(r.logger), pool.WithName(r.cfg.Pool.Name)}
	if r.cfg.Metrics.Enabled {
		opts = append(opts, pool.WithMetrics(metrics.NewPoolCollector(r.cfg.Pool.Name)))
	}
	return opts
}

// pause sleeps for the configured delay unless ctx ends first.
func (r *Runner) pause(ctx context.Context) error {
	if r.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(r.delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// printer remembers the first write error so walkthroughs can print freely.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, format, args...)
	}
}

func (p *printer) println(args ...any) {
	if p.err == nil {
		_, p.err = fmt.Fprintln(p.w, args...)
	}
}

func (p *printer) heading(title string) {
	p.println(title)
	p.println(underline(title))
}

func underline(s string) string {
	b := make([]byte, len(s))
	for i := range b {
		b[i] = '='
	}
	return string(b)
}

func writeJSON(w io.Writer, v any) error {
	return json.WriteIndented(w, v)
}
