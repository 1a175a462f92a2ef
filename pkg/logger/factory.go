package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/firstengineering/website/pkg/environment"
)

// Format represents logger output format.
type Format string

const (
	// FormatJSON outputs structured logs for log aggregation.
	FormatJSON Format = "json"
	// FormatText outputs human-readable logs for local development.
	FormatText Format = "text"
)

// Option configures logger creation.
type Option func(*config)

func WithLevel(l slog.Level) Option {
	return func(c *config) {
		c.level = l
		c.levelSet = true
	}
}

// WithFormat sets output format. It panics for unknown formats.
func WithFormat(f Format) Option {
	return func(c *config) {
		switch f {
		case FormatJSON, FormatText:
			c.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

func WithTextFormatter() Option {
	return func(c *config) {
		c.format = FormatText
	}
}

func WithJSONFormatter() Option {
	return func(c *config) {
		c.format = FormatJSON
	}
}

// WithOutput sets the primary output. Nil writers are ignored.
func WithOutput(w io.Writer) Option {
	return func(c *config) {
		if w != nil {
			c.output = w
		}
	}
}

// WithFile also writes every record to path, rotated by lumberjack once it
// reaches maxSizeMB. Old files are compressed and pruned by count and age.
func WithFile(path string, maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(c *config) {
		if path == "" {
			return
		}
		c.files = append(c.files, &lumberjack.Logger{
			Filename:   path,
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
			Compress:   true,
		})
	}
}

// WithHandlerOptions overrides the slog handler options, including level.
func WithHandlerOptions(opts *slog.HandlerOptions) Option {
	return func(c *config) {
		if opts != nil {
			c.handlerOptions = opts
		}
	}
}

// WithAttr adds static attributes to every log record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(c *config) {
		if len(attrs) > 0 {
			c.attrs = append(c.attrs, attrs...)
		}
	}
}

// WithContextExtractors registers functions that add attributes from the
// logging context, such as the request id.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(c *config) {
		for _, ex := range extractors {
			if ex != nil {
				c.extractors = append(c.extractors, ex)
			}
		}
	}
}

// WithEnvironment applies the defaults for env and tags records with
// service and env. Development logs text at debug level; staging and
// production log JSON at info level. An explicit WithLevel wins regardless
// of option order.
func WithEnvironment(env environment.Environment, service string) Option {
	return func(c *config) {
		if env.IsDevelopment() {
			c.envLevel = slog.LevelDebug
			c.format = FormatText
		} else {
			c.envLevel = slog.LevelInfo
			c.format = FormatJSON
		}
		if service != "" {
			c.attrs = append(c.attrs, slog.String("service", service))
		}
		c.attrs = append(c.attrs, slog.String("env", env.String()))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

type config struct {
	level          slog.Level
	levelSet       bool
	envLevel       slog.Level
	format         Format
	output         io.Writer
	files          []io.Writer
	attrs          []slog.Attr
	handlerOptions *slog.HandlerOptions
	extractors     []ContextExtractor
}

// defaultConfig: JSON at info level on stdout.
func defaultConfig() *config {
	return &config{
		level:    slog.LevelInfo,
		envLevel: slog.LevelInfo,
		format:   FormatJSON,
		output:   os.Stdout,
	}
}

// New creates a configured slog.Logger whose handler adds context attributes
// at log time.
func New(opts ...Option) *slog.Logger {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	level := cfg.envLevel
	if cfg.levelSet {
		level = cfg.level
	}

	handlerOpts := cfg.handlerOptions
	if handlerOpts == nil {
		handlerOpts = &slog.HandlerOptions{Level: level}
	}

	out := cfg.output
	if len(cfg.files) > 0 {
		out = io.MultiWriter(append([]io.Writer{cfg.output}, cfg.files...)...)
	}

	var handler slog.Handler
	if cfg.format == FormatText {
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	if len(cfg.attrs) > 0 {
		handler = handler.WithAttrs(cfg.attrs)
	}

	return slog.New(NewContextHandler(handler, cfg.extractors...))
}

// NewFromConfig builds a logger for service from cfg.
func NewFromConfig(cfg Config, service string, extra ...Option) (*slog.Logger, error) {
	opts, err := cfg.Options(service)
	if err != nil {
		return nil, err
	}
	return New(append(opts, extra...)...), nil
}
