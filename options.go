package graphcodec

import (
	"log/slog"

	"github.com/tarantool/go-graphcodec/handler"
	"github.com/tarantool/go-graphcodec/internal/options"
	"github.com/tarantool/go-graphcodec/typeinfo"
)

// config is shared by the Encoder and the Decoder.
type config struct {
	registry        *typeinfo.Registry
	writers         *handler.Writers
	readers         *handler.Readers
	logger          *slog.Logger
	publicEnumsOnly bool
}

// Option configures an Encoder or a Decoder.
type Option = options.OptionCallback[config]

func defaultConfig() config {
	return config{
		registry:        typeinfo.Default(),
		writers:         nil,
		readers:         nil,
		logger:          slog.New(slog.DiscardHandler),
		publicEnumsOnly: false,
	}
}

func newConfig(opts []Option) config {
	cfg := options.ApplyOptions(defaultConfig, opts)

	if cfg.writers == nil {
		cfg.writers = handler.NewWriters(cfg.registry)
	}

	if cfg.readers == nil {
		cfg.readers = handler.NewReaders(cfg.registry)
	}

	return cfg
}

// WithRegistry sets the registry used to name, resolve and create types.
// The default is typeinfo.Default().
func WithRegistry(r *typeinfo.Registry) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.registry = r
		}
	}
}

// WithWriters sets the writer-side handler registry. The default holds the
// well-known handlers.
func WithWriters(w *handler.Writers) Option {
	return func(cfg *config) {
		cfg.writers = w
	}
}

// WithReaders sets the reader-side handler registry. The default holds the
// well-known handlers.
func WithReaders(r *handler.Readers) Option {
	return func(cfg *config) {
		cfg.readers = r
	}
}

// WithLogger sets the logger receiving debug events. The default discards.
func WithLogger(l *slog.Logger) Option {
	return func(cfg *config) {
		if l != nil {
			cfg.logger = l
		}
	}
}

// WithPublicEnumsOnly writes enum members by name only, without ordinals.
func WithPublicEnumsOnly() Option {
	return func(cfg *config) {
		cfg.publicEnumsOnly = true
	}
}
