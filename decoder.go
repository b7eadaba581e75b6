package jsondec

import (
	"hash/fnv"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"unicode/utf8"

	"github.com/cybergodev/jsondec/internal"
)

// Decoder turns JSON text into value trees. A Decoder owns its configuration,
// statistics, key-interning table and validation cache; it is safe for
// concurrent use and holds no state between calls beyond those caches.
type Decoder struct {
	config   *Config
	interner *internal.Intern
	cache    *internal.Cache

	loggerMu sync.RWMutex
	logger   *slog.Logger

	closed atomic.Bool
	stats  decoderStats
}

// decoderStats holds atomic operation counters
type decoderStats struct {
	operations  atomic.Int64
	errors      atomic.Int64
	cacheHits   atomic.Int64
	cacheMisses atomic.Int64
}

// Stats is a point-in-time snapshot of a Decoder's counters
type Stats struct {
	Operations  int64 `json:"operations"`
	Errors      int64 `json:"errors"`
	CacheHits   int64 `json:"cache_hits"`
	CacheMisses int64 `json:"cache_misses"`
}

// New creates a Decoder with the default configuration
func New() *Decoder {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a Decoder with a custom configuration. The config is
// cloned and clamped, so later mutation of the argument has no effect.
func NewWithConfig(config *Config) *Decoder {
	cfg := config.Clone()
	cfg.Validate()

	d := &Decoder{config: cfg}
	if cfg.EnableInterning {
		d.interner = internal.NewIntern(DefaultMaxInternEntries)
	}
	if cfg.EnableCache {
		d.cache = internal.NewCache(cfg.MaxCacheSize, cfg.CacheTTL)
	}
	return d
}

// SetLogger installs a structured logger for decode failures. A nil logger
// disables logging.
func (d *Decoder) SetLogger(logger *slog.Logger) {
	d.loggerMu.Lock()
	d.logger = logger
	d.loggerMu.Unlock()
}

// Decode parses one JSON document and returns the value tree: objects as
// map[string]any, arrays as []any, strings as string, numbers as int64,
// float64 or Number, booleans as bool and null as nil.
func (d *Decoder) Decode(jsonStr string) (any, error) {
	if err := d.checkClosed(); err != nil {
		return nil, err
	}
	d.stats.operations.Add(1)

	value, err := d.decode(jsonStr)
	if err != nil {
		d.recordError("decode", err)
		return nil, err
	}
	return value, nil
}

// DecodeBytes is Decode for a byte slice input
func (d *Decoder) DecodeBytes(data []byte) (any, error) {
	return d.Decode(string(data))
}

// DecodeReader reads r to completion and decodes the result
func (d *Decoder) DecodeReader(r io.Reader) (any, error) {
	if err := d.checkClosed(); err != nil {
		return nil, err
	}

	data, err := io.ReadAll(io.LimitReader(r, d.config.MaxInputSize+1))
	if err != nil {
		d.stats.operations.Add(1)
		wrapped := newOperationError("decode", "failed to read input: "+err.Error(), ErrInvalidJSON)
		d.recordError("decode", wrapped)
		return nil, wrapped
	}
	return d.DecodeBytes(data)
}

// Valid reports whether the input is well-formed under this Decoder's
// configuration. Verdicts are memoized when caching is enabled.
func (d *Decoder) Valid(jsonStr string) bool {
	if err := d.checkClosed(); err != nil {
		return false
	}
	d.stats.operations.Add(1)

	var key string
	if d.cache != nil {
		key = validationCacheKey(jsonStr)
		if cached, ok := d.cache.Get(key); ok {
			d.stats.cacheHits.Add(1)
			return cached.(bool)
		}
		d.stats.cacheMisses.Add(1)
	}

	_, err := d.decode(jsonStr)
	ok := err == nil

	if d.cache != nil {
		d.cache.Set(key, ok)
	}
	return ok
}

// Stats returns a snapshot of the decoder's counters
func (d *Decoder) Stats() Stats {
	return Stats{
		Operations:  d.stats.operations.Load(),
		Errors:      d.stats.errors.Load(),
		CacheHits:   d.stats.cacheHits.Load(),
		CacheMisses: d.stats.cacheMisses.Load(),
	}
}

// Config returns a copy of the decoder's effective configuration
func (d *Decoder) Config() *Config {
	return d.config.Clone()
}

// Close releases the decoder's caches. Further calls fail with
// ErrDecoderClosed.
func (d *Decoder) Close() error {
	if d.closed.Swap(true) {
		return nil
	}
	if d.cache != nil {
		d.cache.Clear()
	}
	if d.interner != nil {
		d.interner.Clear()
	}
	return nil
}

// IsClosed reports whether Close has been called
func (d *Decoder) IsClosed() bool {
	return d.closed.Load()
}

// decode runs validation and parsing without touching lifecycle state or
// counters; Decode and Valid wrap it.
func (d *Decoder) decode(jsonStr string) (any, error) {
	if err := d.validateInput(jsonStr); err != nil {
		return nil, err
	}
	jsonStr = strings.TrimPrefix(jsonStr, ValidationBOMPrefix)

	return newParser(jsonStr, d.config, d.interner).decode()
}

// validateInput applies size and encoding checks before any scanning
func (d *Decoder) validateInput(jsonStr string) error {
	if int64(len(jsonStr)) > d.config.MaxInputSize {
		return newSizeLimitError("decode", int64(len(jsonStr)), d.config.MaxInputSize)
	}
	if len(jsonStr) == 0 {
		return newOperationError("decode", "input cannot be empty", ErrInvalidJSON)
	}
	if d.config.ValidateInput && !utf8.ValidString(jsonStr) {
		return newOperationError("decode", "input contains invalid UTF-8 sequences", ErrInvalidJSON)
	}
	return nil
}

func (d *Decoder) checkClosed() error {
	if d.closed.Load() {
		return newOperationError("decode", "decoder has been closed", ErrDecoderClosed)
	}
	return nil
}

// recordError bumps the error counter and emits a structured log entry when
// a logger is configured
func (d *Decoder) recordError(operation string, err error) {
	d.stats.errors.Add(1)

	d.loggerMu.RLock()
	logger := d.logger
	d.loggerMu.RUnlock()
	if logger == nil {
		return
	}

	logger.Error("JSON decode failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
		slog.String("error_code", ErrorCode(err)),
		slog.Int64("error_count", d.stats.errors.Load()),
	)
}

// validationCacheKey hashes the input so cached verdicts do not pin large
// input strings in memory
func validationCacheKey(jsonStr string) string {
	h := fnv.New64a()
	io.WriteString(h, jsonStr)
	return strconv.FormatUint(h.Sum64(), 16) + ":" + strconv.Itoa(len(jsonStr))
}
