package jsondec

import "time"

// Config controls decoder behavior and resource limits
type Config struct {
	// Size limits
	MaxInputSize     int64 `json:"max_input_size"`     // Maximum input size in bytes
	MaxNestingDepth  int   `json:"max_nesting_depth"`  // Maximum object/array nesting depth
	MaxObjectKeys    int   `json:"max_object_keys"`    // Maximum number of keys per object
	MaxArrayElements int   `json:"max_array_elements"` // Maximum number of elements per array

	// Syntax options
	AllowComments   bool `json:"allow_comments"`   // Accept // and /* */ comments outside strings
	PreserveNumbers bool `json:"preserve_numbers"` // Decode numbers as Number instead of int64/float64
	StrictMode      bool `json:"strict_mode"`      // Reject duplicate keys and unpaired surrogate escapes

	// Processing options
	ValidateInput   bool `json:"validate_input"`   // Validate UTF-8 before scanning
	EnableInterning bool `json:"enable_interning"` // Intern repeated object keys

	// Cache settings (validation results only)
	EnableCache  bool          `json:"enable_cache"`   // Whether to memoize Valid() verdicts
	MaxCacheSize int           `json:"max_cache_size"` // Maximum number of cache entries
	CacheTTL     time.Duration `json:"cache_ttl"`      // Time-to-live for cache entries
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		MaxInputSize:     DefaultMaxInputSize,
		MaxNestingDepth:  DefaultMaxNestingDepth,
		MaxObjectKeys:    DefaultMaxObjectKeys,
		MaxArrayElements: DefaultMaxArrayElements,
		AllowComments:    false,
		PreserveNumbers:  false,
		StrictMode:       false,
		ValidateInput:    true,
		EnableInterning:  true,
		EnableCache:      true,
		MaxCacheSize:     DefaultCacheSize,
		CacheTTL:         DefaultCacheTTL,
	}
}

// HighSecurityConfig returns a configuration with enhanced security settings
func HighSecurityConfig() *Config {
	config := DefaultConfig()
	config.MaxInputSize = 5 * 1024 * 1024
	config.MaxNestingDepth = 20
	config.MaxObjectKeys = 1000
	config.MaxArrayElements = 1000
	config.StrictMode = true
	config.AllowComments = false
	return config
}

// LargeDataConfig returns a configuration suited to large JSON datasets
func LargeDataConfig() *Config {
	config := DefaultConfig()
	config.MaxInputSize = 100 * 1024 * 1024
	config.MaxNestingDepth = 100
	config.MaxObjectKeys = 50000
	config.MaxArrayElements = 50000
	return config
}

// Clone creates a deep copy of the configuration
func (c *Config) Clone() *Config {
	if c == nil {
		return DefaultConfig()
	}

	clone := *c
	return &clone
}

// Validate validates the configuration and applies corrections
func (c *Config) Validate() error {
	clampInt64 := func(value *int64, min, max int64) {
		if *value <= 0 {
			*value = min
		} else if *value > max {
			*value = max
		}
	}

	clampInt := func(value *int, min, max int) {
		if *value <= 0 {
			*value = min
		} else if *value > max {
			*value = max
		}
	}

	clampInt64(&c.MaxInputSize, MinInputSizeLimit, MaxInputSizeLimit)
	clampInt(&c.MaxNestingDepth, MinNestingDepth, MaxNestingDepth)
	clampInt(&c.MaxObjectKeys, 1, 1<<20)
	clampInt(&c.MaxArrayElements, 1, 1<<20)

	if c.MaxCacheSize < 0 {
		c.MaxCacheSize = 0
		c.EnableCache = false
	} else if c.MaxCacheSize > MaxCacheEntries {
		c.MaxCacheSize = MaxCacheEntries
	}

	if c.CacheTTL <= 0 {
		c.CacheTTL = DefaultCacheTTL
	}

	return nil
}

// ConfigInterface implementation methods
func (c *Config) GetMaxInputSize() int64      { return c.MaxInputSize }
func (c *Config) GetMaxNestingDepth() int     { return c.MaxNestingDepth }
func (c *Config) GetMaxObjectKeys() int       { return c.MaxObjectKeys }
func (c *Config) GetMaxArrayElements() int    { return c.MaxArrayElements }
func (c *Config) IsCommentsAllowed() bool     { return c.AllowComments }
func (c *Config) ShouldPreserveNumbers() bool { return c.PreserveNumbers }
func (c *Config) IsStrictMode() bool          { return c.StrictMode }
func (c *Config) ShouldValidateInput() bool   { return c.ValidateInput }
func (c *Config) IsCacheEnabled() bool        { return c.EnableCache }
func (c *Config) GetMaxCacheSize() int        { return c.MaxCacheSize }
func (c *Config) GetCacheTTL() time.Duration  { return c.CacheTTL }
