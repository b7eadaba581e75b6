package jsondec

import "time"

const (
	// Input limits
	DefaultMaxInputSize     = 10 * 1024 * 1024
	DefaultMaxNestingDepth  = 50
	DefaultMaxObjectKeys    = 10000
	DefaultMaxArrayElements = 10000

	// Cache sizes
	DefaultCacheSize = 256
	DefaultCacheTTL  = 5 * time.Minute

	// String interning
	DefaultMaxInternEntries = 1024

	// Clamp bounds applied by Config.Validate
	MinInputSizeLimit   = 1024
	MaxInputSizeLimit   = 100 * 1024 * 1024
	MinNestingDepth     = 4
	MaxNestingDepth     = 200
	MaxCacheEntries     = 2000
	DefaultBufferSize   = 2048
	StreamReadBufferCap = 64 * 1024
)

// ValidationBOMPrefix is the UTF-8 byte order mark, stripped before scanning
const ValidationBOMPrefix = "\xEF\xBB\xBF"

// Error codes for machine-readable error identification
const (
	ErrCodeInvalidJSON   = "ERR_INVALID_JSON"
	ErrCodeInvalidValue  = "ERR_INVALID_VALUE"
	ErrCodeUnexpectedEnd = "ERR_UNEXPECTED_END"
	ErrCodeDuplicateKey  = "ERR_DUPLICATE_KEY"
	ErrCodeSizeLimit     = "ERR_SIZE_LIMIT"
	ErrCodeDepthLimit    = "ERR_DEPTH_LIMIT"
	ErrCodeKeyLimit      = "ERR_KEY_LIMIT"
	ErrCodeElementLimit  = "ERR_ELEMENT_LIMIT"
	ErrCodeDecoderClosed = "ERR_DECODER_CLOSED"
	ErrCodeUnknown       = "ERR_UNKNOWN"
)
