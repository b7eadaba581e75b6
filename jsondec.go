package jsondec

import (
	"sync"
	"sync/atomic"
)

var (
	defaultDecoder   atomic.Pointer[Decoder]
	defaultDecoderMu sync.Mutex
)

// getDefaultDecoder returns the shared default decoder, creating or
// replacing it if it is missing or closed
func getDefaultDecoder() *Decoder {
	// Fast path: decoder exists and is not closed
	if d := defaultDecoder.Load(); d != nil && !d.IsClosed() {
		return d
	}

	defaultDecoderMu.Lock()
	defer defaultDecoderMu.Unlock()

	// Double-check after acquiring lock
	if d := defaultDecoder.Load(); d != nil && !d.IsClosed() {
		return d
	}

	d := New()
	defaultDecoder.Store(d)
	return d
}

// SetDefaultDecoder sets a custom shared decoder (thread-safe)
func SetDefaultDecoder(d *Decoder) {
	if d == nil {
		return
	}

	defaultDecoderMu.Lock()
	defer defaultDecoderMu.Unlock()

	if old := defaultDecoder.Swap(d); old != nil {
		old.Close()
	}
}

// ShutdownDefaultDecoder closes and discards the shared decoder
func ShutdownDefaultDecoder() {
	defaultDecoderMu.Lock()
	defer defaultDecoderMu.Unlock()

	if old := defaultDecoder.Swap(nil); old != nil {
		old.Close()
	}
}

// Decode parses a JSON document with the shared default decoder.
//
//	value, err := jsondec.Decode(`{"user": {"name": "John"}}`)
func Decode(jsonStr string) (any, error) {
	return getDefaultDecoder().Decode(jsonStr)
}

// DecodeBytes parses a JSON document given as a byte slice
func DecodeBytes(data []byte) (any, error) {
	return getDefaultDecoder().DecodeBytes(data)
}

// Valid reports whether the input is a well-formed JSON document
func Valid(jsonStr string) bool {
	return getDefaultDecoder().Valid(jsonStr)
}
