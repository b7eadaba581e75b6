// Package jsondec decodes JSON text into in-memory value trees without an
// intermediate representation: a byte-level scanner produces typed tokens
// with explicit string-boundary and escape state, and a recursive-descent
// parser assembles values directly from the token stream.
//
// Decoded values use the natural Go shapes:
//
//   - objects   -> map[string]any
//   - arrays    -> []any
//   - strings   -> string (escapes resolved, \uXXXX re-encoded as UTF-8)
//   - numbers   -> int64 when integral, float64 otherwise (or Number)
//   - booleans  -> bool
//   - null      -> nil
//
// # Basic Usage
//
// Package-level functions share a lazily created default decoder:
//
//	value, err := jsondec.Decode(`{"user": {"name": "John"}}`)
//	ok := jsondec.Valid(`[1, 2, 3]`)
//
// A dedicated decoder carries its own configuration and caches:
//
//	decoder := jsondec.New()
//	defer decoder.Close()
//	value, err := decoder.Decode(jsonStr)
//
// # Configuration
//
// Use NewWithConfig for custom limits and syntax options:
//
//	cfg := jsondec.DefaultConfig()
//	cfg.AllowComments = true
//	cfg.PreserveNumbers = true
//	decoder := jsondec.NewWithConfig(cfg)
//	defer decoder.Close()
//
// AllowComments accepts // line comments and /* */ block comments outside
// string literals. This is a deliberate superset of RFC 8259 and is off by
// default; strict JSON rejects any comment syntax.
//
// # Streaming
//
// StreamDecoder reads from an io.Reader and exposes a typed token stream as
// well as whole-value decoding:
//
//	dec := jsondec.NewStreamDecoder(reader)
//	for dec.More() {
//	    value, err := dec.Decode()
//	    ...
//	}
//
// # Error Handling
//
// Failures are classified by sentinel errors (ErrInvalidJSON, ErrInvalidValue,
// ErrUnexpectedEnd, limit errors) reachable through errors.Is. Syntax defects
// carry the byte offset, line and column of the problem via *SyntaxError;
// a bare identifier where a value belongs fails with ErrInvalidValue and a
// message naming the identifier. Malformed input always produces an error,
// never a silently wrong value.
//
// # Package Structure
//
// The public API lives in the root package:
//
//   - Core types: Decoder, StreamDecoder, Config, Stats
//   - Value types: Number, Token, Delim
//   - Error types: SyntaxError, DecodeError, sentinel errors
//
// Implementation details are in the internal/ package: byte classification,
// RFC 8259 number validation, string interning and the validation cache.
package jsondec
