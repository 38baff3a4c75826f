package subsumecheck

import "errors"

// === Reference Resolution Errors ===
var (
	// ErrUnresolvedReference is returned when a $ref cannot be resolved within
	// the registry built from the producer or consumer document, or points to
	// an external URI with no embedded $defs carrying a matching $id.
	ErrUnresolvedReference = errors.New("unresolved reference")

	// ErrCyclicSchema is returned when the $ref graph contains a strongly
	// connected component of size greater than one, or a self-loop.
	ErrCyclicSchema = errors.New("cyclic schema reference")

	// ErrJSONPointerSegmentNotFound names a JSON Pointer segment that does not
	// exist. The Reference Resolver does not return it: a pointer reference
	// ($defs or otherwise) that does not resolve yields ErrUnresolvedReference.
	ErrJSONPointerSegmentNotFound = errors.New("json pointer segment not found")
)

// === Schema Compilation Errors ===
var (
	// ErrUnsupportedKeyword is returned when a schema uses an assertion
	// keyword the Schema Compiler does not translate.
	ErrUnsupportedKeyword = errors.New("unsupported keyword")

	// ErrUnsupportedRegex is returned when a "pattern" value uses a regex
	// feature outside the supported subset (§4.3).
	ErrUnsupportedRegex = errors.New("unsupported regex feature")

	// ErrMalformedSchema is returned when a schema document fails to parse
	// as JSON or as a boolean schema.
	ErrMalformedSchema = errors.New("malformed schema document")

	// ErrInvalidSchemaType is returned when the "type" keyword's value is
	// neither a string nor an array of strings.
	ErrInvalidSchemaType = errors.New("invalid schema type")

	// ErrNilConstValue is returned when trying to unmarshal into a nil ConstValue.
	ErrNilConstValue = errors.New("cannot unmarshal into nil ConstValue")
)

// === Solver Errors ===
var (
	// ErrBoundExceeded is returned when the free-key search space at some
	// object node exceeds the configured brute-force cap.
	ErrBoundExceeded = errors.New("search bound exceeded")

	// ErrSolverTimeout is returned when the configured deadline elapses
	// before the search completes.
	ErrSolverTimeout = errors.New("solver timeout")

	// ErrInternalInvariant is returned when the solver or witness extractor
	// detects a state that should be unreachable by construction.
	ErrInternalInvariant = errors.New("internal invariant violated")
)

// === Numeric Conversion Errors ===
var (
	// ErrUnsupportedRatType is returned when a value cannot be converted to *big.Rat.
	ErrUnsupportedRatType = errors.New("unsupported rat type")

	// ErrRatConversion is returned when a numeric literal cannot be parsed into a big.Rat.
	ErrRatConversion = errors.New("rat conversion failed")
)

// === Value / Universe Errors ===
var (
	// ErrArrayTooLong is returned when Lift encounters an array literal longer
	// than the sealed Universe's MaxArrayLen.
	ErrArrayTooLong = errors.New("array literal exceeds universe bound")

	// ErrKeyOutOfUniverse is returned when Lift encounters an object literal
	// with a key outside the sealed Universe's Keys set.
	ErrKeyOutOfUniverse = errors.New("object key outside universe")

	// ErrUnliftableLiteral is returned when Lift is given a Go value with no
	// corresponding JSON representation (e.g. a channel or a func).
	ErrUnliftableLiteral = errors.New("literal has no JSON representation")
)

// === Format Validation Errors ===
var (
	// ErrIPv6AddressNotEnclosed is returned when a URI's IPv6 host is not
	// bracket-enclosed.
	ErrIPv6AddressNotEnclosed = errors.New("ipv6 address format error")

	// ErrInvalidIPv6Address is returned when a URI's bracket-enclosed host
	// is not a valid IPv6 address.
	ErrInvalidIPv6Address = errors.New("invalid ipv6 address")
)

// MalformedSchemaError wraps a lower-level decode error with ErrMalformedSchema
// so callers can match it with errors.Is while still seeing the cause.
type MalformedSchemaError struct {
	Err error
}

func (e *MalformedSchemaError) Error() string {
	return ErrMalformedSchema.Error() + ": " + e.Err.Error()
}

func (e *MalformedSchemaError) Unwrap() []error {
	return []error{ErrMalformedSchema, e.Err}
}
