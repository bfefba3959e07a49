// Package id57 generates compact, URL-safe, lexicographically sortable
// identifiers.
//
// An identifier is exactly 33 characters: an 11-character base57 timestamp
// (microseconds since the Unix epoch) followed by a 22-character base57
// 128-bit random payload. Equal-width timestamp segments make identifiers
// sort by creation time under plain string comparison, so they work well as
// database keys, trace IDs, and anywhere a fixed-width ordered string is
// needed.
//
// The base57 alphabet excludes visually ambiguous characters (0, O, 1, I, l),
// which makes identifiers safe to read aloud, transcribe, and embed in URLs.
//
// # Basic Usage
//
//	id, err := id57.New()
//	if err != nil {
//	    return err
//	}
//	// id: "GgxNPvYKK4k3Fp7R2mAcWqJ9XzUvBdTnw"
//
// # Deterministic Generation
//
// Both segments can be pinned, which is useful for tests and for encoding
// existing 128-bit values (e.g. UUIDs) into the identifier space:
//
//	id, err := id57.New(
//	    id57.WithTime(createdAt),
//	    id57.WithPayload(id57.FromUUID(userID)),
//	)
//
// The random source itself is injectable via [WithEntropy], so tests can
// substitute a fixed or sequence-based generator.
//
// # Parsing
//
// Parse splits an identifier back into its components:
//
//	parsed, err := id57.Parse(id)
//	if err != nil {
//	    return err
//	}
//	createdAt := parsed.Time()
//
// # Width Overflow
//
// Eleven base57 digits hold microsecond timestamps far beyond any realistic
// wall-clock value, so overflow is not a practical concern; by default a
// too-large explicit timestamp silently widens the identifier, matching the
// codec's no-truncation contract. The [Strict] option turns this into
// [ErrWidthExceeded] for callers whose storage schema depends on the
// 33-character width.
//
// Encoding and decoding of raw integers is provided by the base57
// subpackage.
package id57
