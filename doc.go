// Package modpath implements the case-insensitive byte-string type behind
// a game-modding asset pipeline: slash-separated, ASCII-centric path
// identifiers that either borrow externally owned memory (archive blobs,
// mmapped indexes) or own an independent copy, with lazily memoized
// metadata and an asset-index-compatible 64-bit path hash.
//
// Components:
//   - Str: the core entity. Borrowed or owned bytes plus tri-state cached
//     facts (pure ASCII, ASCII lowercase, case-insensitive and
//     case-sensitive CRC32). Logically immutable; Dispose is the only
//     in-place mutation and is idempotent.
//   - GamePath: a length-validated wrapper exposing filename/extension
//     views. Never validates separator direction.
//   - internal/scan: the single-pass metadata scanner. The same bytes are
//     never walked twice to gather facts that could be gathered together.
//   - Hash32 / PathHash / PathHashFold: the external index convention —
//     folder hash in the high 32 bits, file hash in the low 32, split at
//     the last separator.
//   - index: an asset index keyed by the 64-bit hash over a pluggable
//     byte-store Provider (bigcache, ristretto, redis) and Codec.
//
// Keys written by index:
//
//	<ns>:%016x  - hex of the case-folded 64-bit path hash
//
// Equality notes: the memoized case-insensitive hash is a reject-only
// filter, never authoritative; a '*' byte on either side of Equals turns
// the comparison into a case-folded glob match.
package modpath
