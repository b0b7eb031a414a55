// Package rawbuf provides a single-owner block of element slots and a pool for
// block reuse. A Buffer has no notion of logical size and never resizes
// itself; growth policy lives in the owning container (see package vector).
package rawbuf
