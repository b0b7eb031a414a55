package vector

import "errors"

// ErrOutOfRange is returned by checked accessors when the index is not in [0, Len).
var ErrOutOfRange = errors.New("vector: index out of range")
