//go:build !vectordebug

package vector

const debugAsserts = false
