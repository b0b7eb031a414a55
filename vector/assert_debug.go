//go:build vectordebug

package vector

const debugAsserts = true
