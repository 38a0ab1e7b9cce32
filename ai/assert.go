//go:build !fuzzydebug

package ai

// assertf is a no-op in release builds. Build with -tags fuzzydebug to
// turn violated invariants into panics.
func assertf(bool, string, ...any) {}
