// Package errchain is a small error-propagation core. It captures any
// concrete error behind one uniform container, layers human-readable
// context onto it as it crosses call boundaries, and recovers the
// original typed error on demand through errors.As.
//
// Producers pick between two construction paths. Failures a caller may
// want to branch on get a typed variant defined in their own package
// and enter the chain through From or plain propagation; one-off
// failures are built with New. Callers attach context with Wrap, which
// never mutates its input, and consumers either read the chain with
// Render or recover structure with As / AsType.
package errchain
