// Package domain contains the core business types and errors for fedwatch.
// It has no dependencies on adapters or infrastructure.
package domain
