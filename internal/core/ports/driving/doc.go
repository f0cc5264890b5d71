// Package driving provides interfaces for use-case entry points
// (primary/inbound ports) consumed by the CLI and TUI.
package driving
