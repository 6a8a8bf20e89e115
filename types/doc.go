// Package types contains the core value types and interfaces of the bliss
// partition library.
//
// It defines the Range interval type, the Numeric value-domain constraint,
// the Partitioner strategy interface, and the Logger and MetricsCollector
// interfaces, along with the library's sentinel errors.
//
// The package exists so that strategy implementations, internal packages, and
// the root bliss package can share definitions without import cycles; the
// root package re-exports everything here via type aliases.
package types
