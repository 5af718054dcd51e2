// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentLoader: Turns one file into a Document
//   - TreeScanner: Discovers and loads every snippet under a root
//   - DocumentStore: Snapshot of the last catalog reload
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - ChangeWatcher: Filesystem notifications that trigger a reload
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter, connector, or normaliser package
package driven
