// Package types defines the data model shared by regkit's packages: the
// registry value type tags, the predefined hive handles, the immutable value
// record returned by reads, key metadata, and the typed error taxonomy.
//
// Design goals:
//   - Values are immutable and comparable so they can key maps and sets.
//   - Errors carry a stable Kind plus the raw OS code and message.
//   - Lookup tables are built once at init and never mutated.
package types
