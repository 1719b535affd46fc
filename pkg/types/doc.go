// Package types defines the core types and interfaces used throughout idswap.
// This includes the FS interface every walker takes, and the data structures
// produced by a conversion run: Root, ChangeRecord and Skip.
package types
