// Package testutil provides utilities for testing idswap components.
//
// Key components:
//   - NewTestFS: afero-backed in-memory filesystem
//   - Tree / WriteTree: declarative fixture setup from a path -> content map
//   - FaultyFS: wraps a types.FS and injects errors for chosen operations and paths
//
// Usage guidelines:
//   - Walker tests run against NewTestFS for speed and isolation
//   - Use t.TempDir() with filesystem.NewOS() only where real OS semantics matter
//   - All test data should be defined inline, not in external files
package testutil
