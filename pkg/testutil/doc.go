// Package testutil provides utilities for testing neaten components.
//
// Key components:
//   - NewTestFS: afero MemMapFs wrapped as types.FS
//   - BuildTree / WriteTree: declarative directory trees, in memory or on disk
//   - Snapshot: full content capture used to prove a dry run changed nothing
//   - FaultyFS: injects listing and removal errors for chosen paths
//   - MockReporter: testify mock of types.Reporter
//
// Trees map slash separated paths relative to a root to file content.
// A key ending in "/" creates a directory.
package testutil
