// Package settings reads device configuration signals from a platform settings store.
//
// # Overview
//
// The store is partitioned into three namespaces (Global, Secure, System). Each tracked
// signal is bound to one namespace and one fixed key, and is exposed as an accessor on
// DataSource that returns a plain string.
//
// # Failure Handling
//
// Accessors never return errors and never panic. Every provider read goes through
// guard.Execute with "" as the fallback, so a missing key, an unsupported key, a denied
// permission and a broken provider all read as "". There is no caching and no retry: each
// call performs one read.
//
// # Version-Gated Signals
//
// rtt_calling_mode only exists from API level 28 (APILevelP). Source checks its injected
// Capability first and returns "" without touching the provider when the platform is older:
//
//	src := settings.New(provider, settings.WithPlatformVersion(func() int { return 29 }))
//	mode := src.RTTCallingMode()
//
// # Snapshots
//
// Collect reads every signal once into a flat Snapshot. Signals and Get expose the same
// table by name for tooling.
package settings
