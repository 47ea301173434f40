// Package rust provides Cargo.toml parsing and crates.io license
// resolution for Rust projects.
//
// Cargo.toml lists direct dependencies only; declared versions are
// requirements, not resolved versions. License expressions come from
// crates.io and may be compound ("MIT OR Apache-2.0").
package rust
