// Package config provides configuration loading and validation facilities
// for applications that keep per-deployment settings in a shared JSON
// document keyed by UUID.
//
// The document's top level is an object whose keys are UUID strings and
// whose values are configuration records. [Load] resolves one record by
// UUID, verifies the caller's required keys are present, and returns it.
// Keys that do not parse as UUIDs are skipped on purpose: shared documents
// often carry comments or bookkeeping entries next to the real ones.
//
// Environment access goes through the [Source] abstraction so callers can
// test resolution logic without mutating the process environment. [OSEnv]
// is the production implementation; [MapSource] (also produced by
// [ParseEnvString]) is the map-backed one.
package config
