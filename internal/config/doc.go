// Package config persists the hub URL and auth token between invocations.
//
// Credentials live in a single JSON file under ~/.config/beszelctl with
// owner-only permissions. The BESZEL_URL and BESZEL_TOKEN environment
// variables shadow the persisted values for one process without touching
// the file, following the base-config-plus-override layering pattern.
package config
