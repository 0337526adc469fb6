// Package hub is the client core for a Beszel monitoring hub.
//
// The hub is a PocketBase-backed HTTP API: named collections of opaque
// records with filter, sort, pagination, and relation-expansion
// parameters. Client wraps one session (base URL plus optional token) and
// funnels every operation through a single request primitive that
// translates failures into a typed error taxonomy (ConfigError,
// AuthError, ValidationError, NotFoundError, NetworkError, BackendError,
// PersistenceError).
//
// The generic record accessors (ListRecords, GetRecord, CreateRecord,
// UpdateRecord, DeleteRecord) reach arbitrary collections without schema
// knowledge; the domain views (Systems, SystemStats, Containers, Alerts)
// are thin typed conveniences layered on top of them and are never
// required for the generic path to function.
package hub
