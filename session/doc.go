// Package session provides session persistence backends for the SDK.
//
// Two stores ship with the SDK: [MemoryStore] for tests and short-lived
// processes, and [FileStore] for durable JSON files on disk.
package session
