// internal/adapters/out/localstore/store.go
package localstore

// Store is a small string key-value surface, the shape of browser storage:
// Get returns ("", false) for an absent key, Set overwrites.
//
// Two lifetimes exist behind this one interface: FileStore survives restarts
// (localStorage), SessionStore lives for one process run (sessionStorage).
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}
