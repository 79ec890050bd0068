package service

// Reloader is implemented by services that can re-read their backing
// files, replacing in-memory state with whatever is on disk.
type Reloader interface {
	Reload()
}
