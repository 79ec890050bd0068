// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, invalid index, unknown pattern).
	UserError = 1

	// StorageError indicates a fatal storage failure (unwritable file).
	StorageError = 2
)
