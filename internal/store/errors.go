package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when a user with the same email is
	// already stored.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a lookup by email or id matches no user.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session does not exist or belongs
	// to another user.
	ErrSessionNotFound = errors.New("study session was not found")

	// ErrStorageInconsistency is logged when a file read back after a write
	// does not match what was written. The store recovers by restoring the
	// backup and serving from memory.
	ErrStorageInconsistency = errors.New("storage write verification failed")
)

// Low-level database operation errors, wrapped by the SQL repositories.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrUnknownDriver        = errors.New("unknown database driver")
)
