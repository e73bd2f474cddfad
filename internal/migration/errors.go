package migration

import "errors"

// Failure classes surfaced by the migration pipeline. Every fallible step
// wraps exactly one of these sentinels together with the underlying cause,
// so callers can match with errors.Is and still print the full detail.
var (
	// ErrNotAnAnchorProject means the target directory lacks the
	// Anchor.toml or Cargo.toml marker files.
	ErrNotAnAnchorProject = errors.New("the specified path is not a valid Anchor project")

	// ErrBackupFailed means the pre-migration snapshot could not be taken.
	ErrBackupFailed = errors.New("failed to back up Anchor.toml")

	// ErrReadFailed means the configuration file could not be loaded.
	ErrReadFailed = errors.New("failed to read Anchor.toml")

	// ErrTomlParse covers both decode and re-serialize failures.
	ErrTomlParse = errors.New("failed to parse Anchor.toml")

	// ErrWriteFailed means the migrated document could not be persisted.
	ErrWriteFailed = errors.New("failed to write Anchor.toml")

	// ErrBackupNotFound means a restore was requested but the backup slot
	// is empty.
	ErrBackupNotFound = errors.New("backup file not found")

	// ErrRestoreFailed means copying the backup back (or clearing the
	// slot afterwards) did not complete.
	ErrRestoreFailed = errors.New("failed to restore from backup")
)
