// Package backup manages the single on-disk backup slot kept next to a
// configuration file. The slot always holds the most recent pre-migration
// snapshot; creating a new backup overwrites any previous one.
package backup

import (
	"fmt"
	"os"
)

// Suffix is appended to the configuration file name to derive the slot path.
const Suffix = ".bak"

// Path returns the backup slot location for the given configuration file.
func Path(configPath string) string {
	return configPath + Suffix
}

// Create snapshots the configuration file into the backup slot as an exact
// byte copy, replacing whatever the slot held before.
func Create(configPath string) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", configPath, err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(configPath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(Path(configPath), data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", Path(configPath), err)
	}
	return nil
}

// Exists reports whether the backup slot currently holds a snapshot.
func Exists(configPath string) bool {
	_, err := os.Stat(Path(configPath))
	return err == nil
}

// Restore copies the slot contents back over the configuration file and
// then empties the slot. If deleting the slot fails after a successful
// copy, the restore has already taken effect on disk but the error is
// still returned; callers see a failure even though the file content is
// back. That asymmetry is intentional and observable.
func Restore(configPath string) error {
	bakPath := Path(configPath)
	data, err := os.ReadFile(bakPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", bakPath, err)
	}
	mode := os.FileMode(0o644)
	if info, err := os.Stat(bakPath); err == nil {
		mode = info.Mode().Perm()
	}
	if err := os.WriteFile(configPath, data, mode); err != nil {
		return fmt.Errorf("writing %s: %w", configPath, err)
	}
	if err := os.Remove(bakPath); err != nil {
		return fmt.Errorf("removing %s: %w", bakPath, err)
	}
	return nil
}
