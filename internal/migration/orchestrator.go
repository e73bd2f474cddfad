// Package migration sequences the steps of retargeting an Anchor project:
// validate the project layout, snapshot the configuration file, read and
// parse it, transform it for the selected network, then persist or preview
// the result. Each fallible step aborts the pipeline immediately.
package migration

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/creachadair/atomicfile"

	"sonicmigrate/internal/anchor"
	"sonicmigrate/internal/backup"
	"sonicmigrate/internal/network"
	"sonicmigrate/pkg/logging"
)

const (
	// ConfigFileName is the Anchor configuration file the tool rewrites.
	ConfigFileName = "Anchor.toml"
	// manifestFileName is the second marker required for a directory to
	// be accepted as an Anchor project.
	manifestFileName = "Cargo.toml"

	logSubsystem = "migration"
)

// Options selects what a single migration run does.
type Options struct {
	// Path is the project directory containing Anchor.toml.
	Path string
	// DryRun computes and returns the result without writing it.
	DryRun bool
	// Network is the migration target; empty selects network.Default.
	Network network.Network
}

// Result describes a completed (or previewed) migration.
type Result struct {
	// Network is the resolved target network.
	Network network.Network
	// Rendered is the serialized post-transform document. For dry runs
	// this is the only output; for real runs it matches what was written.
	Rendered string
	// Changes lists the rewrites that actually applied, for reporting.
	Changes []string
	// Applied is false for dry runs.
	Applied bool
}

// Run executes the migration pipeline against one project directory.
func Run(opts Options) (*Result, error) {
	net := opts.Network
	if net == "" {
		net = network.Default
	}

	if err := validateProject(opts.Path); err != nil {
		return nil, err
	}

	configPath := filepath.Join(opts.Path, ConfigFileName)

	if err := backup.Create(configPath); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBackupFailed, err)
	}
	logging.Debug(logSubsystem, "backup created at %s", backup.Path(configPath))

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadFailed, err)
	}

	doc, err := anchor.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTomlParse, err)
	}

	changes := doc.Retarget(net)
	for _, change := range changes {
		logging.Debug(logSubsystem, "%s", change)
	}

	rendered, err := doc.Marshal()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTomlParse, err)
	}

	result := &Result{
		Network:  net,
		Rendered: string(rendered),
		Changes:  changes,
	}

	if opts.DryRun {
		logging.Debug(logSubsystem, "dry run, changes not written")
		return result, nil
	}

	// Write through a temp file so a failed write never leaves a truncated
	// Anchor.toml behind; the backup slot stays the recovery path for the
	// logical (pre-transform) content.
	if err := atomicfile.WriteData(configPath, rendered, 0o644); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWriteFailed, err)
	}
	logging.Debug(logSubsystem, "wrote %s for network %s", configPath, net)

	result.Applied = true
	return result, nil
}

// Restore copies the backup slot back over Anchor.toml and clears the slot.
// It bypasses the migration pipeline entirely and does not require the
// directory to validate as an Anchor project.
func Restore(path string) error {
	configPath := filepath.Join(path, ConfigFileName)

	if !backup.Exists(configPath) {
		return fmt.Errorf("%w: %s", ErrBackupNotFound, backup.Path(configPath))
	}

	if err := backup.Restore(configPath); err != nil {
		return fmt.Errorf("%w: %v", ErrRestoreFailed, err)
	}
	logging.Debug(logSubsystem, "restored %s from backup", configPath)
	return nil
}

// validateProject requires both marker files before anything mutates.
func validateProject(path string) error {
	for _, marker := range []string{ConfigFileName, manifestFileName} {
		if _, err := os.Stat(filepath.Join(path, marker)); err != nil {
			return fmt.Errorf("%w: %s", ErrNotAnAnchorProject, path)
		}
	}
	return nil
}
