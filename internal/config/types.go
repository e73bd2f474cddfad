// Package config loads optional user settings for sonic-migrate by
// layering defaults, a user-level file and a project-level file.
// Command-line flags always take precedence over anything loaded here.
package config

// Settings holds tool preferences. All fields are optional; an unset field
// leaves the lower layer's value in place.
type Settings struct {
	// DefaultNetwork is used when no --network flag is given. It must name
	// one of the built-in networks (testnet, mainnet-alpha).
	DefaultNetwork string `yaml:"defaultNetwork,omitempty"`
	// Verbose enables debug logging without passing --verbose.
	Verbose bool `yaml:"verbose,omitempty"`
	// NoColor disables colored terminal output.
	NoColor bool `yaml:"noColor,omitempty"`
	// NoSpinner disables the progress spinner.
	NoSpinner bool `yaml:"noSpinner,omitempty"`
}
