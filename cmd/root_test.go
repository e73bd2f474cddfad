package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const testAnchorToml = `[programs.localnet]
migration = "EtQdsPNDckBhME3gRjcj9Z4Z9tGEYAoHjWKv7aHJgBua"

[provider]
cluster = "Localnet"
wallet = "~/.config/solana/id.json"
`

func createTestProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "Anchor.toml"), []byte(testAnchorToml), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Cargo.toml"), []byte("[package]\nname = \"test\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

// executeRoot runs the root command with the given args and returns the
// combined output. Flag globals are reset afterwards.
func executeRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		dryRun = false
		verbose = false
		noColor = false
		noSpinner = false
		networkFlag = ""
	})

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestRootCmdMetadata(t *testing.T) {
	if !strings.HasPrefix(rootCmd.Use, "sonic-migrate") {
		t.Errorf("unexpected Use: %s", rootCmd.Use)
	}
	if !rootCmd.SilenceUsage {
		t.Error("SilenceUsage should be set")
	}
	for _, name := range []string{"dry-run", "network"} {
		if rootCmd.Flags().Lookup(name) == nil {
			t.Errorf("flag %q not registered", name)
		}
	}
	for _, name := range []string{"verbose", "no-color", "no-spinner"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not registered", name)
		}
	}
}

func TestRootCmdHasSubcommands(t *testing.T) {
	want := map[string]bool{"restore": false, "networks": false, "version": false, "self-update": false}
	for _, sub := range rootCmd.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestMigrateDryRun(t *testing.T) {
	dir := createTestProject(t)

	out, err := executeRoot(t, "--dry-run", "--no-spinner", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "Dry run enabled") {
		t.Errorf("missing dry run notice, got: %q", out)
	}
	if !strings.Contains(out, "https://api.testnet.sonic.game") {
		t.Errorf("preview missing rewritten cluster, got: %q", out)
	}

	content, readErr := os.ReadFile(filepath.Join(dir, "Anchor.toml"))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if !strings.Contains(string(content), `cluster = "Localnet"`) {
		t.Error("dry run must not modify the file on disk")
	}
}

func TestMigrateMainnetAlpha(t *testing.T) {
	dir := createTestProject(t)

	out, err := executeRoot(t, "--no-spinner", "--network", "mainnet-alpha", dir)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if !strings.Contains(out, "Migration successful!") {
		t.Errorf("missing success message, got: %q", out)
	}
	if !strings.Contains(out, "https://api.mainnet-alpha.sonic.game") {
		t.Errorf("missing endpoint info, got: %q", out)
	}

	content, readErr := os.ReadFile(filepath.Join(dir, "Anchor.toml"))
	if readErr != nil {
		t.Fatal(readErr)
	}
	if !strings.Contains(string(content), "[programs.mainnet]") {
		t.Errorf("programs section not relocated, got: %q", string(content))
	}
}

func TestMigrateUnknownNetwork(t *testing.T) {
	dir := createTestProject(t)

	_, err := executeRoot(t, "--no-spinner", "--network", "devnet", dir)
	if err == nil {
		t.Fatal("expected error for unknown network")
	}
	if !strings.Contains(err.Error(), "unknown network") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestMigrateInvalidProject(t *testing.T) {
	dir := t.TempDir() // no marker files

	_, err := executeRoot(t, "--no-spinner", dir)
	if err == nil {
		t.Fatal("expected error for invalid project")
	}
	if !strings.Contains(err.Error(), "not a valid Anchor project") {
		t.Errorf("unexpected error: %v", err)
	}
}
