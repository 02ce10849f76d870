package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRootSubcommands(t *testing.T) {
	want := []string{"run", "careers", "history", "chat", "say", "version"}
	for _, name := range want {
		found := false
		for _, c := range rootCmd.Commands() {
			if c.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing subcommand %q", name)
		}
	}
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	// Merge persistent flags into rootCmd.Flags(), as cobra does when
	// parsing flags during Execute; loadConfig reads from cmd.Flags().
	if err := rootCmd.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	flags := rootCmd.PersistentFlags()
	if err := flags.Set("language", "es"); err != nil {
		t.Fatalf("set language flag: %v", err)
	}
	dbPath := filepath.Join(t.TempDir(), "history.db")
	if err := flags.Set("db", dbPath); err != nil {
		t.Fatalf("set db flag: %v", err)
	}
	t.Cleanup(func() {
		flags.Set("language", "")
		flags.Set("db", "")
	})

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Language != "es" {
		t.Errorf("language = %q, want 'es'", cfg.Language)
	}
	if cfg.DBPath != dbPath {
		t.Errorf("db path = %q, want %q", cfg.DBPath, dbPath)
	}
}

func TestResolveDBPathCreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "nested", "history.db")

	cfg, err := loadConfig(rootCmd)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	cfg.DBPath = want

	got, err := resolveDBPath(cfg)
	if err != nil {
		t.Fatalf("resolve db path: %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("parent directory not created: %v", err)
	}
}
