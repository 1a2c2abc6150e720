package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mmheroes/mmheroes-go/internal/game"
)

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
mode: god
seed: 1234
name: Tester
storage:
  db_path: /tmp/test.db
ssh:
  address: ":2022"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if opts.Mode != "god" || opts.Seed != 1234 || opts.Name != "Tester" {
		t.Errorf("unexpected options: %+v", opts)
	}
	if opts.Storage.DBPath != "/tmp/test.db" {
		t.Errorf("db path: got %q", opts.Storage.DBPath)
	}
	if opts.SSH.Address != ":2022" {
		t.Errorf("ssh address: got %q", opts.SSH.Address)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("missing explicit config did not error")
	}
}

func TestEmbeddedDefaultParses(t *testing.T) {
	opts, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if opts.Mode == "" && opts.Name == "" {
		t.Errorf("default options look empty: %+v", opts)
	}
}

func TestGameMode(t *testing.T) {
	cases := []struct {
		mode string
		want game.Mode
	}{
		{"", game.ModeNormal},
		{"normal", game.ModeNormal},
		{"select", game.ModeSelectInitialParameters},
		{"god", game.ModeGod},
	}
	for _, c := range cases {
		opts := Options{Mode: c.mode}
		got, err := opts.GameMode()
		if err != nil {
			t.Errorf("GameMode(%q): %v", c.mode, err)
			continue
		}
		if got != c.want {
			t.Errorf("GameMode(%q): got %v, want %v", c.mode, got, c.want)
		}
	}

	opts := Options{Mode: "bogus"}
	if _, err := opts.GameMode(); err == nil {
		t.Error("unknown mode accepted")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	got, err := ExpandHome("~/x/y.db")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x/y.db") {
		t.Errorf("got %q", got)
	}
	if got, _ := ExpandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed: %q", got)
	}
}
