package prefs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	f := Open("", nil)
	if f.Path() != filepath.Join(home, ".config", "catalog", "prefs.toml") {
		t.Fatalf("Path = %q, want default under HOME", f.Path())
	}
	if got := f.Load().Theme; got != defaultTheme {
		t.Fatalf("Theme = %q, want %q", got, defaultTheme)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	prefsDir := filepath.Join(home, ".config", "catalog")
	if err := os.MkdirAll(prefsDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	if err := os.WriteFile(filepath.Join(prefsDir, "prefs.toml"), []byte("theme = \"Slate\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if got := Open("", nil).Load().Theme; got != "Slate" {
		t.Fatalf("Theme = %q, want %q", got, "Slate")
	}
}

func TestSave_CreatesFileAndDirs(t *testing.T) {
	prefsFile := filepath.Join(t.TempDir(), "subdir", "prefs.toml")
	f := Open(prefsFile, nil)

	if err := f.Save(Prefs{Theme: "Kanagawa"}); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if got := Open(prefsFile, nil).Load().Theme; got != "Kanagawa" {
		t.Fatalf("Theme = %q, want %q", got, "Kanagawa")
	}
}

func TestLoad_DegradesToDefaults(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty theme", "theme = \"\"\n"},
		{"invalid toml", "not valid toml {{{\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			prefsFile := filepath.Join(t.TempDir(), "prefs.toml")
			if err := os.WriteFile(prefsFile, []byte(tc.body), 0o644); err != nil {
				t.Fatalf("WriteFile: %v", err)
			}
			if got := Open(prefsFile, nil).Load().Theme; got != defaultTheme {
				t.Fatalf("Theme = %q, want %q", got, defaultTheme)
			}
		})
	}
}

func TestSave_UnresolvedPathErrors(t *testing.T) {
	f := &File{}
	if err := f.Save(Defaults()); err == nil {
		t.Fatalf("Save returned nil error, want error for unresolved path")
	}
	if got := f.Load(); got != Defaults() {
		t.Fatalf("Load = %#v, want defaults", got)
	}
}
