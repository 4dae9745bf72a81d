package workdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveBaseDir_Empty(t *testing.T) {
	if got := ResolveBaseDir(""); got != "" {
		t.Errorf("ResolveBaseDir(\"\") = %q, want empty", got)
	}
}

func TestResolveBaseDir_NoMarkers(t *testing.T) {
	dir := t.TempDir()
	if got := ResolveBaseDir(dir); got != filepath.Clean(dir) {
		t.Errorf("ResolveBaseDir = %q, want %q", got, dir)
	}
}

func TestResolveBaseDir_ConfigDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, configDir), 0755); err != nil {
		t.Fatal(err)
	}
	if got := ResolveBaseDir(dir); got != filepath.Clean(dir) {
		t.Errorf("ResolveBaseDir = %q, want %q", got, dir)
	}
}

func TestResolveBaseDir_RootFile(t *testing.T) {
	tests := []struct {
		name    string
		content func(target string) string
	}{
		{"absolute", func(target string) string { return target + "\n" }},
		{"relative", func(string) string { return "shared" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			target := filepath.Join(dir, "shared")
			if err := os.WriteFile(filepath.Join(dir, rootFile), []byte(tt.content(target)), 0644); err != nil {
				t.Fatal(err)
			}
			if got := ResolveBaseDir(dir); got != target {
				t.Errorf("ResolveBaseDir = %q, want %q", got, target)
			}
		})
	}
}

func TestResolveBaseDir_RootFileWinsOverConfigDir(t *testing.T) {
	dir := t.TempDir()
	other := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, configDir), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, rootFile), []byte(other), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveBaseDir(dir); got != filepath.Clean(other) {
		t.Errorf("ResolveBaseDir = %q, want %q", got, other)
	}
}

func TestResolveBaseDir_BlankRootFileIgnored(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, rootFile), []byte("  \n"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := ResolveBaseDir(dir); got != filepath.Clean(dir) {
		t.Errorf("ResolveBaseDir = %q, want %q", got, dir)
	}
}
