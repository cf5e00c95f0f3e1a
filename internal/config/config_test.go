package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFrom(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
default_vault = "notes"

[vaults]
notes = "/home/me/notes"
work = "/home/me/work"

[ui]
accent = "#7aa2f7"

[inference]
endpoint = "http://localhost:11434/api/generate"
model = "llama3"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.DefaultVault != "notes" {
		t.Errorf("DefaultVault = %q", cfg.DefaultVault)
	}
	if cfg.Vaults["work"] != "/home/me/work" {
		t.Errorf("Vaults = %v", cfg.Vaults)
	}
	if cfg.UI.Accent != "#7aa2f7" {
		t.Errorf("Accent = %q", cfg.UI.Accent)
	}
	if cfg.Inference.Model != "llama3" {
		t.Errorf("Inference.Model = %q", cfg.Inference.Model)
	}
}

func TestLoadFromInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_vault = [broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for invalid TOML")
	}
}

func TestGetVaultPath(t *testing.T) {
	cfg := &Config{
		DefaultVault: "notes",
		Vaults: map[string]string{
			"notes": "/n",
			"work":  "/w",
		},
	}

	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"", "/n", false},
		{"work", "/w", false},
		{"missing", "", true},
	}

	for _, tt := range tests {
		got, err := cfg.GetVaultPath(tt.name)
		if tt.wantErr {
			if err == nil {
				t.Errorf("GetVaultPath(%q): expected error", tt.name)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("GetVaultPath(%q) = %q, %v, want %q", tt.name, got, err, tt.want)
		}
	}
}

func TestGetVaultPathNoDefault(t *testing.T) {
	cfg := &Config{Vaults: map[string]string{"a": "/a"}}
	if _, err := cfg.GetVaultPath(""); err == nil {
		t.Error("expected error with no default vault")
	}
}

func TestSaveToRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")

	cfg := &Config{
		DefaultVault: "notes",
		Vaults:       map[string]string{"notes": "/n"},
		Inference:    InferenceConfig{Endpoint: "http://localhost:11434/api/generate", Model: "llama3"},
	}
	if err := SaveTo(path, cfg); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.DefaultVault != "notes" || loaded.Vaults["notes"] != "/n" {
		t.Errorf("round trip lost vaults: %+v", loaded)
	}
	if loaded.Inference.Endpoint != cfg.Inference.Endpoint {
		t.Errorf("round trip lost inference config: %+v", loaded.Inference)
	}
}

func TestSaveToOmitsUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := SaveTo(path, &Config{DefaultVault: "n", Vaults: map[string]string{"n": "/n"}}); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, section := range []string{"[ui]", "[inference]"} {
		if strings.Contains(string(data), section) {
			t.Errorf("unset section %s written:\n%s", section, data)
		}
	}
}
