package config

import (
	"os"
	"path/filepath"
	"testing"
)

const yamlConfig = `
input:
  path: /data/incoming
  extensions: [".d", ".edi"]
  max_files: 200
output:
  dir: /data/out
run:
  receive_date: "2023-01-02"
  worker_count: 2
`

const jsonConfig = `{
  "input": {"path": "/data/incoming"},
  "output": {"dir": "/data/out"},
  "server": {"address": ":9090"}
}`

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yamlConfig), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Input.Path != "/data/incoming" {
		t.Fatalf("input path: got %q", cfg.Input.Path)
	}
	if cfg.Input.MaxFiles != 200 {
		t.Fatalf("max files: got %d", cfg.Input.MaxFiles)
	}
	if cfg.Run.WorkerCount != 2 {
		t.Fatalf("worker count: got %d", cfg.Run.WorkerCount)
	}
	if cfg.Run.Buffer != 64 {
		t.Fatalf("buffer default: got %d", cfg.Run.Buffer)
	}
	if cfg.Server.Address != ":8080" {
		t.Fatalf("server address default: got %q", cfg.Server.Address)
	}
	if !cfg.WriteBusinessJSON() {
		t.Fatalf("business json should default to true")
	}
}

func TestLoadFromStringJSON(t *testing.T) {
	cfg, err := LoadFromString(jsonConfig, "json")
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if cfg.Server.Address != ":9090" {
		t.Fatalf("server address: got %q", cfg.Server.Address)
	}
}

func TestValidateRejectsMissingInput(t *testing.T) {
	if _, err := LoadFromString(`{"output": {"dir": "/data/out"}}`, "json"); err == nil {
		t.Fatalf("expected error for missing input.path")
	}
}

func TestValidateRequiresDestination(t *testing.T) {
	if _, err := LoadFromString(`{"input": {"path": "/data/in"}}`, "json"); err == nil {
		t.Fatalf("expected error when no destination configured")
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	if _, err := Load("config.toml"); err == nil {
		t.Fatalf("expected error for unsupported extension")
	}
}

func TestDatabaseDefaults(t *testing.T) {
	cfg, err := LoadFromString(`{
  "input": {"path": "/data/in"},
  "database": {"driver": "postgres", "host": "localhost", "port": 5432, "database": "claims"}
}`, "json")
	if err != nil {
		t.Fatalf("LoadFromString: %v", err)
	}
	if cfg.Database.ClaimsTable != "edi_claims" {
		t.Fatalf("claims table default: got %q", cfg.Database.ClaimsTable)
	}
	if cfg.Database.DetailsTable != "edi_claim_details" {
		t.Fatalf("details table default: got %q", cfg.Database.DetailsTable)
	}
	if cfg.Database.CompaniesTable != "edi_companies" {
		t.Fatalf("companies table default: got %q", cfg.Database.CompaniesTable)
	}
}
