package config

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleYAML = `
environment: test
server:
  port: 9090
dataset:
  path: testdata/snapshots.csv
cache:
  backend: memory
  ttl: 30m
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	c, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Server.Port != 9090 {
		t.Fatalf("unexpected port %d", c.Server.Port)
	}
	if c.Dataset.Path != "testdata/snapshots.csv" {
		t.Fatalf("unexpected dataset path %q", c.Dataset.Path)
	}
	// Defaults fill the rest.
	if c.Logging.Level != "info" {
		t.Fatalf("unexpected log level %q", c.Logging.Level)
	}
}

func TestLoadMissingDataset(t *testing.T) {
	_, err := Load(writeConfig(t, "environment: test\n"))
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadBadCacheBackend(t *testing.T) {
	body := "environment: test\ndataset:\n  path: x.csv\ncache:\n  backend: etcd\n"
	_, err := Load(writeConfig(t, body))
	if err == nil {
		t.Fatalf("expected validation error")
	}
}

func TestLoadWithEnvOverride(t *testing.T) {
	t.Setenv("DATASET_PATH", "/srv/data/other.csv.gz")
	c, err := LoadWithEnv(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if c.Dataset.Path != "/srv/data/other.csv.gz" {
		t.Fatalf("env override not applied: %q", c.Dataset.Path)
	}
}
