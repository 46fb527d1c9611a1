package config

import "testing"

func TestLoad_RequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error without MONGO_URI")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("PORT", "")
	t.Setenv("MONGO_DB", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Port != "3000" {
		t.Fatalf("expected default port 3000, got %q", cfg.Port)
	}
	if cfg.MongoDB != "animals" {
		t.Fatalf("expected default db animals, got %q", cfg.MongoDB)
	}
	if cfg.LogLevel != "info" || cfg.LogFormat != "text" {
		t.Fatalf("expected default logging info/text, got %q/%q", cfg.LogLevel, cfg.LogFormat)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("PORT", "8081")
	t.Setenv("MONGO_DB", "zoo")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.MongoURI != "mongodb://db.internal:27017" {
		t.Fatalf("unexpected mongo uri: %q", cfg.MongoURI)
	}
	if cfg.Port != "8081" || cfg.MongoDB != "zoo" {
		t.Fatalf("env overrides ignored: %+v", cfg)
	}
	if cfg.LogLevel != "debug" || cfg.LogFormat != "json" {
		t.Fatalf("logging overrides ignored: %+v", cfg)
	}
}
