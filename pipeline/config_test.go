package pipeline

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}

	if config.RawDataDir != "data/raw" {
		t.Errorf("RawDataDir = %q, want default", config.RawDataDir)
	}
	if config.DatabasePath != "specfusion.db" {
		t.Errorf("DatabasePath = %q, want default", config.DatabasePath)
	}
	if config.MaxOpenConns != 25 || config.MaxIdleConns != 5 {
		t.Errorf("pool defaults = %d/%d, want 25/5", config.MaxOpenConns, config.MaxIdleConns)
	}
	if config.ConnMaxLifetime != 5*time.Minute {
		t.Errorf("ConnMaxLifetime = %v, want 5m", config.ConnMaxLifetime)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("RAW_DATA_DIR", "/tmp/offers")
	t.Setenv("DB_MAX_OPEN_CONNS", "50")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error: %v", err)
	}
	if config.RawDataDir != "/tmp/offers" {
		t.Errorf("RawDataDir = %q, want env override", config.RawDataDir)
	}
	if config.MaxOpenConns != 50 {
		t.Errorf("MaxOpenConns = %d, want 50", config.MaxOpenConns)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"корректная конфигурация", func(c *Config) {}, false},
		{"пустой каталог сырых данных", func(c *Config) { c.RawDataDir = "" }, true},
		{"пустой путь базы", func(c *Config) { c.DatabasePath = "" }, true},
		{"idle больше open", func(c *Config) { c.MaxIdleConns = 100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := &Config{
				RawDataDir:        "data/raw",
				ProcessedDir:      "data/processed",
				FieldMappingsFile: "data/field_mappings.json",
				DatabasePath:      "specfusion.db",
				MaxOpenConns:      25,
				MaxIdleConns:      5,
			}
			tt.mutate(config)
			if err := config.Validate(); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCatalogPath(t *testing.T) {
	config := &Config{ProcessedDir: "data/processed"}
	want := "data/processed/product_17_catalog.json"
	if got := config.CatalogPath("17"); got != want {
		t.Errorf("CatalogPath(17) = %q, want %q", got, want)
	}
}
