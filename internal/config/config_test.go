package config

import (
	"strings"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppPort != "8080" {
		t.Fatalf("AppPort = %q, want 8080", cfg.AppPort)
	}
	if cfg.DBDriver != "sqlite" || cfg.SQLitePath != "loanledger.db" {
		t.Fatalf("db defaults wrong: %+v", cfg)
	}
	if cfg.SeedMinUsers != 13 {
		t.Fatalf("SeedMinUsers = %d, want 13", cfg.SeedMinUsers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_HOST", "db.internal")
	t.Setenv("SEED_MIN_USERS", "0")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.AppPort != "9090" || cfg.DBDriver != "mysql" || cfg.MySQLHost != "db.internal" {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.SeedMinUsers != 0 {
		t.Fatalf("SeedMinUsers = %d, want 0", cfg.SeedMinUsers)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("mysql config should validate: %v", err)
	}

	dsn := cfg.MySQLDSN()
	if !strings.Contains(dsn, "@tcp(db.internal:3306)/loanledger") {
		t.Fatalf("unexpected DSN: %s", dsn)
	}
	if !strings.Contains(dsn, "parseTime=true") {
		t.Fatalf("DSN missing parseTime: %s", dsn)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*Config)
	}{
		{"unknown driver", func(c *Config) { c.DBDriver = "postgres" }},
		{"empty sqlite path", func(c *Config) { c.SQLitePath = "" }},
		{"bad mysql port", func(c *Config) { c.DBDriver = "mysql"; c.MySQLPort = "notaport" }},
		{"negative seed floor", func(c *Config) { c.SeedMinUsers = -1 }},
		{"empty port", func(c *Config) { c.AppPort = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			tc.mut(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatalf("expected validation error")
			}
		})
	}
}
