package repository

import (
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestNormalizeDSN_ForcesMultiStatements(t *testing.T) {
	// The migration files hold several statements each; a connection
	// without multiStatements rejects them at the second statement.
	got, err := normalizeDSN("root:password@tcp(127.0.0.1:3306)/story_lens?parseTime=true")
	if err != nil {
		t.Fatalf("normalizeDSN() unexpected error: %v", err)
	}

	cfg, err := mysql.ParseDSN(got)
	if err != nil {
		t.Fatalf("parsing normalized DSN: %v", err)
	}
	if !cfg.MultiStatements {
		t.Error("normalized DSN must enable multiStatements")
	}
	if !cfg.ParseTime {
		t.Error("normalized DSN must enable parseTime")
	}
}

func TestNormalizeDSN_KeepsConnectionTarget(t *testing.T) {
	got, err := normalizeDSN("app:secret@tcp(db.internal:3306)/story_lens")
	if err != nil {
		t.Fatalf("normalizeDSN() unexpected error: %v", err)
	}

	cfg, err := mysql.ParseDSN(got)
	if err != nil {
		t.Fatalf("parsing normalized DSN: %v", err)
	}
	if cfg.User != "app" || cfg.Addr != "db.internal:3306" || cfg.DBName != "story_lens" {
		t.Errorf("connection target changed: %s@%s/%s", cfg.User, cfg.Addr, cfg.DBName)
	}
}

func TestNormalizeDSN_Invalid(t *testing.T) {
	if _, err := normalizeDSN("missing-the-database-separator"); err == nil {
		t.Error("normalizeDSN() expected error for a malformed DSN")
	}
}
