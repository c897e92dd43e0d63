package cli

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"

	"github.com/harishanth5445-jpg/my-trade/internal/config"
	apperrors "github.com/harishanth5445-jpg/my-trade/internal/errors"
)

// execTestCmd runs one CLI invocation against a throwaway database.
func execTestCmd(t *testing.T, dbPath string, args ...string) error {
	t.Helper()

	cfg := &config.Config{}
	cfg.Storage.DatabasePath = dbPath
	cfg.Journal.DefaultStatus = "WIN"
	cfg.Journal.WeekStart = "sunday"

	root := NewRootCmd(cfg, zerolog.Nop())
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	return root.Execute()
}

func wantValidationError(t *testing.T, err error, field string) {
	t.Helper()
	var verr *apperrors.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError for %s, got %v", field, err)
	}
	if verr.Field != field {
		t.Fatalf("ValidationError field = %q, want %q", verr.Field, field)
	}
}

func TestLogAddRejectsNonPositiveContracts(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := execTestCmd(t, dbPath, "account", "add", "Test"); err != nil {
		t.Fatalf("account add: %v", err)
	}

	err := execTestCmd(t, dbPath, "log", "add", "ES", "--pnl", "100", "--contracts", "0")
	wantValidationError(t, err, "contracts")

	err = execTestCmd(t, dbPath, "log", "add", "ES", "--pnl", "100", "--contracts", "-3")
	wantValidationError(t, err, "contracts")

	// The default of 1 contract is valid
	if err := execTestCmd(t, dbPath, "log", "add", "ES", "--pnl", "100"); err != nil {
		t.Fatalf("valid add: %v", err)
	}
}

func TestLogAddRejectsInvalidEnums(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")
	if err := execTestCmd(t, dbPath, "account", "add", "Test"); err != nil {
		t.Fatalf("account add: %v", err)
	}

	err := execTestCmd(t, dbPath, "log", "add", "ES", "--side", "SIDEWAYS")
	wantValidationError(t, err, "side")

	err = execTestCmd(t, dbPath, "log", "add", "ES", "--status", "MAYBE")
	wantValidationError(t, err, "status")

	err = execTestCmd(t, dbPath, "log", "add", "ES", "--date", "last tuesday")
	wantValidationError(t, err, "date")

	err = execTestCmd(t, dbPath, "log", "add", "ES", "--rating", "7")
	wantValidationError(t, err, "rating")
}
