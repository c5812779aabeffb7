package sqlstore

import (
	"context"
	"path/filepath"
	"testing"

	"gitlab.com/toeic-drill.net/internal/adapter/logging"
)

func TestSettingsRoundTripAcrossReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "settings.db")

	repo, err := OpenSQLite(ctx, path, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	value, err := repo.Get(ctx, "gasWebhookUrl")
	if err != nil {
		t.Fatalf("get unset: %v", err)
	}
	if value != nil {
		t.Fatalf("expected nil for unset key, got %q", value)
	}
	if err := repo.Set(ctx, "gasWebhookUrl", []byte(`"first"`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := repo.Set(ctx, "gasWebhookUrl", []byte(`"second"`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := repo.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	reopened, err := OpenSQLite(ctx, path, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	t.Cleanup(func() {
		_ = reopened.Close()
	})
	value, err = reopened.Get(ctx, "gasWebhookUrl")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(value) != `"second"` {
		t.Fatalf("expected last written value, got %q", value)
	}
}
