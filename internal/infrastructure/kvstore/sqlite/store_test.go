package sqlite

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/team-roster/internal/platform/kvstore"
)

var _ kvstore.Store = (*Store)(nil)

func TestStore_RoundTripAndReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.sqlite")
	ctx := context.Background()

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	if err := store.Set(ctx, "@roster:players/Turma A", `[]`); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Set(ctx, "@roster:players/Turma A", `[{"name":"Ana","team":"Time A"}]`); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	// Reopening runs migrations again and must not fail.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()

	value, found, err := reopened.Get(ctx, "@roster:players/Turma A")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !found || value != `[{"name":"Ana","team":"Time A"}]` {
		t.Fatalf("unexpected value: found=%v value=%q", found, value)
	}
}

func TestStore_ListKeysAndRemove(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "roster.sqlite"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	ctx := context.Background()
	for _, key := range []string{"g/b", "g/a", "p/a", "g_x"} {
		if err := store.Set(ctx, key, "1"); err != nil {
			t.Fatalf("set %s: %v", key, err)
		}
	}

	keys, err := store.ListKeys(ctx, "g/")
	if err != nil {
		t.Fatalf("list keys: %v", err)
	}
	if strings.Join(keys, ",") != "g/a,g/b" {
		t.Fatalf("unexpected keys: %v", keys)
	}

	if err := store.Remove(ctx, "g/a"); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if err := store.Remove(ctx, "g/a"); err != nil {
		t.Fatalf("remove missing key: %v", err)
	}
	if _, found, err := store.Get(ctx, "g/a"); err != nil || found {
		t.Fatalf("expected removed key, found=%v err=%v", found, err)
	}
}

func TestFormatQueryForTrace(t *testing.T) {
	t.Parallel()

	got := formatQueryForTrace("  SELECT  entry_value\n\tFROM kv_entries  ")
	if got != "SELECT entry_value FROM kv_entries" {
		t.Fatalf("unexpected formatted query: %q", got)
	}

	long := strings.Repeat("x", maxTracedQueryLength+10)
	if got := formatQueryForTrace(long); len(got) != maxTracedQueryLength+3 {
		t.Fatalf("expected truncated query, got length %d", len(got))
	}
}

func TestOpen_WithoutMigrationsLeavesSchemaEmpty(t *testing.T) {
	t.Parallel()

	store, err := Open(filepath.Join(t.TempDir(), "bare.sqlite"), WithoutMigrations())
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	if _, _, err := store.Get(context.Background(), "@roster:group/Futsal"); err == nil {
		t.Fatalf("expected error reading from an unmigrated store")
	}
}
