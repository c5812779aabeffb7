package querybuilder

import (
	"reflect"
	"testing"
)

func TestBuildSelect(t *testing.T) {
	query, args, err := NewQueryBuilder("").
		Select("value").
		From("settings").
		Where("name = ?", "gasWebhookUrl").
		Or("name = ?", "legacy").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if query != "SELECT value FROM settings WHERE name = ? OR name = ?" {
		t.Fatalf("unexpected query %q", query)
	}
	if !reflect.DeepEqual(args, []interface{}{"gasWebhookUrl", "legacy"}) {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildUpsert(t *testing.T) {
	query, args, err := NewQueryBuilder("public").
		Insert("name", "value", "updated_at").
		Into("settings").
		Values("k", "v", "t").
		OnConflict("name").
		SetExclude("value", "updated_at").
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := "INSERT INTO public.settings (name, value, updated_at) VALUES (?, ?, ?) ON CONFLICT (name) DO UPDATE SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at"
	if query != want {
		t.Fatalf("got %q\nwant %q", query, want)
	}
	if len(args) != 3 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildRejectsMismatchedRow(t *testing.T) {
	_, _, err := NewQueryBuilder("").Insert("a", "b").Into("t").Values(1).Build()
	if err == nil {
		t.Fatalf("expected error for short row")
	}
	if _, _, err := NewQueryBuilder("").Select("a").Build(); err == nil {
		t.Fatalf("expected error without table")
	}
}

func TestConflictDoNothing(t *testing.T) {
	query, _, err := NewQueryBuilder("").Insert("a").Into("t").Values(1).OnConflict("a").Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if query != "INSERT INTO t (a) VALUES (?) ON CONFLICT (a) DO NOTHING" {
		t.Fatalf("unexpected query %q", query)
	}
}
