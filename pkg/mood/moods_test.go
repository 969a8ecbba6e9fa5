package mood

import "testing"

func TestForAliasKey(t *testing.T) {
	got, err := ForAlias("happy")
	if err != nil {
		t.Fatalf("for alias: %v", err)
	}
	if got != "😊" {
		t.Fatalf("expected 😊, got %q", got)
	}
}

func TestForAliasRawEmoji(t *testing.T) {
	got, err := ForAlias("🫠")
	if err != nil {
		t.Fatalf("for alias: %v", err)
	}
	if got != "🫠" {
		t.Fatalf("expected pass-through emoji, got %q", got)
	}
}

func TestForAliasUnknown(t *testing.T) {
	if _, err := ForAlias("meh"); err == nil {
		t.Fatal("expected error for unknown ascii alias")
	}
	if _, err := ForAlias("  "); err == nil {
		t.Fatal("expected error for blank mood")
	}
}
