package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestGenerateUUIDv7(t *testing.T) {
	id := GenerateUUIDv7()
	if id == uuid.Nil {
		t.Fatal("expected non-nil uuid")
	}
	if id.Version() != 7 {
		t.Fatalf("expected version 7, got %d", id.Version())
	}
}

func TestGenerateUUIDv7_TimeOrdered(t *testing.T) {
	a := GenerateUUIDv7()
	b := GenerateUUIDv7()
	if a.String() >= b.String() {
		t.Fatalf("expected ordered ids, got %s then %s", a, b)
	}
}
