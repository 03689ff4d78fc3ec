package reqctx

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestWithValueRoundTrip(t *testing.T) {
	key := NewKey[string]("greeting")

	ctx := key.WithValue(context.Background(), "hello")

	got, ok := key.From(ctx)
	if !ok {
		t.Fatal("From() reported frame missing after push")
	}
	if got != "hello" {
		t.Errorf("From() = %q, want %q", got, "hello")
	}
}

func TestFromMissingFrame(t *testing.T) {
	key := NewKey[int]("count")

	got, ok := key.From(context.Background())
	if ok {
		t.Error("From() reported frame present on empty context")
	}
	if got != 0 {
		t.Errorf("From() = %d, want zero value 0", got)
	}
}

func TestShadowing(t *testing.T) {
	key := NewKey[string]("value")

	ctx := key.WithValue(context.Background(), "first")
	ctx = key.WithValue(ctx, "second")

	got, ok := key.From(ctx)
	if !ok {
		t.Fatal("From() reported frame missing after two pushes")
	}
	if got != "second" {
		t.Errorf("From() = %q, want most recent push %q", got, "second")
	}
}

func TestShadowingDoesNotMutateOuterContext(t *testing.T) {
	key := NewKey[string]("value")

	outer := key.WithValue(context.Background(), "first")
	inner := key.WithValue(outer, "second")

	if got, _ := key.From(outer); got != "first" {
		t.Errorf("outer From() = %q, want %q (outer frame must be untouched)", got, "first")
	}
	if got, _ := key.From(inner); got != "second" {
		t.Errorf("inner From() = %q, want %q", got, "second")
	}
}

func TestDistinctKeysDoNotCollide(t *testing.T) {
	a := NewKey[string]("shared name")
	b := NewKey[string]("shared name")

	ctx := a.WithValue(context.Background(), "for a")

	if _, ok := b.From(ctx); ok {
		t.Error("key b found a frame pushed under key a")
	}

	ctx = b.WithValue(ctx, "for b")
	if got, _ := a.From(ctx); got != "for a" {
		t.Errorf("a.From() = %q, want %q", got, "for a")
	}
	if got, _ := b.From(ctx); got != "for b" {
		t.Errorf("b.From() = %q, want %q", got, "for b")
	}
}

func TestKeysOfDifferentTypesDoNotCollide(t *testing.T) {
	s := NewKey[string]("frame")
	n := NewKey[int]("frame")

	ctx := s.WithValue(context.Background(), "text")
	ctx = n.WithValue(ctx, 42)

	if got, _ := s.From(ctx); got != "text" {
		t.Errorf("string frame = %q, want %q", got, "text")
	}
	if got, _ := n.From(ctx); got != 42 {
		t.Errorf("int frame = %d, want 42", got)
	}
}

func TestNilPointerValueIsPresent(t *testing.T) {
	type record struct{ name string }
	key := NewKey[*record]("record")

	ctx := key.WithValue(context.Background(), nil)

	got, ok := key.From(ctx)
	if !ok {
		t.Fatal("From() reported frame missing after pushing nil pointer")
	}
	if got != nil {
		t.Errorf("From() = %v, want nil", got)
	}
}

func TestRequirePresent(t *testing.T) {
	key := NewKey[string]("value")
	ctx := key.WithValue(context.Background(), "here")

	got, err := key.Require(ctx)
	if err != nil {
		t.Fatalf("Require() error = %v, want nil", err)
	}
	if got != "here" {
		t.Errorf("Require() = %q, want %q", got, "here")
	}
}

func TestRequireMissing(t *testing.T) {
	key := NewKey[string]("span id")

	_, err := key.Require(context.Background())
	if err == nil {
		t.Fatal("Require() error = nil, want ErrMissingFrame")
	}
	if !errors.Is(err, ErrMissingFrame) {
		t.Errorf("Require() error = %v, want to wrap ErrMissingFrame", err)
	}
	if !strings.Contains(err.Error(), "span id") {
		t.Errorf("Require() error = %q, want to name the key", err.Error())
	}
}

func TestKeyName(t *testing.T) {
	key := NewKey[string]("tracing id")
	if key.Name() != "tracing id" {
		t.Errorf("Name() = %q, want %q", key.Name(), "tracing id")
	}
}
