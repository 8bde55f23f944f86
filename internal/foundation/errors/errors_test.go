package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestClassifiedErrorMessage(t *testing.T) {
	err := NewError(CategoryManifest, "no template reference").Build()
	if got := err.Error(); got != "no template reference" {
		t.Errorf("Error() = %q", got)
	}
	if !err.IsCategory(CategoryManifest) {
		t.Error("expected manifest category")
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stderrors.New("disk full")
	err := WrapError(cause, CategoryFileSystem, "write output").Build()
	if !stderrors.Is(err, cause) {
		t.Error("wrapped cause not found via errors.Is")
	}
	if got := err.Error(); got != "write output: disk full" {
		t.Errorf("Error() = %q", got)
	}
}

func TestHasCategoryThroughChain(t *testing.T) {
	inner := NewError(CategoryBudget, "token budget exceeded").Build()
	outer := fmt.Errorf("generation failed: %w", inner)
	if !HasCategory(outer, CategoryBudget) {
		t.Error("budget category not detected through fmt wrap")
	}
	if HasCategory(outer, CategoryManifest) {
		t.Error("unexpected manifest category")
	}
}

func TestContextRoundTrip(t *testing.T) {
	err := NewError(CategoryGeneration, "generation failed").
		WithContext("manifest", "auth-manifest.yaml").
		Build()
	v, ok := err.Context().GetString("manifest")
	if !ok || v != "auth-manifest.yaml" {
		t.Errorf("context manifest = %q, ok=%v", v, ok)
	}
	err2 := err.WithContext("tokens", 3500)
	if _, ok := err.Context().Get("tokens"); ok {
		t.Error("WithContext mutated the original error")
	}
	if _, ok := err2.Context().Get("tokens"); !ok {
		t.Error("WithContext lost the new key")
	}
}

func TestSeverity(t *testing.T) {
	err := NewError(CategoryConfig, "bad config").Fatal().Build()
	if !err.IsFatal() {
		t.Error("expected fatal severity")
	}
	warn := NewError(CategoryConfig, "missing optional file").Warning().Build()
	if warn.Severity() != SeverityWarning {
		t.Errorf("severity = %q", warn.Severity())
	}
}
