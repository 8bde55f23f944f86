package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

func TestHelpersProduceCanonicalKeys(t *testing.T) {
	cases := []struct {
		attr slog.Attr
		key  string
	}{
		{Manifest("m.yaml"), KeyManifest},
		{Template("t.md"), KeyTemplate},
		{Section("Overview"), KeySection},
		{FormatKind("bullet_points"), KeyFormatKind},
		{Tokens(42), KeyTokens},
		{Budget(3000), KeyBudget},
		{Path("docs/ai/auth-ai.md"), KeyPath},
		{Slug("auth"), KeySlug},
		{RunID("abc"), KeyRunID},
		{DurationMS(12.5), KeyDurationMS},
		{Count(3), KeyCount},
		{Error(errors.New("boom")), KeyError},
	}
	for _, c := range cases {
		if c.attr.Key != c.key {
			t.Errorf("attr key = %q, want %q", c.attr.Key, c.key)
		}
	}
}

func TestErrorNil(t *testing.T) {
	a := Error(nil)
	if a.Value.String() != "" {
		t.Errorf("nil error should render empty, got %q", a.Value.String())
	}
}
