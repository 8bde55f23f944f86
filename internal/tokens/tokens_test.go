package tokens

import (
	"errors"
	"strings"
	"testing"
)

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"empty", "", 0},
		{"whitespace only", "  \n\t ", 0},
		{"one word", "hello", 2},          // ceil(1 * 1.3)
		{"ten words", strings.Repeat("word ", 10), 13}, // ceil(10 * 1.3)
		{"three words", "a b c", 4},       // ceil(3 * 1.3) = ceil(3.9)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EstimateTokens(tt.text); got != tt.want {
				t.Errorf("EstimateTokens(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestCounterMonotoneOnLongerText(t *testing.T) {
	c := NewCounter()
	short := c.Count("one sentence of text")
	long := c.Count(strings.Repeat("one sentence of text ", 50))
	if short <= 0 {
		t.Fatalf("Count returned %d for non-empty text", short)
	}
	if long <= short {
		t.Errorf("longer text counted %d <= shorter text %d", long, short)
	}
}

func TestCounterEmpty(t *testing.T) {
	if got := NewCounter().Count(""); got != 0 {
		t.Errorf("Count(\"\") = %d, want 0", got)
	}
}

func TestValidateBudget(t *testing.T) {
	budget := &Budget{MaxTokens: 3000}

	if err := ValidateBudget(2500, budget); err != nil {
		t.Errorf("2500 within 3000 budget should pass, got %v", err)
	}
	if err := ValidateBudget(3000, budget); err != nil {
		t.Errorf("exactly at budget should pass, got %v", err)
	}

	err := ValidateBudget(3500, budget)
	if err == nil {
		t.Fatal("3500 over 3000 budget should fail")
	}
	var be *BudgetExceededError
	if !errors.As(err, &be) {
		t.Fatalf("expected *BudgetExceededError, got %T", err)
	}
	if be.Count != 3500 || be.MaxTokens != 3000 {
		t.Errorf("error carries %d/%d, want 3500/3000", be.Count, be.MaxTokens)
	}
	if !strings.Contains(err.Error(), "3500") || !strings.Contains(err.Error(), "3000") {
		t.Errorf("message must name both counts: %q", err.Error())
	}
}

func TestValidateBudgetAbsent(t *testing.T) {
	if err := ValidateBudget(1_000_000, nil); err != nil {
		t.Errorf("nil budget must always pass, got %v", err)
	}
	if err := ValidateBudget(1_000_000, &Budget{}); err != nil {
		t.Errorf("zero budget must always pass, got %v", err)
	}
}

// Budget monotonicity: passes for every max >= count, fails for every max < count.
func TestValidateBudgetMonotonicity(t *testing.T) {
	const count = 100
	for max := 1; max <= 200; max++ {
		err := ValidateBudget(count, &Budget{MaxTokens: max})
		if max >= count && err != nil {
			t.Fatalf("max=%d >= count=%d should pass, got %v", max, count, err)
		}
		if max < count && err == nil {
			t.Fatalf("max=%d < count=%d should fail", max, count)
		}
	}
}
