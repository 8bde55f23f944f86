package tokens

import (
	"errors"
	"fmt"
)

// Budget declares a maximum token count for a generated AI variant.
// A nil Budget, or MaxTokens <= 0, means unconstrained.
type Budget struct {
	MaxTokens int `yaml:"max_tokens"`
}

// BudgetExceededError reports a token count over its declared budget,
// carrying both numbers.
type BudgetExceededError struct {
	Count     int
	MaxTokens int
}

func (e *BudgetExceededError) Error() string {
	return fmt.Sprintf("token budget exceeded: %d tokens over a %d token budget", e.Count, e.MaxTokens)
}

// IsBudgetExceeded reports whether err is, or wraps, a budget overflow.
func IsBudgetExceeded(err error) bool {
	var be *BudgetExceededError
	return errors.As(err, &be)
}

// ValidateBudget checks count against budget. Absent or non-positive budgets
// always pass. Pure and side-effect-free; the caller decides whether the
// failure aborts anything.
func ValidateBudget(count int, budget *Budget) error {
	if budget == nil || budget.MaxTokens <= 0 {
		return nil
	}
	if count > budget.MaxTokens {
		return &BudgetExceededError{Count: count, MaxTokens: budget.MaxTokens}
	}
	return nil
}
