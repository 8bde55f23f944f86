package errors

import "maps"

// ErrorCategory represents the broad category of an error for classification and routing.
type ErrorCategory string

const (
	// CategoryManifest covers manifest load and validation failures:
	// unreadable files, YAML parse errors, missing template references,
	// unknown section format kinds.
	CategoryManifest ErrorCategory = "manifest"

	// CategoryBudget covers token budget violations. Always fatal to the
	// generation that raised it, never retried.
	CategoryBudget ErrorCategory = "budget"

	// CategoryFileSystem covers read/write/mkdir failures, propagated with
	// minimal wrapping.
	CategoryFileSystem ErrorCategory = "filesystem"

	// CategoryGeneration is the single wrapper category the orchestrator
	// re-classifies any internal failure into.
	CategoryGeneration ErrorCategory = "generation"

	// CategoryIndex covers master index rebuild failures.
	CategoryIndex ErrorCategory = "index"

	// CategoryConfig covers application configuration errors.
	CategoryConfig ErrorCategory = "config"

	CategoryInternal ErrorCategory = "internal"
)

// ErrorSeverity indicates the impact level of an error.
type ErrorSeverity string

const (
	SeverityFatal   ErrorSeverity = "fatal"   // Stops execution completely
	SeverityError   ErrorSeverity = "error"   // Fails the current operation
	SeverityWarning ErrorSeverity = "warning" // Continues with degraded functionality
)

// ErrorContext provides structured context for errors.
type ErrorContext map[string]any

// Set adds or updates a context value.
func (c ErrorContext) Set(key string, value any) ErrorContext {
	if c == nil {
		c = make(ErrorContext)
	}
	c[key] = value
	return c
}

// Get retrieves a context value.
func (c ErrorContext) Get(key string) (any, bool) {
	if c == nil {
		return nil, false
	}
	value, exists := c[key]
	return value, exists
}

// GetString retrieves a string context value.
func (c ErrorContext) GetString(key string) (string, bool) {
	if value, exists := c.Get(key); exists {
		if str, ok := value.(string); ok {
			return str, true
		}
	}
	return "", false
}

// Merge combines two contexts, with other taking precedence.
func (c ErrorContext) Merge(other ErrorContext) ErrorContext {
	if c == nil {
		if other == nil {
			return nil
		}
		merged := make(ErrorContext, len(other))
		maps.Copy(merged, other)
		return merged
	}
	merged := make(ErrorContext, len(c)+len(other))
	maps.Copy(merged, c)
	maps.Copy(merged, other)
	return merged
}
