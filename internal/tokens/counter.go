// Package tokens measures token counts of generated documents and validates
// them against declared budgets.
package tokens

import (
	"math"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// encodingName is the tokenizer encoding used for precise counts.
const encodingName = "cl100k_base"

// Counter measures token counts. It prefers a precise tiktoken encoding and
// latches onto a words*1.3 heuristic when the encoding cannot be loaded.
type Counter struct {
	once sync.Once
	enc  *tiktoken.Tiktoken
}

// NewCounter returns a Counter. Encoding initialization is deferred to the
// first Count call so construction never fails.
func NewCounter() *Counter {
	return &Counter{}
}

// Count returns the token count of text. Precise when the encoding is
// available, otherwise ceil(wordCount * 1.3).
func (c *Counter) Count(text string) int {
	if text == "" {
		return 0
	}
	c.once.Do(func() {
		// Loading may fetch the encoding definition; failure is absorbed
		// and the heuristic takes over for the Counter's lifetime.
		if enc, err := tiktoken.GetEncoding(encodingName); err == nil {
			c.enc = enc
		}
	})
	if c.enc != nil {
		return len(c.enc.Encode(text, nil, nil))
	}
	return EstimateTokens(text)
}

// EstimateTokens is the heuristic fallback: ceil(wordCount * 1.3), where words
// are whitespace-delimited.
func EstimateTokens(text string) int {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0
	}
	return int(math.Ceil(float64(words) * 1.3))
}
