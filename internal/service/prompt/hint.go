package prompt

import (
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/pkoukk/tiktoken-go"
)

// AvoidRepeats appends the recently generated texts to a prompt as a list the
// model must not repeat.
func AvoidRepeats(prompt string, recent []string) string {
	if len(recent) == 0 {
		return prompt
	}
	quoted := make([]string, len(recent))
	for i, r := range recent {
		quoted[i] = strconv.Quote(r)
	}
	return prompt + "\n ⚠️ Do not repeat any of these sentences: [" + strings.Join(quoted, ", ") + "]"
}

// Counter reports the number of tokens in a text.
type Counter func(text string) int

var (
	encoding     *tiktoken.Tiktoken
	encodingOnce sync.Once
)

// TokenCounter counts cl100k_base tokens. When the encoding cannot be
// loaded it estimates four bytes per token.
func TokenCounter() Counter {
	encodingOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err == nil {
			encoding = enc
		}
	})
	if encoding == nil {
		return func(text string) int {
			return (len(text) + 3) / 4
		}
	}
	return func(text string) int {
		return len(encoding.Encode(text, nil, nil))
	}
}

// Limiter keeps a recency hint within a token budget.
type Limiter struct {
	budget int
	count  Counter
}

func NewLimiter(budget int, count Counter) *Limiter {
	if count == nil {
		count = func(text string) int { return utf8.RuneCountInString(text) }
	}
	return &Limiter{budget: budget, count: count}
}

// Fit returns the newest texts whose combined size stays within the budget,
// in their original order. A zero or negative budget disables the limit.
func (l *Limiter) Fit(texts []string) []string {
	if l == nil || l.budget <= 0 {
		return texts
	}

	used := 0
	start := len(texts)
	for i := len(texts) - 1; i >= 0; i-- {
		n := l.count(texts[i])
		if used+n > l.budget {
			break
		}
		used += n
		start = i
	}
	return texts[start:]
}
