// Package token estimates LLM token consumption for UTF-8 text.
//
// The estimator is an explicitly constructed dependency passed to the
// analysis service, never a package-level singleton, so tests can substitute
// alternative vocabularies. Any implementation producing deterministic
// integer counts satisfies the contract.
package token

import (
	"github.com/tiktoken-go/tokenizer"
)

// Estimator counts tokens of arbitrary text under a fixed encoding scheme.
// Implementations must be deterministic: the same text always yields the
// same count.
type Estimator interface {
	Count(text string) int
}

// Tiktoken counts tokens using the cl100k_base byte-pair encoding, the
// vocabulary used by GPT-4 and GPT-3.5-turbo.
type Tiktoken struct {
	codec tokenizer.Codec
}

// NewTiktoken constructs a cl100k_base estimator. It fails only if the
// embedded vocabulary cannot be loaded.
func NewTiktoken() (*Tiktoken, error) {
	codec, err := tokenizer.Get(tokenizer.Cl100kBase)
	if err != nil {
		return nil, err
	}
	return &Tiktoken{codec: codec}, nil
}

// Count returns the number of cl100k_base tokens in text. Empty text is 0.
// An encoding failure falls back to the heuristic estimate rather than
// erroring; token counts are advisory, not load-bearing.
func (t *Tiktoken) Count(text string) int {
	if len(text) == 0 {
		return 0
	}
	ids, _, err := t.codec.Encode(text)
	if err != nil {
		return Heuristic{}.Count(text)
	}
	return len(ids)
}

// Heuristic approximates token counts as word count times 1.3, the average
// subword expansion for English text. It is deterministic and monotonic
// under document growth, which makes it the estimator of choice in tests.
type Heuristic struct{}

// Count returns the approximate token count of text. Empty text is 0.
func (Heuristic) Count(text string) int {
	if len(text) == 0 {
		return 0
	}
	return int(float64(countWords(text)) * 1.3)
}

func countWords(text string) int {
	words := 0
	inWord := false
	for _, r := range text {
		switch r {
		case ' ', '\t', '\n', '\r':
			inWord = false
		default:
			if !inWord {
				words++
				inWord = true
			}
		}
	}
	return words
}
