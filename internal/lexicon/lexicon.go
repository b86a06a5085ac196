// Package lexicon provides the static, read-only resources used when counting
// words, emoji and links: the stop-word list, the emoji set and the URL finder.
package lexicon

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/forPelevin/gomoji"
	"mvdan.cc/xurls/v2"
)

// DefaultStopWordsPath is where the stop-word list is looked up, relative to
// the working directory.
const DefaultStopWordsPath = "stop_hinglishdata.txt"

// StopWords is a set of lower-case tokens excluded from word frequencies.
type StopWords map[string]struct{}

// NewStopWords builds a set from whitespace-separated tokens.
func NewStopWords(text string) StopWords {
	words := strings.Fields(text)
	sw := make(StopWords, len(words))
	for _, w := range words {
		sw[w] = struct{}{}
	}
	return sw
}

// Contains reports whether word is a stop word.
func (sw StopWords) Contains(word string) bool {
	_, ok := sw[word]
	return ok
}

// LoadStopWords reads a stop-word file. A missing file is an empty list, not
// an error. Any other read failure also returns an empty list, together with
// the error so the caller can log it.
func LoadStopWords(path string) (StopWords, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return StopWords{}, nil
		}
		return StopWords{}, fmt.Errorf("read stop words: %w", err)
	}
	return NewStopWords(string(data)), nil
}

// EmojiSet answers emoji membership for single characters.
type EmojiSet struct{}

// Skin tone modifiers are emoji in their own right even though gomoji only
// lists them inside modified sequences.
const (
	skinToneFirst = '\U0001F3FB'
	skinToneLast  = '\U0001F3FF'
)

// IsEmoji reports whether r is an emoji on its own. ASCII never is; keycap
// sequences like "#️⃣" only count as emoji when whole. "👍🏻" is two emoji:
// the hand and the skin tone modifier.
func (EmojiSet) IsEmoji(r rune) bool {
	if r < utf8.RuneSelf {
		return false
	}
	if r >= skinToneFirst && r <= skinToneLast {
		return true
	}
	return gomoji.ContainsEmoji(string(r))
}

// LinkFinder extracts URL-like substrings.
type LinkFinder struct{}

var relaxedURLs = xurls.Relaxed()

// FindAll returns every URL found in text, with or without a scheme.
func (LinkFinder) FindAll(text string) []string {
	return relaxedURLs.FindAllString(text, -1)
}

var (
	defaultOnce sync.Once
	defaultSW   StopWords
	defaultErr  error
)

// DefaultStopWords loads DefaultStopWordsPath on first use and returns the
// same set to every caller afterwards.
func DefaultStopWords() (StopWords, error) {
	defaultOnce.Do(func() {
		defaultSW, defaultErr = LoadStopWords(DefaultStopWordsPath)
	})
	return defaultSW, defaultErr
}
