// Package analysis computes the aggregate views of a parsed chat: totals,
// timelines, activity histograms and word and emoji frequencies.
package analysis

import "github.com/MikeSquared-Agency/chatstat/internal/lexicon"

const (
	topSendersLimit  = 5
	commonWordsLimit = 20
)

// StopList tells whether a lower-case token is excluded from word counts.
type StopList interface {
	Contains(word string) bool
}

// EmojiClassifier tells whether a single character is an emoji.
type EmojiClassifier interface {
	IsEmoji(r rune) bool
}

// LinkDetector finds URL-like substrings.
type LinkDetector interface {
	FindAll(text string) []string
}

// Resources are the read-only lookups the engine needs. Nil fields fall back
// to an empty stop list, lexicon.EmojiSet and lexicon.LinkFinder.
type Resources struct {
	StopWords StopList
	Emoji     EmojiClassifier
	Links     LinkDetector
}

// Engine computes views over a record set. It holds no mutable state and is
// safe for concurrent use.
type Engine struct {
	stop  StopList
	emoji EmojiClassifier
	links LinkDetector
}

// New creates an engine.
func New(res Resources) *Engine {
	e := &Engine{stop: res.StopWords, emoji: res.Emoji, links: res.Links}
	if e.stop == nil {
		e.stop = lexicon.StopWords{}
	}
	if e.emoji == nil {
		e.emoji = lexicon.EmojiSet{}
	}
	if e.links == nil {
		e.links = lexicon.LinkFinder{}
	}
	return e
}

// Stats are the headline numbers for a selection.
type Stats struct {
	Messages int `json:"messages" yaml:"messages"`
	Words    int `json:"words" yaml:"words"`
	Media    int `json:"media" yaml:"media"`
	Links    int `json:"links" yaml:"links"`
}

// Count is a labelled tally: a month, a date, a weekday, a sender, a word or an emoji.
type Count struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// Share is a sender's percentage of all messages.
type Share struct {
	Name    string  `json:"name" yaml:"name"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// BusyUsers is the busiest senders view.
type BusyUsers struct {
	Top    []Count `json:"top" yaml:"top"`
	Shares []Share `json:"shares" yaml:"shares"`
}

// Heatmap counts messages per weekday and hour bucket. Cells[i][j] belongs to
// Days[i] and Periods[j].
type Heatmap struct {
	Days    []string `json:"days" yaml:"days"`
	Periods []string `json:"periods" yaml:"periods"`
	Cells   [][]int  `json:"cells" yaml:"cells"`
}
