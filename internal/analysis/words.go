package analysis

import (
	"strings"

	"github.com/MikeSquared-Agency/chatstat/internal/transcript"
)

var mediaOmittedLower = strings.ToLower(transcript.MediaOmitted)

// CommonWords returns the twenty most frequent lower-cased words. Group
// notifications, media placeholders and stop words are left out.
func (e *Engine) CommonWords(set *transcript.RecordSet, user string) []Count {
	t := newTally()
	for r := range set.Filter(user).All() {
		if r.IsNotification() {
			continue
		}
		msg := strings.ToLower(r.Message)
		if strings.Contains(msg, mediaOmittedLower) {
			continue
		}
		for _, w := range strings.Fields(msg) {
			if e.stop.Contains(w) {
				continue
			}
			t.add(w)
		}
	}
	return t.mostCommon(commonWordsLimit)
}

// EmojiFrequency counts every emoji character in the selection, most
// frequent first.
func (e *Engine) EmojiFrequency(set *transcript.RecordSet, user string) []Count {
	t := newTally()
	for r := range set.Filter(user).All() {
		for _, c := range r.Message {
			if e.emoji.IsEmoji(c) {
				t.add(string(c))
			}
		}
	}
	return t.mostCommon(0)
}

// WordCloudText joins every message of the selection with spaces for a word
// cloud renderer. ok is false when the selection is empty.
func (e *Engine) WordCloudText(set *transcript.RecordSet, user string) (text string, ok bool) {
	sel := set.Filter(user)
	if sel.Empty() {
		return "", false
	}
	parts := make([]string, 0, sel.Len())
	for r := range sel.All() {
		parts = append(parts, r.Message)
	}
	return strings.Join(parts, " "), true
}
