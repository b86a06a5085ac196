package transcript

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const threeSenders = "1/5/23, 10:00 - Carol: c\n" +
	"1/5/23, 10:01 - Alice: a1\n" +
	"1/5/23, 10:02 - Alice created group \"x\"\n" +
	"1/5/23, 10:03 - Bob: b\n" +
	"1/5/23, 10:04 - Alice: a2\n"

func TestFilter(t *testing.T) {
	set := Parse(threeSenders)

	assert.Same(t, set, set.Filter(Overall))
	assert.Same(t, set, set.Filter(""))

	alice := set.Filter("Alice")
	require.Equal(t, 2, alice.Len())
	assert.Equal(t, "a1", alice.At(0).Message)
	assert.Equal(t, "a2", alice.At(1).Message)

	assert.True(t, set.Filter("Nobody").Empty())
	assert.Equal(t, 5, set.Len(), "filtering leaves the source untouched")
}

func TestUsers(t *testing.T) {
	set := Parse(threeSenders)
	assert.Equal(t, []string{"Alice", "Bob", "Carol"}, set.Senders())
	assert.Equal(t, []string{Overall, "Alice", "Bob", "Carol"}, set.Users())
}

func TestNilRecordSet(t *testing.T) {
	var set *RecordSet
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.Empty())
	for range set.All() {
		t.Fatal("nil set yielded a record")
	}
}

func TestNewRecordSetCopies(t *testing.T) {
	recs := []Record{{User: "Alice", Message: "hi"}}
	set := NewRecordSet(recs)
	recs[0].Message = "changed"
	assert.Equal(t, "hi", set.At(0).Message)
}

func TestAllStopsEarly(t *testing.T) {
	set := Parse(threeSenders)
	n := 0
	for range set.All() {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "héllo", Decode([]byte("\xEF\xBB\xBFhéllo")))
	// "café" in ISO-8859-1 is not valid UTF-8.
	assert.Equal(t, "café", Decode([]byte{'c', 'a', 'f', 0xE9}))
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.txt")
	require.NoError(t, os.WriteFile(path, []byte(threeSenders), 0o644))

	set, err := ParseFile(path)
	require.NoError(t, err)
	assert.Equal(t, 5, set.Len())

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)
}
