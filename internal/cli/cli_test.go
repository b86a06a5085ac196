package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const chat = "Messages to this group are now secured with end-to-end encryption.\n" +
	"12/01/2023, 10:15 - Alice created group \"Family\"\n" +
	"12/01/2023, 10:16 - Alice: good morning\n" +
	"12/01/2023, 10:17 - Bob: morning 😀\n" +
	"14/01/2023, 22:40 - Bob: <Media omitted>\n"

func writeChat(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chat.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append(args, "--stopwords", filepath.Join(t.TempDir(), "none.txt")))
	err := cmd.Execute()
	return out.String(), err
}

func TestUsersCommand(t *testing.T) {
	out, err := run(t, "users", writeChat(t, chat))
	require.NoError(t, err)
	assert.Equal(t, "Overall\nAlice\nBob\n", out)
}

func TestParseCommandEmitsJSONLines(t *testing.T) {
	out, err := run(t, "parse", writeChat(t, chat))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "group_notification", first["user"])
	assert.Equal(t, "12/01/2023, 10:15", first["raw_date"])
	assert.Equal(t, "2023-01-12", first["only_date"])
	assert.Equal(t, "10-11", first["period"])
}

func TestAnalyzeJSON(t *testing.T) {
	out, err := run(t, "analyze", writeChat(t, chat), "--format", "json")
	require.NoError(t, err)

	var r struct {
		Source string `json:"source"`
		Stats  struct {
			Data struct {
				Messages int `json:"messages"`
				Media    int `json:"media"`
			} `json:"data"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &r))
	assert.Equal(t, "chat.txt", r.Source)
	assert.Equal(t, 4, r.Stats.Data.Messages)
	assert.Equal(t, 1, r.Stats.Data.Media)
}

func TestAnalyzeYAMLForUser(t *testing.T) {
	out, err := run(t, "analyze", writeChat(t, chat), "-u", "Bob", "-f", "yaml")
	require.NoError(t, err)

	var r map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &r))
	assert.Equal(t, "Bob", r["user"])
	assert.NotContains(t, r, "busy_users")
}

func TestAnalyzeText(t *testing.T) {
	out, err := run(t, "analyze", writeChat(t, chat))
	require.NoError(t, err)
	assert.Contains(t, out, "Top Statistics")
	assert.Contains(t, out, "Most Busy Users")
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	_, err := run(t, "analyze", writeChat(t, chat), "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestAnalyzeMissingFile(t *testing.T) {
	_, err := run(t, "analyze", filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
}

func TestAnalyzeRequiresFile(t *testing.T) {
	_, err := run(t, "analyze")
	require.Error(t, err)
}
