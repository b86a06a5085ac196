package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"gopkg.in/yaml.v3"

	"github.com/MikeSquared-Agency/chatstat/internal/analysis"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	sectionStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	noteStyle    = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

// Write encodes r in the given format.
func Write(w io.Writer, r *Report, format string) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	case FormatText, "":
		_, err := io.WriteString(w, Text(r))
		return err
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

// Text renders r for a terminal.
func Text(r *Report) string {
	var sb strings.Builder
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Chat analysis: %s", r.User)))
	sb.WriteString("\n")
	if r.Notice != "" {
		sb.WriteString(noteStyle.Render(r.Notice))
		sb.WriteString("\n")
		return sb.String()
	}

	section(&sb, "Top Statistics", r.Stats, func(s analysis.Stats) string {
		return table.New().
			Border(lipgloss.NormalBorder()).
			Headers("Total Messages", "Total Words", "Media Shared", "Links Shared").
			Row(strconv.Itoa(s.Messages), strconv.Itoa(s.Words), strconv.Itoa(s.Media), strconv.Itoa(s.Links)).
			String()
	})
	section(&sb, "Monthly Timeline", r.Monthly, countTable("Month"))
	section(&sb, "Daily Timeline", r.Daily, countTable("Date"))
	section(&sb, "Most Busy Day", r.BusyDays, countTable("Day"))
	section(&sb, "Most Busy Month", r.BusyMonths, countTable("Month"))
	section(&sb, "Weekly Activity Map", r.Heatmap, heatmapTable)
	if r.BusyUsers != nil {
		section(&sb, "Most Busy Users", *r.BusyUsers, func(b analysis.BusyUsers) string {
			t := table.New().Border(lipgloss.NormalBorder()).Headers("Name", "Percent")
			for _, s := range b.Shares {
				t.Row(s.Name, strconv.FormatFloat(s.Percent, 'f', 2, 64))
			}
			return t.String()
		})
	}
	section(&sb, "Most Common Words", r.CommonWords, countTable("Word"))
	section(&sb, "Emoji Analysis", r.EmojiChart, countTable("Emoji"))
	return sb.String()
}

func section[T any](sb *strings.Builder, title string, v View[T], render func(T) string) {
	sb.WriteString("\n")
	sb.WriteString(sectionStyle.Render(title))
	sb.WriteString("\n")
	switch v.Status {
	case StatusOK:
		sb.WriteString(render(v.Data))
	case StatusFailed:
		sb.WriteString(errorStyle.Render(v.Message))
	default:
		sb.WriteString(noteStyle.Render(v.Message))
	}
	sb.WriteString("\n")
}

func countTable(label string) func([]analysis.Count) string {
	return func(counts []analysis.Count) string {
		t := table.New().Border(lipgloss.NormalBorder()).Headers(label, "Count")
		for _, c := range counts {
			t.Row(c.Label, strconv.Itoa(c.Count))
		}
		return t.String()
	}
}

func heatmapTable(h analysis.Heatmap) string {
	t := table.New().Border(lipgloss.NormalBorder()).Headers(append([]string{""}, h.Periods...)...)
	for i, day := range h.Days {
		row := []string{day}
		for _, c := range h.Cells[i] {
			row = append(row, strconv.Itoa(c))
		}
		t.Row(row...)
	}
	return t.String()
}
