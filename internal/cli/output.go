package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/dslconv/internal/app/converter"
	"github.com/heartmarshall/dslconv/internal/domain"
)

var (
	// titleStyle for bold headers
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("33"))

	// dimStyle for muted metadata text
	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	// boxStyle for the run summary
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("33")).
			Padding(0, 1)

	wordStyle = lipgloss.NewStyle().Bold(true)
)

// renderSummary prints one line per converted file followed by a totals box.
func renderSummary(w io.Writer, title string, results []converter.FileResult) {
	var ok, failed, entries int
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(w, "%s %s %s\n", errorStyle.Render("✗"), r.Path, dimStyle.Render(r.Err.Error()))
			continue
		}
		ok++
		entries += r.Entries

		var details []string
		details = append(details, fmt.Sprintf("%d entries", r.Entries))
		if r.Output != "" {
			details = append(details, "→ "+r.Output)
		}
		if r.Inserted > 0 {
			details = append(details, fmt.Sprintf("%d rows", r.Inserted))
		}
		if r.DryRun {
			details = append(details, "dry run")
		}
		fmt.Fprintf(w, "%s %s %s\n", successStyle.Render("✓"), r.Path, dimStyle.Render(strings.Join(details, ", ")))

		if r.Stats.UnresolvedGroups > 0 {
			fmt.Fprintf(w, "  %s\n", warnStyle.Render(fmt.Sprintf("%d headword(s) without definitions", r.Stats.UnresolvedGroups)))
		}
		if r.Stats.OrphanDefinitions > 0 {
			fmt.Fprintf(w, "  %s\n", warnStyle.Render(fmt.Sprintf("%d definition line(s) before the first headword", r.Stats.OrphanDefinitions)))
		}
	}

	body := fmt.Sprintf("%s\nfiles: %d ok, %d failed\nentries: %d", titleStyle.Render(title), ok, failed, entries)
	fmt.Fprintln(w, boxStyle.Render(body))
}

// renderEntries prints stored entries grouped under their headword.
func renderEntries(w io.Writer, entries []domain.StoredEntry) {
	for _, e := range entries {
		fmt.Fprintf(w, "%s %s\n", wordStyle.Render(e.Word), dimStyle.Render(fmt.Sprintf("(dictionary %s, #%d)", e.DictionaryID, e.Position)))
		if len(e.PlainDefinitions) == 0 {
			fmt.Fprintf(w, "  %s\n", dimStyle.Render("no definitions"))
		}
		for i, def := range e.PlainDefinitions {
			fmt.Fprintf(w, "  %d. %s\n", i+1, def)
		}
	}
}

// renderDictionaries prints the imported dictionaries as a table.
func renderDictionaries(w io.Writer, dicts []domain.Dictionary) {
	if len(dicts) == 0 {
		fmt.Fprintln(w, dimStyle.Render("no dictionaries imported"))
		return
	}
	for _, d := range dicts {
		langs := strings.Trim(d.IndexLanguage+" → "+d.ContentsLanguage, " →")
		fmt.Fprintf(w, "%s %s\n  %s\n",
			titleStyle.Render(d.Name),
			dimStyle.Render(d.ID.String()),
			dimStyle.Render(fmt.Sprintf("%d entries, markup %s, %s, %s", d.EntryCount, d.Markup, langs, d.SourcePath)),
		)
	}
}
