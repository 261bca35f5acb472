package tui

import (
	"fmt"
	"strings"

	"github.com/effect-native/examples/internal/catalog"
)

// RenderCatalog builds the two-section listing printed by the list
// command: templates first, then examples, names aligned in a column.
func RenderCatalog(templates, examples []catalog.Entry) string {
	width := nameColumnWidth(templates, examples)

	var b strings.Builder
	b.WriteString(TitleStyle.Render("Templates"))
	b.WriteString("\n")
	writeEntries(&b, templates, width)
	b.WriteString("\n")
	b.WriteString(TitleStyle.Render("Examples"))
	b.WriteString("\n")
	writeEntries(&b, examples, width)
	return b.String()
}

// RenderNextSteps builds the block printed after a successful scaffold.
// Expo projects are started with the dev server, everything else gets a
// build run.
func RenderNextSteps(dir, packageManager string, family catalog.Family) string {
	run := packageManager + " run build"
	if family == catalog.FamilyExpo {
		run = packageManager + " start"
	}
	steps := []string{
		"cd " + dir,
		packageManager + " install",
		run,
	}

	var b strings.Builder
	b.WriteString(SuccessStyle.Render("Project created in " + dir))
	b.WriteString("\n\n")
	b.WriteString("Next steps:\n")
	for _, step := range steps {
		b.WriteString("  " + CommandStyle.Render(step) + "\n")
	}
	return BoxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func writeEntries(b *strings.Builder, entries []catalog.Entry, width int) {
	for _, entry := range entries {
		name := ItemStyle.Render(fmt.Sprintf("%-*s", width, entry.Name))
		b.WriteString(fmt.Sprintf("  %s%s\n", name, DescriptionStyle.Render(entry.Description)))
	}
}

func nameColumnWidth(groups ...[]catalog.Entry) int {
	width := 0
	for _, entries := range groups {
		for _, entry := range entries {
			if len(entry.Name) > width {
				width = len(entry.Name)
			}
		}
	}
	return width + 2
}
