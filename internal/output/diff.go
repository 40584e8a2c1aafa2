package output

import (
	"fmt"
	"strings"
)

// ModifiedItem represents a modified manifest entry for rendering.
type ModifiedItem struct {
	Name string
	Diff string
}

// RenderDiff renders added, removed, and modified manifest entries. A
// non-empty reordered lists the kept entries in the order a rebuild writes.
func RenderDiff(added, removed []string, modified []ModifiedItem, reordered []string, styles *Styles) string {
	if len(added) == 0 && len(removed) == 0 && len(modified) == 0 && len(reordered) == 0 {
		return "No changes detected."
	}

	var sb strings.Builder

	if len(added) > 0 {
		sb.WriteString(styles.Added.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range added {
			sb.WriteString("  + ")
			sb.WriteString(styles.Added.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(removed) > 0 {
		sb.WriteString(styles.Removed.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range removed {
			sb.WriteString("  - ")
			sb.WriteString(styles.Removed.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(modified) > 0 {
		sb.WriteString(styles.Modified.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styles.Modified.Render(mod.Name))
			sb.WriteString("\n")
			sb.WriteString(IndentDiff(mod.Diff, "    "))
			sb.WriteString("\n")
		}
	}

	if len(reordered) > 0 {
		sb.WriteString(styles.Modified.Render("Reordered:"))
		sb.WriteString("\n")
		for i, name := range reordered {
			fmt.Fprintf(&sb, "  %d. %s\n", i+1, name)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Summary: ")
	sb.WriteString(diffSummary(len(added), len(removed), len(modified), len(reordered) > 0))
	sb.WriteString("\n")

	return sb.String()
}

// IndentDiff indents every non-empty line of a diff.
func IndentDiff(diff, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func diffSummary(added, removed, modified int, reordered bool) string {
	if added == 0 && removed == 0 && modified == 0 && !reordered {
		return "No changes"
	}

	parts := make([]string, 0, 4)
	if added > 0 {
		parts = append(parts, fmt.Sprintf("%d added", added))
	}
	if removed > 0 {
		parts = append(parts, fmt.Sprintf("%d removed", removed))
	}
	if modified > 0 {
		parts = append(parts, fmt.Sprintf("%d modified", modified))
	}
	if reordered {
		parts = append(parts, "order changed")
	}
	return strings.Join(parts, ", ")
}
