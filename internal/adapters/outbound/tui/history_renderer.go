package tui

import (
	"fmt"
	"strings"

	"github.com/smellview/smellview/internal/domain"
)

// RenderHistory formats recorded commit snapshots for terminal output.
func RenderHistory(project string, snaps []domain.CommitSnapshot) string {
	if len(snaps) == 0 {
		return "  " + dimStyle.Render("No smell history found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Smell History") + "  " + dimStyle.Render(project) + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 50)) + "\n\n")

	for i, s := range snaps {
		line := fmt.Sprintf("  %s  %s  %s  %s",
			dimStyle.Render(s.FetchedAt.Format("2006-01-02")),
			faintStyle.Render(shortHash(s.CommitHash)),
			padRight(fmt.Sprintf("%d unique", s.UniqueCount), 10),
			faintStyle.Render(fmt.Sprintf("%d reported", s.RawCount)),
		)

		if i > 0 {
			// fewer smells is an improvement
			diff := s.UniqueCount - snaps[i-1].UniqueCount
			if diff < 0 {
				line += "  " + passStyle.Render(fmt.Sprintf("↓%d", -diff))
			} else if diff > 0 {
				line += "  " + failStyle.Render(fmt.Sprintf("↑%d", diff))
			}
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}
