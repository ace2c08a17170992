package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/camelcase"
	"github.com/smellview/smellview/internal/domain"
)

var (
	ruleStyle    = lipgloss.NewStyle().Foreground(warning).Bold(true)
	snippetStyle = lipgloss.NewStyle().Foreground(fg).Italic(true)
)

// RuleTitle turns a rule id like "FinalStaticMethod" into "Final Static Method".
func RuleTitle(ruleID string) string {
	words := camelcase.Split(ruleID)
	kept := words[:0]
	for _, w := range words {
		if strings.TrimSpace(w) != "" && w != "_" && w != "-" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// RenderBadSmells renders smells grouped by file, in first-seen order.
func RenderBadSmells(hash string, smells []domain.BadSmell, rawCount int) string {
	var b strings.Builder

	title := headerStyle.Render("Bad Smells")
	hashLine := titleStyle.Render(shortHash(hash))
	stats := dimStyle.Render(fmt.Sprintf("%d unique  ·  %d reported", len(smells), rawCount))
	b.WriteString(boxStyle.Render(title + "\n\n" + hashLine + "\n" + stats))
	b.WriteString("\n\n")

	if len(smells) == 0 {
		b.WriteString("  " + passStyle.Render("No bad smells found.") + "\n")
		return b.String()
	}

	var files []string
	byFile := map[string][]domain.BadSmell{}
	for _, s := range smells {
		if _, ok := byFile[s.FilePath]; !ok {
			files = append(files, s.FilePath)
		}
		byFile[s.FilePath] = append(byFile[s.FilePath], s)
	}

	for _, f := range files {
		fmt.Fprintf(&b, "  %s %s\n", fileStyle.Render(shortenPath(f)),
			dimStyle.Render(fmt.Sprintf("(%d)", len(byFile[f]))))
		for _, s := range byFile[f] {
			renderSmell(&b, s)
		}
		b.WriteString("\n")
	}

	b.WriteString("  " + separatorLine + "\n")
	renderRuleSummary(&b, smells)
	b.WriteString("\n  " + hintStyle.Render("Use `smellview refactor <identifier>...` to fix smells automatically.") + "\n")
	return b.String()
}

func renderSmell(b *strings.Builder, s domain.BadSmell) {
	fmt.Fprintf(b, "    %s %s %s\n",
		failStyle.Render("●"),
		ruleStyle.Render(RuleTitle(s.RuleID)),
		faintStyle.Render(fmt.Sprintf("L%d  %s", s.Position.StartLine, s.Identifier)),
	)
	if s.MessageMarkdown != "" {
		fmt.Fprintf(b, "         %s\n", dimStyle.Render(firstLine(s.MessageMarkdown)))
	}
	if s.Snippet != nil && *s.Snippet != "" {
		fmt.Fprintf(b, "         %s\n", snippetStyle.Render(firstLine(*s.Snippet)))
	}
}

func renderRuleSummary(b *strings.Builder, smells []domain.BadSmell) {
	counts := domain.CountByRule(smells)
	rules := make([]string, 0, len(counts))
	for r := range counts {
		rules = append(rules, r)
	}
	sort.Slice(rules, func(i, j int) bool {
		if counts[rules[i]] != counts[rules[j]] {
			return counts[rules[i]] > counts[rules[j]]
		}
		return rules[i] < rules[j]
	})

	fmt.Fprintf(b, "  %s\n", titleStyle.Render("By rule"))
	for _, r := range rules {
		fmt.Fprintf(b, "    %s %s\n", padRight(RuleTitle(r), 40), dimStyle.Render(fmt.Sprintf("%d", counts[r])))
	}
}

// RenderRefactorings lists the rules the backend can fix automatically.
func RenderRefactorings(refs []domain.Refactoring) string {
	if len(refs) == 0 {
		return "  " + dimStyle.Render("No refactorings available.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", titleStyle.Render("Available refactorings"), dimStyle.Render(fmt.Sprintf("(%d)", len(refs))))
	b.WriteString("  " + separatorLine + "\n")
	for _, r := range refs {
		fmt.Fprintf(&b, "    %s %s  %s\n", passStyle.Render("●"), padRight(RuleTitle(r.RuleID.ID), 40), faintStyle.Render(r.RuleID.ID))
	}
	b.WriteString("\n")
	return b.String()
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
