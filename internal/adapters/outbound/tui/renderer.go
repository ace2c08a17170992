package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/smellview/smellview/internal/domain"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	dimStyle           = lipgloss.NewStyle().Foreground(dim)
	faintStyle         = lipgloss.NewStyle().Foreground(faint)
	passStyle          = lipgloss.NewStyle().Foreground(success)
	failStyle          = lipgloss.NewStyle().Foreground(danger)
	warnStyle          = lipgloss.NewStyle().Foreground(warning)
	fileStyle          = lipgloss.NewStyle().Foreground(dim)
	titleStyle         = lipgloss.NewStyle().Bold(true).Foreground(fg)
	sectionHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(accent)
	hintStyle          = lipgloss.NewStyle().Foreground(dim).Italic(true)
	separatorLine      = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderProjects lists projects with their analyzed commits.
func RenderProjects(projects []domain.Project) string {
	if len(projects) == 0 {
		return "  " + dimStyle.Render("No projects registered.") + "\n"
	}

	var b strings.Builder
	title := headerStyle.Render("smellview")
	subtitle := dimStyle.Render(fmt.Sprintf("%d projects", len(projects)))
	b.WriteString(boxStyle.Render(title + "\n" + subtitle))
	b.WriteString("\n\n")

	for i, p := range projects {
		fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render(p.ProjectName), dimStyle.Render(p.OwnerRepo()))
		fmt.Fprintf(&b, "  %s\n", faintStyle.Render(p.ProjectURL))
		if len(p.Commits) == 0 {
			fmt.Fprintf(&b, "    %s\n", dimStyle.Render(fmt.Sprintf("%d commit hashes, none analyzed", len(p.CommitHashes))))
		}
		for _, c := range p.Commits {
			renderCommitLine(&b, c)
		}
		if i < len(projects)-1 {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderCommits lists commits and their analyzer statuses.
func RenderCommits(project string, commits []domain.Commit) string {
	if len(commits) == 0 {
		return "  " + dimStyle.Render(fmt.Sprintf("No commits found for %s.", project)) + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render("Commits"), dimStyle.Render(project))
	b.WriteString("  " + separatorLine + "\n\n")
	for _, c := range commits {
		renderCommitLine(&b, c)
		for _, s := range c.AnalyzerStatuses {
			renderAnalyzerStatus(&b, s)
		}
	}
	b.WriteString("\n")
	return b.String()
}

// RenderLocalCommits marks which local commits the backend has analyzed.
func RenderLocalCommits(local []string, analyzed []domain.Commit) string {
	if len(local) == 0 {
		return ""
	}
	known := make(map[string]bool, len(analyzed))
	for _, c := range analyzed {
		known[c.CommitHash] = true
	}

	var b strings.Builder
	fmt.Fprintf(&b, "  %s\n", sectionHeaderStyle.Render("Local commits"))
	for _, h := range local {
		mark := faintStyle.Render("○")
		if known[h] {
			mark = passStyle.Render("●")
		}
		fmt.Fprintf(&b, "    %s %s\n", mark, shortHash(h))
	}
	return b.String()
}

// RenderProjectConfig renders one project's backend configuration.
func RenderProjectConfig(cfg domain.ProjectConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "  %s  %s\n", titleStyle.Render("Project config"), dimStyle.Render(domain.OwnerRepoName(cfg.ProjectURL)))
	fmt.Fprintf(&b, "    %s %s\n", padRight("url", 14), cfg.ProjectURL)
	fmt.Fprintf(&b, "    %s %s\n", padRight("source folder", 14), cfg.SourceFolder)
	return b.String()
}

func renderCommitLine(b *strings.Builder, c domain.Commit) {
	icon := passStyle.Render("●")
	for _, s := range c.AnalyzerStatuses {
		if !s.Succeeded() {
			icon = warnStyle.Render("●")
			break
		}
	}
	fmt.Fprintf(b, "    %s %s  %s\n", icon, shortHash(c.CommitHash),
		dimStyle.Render(fmt.Sprintf("%d issues", c.TotalIssues())))
}

func renderAnalyzerStatus(b *strings.Builder, s domain.AnalyzerStatus) {
	status := passStyle.Render(strings.ToLower(s.Status))
	if !s.Succeeded() {
		status = failStyle.Render(strings.ToLower(s.Status))
	}
	fmt.Fprintf(b, "        %s %s %s  %s\n",
		padRight(s.AnalyzerName, 12),
		status,
		dimStyle.Render(fmt.Sprintf("%d issues", s.NumberOfIssues)),
		faintStyle.Render(s.LocalDateTime),
	)
}

func shortHash(hash string) string {
	if len(hash) > 7 {
		return hash[:7]
	}
	if hash == "" {
		return "·······"
	}
	return hash
}

func shortenPath(path string) string {
	for _, marker := range []string{"src/main/java/", "src/test/java/"} {
		if idx := strings.Index(path, marker); idx >= 0 {
			return path[idx+len(marker):]
		}
	}
	parts := strings.Split(filepath.ToSlash(path), "/")
	if len(parts) > 3 {
		return strings.Join(parts[len(parts)-3:], "/")
	}
	return path
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
