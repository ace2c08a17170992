package tui_test

import (
	"testing"
	"time"

	"github.com/smellview/smellview/internal/adapters/outbound/tui"
	"github.com/smellview/smellview/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleCommit() domain.Commit {
	return domain.Commit{
		CommitHash: "abc1234def",
		AnalyzerStatuses: []domain.AnalyzerStatus{
			{AnalyzerName: "qodana", CommitHash: "abc1234def", NumberOfIssues: 12, Status: "SUCCESS"},
			{AnalyzerName: "spoon", CommitHash: "abc1234def", NumberOfIssues: 3, Status: "FAILURE"},
		},
	}
}

func TestRenderProjects(t *testing.T) {
	output := tui.RenderProjects([]domain.Project{{
		ProjectName:  "spoon",
		ProjectURL:   "https://github.com/INRIA/spoon",
		CommitHashes: []string{"abc1234def"},
		Commits:      []domain.Commit{sampleCommit()},
	}})
	assert.Contains(t, output, "spoon")
	assert.Contains(t, output, "INRIA/spoon")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "15 issues")
}

func TestRenderProjects_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderProjects(nil), "No projects registered")
}

func TestRenderCommits_ShowsAnalyzerStatuses(t *testing.T) {
	output := tui.RenderCommits("spoon", []domain.Commit{sampleCommit()})
	assert.Contains(t, output, "qodana")
	assert.Contains(t, output, "success")
	assert.Contains(t, output, "failure")
	assert.Contains(t, output, "12 issues")
}

func TestRenderCommits_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderCommits("spoon", nil), "No commits found for spoon")
}

func TestRenderLocalCommits(t *testing.T) {
	output := tui.RenderLocalCommits([]string{"abc1234def", "fff0000aaa"}, []domain.Commit{sampleCommit()})
	assert.Contains(t, output, "Local commits")
	assert.Contains(t, output, "abc1234")
	assert.Contains(t, output, "fff0000")
	assert.Empty(t, tui.RenderLocalCommits(nil, nil))
}

func TestRenderProjectConfig(t *testing.T) {
	output := tui.RenderProjectConfig(domain.ProjectConfig{ProjectURL: "https://github.com/INRIA/spoon", SourceFolder: "src/main/java"})
	assert.Contains(t, output, "INRIA/spoon")
	assert.Contains(t, output, "src/main/java")
}

func TestRuleTitle(t *testing.T) {
	assert.Equal(t, "Final Static Method", tui.RuleTitle("FinalStaticMethod"))
	assert.Equal(t, "Unused Import", tui.RuleTitle("UnusedImport"))
	assert.Equal(t, "", tui.RuleTitle(""))
}

func TestRenderBadSmells(t *testing.T) {
	smells := []domain.BadSmell{
		{Identifier: "s1", RuleID: "UnusedImport", MessageMarkdown: "unused import", Snippet: domain.StringPtr("import java.util.List;"), FilePath: "src/main/java/a/A.java", Position: domain.Position{StartLine: 3}},
		{Identifier: "s4", RuleID: "InnerClassMayBeStatic", FilePath: "src/test/java/a/ATest.java", Position: domain.Position{StartLine: 20}},
	}
	output := tui.RenderBadSmells("abc1234def", smells, 3)
	assert.Contains(t, output, "Bad Smells")
	assert.Contains(t, output, "2 unique")
	assert.Contains(t, output, "3 reported")
	assert.Contains(t, output, "a/A.java")
	assert.Contains(t, output, "Unused Import")
	assert.Contains(t, output, "Inner Class May Be Static")
	assert.Contains(t, output, "import java.util.List;")
	assert.Contains(t, output, "L20")
}

func TestRenderBadSmells_Empty(t *testing.T) {
	output := tui.RenderBadSmells("abc1234def", nil, 0)
	assert.Contains(t, output, "No bad smells found")
}

func TestRenderRefactorings(t *testing.T) {
	output := tui.RenderRefactorings([]domain.Refactoring{{RuleID: domain.RuleID{ID: "UnnecessaryToStringCall"}}})
	assert.Contains(t, output, "Unnecessary To String Call")
	assert.Contains(t, output, "UnnecessaryToStringCall")
	assert.Contains(t, tui.RenderRefactorings(nil), "No refactorings available")
}

func TestRenderHistory_ShowsTrend(t *testing.T) {
	base := time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)
	output := tui.RenderHistory("spoon", []domain.CommitSnapshot{
		{Project: "spoon", CommitHash: "aaaaaaa1", FetchedAt: base, RawCount: 10, UniqueCount: 8},
		{Project: "spoon", CommitHash: "bbbbbbb2", FetchedAt: base.Add(24 * time.Hour), RawCount: 6, UniqueCount: 5},
		{Project: "spoon", CommitHash: "ccccccc3", FetchedAt: base.Add(48 * time.Hour), RawCount: 7, UniqueCount: 7},
	})
	assert.Contains(t, output, "Smell History")
	assert.Contains(t, output, "2026-01-02")
	assert.Contains(t, output, "↓3")
	assert.Contains(t, output, "↑2")
}

func TestRenderHistory_Empty(t *testing.T) {
	assert.Contains(t, tui.RenderHistory("spoon", nil), "No smell history found")
}
