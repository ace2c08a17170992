package domain

import (
	"strings"
	"time"
)

// Project is a repository registered with the analysis backend.
type Project struct {
	ProjectName  string   `json:"projectName"`
	ProjectURL   string   `json:"projectUrl"`
	CommitHashes []string `json:"commitHashes"`
	Commits      []Commit `json:"commits"`
}

// OwnerRepo returns the "owner/repo" form of the project URL.
func (p Project) OwnerRepo() string { return OwnerRepoName(p.ProjectURL) }

// Commit is one analyzed commit of a project.
type Commit struct {
	CommitHash       string           `json:"commitHash"`
	AnalyzerStatuses []AnalyzerStatus `json:"analyzerStatuses"`
}

func (c Commit) TotalIssues() int {
	total := 0
	for _, s := range c.AnalyzerStatuses {
		total += s.NumberOfIssues
	}
	return total
}

// AnalyzerStatus reports one analyzer's run against one commit.
type AnalyzerStatus struct {
	AnalyzerName   string `json:"analyzerName"`
	CommitHash     string `json:"commitHash"`
	LocalDateTime  string `json:"localDateTime"`
	NumberOfIssues int    `json:"numberOfIssues"`
	Status         string `json:"status"`
}

const StatusSuccess = "SUCCESS"

func (s AnalyzerStatus) Succeeded() bool {
	return strings.EqualFold(s.Status, StatusSuccess)
}

// BadSmell is a single code-quality issue detected by an analyzer.
// Snippet is nil when the analyzer could not capture source text.
type BadSmell struct {
	Identifier      string   `json:"identifier"`
	RuleID          string   `json:"ruleID"`
	MessageMarkdown string   `json:"messageMarkdown"`
	Snippet         *string  `json:"snippet"`
	FilePath        string   `json:"filePath"`
	Position        Position `json:"position"`
}

type Position struct {
	StartLine int `json:"startLine"`
}

// Refactoring is a rule the backend knows how to fix automatically.
type Refactoring struct {
	RuleID RuleID `json:"ruleId"`
}

type RuleID struct {
	ID string `json:"id"`
}

// ProjectConfig is the backend's per-project analysis configuration.
type ProjectConfig struct {
	ProjectURL   string `json:"projectUrl"`
	SourceFolder string `json:"sourceFolder"`
}

// DefaultSourceFolder is used when a project config leaves the source folder empty.
const DefaultSourceFolder = "."

// CommitSnapshot is a locally recorded summary of one bad-smell fetch.
type CommitSnapshot struct {
	Project     string         `json:"project"`
	CommitHash  string         `json:"commit_hash"`
	FetchedAt   time.Time      `json:"fetched_at"`
	RawCount    int            `json:"raw_count"`
	UniqueCount int            `json:"unique_count"`
	RuleCounts  map[string]int `json:"rule_counts,omitempty"`
}

// OwnerRepoName extracts "owner/repo" from a repository URL. A bare
// "owner/repo" string is returned as is.
func OwnerRepoName(url string) string {
	var parts []string
	for _, p := range strings.Split(url, "/") {
		if p != "" {
			parts = append(parts, p)
		}
	}
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return strings.TrimSuffix(parts[0], ".git")
	case 2:
		return parts[0] + "/" + parts[1]
	}
	return parts[len(parts)-2] + "/" + strings.TrimSuffix(parts[len(parts)-1], ".git")
}

// StringPtr returns a pointer to s.
func StringPtr(s string) *string { return &s }
