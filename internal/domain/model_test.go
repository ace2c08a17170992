package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/smellview/smellview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOwnerRepoName(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"INRIA/spoon", "INRIA/spoon"},
		{"https://github.com/INRIA/spoon", "INRIA/spoon"},
		{"https://github.com/INRIA/spoon.git", "INRIA/spoon"},
		{"https://github.com/INRIA/spoon/", "INRIA/spoon"},
		{"spoon.git", "spoon"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.OwnerRepoName(tt.url), "url %q", tt.url)
	}
}

func TestCommit_TotalIssues(t *testing.T) {
	c := domain.Commit{AnalyzerStatuses: []domain.AnalyzerStatus{
		{AnalyzerName: "qodana", NumberOfIssues: 12},
		{AnalyzerName: "spoon", NumberOfIssues: 3},
	}}
	assert.Equal(t, 15, c.TotalIssues())
}

func TestAnalyzerStatus_Succeeded(t *testing.T) {
	assert.True(t, domain.AnalyzerStatus{Status: "SUCCESS"}.Succeeded())
	assert.True(t, domain.AnalyzerStatus{Status: "success"}.Succeeded())
	assert.False(t, domain.AnalyzerStatus{Status: "FAILURE"}.Succeeded())
}

func TestBadSmell_NullSnippetDecodesToNil(t *testing.T) {
	var smells []domain.BadSmell
	data := `[
		{"identifier":"1","ruleID":"R","snippet":null,"filePath":"A.java","position":{"startLine":4}},
		{"identifier":"2","ruleID":"R","snippet":"","filePath":"B.java","position":{"startLine":9}}
	]`
	require.NoError(t, json.Unmarshal([]byte(data), &smells))
	require.Len(t, smells, 2)
	assert.Nil(t, smells[0].Snippet)
	require.NotNil(t, smells[1].Snippet)
	assert.Equal(t, "", *smells[1].Snippet)
	assert.Equal(t, 9, smells[1].Position.StartLine)
}
