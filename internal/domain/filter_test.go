package domain_test

import (
	"testing"

	"github.com/smellview/smellview/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smell(id string, snippet *string) domain.BadSmell {
	return domain.BadSmell{Identifier: id, RuleID: "UnusedImport", Snippet: snippet}
}

func snippets(smells []domain.BadSmell) []string {
	out := make([]string, 0, len(smells))
	for _, s := range smells {
		out = append(out, *s.Snippet)
	}
	return out
}

func ids(smells []domain.BadSmell) []string {
	out := make([]string, 0, len(smells))
	for _, s := range smells {
		out = append(out, s.Identifier)
	}
	return out
}

func TestFilterDuplicates_Identity(t *testing.T) {
	projects := []domain.Project{
		{ProjectName: "a", ProjectURL: "https://github.com/o/a"},
		{ProjectName: "a", ProjectURL: "https://github.com/o/a"},
	}
	assert.Equal(t, projects, domain.FilterDuplicates(projects))
	assert.Empty(t, domain.FilterDuplicates([]domain.Project{}))
	assert.Nil(t, domain.FilterDuplicates(nil))
}

func TestFilterDuplicateBadSmells_NilInput(t *testing.T) {
	out := domain.FilterDuplicateBadSmells(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilterDuplicateBadSmells_EmptyInput(t *testing.T) {
	out := domain.FilterDuplicateBadSmells([]domain.BadSmell{})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilterDuplicateBadSmells_KeepsFirstOccurrence(t *testing.T) {
	in := []domain.BadSmell{
		smell("1", domain.StringPtr("a")),
		smell("2", domain.StringPtr("b")),
		smell("3", domain.StringPtr("a")),
	}
	out := domain.FilterDuplicateBadSmells(in)
	assert.Equal(t, []string{"a", "b"}, snippets(out))
	assert.Equal(t, []string{"1", "2"}, ids(out))
}

func TestFilterDuplicateBadSmells_DropsNilSnippets(t *testing.T) {
	in := []domain.BadSmell{
		smell("1", nil),
		smell("2", domain.StringPtr("x")),
	}
	out := domain.FilterDuplicateBadSmells(in)
	assert.Equal(t, []string{"2"}, ids(out))
}

func TestFilterDuplicateBadSmells_AllNil(t *testing.T) {
	out := domain.FilterDuplicateBadSmells([]domain.BadSmell{smell("1", nil), smell("2", nil)})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestFilterDuplicateBadSmells_SingleElement(t *testing.T) {
	in := []domain.BadSmell{smell("1", domain.StringPtr("a"))}
	assert.Equal(t, in, domain.FilterDuplicateBadSmells(in))
}

func TestFilterDuplicateBadSmells_NoDuplicatesUnchanged(t *testing.T) {
	in := []domain.BadSmell{
		smell("1", domain.StringPtr("a")),
		smell("2", nil),
		smell("3", domain.StringPtr("b")),
		smell("4", domain.StringPtr("c")),
	}
	out := domain.FilterDuplicateBadSmells(in)
	assert.Equal(t, []string{"1", "3", "4"}, ids(out))
}

func TestFilterDuplicateBadSmells_EmptySnippetIsAValue(t *testing.T) {
	in := []domain.BadSmell{
		smell("1", domain.StringPtr("")),
		smell("2", domain.StringPtr("")),
		smell("3", nil),
	}
	out := domain.FilterDuplicateBadSmells(in)
	assert.Equal(t, []string{"1"}, ids(out))
}

func TestFilterDuplicateBadSmells_Properties(t *testing.T) {
	inputs := [][]domain.BadSmell{
		nil,
		{},
		{smell("1", domain.StringPtr("a")), smell("2", domain.StringPtr("a")), smell("3", domain.StringPtr("a"))},
		{smell("1", nil), smell("2", domain.StringPtr("b")), smell("3", domain.StringPtr("a")), smell("4", domain.StringPtr("b")), smell("5", nil)},
		{smell("1", domain.StringPtr("x")), smell("2", domain.StringPtr("y")), smell("3", domain.StringPtr("z"))},
	}

	for _, in := range inputs {
		out := domain.FilterDuplicateBadSmells(in)

		seen := map[string]bool{}
		for _, s := range out {
			require.NotNil(t, s.Snippet)
			assert.False(t, seen[*s.Snippet], "duplicate snippet %q", *s.Snippet)
			seen[*s.Snippet] = true
		}

		// survivors keep input order
		pos := map[string]int{}
		for i, s := range in {
			pos[s.Identifier] = i
		}
		for i := 1; i < len(out); i++ {
			assert.Less(t, pos[out[i-1].Identifier], pos[out[i].Identifier])
		}

		assert.Equal(t, out, domain.FilterDuplicateBadSmells(out), "idempotent")
	}
}

func TestFilterBadSmells_EmptyFilterIsIdentity(t *testing.T) {
	in := []domain.BadSmell{smell("1", nil), smell("2", domain.StringPtr("a"))}
	out, err := domain.FilterBadSmells(in, domain.SmellFilter{})
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestFilterBadSmells_ByRuleAndPath(t *testing.T) {
	in := []domain.BadSmell{
		{Identifier: "1", RuleID: "UnusedImport", FilePath: "src/main/java/a/A.java"},
		{Identifier: "2", RuleID: "FinalStaticMethod", FilePath: "src/main/java/a/B.java"},
		{Identifier: "3", RuleID: "UnusedImport", FilePath: "src/test/java/a/ATest.java"},
	}

	out, err := domain.FilterBadSmells(in, domain.SmellFilter{RuleIDs: []string{"UnusedImport"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "3"}, ids(out))

	out, err = domain.FilterBadSmells(in, domain.SmellFilter{PathGlob: "src/main/**"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, ids(out))

	out, err = domain.FilterBadSmells(in, domain.SmellFilter{
		RuleIDs:  []string{"UnusedImport"},
		PathGlob: "src/main/**",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"1"}, ids(out))
}

func TestFilterBadSmells_InvalidGlob(t *testing.T) {
	_, err := domain.FilterBadSmells(nil, domain.SmellFilter{PathGlob: "src/[a"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCountByRule(t *testing.T) {
	counts := domain.CountByRule([]domain.BadSmell{
		{RuleID: "A"}, {RuleID: "B"}, {RuleID: "A"},
	})
	assert.Equal(t, map[string]int{"A": 2, "B": 1}, counts)
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, domain.SplitList(" a, ,b ,"))
	assert.Nil(t, domain.SplitList(""))
}
