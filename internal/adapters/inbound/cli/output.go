package cli

import (
	"encoding/json"
	"fmt"
	"io"

	toon "github.com/toon-format/toon-go"

	"github.com/smellview/smellview/internal/application"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatTOON = "toon"
)

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

// writeSmellsTOON renders a smell result as a TOON document with a tabular
// smells section.
func writeSmellsTOON(w io.Writer, result *application.SmellsResult) error {
	rows := make([]toon.Object, len(result.Smells))
	for i, s := range result.Smells {
		snippet := ""
		if s.Snippet != nil {
			snippet = *s.Snippet
		}
		rows[i] = toon.NewObject(
			toon.Field{Key: "id", Value: s.Identifier},
			toon.Field{Key: "rule", Value: s.RuleID},
			toon.Field{Key: "file", Value: s.FilePath},
			toon.Field{Key: "line", Value: s.Position.StartLine},
			toon.Field{Key: "snippet", Value: snippet},
		)
	}

	doc := toon.NewObject(
		toon.Field{Key: "commit", Value: result.CommitHash},
		toon.Field{Key: "raw_count", Value: result.RawCount},
		toon.Field{Key: "unique_count", Value: len(result.Smells)},
		toon.Field{Key: "from_cache", Value: result.FromCache},
		toon.Field{Key: "smells", Value: rows},
	)
	out, err := toon.MarshalString(doc)
	if err != nil {
		return fmt.Errorf("toon marshal error: %w", err)
	}
	fmt.Fprintln(w, out)
	return nil
}
