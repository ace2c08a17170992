package testutil

// SampleSmells is a getBadSmellsForHash payload with one null snippet and one
// repeated snippet.
func SampleSmells() []map[string]any {
	return []map[string]any{
		smellJSON("s1", "UnusedImport", "import java.util.List;", "src/main/java/a/A.java", 3),
		smellJSON("s2", "FinalStaticMethod", "static final void run()", "src/main/java/a/B.java", 10),
		smellJSON("s3", "UnusedImport", "import java.util.List;", "src/main/java/a/C.java", 5),
		smellJSON("s4", "InnerClassMayBeStatic", nil, "src/test/java/a/ATest.java", 20),
	}
}

// SampleProjects is a getProjects payload.
func SampleProjects() []map[string]any {
	return []map[string]any{
		{
			"projectName":  "spoon",
			"projectUrl":   "https://github.com/INRIA/spoon",
			"commitHashes": []string{"abc1234def"},
			"commits":      []map[string]any{SampleCommit("abc1234def")},
		},
	}
}

// SampleCommit is one commit entry with two analyzer statuses.
func SampleCommit(hash string) map[string]any {
	return map[string]any{
		"commitHash": hash,
		"analyzerStatuses": []map[string]any{
			{"analyzerName": "qodana", "commitHash": hash, "localDateTime": "2026-01-02T10:00:00", "numberOfIssues": 12, "status": "SUCCESS"},
			{"analyzerName": "spoon", "commitHash": hash, "localDateTime": "2026-01-02T10:05:00", "numberOfIssues": 3, "status": "FAILURE"},
		},
	}
}

func smellJSON(id, rule string, snippet any, path string, line int) map[string]any {
	return map[string]any{
		"identifier":      id,
		"ruleID":          rule,
		"messageMarkdown": "Found `" + rule + "`",
		"snippet":         snippet,
		"filePath":        path,
		"position":        map[string]any{"startLine": line},
	}
}
