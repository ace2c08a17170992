package graphql

// OperationKind is the GraphQL root type an operation runs against.
type OperationKind string

const (
	KindQuery    OperationKind = "query"
	KindMutation OperationKind = "mutation"
)

// Operation is a named GraphQL document together with the root field whose
// value the caller decodes.
type Operation struct {
	Name      string
	Kind      OperationKind
	RootField string
	Document  string
}

var GetProjects = Operation{
	Name:      "getProjects",
	Kind:      KindQuery,
	RootField: "getProjects",
	Document: `query getProjects {
  getProjects {
    projectName
    projectUrl
    commitHashes
    commits {
      analyzerStatuses {
        analyzerName
        commitHash
        localDateTime
        numberOfIssues
        status
      }
      commitHash
    }
  }
}`,
}

var GetAvailableRefactorings = Operation{
	Name:      "getAvailableRefactorings",
	Kind:      KindQuery,
	RootField: "availableRefactorings",
	Document: `query getAvailableRefactorings {
  availableRefactorings {
    ruleId {
      id
    }
  }
}`,
}

var GetBadSmellsForHash = Operation{
	Name:      "getBadSmellsForHash",
	Kind:      KindQuery,
	RootField: "byCommitHash",
	Document: `query getBadSmellsForHash($hash: String) {
  byCommitHash(commitHash: $hash) {
    identifier
    ruleID
    messageMarkdown
    snippet
    filePath
    position {
      startLine
    }
  }
}`,
}

var AddProject = Operation{
	Name:      "addProject",
	Kind:      KindMutation,
	RootField: "addProject",
	Document: `mutation addProject($projectName: String!, $projectUrl: String!) {
  addProject(projectName: $projectName, projectUrl: $projectUrl) {
    projectName
    projectUrl
  }
}`,
}

var Refactor = Operation{
	Name:      "refactor",
	Kind:      KindMutation,
	RootField: "refactor",
	Document: `mutation refactor($badSmellIdentifier: [String]) {
  refactor(badSmellIdentifier: $badSmellIdentifier)
}`,
}

var Login = Operation{
	Name:      "login",
	Kind:      KindQuery,
	RootField: "login",
	Document: `query login($notNeeded: String) {
  login(notNeeded: $notNeeded)
}`,
}

var GetProjectConfig = Operation{
	Name:      "getProjectConfig",
	Kind:      KindQuery,
	RootField: "getProjectConfig",
	Document: `query getProjectConfig($projectUrl: String!) {
  getProjectConfig(projectUrl: $projectUrl) {
    projectUrl
    sourceFolder
  }
}`,
}

var AddProjectConfig = Operation{
	Name:      "addProjectConfig",
	Kind:      KindMutation,
	RootField: "addProjectConfig",
	Document: `mutation addProjectConfig($projectConfig: ProjectConfig!) {
  addProjectConfig(projectConfig: $projectConfig) {
    projectUrl
    sourceFolder
  }
}`,
}

var GetGitHubCommitsForProject = Operation{
	Name:      "getGitHubCommitsForProject",
	Kind:      KindQuery,
	RootField: "getGitHubCommitsForProject",
	Document: `query getGitHubCommitsForProject($projectName: String!) {
  getGitHubCommitsForProject(projectName: $projectName) {
    analyzerStatuses {
      analyzerName
      commitHash
      localDateTime
      numberOfIssues
      status
    }
    commitHash
  }
}`,
}

// Operations lists every operation the client sends, in declaration order.
func Operations() []Operation {
	return []Operation{
		GetProjects,
		GetAvailableRefactorings,
		GetBadSmellsForHash,
		AddProject,
		Refactor,
		Login,
		GetProjectConfig,
		AddProjectConfig,
		GetGitHubCommitsForProject,
	}
}
