package application

// Services bundles the services shared by the CLI, the dashboard API and
// the MCP server.
type Services struct {
	Projects  *ProjectService
	Smells    *SmellService
	Refactors *RefactorService
}
