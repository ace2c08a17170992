package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/smellview/smellview/internal/application"
	"github.com/smellview/smellview/internal/domain"
)

// registerTools registers all smellview MCP tools on the given server.
func registerTools(s *server.MCPServer, svc application.Services) {
	// 1. smellview_projects
	s.AddTool(
		mcplib.NewTool("smellview_projects",
			mcplib.WithDescription("Lists the projects registered with the analysis backend and their analyzed commits"),
		),
		handleProjects(svc.Projects),
	)

	// 2. smellview_bad_smells
	s.AddTool(
		mcplib.NewTool("smellview_bad_smells",
			mcplib.WithDescription("Returns the bad smells detected for a commit, with duplicate snippets removed"),
			mcplib.WithString("hash",
				mcplib.Required(),
				mcplib.Description("Commit hash to fetch bad smells for"),
			),
			mcplib.WithString("rule", mcplib.Description("Comma-separated rule ids to keep")),
			mcplib.WithString("path", mcplib.Description("Glob matched against the smell file path")),
			mcplib.WithString("project", mcplib.Description("Project name recorded in smell history")),
		),
		handleBadSmells(svc.Smells),
	)

	// 3. smellview_refactorings
	s.AddTool(
		mcplib.NewTool("smellview_refactorings",
			mcplib.WithDescription("Lists the rules the backend can refactor automatically"),
		),
		handleRefactorings(svc.Refactors),
	)

	// 4. smellview_refactor
	s.AddTool(
		mcplib.NewTool("smellview_refactor",
			mcplib.WithDescription("Asks the backend to refactor the given bad smells and open a pull request"),
			mcplib.WithString("ids",
				mcplib.Required(),
				mcplib.Description("Comma-separated bad smell identifiers"),
			),
		),
		handleRefactor(svc.Refactors),
	)

	// 5. smellview_commits
	s.AddTool(
		mcplib.NewTool("smellview_commits",
			mcplib.WithDescription("Lists a project's GitHub commits with analyzer statuses"),
			mcplib.WithString("project",
				mcplib.Required(),
				mcplib.Description("Project name"),
			),
		),
		handleCommits(svc.Projects),
	)

	// 6. smellview_project_config
	s.AddTool(
		mcplib.NewTool("smellview_project_config",
			mcplib.WithDescription("Returns the backend analysis configuration of a project"),
			mcplib.WithString("url",
				mcplib.Required(),
				mcplib.Description("Project repository URL"),
			),
		),
		handleProjectConfig(svc.Projects),
	)
}

func handleProjects(projects *application.ProjectService) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		list, err := projects.ListProjects(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("listing projects failed: %v", err)), nil
		}
		return jsonResult(list)
	}
}

func handleBadSmells(smells *application.SmellService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		hash, err := request.RequireString("hash")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		filter := domain.SmellFilter{
			RuleIDs:  domain.SplitList(request.GetString("rule", "")),
			PathGlob: request.GetString("path", ""),
		}
		result, err := smells.SmellsForCommit(ctx, request.GetString("project", ""), hash, filter)
		if err != nil {
			return errorResult(fmt.Sprintf("fetching bad smells failed: %v", err)), nil
		}
		return jsonResult(result)
	}
}

func handleRefactorings(refactors *application.RefactorService) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		refs, err := refactors.AvailableRefactorings(ctx)
		if err != nil {
			return errorResult(fmt.Sprintf("listing refactorings failed: %v", err)), nil
		}
		return jsonResult(refs)
	}
}

func handleRefactor(refactors *application.RefactorService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		ids, err := request.RequireString("ids")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		status, err := refactors.Refactor(ctx, domain.SplitList(ids))
		if err != nil {
			return errorResult(fmt.Sprintf("refactor failed: %v", err)), nil
		}
		return textResult(status), nil
	}
}

func handleCommits(projects *application.ProjectService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		name, err := request.RequireString("project")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		commits, err := projects.Commits(ctx, name)
		if err != nil {
			return errorResult(fmt.Sprintf("listing commits failed: %v", err)), nil
		}
		return jsonResult(commits)
	}
}

func handleProjectConfig(projects *application.ProjectService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		url, err := request.RequireString("url")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		cfg, err := projects.Config(ctx, url)
		if err != nil {
			return errorResult(fmt.Sprintf("loading project config failed: %v", err)), nil
		}
		return jsonResult(cfg)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
