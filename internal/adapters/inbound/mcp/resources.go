package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/smellview/smellview/internal/application"
	"github.com/smellview/smellview/internal/domain"
)

const (
	projectsURI       = "smellview://projects"
	smellsURIPrefix   = "smellview://smells/"
	smellsURITemplate = smellsURIPrefix + "{hash}"
)

// registerResources registers all smellview MCP resources on the given server.
func registerResources(s *server.MCPServer, svc application.Services) {
	// 1. smellview://projects - registered projects
	s.AddResource(
		mcplib.NewResource(
			projectsURI,
			"Projects",
			mcplib.WithResourceDescription("Projects registered with the analysis backend"),
			mcplib.WithMIMEType("application/json"),
		),
		handleProjectsResource(svc.Projects),
	)

	// 2. smellview://smells/{hash} - deduplicated smells of one commit
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			smellsURITemplate,
			"Bad Smells",
			mcplib.WithTemplateDescription("Deduplicated bad smells detected for a commit"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleSmellsResource(svc.Smells),
	)
}

func handleProjectsResource(projects *application.ProjectService) server.ResourceHandlerFunc {
	return func(ctx context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		list, err := projects.ListProjects(ctx)
		if err != nil {
			return nil, fmt.Errorf("listing projects failed: %w", err)
		}
		return jsonContents(projectsURI, list)
	}
}

func handleSmellsResource(smells *application.SmellService) server.ResourceTemplateHandlerFunc {
	return func(ctx context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		hash := strings.TrimPrefix(request.Params.URI, smellsURIPrefix)
		if hash == "" || hash == request.Params.URI {
			return nil, fmt.Errorf("%w: missing commit hash in %s", domain.ErrInvalidInput, request.Params.URI)
		}

		result, err := smells.SmellsForCommit(ctx, "", hash, domain.SmellFilter{})
		if err != nil {
			return nil, fmt.Errorf("fetching bad smells failed: %w", err)
		}
		return jsonContents(request.Params.URI, result)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
