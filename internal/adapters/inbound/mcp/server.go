package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/smellview/smellview/internal/application"
)

// Version is reported to MCP clients during initialization.
var Version = "dev"

// NewSmellviewMCPServer creates an MCP server with all smellview tools and
// resources registered on top of svc.
func NewSmellviewMCPServer(svc application.Services) *server.MCPServer {
	s := server.NewMCPServer(
		"smellview",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, svc)
	registerResources(s, svc)

	return s
}
