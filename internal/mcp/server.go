package mcp

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/circuitstrategies/circuitbot/internal/chat"
	"github.com/circuitstrategies/circuitbot/internal/services"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that lets agents query the assistant.
type Server struct {
	gateway  *chat.Gateway
	services *services.Registry
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server with the given dependencies.
func NewServer(gateway *chat.Gateway, reg *services.Registry) *Server {
	s := &Server{
		gateway:  gateway,
		services: reg,
	}

	s.mcp = server.NewMCPServer(
		"circuitbot",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(resolveMessageTool, s.handleResolveMessage)
	s.mcp.AddTool(listTopicsTool, s.handleListTopics)
	s.mcp.AddTool(getServiceTool, s.handleGetService)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
