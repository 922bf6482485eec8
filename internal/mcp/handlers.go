package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/samber/lo"

	"github.com/circuitstrategies/circuitbot/internal/catalog"
	"github.com/circuitstrategies/circuitbot/internal/chat"
	"github.com/circuitstrategies/circuitbot/internal/services"
)

// handleResolveMessage runs a message through the chat gateway.
func (s *Server) handleResolveMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	message, err := request.RequireString("message")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: message"), nil
	}

	out, err := s.gateway.Reply(ctx, chat.IncomingMessage{Channel: chat.ChannelMCP, Text: message})
	if err != nil {
		if errors.Is(err, chat.ErrEmptyMessage) {
			return mcp.NewToolResultError("message must not be blank"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("resolve failed: %v", err)), nil
	}

	return mcp.NewToolResultText(out.Text), nil
}

// handleListTopics lists catalog categories in matching order.
func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(formatTopics(s.gateway.Dispatcher().Catalog())), nil
}

// handleGetService returns a service description as markdown or HTML.
func (s *Server) handleGetService(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("service_id")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: service_id"), nil
	}

	svc, ok := s.services.Lookup(id)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf(
			"No service %q. Available services: %s",
			id, strings.Join(s.serviceIDs(), ", "),
		)), nil
	}

	if request.GetString("format", "markdown") == "html" {
		html, err := s.services.Render(id)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("render failed: %v", err)), nil
		}
		return mcp.NewToolResultText(html), nil
	}

	return mcp.NewToolResultText("# " + svc.Title + "\n\n" + svc.Markdown), nil
}

func (s *Server) serviceIDs() []string {
	return lo.Map(s.services.List(), func(svc services.Service, _ int) string { return svc.ID })
}

// formatTopics renders the catalog as a numbered markdown list.
func formatTopics(c *catalog.Catalog) string {
	var b strings.Builder
	b.WriteString("# Topics\n\n")
	i := 0
	c.Each(func(cat catalog.Category) bool {
		i++
		fmt.Fprintf(&b, "%d. **%s**: %s\n", i, cat.ID, strings.Join(cat.Keywords, ", "))
		return true
	})
	b.WriteString("\nGreetings, thanks and goodbyes get a short reply; anything else gets the default answer.\n")
	return b.String()
}
