package mcp

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/circuitstrategies/circuitbot/internal/catalog"
	"github.com/circuitstrategies/circuitbot/internal/chat"
	"github.com/circuitstrategies/circuitbot/internal/dispatcher"
	"github.com/circuitstrategies/circuitbot/internal/services"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	reg, err := services.LoadBuiltin()
	if err != nil {
		t.Fatalf("LoadBuiltin: %v", err)
	}
	gw := chat.NewGateway(dispatcher.New(catalog.MustLoad()), nil, 0)
	return NewServer(gw, reg)
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) == 0 {
		t.Fatal("empty result content")
	}
	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Fatalf("expected TextContent, got %T", result.Content[0])
	}
	return text.Text
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		name     string
		tool     mcp.Tool
		wantName string
	}{
		{"resolve_message", resolveMessageTool, "resolve_message"},
		{"list_topics", listTopicsTool, "list_topics"},
		{"get_service", getServiceTool, "get_service"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.tool.Name != tt.wantName {
				t.Errorf("tool name = %q, want %q", tt.tool.Name, tt.wantName)
			}
			if tt.tool.Description == "" {
				t.Error("tool description should not be empty")
			}
		})
	}
}

func TestNewServer(t *testing.T) {
	srv := newTestServer(t)
	if srv.mcp == nil {
		t.Fatal("MCP server not initialized")
	}
	if srv.services.Len() != 8 {
		t.Errorf("expected 8 services, got %d", srv.services.Len())
	}
}

func TestHandleResolveMessage(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()
	d := srv.gateway.Dispatcher()

	t.Run("category", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"message": "Do you handle GDPR?"}

		result, err := srv.handleResolveMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if got := resultText(t, result); got != d.Resolve("Do you handle GDPR?") {
			t.Errorf("unexpected response: %q", got)
		}
	})

	t.Run("default", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"message": "xyz"}

		result, err := srv.handleResolveMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := resultText(t, result); got != dispatcher.DefaultResponse {
			t.Errorf("expected default response, got %q", got)
		}
	})

	t.Run("missing message", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleResolveMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing message")
		}
	})

	t.Run("blank message", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"message": "   "}

		result, err := srv.handleResolveMessage(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for blank message")
		}
	})
}

func TestHandleListTopics(t *testing.T) {
	srv := newTestServer(t)

	result, err := srv.handleListTopics(context.Background(), mcp.CallToolRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	text := resultText(t, result)

	if !strings.Contains(text, "1. **services**") {
		t.Errorf("expected services first, got:\n%s", text)
	}
	if !strings.Contains(text, "12. **business-value**") {
		t.Errorf("expected business-value last, got:\n%s", text)
	}
	if strings.Index(text, "**pricing**") > strings.Index(text, "**contact**") {
		t.Error("topics are not in catalog order")
	}
}

func TestHandleGetService(t *testing.T) {
	srv := newTestServer(t)
	ctx := context.Background()

	t.Run("markdown", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"service_id": "voice-agents"}

		result, err := srv.handleGetService(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.IsError {
			t.Fatalf("unexpected tool error: %v", result.Content)
		}
		if text := resultText(t, result); !strings.HasPrefix(text, "# ") {
			t.Errorf("expected markdown heading, got %q", text[:min(len(text), 40)])
		}
	})

	t.Run("html", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"service_id": "chatbots", "format": "html"}

		result, err := srv.handleGetService(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if text := resultText(t, result); !strings.Contains(text, "<table>") {
			t.Error("expected rendered HTML table")
		}
	})

	t.Run("unknown service", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{"service_id": "time-travel"}

		result, err := srv.handleGetService(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Fatal("expected error for unknown service")
		}
		if !strings.Contains(resultText(t, result), "chatbots") {
			t.Error("error should list available services")
		}
	})

	t.Run("missing id", func(t *testing.T) {
		req := mcp.CallToolRequest{}
		req.Params.Arguments = map[string]any{}

		result, err := srv.handleGetService(ctx, req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.IsError {
			t.Error("expected error for missing service_id")
		}
	})
}
