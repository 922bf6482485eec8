package mcp

import "github.com/mark3labs/mcp-go/mcp"

// resolveMessageTool defines the resolve_message MCP tool.
var resolveMessageTool = mcp.NewTool("resolve_message",
	mcp.WithDescription("Answer a visitor question exactly as the Circuit Strategies website chat assistant would."),
	mcp.WithString("message",
		mcp.Required(),
		mcp.Description("The visitor's message"),
	),
)

// listTopicsTool defines the list_topics MCP tool.
var listTopicsTool = mcp.NewTool("list_topics",
	mcp.WithDescription("List the topics the assistant answers, in matching order, with their trigger keywords."),
)

// getServiceTool defines the get_service MCP tool.
var getServiceTool = mcp.NewTool("get_service",
	mcp.WithDescription("Get the detailed description of a Circuit Strategies service."),
	mcp.WithString("service_id",
		mcp.Required(),
		mcp.Description("Service identifier, e.g. chatbots or ethical-ai"),
	),
	mcp.WithString("format",
		mcp.Description("Output format (default markdown)"),
		mcp.Enum("markdown", "html"),
	),
)
