// Package mcpserver exposes the tool registry over the Model Context Protocol.
package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/soochol/awsblogs/internal/tools"
)

// Name is the server name reported during MCP initialization.
const Name = "awslabs.aws-blogs-mcp-server"

// Instructions is the tool-selection guide sent to MCP clients.
const Instructions = `# AWS Blogs MCP Server

Search, browse and read posts from the official AWS blogs (https://aws.amazon.com/blogs/).

## Tool selection
- list_blog_categories: discover category ids before filtering by category.
- search_blog_posts: find posts about a topic; use AWS service names (EC2, Lambda, S3) as keywords.
- get_recent_posts: newest posts across all categories or within one category.
- get_rss_feed: raw feed entries of a single category.
- read_blog_post: full markdown content of one post URL.

## Reading long posts
read_blog_post returns at most max_length characters. When the output ends with
"[Content truncated. Use start_index=N to continue reading.]", call it again with
start_index=N to read the next part.

## Notes
- Search scans the latest entries of each category feed, not the full archive.
- Only URLs under https://aws.amazon.com/blogs/ can be read.`

// Server wraps an mcp-go server backed by a tool registry.
type Server struct {
	mcp      *server.MCPServer
	registry *tools.Registry
	log      *zap.Logger
}

// New builds an MCP server with every tool in registry registered.
func New(registry *tools.Registry, version string, log *zap.Logger) (*Server, error) {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		mcp: server.NewMCPServer(
			Name,
			version,
			server.WithToolCapabilities(false),
			server.WithInstructions(Instructions),
			server.WithRecovery(),
		),
		registry: registry,
		log:      log,
	}

	for _, t := range registry.List() {
		schema, err := json.Marshal(t.InputSchema())
		if err != nil {
			return nil, fmt.Errorf("marshal schema for %s: %w", t.Name(), err)
		}
		s.mcp.AddTool(mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema), s.handler(t.Name()))
	}
	return s, nil
}

// MCP returns the underlying mcp-go server.
func (s *Server) MCP() *server.MCPServer { return s.mcp }

// ServeStdio serves MCP over stdin/stdout until the input closes or the
// process receives SIGINT/SIGTERM.
func (s *Server) ServeStdio() error {
	s.log.Info("serving MCP over stdio", zap.Int("tools", len(s.registry.List())))
	return server.ServeStdio(s.mcp)
}

// HTTPHandler returns the streamable HTTP transport for mounting on a router.
func (s *Server) HTTPHandler() http.Handler {
	return server.NewStreamableHTTPServer(s.mcp)
}

// handler adapts a registry tool to an mcp-go tool handler. Tool errors are
// returned as error results so the session stays alive.
func (s *Server) handler(name string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.registry.Execute(ctx, name, req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		text, err := renderText(result)
		if err != nil {
			s.log.Error("render tool result", zap.String("tool", name), zap.Error(err))
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(text), nil
	}
}

// renderText prefers a result's own text rendering and falls back to
// indented JSON.
func renderText(result any) (string, error) {
	if tr, ok := result.(tools.TextResult); ok {
		return tr.Text(), nil
	}
	b, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal result: %w", err)
	}
	return string(b), nil
}
