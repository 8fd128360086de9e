/*
mcpserver exposes a toolkit as a model-context-protocol server, over
either the streamable HTTP transport or stdio.
*/
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	// Packages
	"github.com/modelcontextprotocol/go-sdk/mcp"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	log "github.com/sirupsen/logrus"

	"github.com/fia-training/fia-mcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Server struct {
	name    string
	version string
	mcp     *mcp.Server
	toolkit *tool.Toolkit
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	mcpPath         = "/mcp"
	shutdownTimeout = 5 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a server with the given identity, registering every tool
// in the toolkit with its input schema.
func New(name, version string, toolkit *tool.Toolkit) (*Server, error) {
	self := &Server{
		name:    name,
		version: version,
		toolkit: toolkit,
		mcp: mcp.NewServer(&mcp.Implementation{
			Name:    name,
			Version: version,
		}, nil),
	}

	for _, t := range toolkit.Tools() {
		schema, err := t.Schema()
		if err != nil {
			return nil, err
		}
		self.mcp.AddTool(&mcp.Tool{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: schema,
		}, self.handler(t.Name()))
	}

	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Run serves the MCP protocol over the given transport until the
// context is done.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcp.Run(ctx, transport)
}

// RunStdio serves the MCP protocol on stdin/stdout until the context is done.
func (s *Server) RunStdio(ctx context.Context) error {
	return s.Run(ctx, &mcp.StdioTransport{})
}

// Handler returns the HTTP handler serving the service-info, health and
// MCP routes, for embedding into an existing server.
func (s *Server) Handler() http.Handler {
	return s.router()
}

// ListenAndServe serves the MCP protocol over streamable HTTP on the
// given address, alongside the service-info and health routes. It blocks
// until the context is done, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	server := &http.Server{
		Addr:    addr,
		Handler: s.router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", addr).Info("serving MCP over streamable HTTP")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// router returns the HTTP routes: service info, health and the MCP endpoint.
func (s *Server) router() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		_ = httpresponse.JSON(w, http.StatusOK, 0, map[string]string{
			"service": s.name,
			"status":  "running",
			"version": s.version,
		})
	})
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		_ = httpresponse.JSON(w, http.StatusOK, 0, map[string]string{
			"status":  "healthy",
			"service": s.name,
		})
	})
	mux.Handle(mcpPath, mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcp
	}, nil))
	return mux
}

// handler adapts one toolkit tool to the MCP tool handler signature. A
// tool error becomes an in-band error result, not a protocol failure.
func (s *Server) handler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result, err := s.toolkit.Run(ctx, name, req.Params.Arguments)
		if err != nil {
			log.WithError(err).WithField("tool", name).Debug("tool call failed")
			return &mcp.CallToolResult{
				IsError: true,
				Content: []mcp.Content{&mcp.TextContent{Text: err.Error()}},
			}, nil
		}

		data, err := json.Marshal(result)
		if err != nil {
			return nil, err
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(data)}},
		}, nil
	}
}
