package mcpserver_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	"github.com/modelcontextprotocol/go-sdk/mcp"
	assert "github.com/stretchr/testify/assert"

	axcelerate "github.com/fia-training/fia-mcp/pkg/axcelerate"
	mcpserver "github.com/fia-training/fia-mcp/pkg/mcpserver"
	tool "github.com/fia-training/fia-mcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TEST SET-UP

// newServer builds a server whose tools point at a stub upstream API.
func newServer(t *testing.T, body string) *mcpserver.Server {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	tools, err := axcelerate.NewTools(upstream.URL, "ws", "api")
	if err != nil {
		t.Fatal(err)
	}
	toolkit, err := tool.NewToolkit(tools...)
	if err != nil {
		t.Fatal(err)
	}
	server, err := mcpserver.New("test-service", "1.0.0", toolkit)
	if err != nil {
		t.Fatal(err)
	}
	return server
}

// connect runs the server over an in-memory transport and returns a
// connected client session.
func connect(t *testing.T, server *mcpserver.Server) *mcp.ClientSession {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	go func() {
		_ = server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: ROUTES

func Test_routes_001(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, `[]`)
	web := httptest.NewServer(server.Handler())
	defer web.Close()

	// Service info on the root
	resp, err := http.Get(web.URL + "/")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var info map[string]string
	assert.NoError(json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal("test-service", info["service"])
	assert.Equal("running", info["status"])
	assert.Equal("1.0.0", info["version"])
}

func Test_routes_002(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, `[]`)
	web := httptest.NewServer(server.Handler())
	defer web.Close()

	resp, err := http.Get(web.URL + "/health")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusOK, resp.StatusCode)

	var health map[string]string
	assert.NoError(json.NewDecoder(resp.Body).Decode(&health))
	assert.Equal("healthy", health["status"])
	assert.Equal("test-service", health["service"])
}

func Test_routes_003(t *testing.T) {
	assert := assert.New(t)
	server := newServer(t, `[]`)
	web := httptest.NewServer(server.Handler())
	defer web.Close()

	// The root route matches exactly
	resp, err := http.Get(web.URL + "/nonexistent")
	assert.NoError(err)
	defer resp.Body.Close()
	assert.Equal(http.StatusNotFound, resp.StatusCode)
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: PROTOCOL

func Test_protocol_001(t *testing.T) {
	assert := assert.New(t)
	session := connect(t, newServer(t, `[]`))

	result, err := session.ListTools(context.Background(), nil)
	assert.NoError(err)
	assert.Len(result.Tools, 7)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(tool.Description)
		assert.NotNil(tool.InputSchema)
	}
	assert.Contains(names, "search_user")
	assert.Contains(names, "get_courses")
	assert.Contains(names, "get_cohorts")
	assert.Contains(names, "get_recorded_webinars")
	assert.Contains(names, "search_cohorts")
	assert.Contains(names, "get_student_enrolments")
	assert.Contains(names, "get_course_enrolments")
}

func Test_protocol_002(t *testing.T) {
	assert := assert.New(t)
	session := connect(t, newServer(t, `[{"CONTACTID": 1, "GIVENNAME": "Mario", "SURNAME": "Garbo"}]`))

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "search_user",
		Arguments: map[string]any{"surname": "Garbo"},
	})
	assert.NoError(err)
	assert.False(result.IsError)
	assert.Len(result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	assert.True(ok)

	var contacts []map[string]any
	assert.NoError(json.Unmarshal([]byte(text.Text), &contacts))
	assert.Len(contacts, 1)
	assert.Equal("Garbo", contacts[0]["surname"])
}

func Test_protocol_003(t *testing.T) {
	assert := assert.New(t)
	session := connect(t, newServer(t, `[]`))

	// A tool error is reported in-band, not as a protocol failure
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "get_student_enrolments",
		Arguments: map[string]any{},
	})
	assert.NoError(err)
	assert.True(result.IsError)
	assert.Len(result.Content, 1)

	text, ok := result.Content[0].(*mcp.TextContent)
	assert.True(ok)
	assert.Contains(text.Text, "contactID")
}
