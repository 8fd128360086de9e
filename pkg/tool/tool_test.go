package tool_test

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	assert "github.com/stretchr/testify/assert"

	tool "github.com/fia-training/fia-mcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TEST TOOL

type echo struct {
	name string
}

var _ tool.Tool = (*echo)(nil)

func (e *echo) Name() string {
	return e.name
}

func (e *echo) Description() string {
	return "Echoes the message back to the caller"
}

func (e *echo) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[struct {
		Message string `json:"message"`
	}](nil)
}

func (e *echo) Run(_ context.Context, input json.RawMessage) (any, error) {
	var req struct {
		Message string `json:"message"`
	}
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, err
		}
	}
	return req.Message, nil
}

///////////////////////////////////////////////////////////////////////////////
// TESTS

func Test_toolkit_001(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(&echo{name: "echo"})
	assert.NoError(err)
	assert.NotNil(toolkit)
	assert.Len(toolkit.Tools(), 1)
	assert.NotNil(toolkit.Lookup("echo"))
	assert.Nil(toolkit.Lookup("missing"))
}

func Test_toolkit_002(t *testing.T) {
	assert := assert.New(t)

	// Invalid names are rejected
	_, err := tool.NewToolkit(&echo{name: "not a name"})
	assert.Error(err)
	_, err = tool.NewToolkit(&echo{name: ""})
	assert.Error(err)

	// Duplicate names are rejected
	_, err = tool.NewToolkit(&echo{name: "echo"}, &echo{name: "echo"})
	assert.Error(err)
}

func Test_toolkit_003(t *testing.T) {
	assert := assert.New(t)

	toolkit, err := tool.NewToolkit(&echo{name: "echo"})
	assert.NoError(err)

	// Unknown tool
	_, err = toolkit.Run(context.TODO(), "missing", nil)
	assert.Error(err)

	// Nil input runs with defaults
	result, err := toolkit.Run(context.TODO(), "echo", nil)
	assert.NoError(err)
	assert.Equal("", result)

	// Raw JSON input
	result, err = toolkit.Run(context.TODO(), "echo", json.RawMessage(`{"message": "hello"}`))
	assert.NoError(err)
	assert.Equal("hello", result)

	// Non-JSON input is marshalled before dispatch
	result, err = toolkit.Run(context.TODO(), "echo", map[string]any{"message": "hello"})
	assert.NoError(err)
	assert.Equal("hello", result)

	// Input which does not match the schema is rejected
	_, err = toolkit.Run(context.TODO(), "echo", json.RawMessage(`{"message": 42}`))
	assert.Error(err)
	_, err = toolkit.Run(context.TODO(), "echo", json.RawMessage(`"not an object"`))
	assert.Error(err)
}
