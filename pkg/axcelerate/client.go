/*
axcelerate implements an API client for the aXcelerate
training-management REST API
https://app.axcelerate.com/apidocs/api
*/
package axcelerate

import (
	"time"

	// Packages
	"github.com/mutablelogic/go-client"
	"go.opentelemetry.io/otel/trace"

	fiamcp "github.com/fia-training/fia-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	tracer trace.Tracer
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	// Training areas used to bucket courses on the remote side. The
	// courses listing is always pinned to the FIA catalogue, and the
	// webinar listing to the microlearning catalogue.
	trainingAreaCourses       = "FIA Courses"
	trainingAreaMicrolearning = "FIA Microlearning"
)

const (
	// Bound on each outbound call so a hung remote cannot block a
	// tool invocation indefinitely. Override with client.OptTimeout.
	defaultTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The base URL and both auth tokens are required;
// missing configuration is rejected here rather than on first call.
func New(endPoint, wsToken, apiToken string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing configuration
	if endPoint == "" {
		return nil, fiamcp.ErrBadParameter.With("missing endpoint")
	}
	if wsToken == "" {
		return nil, fiamcp.ErrBadParameter.With("missing wstoken")
	}
	if apiToken == "" {
		return nil, fiamcp.ErrBadParameter.With("missing apitoken")
	}

	// Create client with auth headers attached to every request
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptHeader("wstoken", wsToken),
		client.OptHeader("apitoken", apiToken),
		client.OptTimeout(defaultTimeout),
	}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// WithTracer sets the tracer used to create a span for each operation,
// and returns the client. A nil tracer disables spans.
func (c *Client) WithTracer(tracer trace.Tracer) *Client {
	c.tracer = tracer
	return c
}
