package axcelerate

import (
	"context"
	"encoding/json"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	"github.com/mutablelogic/go-client"

	fiamcp "github.com/fia-training/fia-mcp"
	"github.com/fia-training/fia-mcp/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL TYPES

type searchUser struct{ client *Client }
type getCourses struct{ client *Client }
type getCohorts struct{ client *Client }
type getRecordedWebinars struct{ client *Client }
type searchCohorts struct{ client *Client }
type getStudentEnrolments struct{ client *Client }
type getCourseEnrolments struct{ client *Client }

var _ tool.Tool = (*searchUser)(nil)
var _ tool.Tool = (*getCourses)(nil)
var _ tool.Tool = (*getCohorts)(nil)
var _ tool.Tool = (*getRecordedWebinars)(nil)
var _ tool.Tool = (*searchCohorts)(nil)
var _ tool.Tool = (*getStudentEnrolments)(nil)
var _ tool.Tool = (*getCourseEnrolments)(nil)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// GetCohortsRequest selects the course to list instances for.
type GetCohortsRequest struct {
	CourseID int    `json:"course_id" jsonschema:"The ID of the course to retrieve instances for."`
	Type     string `json:"type" jsonschema:"The type of the course instance: 'w' for workshop, 'p' for accredited program, 'el' for e-learning."`
}

// GetRecordedWebinarsRequest takes no parameters.
type GetRecordedWebinarsRequest struct{}

// GetStudentEnrolmentsRequest selects the learner.
type GetStudentEnrolmentsRequest struct {
	ContactID int `json:"contactID" jsonschema:"ID of the student or user."`
}

// GetCourseEnrolmentsRequest selects the course instance.
type GetCourseEnrolmentsRequest struct {
	InstanceID int `json:"instanceID" jsonschema:"ID of the course instance."`
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTools returns aXcelerate tools for use with LLM agents.
func NewTools(endPoint, wsToken, apiToken string, opts ...client.ClientOpt) ([]tool.Tool, error) {
	c, err := New(endPoint, wsToken, apiToken, opts...)
	if err != nil {
		return nil, err
	}
	return Tools(c), nil
}

// Tools returns one tool per API operation, bound to the given client.
func Tools(c *Client) []tool.Tool {
	return []tool.Tool{
		&searchUser{client: c},
		&getCourses{client: c},
		&getCohorts{client: c},
		&getRecordedWebinars{client: c},
		&searchCohorts{client: c},
		&getStudentEnrolments{client: c},
		&getCourseEnrolments{client: c},
	}
}

///////////////////////////////////////////////////////////////////////////////
// search_user

func (*searchUser) Name() string { return "search_user" }

func (*searchUser) Description() string {
	return "Search for users, students and trainers by free text, name, email address, " +
		"contact role or contact ID. Returns normalized contact records."
}

func (*searchUser) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[SearchUsersRequest](nil)
}

func (t *searchUser) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SearchUsersRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fiamcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return t.client.SearchUsers(ctx, &req), nil
}

///////////////////////////////////////////////////////////////////////////////
// get_courses

func (*getCourses) Name() string { return "get_courses" }

func (*getCourses) Description() string {
	return "Retrieve a list of courses, filtered by ID, search term, type " +
		"('w' workshop, 'p' accredited program, 'el' e-learning), paging, sorting, " +
		"and current, public or active flags."
}

func (*getCourses) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[ListCoursesRequest](nil)
}

func (t *getCourses) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req ListCoursesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fiamcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	return t.client.ListCourses(ctx, &req), nil
}

///////////////////////////////////////////////////////////////////////////////
// get_cohorts

func (*getCohorts) Name() string { return "get_cohorts" }

func (*getCohorts) Description() string {
	return "Retrieve the cohorts (scheduled instances) of a specific course, " +
		"each with its own dates, location and roster."
}

func (*getCohorts) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetCohortsRequest](nil)
}

func (t *getCohorts) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetCohortsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fiamcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.CourseID == 0 {
		return nil, fiamcp.ErrBadParameter.With("course_id is required")
	}
	if req.Type == "" {
		return nil, fiamcp.ErrBadParameter.With("type is required")
	}
	return t.client.CourseInstances(ctx, req.CourseID, req.Type), nil
}

///////////////////////////////////////////////////////////////////////////////
// get_recorded_webinars

func (*getRecordedWebinars) Name() string { return "get_recorded_webinars" }

func (*getRecordedWebinars) Description() string {
	return "Retrieve the recorded webinars with CPD points, used to help students " +
		"keep track of their learning journey. Recommend relevant courses."
}

func (*getRecordedWebinars) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetRecordedWebinarsRequest](nil)
}

func (t *getRecordedWebinars) Run(ctx context.Context, input json.RawMessage) (any, error) {
	return t.client.RecordedWebinars(ctx), nil
}

///////////////////////////////////////////////////////////////////////////////
// search_cohorts

func (*searchCohorts) Name() string { return "search_cohorts" }

func (*searchCohorts) Description() string {
	return "Search course instances by activity or instance ID, type, training category, " +
		"location, state, code, name, free text, enrolment-open flag, start/finish date " +
		"ranges, last-updated range, paging, sorting, and public, active or status filters."
}

func (*searchCohorts) Schema() (*jsonschema.Schema, error) {
	schema, err := jsonschema.For[SearchCoursesRequest](nil)
	if err != nil {
		return nil, err
	}

	// Constrain the status filter to the workshop statuses
	if status, ok := schema.Properties["status"]; ok && status != nil {
		for _, v := range statusValues {
			status.Enum = append(status.Enum, v)
		}
	}
	return schema, nil
}

func (t *searchCohorts) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req SearchCoursesRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fiamcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Reject bad date bounds or status here so the caller sees the
	// reason, rather than the client's empty-result fallback
	if _, err := req.Values(); err != nil {
		return nil, err
	}
	return t.client.SearchCourseInstances(ctx, &req), nil
}

///////////////////////////////////////////////////////////////////////////////
// get_student_enrolments

func (*getStudentEnrolments) Name() string { return "get_student_enrolments" }

func (*getStudentEnrolments) Description() string {
	return "Get all enrolments for a specific student, with an enrolled flag and the " +
		"list of course enrolments."
}

func (*getStudentEnrolments) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetStudentEnrolmentsRequest](nil)
}

func (t *getStudentEnrolments) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetStudentEnrolmentsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fiamcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.ContactID == 0 {
		return nil, fiamcp.ErrBadParameter.With("contactID is required")
	}
	return t.client.StudentEnrolments(ctx, req.ContactID), nil
}

///////////////////////////////////////////////////////////////////////////////
// get_course_enrolments

func (*getCourseEnrolments) Name() string { return "get_course_enrolments" }

func (*getCourseEnrolments) Description() string {
	return "Get all enrolments for a specific course instance, as a simplified " +
		"list of enrolled students."
}

func (*getCourseEnrolments) Schema() (*jsonschema.Schema, error) {
	return jsonschema.For[GetCourseEnrolmentsRequest](nil)
}

func (t *getCourseEnrolments) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req GetCourseEnrolmentsRequest
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, fiamcp.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}
	if req.InstanceID == 0 {
		return nil, fiamcp.ErrBadParameter.With("instanceID is required")
	}
	return t.client.CourseEnrolments(ctx, req.InstanceID), nil
}
