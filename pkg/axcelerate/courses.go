package axcelerate

import (
	"context"
	"fmt"
	"net/url"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/otel"
	log "github.com/sirupsen/logrus"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Course is the normalized shape of one course definition. Key casing
// follows the remote API, which downstream consumers rely on.
type Course struct {
	ID               any `json:"ID"`
	Name             any `json:"NAME"`
	StreamName       any `json:"STREAMNAME"`
	DiplomaVersion   any `json:"DIPLOMAVERSION"`
	Code             any `json:"CODE"`
	GSTType          any `json:"GST_TYPE"`
	Cost             any `json:"COST"`
	Delivery         any `json:"DELIVERY"`
	Duration         any `json:"DURATION"`
	DurationType     any `json:"DURATIONTYPE"`
	IsActive         any `json:"ISACTIVE"`
	Type             any `json:"TYPE"`
	ShortDescription any `json:"SHORTDESCRIPTION"`
}

// ErrorMarker is the in-band error record returned by RecordedWebinars.
type ErrorMarker struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// ListCourses returns the courses matching the given filters. The
// training area is always pinned to the FIA catalogue regardless of the
// request. Transport failures are logged and yield an empty result.
func (c *Client) ListCourses(ctx context.Context, req *ListCoursesRequest) []Course {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "ListCourses")
	defer func() { endSpan(err) }()

	if req == nil {
		req = new(ListCoursesRequest)
	}

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, nil, &response, client.OptPath("courses"), client.OptQuery(req.Values())); err != nil {
		log.WithError(err).Error("course listing failed")
		return []Course{}
	}

	// Map each row to the normalized shape
	result := make([]Course, 0, len(response))
	for _, r := range response {
		result = append(result, newCourse(r))
	}
	return result
}

// RecordedWebinars returns the microlearning webinar catalogue, mapped to
// the Course shape. Unlike the sibling operations, any failure returns a
// single ErrorMarker element rather than an empty result; downstream
// consumers depend on this contract, so it is preserved as-is.
func (c *Client) RecordedWebinars(ctx context.Context) []any {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "RecordedWebinars")
	defer func() { endSpan(err) }()

	query := url.Values{}
	query.Set("trainingArea", trainingAreaMicrolearning)
	query.Set("displayLength", "100")

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, nil, &response, client.OptPath("courses"), client.OptQuery(query)); err != nil {
		log.WithError(err).Error("webinar listing failed")
		return []any{ErrorMarker{
			Error:   true,
			Message: fmt.Sprintf("Unexpected error: %v", err),
		}}
	}

	// Map each row to the normalized shape
	result := make([]any, 0, len(response))
	for _, r := range response {
		result = append(result, newCourse(r))
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newCourse(r row) Course {
	return Course{
		ID:               r["ID"],
		Name:             r["NAME"],
		StreamName:       r["STREAMNAME"],
		DiplomaVersion:   r["DIPLOMAVERSION"],
		Code:             r["CODE"],
		GSTType:          r["GST_TYPE"],
		Cost:             r["COST"],
		Delivery:         r["DELIVERY"],
		Duration:         r["DURATION"],
		DurationType:     r["DURATIONTYPE"],
		IsActive:         r["ISACTIVE"],
		Type:             r["TYPE"],
		ShortDescription: r["SHORTDESCRIPTION"],
	}
}
