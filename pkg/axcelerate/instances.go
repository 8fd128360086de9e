package axcelerate

import (
	"context"
	"net/url"
	"strconv"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/otel"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// CourseInstances returns the scheduled instances (cohorts) of a course.
// The response rows are passed through without reshaping. Transport
// failures are logged and yield an empty result.
func (c *Client) CourseInstances(ctx context.Context, courseID int, courseType string) []map[string]any {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "CourseInstances",
		attribute.Int("courseID", courseID),
	)
	defer func() { endSpan(err) }()

	query := url.Values{}
	query.Set("ID", strconv.Itoa(courseID))
	query.Set("type", courseType)

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, nil, &response, client.OptPath("course", "instances"), client.OptQuery(query)); err != nil {
		log.WithError(err).WithField("courseID", courseID).Error("course instance listing failed")
		return []map[string]any{}
	}

	// Pass rows through unmodified
	result := make([]map[string]any, 0, len(response))
	for _, r := range response {
		result = append(result, r)
	}
	return result
}

// SearchCourseInstances searches course instances with the given filters.
// The remote expects a POST with the filters as query parameters. The
// response may be a bare array or wrapped under a "data" key; both are
// accepted and the rows are passed through without reshaping. A bad
// filter or transport failure is logged and yields an empty result.
func (c *Client) SearchCourseInstances(ctx context.Context, req *SearchCoursesRequest) []map[string]any {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "SearchCourseInstances")
	defer func() { endSpan(err) }()

	if req == nil {
		req = new(SearchCoursesRequest)
	}
	query, err := req.Values()
	if err != nil {
		log.WithError(err).Error("course instance search failed")
		return []map[string]any{}
	}

	// POST with an empty body
	payload, err := client.NewJSONRequest(struct{}{})
	if err != nil {
		return []map[string]any{}
	}

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, payload, &response, client.OptPath("course", "instance", "search"), client.OptQuery(query)); err != nil {
		log.WithError(err).Error("course instance search failed")
		return []map[string]any{}
	}

	result := make([]map[string]any, 0, len(response))
	for _, r := range response {
		result = append(result, r)
	}
	return result
}

// FiaCourses returns the accredited FIA training courses, a fixed view
// over SearchCourseInstances.
func (c *Client) FiaCourses(ctx context.Context, displayLength *int) []map[string]any {
	return c.SearchCourseInstances(ctx, &SearchCoursesRequest{
		Type:          "p",
		TrainingCat:   trainingAreaCourses,
		DisplayLength: displayLength,
	})
}
