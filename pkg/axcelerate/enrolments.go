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
// TYPES

// Enrolment is one learner's relationship to one course instance.
type Enrolment struct {
	InstanceID    any `json:"instance_id"`
	EnrolID       any `json:"enrol_id"`
	LearnerID     any `json:"learner_id"`
	ContactID     any `json:"contact_id"`
	Name          any `json:"name"`
	Code          any `json:"code"`
	Status        any `json:"status"`
	Type          any `json:"type"`
	EnrolmentDate any `json:"enrolment_date"`
	StartDate     any `json:"start_date"`
	FinishDate    any `json:"finish_date"`
}

// EnrolmentStatus is the result of a learner enrolment lookup.
type EnrolmentStatus struct {
	Enrolled bool        `json:"enrolled"`
	Courses  []Enrolment `json:"courses"`
}

// RosterEntry is one student's enrolment within one course instance.
type RosterEntry struct {
	ContactID     any `json:"contact_id"`
	GivenName     any `json:"given_name"`
	Surname       any `json:"surname"`
	Email         any `json:"email"`
	Status        any `json:"status"`
	EnrolmentDate any `json:"enrolment_date"`
	FinishDate    any `json:"finish_date"`
	InstanceID    any `json:"instance_id"`
	Code          any `json:"code"`
	EnrolID       any `json:"enrol_id"`
	LearnerID     any `json:"learner_id"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// StudentEnrolments returns the enrolment status and courses for one
// learner. Rows are filtered to the requested contact ID since a
// permissive remote may return unfiltered rows; a row whose contact ID
// fails to coerce to an integer is treated as non-matching. Transport
// failures are logged and yield {enrolled: false, courses: []}.
func (c *Client) StudentEnrolments(ctx context.Context, contactID int) EnrolmentStatus {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "StudentEnrolments",
		attribute.Int("contactID", contactID),
	)
	defer func() { endSpan(err) }()

	query := url.Values{}
	query.Set("contactID", strconv.Itoa(contactID))

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, nil, &response, client.OptPath("course", "enrolments"), client.OptQuery(query)); err != nil {
		log.WithError(err).WithField("contactID", contactID).Error("enrolment lookup failed")
		return EnrolmentStatus{Enrolled: false, Courses: []Enrolment{}}
	}

	// Filter and map
	courses := make([]Enrolment, 0, len(response))
	for _, r := range response {
		if id, ok := toInt(r["CONTACTID"]); !ok || id != contactID {
			continue
		}
		courses = append(courses, Enrolment{
			InstanceID:    r["INSTANCEID"],
			EnrolID:       r["ENROLID"],
			LearnerID:     r["LEARNERID"],
			ContactID:     r["CONTACTID"],
			Name:          r["NAME"],
			Code:          r["CODE"],
			Status:        r["STATUS"],
			Type:          r["TYPE"],
			EnrolmentDate: r["ENROLMENTDATE"],
			StartDate:     r["STARTDATE"],
			FinishDate:    r["FINISHDATE"],
		})
	}
	return EnrolmentStatus{Enrolled: len(courses) > 0, Courses: courses}
}

// CourseEnrolments returns the roster of one course instance, filtered
// to the requested instance ID with the same coercion rule as
// StudentEnrolments. Transport failures are logged and yield an empty
// result.
func (c *Client) CourseEnrolments(ctx context.Context, instanceID int) []RosterEntry {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "CourseEnrolments",
		attribute.Int("instanceID", instanceID),
	)
	defer func() { endSpan(err) }()

	query := url.Values{}
	query.Set("instanceID", strconv.Itoa(instanceID))

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, nil, &response, client.OptPath("course", "enrolments"), client.OptQuery(query)); err != nil {
		log.WithError(err).WithField("instanceID", instanceID).Error("roster lookup failed")
		return []RosterEntry{}
	}

	// Filter and map
	result := make([]RosterEntry, 0, len(response))
	for _, r := range response {
		if id, ok := toInt(r["INSTANCEID"]); !ok || id != instanceID {
			continue
		}
		result = append(result, RosterEntry{
			ContactID:     r["CONTACTID"],
			GivenName:     r["GIVENNAME"],
			Surname:       r["SURNAME"],
			Email:         r["EMAIL"],
			Status:        r["STATUS"],
			EnrolmentDate: r["ENROLMENTDATE"],
			FinishDate:    r["FINISHDATE"],
			InstanceID:    r["INSTANCEID"],
			Code:          r["CODE"],
			EnrolID:       r["ENROLID"],
			LearnerID:     r["LEARNERID"],
		})
	}
	return result
}
