package axcelerate

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TESTS: SearchUsersRequest

func Test_SearchUsersRequest_Values(t *testing.T) {
	tests := []struct {
		name   string
		req    *SearchUsersRequest
		expect url.Values
	}{
		{
			name:   "empty request",
			req:    &SearchUsersRequest{},
			expect: url.Values{},
		},
		{
			name: "free text query",
			req:  &SearchUsersRequest{Query: "John Doe"},
			expect: url.Values{
				"q": []string{"John Doe"},
			},
		},
		{
			name: "name and email",
			req:  &SearchUsersRequest{GivenName: "John", Surname: "Doe", EmailAddress: "john.doe@example.com"},
			expect: url.Values{
				"givenName":    []string{"John"},
				"surname":      []string{"Doe"},
				"emailAddress": []string{"john.doe@example.com"},
			},
		},
		{
			name: "contact id list is repeated",
			req:  &SearchUsersRequest{ContactIDs: []int{1, 2, 3}},
			expect: url.Values{
				"contactIDs": []string{"1", "2", "3"},
			},
		},
		{
			name: "single contact id and role",
			req:  &SearchUsersRequest{ContactID: ptr(7), ContactRoleID: ptr(1)},
			expect: url.Values{
				"contactID":     []string{"7"},
				"contactRoleID": []string{"1"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.req.Values())
		})
	}
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: ListCoursesRequest

func Test_ListCoursesRequest_Values(t *testing.T) {
	assert := assert.New(t)

	// The training area is injected even for an empty request
	values := (&ListCoursesRequest{}).Values()
	assert.Equal("FIA Courses", values.Get("trainingArea"))
	assert.Len(values, 1)

	// ... and cannot be overridden by any filter combination
	values = (&ListCoursesRequest{
		ID:            ptr(42),
		SearchTerm:    "warden",
		Type:          "p",
		Offset:        ptr(0),
		DisplayLength: ptr(25),
		SortColumn:    "2",
		SortDirection: "DESC",
		Current:       ptr(true),
		Public:        ptr(false),
		IsActive:      ptr(true),
	}).Values()
	assert.Equal("FIA Courses", values.Get("trainingArea"))
	assert.Equal("42", values.Get("id"))
	assert.Equal("warden", values.Get("searchTerm"))
	assert.Equal("p", values.Get("type"))
	assert.Equal("0", values.Get("offset"))
	assert.Equal("25", values.Get("displayLength"))
	assert.Equal("2", values.Get("sortColumn"))
	assert.Equal("DESC", values.Get("sortDirection"))
	assert.Equal("true", values.Get("current"))
	assert.Equal("false", values.Get("public"))
	assert.Equal("true", values.Get("isActive"))
}

///////////////////////////////////////////////////////////////////////////////
// TESTS: SearchCoursesRequest

func Test_SearchCoursesRequest_Values(t *testing.T) {
	assert := assert.New(t)

	// Empty request sends nothing
	values, err := (&SearchCoursesRequest{}).Values()
	assert.NoError(err)
	assert.Len(values, 0)

	// Date bounds are serialized as ISO 8601 and omitted when absent
	values, err = (&SearchCoursesRequest{
		StartDateMin:   "2025-03-01",
		FinishDateMax:  "2025-12-31",
		LastUpdatedMin: "2025-03-01 09:30",
	}).Values()
	assert.NoError(err)
	assert.Equal("2025-03-01", values.Get("startDate_min"))
	assert.Equal("2025-12-31", values.Get("finishDate_max"))
	assert.Equal("2025-03-01T09:30:00", values.Get("lastUpdated_min"))
	assert.NotContains(values, "startDate_max")
	assert.NotContains(values, "finishDate_min")
	assert.NotContains(values, "lastUpdated_max")

	// RFC 3339 timestamps are accepted for date bounds
	values, err = (&SearchCoursesRequest{StartDateMax: "2025-06-15T00:00:00Z"}).Values()
	assert.NoError(err)
	assert.Equal("2025-06-15", values.Get("startDate_max"))

	// Unparseable bounds are rejected
	_, err = (&SearchCoursesRequest{StartDateMin: "not-a-date"}).Values()
	assert.Error(err)

	// Status is constrained to the workshop statuses
	values, err = (&SearchCoursesRequest{Status: "Tentative"}).Values()
	assert.NoError(err)
	assert.Equal("Tentative", values.Get("status"))
	_, err = (&SearchCoursesRequest{Status: "Pending"}).Values()
	assert.Error(err)
}

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func ptr[T any](v T) *T {
	return &v
}
