package axcelerate

import (
	"net/url"
	"slices"
	"strconv"
	"time"

	// Packages
	fiamcp "github.com/fia-training/fia-mcp"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// SearchUsersRequest defines the filters for a contact search
type SearchUsersRequest struct {
	Query         string `json:"q,omitempty" jsonschema:"A free-text search string, e.g. 'John Doe'."`
	GivenName     string `json:"givenName,omitempty" jsonschema:"The user's given name, e.g. 'John'."`
	Surname       string `json:"surname,omitempty" jsonschema:"The user's surname, e.g. 'Doe'."`
	EmailAddress  string `json:"emailAddress,omitempty" jsonschema:"The user's email address."`
	ContactRoleID *int   `json:"contactRoleID,omitempty" jsonschema:"The ID of the contact role to filter by."`
	ContactIDs    []int  `json:"contactIDs,omitempty" jsonschema:"A list of contact IDs to filter by."`
	ContactID     *int   `json:"contactID,omitempty" jsonschema:"A single contact ID to filter by."`
}

// ListCoursesRequest defines the filters for the course listing. The
// training area is pinned on the remote side and is not a parameter.
type ListCoursesRequest struct {
	ID            *int   `json:"id,omitempty" jsonschema:"The ID of the course to filter."`
	SearchTerm    string `json:"search_term,omitempty" jsonschema:"Search term to filter courses."`
	Type          string `json:"type,omitempty" jsonschema:"Type of the course: 'w' for workshop, 'p' for accredited program, 'el' for e-learning. Defaults to all."`
	Offset        *int   `json:"offset,omitempty" jsonschema:"Used for paging - start at record. Defaults to 0."`
	DisplayLength *int   `json:"display_length,omitempty" jsonschema:"Used for paging - total records to retrieve. Defaults to 10."`
	SortColumn    string `json:"sort_column,omitempty" jsonschema:"The column index to sort by. Defaults to '1'."`
	SortDirection string `json:"sort_direction,omitempty" jsonschema:"The sort direction, 'ASC' or 'DESC'. Defaults to 'ASC'."`
	Current       *bool  `json:"current,omitempty" jsonschema:"True to show only current courses."`
	Public        *bool  `json:"public,omitempty" jsonschema:"Whether to include public courses only. If false, returns all course types regardless of public settings."`
	IsActive      *bool  `json:"isActive,omitempty" jsonschema:"Whether to include active or inactive courses only. Defaults to both."`
}

// SearchCoursesRequest defines the filters for the course instance search.
// Date bounds accept YYYY-MM-DD, timestamp bounds additionally accept
// RFC 3339 and 'YYYY-MM-DD hh:mm'.
type SearchCoursesRequest struct {
	ID             *int   `json:"id,omitempty" jsonschema:"Activity type ID."`
	InstanceID     *int   `json:"instance_id,omitempty" jsonschema:"Instance ID."`
	Type           string `json:"type,omitempty" jsonschema:"Type of the activity: 'w' for workshop, 'p' for accredited program, 'el' for e-learning, 'all' for every type."`
	TrainingCat    string `json:"training_category,omitempty" jsonschema:"Training category."`
	Location       string `json:"location,omitempty" jsonschema:"Location of the course."`
	State          string `json:"state,omitempty" jsonschema:"State of the course."`
	Code           string `json:"code,omitempty" jsonschema:"Course code."`
	Name           string `json:"name,omitempty" jsonschema:"Course name."`
	SearchTerm     string `json:"search_term,omitempty" jsonschema:"For a general search use this parameter."`
	EnrolmentOpen  *bool  `json:"enrolment_open,omitempty" jsonschema:"Whether enrolment is open."`
	StartDateMin   string `json:"startDate_min,omitempty" jsonschema:"Minimum start date (YYYY-MM-DD)."`
	StartDateMax   string `json:"startDate_max,omitempty" jsonschema:"Maximum start date (YYYY-MM-DD)."`
	FinishDateMin  string `json:"finishDate_min,omitempty" jsonschema:"Minimum finish date (YYYY-MM-DD)."`
	FinishDateMax  string `json:"finishDate_max,omitempty" jsonschema:"Maximum finish date (YYYY-MM-DD)."`
	LastUpdatedMin string `json:"lastUpdated_min,omitempty" jsonschema:"Minimum last updated timestamp."`
	LastUpdatedMax string `json:"lastUpdated_max,omitempty" jsonschema:"Maximum last updated timestamp."`
	Offset         *int   `json:"offset,omitempty" jsonschema:"Used for paging - start at record. Defaults to 0."`
	DisplayLength  *int   `json:"display_length,omitempty" jsonschema:"Used for paging - total records to retrieve. Defaults to 10."`
	SortColumn     string `json:"sort_column,omitempty" jsonschema:"The column index to sort by. Defaults to '1'."`
	SortDirection  string `json:"sort_direction,omitempty" jsonschema:"The sort direction, 'ASC' or 'DESC'. Defaults to 'ASC'."`
	Public         *bool  `json:"public,omitempty" jsonschema:"Whether to include public courses. If false, returns only in-house course instances. Defaults to true."`
	IsActive       *bool  `json:"isActive,omitempty" jsonschema:"Include or exclude deleted, archived and inactive courses."`
	Status         string `json:"status,omitempty" jsonschema:"Status of the workshop: Active, Cancelled, Completed, Incomplete or Tentative."`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

var (
	statusValues = []string{"Active", "Cancelled", "Completed", "Incomplete", "Tentative"}
)

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts SearchUsersRequest to URL query parameters
func (r *SearchUsersRequest) Values() url.Values {
	result := url.Values{}
	if r.Query != "" {
		result.Set("q", r.Query)
	}
	if r.GivenName != "" {
		result.Set("givenName", r.GivenName)
	}
	if r.Surname != "" {
		result.Set("surname", r.Surname)
	}
	if r.EmailAddress != "" {
		result.Set("emailAddress", r.EmailAddress)
	}
	if r.ContactRoleID != nil {
		result.Set("contactRoleID", strconv.Itoa(*r.ContactRoleID))
	}
	for _, id := range r.ContactIDs {
		result.Add("contactIDs", strconv.Itoa(id))
	}
	if r.ContactID != nil {
		result.Set("contactID", strconv.Itoa(*r.ContactID))
	}
	return result
}

// Values converts ListCoursesRequest to URL query parameters.
// The training area filter is always injected and cannot be overridden.
func (r *ListCoursesRequest) Values() url.Values {
	result := url.Values{}
	result.Set("trainingArea", trainingAreaCourses)
	if r.ID != nil {
		result.Set("id", strconv.Itoa(*r.ID))
	}
	if r.SearchTerm != "" {
		result.Set("searchTerm", r.SearchTerm)
	}
	if r.Type != "" {
		result.Set("type", r.Type)
	}
	if r.Offset != nil {
		result.Set("offset", strconv.Itoa(*r.Offset))
	}
	if r.DisplayLength != nil {
		result.Set("displayLength", strconv.Itoa(*r.DisplayLength))
	}
	if r.SortColumn != "" {
		result.Set("sortColumn", r.SortColumn)
	}
	if r.SortDirection != "" {
		result.Set("sortDirection", r.SortDirection)
	}
	if r.Current != nil {
		result.Set("current", strconv.FormatBool(*r.Current))
	}
	if r.Public != nil {
		result.Set("public", strconv.FormatBool(*r.Public))
	}
	if r.IsActive != nil {
		result.Set("isActive", strconv.FormatBool(*r.IsActive))
	}
	return result
}

// Values converts SearchCoursesRequest to URL query parameters. Date and
// timestamp bounds are serialized as ISO 8601 strings when present and
// omitted entirely when absent. Returns an error for an unparseable
// bound or an unknown status.
func (r *SearchCoursesRequest) Values() (url.Values, error) {
	result := url.Values{}
	if r.ID != nil {
		result.Set("id", strconv.Itoa(*r.ID))
	}
	if r.InstanceID != nil {
		result.Set("instanceID", strconv.Itoa(*r.InstanceID))
	}
	if r.Type != "" {
		result.Set("type", r.Type)
	}
	if r.TrainingCat != "" {
		result.Set("trainingCategory", r.TrainingCat)
	}
	if r.Location != "" {
		result.Set("location", r.Location)
	}
	if r.State != "" {
		result.Set("state", r.State)
	}
	if r.Code != "" {
		result.Set("code", r.Code)
	}
	if r.Name != "" {
		result.Set("name", r.Name)
	}
	if r.SearchTerm != "" {
		result.Set("searchTerm", r.SearchTerm)
	}
	if r.EnrolmentOpen != nil {
		result.Set("enrolmentOpen", strconv.FormatBool(*r.EnrolmentOpen))
	}
	if err := setDate(result, "startDate_min", r.StartDateMin); err != nil {
		return nil, err
	}
	if err := setDate(result, "startDate_max", r.StartDateMax); err != nil {
		return nil, err
	}
	if err := setDate(result, "finishDate_min", r.FinishDateMin); err != nil {
		return nil, err
	}
	if err := setDate(result, "finishDate_max", r.FinishDateMax); err != nil {
		return nil, err
	}
	if err := setDateTime(result, "lastUpdated_min", r.LastUpdatedMin); err != nil {
		return nil, err
	}
	if err := setDateTime(result, "lastUpdated_max", r.LastUpdatedMax); err != nil {
		return nil, err
	}
	if r.Offset != nil {
		result.Set("offset", strconv.Itoa(*r.Offset))
	}
	if r.DisplayLength != nil {
		result.Set("displayLength", strconv.Itoa(*r.DisplayLength))
	}
	if r.SortColumn != "" {
		result.Set("sortColumn", r.SortColumn)
	}
	if r.SortDirection != "" {
		result.Set("sortDirection", r.SortDirection)
	}
	if r.Public != nil {
		result.Set("public", strconv.FormatBool(*r.Public))
	}
	if r.IsActive != nil {
		result.Set("isActive", strconv.FormatBool(*r.IsActive))
	}
	if r.Status != "" {
		if !slices.Contains(statusValues, r.Status) {
			return nil, fiamcp.ErrBadParameter.Withf("status: %q", r.Status)
		}
		result.Set("status", r.Status)
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// setDate parses a calendar date bound and sets it as YYYY-MM-DD.
// An empty value is omitted.
func setDate(v url.Values, key, value string) error {
	if value == "" {
		return nil
	}
	t, err := parseDate(value)
	if err != nil {
		return fiamcp.ErrBadParameter.Withf("%s: %q", key, value)
	}
	v.Set(key, t.Format(time.DateOnly))
	return nil
}

// setDateTime parses a timestamp bound and sets it as an ISO 8601
// date-time. An empty value is omitted.
func setDateTime(v url.Values, key, value string) error {
	if value == "" {
		return nil
	}
	t, err := parseDateTime(value)
	if err != nil {
		return fiamcp.ErrBadParameter.Withf("%s: %q", key, value)
	}
	v.Set(key, t.Format("2006-01-02T15:04:05"))
	return nil
}

func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.DateOnly, value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}

func parseDateTime(value string) (t time.Time, err error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04", time.DateOnly} {
		if t, err = time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return t, err
}
