package axcelerate

import (
	"context"

	// Packages
	"github.com/mutablelogic/go-client"
	"github.com/mutablelogic/go-client/pkg/otel"
	log "github.com/sirupsen/logrus"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Contact is the normalized shape of one person in the remote system.
// Fields are loosely typed since the remote API may return numbers or
// strings per deployment; a field missing upstream renders as null.
type Contact struct {
	ContactID    any `json:"contact_id"`
	UserID       any `json:"user_id"`
	GivenName    any `json:"given_name"`
	Surname      any `json:"surname"`
	Email        any `json:"email"`
	AltEmail     any `json:"alt_email"`
	Sex          any `json:"sex"`
	Mobile       any `json:"mobile"`
	WorkPhone    any `json:"work_phone"`
	Organisation any `json:"organisation"`
	Position     any `json:"position"`
	Active       any `json:"active"`
}

///////////////////////////////////////////////////////////////////////////////
// API CALLS

// SearchUsers returns the contacts matching the given filters. Rows which
// are not objects are skipped. Transport failures are logged and yield an
// empty result, never an error.
func (c *Client) SearchUsers(ctx context.Context, req *SearchUsersRequest) []Contact {
	var err error
	ctx, endSpan := otel.StartSpan(c.tracer, ctx, "SearchUsers")
	defer func() { endSpan(err) }()

	if req == nil {
		req = new(SearchUsersRequest)
	}

	// Request -> Response
	var response rowList
	if err = c.DoWithContext(ctx, nil, &response, client.OptPath("contacts", "search"), client.OptQuery(req.Values())); err != nil {
		log.WithError(err).Error("contact search failed")
		return []Contact{}
	}

	// Map each row to the normalized shape
	result := make([]Contact, 0, len(response))
	for _, r := range response {
		result = append(result, newContact(r))
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func newContact(r row) Contact {
	return Contact{
		ContactID:    r["CONTACTID"],
		UserID:       r["USERID"],
		GivenName:    r["GIVENNAME"],
		Surname:      r["SURNAME"],
		Email:        r["EMAILADDRESS"],
		AltEmail:     r["EMAILADDRESSALTERNATIVE"],
		Sex:          r["SEX"],
		Mobile:       r["MOBILEPHONE"],
		WorkPhone:    r["WORKPHONE"],
		Organisation: r["ORGANISATION"],
		Position:     r["POSITION"],
		Active:       r["CONTACTACTIVE"],
	}
}
