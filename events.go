package loops

import (
	"context"
	"net/http"
)

// SendEvent fires an event for a contact, triggering any automations
// listening for it. At least one of Email and UserID must be set;
// setting both links the two identifiers on the contact record.
func (c *Client) SendEvent(ctx context.Context, req EventRequest) (*SuccessResponse, error) {
	if err := atLeastOneIdentifier(req.Email, req.UserID); err != nil {
		return nil, err
	}
	if req.EventName == "" {
		return nil, &ValidationError{Message: "eventName is required"}
	}

	payload := map[string]any{"eventName": req.EventName}
	if req.Email != "" {
		payload["email"] = req.Email
	}
	if req.UserID != "" {
		payload["userId"] = req.UserID
	}
	// Contact properties ride at the top level next to eventName and
	// override the base fields on a name collision.
	for key, value := range req.ContactProperties {
		payload[key] = value
	}
	if req.EventProperties != nil {
		payload["eventProperties"] = req.EventProperties
	}
	if req.MailingLists != nil {
		payload["mailingLists"] = req.MailingLists
	}

	var resp SuccessResponse
	err := c.doQuery(ctx, apiRequest{
		path:    "v1/events/send",
		method:  http.MethodPost,
		payload: payload,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
