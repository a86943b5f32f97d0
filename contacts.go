package loops

import (
	"context"
	"net/http"
	"net/url"
)

// contactPayload merges the base email field with caller-supplied custom
// properties. Property keys win on a name collision, matching the server's
// last-write semantics. The mailingLists key is only present when the
// caller supplied a subscription map.
func contactPayload(email string, properties map[string]any, mailingLists map[string]bool) map[string]any {
	payload := map[string]any{"email": email}
	for key, value := range properties {
		payload[key] = value
	}
	if mailingLists != nil {
		payload["mailingLists"] = mailingLists
	}
	return payload
}

// CreateContact creates a contact. properties may carry arbitrary
// account-defined fields alongside the fixed ones (firstName, userId, ...);
// mailingLists maps list IDs to the desired subscription state.
func (c *Client) CreateContact(ctx context.Context, email string, properties map[string]any, mailingLists map[string]bool) (*ContactResponse, error) {
	if email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}

	var resp ContactResponse
	err := c.doQuery(ctx, apiRequest{
		path:    "v1/contacts/create",
		method:  http.MethodPost,
		payload: contactPayload(email, properties, mailingLists),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateContact updates a contact by email. The server creates the contact
// if it does not exist yet.
func (c *Client) UpdateContact(ctx context.Context, email string, properties map[string]any, mailingLists map[string]bool) (*ContactResponse, error) {
	if email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}

	var resp ContactResponse
	err := c.doQuery(ctx, apiRequest{
		path:    "v1/contacts/update",
		method:  http.MethodPut,
		payload: contactPayload(email, properties, mailingLists),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// FindContact looks a contact up by email or by userId, exactly one of
// which must be non-empty. The API returns a list: empty when nothing
// matched, one element otherwise.
func (c *Client) FindContact(ctx context.Context, email, userID string) ([]Contact, error) {
	if err := exactlyOneIdentifier(email, userID); err != nil {
		return nil, err
	}

	params := url.Values{}
	if email != "" {
		params.Set("email", email)
	} else {
		params.Set("userId", userID)
	}

	var contacts []Contact
	err := c.doQuery(ctx, apiRequest{
		path:   "v1/contacts/find",
		params: params,
	}, &contacts)
	if err != nil {
		return nil, err
	}
	return contacts, nil
}

// DeleteContact removes a contact by email or by userId, exactly one of
// which must be non-empty.
func (c *Client) DeleteContact(ctx context.Context, email, userID string) (*DeleteResponse, error) {
	if err := exactlyOneIdentifier(email, userID); err != nil {
		return nil, err
	}

	payload := map[string]any{}
	if email != "" {
		payload["email"] = email
	} else {
		payload["userId"] = userID
	}

	var resp DeleteResponse
	err := c.doQuery(ctx, apiRequest{
		path:    "v1/contacts/delete",
		method:  http.MethodPost,
		payload: payload,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
