package loops

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateContactProperty adds a property to the account's contact schema.
// propType must be one of the PropertyType constants.
func (c *Client) CreateContactProperty(ctx context.Context, name string, propType PropertyType) (*SuccessResponse, error) {
	if name == "" {
		return nil, &ValidationError{Message: "name is required"}
	}
	if !propType.Valid() {
		return nil, &ValidationError{
			Message: fmt.Sprintf("invalid property type %q: must be one of string, number, boolean, date", propType),
		}
	}

	var resp SuccessResponse
	err := c.doQuery(ctx, apiRequest{
		path:   "v1/contacts/properties",
		method: http.MethodPost,
		payload: map[string]any{
			"name": name,
			"type": string(propType),
		},
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListContactProperties returns the account's contact properties. list
// selects "all" properties or only "custom" ones; empty means all.
func (c *Client) ListContactProperties(ctx context.Context, list string) ([]ContactProperty, error) {
	params := url.Values{}
	if list != "" {
		params.Set("list", list)
	}

	var properties []ContactProperty
	err := c.doQuery(ctx, apiRequest{
		path:   "v1/contacts/properties",
		params: params,
	}, &properties)
	if err != nil {
		return nil, err
	}
	return properties, nil
}
