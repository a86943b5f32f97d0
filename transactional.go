package loops

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// defaultTransactionalPageSize is used when the caller does not ask for a
// specific page size.
const defaultTransactionalPageSize = 20

// SendTransactionalEmail sends a transactional email to a recipient.
// TransactionalID names the published template; DataVariables fill its
// placeholders.
func (c *Client) SendTransactionalEmail(ctx context.Context, req TransactionalRequest) (*SuccessResponse, error) {
	if req.TransactionalID == "" {
		return nil, &ValidationError{Message: "transactionalId is required"}
	}
	if req.Email == "" {
		return nil, &ValidationError{Message: "email is required"}
	}

	payload := map[string]any{
		"transactionalId": req.TransactionalID,
		"email":           req.Email,
	}
	if req.AddToAudience {
		payload["addToAudience"] = true
	}
	if req.DataVariables != nil {
		payload["dataVariables"] = req.DataVariables
	}
	if len(req.Attachments) > 0 {
		payload["attachments"] = req.Attachments
	}

	var resp SuccessResponse
	err := c.doQuery(ctx, apiRequest{
		path:    "v1/transactional",
		method:  http.MethodPost,
		payload: payload,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListTransactionalEmails returns one page of published transactional
// templates. perPage defaults to 20 when zero or negative; cursor is the
// NextCursor from a previous page, empty for the first.
func (c *Client) ListTransactionalEmails(ctx context.Context, perPage int, cursor string) (*TransactionalEmailList, error) {
	if perPage <= 0 {
		perPage = defaultTransactionalPageSize
	}

	params := url.Values{}
	params.Set("perPage", strconv.Itoa(perPage))
	if cursor != "" {
		params.Set("cursor", cursor)
	}

	var resp TransactionalEmailList
	err := c.doQuery(ctx, apiRequest{
		path:   "v1/transactional",
		params: params,
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
