package loops

import "context"

// ListMailingLists returns the account's mailing lists.
func (c *Client) ListMailingLists(ctx context.Context) ([]MailingList, error) {
	var lists []MailingList
	if err := c.doQuery(ctx, apiRequest{path: "v1/lists"}, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}
