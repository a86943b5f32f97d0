package loops

import (
	"context"
)

// API defines the full client surface. Hosts can depend on this interface
// to swap in a mock during their own tests.
type API interface {
	// TestAPIKey verifies the configured API key
	TestAPIKey(ctx context.Context) (*APIKeyResponse, error)

	// CreateContact creates a contact
	CreateContact(ctx context.Context, email string, properties map[string]any, mailingLists map[string]bool) (*ContactResponse, error)

	// UpdateContact updates a contact, creating it if absent
	UpdateContact(ctx context.Context, email string, properties map[string]any, mailingLists map[string]bool) (*ContactResponse, error)

	// FindContact looks a contact up by exactly one of email or userId
	FindContact(ctx context.Context, email, userID string) ([]Contact, error)

	// DeleteContact removes a contact by exactly one of email or userId
	DeleteContact(ctx context.Context, email, userID string) (*DeleteResponse, error)

	// CreateContactProperty adds a property to the contact schema
	CreateContactProperty(ctx context.Context, name string, propType PropertyType) (*SuccessResponse, error)

	// ListContactProperties returns the contact schema, optionally filtered
	ListContactProperties(ctx context.Context, list string) ([]ContactProperty, error)

	// ListMailingLists returns the account's mailing lists
	ListMailingLists(ctx context.Context) ([]MailingList, error)

	// SendEvent fires an event for a contact
	SendEvent(ctx context.Context, req EventRequest) (*SuccessResponse, error)

	// SendTransactionalEmail sends a templated transactional email
	SendTransactionalEmail(ctx context.Context, req TransactionalRequest) (*SuccessResponse, error)

	// ListTransactionalEmails pages through published transactional templates
	ListTransactionalEmails(ctx context.Context, perPage int, cursor string) (*TransactionalEmailList, error)
}

var _ API = (*Client)(nil)
