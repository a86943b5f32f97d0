package loops

import "encoding/json"

// PropertyType enumerates the value types a contact property can hold.
type PropertyType string

const (
	// PropertyTypeString is a free-text property
	PropertyTypeString PropertyType = "string"
	// PropertyTypeNumber is a numeric property
	PropertyTypeNumber PropertyType = "number"
	// PropertyTypeBoolean is a true/false property
	PropertyTypeBoolean PropertyType = "boolean"
	// PropertyTypeDate is an ISO 8601 date property
	PropertyTypeDate PropertyType = "date"
)

// Valid reports whether the type is one the API accepts.
func (pt PropertyType) Valid() bool {
	switch pt {
	case PropertyTypeString, PropertyTypeNumber, PropertyTypeBoolean, PropertyTypeDate:
		return true
	default:
		return false
	}
}

// Contact is a recipient record in Loops. The fields the API always
// returns live on the struct; account-defined custom properties land in
// Properties. MailingLists maps list IDs to subscription state.
type Contact struct {
	ID           string
	Email        string
	FirstName    string
	LastName     string
	Source       string
	Subscribed   bool
	UserGroup    string
	UserID       string
	MailingLists map[string]bool
	Properties   map[string]any
}

// UnmarshalJSON splits the flat wire object into fixed fields and the
// custom property bag.
func (c *Contact) UnmarshalJSON(data []byte) error {
	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}

	for key, value := range fields {
		switch key {
		case "id":
			c.ID, _ = value.(string)
		case "email":
			c.Email, _ = value.(string)
		case "firstName":
			c.FirstName, _ = value.(string)
		case "lastName":
			c.LastName, _ = value.(string)
		case "source":
			c.Source, _ = value.(string)
		case "subscribed":
			c.Subscribed, _ = value.(bool)
		case "userGroup":
			c.UserGroup, _ = value.(string)
		case "userId":
			c.UserID, _ = value.(string)
		case "mailingLists":
			lists, ok := value.(map[string]any)
			if !ok {
				continue
			}
			c.MailingLists = make(map[string]bool, len(lists))
			for id, subscribed := range lists {
				c.MailingLists[id], _ = subscribed.(bool)
			}
		default:
			if c.Properties == nil {
				c.Properties = make(map[string]any)
			}
			c.Properties[key] = value
		}
	}
	return nil
}

// MarshalJSON emits the same flat shape the API returns: fixed fields and
// custom properties side by side. Fixed fields win on a name collision.
func (c Contact) MarshalJSON() ([]byte, error) {
	fields := make(map[string]any, len(c.Properties)+9)
	for key, value := range c.Properties {
		fields[key] = value
	}
	fields["id"] = c.ID
	fields["email"] = c.Email
	fields["firstName"] = c.FirstName
	fields["lastName"] = c.LastName
	fields["source"] = c.Source
	fields["subscribed"] = c.Subscribed
	fields["userGroup"] = c.UserGroup
	fields["userId"] = c.UserID
	if c.MailingLists != nil {
		fields["mailingLists"] = c.MailingLists
	}
	return json.Marshal(fields)
}

// ContactProperty describes one property in the account's contact schema.
type ContactProperty struct {
	Key   string       `json:"key"`
	Label string       `json:"label"`
	Type  PropertyType `json:"type"`
}

// MailingList is a subscription group contacts can be opted into.
type MailingList struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	IsPublic    bool   `json:"isPublic"`
}

// ContactResponse is returned by contact create/update calls.
type ContactResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// DeleteResponse is returned by contact deletion.
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// APIKeyResponse is returned by the api-key test endpoint.
type APIKeyResponse struct {
	Success  bool   `json:"success"`
	TeamName string `json:"teamName"`
}

// SuccessResponse is the bare acknowledgement several endpoints return.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// EventRequest describes an event to send. Email and UserID address the
// contact; supplying both links the identifiers on the contact record.
// ContactProperties merge into the contact at the top level of the call,
// EventProperties travel with the event itself.
type EventRequest struct {
	Email             string
	UserID            string
	EventName         string
	ContactProperties map[string]any
	EventProperties   map[string]any
	MailingLists      map[string]bool
}

// TransactionalAttachment is a file attached to a transactional email.
// Data is the base64-encoded file content.
type TransactionalAttachment struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Data        string `json:"data"`
}

// TransactionalRequest describes a transactional email send.
type TransactionalRequest struct {
	TransactionalID string
	Email           string
	AddToAudience   bool
	DataVariables   map[string]any
	Attachments     []TransactionalAttachment
}

// TransactionalEmail is one published transactional template.
type TransactionalEmail struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	LastUpdated   string   `json:"lastUpdated"`
	DataVariables []string `json:"dataVariables"`
}

// Pagination carries cursor paging info for list endpoints.
type Pagination struct {
	TotalResults    int    `json:"totalResults"`
	ReturnedResults int    `json:"returnedResults"`
	PerPage         int    `json:"perPage"`
	NextCursor      string `json:"nextCursor"`
}

// TransactionalEmailList is one page of transactional templates.
type TransactionalEmailList struct {
	Pagination Pagination           `json:"pagination"`
	Data       []TransactionalEmail `json:"data"`
}
