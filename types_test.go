package loops

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyType(t *testing.T) {
	tests := []struct {
		propType PropertyType
		valid    bool
	}{
		{PropertyTypeString, true},
		{PropertyTypeNumber, true},
		{PropertyTypeBoolean, true},
		{PropertyTypeDate, true},
		{PropertyType("enum"), false},
		{PropertyType(""), false},
	}

	for _, tt := range tests {
		t.Run(string(tt.propType), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.propType.Valid())
		})
	}
}

func TestContactUnmarshal(t *testing.T) {
	raw := `{
		"id": "c1",
		"email": "ada@example.com",
		"firstName": "Ada",
		"lastName": "Lovelace",
		"source": "API",
		"subscribed": true,
		"userGroup": "engineering",
		"userId": "u1",
		"mailingLists": {"list-1": true, "list-2": false},
		"favoriteColor": "green",
		"loginCount": 7
	}`

	var contact Contact
	require.NoError(t, json.Unmarshal([]byte(raw), &contact))

	assert.Equal(t, "c1", contact.ID)
	assert.Equal(t, "ada@example.com", contact.Email)
	assert.Equal(t, "Ada", contact.FirstName)
	assert.Equal(t, "Lovelace", contact.LastName)
	assert.Equal(t, "API", contact.Source)
	assert.True(t, contact.Subscribed)
	assert.Equal(t, "engineering", contact.UserGroup)
	assert.Equal(t, "u1", contact.UserID)
	assert.Equal(t, map[string]bool{"list-1": true, "list-2": false}, contact.MailingLists)
	assert.Equal(t, map[string]any{
		"favoriteColor": "green",
		"loginCount":    float64(7),
	}, contact.Properties)
}

func TestContactUnmarshalNullFields(t *testing.T) {
	// Loops returns explicit nulls for unset fixed fields.
	raw := `{"id": "c1", "email": "a@example.com", "firstName": null, "lastName": null, "userId": null}`

	var contact Contact
	require.NoError(t, json.Unmarshal([]byte(raw), &contact))
	assert.Empty(t, contact.FirstName)
	assert.Empty(t, contact.LastName)
	assert.Empty(t, contact.UserID)
	assert.Empty(t, contact.Properties)
}

func TestContactRoundTrip(t *testing.T) {
	original := Contact{
		ID:           "c1",
		Email:        "ada@example.com",
		FirstName:    "Ada",
		Subscribed:   true,
		MailingLists: map[string]bool{"list-1": true},
		Properties:   map[string]any{"favoriteColor": "green"},
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	// Custom properties sit flat next to the fixed fields on the wire.
	var flat map[string]any
	require.NoError(t, json.Unmarshal(encoded, &flat))
	assert.Equal(t, "green", flat["favoriteColor"])
	assert.Equal(t, "ada@example.com", flat["email"])

	var decoded Contact
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, original, decoded)
}
