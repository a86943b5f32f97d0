package loops

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEvent(t *testing.T) {
	t.Run("validation", func(t *testing.T) {
		tests := []struct {
			name string
			req  EventRequest
			ok   bool
		}{
			{name: "no identifiers", req: EventRequest{EventName: "signup"}},
			{name: "missing event name", req: EventRequest{Email: "a@example.com"}},
			{name: "email only", req: EventRequest{Email: "a@example.com", EventName: "signup"}, ok: true},
			{name: "userId only", req: EventRequest{UserID: "u1", EventName: "signup"}, ok: true},
			// Both identifiers together are a deliberate linking mode,
			// not a mistake like it is for find/delete.
			{name: "both identifiers", req: EventRequest{Email: "a@example.com", UserID: "u1", EventName: "signup"}, ok: true},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				called := false
				client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
					called = true
					json.NewEncoder(w).Encode(SuccessResponse{Success: true})
				})

				_, err := client.SendEvent(context.Background(), tt.req)
				if !tt.ok {
					var verr *ValidationError
					require.ErrorAs(t, err, &verr)
					assert.False(t, called, "validation failures must stay off the network")
					return
				}
				require.NoError(t, err)
				assert.True(t, called)
			})
		}
	})

	t.Run("payload shape", func(t *testing.T) {
		var sentBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/events/send", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sentBody))
			json.NewEncoder(w).Encode(SuccessResponse{Success: true})
		})

		resp, err := client.SendEvent(context.Background(), EventRequest{
			Email:             "test@example.com",
			UserID:            "u1",
			EventName:         "purchase",
			ContactProperties: map[string]any{"plan": "pro"},
			EventProperties:   map[string]any{"amount": 42.5},
			MailingLists:      map[string]bool{"list-1": true},
		})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, map[string]any{
			"email":           "test@example.com",
			"userId":          "u1",
			"eventName":       "purchase",
			"plan":            "pro",
			"eventProperties": map[string]any{"amount": 42.5},
			"mailingLists":    map[string]any{"list-1": true},
		}, sentBody)
	})

	t.Run("minimal payload has no optional keys", func(t *testing.T) {
		var sentBody map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, json.NewDecoder(r.Body).Decode(&sentBody))
			json.NewEncoder(w).Encode(SuccessResponse{Success: true})
		})

		_, err := client.SendEvent(context.Background(), EventRequest{
			UserID:    "u1",
			EventName: "signup",
		})
		require.NoError(t, err)
		assert.Equal(t, map[string]any{
			"userId":    "u1",
			"eventName": "signup",
		}, sentBody)
	})
}
