// Package loops provides a client for the Loops email marketing API.
//
// Loops (https://loops.so) is an email platform for contact management,
// event-triggered automations, and transactional email. This package
// implements a typed Go client covering the v1 API surface: contacts,
// contact properties, mailing lists, events, transactional email, and
// API key verification.
//
// # Usage
//
// Create a client with your API key:
//
//	client, err := loops.NewClient("your-api-key")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ctx := context.Background()
//	resp, err := client.CreateContact(ctx, "dev@example.com", map[string]any{
//		"firstName": "Ada",
//		"favoriteColor": "green",
//	}, nil)
//
// All methods accept a context for cancellation. The client holds no
// mutable state after construction, so a single client is safe for
// concurrent use.
//
// # Configuration
//
// NewClient accepts functional options:
//
//	client, err := loops.NewClient(apiKey,
//		loops.WithTimeout(10*time.Second),
//		loops.WithLogger(logger),
//	)
//
// # Error Handling
//
// Failures are classified into distinct types so callers can branch on
// them with errors.As:
//
//   - ValidationError: bad arguments, reported before any request is sent
//   - RateLimitExceededError: HTTP 429, carries the limit and remaining
//     quota from the rate-limit headers
//   - APIError: any other non-2xx response, carries the status code and
//     the decoded error body
//
// Network-level failures from the underlying http.Client are returned
// as-is, without wrapping, so their diagnostics stay intact.
//
//	var rle *loops.RateLimitExceededError
//	if errors.As(err, &rle) {
//		// back off; rle.Limit requests per second allowed
//	}
//
// The client never retries. A caller wanting backoff or retry builds it
// on top of the returned errors.
package loops
