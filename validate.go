package loops

// exactlyOneIdentifier enforces the find/delete rule: a contact is
// addressed by email or by userId, never both and never neither.
func exactlyOneIdentifier(email, userID string) error {
	if email != "" && userID != "" {
		return &ValidationError{Message: "only one of email or userId may be provided"}
	}
	if email == "" && userID == "" {
		return &ValidationError{Message: "one of email or userId is required"}
	}
	return nil
}

// atLeastOneIdentifier enforces the send-event rule. Unlike find/delete,
// supplying both identifiers is valid and links them on the contact.
func atLeastOneIdentifier(email, userID string) error {
	if email == "" && userID == "" {
		return &ValidationError{Message: "one of email or userId is required"}
	}
	return nil
}
