package loops

import "testing"

func TestExactlyOneIdentifier(t *testing.T) {
	if err := exactlyOneIdentifier("a@example.com", ""); err != nil {
		t.Fatalf("email only should pass, got %v", err)
	}
	if err := exactlyOneIdentifier("", "u1"); err != nil {
		t.Fatalf("userId only should pass, got %v", err)
	}
	if err := exactlyOneIdentifier("a@example.com", "u1"); err == nil {
		t.Fatal("both identifiers should fail")
	}
	if err := exactlyOneIdentifier("", ""); err == nil {
		t.Fatal("neither identifier should fail")
	}
}

func TestAtLeastOneIdentifier(t *testing.T) {
	if err := atLeastOneIdentifier("a@example.com", "u1"); err != nil {
		t.Fatalf("both identifiers should pass, got %v", err)
	}
	if err := atLeastOneIdentifier("", ""); err == nil {
		t.Fatal("neither identifier should fail")
	}
}
