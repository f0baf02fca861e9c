package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestMetadataFor(t *testing.T) {
	meta := MetadataFor(CodeNoMatchingTier)
	if meta.HTTPStatus != http.StatusNotFound || meta.ErrNo != 1405 {
		t.Fatalf("unexpected metadata %+v", meta)
	}

	meta = MetadataFor(CodeDependency)
	if meta.HTTPStatus != http.StatusInternalServerError || meta.ErrNo != 1503 {
		t.Fatalf("repository errors must surface as 500, got %+v", meta)
	}
	if meta.Retryable {
		t.Fatal("repository errors carry no automatic retry")
	}

	meta = MetadataFor(Code("made-up"))
	if meta.ErrNo != MetadataFor(CodeInternal).ErrNo {
		t.Fatalf("unknown codes must map to internal, got %+v", meta)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("connection refused")
	err := Wrap(CodeDependency, cause, "listing tiers")

	if !stdErrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable via errors.Is")
	}
	if err.Code() != CodeDependency {
		t.Fatalf("unexpected code %s", err.Code())
	}
}

func TestAsUnwrapsNestedError(t *testing.T) {
	inner := New(CodeNotFound, "tier not found")
	wrapped := fmt.Errorf("handling request: %w", inner)

	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeNotFound {
		t.Fatalf("expected typed error through the chain, got %v", typed)
	}

	if As(stdErrors.New("plain")) != nil {
		t.Fatal("plain errors must not convert")
	}
	if As(nil) != nil {
		t.Fatal("nil must stay nil")
	}
}

func TestNilReceiverSafety(t *testing.T) {
	var err *Error
	if err.Code() != CodeInternal {
		t.Fatalf("nil receiver code = %s", err.Code())
	}
	if err.Message() != "" || err.Details() != nil {
		t.Fatal("nil receiver accessors must return zero values")
	}
}

func TestWithDetails(t *testing.T) {
	err := New(CodeValidation, "tier validation failed").WithDetails(map[string]string{"min_amount": "is required"})
	details, ok := err.Details().(map[string]string)
	if !ok || details["min_amount"] != "is required" {
		t.Fatalf("unexpected details %v", err.Details())
	}
}
