package net

import (
	"context"
	"testing"
)

func TestRequestID_RoundTrip(t *testing.T) {
	ctx := WithRequest(context.Background(), "rid-42")
	if got := RequestID(ctx); got != "rid-42" {
		t.Fatalf("RequestID = %q, want rid-42", got)
	}
	if got := RequestID(WithRequest(context.Background(), "")); got != "" {
		t.Fatalf("empty id should not be stored, got %q", got)
	}
}
