package apierr_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/vietct/orderflow-client/internal/apierr"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want apierr.Kind
	}{
		{"nil", nil, apierr.KindNone},
		{"not_found", apierr.ErrNotFound, apierr.KindNotFound},
		{"wrapped_not_found", fmt.Errorf("get order: %w", apierr.ErrNotFound), apierr.KindNotFound},
		{"server", &apierr.ServerError{StatusCode: 500, Message: "boom"}, apierr.KindServer},
		{"network", &apierr.NetworkError{Err: errors.New("conn refused")}, apierr.KindNetwork},
		{"validation", &apierr.ValidationError{Message: "Enter an order ID."}, apierr.KindValidation},
		{"canceled", context.Canceled, apierr.KindNetwork},
		{"deadline", context.DeadlineExceeded, apierr.KindNetwork},
		{"unknown_defaults_to_server", errors.New("weird"), apierr.KindServer},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := apierr.KindOf(tt.err); got != tt.want {
				t.Fatalf("KindOf(%v) = %q, want %q", tt.err, got, tt.want)
			}
		})
	}
}

func TestMessage(t *testing.T) {
	t.Parallel()

	if got := apierr.Message(&apierr.ServerError{StatusCode: 503, Message: "Out of stock"}); got != "Out of stock" {
		t.Fatalf("server message: got %q", got)
	}
	if got := apierr.Message(&apierr.ValidationError{Message: "Enter an order ID."}); got != "Enter an order ID." {
		t.Fatalf("validation message: got %q", got)
	}
	if got := apierr.Message(nil); got != "" {
		t.Fatalf("nil message: got %q", got)
	}
}

func TestGenericMessage(t *testing.T) {
	t.Parallel()

	if got := apierr.GenericMessage(502); got != "Request failed with status 502" {
		t.Fatalf("GenericMessage(502) = %q", got)
	}
}
