package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusCodes(t *testing.T) {
	cause := errors.New("cause")
	tests := []struct {
		err  error
		want int
	}{
		{BadRequestError(cause, "bad"), http.StatusBadRequest},
		{UnAuthorizedError(cause, "who"), http.StatusUnauthorized},
		{ForbiddenError(cause, "no"), http.StatusForbidden},
		{ResourceNotFoundError(cause, "gone"), http.StatusNotFound},
		{NotSupportedError(cause, "nope"), http.StatusMethodNotAllowed},
		{ConflictError(cause, "again"), http.StatusConflict},
		{LockedError(cause, "busy"), http.StatusLocked},
		{DependencyFailureError(cause, "upstream"), http.StatusBadGateway},
		{GeneralError(cause), http.StatusInternalServerError},
		{InternalError(cause, "no providers available"), http.StatusInternalServerError},
		{TimeoutError(cause, "slow"), http.StatusGatewayTimeout},
		{&ServiceError{Category: CategoryNoError}, http.StatusInternalServerError},
		{&ServiceError{Category: Category(99)}, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		var svcErr *ServiceError
		if !errors.As(tt.err, &svcErr) {
			t.Fatalf("expected ServiceError, got %T", tt.err)
		}
		if got := svcErr.StatusCode(); got != tt.want {
			t.Errorf("%s: expected %d, got %d", svcErr.Category, tt.want, got)
		}
	}
}

func TestServiceError_WrapsCause(t *testing.T) {
	err := fmt.Errorf("handler: %w", DependencyFailureError(context.DeadlineExceeded, "Provider yellowcard failed"))

	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected cause to be reachable")
	}
	if !Is(err, CategoryDependencyFailure) || Is(err, CategoryDataError) {
		t.Fatal("unexpected category match")
	}
	if err.Error() != "handler: context deadline exceeded" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	noCause := GeneralError(nil)
	if noCause.Error() != "internal server error" {
		t.Fatalf("unexpected fallback %q", noCause.Error())
	}
	if (ServiceError{Message: "Internal Server Error"}).Is(errors.New("Internal Server Error")) != true {
		t.Fatal("expected message equality")
	}
}

func TestIsInternalError(t *testing.T) {
	if IsInternalError(BadRequestError(nil, "bad")) || IsInternalError(ConflictError(nil, "dup")) {
		t.Fatal("client errors are not internal")
	}
	for _, err := range []error{DependencyFailureError(nil, "x"), GeneralError(nil), TimeoutError(nil, "x"), errors.New("raw")} {
		if !IsInternalError(err) {
			t.Fatalf("expected %v to be internal", err)
		}
	}
}

func TestCategory_String(t *testing.T) {
	if CategoryLocked.String() != "CategoryLocked" || Category(42).String() != "CategoryGeneralError" {
		t.Fatal("unexpected category names")
	}
}
