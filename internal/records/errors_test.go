package records

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKinds(t *testing.T) {
	ve := &ValidationError{Msg: "winner and loser must be different players"}
	if !IsValidation(ve) {
		t.Error("ValidationError not recognized")
	}
	if IsNotFound(ve) {
		t.Error("ValidationError misclassified as not-found")
	}

	nf := &NotFoundError{Msg: "season not found"}
	if !IsNotFound(nf) {
		t.Error("NotFoundError not recognized")
	}
	if IsValidation(nf) {
		t.Error("NotFoundError misclassified as validation")
	}

	store := fmt.Errorf("insert match: %w", errors.New("connection reset"))
	if IsValidation(store) || IsNotFound(store) {
		t.Error("store error misclassified")
	}
}

func TestErrorKindsSurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("record command: %w", &NotFoundError{Msg: "season not found"})
	if !IsNotFound(wrapped) {
		t.Error("wrapped NotFoundError not recognized")
	}
}

func TestAdminOnlyIsValidation(t *testing.T) {
	if !IsValidation(ErrAdminOnly) {
		t.Error("ErrAdminOnly must be a validation kind")
	}
	if !errors.Is(errAdminOnly(), ErrAdminOnly) {
		t.Error("errAdminOnly must return the shared sentinel")
	}
}
