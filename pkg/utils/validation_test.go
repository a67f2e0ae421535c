package utils

import (
	"errors"
	"io"
	"testing"
)

type sampleBudget struct {
	Amount float64 `json:"amount" binding:"gte=0"`
}

type sampleRequest struct {
	Title    string        `json:"title" binding:"required"`
	Category string        `json:"category" binding:"required,oneof=adventure culture"`
	Rating   *float64      `json:"rating" binding:"omitempty,gte=0,lte=5"`
	Budget   *sampleBudget `json:"estimatedBudget"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := ValidateStruct(sampleRequest{Title: "x", Category: "culture"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("reports json field names", func(t *testing.T) {
		bad := 7.0
		err := ValidateStruct(sampleRequest{Category: "beach", Rating: &bad})

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected ValidationError, got %T", err)
		}
		got := map[string]string{}
		for _, f := range verr.Fields {
			got[f.Field] = f.Message
		}
		if got["title"] != "is required" {
			t.Errorf("title message = %q", got["title"])
		}
		if got["category"] != "must be one of: adventure, culture" {
			t.Errorf("category message = %q", got["category"])
		}
		if got["rating"] != "must be at most 5" {
			t.Errorf("rating message = %q", got["rating"])
		}
	})

	t.Run("nested path", func(t *testing.T) {
		err := ValidateStruct(sampleRequest{Title: "x", Category: "culture", Budget: &sampleBudget{Amount: -1}})
		var verr *ValidationError
		if !errors.As(err, &verr) || len(verr.Fields) != 1 {
			t.Fatalf("expected one field error, got %v", err)
		}
		if verr.Fields[0].Field != "estimatedBudget.amount" {
			t.Errorf("field = %q, want estimatedBudget.amount", verr.Fields[0].Field)
		}
	})
}

func TestBindingError(t *testing.T) {
	t.Run("empty body", func(t *testing.T) {
		err := BindingError(io.EOF)
		if !IsValidation(err) {
			t.Fatalf("expected validation error, got %v", err)
		}
		if err.Error() != "request body is required" {
			t.Errorf("message = %q", err.Error())
		}
	})

	t.Run("validation error passes through", func(t *testing.T) {
		in := NewFieldError("title", "is required")
		if got := BindingError(in); got != error(in) {
			t.Errorf("expected same error back, got %v", got)
		}
	})

	t.Run("nil", func(t *testing.T) {
		if BindingError(nil) != nil {
			t.Error("expected nil")
		}
	})
}

func TestIndexOutOfRange(t *testing.T) {
	err := IndexOutOfRange("destination", 5, 2)
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Error("expected ErrIndexOutOfRange in chain")
	}
	if !IsValidation(err) {
		t.Error("expected a validation error")
	}
	want := "invalid destination index 5: index out of range [0, 2)"
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}
