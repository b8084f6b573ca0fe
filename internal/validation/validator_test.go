// Kinotheca - Movie Catalog and Recommendation Service
// Copyright 2026 Kinotheca contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/kinotheca/kinotheca

package validation

import (
	"testing"
)

type listRequest struct {
	Page   int    `validate:"min=0"`
	Size   int    `validate:"min=1,max=100"`
	Rating string `validate:"omitempty,movie_rating"`
	Order  string `validate:"omitempty,oneof=ASC DSC"`
}

func TestValidateStructPasses(t *testing.T) {
	req := listRequest{Page: 0, Size: 12, Rating: "8.4", Order: "ASC"}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStructOmitsEmptyOptional(t *testing.T) {
	req := listRequest{Page: 3, Size: 20}
	if err := ValidateStruct(&req); err != nil {
		t.Fatalf("expected no error for empty optional fields, got %v", err)
	}
}

func TestMovieRatingValidator(t *testing.T) {
	tests := []struct {
		rating string
		valid  bool
	}{
		{"0", true},
		{"0.0", true},
		{"10", true},
		{"8.4", true},
		{"10.1", false},
		{"-1", false},
		{"abc", false},
	}

	for _, tt := range tests {
		req := listRequest{Page: 0, Size: 12, Rating: tt.rating}
		err := ValidateStruct(&req)
		if tt.valid && err != nil {
			t.Errorf("rating %q: expected valid, got %v", tt.rating, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("rating %q: expected validation error", tt.rating)
		}
	}
}

func TestToAPIErrorSingleField(t *testing.T) {
	req := listRequest{Page: -1, Size: 12}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}

	apiErr := err.ToAPIError()
	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "Page" {
		t.Errorf("Details[field] = %v, want Page", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultipleFields(t *testing.T) {
	req := listRequest{Page: -1, Size: 0, Order: "SIDEWAYS"}
	err := ValidateStruct(&req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if len(err.Errors()) != 3 {
		t.Fatalf("expected 3 field errors, got %d", len(err.Errors()))
	}

	apiErr := err.ToAPIError()
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has unexpected type %T", apiErr.Details["fields"])
	}
	if len(fields) != 3 {
		t.Errorf("expected 3 field entries, got %d", len(fields))
	}
}
