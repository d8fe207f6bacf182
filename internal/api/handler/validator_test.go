package handler

import (
	"errors"
	"testing"
)

func TestValidator_FieldNamesFollowJSONTags(t *testing.T) {
	v := NewValidator()

	err := v.Validate(&recordSaleRequest{
		Customer: "Carlos",
		Products: []lineItemRequest{{Name: "Arroz", UnitPrice: 0, Quantity: 1}},
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0] != "produtos[0].preco is required" {
		t.Fatalf("unexpected fields: %v", ve.Fields)
	}
}

func TestValidator_Valid(t *testing.T) {
	v := NewValidator()
	if err := v.Validate(&loginRequest{Email: "a@b.c", Password: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
