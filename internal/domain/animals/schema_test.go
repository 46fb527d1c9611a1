package animals

import (
	"errors"
	"strings"
	"testing"
)

func TestValidate_CompleteDocument(t *testing.T) {
	f := AnimalFields{Name: "Simba", Species: "Lion", Age: intp(3)}
	if err := f.Validate(); err != nil {
		t.Fatalf("expected valid document, got %v", err)
	}
}

func TestValidate_ZeroAgePresent(t *testing.T) {
	// required exige presencia del campo, no valor distinto de cero
	f := AnimalFields{Name: "Nemo", Species: "Fish", Age: intp(0)}
	if err := f.Validate(); err != nil {
		t.Fatalf("expected age 0 valid, got %v", err)
	}
}

func TestValidate_MissingFields(t *testing.T) {
	cases := []struct {
		in    AnimalFields
		field string
	}{
		{AnimalFields{Species: "Lion", Age: intp(3)}, "name"},
		{AnimalFields{Name: "Simba", Age: intp(3)}, "species"},
		{AnimalFields{Name: "Simba", Species: "Lion"}, "age"},
	}

	for _, tc := range cases {
		err := tc.in.Validate()
		if err == nil {
			t.Fatalf("expected error for missing %s", tc.field)
		}

		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("expected *ValidationError, got %T", err)
		}
		if len(verr.Fields) != 1 || verr.Fields[0].Field != tc.field {
			t.Fatalf("expected single error on %s, got %#v", tc.field, verr.Fields)
		}
	}
}

func TestValidate_AllFieldsMissing(t *testing.T) {
	err := AnimalFields{}.Validate()

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(verr.Fields) != 3 {
		t.Fatalf("expected 3 field errors, got %#v", verr.Fields)
	}

	// el mensaje agrega el detalle por campo (única vía hacia el cliente)
	msg := verr.Error()
	for _, want := range []string{"name is required", "species is required", "age is required"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}
