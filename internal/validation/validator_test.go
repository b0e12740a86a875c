package validation

import (
	"errors"
	"testing"

	"github.com/genassess/genesis-assessment-hub/internal/models"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"a@b.co", true},
		{"j@doe.com", true},
		{"a@b", false},
		{"abc", false},
		{"a b@c.de", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := Email(tt.input); got != tt.want {
				t.Errorf("Email(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"international format", "+211 920 879 329", true},
		{"local ten digits", "0920000000", true},
		{"parentheses and dashes", "(0920) 000-000", true},
		{"too few digits", "12345", false},
		{"eight digits", "12345678", false},
		{"disallowed characters", "abc-defg", false},
		{"letters mixed in", "0920 000 00x", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Phone(tt.input); got != tt.want {
				t.Errorf("Phone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestQuantity(t *testing.T) {
	tests := []struct {
		input  string
		want   int
		wantOK bool
	}{
		{"5", 5, true},
		{" 50 ", 50, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"", 0, false},
		{"ten", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Quantity(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("Quantity(%q) = (%d, %v), want (%d, %v)", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestDate(t *testing.T) {
	if !Date("2025-06-01") {
		t.Error("expected 2025-06-01 to be valid")
	}
	if Date("01/06/2025") {
		t.Error("expected 01/06/2025 to be invalid")
	}
	if Date("2025-02-30") {
		t.Error("expected 2025-02-30 to be invalid")
	}
}

func validOrder() models.OrderRequest {
	return models.OrderRequest{
		InstitutionName: "Unity Primary",
		ContactName:     "J. Doe",
		Email:           "j@doe.com",
		Phone:           "0920000000",
		ExamType:        models.ExamTypePrimary,
		Quantity:        50,
		ExamDate:        "2025-06-01",
		DeliveryDate:    "2025-05-20",
	}
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	tests := []struct {
		name       string
		mutate     func(*models.OrderRequest)
		wantFields map[string]string
	}{
		{
			name:       "valid order",
			mutate:     func(*models.OrderRequest) {},
			wantFields: nil,
		},
		{
			name:       "blank institution",
			mutate:     func(o *models.OrderRequest) { o.InstitutionName = "   " },
			wantFields: map[string]string{"institutionName": "notblank"},
		},
		{
			name:       "bad email",
			mutate:     func(o *models.OrderRequest) { o.Email = "a@b" },
			wantFields: map[string]string{"email": "simpleemail"},
		},
		{
			name:       "unknown exam type",
			mutate:     func(o *models.OrderRequest) { o.ExamType = "university" },
			wantFields: map[string]string{"examType": "examtype"},
		},
		{
			name:       "zero quantity",
			mutate:     func(o *models.OrderRequest) { o.Quantity = 0 },
			wantFields: map[string]string{"quantity": "gte"},
		},
		{
			name: "every field checked",
			mutate: func(o *models.OrderRequest) {
				*o = models.OrderRequest{}
			},
			wantFields: map[string]string{
				"institutionName": "notblank",
				"contactName":     "notblank",
				"email":           "notblank",
				"phone":           "notblank",
				"examType":        "examtype",
				"quantity":        "gte",
				"examDate":        "notblank",
				"deliveryDate":    "notblank",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			order := validOrder()
			tt.mutate(&order)

			err := v.Struct(order)
			if tt.wantFields == nil {
				if err != nil {
					t.Fatalf("Struct() error = %v, want nil", err)
				}
				return
			}

			var fe FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("Struct() error = %v, want FieldErrors", err)
			}
			if len(fe) != len(tt.wantFields) {
				t.Errorf("got %d field errors (%v), want %d", len(fe), fe, len(tt.wantFields))
			}
			for field, rule := range tt.wantFields {
				if fe[field] != rule {
					t.Errorf("field %s failed %q, want %q", field, fe[field], rule)
				}
			}
		})
	}
}

func TestValidator_ContactInquiry(t *testing.T) {
	v := New()
	err := v.Struct(models.ContactInquiry{
		Name:        "Grace",
		Institution: "Hope Secondary",
		Email:       "grace@hope.ss",
		Phone:       "12345",
		Message:     "We need papers",
	})

	var fe FieldErrors
	if !errors.As(err, &fe) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if fe["phone"] != "phone" {
		t.Errorf("phone rule = %q, want phone", fe["phone"])
	}
}
