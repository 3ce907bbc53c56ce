package validate

import (
	"reflect"
	"testing"
)

func TestFraudIndicators(t *testing.T) {
	tests := []struct {
		description string
		want        []string
	}{
		{"Normal accident description", []string{}},
		{"This looks like fraud to me", []string{"fraud"}},
		{"Staged accident with suspicious details", []string{"staged", "suspicious"}},
		{"Inconsistent and fake story", []string{"inconsistent", "fake"}},
		{"Rear-end collision, possibly staged for insurance money", []string{"staged"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := FraudIndicators(tt.description)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("FraudIndicators(%q) = %v, want %v", tt.description, got, tt.want)
		}
	}
}

func TestFraudIndicators_CaseInsensitive(t *testing.T) {
	got := FraudIndicators("STAGED collision, details look SUSPICIOUS")
	want := []string{"staged", "suspicious"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFraudIndicators_KeywordOrderNotTextOrder(t *testing.T) {
	// "suspicious" appears before "fraud" in the text; output follows the
	// keyword-list order.
	got := FraudIndicators("suspicious story, likely fraud")
	want := []string{"fraud", "suspicious"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
