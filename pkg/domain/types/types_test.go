package types_test

import (
	"testing"

	"github.com/osgb-lab/riskdesk/pkg/domain/types"
)

func TestToolID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.ToolID
		wantErr bool
	}{
		{"valid lowercase", "office-safety", false},
		{"valid single word", "construction", false},
		{"valid with numbers", "tool-2024", false},
		{"empty", "", true},
		{"uppercase", "Office-Safety", true},
		{"spaces", "office safety", true},
		{"underscore", "office_safety", true},
		{"starting with hyphen", "-office", true},
		{"ending with hyphen", "office-", true},
		{"double hyphen", "office--safety", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("ToolID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestQuestionID_Validate(t *testing.T) {
	tests := []struct {
		name    string
		id      types.QuestionID
		wantErr bool
	}{
		{"valid lowercase", "fire-exits-marked", false},
		{"valid single word", "ventilation", false},
		{"empty", "", true},
		{"uppercase", "Fire-Exits", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.id.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("QuestionID.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseScoringMethod(t *testing.T) {
	tests := []struct {
		input   string
		want    types.ScoringMethod
		wantErr bool
	}{
		{"FINE_KINNEY", types.ScoringMethodFineKinney, false},
		{"L_MATRIX", types.ScoringMethodLMatrix, false},
		{"MATRIX", "", true},
		{"fine_kinney", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := types.ParseScoringMethod(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseScoringMethod(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseScoringMethod(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestScoringMethod_Normalize(t *testing.T) {
	if got := types.ScoringMethod("").Normalize(); got != types.ScoringMethodFineKinney {
		t.Errorf("empty method should normalize to FINE_KINNEY, got %v", got)
	}
	if got := types.ScoringMethodLMatrix.Normalize(); got != types.ScoringMethodLMatrix {
		t.Errorf("L_MATRIX should stay L_MATRIX, got %v", got)
	}
}

func TestParseResponse(t *testing.T) {
	for _, r := range types.AllResponses() {
		got, err := types.ParseResponse(r.String())
		if err != nil {
			t.Errorf("ParseResponse(%q) unexpected error: %v", r, err)
		}
		if got != r {
			t.Errorf("ParseResponse(%q) = %v", r, got)
		}
	}

	if _, err := types.ParseResponse("MAYBE"); err == nil {
		t.Error("ParseResponse should reject unknown values")
	}
}

func TestHazardClass_ValidityYears(t *testing.T) {
	tests := []struct {
		class types.HazardClass
		want  int
	}{
		{types.HazardClassHigh, 2},
		{types.HazardClassMedium, 4},
		{types.HazardClassLow, 6},
		{types.HazardClass("UNKNOWN"), 6},
	}

	for _, tt := range tests {
		if got := tt.class.ValidityYears(); got != tt.want {
			t.Errorf("%s.ValidityYears() = %d, want %d", tt.class, got, tt.want)
		}
	}
}

func TestMitigationStrategy_DisplayName(t *testing.T) {
	if got := types.StrategyPPE.DisplayName(); got != "KKD Kullanımı" {
		t.Errorf("StrategyPPE.DisplayName() = %q", got)
	}
	if got := types.MitigationStrategy("CUSTOM").DisplayName(); got != "CUSTOM" {
		t.Errorf("unknown strategy should display as-is, got %q", got)
	}
}
