package insights_test

import (
	"strings"
	"testing"

	"vantage/pkg/domain"
	"vantage/pkg/insights"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt(t *testing.T) {
	prompt := insights.BuildPrompt(insights.Request{
		BarangayName:          "San Isidro",
		AssessmentYear:        2025,
		FinalComplianceStatus: domain.ComplianceStatusFailed,
		AreaResults: domain.AreaResults{
			"Disaster Preparedness":                       domain.ComplianceStatusFailed,
			"Financial Administration and Sustainability": domain.ComplianceStatusPassed,
		},
		Findings: []insights.Finding{{
			Area:        "Disaster Preparedness",
			Indicator:   "BDRRM plan",
			Description: "Approved BDRRM plan",
			Status:      domain.ValidationStatusFail,
			Feedback:    []string{"Plan is not signed"},
		}},
	})

	for _, want := range []string{
		"BARANGAY INFORMATION",
		"Barangay: San Isidro",
		"Assessment Year: 2025",
		"Overall Compliance Status: Failed",
		"FAILED INDICATORS",
		"[Disaster Preparedness] BDRRM plan (Fail)",
		"Assessor Feedback: Plan is not signed",
		"TASK",
		"capacity_development_needs",
		"JSON",
	} {
		require.Contains(t, prompt, want)
	}
	// areas are listed in a stable order
	require.Less(t,
		strings.Index(prompt, "- Disaster Preparedness: Failed"),
		strings.Index(prompt, "- Financial Administration and Sustainability: Passed"))
}

func TestBuildPrompt_UnknownBarangay(t *testing.T) {
	prompt := insights.BuildPrompt(insights.Request{AssessmentYear: 2025})
	require.Contains(t, prompt, "Barangay: Unknown")
	require.Contains(t, prompt, "- None")
}

func TestParseResponse(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *domain.Insights
		wantErr string
	}{
		{
			name: "plain json",
			text: `{"summary":"S","recommendations":["r1","r2"],"capacity_development_needs":["c"]}`,
			want: &domain.Insights{Summary: "S", Recommendations: []string{"r1", "r2"}, CapacityDevelopmentNeeds: []string{"c"}},
		},
		{
			name: "code block",
			text: "Here's the analysis:\n\n```json\n{\n  \"summary\": \"Summary text\",\n  \"recommendations\": [\"Rec 1\"],\n" +
				"  \"capacity_development_needs\": [\"Need 1\"]\n}\n```",
			want: &domain.Insights{Summary: "Summary text", Recommendations: []string{"Rec 1"}, CapacityDevelopmentNeeds: []string{"Need 1"}},
		},
		{name: "empty", text: "  ", wantErr: "empty or invalid response"},
		{name: "not json", text: "Invalid non-JSON response", wantErr: "failed to parse"},
		{name: "missing keys", text: `{"summary":"Test"}`, wantErr: "missing required keys: recommendations, capacity_development_needs"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := insights.ParseResponse(tt.text)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
