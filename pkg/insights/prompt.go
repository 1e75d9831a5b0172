package insights

import (
	"encoding/json"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"vantage/pkg/domain"
)

// BuildPrompt renders req into the instruction sent to the model.
func BuildPrompt(req Request) string {
	var b strings.Builder

	barangay := req.BarangayName
	if barangay == "" {
		barangay = "Unknown"
	}
	status := string(req.FinalComplianceStatus)
	if status == "" {
		status = "Not classified"
	}

	b.WriteString("You are an expert in Philippine local governance and the Seal of Good Local Governance for ")
	b.WriteString("Barangays (SGLGB).\n\n")

	b.WriteString("BARANGAY INFORMATION\n")
	fmt.Fprintf(&b, "- Barangay: %s\n", barangay)
	fmt.Fprintf(&b, "- Assessment Year: %d\n", req.AssessmentYear)
	fmt.Fprintf(&b, "- Overall Compliance Status: %s\n\n", status)

	b.WriteString("GOVERNANCE AREA RESULTS\n")
	areas := make([]string, 0, len(req.AreaResults))
	for area := range req.AreaResults {
		areas = append(areas, area)
	}
	slices.Sort(areas)
	for _, area := range areas {
		fmt.Fprintf(&b, "- %s: %s\n", area, req.AreaResults[area])
	}
	b.WriteString("\n")

	b.WriteString("FAILED INDICATORS\n")
	if len(req.Findings) == 0 {
		b.WriteString("- None\n")
	}
	for _, f := range req.Findings {
		fmt.Fprintf(&b, "- [%s] %s (%s)\n", f.Area, f.Indicator, f.Status)
		if f.Description != "" {
			fmt.Fprintf(&b, "  Description: %s\n", f.Description)
		}
		for _, fb := range f.Feedback {
			fmt.Fprintf(&b, "  Assessor Feedback: %s\n", fb)
		}
	}
	b.WriteString("\n")

	b.WriteString("TASK\n")
	b.WriteString("1. Summarise the barangay's performance and the likely root causes of the failed indicators.\n")
	b.WriteString("2. Give concrete, actionable recommendations to reach compliance.\n")
	b.WriteString("3. List the capacity development needs of the barangay officials and staff.\n\n")
	b.WriteString("Respond with a single JSON object and nothing else, using exactly these keys:\n")
	b.WriteString(`{"summary": "string", "recommendations": ["string"], "capacity_development_needs": ["string"]}`)
	b.WriteString("\n")

	return b.String()
}

var codeBlock = regexp.MustCompile("(?s)```(?:json)?\\s*(\\{.*?\\})\\s*```") //nolint: gochecknoglobals

// ParseResponse extracts insights from the model's text output. The JSON
// object may be wrapped in a markdown code block.
func ParseResponse(text string) (*domain.Insights, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, fmt.Errorf("empty or invalid response from model")
	}
	if m := codeBlock.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	var missing []string
	for _, key := range []string{"summary", "recommendations", "capacity_development_needs"} {
		if _, ok := raw[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("model response is missing required keys: %s", strings.Join(missing, ", "))
	}

	var out domain.Insights
	if err := json.Unmarshal([]byte(text), &out); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	return &out, nil
}
