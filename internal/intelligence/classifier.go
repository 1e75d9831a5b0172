package intelligence

import (
	"vantage/pkg/domain"
)

// CoreAreas must all pass for an assessment to pass.
var CoreAreas = []string{ //nolint: gochecknoglobals
	"Financial Administration and Sustainability",
	"Disaster Preparedness",
	"Safety, Peace and Order",
}

// EssentialAreas need at least one pass.
var EssentialAreas = []string{ //nolint: gochecknoglobals
	"Social Protection and Sensitivity",
	"Business-Friendliness and Competitiveness",
	"Environmental Management",
}

// AreaPassed reports whether every indicator has a response validated as Pass.
// An area without indicators fails.
func AreaPassed(indicators []domain.Indicator, responses map[domain.IndicatorID]domain.AssessmentResponse) bool {
	if len(indicators) == 0 {
		return false
	}

	for _, indicator := range indicators {
		r, ok := responses[indicator.ID]
		if !ok || r.ValidationStatus == nil || *r.ValidationStatus != domain.ValidationStatusPass {
			return false
		}
	}

	return true
}

// Classify applies the 3+1 rule: all core areas and at least one essential
// area must pass. Areas missing from areas are reported as Failed.
func Classify(areas []domain.GovernanceArea,
	indicators []domain.Indicator,
	responses []domain.AssessmentResponse) (domain.ComplianceStatus, domain.AreaResults) {
	areaIDs := make(map[string]domain.GovernanceAreaID, len(areas))
	for _, a := range areas {
		areaIDs[a.Name] = a.ID
	}

	byArea := make(map[domain.GovernanceAreaID][]domain.Indicator)
	for _, i := range indicators {
		byArea[i.GovernanceAreaID] = append(byArea[i.GovernanceAreaID], i)
	}

	byIndicator := make(map[domain.IndicatorID]domain.AssessmentResponse, len(responses))
	for _, r := range responses {
		byIndicator[r.IndicatorID] = r
	}

	results := make(domain.AreaResults, len(CoreAreas)+len(EssentialAreas))
	passed := func(name string) bool {
		id, ok := areaIDs[name]
		ok = ok && AreaPassed(byArea[id], byIndicator)
		if ok {
			results[name] = domain.ComplianceStatusPassed
		} else {
			results[name] = domain.ComplianceStatusFailed
		}

		return ok
	}

	corePassed := true
	for _, name := range CoreAreas {
		if !passed(name) {
			corePassed = false
		}
	}

	essentialPassed := false
	for _, name := range EssentialAreas {
		if passed(name) {
			essentialPassed = true
		}
	}

	if corePassed && essentialPassed {
		return domain.ComplianceStatusPassed, results
	}

	return domain.ComplianceStatusFailed, results
}
