package domain

// BarangayID uniquely identifies a barangay.
type BarangayID int64

// Barangay is the smallest administrative division being assessed.
type Barangay struct {
	ID   BarangayID `json:"id"`
	Name string     `json:"name"`
}

// GovernanceAreaID uniquely identifies a governance area.
type GovernanceAreaID int64

// AreaType classifies governance areas for the SGLGB "3+1" rule.
type AreaType string

const (
	// AreaTypeCore areas must all pass.
	AreaTypeCore AreaType = "Core"
	// AreaTypeEssential areas need at least one pass.
	AreaTypeEssential AreaType = "Essential"
)

// GovernanceArea groups indicators under one SGLGB area.
type GovernanceArea struct {
	ID       GovernanceAreaID `json:"id"`
	Name     string           `json:"name"`
	AreaType AreaType         `json:"area_type"`
}

// IndicatorID uniquely identifies an indicator.
type IndicatorID int64

// FormSchema is the JSON-schema-like document describing an indicator's form.
type FormSchema map[string]any

// Indicator is a single compliance requirement that BLGUs respond to.
type Indicator struct {
	ID               IndicatorID      `json:"id"`
	Name             string           `json:"name"`
	Description      string           `json:"description,omitempty"`
	FormSchema       FormSchema       `json:"form_schema"`
	GovernanceAreaID GovernanceAreaID `json:"governance_area_id"`
	// ParentID is set for sub-indicators.
	ParentID *IndicatorID `json:"parent_id,omitempty"`
}
