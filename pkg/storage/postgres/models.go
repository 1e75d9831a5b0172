package postgres

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"vantage/pkg/domain"
)

type PgUser struct {
	ID          int64          `db:"id"           goqu:"skipinsert"`
	Email       string         `db:"email"`
	Name        string         `db:"name"`
	PhoneNumber sql.NullString `db:"phone_number"`

	Role             int16         `db:"role"`
	GovernanceAreaID sql.NullInt64 `db:"governance_area_id"`
	BarangayID       sql.NullInt64 `db:"barangay_id"`

	HashedPassword     string `db:"hashed_password"`
	MustChangePassword bool   `db:"must_change_password"`
	IsActive           bool   `db:"is_active"`
	IsSuperuser        bool   `db:"is_superuser"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	u := &domain.User{
		ID:                 domain.UserID(p.ID),
		Email:              p.Email,
		Name:               p.Name,
		PhoneNumber:        p.PhoneNumber.String,
		Role:               domain.UserRole(p.Role),
		HashedPassword:     p.HashedPassword,
		MustChangePassword: p.MustChangePassword,
		IsActive:           p.IsActive,
		IsSuperuser:        p.IsSuperuser,
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt.Time,
	}
	if p.GovernanceAreaID.Valid {
		id := domain.GovernanceAreaID(p.GovernanceAreaID.Int64)
		u.GovernanceAreaID = &id
	}
	if p.BarangayID.Valid {
		id := domain.BarangayID(p.BarangayID.Int64)
		u.BarangayID = &id
	}

	return u
}

func (p *PgUser) FromDomain(u domain.User) {
	*p = PgUser{
		ID:                 int64(u.ID),
		Email:              u.Email,
		Name:               u.Name,
		PhoneNumber:        sql.NullString{String: u.PhoneNumber, Valid: u.PhoneNumber != ""},
		Role:               int16(u.Role), //nolint: gosec
		HashedPassword:     u.HashedPassword,
		MustChangePassword: u.MustChangePassword,
		IsActive:           u.IsActive,
		IsSuperuser:        u.IsSuperuser,
		CreatedAt:          u.CreatedAt,
	}
	if u.GovernanceAreaID != nil {
		p.GovernanceAreaID = sql.NullInt64{Int64: int64(*u.GovernanceAreaID), Valid: true}
	}
	if u.BarangayID != nil {
		p.BarangayID = sql.NullInt64{Int64: int64(*u.BarangayID), Valid: true}
	}
}

type PgBarangay struct {
	ID   int64  `db:"id"   goqu:"skipinsert"`
	Name string `db:"name"`
}

func (p *PgBarangay) ToDomain() domain.Barangay {
	return domain.Barangay{ID: domain.BarangayID(p.ID), Name: p.Name}
}

type PgGovernanceArea struct {
	ID       int64  `db:"id"        goqu:"skipinsert"`
	Name     string `db:"name"`
	AreaType string `db:"area_type"`
}

func (p *PgGovernanceArea) ToDomain() domain.GovernanceArea {
	return domain.GovernanceArea{
		ID:       domain.GovernanceAreaID(p.ID),
		Name:     p.Name,
		AreaType: domain.AreaType(p.AreaType),
	}
}

type PgIndicator struct {
	ID               int64          `db:"id"                 goqu:"skipinsert"`
	Name             string         `db:"name"`
	Description      sql.NullString `db:"description"`
	FormSchema       []byte         `db:"form_schema"`
	GovernanceAreaID int64          `db:"governance_area_id"`
	ParentID         sql.NullInt64  `db:"parent_id"`
}

func (p *PgIndicator) ToDomain() (*domain.Indicator, error) {
	schema := domain.FormSchema{}
	if len(p.FormSchema) > 0 {
		if err := json.Unmarshal(p.FormSchema, &schema); err != nil {
			return nil, fmt.Errorf("could not unmarshal form schema: %w", err)
		}
	}

	ind := &domain.Indicator{
		ID:               domain.IndicatorID(p.ID),
		Name:             p.Name,
		Description:      p.Description.String,
		FormSchema:       schema,
		GovernanceAreaID: domain.GovernanceAreaID(p.GovernanceAreaID),
	}
	if p.ParentID.Valid {
		id := domain.IndicatorID(p.ParentID.Int64)
		ind.ParentID = &id
	}

	return ind, nil
}

func (p *PgIndicator) FromDomain(ind domain.Indicator) error {
	schema := ind.FormSchema
	if schema == nil {
		schema = domain.FormSchema{}
	}
	b, err := json.Marshal(schema)
	if err != nil {
		return fmt.Errorf("could not marshal form schema: %w", err)
	}

	*p = PgIndicator{
		ID:               int64(ind.ID),
		Name:             ind.Name,
		Description:      sql.NullString{String: ind.Description, Valid: ind.Description != ""},
		FormSchema:       b,
		GovernanceAreaID: int64(ind.GovernanceAreaID),
	}
	if ind.ParentID != nil {
		p.ParentID = sql.NullInt64{Int64: int64(*ind.ParentID), Valid: true}
	}

	return nil
}

type PgAssessment struct {
	ID          int64  `db:"id"           goqu:"skipinsert"`
	Status      string `db:"status"`
	BLGUUserID  int64  `db:"blgu_user_id"`
	ReworkCount int    `db:"rework_count"`

	SubmittedAt sql.NullTime `db:"submitted_at" goqu:"skipinsert"`
	ValidatedAt sql.NullTime `db:"validated_at" goqu:"skipinsert"`

	FinalComplianceStatus sql.NullString `db:"final_compliance_status" goqu:"skipinsert"`
	AreaResults           []byte         `db:"area_results"            goqu:"skipinsert"`
	AIRecommendations     []byte         `db:"ai_recommendations"      goqu:"skipinsert"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgAssessment) ToDomain() (*domain.Assessment, error) {
	a := &domain.Assessment{
		ID:          domain.AssessmentID(p.ID),
		Status:      domain.AssessmentStatus(p.Status),
		BLGUUserID:  domain.UserID(p.BLGUUserID),
		ReworkCount: p.ReworkCount,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.SubmittedAt.Valid {
		t := p.SubmittedAt.Time
		a.SubmittedAt = &t
	}
	if p.ValidatedAt.Valid {
		t := p.ValidatedAt.Time
		a.ValidatedAt = &t
	}
	if p.FinalComplianceStatus.Valid {
		s := domain.ComplianceStatus(p.FinalComplianceStatus.String)
		a.FinalComplianceStatus = &s
	}
	if len(p.AreaResults) > 0 {
		if err := json.Unmarshal(p.AreaResults, &a.AreaResults); err != nil {
			return nil, fmt.Errorf("could not unmarshal area results: %w", err)
		}
	}
	if len(p.AIRecommendations) > 0 {
		var insights domain.Insights
		if err := json.Unmarshal(p.AIRecommendations, &insights); err != nil {
			return nil, fmt.Errorf("could not unmarshal ai recommendations: %w", err)
		}
		a.AIRecommendations = &insights
	}

	return a, nil
}

// PgAssessmentListItem is an assessment row joined with user and barangay names.
type PgAssessmentListItem struct {
	PgAssessment

	BarangayName sql.NullString `db:"barangay_name"`
	BLGUUserName sql.NullString `db:"blgu_user_name"`
}

type PgResponse struct {
	ID               int64          `db:"id"                goqu:"skipinsert"`
	ResponseData     []byte         `db:"response_data"`
	IsCompleted      bool           `db:"is_completed"`
	RequiresRework   bool           `db:"requires_rework"`
	ValidationStatus sql.NullString `db:"validation_status"`
	AssessmentID     int64          `db:"assessment_id"`
	IndicatorID      int64          `db:"indicator_id"`
	CreatedAt        time.Time      `db:"created_at"        goqu:"skipinsert"`
	UpdatedAt        time.Time      `db:"updated_at"        goqu:"skipinsert"`
}

func (p *PgResponse) ToDomain() (*domain.AssessmentResponse, error) {
	data := domain.ResponseData{}
	if len(p.ResponseData) > 0 {
		if err := json.Unmarshal(p.ResponseData, &data); err != nil {
			return nil, fmt.Errorf("could not unmarshal response data: %w", err)
		}
	}
	if data == nil {
		data = domain.ResponseData{}
	}

	r := &domain.AssessmentResponse{
		ID:             domain.ResponseID(p.ID),
		ResponseData:   data,
		IsCompleted:    p.IsCompleted,
		RequiresRework: p.RequiresRework,
		AssessmentID:   domain.AssessmentID(p.AssessmentID),
		IndicatorID:    domain.IndicatorID(p.IndicatorID),
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
	if p.ValidationStatus.Valid {
		s := domain.ValidationStatus(p.ValidationStatus.String)
		r.ValidationStatus = &s
	}

	return r, nil
}

func (p *PgResponse) FromDomain(r domain.AssessmentResponse) error {
	data, err := marshalResponseData(r.ResponseData)
	if err != nil {
		return err
	}

	*p = PgResponse{
		ID:             int64(r.ID),
		ResponseData:   data,
		IsCompleted:    r.IsCompleted,
		RequiresRework: r.RequiresRework,
		AssessmentID:   int64(r.AssessmentID),
		IndicatorID:    int64(r.IndicatorID),
	}
	if r.ValidationStatus != nil {
		p.ValidationStatus = sql.NullString{String: string(*r.ValidationStatus), Valid: true}
	}

	return nil
}

func marshalResponseData(data domain.ResponseData) ([]byte, error) {
	if data == nil {
		data = domain.ResponseData{}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("could not marshal response data: %w", err)
	}

	return b, nil
}

type PgMOV struct {
	ID               int64     `db:"id"                goqu:"skipinsert"`
	Filename         string    `db:"filename"`
	OriginalFilename string    `db:"original_filename"`
	FileSize         int64     `db:"file_size"`
	ContentType      string    `db:"content_type"`
	StoragePath      string    `db:"storage_path"`
	Status           string    `db:"status"`
	ResponseID       int64     `db:"response_id"`
	UploadedAt       time.Time `db:"uploaded_at"       goqu:"skipinsert"`
}

func (p *PgMOV) ToDomain() domain.MOV {
	return domain.MOV{
		ID:               domain.MOVID(p.ID),
		Filename:         p.Filename,
		OriginalFilename: p.OriginalFilename,
		FileSize:         p.FileSize,
		ContentType:      p.ContentType,
		StoragePath:      p.StoragePath,
		Status:           domain.MOVStatus(p.Status),
		ResponseID:       domain.ResponseID(p.ResponseID),
		UploadedAt:       p.UploadedAt,
	}
}

func (p *PgMOV) FromDomain(m domain.MOV) {
	status := m.Status
	if status == "" {
		status = domain.MOVStatusUploaded
	}

	*p = PgMOV{
		ID:               int64(m.ID),
		Filename:         m.Filename,
		OriginalFilename: m.OriginalFilename,
		FileSize:         m.FileSize,
		ContentType:      m.ContentType,
		StoragePath:      m.StoragePath,
		Status:           string(status),
		ResponseID:       int64(m.ResponseID),
	}
}

type PgFeedbackComment struct {
	ID             int64         `db:"id"               goqu:"skipinsert"`
	Comment        string        `db:"comment"`
	CommentType    string        `db:"comment_type"`
	IsInternalNote bool          `db:"is_internal_note"`
	ResponseID     int64         `db:"response_id"`
	AssessorID     sql.NullInt64 `db:"assessor_id"`
	CreatedAt      time.Time     `db:"created_at"       goqu:"skipinsert"`
}

func (p *PgFeedbackComment) ToDomain() domain.FeedbackComment {
	c := domain.FeedbackComment{
		ID:             domain.FeedbackCommentID(p.ID),
		Comment:        p.Comment,
		CommentType:    domain.CommentType(p.CommentType),
		IsInternalNote: p.IsInternalNote,
		ResponseID:     domain.ResponseID(p.ResponseID),
		CreatedAt:      p.CreatedAt,
	}
	if p.AssessorID.Valid {
		id := domain.UserID(p.AssessorID.Int64)
		c.AssessorID = &id
	}

	return c
}

func (p *PgFeedbackComment) FromDomain(c domain.FeedbackComment) {
	commentType := c.CommentType
	if commentType == "" {
		commentType = domain.CommentTypeGeneral
	}

	*p = PgFeedbackComment{
		ID:             int64(c.ID),
		Comment:        c.Comment,
		CommentType:    string(commentType),
		IsInternalNote: c.IsInternalNote,
		ResponseID:     int64(c.ResponseID),
	}
	if c.AssessorID != nil {
		p.AssessorID = sql.NullInt64{Int64: int64(*c.AssessorID), Valid: true}
	}
}

// mapRows converts a slice of pg rows using fn, stopping at the first error.
func mapRows[P any, D any](rows []P, fn func(*P) (D, error)) ([]D, error) {
	out := make([]D, 0, len(rows))
	for i := range rows {
		d, err := fn(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}

	return out, nil
}
