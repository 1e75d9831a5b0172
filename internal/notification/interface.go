package notification

import (
	"context"

	"vantage/pkg/domain"
	"vantage/pkg/events"
)

// Details describes a notification sent to a BLGU user.
type Details struct {
	AssessmentID     domain.AssessmentID     `json:"assessment_id"`
	BLGUUserName     string                  `json:"blgu_user_name"`
	BLGUUserEmail    string                  `json:"blgu_user_email"`
	Barangay         string                  `json:"barangay"`
	AssessmentStatus domain.AssessmentStatus `json:"assessment_status"`
	ReworkCount      int                     `json:"rework_count"`
	Message          string                  `json:"message"`
}

// Service delivers workflow notifications.
//
//go:generate mockgen -package mocknotification -source=interface.go -destination=mock/mocknotification.go *
type Service interface {
	// NotifyRework tells the BLGU user that the assessment needs rework.
	NotifyRework(ctx context.Context, assessmentID domain.AssessmentID) (*Details, error)
	// NotifyValidated tells the BLGU user that the assessment was validated.
	NotifyValidated(ctx context.Context, assessmentID domain.AssessmentID) (*Details, error)
	// Publish forwards a lifecycle event.
	Publish(ctx context.Context, event events.Event) error
}
