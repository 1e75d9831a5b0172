// Package notification builds the messages sent to BLGU users when their
// assessment moves through the workflow and publishes them as lifecycle
// events.
package notification

import (
	"context"
	"fmt"

	"vantage/pkg/domain"
	"vantage/pkg/events"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"go.uber.org/zap"
)

type service struct {
	storage   storage.Storage
	publisher events.Publisher
}

var _ Service = (*service)(nil)

func (s service) NotifyRework(ctx context.Context, assessmentID domain.AssessmentID) (*Details, error) {
	return s.notify(ctx, assessmentID, events.TypeReworkRequested, func(barangay string) string {
		return fmt.Sprintf("Your assessment for %s needs rework. "+
			"Please review the assessor feedback and resubmit.", barangay)
	})
}

func (s service) NotifyValidated(ctx context.Context, assessmentID domain.AssessmentID) (*Details, error) {
	return s.notify(ctx, assessmentID, events.TypeValidated, func(barangay string) string {
		return fmt.Sprintf("Congratulations! Your assessment for %s has been validated and is now complete.", barangay)
	})
}

func (s service) notify(ctx context.Context,
	assessmentID domain.AssessmentID,
	eventType events.Type,
	message func(barangay string) string) (*Details, error) {
	assessment, err := s.storage.AssessmentByID(ctx, assessmentID)
	if err != nil {
		return nil, fmt.Errorf("could not get assessment: %w", err)
	}
	if assessment == nil {
		return nil, serrors.With(serrors.ErrNotFound, "Assessment not found")
	}

	user, err := s.storage.UserByID(ctx, assessment.BLGUUserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrNotFound, "BLGU user not found")
	}

	barangayName := ""
	if user.BarangayID != nil {
		b, err := s.storage.BarangayByID(ctx, *user.BarangayID)
		if err != nil {
			return nil, fmt.Errorf("could not get barangay: %w", err)
		}
		if b != nil {
			barangayName = b.Name
		}
	}

	details := &Details{
		AssessmentID:     assessment.ID,
		BLGUUserName:     user.Name,
		BLGUUserEmail:    user.Email,
		Barangay:         barangayName,
		AssessmentStatus: assessment.Status,
		ReworkCount:      assessment.ReworkCount,
	}
	if barangayName == "" {
		details.Barangay = "Unknown"
		details.Message = message("your barangay")
	} else {
		details.Message = message(barangayName)
	}

	logger.Info(ctx, "notification prepared",
		zap.String("event", string(eventType)),
		zap.Int64("assessment_id", int64(assessment.ID)),
		zap.String("blgu_user_email", user.Email),
		zap.String("message", details.Message))

	if err := s.publisher.Publish(ctx, events.Event{
		Type:         eventType,
		AssessmentID: assessment.ID,
		Payload:      details,
	}); err != nil {
		return nil, fmt.Errorf("could not publish notification: %w", err)
	}

	return details, nil
}

func (s service) Publish(ctx context.Context, event events.Event) error {
	if err := s.publisher.Publish(ctx, event); err != nil {
		return fmt.Errorf("could not publish %s event: %w", event.Type, err)
	}

	return nil
}

// New creates a notification Service.
func New(storage storage.Storage, publisher events.Publisher) Service {
	return &service{storage: storage, publisher: publisher}
}
