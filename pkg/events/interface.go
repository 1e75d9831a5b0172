// Package events publishes assessment lifecycle events to downstream
// consumers (reporting, notification delivery).
package events

import (
	"context"
	"time"

	"vantage/pkg/domain"
)

// Type names an assessment lifecycle event.
type Type string

const (
	TypeSubmitted       Type = "assessment.submitted"
	TypeReworkRequested Type = "assessment.rework_requested"
	TypeValidated       Type = "assessment.validated"
	TypeClassified      Type = "assessment.classified"
	TypeInsightsReady   Type = "assessment.insights_ready"
)

// Event is a single lifecycle event. Payload is encoded as JSON.
type Event struct {
	Type         Type                `json:"type"`
	AssessmentID domain.AssessmentID `json:"assessment_id"`
	OccurredAt   time.Time           `json:"occurred_at"`
	Payload      any                 `json:"payload,omitempty"`
}

// Publisher delivers events.
//
//go:generate mockgen -package mockevents -source=interface.go -destination=mock/mockevents.go *
type Publisher interface {
	Publish(ctx context.Context, evs ...Event) error
	Close() error
}

// Discard is a Publisher that drops every event. It is used when no broker is
// configured.
type Discard struct{}

var _ Publisher = Discard{}

func (Discard) Publish(context.Context, ...Event) error { return nil }
func (Discard) Close() error                             { return nil }
