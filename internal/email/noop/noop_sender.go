package noop

import (
	"context"
	"log"

	"fahs/internal/port"
)

type noopSender struct{}

// NewNoopSender creates a no-op EmailSender that logs report links to stdout.
func NewNoopSender() port.EmailSender {
	return &noopSender{}
}

func (s *noopSender) SendReportLink(_ context.Context, toEmail, restaurantName, inspectionID, reportURL string) error {
	log.Printf("[NOOP EMAIL] Report link for %s (inspection %s) to %s: %s",
		restaurantName, inspectionID, toEmail, reportURL)
	return nil
}
