package port

import "context"

// EmailSender defines the contract for sending the inspection report link.
type EmailSender interface {
	SendReportLink(ctx context.Context, toEmail, restaurantName, inspectionID, reportURL string) error
}
