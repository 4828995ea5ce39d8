package ses

import (
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"fahs/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	client := sesv2.NewFromConfig(cfg)
	return &sesSender{
		client:      client,
		fromAddress: fromAddress,
		fromName:    fromName,
	}, nil
}

func (s *sesSender) SendReportLink(ctx context.Context, toEmail, restaurantName, inspectionID, reportURL string) error {
	subject := fmt.Sprintf("تقرير الفحص %s - %s", inspectionID, restaurantName)
	htmlBody := buildReportHTML(restaurantName, inspectionID, reportURL)
	textBody := fmt.Sprintf(
		"تقرير فحص المنشأة %s\nرقم الفحص: %s\n\nرابط التقرير:\n%s\n",
		restaurantName, inspectionID, reportURL)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

func buildReportHTML(restaurantName, inspectionID, reportURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html dir="rtl" lang="ar">
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #333;">تقرير فحص المنشأة</h2>
  <p>المنشأة: %s</p>
  <p>رقم الفحص: %s</p>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #1B8354; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">عرض التقرير</a>
  </p>
  <p>أو انسخ الرابط التالي في المتصفح:</p>
  <p style="word-break: break-all; color: #666;">%s</p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Fahs - نظام فحص المطاعم</p>
</body>
</html>`, restaurantName, inspectionID, reportURL, reportURL)
}
