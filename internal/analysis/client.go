// Package analysis holds the HTTP client for the external
// inspection-analysis API. The API is an opaque collaborator: this package
// only marshals the submission into a multipart form and decodes the
// InspectionResult contract back out.
package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"time"

	"fahs/internal/config"
	"fahs/internal/domain"
	"fahs/internal/port"
	"fahs/internal/wizard"
)

// Client implements port.AnalysisClient against the configured deployment
// variant's endpoint.
type Client struct {
	endpoint string
	timeout  time.Duration
	variant  wizard.Variant
	client   *http.Client
}

// NewClient creates an analysis client for the configured variant.
func NewClient(cfg *config.AnalysisConfig, variant wizard.Variant) *Client {
	return newClient(cfg.BaseURL+variant.EndpointPath, cfg.Timeout(), variant)
}

// NewClientWithEndpoint creates a client pointing at a custom endpoint (for testing).
func NewClientWithEndpoint(endpoint string, timeout time.Duration, variant wizard.Variant) *Client {
	return newClient(endpoint, timeout, variant)
}

func newClient(endpoint string, timeout time.Duration, variant wizard.Variant) *Client {
	if timeout == 0 {
		timeout = 300 * time.Second
	}
	return &Client{
		endpoint: endpoint,
		timeout:  timeout,
		variant:  variant,
		// The abort ceiling runs on the request context, not the transport,
		// so timeouts classify distinctly from connection failures.
		client: &http.Client{},
	}
}

// Analyze performs exactly one multipart POST. Failures map onto the domain
// taxonomy: ErrAnalysisTimeout, ErrAnalysisUnreachable, ErrAnalysisFailed,
// ErrMalformedResult. No retry happens here; the caller re-invokes.
func (c *Client) Analyze(ctx context.Context, submission port.Submission) (*port.AnalysisOutcome, error) {
	body, contentType, err := c.buildForm(submission)
	if err != nil {
		return nil, fmt.Errorf("building submission form: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d: %s", domain.ErrAnalysisFailed, resp.StatusCode, truncate(string(respBody), 500))
	}

	var result domain.InspectionResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedResult, err)
	}

	return &port.AnalysisOutcome{Result: &result, RawBody: respBody}, nil
}

// buildForm marshals the submission into a multipart body with the field
// names the analysis API expects. When the variant duplicates floor prep,
// the floor_general photo is written a second time as floor_prep_image.
func (c *Client) buildForm(submission port.Submission) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	if err := w.WriteField("restaurant_name", submission.RestaurantName); err != nil {
		return nil, "", err
	}
	if err := w.WriteField("commercial_register", submission.CommercialRegister); err != nil {
		return nil, "", err
	}

	for _, img := range submission.Images {
		if err := writeImagePart(w, wizard.FieldName(img.Slot), img); err != nil {
			return nil, "", err
		}
		if c.variant.DuplicateFloorPrep && img.Slot == domain.SlotFloorGeneral {
			if err := writeImagePart(w, "floor_prep_image", img); err != nil {
				return nil, "", err
			}
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return body, w.FormDataContentType(), nil
}

func writeImagePart(w *multipart.Writer, field string, img port.SubmissionImage) error {
	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, string(img.Slot)+extFor(img.ContentType)))
	h.Set("Content-Type", img.ContentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return fmt.Errorf("creating part %s: %w", field, err)
	}
	if _, err := part.Write(img.Data); err != nil {
		return fmt.Errorf("writing part %s: %w", field, err)
	}
	return nil
}

func extFor(contentType string) string {
	if contentType == "image/png" {
		return ".png"
	}
	return ".jpg"
}

func classifyTransportError(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return domain.ErrAnalysisTimeout
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return domain.ErrAnalysisTimeout
	}
	return fmt.Errorf("%w: %v", domain.ErrAnalysisUnreachable, err)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
