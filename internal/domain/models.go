package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// WizardSession is one intake-form session. It replaces the browser-side
// sessionStorage handoff: staged photos, identification fields, and the
// stored analysis payload all hang off this row. A new session always starts
// empty, so results from an earlier inspection cannot leak into a fresh flow.
type WizardSession struct {
	ID                 uuid.UUID     `db:"id" json:"id"`
	Variant            string        `db:"variant" json:"variant"`
	CurrentStep        int           `db:"current_step" json:"current_step"`
	RestaurantName     string        `db:"restaurant_name" json:"restaurant_name"`
	CommercialRegister string        `db:"commercial_register" json:"commercial_register"`
	Status             SessionStatus `db:"status" json:"status"`
	InspectionID       string        `db:"inspection_id" json:"inspection_id,omitempty"`
	ResultPayload      []byte        `db:"result_payload" json:"-"`
	CreatedAt          time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt          time.Time     `db:"updated_at" json:"updated_at"`
}

// StagedPhoto is the metadata for a photo currently staged in an image slot.
// At most one photo exists per (session, slot); staging again replaces it.
type StagedPhoto struct {
	ID           uuid.UUID `db:"id" json:"id"`
	SessionID    uuid.UUID `db:"session_id" json:"session_id"`
	Slot         ImageSlot `db:"slot" json:"slot"`
	OriginalName string    `db:"original_name" json:"original_name"`
	ContentType  string    `db:"content_type" json:"content_type"`
	FileSize     int64     `db:"file_size" json:"file_size"`
	S3Bucket     string    `db:"s3_bucket" json:"-"`
	S3Key        string    `db:"s3_key" json:"-"`
	StagedAt     time.Time `db:"staged_at" json:"staged_at"`
}

// Inspection is a completed inspection record keyed by the analysis API's
// inspection_id, kept so results remain retrievable after the session ends.
type Inspection struct {
	InspectionID       string           `db:"inspection_id" json:"inspection_id"`
	SessionID          uuid.UUID        `db:"session_id" json:"session_id"`
	RestaurantName     string           `db:"restaurant_name" json:"restaurant_name"`
	CommercialRegister string           `db:"commercial_register" json:"commercial_register"`
	OverallStatus      ComplianceStatus `db:"overall_status" json:"overall_status"`
	OverallScore       float64          `db:"overall_score" json:"overall_score"`
	Payload            []byte           `db:"payload" json:"-"`
	CreatedAt          time.Time        `db:"created_at" json:"created_at"`
}

// InspectionResult is the analysis API's response contract. The timestamp is
// kept as the ISO-8601 string the API produced; the service additionally
// stores the raw response bytes so the payload round-trips unchanged.
type InspectionResult struct {
	InspectionID       string            `json:"inspection_id"`
	RestaurantName     string            `json:"restaurant_name"`
	CommercialRegister string            `json:"commercial_register"`
	OverallStatus      ComplianceStatus  `json:"overall_status"`
	OverallScore       float64           `json:"overall_score"`
	Timestamp          string            `json:"timestamp"`
	Criteria           []CriterionResult `json:"criteria"`
	PDFReport          string            `json:"pdf_report,omitempty"`
}

// CriterionResult is one scored compliance dimension.
type CriterionResult struct {
	CriterionID   int              `json:"criterion_id"`
	CriterionName string           `json:"criterion_name"`
	Status        ComplianceStatus `json:"status"`
	Score         float64          `json:"score"`
	Confidence    float64          `json:"confidence"`
	Details       CriterionDetails `json:"details"`
}

// AreaDetail is one inspection-area entry in a criterion's details mapping.
// Raw carries the full object so domain-specific booleans pass through
// untouched; rendering only depends on Description.
type AreaDetail struct {
	Key         string
	Description string
	Raw         json.RawMessage
}

// CriterionDetails is the per-area details mapping with JSON key order
// preserved. encoding/json map decoding would lose the order the API wrote
// the areas in, which the viewer's bullet list depends on.
type CriterionDetails []AreaDetail

// UnmarshalJSON decodes a JSON object while recording key order.
func (d *CriterionDetails) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decoding details: %w", err)
	}
	if tok == nil {
		*d = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decoding details: expected object, got %v", tok)
	}

	var entries CriterionDetails
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decoding details key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decoding details: non-string key %v", keyTok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("decoding details[%s]: %w", key, err)
		}

		// Entries without a description are kept but render nothing.
		var body struct {
			Description string `json:"description"`
		}
		_ = json.Unmarshal(raw, &body)

		entries = append(entries, AreaDetail{Key: key, Description: body.Description, Raw: raw})
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decoding details: %w", err)
	}

	*d = entries
	return nil
}

// MarshalJSON re-emits the object in the recorded key order.
func (d CriterionDetails) MarshalJSON() ([]byte, error) {
	if d == nil {
		return []byte("null"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, entry := range d {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(entry.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(entry.Raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
