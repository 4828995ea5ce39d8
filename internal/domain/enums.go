package domain

// ComplianceStatus is the closed three-value verdict enum used by the
// analysis API for both the overall result and each criterion.
type ComplianceStatus string

const (
	StatusCompliant        ComplianceStatus = "compliant"
	StatusNeedsImprovement ComplianceStatus = "needs_improvement"
	StatusNonCompliant     ComplianceStatus = "non_compliant"
)

// IsValid returns true if the status is one of the three known values.
func (s ComplianceStatus) IsValid() bool {
	switch s {
	case StatusCompliant, StatusNeedsImprovement, StatusNonCompliant:
		return true
	}
	return false
}

// Normalize maps any unrecognized status to non_compliant. Unknown values
// are a rendering fallback, not an error.
func (s ComplianceStatus) Normalize() ComplianceStatus {
	if s.IsValid() {
		return s
	}
	return StatusNonCompliant
}

// ImageSlot names a required photo input in the intake form.
type ImageSlot string

const (
	SlotFacade       ImageSlot = "facade"
	SlotCeiling      ImageSlot = "ceiling"
	SlotWall         ImageSlot = "wall"
	SlotFloorGeneral ImageSlot = "floor_general"
	SlotLighting     ImageSlot = "lighting"
)

// SessionStatus represents the lifecycle of a wizard session.
type SessionStatus string

const (
	SessionActive     SessionStatus = "active"
	SessionSubmitting SessionStatus = "submitting"
	SessionSubmitted  SessionStatus = "submitted"
)

// PhotoType represents the allowed photo file types.
type PhotoType string

const (
	PhotoTypeJPG PhotoType = "jpg"
	PhotoTypePNG PhotoType = "png"
)

// AllowedPhotoTypes maps PhotoType to its MIME content type.
var AllowedPhotoTypes = map[PhotoType]string{
	PhotoTypeJPG: "image/jpeg",
	PhotoTypePNG: "image/png",
}

// AllowedContentTypes maps MIME content types back to PhotoType.
var AllowedContentTypes = map[string]PhotoType{
	"image/jpeg": PhotoTypeJPG,
	"image/png":  PhotoTypePNG,
}

// AllowedExtensions maps file extensions (without dot) to PhotoType.
var AllowedExtensions = map[string]PhotoType{
	"jpg":  PhotoTypeJPG,
	"jpeg": PhotoTypeJPG,
	"png":  PhotoTypePNG,
}
