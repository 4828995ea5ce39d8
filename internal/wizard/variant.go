// Package wizard implements the intake-form step state machine. It is pure:
// no transport, storage, or presentation imports, so step transitions and
// submission validation are testable on their own.
package wizard

import (
	"fmt"

	"fahs/internal/domain"
)

// Variant is a deployment configuration of the intake form: which photo
// slots it captures, in what order, and which analysis endpoint it pairs
// with. The endpoint path and slot set are a paired configuration, never
// independent choices. Variant selection happens at deploy time, not at
// runtime.
type Variant struct {
	Name         string
	Slots        []domain.ImageSlot
	EndpointPath string

	// DuplicateFloorPrep sends the floor_general photo a second time as the
	// floor_prep_image field. Both observed deployments do this.
	DuplicateFloorPrep bool
}

// FourPhoto is the newer no-facade deployment: four photos, /api/analyze.
var FourPhoto = Variant{
	Name: "four_photo",
	Slots: []domain.ImageSlot{
		domain.SlotCeiling,
		domain.SlotWall,
		domain.SlotFloorGeneral,
		domain.SlotLighting,
	},
	EndpointPath:       "/api/analyze",
	DuplicateFloorPrep: true,
}

// FivePhoto is the legacy facade-first deployment: five photos, /api/inspect.
var FivePhoto = Variant{
	Name: "five_photo",
	Slots: []domain.ImageSlot{
		domain.SlotFacade,
		domain.SlotCeiling,
		domain.SlotWall,
		domain.SlotFloorGeneral,
		domain.SlotLighting,
	},
	EndpointPath:       "/api/inspect",
	DuplicateFloorPrep: true,
}

// ByName resolves a configured variant name.
func ByName(name string) (Variant, error) {
	switch name {
	case FourPhoto.Name:
		return FourPhoto, nil
	case FivePhoto.Name:
		return FivePhoto, nil
	}
	return Variant{}, fmt.Errorf("unknown wizard variant %q", name)
}

// TotalSteps is the identification step plus one step per photo slot.
func (v Variant) TotalSteps() int {
	return 1 + len(v.Slots)
}

// SlotForStep returns the image slot bound to a step. Step 1 carries the
// identification fields and has no bound slot.
func (v Variant) SlotForStep(step int) (domain.ImageSlot, bool) {
	if step < 2 || step > v.TotalSteps() {
		return "", false
	}
	return v.Slots[step-2], true
}

// HasSlot reports whether the variant captures the given slot.
func (v Variant) HasSlot(slot domain.ImageSlot) bool {
	for _, s := range v.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// FieldName is the multipart form field the analysis API expects for a slot.
func FieldName(slot domain.ImageSlot) string {
	return string(slot) + "_image"
}
