package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fahs/internal/domain"
)

func allStaged(v Variant) map[domain.ImageSlot]bool {
	staged := make(map[domain.ImageSlot]bool, len(v.Slots))
	for _, slot := range v.Slots {
		staged[slot] = true
	}
	return staged
}

func TestByName(t *testing.T) {
	v, err := ByName("four_photo")
	require.NoError(t, err)
	assert.Equal(t, FourPhoto, v)

	v, err = ByName("five_photo")
	require.NoError(t, err)
	assert.Equal(t, FivePhoto, v)

	_, err = ByName("six_photo")
	assert.Error(t, err)
}

func TestVariant_TotalSteps(t *testing.T) {
	assert.Equal(t, 5, FourPhoto.TotalSteps())
	assert.Equal(t, 6, FivePhoto.TotalSteps())
}

func TestVariant_SlotForStep(t *testing.T) {
	// Step 1 is identification and has no slot.
	_, ok := FourPhoto.SlotForStep(1)
	assert.False(t, ok)

	slot, ok := FourPhoto.SlotForStep(2)
	require.True(t, ok)
	assert.Equal(t, domain.SlotCeiling, slot)

	slot, ok = FourPhoto.SlotForStep(5)
	require.True(t, ok)
	assert.Equal(t, domain.SlotLighting, slot)

	_, ok = FourPhoto.SlotForStep(6)
	assert.False(t, ok)

	// The five-photo variant captures the facade first.
	slot, ok = FivePhoto.SlotForStep(2)
	require.True(t, ok)
	assert.Equal(t, domain.SlotFacade, slot)
}

func TestVariant_EndpointPairing(t *testing.T) {
	assert.Equal(t, "/api/analyze", FourPhoto.EndpointPath)
	assert.Equal(t, "/api/inspect", FivePhoto.EndpointPath)
	assert.False(t, FourPhoto.HasSlot(domain.SlotFacade))
	assert.True(t, FivePhoto.HasSlot(domain.SlotFacade))
}

func TestState_AdvanceFromIdentification(t *testing.T) {
	s := NewState(FourPhoto)
	require.Equal(t, 1, s.Step)

	// Step 1 has no photo gate, even with nothing staged.
	err := s.Advance(nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Step)
}

func TestState_AdvanceRequiresStagedPhoto(t *testing.T) {
	s := State{Variant: FourPhoto, Step: 2}

	err := s.Advance(map[domain.ImageSlot]bool{})
	require.ErrorIs(t, err, domain.ErrPhotoRequired)
	assert.Equal(t, 2, s.Step, "a refused transition must leave the state unchanged")

	err = s.Advance(map[domain.ImageSlot]bool{domain.SlotCeiling: true})
	require.NoError(t, err)
	assert.Equal(t, 3, s.Step)
}

func TestState_AdvanceThroughWholeFlow(t *testing.T) {
	s := NewState(FivePhoto)
	staged := allStaged(FivePhoto)

	for !s.Completed() {
		require.NoError(t, s.Advance(staged))
	}
	assert.Equal(t, 6, s.Step)
}

func TestState_AdvanceAtFinalStepIsNoop(t *testing.T) {
	s := State{Variant: FourPhoto, Step: FourPhoto.TotalSteps()}
	require.NoError(t, s.Advance(nil))
	assert.Equal(t, FourPhoto.TotalSteps(), s.Step)
	assert.True(t, s.Completed())
}

func TestValidateSubmission(t *testing.T) {
	staged := allStaged(FourPhoto)

	assert.NoError(t, FourPhoto.ValidateSubmission("مطعم الذواقة", staged))

	err := FourPhoto.ValidateSubmission("   ", staged)
	assert.ErrorIs(t, err, domain.ErrNameRequired)

	delete(staged, domain.SlotWall)
	err = FourPhoto.ValidateSubmission("مطعم الذواقة", staged)
	assert.ErrorIs(t, err, domain.ErrPhotoRequired)
	assert.Contains(t, err.Error(), "wall")
}

func TestValidateSubmission_IndependentOfStep(t *testing.T) {
	// Submission validation does not consult the step counter; a complete
	// form passes regardless of where the wizard sits.
	s := State{Variant: FourPhoto, Step: 3}
	assert.NoError(t, s.Variant.ValidateSubmission("name", allStaged(FourPhoto)))
}

func TestFieldName(t *testing.T) {
	assert.Equal(t, "ceiling_image", FieldName(domain.SlotCeiling))
	assert.Equal(t, "floor_general_image", FieldName(domain.SlotFloorGeneral))
}
