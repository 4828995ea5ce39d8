package wizard

import (
	"fmt"
	"strings"

	"fahs/internal/domain"
)

// State is the wizard position for one session. The step counter is
// 1-based; step 1 is identification, steps 2..TotalSteps are photo captures.
type State struct {
	Variant Variant
	Step    int
}

// NewState returns a fresh state at step 1.
func NewState(v Variant) State {
	return State{Variant: v, Step: 1}
}

// Advance is the only forward transition; there is no backward transition.
// staged reports which slots currently hold a photo. If the current step is
// bound to a slot with no staged photo the transition is refused and the
// state is unchanged. At the final step Advance is a no-op.
func (s *State) Advance(staged map[domain.ImageSlot]bool) error {
	if s.Step >= s.Variant.TotalSteps() {
		return nil
	}
	if slot, ok := s.Variant.SlotForStep(s.Step); ok && !staged[slot] {
		return fmt.Errorf("%w: %s", domain.ErrPhotoRequired, slot)
	}
	s.Step++
	return nil
}

// Completed reports whether the state has reached the final step.
func (s State) Completed() bool {
	return s.Step >= s.Variant.TotalSteps()
}

// ValidateSubmission re-checks the whole form independently of the current
// step: submission is legal from any step as long as every required slot is
// staged and the restaurant name is present. Returns the first failure.
func (v Variant) ValidateSubmission(restaurantName string, staged map[domain.ImageSlot]bool) error {
	if strings.TrimSpace(restaurantName) == "" {
		return domain.ErrNameRequired
	}
	for _, slot := range v.Slots {
		if !staged[slot] {
			return fmt.Errorf("%w: %s", domain.ErrPhotoRequired, slot)
		}
	}
	return nil
}
