package auth

// Wizard is the signup page's step state. Steps run 1..LastStep in order.
type Wizard struct {
	Step int `json:"step"`
}

// LastStep is the final signup step.
const LastStep = 2

// NewWizard starts at step 1.
func NewWizard() Wizard { return Wizard{Step: 1} }

// Next validates the fields of the current step and advances when they
// pass. On the last step a valid form leaves the wizard in place; the
// caller submits instead.
func (w Wizard) Next(form SignupForm) (Wizard, error) {
	if err := form.ValidateStep(w.Step); err != nil {
		return w, err
	}
	if w.Step < LastStep {
		w.Step++
	}
	return w, nil
}

// Back returns to the previous step. Step 1 is a fixed point.
func (w Wizard) Back() Wizard {
	if w.Step > 1 {
		w.Step--
	}
	return w
}

// Final reports whether the wizard is on its submit step.
func (w Wizard) Final() bool { return w.Step == LastStep }
