package inquiry

import (
	"context"
	"fmt"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
)

// Form steps, in order. The form has exactly three.
const (
	StepContact = 1
	StepProject = 2
	StepDetails = 3
)

// Status is the submission half of the form's (step, status) state.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Submitter performs the one network side effect a form ever makes.
type Submitter interface {
	Submit(ctx context.Context, draft Draft) error
}

// Form is the explicit multi-step state machine. Illegal (step, status)
// combinations are unreachable through its methods: success is terminal,
// submit only fires from the last step, and a submission in flight
// blocks everything else.
type Form struct {
	Step   int    `json:"step"`
	Status Status `json:"status"`
	Draft  Draft  `json:"draft"`
}

func NewForm(sourcePage string) *Form {
	return &Form{
		Step:   StepContact,
		Status: StatusIdle,
		Draft:  Draft{SourcePage: sourcePage},
	}
}

// SetField updates one draft field. Edits are allowed while idle or
// after a failed submission; never once submitted successfully or while
// a submission is in flight.
func (f *Form) SetField(name, value string) error {
	if f.Status == StatusSuccess || f.Status == StatusSubmitting {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("cannot edit fields while status is %s", f.Status))
	}

	switch name {
	case "name":
		f.Draft.Name = value
	case "email":
		f.Draft.Email = value
	case "company":
		f.Draft.Company = value
	case "phone":
		f.Draft.Phone = value
	case "serviceInterest":
		f.Draft.ServiceInterest = value
	case "budget":
		f.Draft.Budget = value
	case "timeline":
		f.Draft.Timeline = value
	case "message":
		f.Draft.Message = value
	default:
		return apperrors.NewInvalidTransitionError(fmt.Sprintf("unknown field %q", name))
	}
	return nil
}

// CanContinue reports whether the current step's gate passes. Gates are
// checked on step transitions, not on every keystroke.
func (f *Form) CanContinue() bool {
	switch f.Step {
	case StepContact:
		return f.Draft.HasRequired()
	case StepProject:
		return f.Draft.ServiceInterest != ""
	case StepDetails:
		// The last step has no forward gate; message is optional.
		return true
	default:
		return false
	}
}

// Continue advances to the next step if the current step's gate passes.
func (f *Form) Continue() error {
	if f.Status != StatusIdle && f.Status != StatusError {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("cannot continue while status is %s", f.Status))
	}
	if f.Step >= StepDetails {
		return apperrors.NewInvalidTransitionError("already on the last step, submit instead")
	}
	if !f.CanContinue() {
		switch f.Step {
		case StepContact:
			return apperrors.NewValidationFailedError("name and email are required to continue")
		default:
			return apperrors.NewValidationFailedError("a service selection is required to continue")
		}
	}
	f.Step++
	return nil
}

// Back returns to the previous step. Always allowed regardless of
// validation state; never clears fields entered in later steps.
func (f *Form) Back() error {
	if f.Status == StatusSuccess || f.Status == StatusSubmitting {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("cannot go back while status is %s", f.Status))
	}
	if f.Step > StepContact {
		f.Step--
	}
	return nil
}

// BeginSubmit validates that a submission may start and marks it in
// flight. Callers that persist form state must write the submitting
// status before performing the side effect, so the claim is visible to
// concurrent requests.
func (f *Form) BeginSubmit() error {
	if f.Status == StatusSubmitting {
		return apperrors.NewInvalidTransitionError("a submission is already in flight")
	}
	if f.Status == StatusSuccess {
		return apperrors.NewInvalidTransitionError("form already submitted")
	}
	if f.Step != StepDetails {
		return apperrors.NewInvalidTransitionError(
			fmt.Sprintf("submit is only allowed from step %d, currently on %d", StepDetails, f.Step))
	}
	f.Status = StatusSubmitting
	return nil
}

// CompleteSubmit records the submission outcome. A failure leaves the
// form on the last step with the draft intact, ready for a
// user-initiated retry; success is terminal.
func (f *Form) CompleteSubmit(err error) {
	if err != nil {
		f.Status = StatusError
		return
	}
	f.Status = StatusSuccess
}

// Submit fires the single submission side effect from the last step.
// While in flight the form refuses re-entry, so repeated submits cannot
// produce concurrent requests.
func (f *Form) Submit(ctx context.Context, submitter Submitter) error {
	if err := f.BeginSubmit(); err != nil {
		return err
	}
	err := submitter.Submit(ctx, f.Draft)
	f.CompleteSubmit(err)
	return err
}
