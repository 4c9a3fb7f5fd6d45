package inquiry

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/google/uuid"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
)

// flowLockStripes bounds the lock table; sessions hash onto a fixed set
// of mutexes so the table never grows with traffic.
const flowLockStripes = 64

// Flow drives the form state machine across stateless HTTP requests:
// each session is a token-keyed draft in the store, loaded, stepped and
// written back per action. Requests for the same token serialize on a
// striped lock, and a submission claims the submitting status in the
// draft store before the content store write, so two racing submits can
// never both reach the store.
type Flow struct {
	drafts  DraftStore
	service *Service
	logger  logger.Logger
	locks   [flowLockStripes]sync.Mutex
}

func NewFlow(drafts DraftStore, service *Service, log logger.Logger) *Flow {
	return &Flow{drafts: drafts, service: service, logger: log}
}

func (f *Flow) tokenLock(token string) *sync.Mutex {
	h := fnv.New32a()
	h.Write([]byte(token))
	return &f.locks[h.Sum32()%flowLockStripes]
}

// FlowState is the client-visible snapshot of a form session.
type FlowState struct {
	Token       string `json:"token"`
	Step        int    `json:"step"`
	Status      Status `json:"status"`
	Draft       Draft  `json:"draft"`
	CanContinue bool   `json:"canContinue"`
}

// Action is one client request against a form session. Fields are
// applied first; the action, if any, runs after.
type Action struct {
	Action string            `json:"action,omitempty"` // "continue", "back", "submit" or empty
	Fields map[string]string `json:"fields,omitempty"`
}

func snapshot(token string, form *Form) *FlowState {
	return &FlowState{
		Token:       token,
		Step:        form.Step,
		Status:      form.Status,
		Draft:       form.Draft,
		CanContinue: form.CanContinue(),
	}
}

// Start opens a new form session and returns its token.
func (f *Flow) Start(ctx context.Context, sourcePage string) (*FlowState, error) {
	token := uuid.New().String()
	form := NewForm(sourcePage)

	if err := f.drafts.Save(ctx, token, form); err != nil {
		return nil, err
	}

	f.logger.Debug("form session started", map[string]interface{}{
		"token":      token,
		"sourcePage": sourcePage,
	})
	return snapshot(token, form), nil
}

// Apply loads the session, applies field edits and the requested action,
// and writes the resulting state back. Field edits that land before a
// failed gate are still persisted, so a rejected continue never loses
// input.
func (f *Flow) Apply(ctx context.Context, token string, action Action) (*FlowState, error) {
	lock := f.tokenLock(token)
	lock.Lock()
	defer lock.Unlock()

	form, err := f.drafts.Load(ctx, token)
	if err != nil {
		return nil, err
	}

	for name, value := range action.Fields {
		if err := form.SetField(name, value); err != nil {
			return snapshot(token, form), err
		}
	}

	if action.Action == "submit" {
		return f.submit(ctx, token, form)
	}

	actionErr := f.runAction(form, action.Action)

	if err := f.drafts.Save(ctx, token, form); err != nil {
		f.logger.Warn("failed to persist form state", map[string]interface{}{
			"token": token,
			"error": err.Error(),
		})
		if actionErr == nil {
			return snapshot(token, form), err
		}
	}

	return snapshot(token, form), actionErr
}

func (f *Flow) runAction(form *Form, name string) error {
	switch name {
	case "":
		return nil
	case "continue":
		return form.Continue()
	case "back":
		return form.Back()
	default:
		return apperrors.NewInvalidTransitionError(fmt.Sprintf("unknown action %q", name))
	}
}

// submit claims the submission in the draft store before writing to the
// content store. A concurrent request for the same token either waits on
// the token lock and then loads a submitted form, or on another instance
// loads the persisted submitting state; the state machine rejects both,
// so at most one inquiry document is created per session.
func (f *Flow) submit(ctx context.Context, token string, form *Form) (*FlowState, error) {
	if err := form.BeginSubmit(); err != nil {
		if saveErr := f.drafts.Save(ctx, token, form); saveErr != nil {
			f.logger.Warn("failed to persist form state", map[string]interface{}{
				"token": token,
				"error": saveErr.Error(),
			})
		}
		return snapshot(token, form), err
	}

	if err := f.drafts.Save(ctx, token, form); err != nil {
		// The claim never landed, so nothing was sent; the session stays
		// retryable.
		form.CompleteSubmit(err)
		return snapshot(token, form), err
	}

	submitErr := f.service.Submit(ctx, form.Draft)
	form.CompleteSubmit(submitErr)

	if err := f.drafts.Save(ctx, token, form); err != nil {
		// The outcome could not be persisted: the stored state stays
		// submitting, which keeps blocking resubmission for this token.
		// On success the client still gets its confirmation rather than
		// an error inviting a duplicate retry.
		f.logger.Error("failed to persist submission outcome", map[string]interface{}{
			"token":  token,
			"status": string(form.Status),
			"error":  err.Error(),
		})
	}

	return snapshot(token, form), submitErr
}
