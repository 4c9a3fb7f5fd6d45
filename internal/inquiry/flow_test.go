package inquiry

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
)

func newFlowUnderTest(t *testing.T, store *fakeStore) *Flow {
	svc := NewService(store, logger.NewTestLogger(t))
	return NewFlow(NewMemoryDraftStore(), svc, logger.NewTestLogger(t))
}

func TestFlow_Start(t *testing.T) {
	flow := newFlowUnderTest(t, &fakeStore{})

	state, err := flow.Start(context.Background(), "/pricing")
	require.NoError(t, err)

	assert.NotEmpty(t, state.Token)
	assert.Equal(t, StepContact, state.Step)
	assert.Equal(t, StatusIdle, state.Status)
	assert.Equal(t, "/pricing", state.Draft.SourcePage)
	assert.False(t, state.CanContinue)
}

func TestFlow_Apply_FullWalkthrough(t *testing.T) {
	store := &fakeStore{}
	flow := newFlowUnderTest(t, store)
	ctx := context.Background()

	start, err := flow.Start(ctx, "/")
	require.NoError(t, err)
	token := start.Token

	// Step 1: contact details, then continue.
	state, err := flow.Apply(ctx, token, Action{
		Fields: map[string]string{"name": "Ada Lovelace", "email": "ada@example.com"},
		Action: "continue",
	})
	require.NoError(t, err)
	assert.Equal(t, StepProject, state.Step)

	// Step 2: service selection, then continue.
	state, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"serviceInterest": "ad-creatives"},
		Action: "continue",
	})
	require.NoError(t, err)
	assert.Equal(t, StepDetails, state.Step)

	// Step 3: message, then submit.
	state, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"message": "Motion ads please"},
		Action: "submit",
	})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, state.Status)

	require.Equal(t, 1, store.calls)
	assert.Equal(t, "Ada Lovelace", store.doc["name"])
	assert.Equal(t, "Motion ads please", store.doc["message"])
}

func TestFlow_Apply_RejectedContinueKeepsFieldEdits(t *testing.T) {
	flow := newFlowUnderTest(t, &fakeStore{})
	ctx := context.Background()

	start, err := flow.Start(ctx, "")
	require.NoError(t, err)

	// Name only; the step 1 gate fails but the edit must survive.
	_, err = flow.Apply(ctx, start.Token, Action{
		Fields: map[string]string{"name": "Ada"},
		Action: "continue",
	})
	require.Error(t, err)

	state, err := flow.Apply(ctx, start.Token, Action{})
	require.NoError(t, err)
	assert.Equal(t, StepContact, state.Step)
	assert.Equal(t, "Ada", state.Draft.Name)
}

func TestFlow_Apply_UnknownToken(t *testing.T) {
	flow := newFlowUnderTest(t, &fakeStore{})

	_, err := flow.Apply(context.Background(), "no-such-token", Action{})

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeDraftNotFound, stdErr.Code)
}

func TestFlow_Apply_FailedSubmitIsRetryable(t *testing.T) {
	store := &fakeStore{err: errors.New("store down")}
	flow := newFlowUnderTest(t, store)
	ctx := context.Background()

	start, err := flow.Start(ctx, "")
	require.NoError(t, err)
	token := start.Token

	_, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"name": "Ada", "email": "ada@example.com"},
		Action: "continue",
	})
	require.NoError(t, err)
	_, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"serviceInterest": "ad-creatives"},
		Action: "continue",
	})
	require.NoError(t, err)

	state, err := flow.Apply(ctx, token, Action{Action: "submit"})
	require.Error(t, err)
	assert.Equal(t, StatusError, state.Status)
	assert.Equal(t, StepDetails, state.Step)

	// Backend recovers; the same session submits cleanly.
	store.err = nil
	state, err = flow.Apply(ctx, token, Action{Action: "submit"})
	require.NoError(t, err)
	assert.Equal(t, StatusSuccess, state.Status)
	assert.Equal(t, 2, store.calls)
}

func TestFlow_Apply_SuccessIsTerminalAcrossRequests(t *testing.T) {
	store := &fakeStore{}
	flow := newFlowUnderTest(t, store)
	ctx := context.Background()

	start, err := flow.Start(ctx, "")
	require.NoError(t, err)
	token := start.Token

	steps := []Action{
		{Fields: map[string]string{"name": "Ada", "email": "ada@example.com"}, Action: "continue"},
		{Fields: map[string]string{"serviceInterest": "ad-creatives"}, Action: "continue"},
		{Action: "submit"},
	}
	for _, action := range steps {
		_, err = flow.Apply(ctx, token, action)
		require.NoError(t, err)
	}

	_, err = flow.Apply(ctx, token, Action{Action: "submit"})
	require.Error(t, err)
	assert.Equal(t, 1, store.calls, "a submitted session never submits twice")
}

// blockingStore parks the first create on a channel so a second request
// can race it, and counts every create it sees.
type blockingStore struct {
	calls   int32
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (b *blockingStore) Create(_ context.Context, _ map[string]interface{}) error {
	atomic.AddInt32(&b.calls, 1)
	b.once.Do(func() { close(b.started) })
	<-b.release
	return nil
}

func TestFlow_Apply_ConcurrentSubmitsCreateOneInquiry(t *testing.T) {
	store := &blockingStore{
		started: make(chan struct{}),
		release: make(chan struct{}),
	}
	svc := NewService(store, logger.NewTestLogger(t))
	flow := NewFlow(NewMemoryDraftStore(), svc, logger.NewTestLogger(t))
	ctx := context.Background()

	start, err := flow.Start(ctx, "")
	require.NoError(t, err)
	token := start.Token

	_, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"name": "Ada", "email": "ada@example.com"},
		Action: "continue",
	})
	require.NoError(t, err)
	_, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"serviceInterest": "ad-creatives"},
		Action: "continue",
	})
	require.NoError(t, err)

	results := make(chan error, 2)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := flow.Apply(ctx, token, Action{Action: "submit"})
		results <- err
	}()

	// Fire the second submit only once the first is mid-flight inside
	// the store write.
	<-store.started
	wg.Add(1)
	go func() {
		defer wg.Done()
		_, err := flow.Apply(ctx, token, Action{Action: "submit"})
		results <- err
	}()

	close(store.release)
	wg.Wait()
	close(results)

	var succeeded, rejected int
	for err := range results {
		if err == nil {
			succeeded++
			continue
		}
		rejected++
		var stdErr *apperrors.StandardError
		require.ErrorAs(t, err, &stdErr)
		assert.Equal(t, apperrors.ErrCodeInvalidTransition, stdErr.Code)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, int32(1), atomic.LoadInt32(&store.calls),
		"a session must create exactly one inquiry document")
}

// flakyDraftStore fails saves once failFrom is reached; zero disables.
type flakyDraftStore struct {
	DraftStore
	failFrom int
	saves    int
}

func (s *flakyDraftStore) Save(ctx context.Context, token string, form *Form) error {
	s.saves++
	if s.failFrom > 0 && s.saves >= s.failFrom {
		return apperrors.NewDraftStoreFailedError(errors.New("redis write refused"))
	}
	return s.DraftStore.Save(ctx, token, form)
}

func TestFlow_Apply_OutcomeSaveFailureDoesNotInviteRetry(t *testing.T) {
	store := &fakeStore{}
	drafts := &flakyDraftStore{DraftStore: NewMemoryDraftStore()}
	svc := NewService(store, logger.NewTestLogger(t))
	flow := NewFlow(drafts, svc, logger.NewTestLogger(t))
	ctx := context.Background()

	start, err := flow.Start(ctx, "")
	require.NoError(t, err)
	token := start.Token

	_, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"name": "Ada", "email": "ada@example.com"},
		Action: "continue",
	})
	require.NoError(t, err)
	_, err = flow.Apply(ctx, token, Action{
		Fields: map[string]string{"serviceInterest": "ad-creatives"},
		Action: "continue",
	})
	require.NoError(t, err)

	// The submitting claim persists, then the outcome write fails.
	drafts.failFrom = drafts.saves + 2

	state, err := flow.Apply(ctx, token, Action{Action: "submit"})
	require.NoError(t, err, "the lead was stored; the client must see success")
	assert.Equal(t, StatusSuccess, state.Status)
	require.Equal(t, 1, store.calls)

	// The store recovers; a resubmission on the same token is refused by
	// the persisted claim instead of creating a second lead.
	drafts.failFrom = 0
	_, err = flow.Apply(ctx, token, Action{Action: "submit"})
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeInvalidTransition, stdErr.Code)
	assert.Equal(t, 1, store.calls)
}

func TestFlow_Apply_UnknownActionRejected(t *testing.T) {
	flow := newFlowUnderTest(t, &fakeStore{})

	start, err := flow.Start(context.Background(), "")
	require.NoError(t, err)

	_, err = flow.Apply(context.Background(), start.Token, Action{Action: "teleport"})

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeInvalidTransition, stdErr.Code)
}
