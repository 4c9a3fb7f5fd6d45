package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
)

type flowStore struct {
	calls int
	doc   map[string]interface{}
}

func (f *flowStore) Create(_ context.Context, doc map[string]interface{}) error {
	f.calls++
	f.doc = doc
	return nil
}

func newFlowRouter(t *testing.T, store *flowStore) *gin.Engine {
	log := logger.NewTestLogger(t)
	service := inquiry.NewService(store, log)
	flow := inquiry.NewFlow(inquiry.NewMemoryDraftStore(), service, log)

	handler := NewFlowHandler(flow, newErrHandler(t))
	engine := gin.New()
	engine.POST("/api/inquiry/flow/start", handler.Start)
	engine.POST("/api/inquiry/flow/:token", handler.Apply)
	return engine
}

func postFlow(engine *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeFlowState(t *testing.T, w *httptest.ResponseRecorder) inquiry.FlowState {
	t.Helper()
	var state inquiry.FlowState
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	return state
}

func TestFlowEndpoints_StartReturnsToken(t *testing.T) {
	engine := newFlowRouter(t, &flowStore{})

	w := postFlow(engine, "/api/inquiry/flow/start", `{"sourcePage": "/pricing"}`)

	require.Equal(t, http.StatusOK, w.Code)
	state := decodeFlowState(t, w)
	assert.NotEmpty(t, state.Token)
	assert.Equal(t, inquiry.StepContact, state.Step)
	assert.Equal(t, "/pricing", state.Draft.SourcePage)
}

func TestFlowEndpoints_StartWithEmptyBody(t *testing.T) {
	engine := newFlowRouter(t, &flowStore{})

	w := postFlow(engine, "/api/inquiry/flow/start", "")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestFlowEndpoints_FullSubmission(t *testing.T) {
	store := &flowStore{}
	engine := newFlowRouter(t, store)

	start := decodeFlowState(t, postFlow(engine, "/api/inquiry/flow/start", `{"sourcePage": "/"}`))
	path := fmt.Sprintf("/api/inquiry/flow/%s", start.Token)

	w := postFlow(engine, path, `{"fields": {"name": "Ada", "email": "ada@example.com"}, "action": "continue"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, inquiry.StepProject, decodeFlowState(t, w).Step)

	w = postFlow(engine, path, `{"fields": {"serviceInterest": "ad-creatives"}, "action": "continue"}`)
	require.Equal(t, http.StatusOK, w.Code)

	w = postFlow(engine, path, `{"action": "submit"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, inquiry.StatusSuccess, decodeFlowState(t, w).Status)

	require.Equal(t, 1, store.calls)
	assert.Equal(t, "Ada", store.doc["name"])
}

func TestFlowEndpoints_GateFailureIs400WithState(t *testing.T) {
	engine := newFlowRouter(t, &flowStore{})

	start := decodeFlowState(t, postFlow(engine, "/api/inquiry/flow/start", ""))
	path := fmt.Sprintf("/api/inquiry/flow/%s", start.Token)

	w := postFlow(engine, path, `{"fields": {"name": "Ada"}, "action": "continue"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error string            `json:"error"`
		State inquiry.FlowState `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, inquiry.StepContact, resp.State.Step)
	assert.Equal(t, "Ada", resp.State.Draft.Name, "field edits survive a rejected gate")
}

func TestFlowEndpoints_UnknownTokenIs404(t *testing.T) {
	engine := newFlowRouter(t, &flowStore{})

	w := postFlow(engine, "/api/inquiry/flow/not-a-token", `{"action": "continue"}`)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestFlowEndpoints_DoubleSubmitRejected(t *testing.T) {
	store := &flowStore{}
	engine := newFlowRouter(t, store)

	start := decodeFlowState(t, postFlow(engine, "/api/inquiry/flow/start", ""))
	path := fmt.Sprintf("/api/inquiry/flow/%s", start.Token)

	postFlow(engine, path, `{"fields": {"name": "Ada", "email": "ada@example.com"}, "action": "continue"}`)
	postFlow(engine, path, `{"fields": {"serviceInterest": "ad-creatives"}, "action": "continue"}`)
	require.Equal(t, http.StatusOK, postFlow(engine, path, `{"action": "submit"}`).Code)

	w := postFlow(engine, path, `{"action": "submit"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 1, store.calls)
}
