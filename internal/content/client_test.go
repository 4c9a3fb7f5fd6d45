package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FaizBuildsStuff/matera-media/internal/common/config"
	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/sections"
)

func testContentConfig(token string) config.ContentConfig {
	return config.ContentConfig{
		ProjectID:  "testproj",
		Dataset:    "production",
		APIVersion: "2024-01-01",
		Token:      token,
		Timeout:    2000,
	}
}

func TestClient_FetchPage_DecodesDocument(t *testing.T) {
	var gotPath, gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.Query().Get("$slug")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"result": map[string]interface{}{
				"_id":   "home",
				"title": "Home",
				"slug":  map[string]string{"current": "home"},
				"sections": []map[string]interface{}{
					{"_type": "hero", "_key": "h1", "headline": "Hi"},
					{"_type": "faq", "_key": "f1"},
				},
			},
		})
	}))
	defer server.Close()

	client := NewClient(testContentConfig(""), WithBaseURL(server.URL))

	page, err := client.FetchPage(context.Background(), "home")
	require.NoError(t, err)
	require.NotNil(t, page)

	assert.Equal(t, "/data/query/production", gotPath)
	assert.Equal(t, `"home"`, gotQuery, "slug param is JSON-encoded")
	assert.Equal(t, "Home", page.Title)
	require.Len(t, page.Sections, 2)

	hero, ok := page.Sections[0].(sections.HeroSection)
	require.True(t, ok)
	assert.Equal(t, "Hi", hero.Headline)
}

func TestClient_FetchPage_NullResultMeansNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": null}`))
	}))
	defer server.Close()

	client := NewClient(testContentConfig(""), WithBaseURL(server.URL))

	page, err := client.FetchPage(context.Background(), "missing")
	assert.NoError(t, err, "a missing document is not a failure")
	assert.Nil(t, page)
}

func TestClient_FetchPage_ServerErrorIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(testContentConfig(""), WithBaseURL(server.URL))

	page, err := client.FetchPage(context.Background(), "home")
	require.Error(t, err)
	assert.Nil(t, page)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeContentFetchFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

func TestClient_FetchPage_MalformedDocumentIsFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"sections": "not-a-list"}}`))
	}))
	defer server.Close()

	client := NewClient(testContentConfig(""), WithBaseURL(server.URL))

	page, err := client.FetchPage(context.Background(), "home")
	require.Error(t, err)
	assert.Nil(t, page)

	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeContentFetchFailed, stdErr.Code)
}

func TestClient_Create_RequiresWriteToken(t *testing.T) {
	client := NewClient(testContentConfig(""))

	err := client.Create(context.Background(), map[string]interface{}{"_type": "inquiry"})
	assert.ErrorIs(t, err, ErrNoWriteToken)
}

func TestClient_Create_PostsMutation(t *testing.T) {
	var gotAuth string
	var gotBody map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.Write([]byte(`{"transactionId": "tx1"}`))
	}))
	defer server.Close()

	client := NewClient(testContentConfig("secret"), WithBaseURL(server.URL))

	doc := map[string]interface{}{"_type": "inquiry", "name": "Ada"}
	require.NoError(t, client.Create(context.Background(), doc))

	assert.Equal(t, "Bearer secret", gotAuth)

	mutations, ok := gotBody["mutations"].([]interface{})
	require.True(t, ok)
	require.Len(t, mutations, 1)
	create := mutations[0].(map[string]interface{})["create"].(map[string]interface{})
	assert.Equal(t, "inquiry", create["_type"])
	assert.Equal(t, "Ada", create["name"])
}

func TestClient_Create_NonOKStatusIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	client := NewClient(testContentConfig("secret"), WithBaseURL(server.URL))

	err := client.Create(context.Background(), map[string]interface{}{"_type": "inquiry"})
	assert.Error(t, err)
}
