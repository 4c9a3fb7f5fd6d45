package inquiry

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FaizBuildsStuff/matera-media/internal/common/config"
	"github.com/FaizBuildsStuff/matera-media/internal/common/database"
	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
)

func newRedisStoreUnderTest(t *testing.T) (*RedisDraftStore, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	client, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return NewRedisDraftStore(client), mr
}

func assertDraftNotFound(t *testing.T, err error) {
	t.Helper()
	var stdErr *apperrors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, apperrors.ErrCodeDraftNotFound, stdErr.Code)
}

func TestRedisDraftStore_SaveAndLoad(t *testing.T) {
	store, _ := newRedisStoreUnderTest(t)
	ctx := context.Background()

	form := NewForm("/pricing")
	form.Draft.Name = "Ada"
	require.NoError(t, form.SetField("email", "ada@example.com"))
	require.NoError(t, form.Continue())

	require.NoError(t, store.Save(ctx, "tok-1", form))

	loaded, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, StepProject, loaded.Step)
	assert.Equal(t, StatusIdle, loaded.Status)
	assert.Equal(t, "Ada", loaded.Draft.Name)
	assert.Equal(t, "/pricing", loaded.Draft.SourcePage)
}

func TestRedisDraftStore_LoadMissingToken(t *testing.T) {
	store, _ := newRedisStoreUnderTest(t)

	_, err := store.Load(context.Background(), "nope")
	assertDraftNotFound(t, err)
}

func TestRedisDraftStore_DraftsExpire(t *testing.T) {
	store, mr := newRedisStoreUnderTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", NewForm("")))

	mr.FastForward(DraftTTL + time.Minute)

	_, err := store.Load(ctx, "tok-1")
	assertDraftNotFound(t, err)
}

func TestRedisDraftStore_Delete(t *testing.T) {
	store, _ := newRedisStoreUnderTest(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "tok-1", NewForm("")))
	require.NoError(t, store.Delete(ctx, "tok-1"))

	_, err := store.Load(ctx, "tok-1")
	assertDraftNotFound(t, err)
}

func TestMemoryDraftStore_SaveAndLoad(t *testing.T) {
	store := NewMemoryDraftStore()
	ctx := context.Background()

	form := NewForm("/saas-videos")
	form.Draft.Name = "Ada"
	require.NoError(t, store.Save(ctx, "tok-1", form))

	loaded, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", loaded.Draft.Name)

	// Loaded form is a copy; mutating it does not change the stored draft.
	loaded.Draft.Name = "Changed"
	again, err := store.Load(ctx, "tok-1")
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.Draft.Name)
}

func TestMemoryDraftStore_MissingToken(t *testing.T) {
	store := NewMemoryDraftStore()
	_, err := store.Load(context.Background(), "nope")
	assertDraftNotFound(t, err)
}
