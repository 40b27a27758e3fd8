package integration

import (
	"context"
	"testing"

	"github.com/prasetya/melodia-api/internal/models"
	"github.com/prasetya/melodia-api/internal/services"
	"github.com/prasetya/melodia-api/tests/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlaylistService_Integration_Create(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPlaylistService(tdb.DB, services.NewCollaborationService(tdb.DB))
	ctx := context.Background()

	owner := fixtures.CreateUser(t)

	playlist, err := svc.Create(ctx, "Road Trip", owner.ID)

	require.NoError(t, err)
	assert.NotEmpty(t, playlist.ID)
	assert.Equal(t, "Road Trip", playlist.Name)
	assert.Equal(t, owner.ID, playlist.OwnerID)

	access, err := svc.VerifyAccess(ctx, playlist.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccessOwner, access)
}

func TestPlaylistService_Integration_AccessTransitions(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	collabSvc := services.NewCollaborationService(tdb.DB)
	svc := services.NewPlaylistService(tdb.DB, collabSvc)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	other := fixtures.CreateUser(t)
	playlist := fixtures.CreatePlaylist(t, owner)

	// Before the grant the second user has no access at all.
	_, err := svc.VerifyAccess(ctx, playlist.ID, other.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Grant collaborator access.
	_, err = collabSvc.Add(ctx, playlist.ID, other.ID)
	require.NoError(t, err)

	access, err := svc.VerifyAccess(ctx, playlist.ID, other.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccessCollaborator, access)

	// The owner keeps owner standing even while others collaborate.
	access, err = svc.VerifyAccess(ctx, playlist.ID, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AccessOwner, access)

	// Revoke and the access disappears again.
	err = collabSvc.Remove(ctx, playlist.ID, other.ID)
	require.NoError(t, err)

	_, err = svc.VerifyAccess(ctx, playlist.ID, other.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestPlaylistService_Integration_VerifyAccess_MissingPlaylist(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPlaylistService(tdb.DB, services.NewCollaborationService(tdb.DB))
	ctx := context.Background()

	user := fixtures.CreateUser(t)
	missing := fixtures.CreatePlaylist(t, user)
	require.NoError(t, svc.Delete(ctx, missing.ID))

	_, err := svc.VerifyAccess(ctx, missing.ID, user.ID)

	assert.ErrorIs(t, err, services.ErrNotFound)
	assert.NotErrorIs(t, err, services.ErrForbidden)
}

func TestPlaylistService_Integration_GetForUser(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	collabSvc := services.NewCollaborationService(tdb.DB)
	svc := services.NewPlaylistService(tdb.DB, collabSvc)
	ctx := context.Background()

	alice := fixtures.CreateUser(t)
	bob := fixtures.CreateUser(t)

	owned := fixtures.CreatePlaylist(t, alice)
	shared := fixtures.CreatePlaylist(t, bob)
	fixtures.CreatePlaylist(t, bob) // not shared with alice

	_, err := collabSvc.Add(ctx, shared.ID, alice.ID)
	require.NoError(t, err)

	playlists, err := svc.GetForUser(ctx, alice.ID)

	require.NoError(t, err)
	assert.Len(t, playlists, 2)

	ids := []string{playlists[0].ID.String(), playlists[1].ID.String()}
	assert.Contains(t, ids, owned.ID.String())
	assert.Contains(t, ids, shared.ID.String())
}

func TestPlaylistService_Integration_AddSong_Duplicate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewPlaylistService(tdb.DB, services.NewCollaborationService(tdb.DB))
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	playlist := fixtures.CreatePlaylist(t, owner)
	song := fixtures.CreateSong(t, nil)

	err := svc.AddSong(ctx, playlist.ID, song.ID)
	require.NoError(t, err)

	// A second add of the same song must fail as a business-rule violation.
	err = svc.AddSong(ctx, playlist.ID, song.ID)
	assert.ErrorIs(t, err, services.ErrInvariant)

	songs, err := svc.GetSongs(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Len(t, songs, 1)
}

func TestCollaborationService_Integration_DuplicateGrant(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	tdb := setupTest(t)
	fixtures := testutil.NewFixtures(tdb.DB)
	svc := services.NewCollaborationService(tdb.DB)
	ctx := context.Background()

	owner := fixtures.CreateUser(t)
	collaborator := fixtures.CreateUser(t)
	playlist := fixtures.CreatePlaylist(t, owner)

	_, err := svc.Add(ctx, playlist.ID, collaborator.ID)
	require.NoError(t, err)

	_, err = svc.Add(ctx, playlist.ID, collaborator.ID)
	assert.ErrorIs(t, err, services.ErrInvariant)
}
