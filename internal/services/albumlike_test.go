package services

import (
	"bytes"
	"context"
	"log"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prasetya/melodia-api/internal/cache"
	"github.com/prasetya/melodia-api/internal/database"
	"github.com/prasetya/melodia-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCache is an in-memory Cache for exercising the cache-aside paths
// without Redis. Errors are injected per call site.
type fakeCache struct {
	data      map[string]string
	getErr    error
	setErr    error
	deleteErr error
	sets      int
	deletes   int
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: map[string]string{}}
}

func (f *fakeCache) Get(_ context.Context, key string) (string, error) {
	if f.getErr != nil {
		return "", f.getErr
	}
	val, ok := f.data[key]
	if !ok {
		return "", cache.ErrMiss
	}
	return val, nil
}

func (f *fakeCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	f.sets++
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	f.deletes++
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.data, key)
	return nil
}

func setupAlbumLikeService(t *testing.T) (*AlbumLikeService, pgxmock.PgxPoolIface, *fakeCache) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() { mock.Close() })

	db := &database.DB{Pool: mock}
	fc := newFakeCache()
	return NewAlbumLikeService(db, fc, 30*time.Minute), mock, fc
}

func TestAlbumLikeService_Toggle_Like(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()
	fc.data[likesKey(albumID)] = "4"

	rows := pgxmock.NewRows([]string{"id"}).AddRow(uuid.New())
	mock.ExpectQuery(`INSERT INTO user_album_likes .+ ON CONFLICT .+ DO NOTHING`).
		WithArgs(userID, albumID).
		WillReturnRows(rows)

	status, err := svc.Toggle(ctx, userID, albumID)

	require.NoError(t, err)
	assert.Equal(t, models.LikeStatusLiked, status)
	// The stale count must be invalidated.
	assert.NotContains(t, fc.data, likesKey(albumID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Toggle_Unlike(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()
	fc.data[likesKey(albumID)] = "4"

	mock.ExpectQuery(`INSERT INTO user_album_likes .+ ON CONFLICT .+ DO NOTHING`).
		WithArgs(userID, albumID).
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectExec(`DELETE FROM user_album_likes`).
		WithArgs(userID, albumID).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))

	status, err := svc.Toggle(ctx, userID, albumID)

	require.NoError(t, err)
	assert.Equal(t, models.LikeStatusUnliked, status)
	assert.NotContains(t, fc.data, likesKey(albumID))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Toggle_RaceLostDelete(t *testing.T) {
	svc, mock, _ := setupAlbumLikeService(t)
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()

	// The conflicting like vanished between the failed insert and the delete.
	mock.ExpectQuery(`INSERT INTO user_album_likes .+ ON CONFLICT .+ DO NOTHING`).
		WithArgs(userID, albumID).
		WillReturnError(pgx.ErrNoRows)

	mock.ExpectExec(`DELETE FROM user_album_likes`).
		WithArgs(userID, albumID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	_, err := svc.Toggle(ctx, userID, albumID)

	assert.ErrorIs(t, err, ErrInvariant)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Toggle_DeleteFailureIgnored(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	userID := uuid.New()
	albumID := uuid.New()
	fc.deleteErr = assert.AnError

	rows := pgxmock.NewRows([]string{"id"}).AddRow(uuid.New())
	mock.ExpectQuery(`INSERT INTO user_album_likes .+ ON CONFLICT .+ DO NOTHING`).
		WithArgs(userID, albumID).
		WillReturnRows(rows)

	status, err := svc.Toggle(ctx, userID, albumID)

	// Cache invalidation is best-effort; the toggle still succeeds.
	require.NoError(t, err)
	assert.Equal(t, models.LikeStatusLiked, status)
	assert.Equal(t, 1, fc.deletes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_CacheHit(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()
	fc.data[likesKey(albumID)] = "42"

	count, source, err := svc.Count(ctx, albumID)

	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.Equal(t, models.CountSourceCache, source)
	// The database must not be queried on a hit.
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_CacheMiss(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()

	rows := pgxmock.NewRows([]string{"count"}).AddRow(7)
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM user_album_likes`).
		WithArgs(albumID).
		WillReturnRows(rows)

	count, source, err := svc.Count(ctx, albumID)

	require.NoError(t, err)
	assert.Equal(t, 7, count)
	assert.Equal(t, models.CountSourceDatabase, source)
	assert.Equal(t, "7", fc.data[likesKey(albumID)])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_CacheError(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()
	fc.getErr = assert.AnError

	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	rows := pgxmock.NewRows([]string{"count"}).AddRow(3)
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM user_album_likes`).
		WithArgs(albumID).
		WillReturnRows(rows)

	count, source, err := svc.Count(ctx, albumID)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, models.CountSourceDatabase, source)
	// The unexpected store failure is logged for diagnosis.
	assert.Contains(t, logged.String(), "cache read failed")
	assert.Contains(t, logged.String(), assert.AnError.Error())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_CacheMissNotLogged(t *testing.T) {
	svc, mock, _ := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()

	var logged bytes.Buffer
	log.SetOutput(&logged)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	rows := pgxmock.NewRows([]string{"count"}).AddRow(0)
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM user_album_likes`).
		WithArgs(albumID).
		WillReturnRows(rows)

	_, source, err := svc.Count(ctx, albumID)

	require.NoError(t, err)
	assert.Equal(t, models.CountSourceDatabase, source)
	assert.Empty(t, logged.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_UnparsablePayload(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()
	fc.data[likesKey(albumID)] = "not-a-number"

	rows := pgxmock.NewRows([]string{"count"}).AddRow(5)
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM user_album_likes`).
		WithArgs(albumID).
		WillReturnRows(rows)

	count, source, err := svc.Count(ctx, albumID)

	require.NoError(t, err)
	assert.Equal(t, 5, count)
	assert.Equal(t, models.CountSourceDatabase, source)
	// The garbage entry is overwritten with the authoritative count.
	assert.Equal(t, "5", fc.data[likesKey(albumID)])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_SetFailureIgnored(t *testing.T) {
	svc, mock, fc := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()
	fc.setErr = assert.AnError

	rows := pgxmock.NewRows([]string{"count"}).AddRow(9)
	mock.ExpectQuery(`SELECT COUNT\(id\) FROM user_album_likes`).
		WithArgs(albumID).
		WillReturnRows(rows)

	count, source, err := svc.Count(ctx, albumID)

	require.NoError(t, err)
	assert.Equal(t, 9, count)
	assert.Equal(t, models.CountSourceDatabase, source)
	assert.Equal(t, 1, fc.sets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlbumLikeService_Count_DatabaseError(t *testing.T) {
	svc, mock, _ := setupAlbumLikeService(t)
	ctx := context.Background()
	albumID := uuid.New()

	mock.ExpectQuery(`SELECT COUNT\(id\) FROM user_album_likes`).
		WithArgs(albumID).
		WillReturnError(assert.AnError)

	_, _, err := svc.Count(ctx, albumID)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
