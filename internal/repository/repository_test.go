package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"chirpy/internal/database"
	"chirpy/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:repo_%s_%d?mode=memory&cache=shared&_pragma=foreign_keys(1)&_time_format=sqlite", name, time.Now().UnixNano())

	db, err := database.Connect(dsn)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func createUser(t *testing.T, repo *UserRepository, email string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, HashedPassword: "hash"}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	u := createUser(t, repo, "  Walt@BreakingBad.com ")
	assert.NotEqual(t, uuid.Nil, u.ID)
	assert.Equal(t, "walt@breakingbad.com", u.Email)
	assert.False(t, u.IsChirpyRed)

	t.Run("duplicate email", func(t *testing.T) {
		err := repo.Create(ctx, &domain.User{Email: "walt@breakingbad.com", HashedPassword: "x"})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := repo.GetByEmail(ctx, "WALT@breakingbad.com")
		require.NoError(t, err)
		assert.Equal(t, u.ID, got.ID)

		_, err = repo.GetByEmail(ctx, "jesse@breakingbad.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update credentials", func(t *testing.T) {
		got, err := repo.UpdateCredentials(ctx, u.ID, "heisenberg@breakingbad.com", "new-hash")
		require.NoError(t, err)
		assert.Equal(t, "heisenberg@breakingbad.com", got.Email)
		assert.Equal(t, "new-hash", got.HashedPassword)

		_, err = repo.UpdateCredentials(ctx, uuid.New(), "x@y.z", "h")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update to taken email", func(t *testing.T) {
		other := createUser(t, repo, "jesse@breakingbad.com")
		_, err := repo.UpdateCredentials(ctx, other.ID, "heisenberg@breakingbad.com", "h")
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("chirpy red", func(t *testing.T) {
		require.NoError(t, repo.UpgradeToChirpyRed(ctx, u.ID))
		got, err := repo.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, got.IsChirpyRed)

		// idempotent
		require.NoError(t, repo.UpgradeToChirpyRed(ctx, u.ID))
		assert.ErrorIs(t, repo.UpgradeToChirpyRed(ctx, uuid.New()), ErrNotFound)
	})

	t.Run("delete all", func(t *testing.T) {
		n, err := repo.DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		_, err = repo.GetByID(ctx, u.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestChirpRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewChirpRepository(db)

	walt := createUser(t, users, "walt@breakingbad.com")
	jesse := createUser(t, users, "jesse@breakingbad.com")

	bodies := []struct {
		user *domain.User
		body string
	}{
		{walt, "I'm the one who knocks!"},
		{jesse, "Yo"},
		{walt, "Say my name"},
	}
	for _, b := range bodies {
		require.NoError(t, repo.Create(ctx, &domain.Chirp{Body: b.body, UserID: b.user.ID}))
		time.Sleep(2 * time.Millisecond)
	}

	t.Run("unknown author", func(t *testing.T) {
		err := repo.Create(ctx, &domain.Chirp{Body: "ghost", UserID: uuid.New()})
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("list all ascending", func(t *testing.T) {
		got, err := repo.List(ctx, ChirpFilter{})
		require.NoError(t, err)
		require.Len(t, got, 3)
		assert.Equal(t, "I'm the one who knocks!", got[0].Body)
		assert.Equal(t, "Say my name", got[2].Body)
	})

	t.Run("list by author descending", func(t *testing.T) {
		got, err := repo.List(ctx, ChirpFilter{AuthorID: walt.ID, Desc: true})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, "Say my name", got[0].Body)
		for _, c := range got {
			assert.Equal(t, walt.ID, c.UserID)
		}
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		got, err := repo.List(ctx, ChirpFilter{AuthorID: uuid.New()})
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("get and delete", func(t *testing.T) {
		all, err := repo.List(ctx, ChirpFilter{})
		require.NoError(t, err)
		id := all[1].ID

		got, err := repo.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Yo", got.Body)

		require.NoError(t, repo.Delete(ctx, id))
		_, err = repo.GetByID(ctx, id)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, repo.Delete(ctx, id), ErrNotFound)
	})
}

func TestRefreshTokenRepository(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	repo := NewRefreshTokenRepository(db)
	now := time.Now().UTC()

	walt := createUser(t, users, "walt@breakingbad.com")

	active := &domain.RefreshToken{Token: "active", UserID: walt.ID, ExpiresAt: now.Add(24 * time.Hour)}
	expired := &domain.RefreshToken{Token: "expired", UserID: walt.ID, ExpiresAt: now.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, active))
	require.NoError(t, repo.Create(ctx, expired))

	t.Run("active token resolves owner", func(t *testing.T) {
		u, err := repo.GetUserByActiveToken(ctx, "active", now)
		require.NoError(t, err)
		assert.Equal(t, walt.ID, u.ID)
	})

	t.Run("expired and unknown tokens", func(t *testing.T) {
		_, err := repo.GetUserByActiveToken(ctx, "expired", now)
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = repo.GetUserByActiveToken(ctx, "nope", now)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("expired token cannot be revoked", func(t *testing.T) {
		assert.ErrorIs(t, repo.Revoke(ctx, "expired", now), ErrNotFound)

		stored, err := repo.GetByToken(ctx, "expired")
		require.NoError(t, err)
		assert.False(t, stored.IsRevoked())
		assert.False(t, stored.IsActive(now))
	})

	t.Run("revoke once", func(t *testing.T) {
		require.NoError(t, repo.Revoke(ctx, "active", now))

		stored, err := repo.GetByToken(ctx, "active")
		require.NoError(t, err)
		assert.True(t, stored.IsRevoked())

		_, err = repo.GetUserByActiveToken(ctx, "active", now)
		assert.ErrorIs(t, err, ErrNotFound)

		assert.ErrorIs(t, repo.Revoke(ctx, "active", now), ErrNotFound)
		assert.ErrorIs(t, repo.Revoke(ctx, "never-issued", now), ErrNotFound)
	})

	t.Run("unknown user", func(t *testing.T) {
		err := repo.Create(ctx, &domain.RefreshToken{Token: "orphan", UserID: uuid.New(), ExpiresAt: now.Add(time.Hour)})
		assert.ErrorIs(t, err, ErrForeignKey)
	})
}
