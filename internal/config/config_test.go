package config

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFeedUser = "0d9ab5a6-4c2b-4b7e-9d3e-5a1f0c8e2b71"

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("DB_URL", "file:config_test?mode=memory")
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("POLKA_KEY", "polka")
	t.Setenv("CHIRPS_FEED_USER_ID", testFeedUser)
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Platform)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "./public", cfg.FileserverRoot)
	assert.Equal(t, time.Hour, cfg.AccessTTL)
	assert.Equal(t, 60*24*time.Hour, cfg.RefreshTTL)
	assert.Equal(t, uuid.MustParse(testFeedUser), cfg.FeedUserID)
	assert.False(t, cfg.IsDev())
	assert.True(t, cfg.IsProdLike())
}

func TestLoad_Overrides(t *testing.T) {
	setRequired(t)
	feed := uuid.New()
	t.Setenv("PLATFORM", "DEV")
	t.Setenv("PORT", "9090")
	t.Setenv("ACCESS_TOKEN_TTL", "30m")
	t.Setenv("CHIRPS_FEED_USER_ID", feed.String())
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 30*time.Minute, cfg.AccessTTL)
	assert.Equal(t, feed, cfg.FeedUserID)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoad_MissingRequired(t *testing.T) {
	cases := []struct {
		name  string
		unset string
	}{
		{name: "db url", unset: "DB_URL"},
		{name: "secret", unset: "SECRET_KEY"},
		{name: "polka", unset: "POLKA_KEY"},
		{name: "feed user", unset: "CHIRPS_FEED_USER_ID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tc.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.unset)
		})
	}
}

func TestLoad_InvalidFeedUser(t *testing.T) {
	setRequired(t)
	t.Setenv("CHIRPS_FEED_USER_ID", "not-a-uuid")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHIRPS_FEED_USER_ID")
}

func TestLoad_NilFeedUser(t *testing.T) {
	setRequired(t)
	t.Setenv("CHIRPS_FEED_USER_ID", uuid.Nil.String())

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHIRPS_FEED_USER_ID")
}

func TestLoad_AccessTTLCap(t *testing.T) {
	setRequired(t)

	t.Setenv("ACCESS_TOKEN_TTL", "1h")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, MaxAccessTTL, cfg.AccessTTL)

	t.Setenv("ACCESS_TOKEN_TTL", "24h")
	_, err = Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ACCESS_TOKEN_TTL")

	t.Setenv("ACCESS_TOKEN_TTL", "3601s")
	_, err = Load()
	require.Error(t, err)
}
