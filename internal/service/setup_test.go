package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/alexanderramin/aura/internal/db"
	"github.com/alexanderramin/aura/internal/domain"
	"github.com/alexanderramin/aura/internal/testutil"
	"github.com/stretchr/testify/require"
)

// fixedNow is a March morning: Summer season, Morning time of day.
var fixedNow = time.Date(2025, 3, 15, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

type testEnv struct {
	db    *sql.DB
	repos Repos
	uow   db.UnitOfWork
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	return &testEnv{
		db:    database,
		repos: NewSQLiteRepos(database),
		uow:   testutil.NewTestUoW(database),
	}
}

func (e *testEnv) saveProfile(t *testing.T, opts ...testutil.ProfileOption) *domain.UserProfile {
	t.Helper()
	p := testutil.NewTestProfile(opts...)
	require.NoError(t, e.repos.Profiles.Upsert(context.Background(), p))
	return p
}
