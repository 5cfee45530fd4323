package services

import (
	"ntd/internal/session"
	"ntd/internal/storage"
	"ntd/internal/structures"
	"ntd/internal/testutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixture wires the storage layer and session the way the injector does,
// minus the remote collaborators.
type fixture struct {
	store   *storage.Store
	db      *storage.FavoritesDB
	session *session.Session
	cache   *testutil.MockCache
	logger  *testutil.MockLogger
	metrics *testutil.MockMetrics
	conf    *structures.Config
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	conf := &structures.Config{}
	conf.Storage.DataDir = t.TempDir()
	conf.Storage.FavoritesDB = filepath.Join(conf.Storage.DataDir, "favorites.db")

	logger := &testutil.MockLogger{}
	store, err := storage.NewStore(conf, &testutil.MockCompressor{}, logger)
	require.NoError(t, err)

	db, err := storage.NewFavoritesDB(conf)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &fixture{
		store:   store,
		db:      db,
		session: session.NewSession(),
		cache:   testutil.NewMockCache(),
		logger:  logger,
		metrics: testutil.NewMockMetrics(),
		conf:    conf,
	}
}

func (f *fixture) mealService() MealServiceInterface {
	return NewMealService(f.store, f.session, f.logger)
}

func (f *fixture) addedService() AddedServiceInterface {
	return NewAddedService(f.store, f.session, f.logger)
}

func (f *fixture) favoritesService() FavoritesServiceInterface {
	return NewFavoritesService(f.db, f.session, f.logger)
}

func (f *fixture) dashboardService() DashboardServiceInterface {
	return NewDashboardService(f.store)
}
