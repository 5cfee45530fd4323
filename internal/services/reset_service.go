package services

import (
	"ntd/internal/cache"
	"ntd/internal/providers"
	"ntd/internal/storage"
	"sync"
	"time"
)

const lastResetDateKey = "last_daily_reset_date"

type ResetServiceInterface interface {
	CheckAndReset() bool
	ForceReset()
	LastResetDate() string
	IsNewDay() bool
}

// ResetService rolls the per-day stores over at local-midnight granularity.
// The marker is stored process-wide, not per user scope: when two users
// share one installation, a reset performed under one account also advances
// the marker seen by the other. That is the observed product behavior and
// is kept intact.
type ResetService struct {
	mu        sync.Mutex
	store     *storage.Store
	meals     MealServiceInterface
	dashboard DashboardServiceInterface
	respCache providers.CacheProviderInterface
	metrics   providers.MetricsProviderInterface
	logger    providers.Logger
	now       cache.Clock
}

func NewResetService(store *storage.Store, meals MealServiceInterface, dashboard DashboardServiceInterface, respCache providers.CacheProviderInterface, metrics providers.MetricsProviderInterface, logger providers.Logger) ResetServiceInterface {
	return &ResetService{
		store:     store,
		meals:     meals,
		dashboard: dashboard,
		respCache: respCache,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

func (rs *ResetService) namespace() *storage.Namespace {
	return rs.store.Open(appStateBase, storage.DefaultScope)
}

func (rs *ResetService) today() string {
	return rs.now().Format("2006-01-02")
}

// CheckAndReset performs the reset sequence when the calendar date moved past
// the marker. Calling it again on the same day is a no-op, so it is safe to
// invoke on every request. Returns whether a reset ran.
func (rs *ResetService) CheckAndReset() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	today := rs.today()
	marker, _ := rs.namespace().Get(lastResetDateKey)
	if today == marker {
		return false
	}

	rs.logger.Infof(providers.TypeApp, "New day detected (today %s, last reset %q), performing daily reset", today, marker)
	rs.performReset(today)
	return true
}

// ForceReset bypasses the date check. Manual recovery path.
func (rs *ResetService) ForceReset() {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	rs.logger.Infof(providers.TypeApp, "Forced daily reset")
	rs.performReset(rs.today())
}

// performReset clears the meal ledger, zeroes the per-day counters and
// advances the marker. Targets are left untouched. The response cache is
// dropped wholesale so no handler serves a pre-reset payload afterwards.
// Caller holds rs.mu.
func (rs *ResetService) performReset(today string) {
	rs.meals.ClearAll()
	rs.dashboard.ResetDaily()
	rs.respCache.Clear()
	rs.namespace().Put(lastResetDateKey, today)
	rs.metrics.IncDailyResets()
}

func (rs *ResetService) LastResetDate() string {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	marker, ok := rs.namespace().Get(lastResetDateKey)
	if !ok {
		return "never"
	}
	return marker
}

func (rs *ResetService) IsNewDay() bool {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	marker, _ := rs.namespace().Get(lastResetDateKey)
	return rs.today() != marker
}
