package scheduler

import (
	"ntd/internal/providers"
	"ntd/internal/services"
	"ntd/internal/storage"
	"ntd/internal/storage/interfaces"
	"ntd/internal/structures"
	"sync"
	"time"

	"github.com/roylee0704/gron"
)

// resetCheckInterval is how often the rollover check runs between requests.
// The check is also piggybacked on every API request, so this only matters
// for long idle stretches.
const resetCheckInterval = 15 * time.Minute

type Scheduler struct {
	config *structures.Config
	logger providers.Logger
	store  *storage.Store
	reset  services.ResetServiceInterface
	cron   *gron.Cron
	opsMu  sync.Mutex
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *storage.Store, reset services.ResetServiceInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config: config,
		logger: logger,
		store:  store,
		reset:  reset,
	}
}

func (s *Scheduler) Init() {
	s.cron = gron.New()

	s.cron.AddFunc(gron.Every(s.config.Storage.FlushInterval), func() {
		s.opsMu.Lock()
		defer s.opsMu.Unlock()

		if err := s.store.FlushAll(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Error while flushing namespaces: %s", err)
			return
		}
		s.logger.Debugf(providers.TypeApp, "Flushed dirty namespaces to %s", s.config.Storage.DataDir)
	})

	s.cron.AddFunc(gron.Every(resetCheckInterval), func() {
		if s.reset.CheckAndReset() {
			s.logger.Infof(providers.TypeApp, "Scheduled tick performed the daily reset")
		}
	})

	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore runs the startup-time rollover check so stale per-day data is never
// served after the process was down across midnight.
func (s *Scheduler) Restore() error {
	if s.reset.CheckAndReset() {
		s.logger.Infof(providers.TypeApp, "Startup check performed the daily reset")
	}
	return nil
}

func (s *Scheduler) Persist() error {
	s.opsMu.Lock()
	defer s.opsMu.Unlock()

	s.logger.Infof(providers.TypeApp, "Persisting namespaces to disk...")
	if err := s.store.FlushAll(); err != nil {
		s.logger.Errorf(providers.TypeApp, "Error while persisting data: %s", err)
		return err
	}
	return nil
}
