package scheduler

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Arshya-tech/ClearAlert/internal/alert"
	"github.com/Arshya-tech/ClearAlert/internal/store"
)

// Scheduler periodically refreshes alert snapshots for watched locations so
// the cached endpoint has recent data to serve.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *alert.Service
	store     *store.MemoryStore
	locations []string
	interval  time.Duration
}

// New creates a new Scheduler.
func New(locations []string, interval time.Duration, service *alert.Service, memStore *store.MemoryStore) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		service:   service,
		store:     memStore,
		locations: locations,
		interval:  interval,
	}
}

// Start schedules the periodic refresh job and starts the underlying
// scheduler.
func (s *Scheduler) Start() error {
	if len(s.locations) == 0 {
		log.Println("scheduler: no watch locations configured; nothing to schedule")
		return nil
	}

	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 15
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running alert refresh job")

		var wg sync.WaitGroup
		for _, loc := range s.locations {
			wg.Add(1)
			go func(loc string) {
				defer wg.Done()

				ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
				defer cancel()

				s.refresh(ctx, loc)
			}(loc)
		}
		wg.Wait()
		log.Println("scheduler: completed alert refresh job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) refresh(ctx context.Context, location string) {
	result, err := s.service.Current(ctx, location)
	if err != nil {
		log.Printf("scheduler: refresh failed for %q: %v", location, err)
		return
	}

	s.store.SaveSnapshot(location, store.Snapshot{
		Alerts:     result.Alerts,
		Location:   result.Location,
		Message:    result.Message,
		LastCached: time.Now().UTC(),
	})
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
