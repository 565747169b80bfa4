package scheduler

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/i474232898/baro-forecast/internal/station"
)

// Scheduler periodically polls the sensor source and recomputes the forecast.
type Scheduler struct {
	scheduler *gocron.Scheduler
	service   *station.Service
	interval  time.Duration
}

// New creates a new Scheduler.
func New(interval time.Duration, service *station.Service) *Scheduler {
	s := gocron.NewScheduler(time.UTC)
	return &Scheduler{
		scheduler: s,
		service:   service,
		interval:  interval,
	}
}

// Start schedules the periodic poll job and starts the underlying scheduler.
func (s *Scheduler) Start() error {
	minutes := int(s.interval.Minutes())
	if minutes <= 0 {
		minutes = 10
	}

	_, err := s.scheduler.Every(minutes).Minutes().Do(func() {
		log.Println("scheduler: running sensor poll job")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := s.service.PollAndStore(ctx); err != nil {
			log.Printf("scheduler: poll failed: %v", err)
			return
		}
		log.Println("scheduler: completed sensor poll job")
	})
	if err != nil {
		return err
	}

	s.scheduler.StartAsync()
	return nil
}

// Stop stops the scheduler and cancels any future jobs.
func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
