// Package scheduler triggers the daily comic-update sweep.
package scheduler

import (
	"context"
	"log"
	"sync"
	"time"
)

// Sweeper is implemented by the notification service.
type Sweeper interface {
	Sweep(ctx context.Context) error
}

// Scheduler fires once per day at a fixed wall-clock time. Each firing runs
// the sweep in its own goroutine; a sweep that outlives the next firing is
// not serialized against it.
type Scheduler struct {
	sweeper Sweeper
	hour    int
	minute  int

	now func() time.Time

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(sweeper Sweeper, hour, minute int) *Scheduler {
	return &Scheduler{
		sweeper: sweeper,
		hour:    hour,
		minute:  minute,
		now:     time.Now,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

func (s *Scheduler) Start() {
	go s.run()
}

func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Scheduler) run() {
	defer close(s.done)
	for {
		d := s.untilNextRun()
		log.Printf("[scheduler] next sweep in %s", d.Truncate(time.Second))

		timer := time.NewTimer(d)
		select {
		case <-s.stop:
			timer.Stop()
			return
		case <-timer.C:
			go func() {
				if err := s.sweeper.Sweep(context.Background()); err != nil {
					log.Printf("[scheduler] sweep failed: %v", err)
				}
			}()
		}
	}
}

// untilNextRun returns the duration until the next hh:mm, local time.
func (s *Scheduler) untilNextRun() time.Duration {
	now := s.now()
	next := time.Date(now.Year(), now.Month(), now.Day(), s.hour, s.minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}
