package jobs

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/anhtong/guild-api/internal/model"
	"github.com/anhtong/guild-api/internal/service"
)

// EventCreator defines the interface for weekly event creation
type EventCreator interface {
	AutoCreateWeekly(ctx context.Context) (map[model.Region]*service.WeeklyEventResult, error)
}

// WeeklyEventCreator periodically ensures every region has an event for
// the current week. Creation is idempotent, so running the check more
// often than weekly only costs a read per region.
type WeeklyEventCreator struct {
	events   EventCreator
	interval time.Duration
	stopCh   chan struct{}
	wg       sync.WaitGroup
	running  bool
	mu       sync.Mutex
}

// NewWeeklyEventCreator creates a new weekly event creator job.
// A non-positive interval defaults to one hour.
func NewWeeklyEventCreator(events EventCreator, interval time.Duration) *WeeklyEventCreator {
	if interval <= 0 {
		interval = time.Hour
	}
	return &WeeklyEventCreator{
		events:   events,
		interval: interval,
		stopCh:   make(chan struct{}),
	}
}

// Start begins the weekly event creator job
func (j *WeeklyEventCreator) Start() {
	j.mu.Lock()
	if j.running {
		j.mu.Unlock()
		return
	}
	j.running = true
	j.mu.Unlock()

	j.wg.Add(1)
	go j.run()
	log.Println("Weekly event creator started")
}

// Stop gracefully stops the job
func (j *WeeklyEventCreator) Stop() {
	j.mu.Lock()
	if !j.running {
		j.mu.Unlock()
		return
	}
	j.running = false
	j.mu.Unlock()

	close(j.stopCh)
	j.wg.Wait()
	log.Println("Weekly event creator stopped")
}

func (j *WeeklyEventCreator) run() {
	defer j.wg.Done()

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	// Short delay before the first pass so startup isn't blocked on the
	// database being reachable.
	select {
	case <-time.After(5 * time.Second):
		j.checkAndRun()
	case <-j.stopCh:
		return
	}

	for {
		select {
		case <-ticker.C:
			j.checkAndRun()
		case <-j.stopCh:
			return
		}
	}
}

func (j *WeeklyEventCreator) checkAndRun() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if err := j.RunOnce(ctx); err != nil {
		log.Printf("Error creating weekly events: %v", err)
	}
}

// RunOnce performs one weekly-creation pass over all regions (for manual
// trigger or testing).
func (j *WeeklyEventCreator) RunOnce(ctx context.Context) error {
	results, err := j.events.AutoCreateWeekly(ctx)
	if err != nil {
		return err
	}

	for region, result := range results {
		if result.Created {
			log.Printf("Created weekly event for region %s (week of %s)",
				region, result.Event.WeekStartDate.Format("2006-01-02"))
		}
	}
	return nil
}

// IsRunning returns whether the job is running
func (j *WeeklyEventCreator) IsRunning() bool {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.running
}
