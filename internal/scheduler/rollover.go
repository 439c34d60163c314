// Package scheduler drives the midnight day rollover: when the calendar
// day changes, every attached live result set gets the new reference date
// pushed so "today" views stay current without user interaction.
package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"

	"habitstore/internal/liveset"
	"habitstore/internal/logger"
	"habitstore/internal/models"
)

// Rollover runs a cron job at local midnight that rolls attached live
// result sets onto the new day.
type Rollover struct {
	cron *cron.Cron
	hub  *liveset.Hub
	now  func() time.Time
}

// NewRollover creates a rollover for the hub's live result sets,
// evaluated in the given location.
func NewRollover(hub *liveset.Hub, loc *time.Location) *Rollover {
	return &Rollover{
		cron: cron.New(cron.WithLocation(loc)),
		hub:  hub,
		now:  time.Now,
	}
}

// Start schedules the midnight job and starts the cron runner.
func (r *Rollover) Start() error {
	// cron format: minute hour dom month dow
	if _, err := r.cron.AddFunc("0 0 * * *", r.roll); err != nil {
		return err
	}
	r.cron.Start()
	return nil
}

// Stop halts the cron runner and waits for a running job to finish.
func (r *Rollover) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

func (r *Rollover) roll() {
	today := models.DayOf(r.now())
	logger.Get().Infow("rolling live result sets to new day", "date", today)
	r.hub.RollDate(today)
}
