// Package habitstore is the local reactive query store behind a personal
// habit-tracking app. It persists categories, trackers, schedules and
// completion records in a file-backed SQLite database, answers
// date/weekday/search/completion queries as section-grouped snapshots,
// and streams incremental change batches to subscribed observers.
//
// The UI layer consumes the store through App: mutation services for
// writes, Subscribe for live, diffed query results.
package habitstore

import (
	"time"

	"habitstore/internal/config"
	"habitstore/internal/database"
	"habitstore/internal/liveset"
	"habitstore/internal/logger"
	"habitstore/internal/query"
	"habitstore/internal/scheduler"
	"habitstore/internal/services"
	"habitstore/internal/store"
)

// App wires the store, mutation services and live-query machinery for one
// database. It is the single logical owner of the entity store.
type App struct {
	Store       store.Store
	Categories  services.CategoryServicer
	Trackers    services.TrackerServicer
	Completions services.CompletionServicer

	// Degraded is true when the database could not be opened and the app
	// is running on the null store: reads are empty, writes fail with
	// STORAGE_UNAVAILABLE.
	Degraded bool

	hub      *liveset.Hub
	engine   *query.Engine
	rollover *scheduler.Rollover
}

// Open loads configuration, opens the database, and wires the services.
// When the database cannot be opened, the app comes up degraded on the
// null store instead of failing, so the caller's UI keeps working.
func Open() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Init(cfg.Env)

	var s store.Store
	degraded := false
	db, err := database.Open(cfg.DBPath)
	if err != nil {
		logger.Get().Warnw("falling back to null store", "error", err)
		s = store.NewNullStore()
		degraded = true
	} else {
		s = store.New(db)
	}

	hub := liveset.NewHub()
	app := &App{
		Store:       s,
		Categories:  services.NewCategoryService(s, hub),
		Trackers:    services.NewTrackerService(s, hub),
		Completions: services.NewCompletionService(s, hub),
		Degraded:    degraded,
		hub:         hub,
		engine:      query.NewEngine(s, cfg.Locale),
	}

	app.rollover = scheduler.NewRollover(hub, time.Local)
	if err := app.rollover.Start(); err != nil {
		if db != nil {
			if sqlDB, dbErr := db.DB(); dbErr == nil {
				sqlDB.Close()
			}
		}
		return nil, err
	}

	return app, nil
}

// Subscribe attaches an observer to a live result set for the given
// reference date. The observer receives an initial reset batch, then one
// ordered batch per effective change. Release the subscription with
// Unsubscribe.
func (a *App) Subscribe(date time.Time, observer liveset.Observer) *liveset.LiveResultSet {
	l := liveset.Subscribe(a.engine, query.NewParams(date), observer)
	a.hub.Attach(l)
	return l
}

// Unsubscribe detaches and closes a live result set.
func (a *App) Unsubscribe(l *liveset.LiveResultSet) {
	a.hub.Detach(l)
	l.Close()
}

// Close stops the rollover scheduler and flushes logs.
func (a *App) Close() {
	a.rollover.Stop()
	logger.Sync()
}
