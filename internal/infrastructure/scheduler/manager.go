// Package scheduler manages periodic jobs using gocron v2.
package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"

	"atomichabits/internal/application/notification/usecases"
	"atomichabits/internal/shared/biztime"
	"atomichabits/internal/shared/logger"
)

// SchedulerManager owns the gocron scheduler instance. Jobs run in the
// business timezone so that a habit stored as "07:30" fires at 07:30 on the
// user's wall clock, not at 07:30 UTC.
type SchedulerManager struct {
	scheduler gocron.Scheduler
	logger    logger.Interface

	started   bool
	startedMu sync.RWMutex
}

// NewSchedulerManager creates a scheduler bound to the business timezone.
func NewSchedulerManager(log logger.Interface) (*SchedulerManager, error) {
	scheduler, err := gocron.NewScheduler(
		gocron.WithLocation(biztime.Location()),
	)
	if err != nil {
		return nil, err
	}

	return &SchedulerManager{
		scheduler: scheduler,
		logger:    log,
	}, nil
}

// RegisterReminderJob schedules the reminder dispatcher on every minute.
// Singleton mode with LimitModeReschedule skips a tick while the previous
// one is still running, so a slow Telegram API can never stack dispatches
// of the same minute.
func (m *SchedulerManager) RegisterReminderJob(dispatcher *usecases.SendRemindersUseCase) error {
	_, err := m.scheduler.NewJob(
		gocron.CronJob("* * * * *", false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), 55*time.Second)
			defer cancel()
			m.dispatchReminders(ctx, dispatcher)
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithTags("notification", "reminder"),
		gocron.WithName("reminder-dispatcher"),
	)
	if err != nil {
		return err
	}

	m.logger.Infow("registered reminder dispatcher", "cadence", "every minute")
	return nil
}

func (m *SchedulerManager) dispatchReminders(ctx context.Context, dispatcher *usecases.SendRemindersUseCase) {
	startTime := biztime.NowUTC()

	result, err := dispatcher.Execute(ctx, biztime.NowBiz())
	if err != nil {
		m.logger.Errorw("reminder dispatch failed",
			"error", err,
			"duration", time.Since(startTime),
		)
		return
	}

	if result.Matched > 0 {
		m.logger.Infow("reminders dispatched",
			"matched", result.Matched,
			"attempted", result.Attempted,
			"delivered", result.Delivered,
			"duration", time.Since(startTime),
		)
	}
}

// Start begins executing registered jobs.
func (m *SchedulerManager) Start() {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if m.started {
		return
	}

	m.scheduler.Start()
	m.started = true
	m.logger.Infow("scheduler started", "jobs", len(m.scheduler.Jobs()))
}

// Stop shuts down the scheduler and waits for running jobs to complete.
func (m *SchedulerManager) Stop() error {
	m.startedMu.Lock()
	defer m.startedMu.Unlock()

	if !m.started {
		return nil
	}

	if err := m.scheduler.Shutdown(); err != nil {
		m.logger.Errorw("scheduler shutdown error", "error", err)
		return err
	}

	m.started = false
	m.logger.Infow("scheduler stopped")
	return nil
}
