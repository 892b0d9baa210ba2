// Package bot implements the Telegram bot command. It runs the long-polling
// account linker and the minute-cadence reminder dispatcher in one process,
// because both need the authorized bot client.
package bot

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	notificationUC "atomichabits/internal/application/notification/usecases"
	"atomichabits/internal/infrastructure/config"
	"atomichabits/internal/infrastructure/database"
	"atomichabits/internal/infrastructure/repository"
	"atomichabits/internal/infrastructure/scheduler"
	"atomichabits/internal/infrastructure/telegram"
	"atomichabits/internal/shared/biztime"
	"atomichabits/internal/shared/db"
	"atomichabits/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Start the Telegram bot and reminder dispatcher",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		env = envVar
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.NewLogger()

	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return fmt.Errorf("invalid timezone %q: %w", cfg.Server.Timezone, err)
	}

	log.Infow("starting bot", "environment", env)

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()

	userRepo := repository.NewUserRepository(gdb, log)
	habitRepo := repository.NewHabitRepository(gdb, log)
	linkTokenRepo := repository.NewTelegramLinkTokenRepository(gdb, log)
	profileRepo := repository.NewTelegramProfileRepository(gdb, log)
	txManager := db.NewTransactionManager(gdb)

	botService, err := telegram.NewBotService(cfg.Telegram, log)
	if err != nil {
		return err
	}

	linker := notificationUC.NewLinkAccountUseCase(linkTokenRepo, profileRepo, userRepo, txManager, log)
	polling := telegram.NewPollingService(botService, linker, cfg.Telegram.PollTimeoutSeconds, log)

	sender := telegram.NewReminderSender(botService, cfg.Telegram.SendTimeoutSeconds, log)
	dispatcher := notificationUC.NewSendRemindersUseCase(habitRepo, profileRepo, sender, log)

	schedulerManager, err := scheduler.NewSchedulerManager(log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	if err := schedulerManager.RegisterReminderJob(dispatcher); err != nil {
		return fmt.Errorf("failed to register reminder job: %w", err)
	}
	schedulerManager.Start()
	defer schedulerManager.Stop()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errChan := make(chan error, 1)
	go func() {
		errChan <- polling.Start(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Infow("shutting down bot", "signal", sig.String())
	}

	cancel()
	polling.Stop()

	log.Infow("bot exited gracefully")
	return nil
}
