// Package server implements the HTTP server command.
package server

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	habitUC "atomichabits/internal/application/habit/usecases"
	notificationUC "atomichabits/internal/application/notification/usecases"
	userUC "atomichabits/internal/application/user/usecases"
	"atomichabits/internal/infrastructure/auth"
	"atomichabits/internal/infrastructure/config"
	"atomichabits/internal/infrastructure/database"
	"atomichabits/internal/infrastructure/migration"
	"atomichabits/internal/infrastructure/repository"
	"atomichabits/internal/infrastructure/token"
	httpRouter "atomichabits/internal/interfaces/http"
	"atomichabits/internal/interfaces/http/handlers"
	"atomichabits/internal/interfaces/http/middleware"
	"atomichabits/internal/shared/biztime"
	"atomichabits/internal/shared/logger"
)

var (
	env         string
	autoMigrate bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP API server",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Run database migrations on startup")

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

	log.Infow("starting server", "environment", env, "auto_migrate", autoMigrate)

	gin.DefaultWriter = io.Discard

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	gdb := database.Get()

	if autoMigrate {
		if err := migration.Migrate(gdb, log); err != nil {
			return err
		}
	}

	userRepo := repository.NewUserRepository(gdb, log)
	habitRepo := repository.NewHabitRepository(gdb, log)
	placeRepo := repository.NewPlaceRepository(gdb, log)
	linkTokenRepo := repository.NewTelegramLinkTokenRepository(gdb, log)

	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	jwtService := auth.NewJWTService(
		cfg.Auth.JWT.Secret,
		cfg.Auth.JWT.AccessExpMinutes,
		cfg.Auth.JWT.RefreshExpDays,
	)

	authHandler := handlers.NewAuthHandler(
		userUC.NewRegisterUserUseCase(userRepo, hasher, log),
		userUC.NewLoginUseCase(userRepo, hasher, jwtService, log),
		userUC.NewRefreshTokenUseCase(userRepo, jwtService, log),
		log,
	)
	habitHandler := handlers.NewHabitHandler(
		habitUC.NewCreateHabitUseCase(habitRepo, placeRepo, log),
		habitUC.NewGetHabitUseCase(habitRepo, log),
		habitUC.NewListHabitsUseCase(habitRepo, log),
		habitUC.NewListPublicHabitsUseCase(habitRepo, log),
		habitUC.NewUpdateHabitUseCase(habitRepo, placeRepo, log),
		habitUC.NewDeleteHabitUseCase(habitRepo, log),
		log,
	)
	placeHandler := handlers.NewPlaceHandler(
		habitUC.NewCreatePlaceUseCase(placeRepo, log),
		habitUC.NewGetPlaceUseCase(placeRepo, log),
		habitUC.NewListPlacesUseCase(placeRepo, log),
		habitUC.NewUpdatePlaceUseCase(placeRepo, log),
		habitUC.NewDeletePlaceUseCase(placeRepo, log),
		log,
	)
	telegramHandler := handlers.NewTelegramHandler(
		notificationUC.NewIssueLinkTokenUseCaseWithLifetime(
			linkTokenRepo,
			token.NewGenerator(),
			cfg.Telegram.BotUsername,
			time.Duration(cfg.Telegram.LinkTokenLifetimeMinutes)*time.Minute,
			log,
		),
		log,
	)

	router := httpRouter.NewRouter(
		authHandler,
		habitHandler,
		placeHandler,
		telegramHandler,
		middleware.NewAuthMiddleware(jwtService, log),
		log,
	)
	router.SetupRoutes(&cfg.Server)

	errChan := make(chan error, 1)
	go func() {
		errChan <- router.Start(cfg.Server.GetAddr())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := router.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}

	log.Infow("server exited gracefully")
	return nil
}
