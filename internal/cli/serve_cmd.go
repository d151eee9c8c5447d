package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/homedash/internal/db"
	"github.com/alexanderramin/homedash/internal/httpapi"
	"github.com/alexanderramin/homedash/internal/repository"
	"github.com/alexanderramin/homedash/internal/service"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dashboard API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := app.Config
			if addr != "" {
				cfg.Addr = addr
			}

			database, err := db.OpenDB(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}
			defer database.Close()

			bookmarkRepo := repository.NewSQLiteBookmarkRepo(database)
			todoRepo := repository.NewSQLiteTodoRepo(database)
			reminderRepo := repository.NewSQLiteReminderRepo(database)
			goalRepo := repository.NewSQLiteGoalRepo(database)
			fundRepo := repository.NewSQLiteFundRepo(database)
			savedMoneyRepo := repository.NewSQLiteSavedMoneyRepo(database)
			sessionRepo := repository.NewSQLiteTodoSessionRepo(database)

			uow := db.NewSQLiteUnitOfWork(database)

			handlers := httpapi.Handlers{
				Bookmarks:    httpapi.NewBookmarkHandler(service.NewBookmarkService(bookmarkRepo, uow)),
				Todos:        httpapi.NewTodoHandler(service.NewTodoService(todoRepo, uow)),
				Reminders:    httpapi.NewReminderHandler(service.NewReminderService(reminderRepo, uow)),
				Goals:        httpapi.NewGoalHandler(service.NewGoalService(goalRepo, uow)),
				Funds:        httpapi.NewFundHandler(service.NewFundService(fundRepo, uow)),
				SavedMoney:   httpapi.NewSavedMoneyHandler(service.NewSavedMoneyService(savedMoneyRepo)),
				TodoSessions: httpapi.NewTodoSessionHandler(service.NewTodoSessionService(sessionRepo)),
			}

			server := &http.Server{
				Addr:         cfg.Addr,
				Handler:      httpapi.NewRouter(app.Logger, handlers),
				ReadTimeout:  cfg.ReadTimeout,
				WriteTimeout: cfg.WriteTimeout,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				app.Logger.Info().Str("addr", cfg.Addr).Str("db", cfg.DBPath).Msg("server listening")
				errCh <- server.ListenAndServe()
			}()

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			app.Logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := server.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutdown: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides HOMEDASH_ADDR)")
	return cmd
}
