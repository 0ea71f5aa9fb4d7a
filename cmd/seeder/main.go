// cmd/seeder/main.go
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ammerola/phone-inventory/internal/adapters/memory"
	"github.com/ammerola/phone-inventory/internal/bootstrap"
	"github.com/ammerola/phone-inventory/internal/core/domain"
	"github.com/ammerola/phone-inventory/internal/core/services"
	"github.com/ammerola/phone-inventory/internal/pkg/config"
	"github.com/ammerola/phone-inventory/internal/pkg/logger"
	"github.com/ammerola/phone-inventory/internal/pkg/spreadsheet"
)

// phoneCreator is the part of the phone service the seeder needs
type phoneCreator interface {
	Create(ctx context.Context, in domain.CreatePhoneInput) (*domain.Phone, error)
}

// seedResult counts what a seeding run did
type seedResult struct {
	Created int
	Skipped int
	Failed  int
}

var (
	logLevel string
	dryRun   bool

	rootCmd = &cobra.Command{
		Use:           "seeder",
		Short:         "Populate the phone inventory with sample or imported data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "validate input without writing to the store")

	var count int
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Insert generated sample phones",
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return fmt.Errorf("--count must be positive, got %d", count)
			}
			return withService(cmd.Context(), func(ctx context.Context, svc phoneCreator, log *slog.Logger) error {
				res := seedInputs(ctx, svc, samplePhones(count), log)
				printResult(cmd, res)
				return nil
			})
		},
	}
	sampleCmd.Flags().IntVar(&count, "count", 25, "number of phones to generate")

	var file string
	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import phones from an Excel workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := spreadsheet.ReadPhonesFile(file)
			if err != nil {
				return err
			}
			return withService(cmd.Context(), func(ctx context.Context, svc phoneCreator, log *slog.Logger) error {
				res := importRows(ctx, svc, rows, log)
				printResult(cmd, res)
				if res.Failed > 0 {
					return fmt.Errorf("%d rows failed", res.Failed)
				}
				return nil
			})
		},
	}
	importCmd.Flags().StringVar(&file, "file", "", "path of the .xlsx workbook")
	_ = importCmd.MarkFlagRequired("file")

	rootCmd.AddCommand(sampleCmd, importCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// withService loads configuration, opens the store and hands a phone
// service to fn. Dry runs write to a throwaway in-memory store.
func withService(ctx context.Context, fn func(context.Context, phoneCreator, *slog.Logger) error) error {
	log := logger.SetupLogger(strings.ToLower(logLevel), "text")

	if dryRun {
		return fn(ctx, services.NewPhoneService(memory.NewStore().Phones(), log), log)
	}

	cfg, err := config.Load(log)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	store, err := bootstrap.OpenStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer store.Close(context.Background())

	return fn(ctx, services.NewPhoneService(store.Phones(), log), log)
}

func seedInputs(ctx context.Context, svc phoneCreator, inputs []domain.CreatePhoneInput, log *slog.Logger) seedResult {
	var res seedResult
	for i, in := range inputs {
		phone, err := svc.Create(ctx, in)
		if err != nil {
			log.WarnContext(ctx, "failed to create phone",
				slog.Int("index", i),
				slog.String("name", in.Name),
				slog.String("error", err.Error()))
			res.Failed++
			continue
		}
		log.DebugContext(ctx, "phone created",
			slog.String("id", phone.ID.String()),
			slog.String("name", phone.Name))
		res.Created++
	}
	return res
}

func importRows(ctx context.Context, svc phoneCreator, rows []spreadsheet.ImportRow, log *slog.Logger) seedResult {
	var res seedResult
	for _, row := range rows {
		if row.Err != nil {
			log.WarnContext(ctx, "skipping unreadable row",
				slog.Int("line", row.Line),
				slog.String("error", row.Err.Error()))
			res.Skipped++
			continue
		}

		if _, err := svc.Create(ctx, row.Input); err != nil {
			log.WarnContext(ctx, "failed to import row",
				slog.Int("line", row.Line),
				slog.String("error", err.Error()))
			res.Failed++
			continue
		}
		res.Created++
	}
	return res
}

func printResult(cmd *cobra.Command, res seedResult) {
	prefix := ""
	if dryRun {
		prefix = "[dry-run] "
	}
	cmd.Printf("%screated=%d skipped=%d failed=%d\n", prefix, res.Created, res.Skipped, res.Failed)
}
