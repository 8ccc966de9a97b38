package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Aashish23092/ledger-reconciliation/config"
	"github.com/Aashish23092/ledger-reconciliation/dto"
	"github.com/Aashish23092/ledger-reconciliation/handler"
	"github.com/Aashish23092/ledger-reconciliation/logging"
	"github.com/Aashish23092/ledger-reconciliation/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	cfg := config.LoadConfig()

	var logLevel string
	rootCmd := &cobra.Command{
		Use:   "ledger-audit",
		Short: "Reconcile the contract ledger against its reference workbooks",
		Long: `ledger-audit checks the 不担保 contract ledger against the loan, field,
secondary and truck workbooks and produces an annotated copy of the ledger
with every mismatching cell highlighted.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			logging.Setup(cfg.LogLevel, cfg.LogFormat)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error")

	rootCmd.AddCommand(newServeCommand(cfg), newReconcileCommand(cfg))
	return rootCmd
}

func newServeCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP upload service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			gin.SetMode(cfg.GinMode)

			// Initialize service layer
			reconcileService := service.NewReconcileService(service.NewWorkbookProcessor())

			// Initialize handler layer
			reconcileHandler := handler.NewReconcileHandler(reconcileService, cfg.OutputFilename)

			router := handler.NewRouter(reconcileHandler, cfg.MaxUploadMB)

			log.Info().Str("port", cfg.ServerPort).Msg("Starting Contract Ledger Reconciliation Service")
			if err := router.Run(":" + cfg.ServerPort); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}
			return nil
		},
	}
}

func newReconcileCommand(cfg *config.Config) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "reconcile [flags] <workbook.xlsx>...",
		Short: "Run one reconciliation over local workbooks",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			files := make([]dto.UploadedFile, 0, len(args))
			for _, path := range args {
				data, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("read %s: %w", path, err)
				}
				files = append(files, dto.UploadedFile{Name: filepath.Base(path), Data: data})
			}

			reconcileService := service.NewReconcileService(service.NewWorkbookProcessor())
			result, err := reconcileService.Reconcile(files)
			if err != nil {
				return err
			}

			if out == "" {
				out = cfg.OutputFilename
			}
			if err := os.WriteFile(out, result.Workbook, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			for _, m := range result.Mismatches {
				log.Debug().
					Int("row", m.Row).
					Str("contract", m.ContractNo).
					Str("column", m.Column).
					Str("master_value", m.MasterValue).
					Str("reference_value", m.ReferenceValue).
					Msg("mismatch")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "审核完成，共发现 %d 处不一致。结果已写入 %s\n", result.MismatchCount, out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "path of the annotated workbook (default from OUTPUT_FILENAME)")
	return cmd
}
