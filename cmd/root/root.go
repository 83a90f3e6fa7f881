// Package root contains the root command for the application
package root

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"imujkanovic/expense-tracker/internal/config"
	"imujkanovic/expense-tracker/internal/fileutils"
	"imujkanovic/expense-tracker/internal/ledger"
	"imujkanovic/expense-tracker/internal/store"
)

// CommonFlags represents the flags shared by multiple commands
type CommonFlags struct {
	File string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration
	Cfg *config.Config

	// Store persists the ledger to disk
	Store *store.LedgerStore

	// Ledger is the in-memory expense state shared by all commands
	Ledger *ledger.Ledger

	// SharedFlags holds flag values common to all commands
	SharedFlags = CommonFlags{}

	dirty bool

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-tracker",
		Short: "A CLI tool to record, categorize and summarize personal expenses.",
		Long: `expense-tracker records personal expenses in a CSV file with a JSON
metadata sidecar, tracks per-category totals and budgets, and provides
history, search, summary and report views.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-tracker!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()

			var err error
			Cfg, err = config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to initialize configuration: %v", err)
			}
			Log = config.ConfigureLoggingFromConfig(Cfg)

			store.SetLogger(Log)
			fileutils.SetLogger(Log)

			Store = store.NewLedgerStore(DataPath())
			Store.Delimiter = []rune(Cfg.CSV.Delimiter)[0]

			categories := store.NewCategoryStore(Cfg.Data.CategoriesFile).CategoryNames()
			Ledger, err = Store.Load(categories...)
			if err != nil {
				// A failed load still yields a usable (possibly partial) ledger.
				Log.WithError(err).Warn("Failed to load persisted data")
			}
		},
		// Retry the flush at exit if the last save failed; the in-memory
		// ledger stayed usable in the meantime.
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if dirty {
				SaveLedger()
			}
		},
	}
)

// Init initializes the root command and all shared flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.File, "file", "f", "", "Expense data file (overrides configuration)")
}

// DataPath resolves the record file path from flags and configuration.
func DataPath() string {
	if SharedFlags.File != "" {
		return SharedFlags.File
	}
	if Cfg.Data.Directory != "" {
		return filepath.Join(Cfg.Data.Directory, Cfg.Data.File)
	}
	return Cfg.Data.File
}

// SaveLedger persists the ledger after a mutation. Save failures are
// reported but never fatal: the in-memory ledger stays usable and the
// flush is retried when the command finishes.
func SaveLedger() {
	if err := Store.Save(Ledger); err != nil {
		Log.WithError(err).Error("Failed to save data")
		dirty = true
		return
	}
	dirty = false
}
