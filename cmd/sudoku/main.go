// Command sudoku generates, checks, stores and serves 9x9 sudoku puzzles.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sudoku_engine_go/db"
	"sudoku_engine_go/internal/config"
	"sudoku_engine_go/internal/hint"
)

// app carries the state shared by all subcommands: flags parsed on the
// root command, the loaded configuration and the logger.
type app struct {
	configPath string
	verbose    bool

	cfg *config.Config
	log *logrus.Logger
}

// store connects to the configured PocketBase instance. Commands that
// never touch the store must not call this, so an unconfigured store
// only fails the commands that need it.
func (a *app) store() (*db.Store, error) {
	if a.cfg.Store.URL == "" {
		return nil, fmt.Errorf("no puzzle store configured: set %s or store.url in the config file", config.EnvStoreURL)
	}
	return db.New(a.cfg.Store, a.log)
}

// hintProvider returns the hint service client, or nil when no service
// is configured. Callers treat nil as "no hint available".
func (a *app) hintProvider() hint.Provider {
	if a.cfg.Hint.URL == "" {
		return nil
	}
	return hint.NewClient(a.cfg.Hint, a.log)
}

func newRootCmd() *cobra.Command {
	a := &app{log: logrus.New()}

	root := &cobra.Command{
		Use:          "sudoku",
		Short:        "Generate, check, store and serve 9x9 sudoku puzzles",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			a.log.SetOutput(cmd.ErrOrStderr())
			if a.verbose {
				a.log.SetLevel(logrus.DebugLevel)
			} else {
				a.log.SetLevel(logrus.InfoLevel)
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newGenerateCmd(a),
		newBatchCmd(a),
		newCheckCmd(a),
		newHintCmd(a),
		newServeCmd(a),
		newListCmd(a),
	)
	return root
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func progressBar(progress float64, width int) string {
	filled := int(progress * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("[%s] %.1f%%", bar, progress*100)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
