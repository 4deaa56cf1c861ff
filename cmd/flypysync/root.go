package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/flypysync/internal/config"
	"github.com/at-ishikawa/flypysync/internal/importer"
	"github.com/at-ishikawa/flypysync/internal/remote"
	"github.com/at-ishikawa/flypysync/internal/report"
	"github.com/at-ishikawa/flypysync/internal/userdict"
	"github.com/spf13/cobra"
)

type FolderOpener interface {
	Open(dir string) error
}

func newRootCommand(stdout, stderr io.Writer, folderOpener FolderOpener) *cobra.Command {
	var (
		configFile string
		debugMode  bool
		noOpen     bool
		noColor    bool
		strategy   = Strategy(userdict.StrategyRegex)
	)

	rootCommand := &cobra.Command{
		Use:   "flypysync [flags] <url>",
		Short: "Append the rows of a published flypy dictionary to the local Rime user dictionary",
		Long: fmt.Sprintf(`Fetch a page that shows a flypy_user.txt file, extract its rows and append them
to {config-dir}/Rime/flypy_user.txt. The first run copies the file to flypy_user.txt.back.

Example URL: %s`, remote.ExampleURL),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogger(stderr, debugMode)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := config.NewConfigLoader(configFile)
			if err != nil {
				return fmt.Errorf("failed to create config loader: %w", err)
			}
			if err := loader.BindFlag("rime.config_root", cmd.Flags().Lookup("config-dir")); err != nil {
				return err
			}
			if err := loader.BindFlag("extract.strategy", cmd.Flags().Lookup("strategy")); err != nil {
				return err
			}
			cfg, err := loader.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			extractor, err := userdict.NewExtractor(userdict.Strategy(cfg.Extract.Strategy))
			if err != nil {
				return fmt.Errorf("userdict.NewExtractor > %w", err)
			}

			client := remote.NewClient(remote.Options{
				Timeout:   cfg.Fetch.Timeout,
				UserAgent: cfg.Fetch.UserAgent,
			})
			defer func() {
				_ = client.Close()
			}()

			paths := cfg.Paths()
			imp := importer.NewImporter(
				client,
				extractor,
				report.NewReporter(stdout, noColor),
				importer.Options{
					DictionaryPath: paths.DictionaryPath,
					BackupPath:     paths.BackupPath,
					SectionLabel:   cfg.Merge.SectionLabel,
				},
			)
			result, err := imp.Import(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("importer.Import > %w", err)
			}
			slog.Default().Debug("import finished",
				"imported", result.Imported,
				"malformed", result.Malformed,
				"backupCreated", result.BackupCreated,
				"dictionary", result.DictionaryPath)

			if cfg.OpenFolder && !noOpen {
				if err := folderOpener.Open(paths.Directory); err != nil {
					slog.Default().Warn("failed to open the configuration directory", "error", err)
				}
			}
			return nil
		},
	}

	flags := rootCommand.Flags()
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCommand.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug mode")
	flags.StringP("config-dir", "c", "", "configuration root that contains the Rime directory (default: the user config directory)")
	flags.Var(&strategy, "strategy", fmt.Sprintf("extraction strategy. Possible values are %v", userdict.AllStrategies))
	flags.BoolVar(&noOpen, "no-open", false, "do not open the Rime directory after importing")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")

	return rootCommand
}
