package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"brokerctl/internal/config"
	"brokerctl/internal/listing"
	"brokerctl/internal/tui/controller"
	"brokerctl/internal/tui/model"
	"brokerctl/internal/viewstate"
	"brokerctl/pkg/logging"
)

func newDashboardCmd() *cobra.Command {
	var dataFile string
	var presetName string
	var colorMode string

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Browse listings in an interactive table",
		Long: `Launches the interactive listings dashboard.

The table starts from the configured column preset. Hiding, showing and
reordering columns persists to the preference store; filters and the
listing-type tabs narrow the rows without touching the data file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logChannel := logging.InitForTUI(logging.LevelInfo)
			defer logging.CloseTUIChannel()

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if dataFile != "" {
				cfg.GlobalSettings.DataFile = dataFile
			}
			if presetName != "" {
				cfg.View.Preset = presetName
			}
			if colorMode != "" {
				cfg.GlobalSettings.ColorMode = colorMode
			}

			records, err := loadRecords(cfg.GlobalSettings.DataFile)
			if err != nil {
				return err
			}

			preset, ok := listing.Presets[cfg.View.Preset]
			if !ok {
				return fmt.Errorf("unknown column preset %q", cfg.View.Preset)
			}

			prefsPath, err := cfg.PrefsPath()
			if err != nil {
				return fmt.Errorf("resolving preference store path: %w", err)
			}
			kv, err := viewstate.OpenSQLiteKV(prefsPath)
			if err != nil {
				return fmt.Errorf("opening preference store: %w", err)
			}
			defer kv.Close()

			store := viewstate.NewStore(kv,
				viewstate.WithRestorePersisted(cfg.View.RestorePersisted))

			p, err := controller.NewProgram(model.TUIConfig{
				Records:    records,
				Store:      store,
				Preset:     preset,
				ColorMode:  cfg.GlobalSettings.ColorMode,
				LogChannel: logChannel,
			})
			if err != nil {
				return fmt.Errorf("initializing dashboard: %w", err)
			}

			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "listings YAML file (default: built-in demo inventory)")
	cmd.Flags().StringVar(&presetName, "preset", "", "column preset: default or owners")
	cmd.Flags().StringVar(&colorMode, "color-mode", "", "terminal palette: dark or light")
	return cmd
}

// loadRecords reads the listings file, falling back to the built-in demo
// inventory when no file is configured.
func loadRecords(path string) ([]listing.Listing, error) {
	if path == "" {
		return listing.SampleListings(), nil
	}
	records, err := listing.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading listings from %s: %w", path, err)
	}
	return records, nil
}
