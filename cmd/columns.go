package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"brokerctl/internal/config"
	"brokerctl/internal/listing"
	"brokerctl/internal/viewstate"
	"brokerctl/pkg/logging"
)

func newColumnsCmd() *cobra.Command {
	var reset bool
	var presetName string

	cmd := &cobra.Command{
		Use:   "columns",
		Short: "Inspect or reset the persisted column layout",
		Long: `Shows the column layout currently persisted in the preference store:
the visible-column set and the left-to-right order. With --reset the
persisted layout is replaced by the named preset's defaults.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitForCLI(logging.LevelWarn, os.Stderr)

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			if presetName != "" {
				cfg.View.Preset = presetName
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

			out := cmd.OutOrStdout()

			if reset {
				preset, ok := listing.Presets[cfg.View.Preset]
				if !ok {
					return fmt.Errorf("unknown column preset %q", cfg.View.Preset)
				}
				store := viewstate.NewStore(kv)
				state := store.Reset(preset.Visible, preset.Order)
				fmt.Fprintf(out, "Column layout reset to preset %q.\n", cfg.View.Preset)
				fmt.Fprintf(out, "Visible: %s\n", strings.Join(state.Visible, ", "))
				fmt.Fprintf(out, "Order:   %s\n", strings.Join(state.Order, ", "))
				return nil
			}

			visible, haveVisible, err := readPersistedKeys(kv, viewstate.KeyVisibleColumns)
			if err != nil {
				return err
			}
			order, haveOrder, err := readPersistedKeys(kv, viewstate.KeyColumnOrder)
			if err != nil {
				return err
			}

			if !haveVisible && !haveOrder {
				fmt.Fprintln(out, "No column layout persisted; the dashboard will use its preset defaults.")
				return nil
			}

			fmt.Fprintf(out, "Preference store: %s\n", prefsPath)
			if haveVisible {
				fmt.Fprintf(out, "Visible: %s\n", strings.Join(visible, ", "))
			}
			if haveOrder {
				fmt.Fprintf(out, "Order:   %s\n", strings.Join(order, ", "))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "replace the persisted layout with the preset defaults")
	cmd.Flags().StringVar(&presetName, "preset", "", "column preset used by --reset: default or owners")
	return cmd
}

// readPersistedKeys reads one persisted key list without going through the
// store, so inspection never triggers the store's load-time semantics.
func readPersistedKeys(kv viewstate.KV, key string) ([]string, bool, error) {
	raw, present, err := kv.Get(key)
	if err != nil {
		return nil, false, fmt.Errorf("reading %s: %w", key, err)
	}
	if !present {
		return nil, false, nil
	}
	var keys []string
	if err := json.Unmarshal([]byte(raw), &keys); err != nil {
		return nil, false, fmt.Errorf("persisted %s is corrupt: %w", key, err)
	}
	return keys, true, nil
}
