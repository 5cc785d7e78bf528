package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"brokerctl/internal/columns"
	"brokerctl/internal/config"
	"brokerctl/internal/filter"
	"brokerctl/internal/listing"
	"brokerctl/internal/tui/utils"
	"brokerctl/internal/viewstate"
	"brokerctl/pkg/logging"
)

func newListCmd() *cobra.Command {
	var dataFile string
	var presetName string
	var listingTypes []string
	var marketingStatuses []string
	var propertyTypes []string
	var bedroomsMin int
	var bedroomsMax int
	var priceMin float64
	var priceMax float64
	var starred string
	var locations []string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print listings matching the given filters",
		Long: `Prints matching listings as a plain-text table, using the same filter
semantics as the dashboard: inclusive ranges, an open-ended bedroom
maximum, tri-state starred and fuzzy location matching.

Useful for scripting or piping into other tools.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.InitForCLI(logging.LevelWarn, os.Stderr)

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

			records, err := loadRecords(cfg.GlobalSettings.DataFile)
			if err != nil {
				return err
			}

			spec := filter.Default()
			for _, t := range listingTypes {
				spec.ListingTypes = append(spec.ListingTypes, listing.ListingType(t))
			}
			for _, s := range marketingStatuses {
				spec.MarketingStatuses = append(spec.MarketingStatuses, listing.MarketingStatus(s))
			}
			spec.PropertyTypes = propertyTypes
			spec.BedroomMin = bedroomsMin
			spec.BedroomMax = bedroomsMax
			spec.PriceMin = priceMin
			spec.PriceMax = priceMax
			spec.Locations = locations

			switch starred {
			case "":
			case "yes":
				v := true
				spec.Starred = &v
			case "no":
				v := false
				spec.Starred = &v
			default:
				return fmt.Errorf("invalid --starred value %q: want yes or no", starred)
			}

			matched := filter.Apply(records, spec)

			preset, ok := listing.Presets[cfg.View.Preset]
			if !ok {
				return fmt.Errorf("unknown column preset %q", cfg.View.Preset)
			}

			printListingTable(cmd, matched, preset)
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d listings\n", len(matched), len(records))
			return nil
		},
	}

	cmd.Flags().StringVar(&dataFile, "data", "", "listings YAML file (default: built-in demo inventory)")
	cmd.Flags().StringVar(&presetName, "preset", "", "column preset: default or owners")
	cmd.Flags().StringSliceVar(&listingTypes, "type", nil, "listing types to include (e.g. \"A List\")")
	cmd.Flags().StringSliceVar(&marketingStatuses, "status", nil, "marketing statuses to include (e.g. Available)")
	cmd.Flags().StringSliceVar(&propertyTypes, "property", nil, "property types to include (e.g. Condo)")
	cmd.Flags().IntVar(&bedroomsMin, "bedrooms-min", 0, "minimum bedrooms (inclusive)")
	cmd.Flags().IntVar(&bedroomsMax, "bedrooms-max", filter.BedroomsOpenEnd, "maximum bedrooms (inclusive; 6 means 6 or more)")
	cmd.Flags().Float64Var(&priceMin, "price-min", 0, "minimum asking price (inclusive)")
	cmd.Flags().Float64Var(&priceMax, "price-max", 0, "maximum asking price (inclusive; 0 means unbounded)")
	cmd.Flags().StringVar(&starred, "starred", "", "filter on the star flag: yes or no")
	cmd.Flags().StringSliceVar(&locations, "location", nil, "fuzzy location tokens (zone, transit or project)")
	return cmd
}

// printListingTable renders records with the preset's column layout, one
// space-padded line per record.
func printListingTable(cmd *cobra.Command, records []listing.Listing, preset listing.Preset) {
	// A throwaway in-memory store gives us the same resolve pipeline the
	// dashboard uses, without touching the on-disk preferences.
	store := viewstate.NewStore(viewstate.NewMemoryKV())
	state := store.Load(preset.Visible, preset.Order)
	cols := columns.Resolve(state, columns.Registry(), nil)

	widths := make([]int, len(cols))
	cells := make([][]string, len(records))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.Label)
	}
	for ri, l := range records {
		row := make([]string, len(cols))
		for ci, c := range cols {
			row[ci] = c.Render(l, ri)
			if w := runewidth.StringWidth(row[ci]); w > widths[ci] {
				widths[ci] = w
			}
		}
		cells[ri] = row
	}

	out := cmd.OutOrStdout()
	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = utils.PadRight(c.Label, widths[i])
	}
	fmt.Fprintln(out, strings.TrimRight(strings.Join(header, "  "), " "))

	for _, row := range cells {
		for i := range row {
			row[i] = utils.PadRight(row[i], widths[i])
		}
		fmt.Fprintln(out, strings.TrimRight(strings.Join(row, "  "), " "))
	}
}
