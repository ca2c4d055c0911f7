package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/internal/config"
)

// nupOpts holds the command-line flags for the nup command.
type nupOpts struct {
	output  string // output file path
	grid    string // preset name or "COLSxROWS"
	paper   string // paper name or "WIDTHxHEIGHT"
	spacing float64
	margin  float64
	fit     string // fit mode: fit, fill, stretch
}

// newNUpCmd creates the nup command, which arranges several source pages
// per output sheet.
func newNUpCmd(cfg *config.Config) *cobra.Command {
	var opts nupOpts

	cmd := &cobra.Command{
		Use:   "nup [file]",
		Short: "Arrange several pages per output sheet",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return fmt.Errorf("--output is required")
			}
			im, err := configureImposer(folio.Open(args[0]), cfg, &opts)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			sheets, err := im.Plan(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debugf("planned %d sheets for %s", len(sheets), args[0])

			if err := im.NUp(cmd.Context(), opts.output); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Wrote %d sheets to %s", len(sheets), opts.output))
			return nil
		},
	}

	addImposeFlags(cmd, cfg, &opts)
	return cmd
}

// addImposeFlags registers the flags shared by nup and preview.
func addImposeFlags(cmd *cobra.Command, cfg *config.Config, opts *nupOpts) {
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.grid, "grid", "g", "", fmt.Sprintf("preset name or COLSxROWS (default %q)", cfg.Defaults.Preset))
	cmd.Flags().StringVarP(&opts.paper, "paper", "p", "", fmt.Sprintf("sheet size name or WIDTHxHEIGHT in points (default %q)", cfg.Defaults.Paper))
	cmd.Flags().Float64Var(&opts.spacing, "spacing", cfg.Defaults.Spacing, "gap between cells in points")
	cmd.Flags().Float64Var(&opts.margin, "margin", cfg.Defaults.Margin, "cell offset in points")
	cmd.Flags().StringVar(&opts.fit, "fit", "", fmt.Sprintf("fit mode: fit, fill, stretch (default %q)", cfg.Defaults.Fit))
}

// configureImposer applies resolved flag values to a fluent imposition.
func configureImposer(im *folio.Imposer, cfg *config.Config, opts *nupOpts) (*folio.Imposer, error) {
	grid, err := cfg.ResolveGrid(opts.grid)
	if err != nil {
		return nil, err
	}
	sheet, err := cfg.ResolvePaper(opts.paper)
	if err != nil {
		return nil, err
	}
	fit, err := cfg.ResolveFit(opts.fit)
	if err != nil {
		return nil, err
	}

	return im.
		Grid(grid.Cols, grid.Rows).
		Sheet(sheet.Width, sheet.Height).
		Spacing(opts.spacing).
		Margin(opts.margin).
		Fit(fit), nil
}
