package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/internal/config"
)

// posterOpts holds the command-line flags for the poster command.
type posterOpts struct {
	output  string
	tile    string  // tile size name or "WIDTHxHEIGHT"
	overlap float64 // glue overlap between adjacent tiles in points
}

// newPosterCmd creates the poster command, which splits an oversized page
// across multiple smaller sheets.
func newPosterCmd(cfg *config.Config) *cobra.Command {
	var opts posterOpts

	cmd := &cobra.Command{
		Use:   "poster [file]",
		Short: "Split an oversized page across multiple sheets",
		Long:  `Poster tiles the first page of a document across sheets of the given size, repeating the overlap amount of content along adjacent tile edges so the printed sheets can be glued together.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return fmt.Errorf("--output is required")
			}
			tile, err := cfg.ResolvePaper(opts.tile)
			if err != nil {
				return err
			}

			im := folio.Open(args[0]).
				Tile(tile.Width, tile.Height).
				Overlap(opts.overlap)

			logger := loggerFromContext(cmd.Context())
			p := newProgress(logger)

			sheets, err := im.PosterPlan(cmd.Context())
			if err != nil {
				return err
			}
			logger.Debugf("planned %d tiles for %s", len(sheets), args[0])

			if err := im.Poster(cmd.Context(), opts.output); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Wrote %d tiles to %s", len(sheets), opts.output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&opts.tile, "tile", "t", "", fmt.Sprintf("tile size name or WIDTHxHEIGHT in points (default %q)", cfg.Defaults.Paper))
	cmd.Flags().Float64Var(&opts.overlap, "overlap", 0, "glue overlap between adjacent tiles in points")

	return cmd
}
