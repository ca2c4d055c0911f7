package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/folio"
	"github.com/tsawler/folio/internal/config"
	"github.com/tsawler/folio/preview"
)

// newPreviewCmd creates the preview command, which renders a schematic PNG
// of the planned layout without writing any PDF output.
func newPreviewCmd(cfg *config.Config) *cobra.Command {
	var opts nupOpts
	var sheetIndex int
	var width int

	cmd := &cobra.Command{
		Use:   "preview [file]",
		Short: "Render a schematic PNG of the planned layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return fmt.Errorf("--output is required")
			}
			im, err := configureImposer(folio.Open(args[0]), cfg, &opts)
			if err != nil {
				return err
			}

			sheets, err := im.Plan(cmd.Context())
			if err != nil {
				return err
			}
			if sheetIndex < 0 || sheetIndex >= len(sheets) {
				return fmt.Errorf("sheet %d out of range, plan has %d sheets", sheetIndex, len(sheets))
			}

			f, err := os.Create(opts.output)
			if err != nil {
				return err
			}
			if err := preview.WritePNG(f, sheets[sheetIndex], preview.Options{Width: width}); err != nil {
				f.Close()
				return err
			}
			loggerFromContext(cmd.Context()).Infof("Wrote preview of sheet %d to %s", sheetIndex, opts.output)
			return f.Close()
		},
	}

	addImposeFlags(cmd, cfg, &opts)
	cmd.Flags().IntVar(&sheetIndex, "sheet", 0, "index of the sheet to preview")
	cmd.Flags().IntVar(&width, "width", 600, "preview image width in pixels")

	return cmd
}
