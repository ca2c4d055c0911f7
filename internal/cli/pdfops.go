package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/tsawler/folio/document"
	"github.com/tsawler/folio/geom"
)

// newMergeCmd creates the merge command, which concatenates documents.
func newMergeCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "merge [file...]",
		Short: "Concatenate PDF documents into one",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			p := newProgress(loggerFromContext(cmd.Context()))

			backend := document.NewPDFCPUBackend()
			if err := backend.Merge(cmd.Context(), args, output); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Merged %d documents into %s", len(args), output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	return cmd
}

// newSplitCmd creates the split command, which writes a document out in
// fixed-size page spans.
func newSplitCmd() *cobra.Command {
	var outDir string
	var span int

	cmd := &cobra.Command{
		Use:   "split [file]",
		Short: "Split a PDF into fixed-size page spans",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if span < 1 {
				return fmt.Errorf("--span must be at least 1, got %d", span)
			}
			p := newProgress(loggerFromContext(cmd.Context()))

			backend := document.NewPDFCPUBackend()
			if err := backend.Split(cmd.Context(), args[0], span, outDir); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Split %s into %s", args[0], outDir))
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out-dir", "d", ".", "output directory")
	cmd.Flags().IntVarP(&span, "span", "s", 1, "pages per output file")
	return cmd
}

// newRotateCmd creates the rotate command.
func newRotateCmd() *cobra.Command {
	var output string
	var pages []string

	cmd := &cobra.Command{
		Use:   "rotate [file] [degrees]",
		Short: "Rotate pages by a multiple of 90 degrees",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" {
				return fmt.Errorf("--output is required")
			}
			rotation, err := strconv.Atoi(args[1])
			if err != nil || rotation%90 != 0 {
				return fmt.Errorf("rotation %q must be a multiple of 90", args[1])
			}
			p := newProgress(loggerFromContext(cmd.Context()))

			backend := document.NewPDFCPUBackend()
			if err := backend.Rotate(cmd.Context(), args[0], rotation, pages, output); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Rotated %s by %d degrees", args[0], rotation))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringSliceVarP(&pages, "pages", "P", nil, "page selection (default all pages)")
	return cmd
}

// newStampCmd creates the stamp command, which draws an image onto a page.
func newStampCmd() *cobra.Command {
	var output, image string
	var page int
	var x, y, scale float64

	cmd := &cobra.Command{
		Use:   "stamp [file]",
		Short: "Draw an image onto one page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if output == "" || image == "" {
				return fmt.Errorf("--output and --image are required")
			}
			if page < 1 {
				return fmt.Errorf("--page must be at least 1, got %d", page)
			}
			p := newProgress(loggerFromContext(cmd.Context()))

			backend := document.NewPDFCPUBackend()
			pos := geom.Point{X: x, Y: y}
			if err := backend.StampImage(cmd.Context(), args[0], image, page, pos, scale, output); err != nil {
				return err
			}
			p.done(fmt.Sprintf("Stamped %s onto page %d of %s", image, page, args[0]))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file")
	cmd.Flags().StringVarP(&image, "image", "i", "", "image file to stamp")
	cmd.Flags().IntVarP(&page, "page", "p", 1, "target page (1-indexed)")
	cmd.Flags().Float64Var(&x, "x", 0, "x position in points from the bottom-left corner")
	cmd.Flags().Float64Var(&y, "y", 0, "y position in points from the bottom-left corner")
	cmd.Flags().Float64Var(&scale, "scale", 1, "image scale factor")
	return cmd
}
