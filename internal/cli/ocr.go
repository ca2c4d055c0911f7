package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tsawler/folio/ocr"
)

// newOCRCmd creates the ocr command, which recognizes text in a page
// image. Without the ocr build tag the command reports that recognition
// support is not compiled in.
func newOCRCmd() *cobra.Command {
	var lang string
	var words bool

	cmd := &cobra.Command{
		Use:   "ocr [image]",
		Short: "Recognize text in a page image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			client, err := ocr.New()
			if err != nil {
				return err
			}
			defer client.Close()

			if lang != "" {
				if err := client.SetLanguage(lang); err != nil {
					return err
				}
			}

			if words {
				recognized, err := client.Words(data)
				if err != nil {
					return err
				}
				for _, w := range recognized {
					fmt.Fprintf(cmd.OutOrStdout(), "%6.2f%% (%g,%g %gx%g) %s\n",
						w.Confidence, w.Box.X, w.Box.Y, w.Box.Width, w.Box.Height, w.Text)
				}
				return nil
			}

			text, err := client.Recognize(data)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&lang, "lang", "l", "", "recognition language (default eng)")
	cmd.Flags().BoolVarP(&words, "words", "w", false, "print word bounding boxes instead of plain text")
	return cmd
}
