package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/file-translator/file-translator/internal/document"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/translate"
)

func newLanguagesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List target languages and formats",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Source language: %s (%s)\n\n", translate.Locale(translate.SourceLocale).Name(), translate.SourceLocale)
			fmt.Fprintln(out, "Target languages:")
			for _, l := range translate.Locales {
				fmt.Fprintf(out, "  %-4s %s\n", l, l.Name())
			}
			fmt.Fprintf(out, "\nInput files:    %s\n", document.AcceptedExtensions())
			formats := make([]string, len(encode.Formats))
			for i, f := range encode.Formats {
				formats[i] = string(f)
			}
			fmt.Fprintf(out, "Output formats: %s\n", joinList(formats))
		},
	}
}
