package cli

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/file-translator/file-translator/internal/document"
	"github.com/file-translator/file-translator/internal/encode"
	"github.com/file-translator/file-translator/internal/translate"
	"github.com/file-translator/file-translator/internal/workflow"
)

func newTranslateCommand(v *viper.Viper, flags *Flags) *cobra.Command {
	var (
		target string
		format string
		outDir string
	)

	cmd := &cobra.Command{
		Use:   "translate <file>",
		Short: "Translate a local txt, srt or pdf file",
		Example: `  file-translator translate notes.txt --to fr
  file-translator translate talk.srt --to ar --format SRT --out ./translated`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			locale, err := translate.ParseLocale(target)
			if err != nil {
				return err
			}
			outFormat, err := encode.ParseFormat(format)
			if err != nil {
				return err
			}

			a, err := newApp(v, flags, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()

			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			if flags.NoColor {
				color.NoColor = true
			}
			animate := isatty.IsTerminal(os.Stderr.Fd())
			ui := newTerminalInteraction(cmd.OutOrStdout(), cmd.ErrOrStderr(), outDir, animate)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			res := a.controller.Run(ctx, workflow.Submission{
				Upload: &document.Upload{Name: filepath.Base(args[0]), Data: data},
				Locale: locale,
				Format: outFormat,
			}, ui)
			if res.Err != nil {
				return fmt.Errorf("translation of %s failed: %w", args[0], res.Err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&target, "to", "t", "", "target language code (required)")
	cmd.Flags().StringVarP(&format, "format", "f", string(encode.FormatTXT), "output format: PDF, TXT or SRT")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory the translated file is written to")
	cmd.MarkFlagRequired("to")
	return cmd
}
