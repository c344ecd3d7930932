package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/jisho/internal/cli"
)

type lookupOptions struct {
	common bool
	format cli.Format
	sheet  string
}

func newLookupCommands() []*cobra.Command {
	return []*cobra.Command{
		newSearchCommand(searchCommand{
			use:        "lookup <term>",
			short:      "Look up a word, kanji or romaji",
			kind:       cli.SearchWord,
			withCommon: true,
		}),
		newSearchCommand(searchCommand{
			use:   "common <term>",
			short: "Look up common words only",
			kind:  cli.SearchCommon,
		}),
		newSearchCommand(searchCommand{
			use:        "prefix <term>",
			short:      "Look up words starting with the term",
			kind:       cli.SearchPrefix,
			withCommon: true,
		}),
		newSearchCommand(searchCommand{
			use:        "suffix <term>",
			short:      "Look up words ending with the term",
			kind:       cli.SearchSuffix,
			withCommon: true,
		}),
		newSearchCommand(searchCommand{
			use:      "jlpt <level> <term>",
			short:    "Look up words of a JLPT level, e.g. 'jlpt N3 地'",
			kind:     cli.SearchJLPT,
			withJLPT: true,
		}),
		newSearchCommand(searchCommand{
			use:        "wasei <term>",
			short:      "Look up wasei-eigo words",
			kind:       cli.SearchWasei,
			withCommon: true,
		}),
	}
}

type searchCommand struct {
	use        string
	short      string
	kind       cli.SearchKind
	withCommon bool
	withJLPT   bool
}

func newSearchCommand(def searchCommand) *cobra.Command {
	var options lookupOptions
	nArgs := 1
	if def.withJLPT {
		nArgs = 2
	}

	command := &cobra.Command{
		Use:   def.use,
		Short: def.short,
		Args:  cobra.ExactArgs(nArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			search := cli.Search{
				Kind:   def.kind,
				Term:   args[len(args)-1],
				Common: options.common,
			}
			if def.withJLPT {
				search.JLPTLevel = args[0]
			}
			return runSearch(cmd, search, options)
		},
	}

	flags := command.Flags()
	if def.withCommon {
		flags.BoolVar(&options.common, "common", false, "Only show common words")
	}
	flags.Var(&options.format, "format", fmt.Sprintf("Output format. Possible values are %v. Defaults to outputs.format in the config", cli.AllFormats))
	flags.StringVar(&options.sheet, "sheet", "", "Also export the results as a markdown and PDF vocabulary sheet with this name")
	return command
}

func runSearch(cmd *cobra.Command, search cli.Search, options lookupOptions) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	format := cli.Format(cfg.Outputs.Format)
	if options.format != "" {
		format = options.format
	}
	lookupCLI := cli.NewLookupCLI(newDictionary(cfg), format, cfg.Templates.VocabularySheetTemplate, cfg.Outputs.PDFFont)
	records, err := lookupCLI.Run(cmd.Context(), search)
	if err != nil {
		return fmt.Errorf("lookupCLI.Run > %w", err)
	}

	if options.sheet == "" {
		return nil
	}
	markdownPath, pdfPath, err := lookupCLI.ExportSheet(cfg.Outputs.SheetDirectory, options.sheet, search, records)
	if err != nil {
		return fmt.Errorf("lookupCLI.ExportSheet > %w", err)
	}
	slog.Default().Info("exported a vocabulary sheet",
		slog.String("markdown", markdownPath),
		slog.String("pdf", pdfPath),
	)
	return nil
}

func newKanjiGradeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "kanji-grade <grade>",
		Short: "Look up kanji taught in a school grade (not supported by the Jisho API)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			grade, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid grade '%s': %w", args[0], err)
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if _, err := newDictionary(cfg).LookupKanjiByGrade(cmd.Context(), grade); err != nil {
				return fmt.Errorf("LookupKanjiByGrade(%d) > %w", grade, err)
			}
			return nil
		},
	}
}
