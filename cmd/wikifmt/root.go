package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/bjaus/wikifmt/internal/config"
	"github.com/bjaus/wikifmt/internal/logging"
	"github.com/bjaus/wikifmt/internal/version"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	verbosity         int
	configPath        string
	format            string
	glossary          string
	vocabulary        string
	mediaWikiSyntax   bool
	newlineAfterBlock bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "wikifmt",
		Short: "Render game text templates as plain text or wiki markup",
		Long: `wikifmt substitutes #N placeholders in game text templates and turns
rich-text tags such as <b>, <u> and <color=...> into MediaWiki markup.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(opts.verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	flags.StringVarP(&opts.configPath, "config", "c", "", "config file (default is ./"+config.FileName+" if present)")
	flags.StringVarP(&opts.format, "output", "o", "", "output format for render: plain, json, jsonl, yaml, csv, tsv, markdown, wikitable or go-template=TEMPLATE")
	flags.StringVar(&opts.glossary, "glossary", "", "YAML glossary of effect names and join words")
	flags.StringVar(&opts.vocabulary, "vocabulary", "", "YAML tag vocabulary")
	flags.BoolVar(&opts.mediaWikiSyntax, "media-wiki-syntax", true, "emit wiki markup for decorations")
	flags.BoolVar(&opts.newlineAfterBlock, "newline-after-block", true, "insert a blank line after block elements")

	cmd.AddCommand(
		newFormatCmd(opts),
		newWikiCmd(opts),
		newRenderCmd(opts),
		newTagsCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// load resolves configuration, letting flags the user actually set win.
func (o *options) load(cmd *cobra.Command) (*config.Config, error) {
	overrides := map[string]any{}
	flags := cmd.Flags()
	if flags.Changed("output") {
		overrides[config.KeyFormat] = o.format
	}
	if flags.Changed("glossary") {
		overrides[config.KeyGlossary] = o.glossary
	}
	if flags.Changed("vocabulary") {
		overrides[config.KeyVocabulary] = o.vocabulary
	}
	if flags.Changed("media-wiki-syntax") {
		overrides[config.KeyMediaWikiSyntax] = o.mediaWikiSyntax
	}
	if flags.Changed("newline-after-block") {
		overrides[config.KeyNewlineAfterBlock] = o.newlineAfterBlock
	}

	cfg, err := config.Load(config.Options{Path: o.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("format", cfg.Output.Format).
		Bool("mediaWikiSyntax", cfg.Wiki.MediaWikiSyntax).
		Str("glossary", cfg.Data.Glossary).
		Msg("Configuration loaded")
	return cfg, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := fmt.Fprintf(out, "wikifmt version %s\n  commit: %s\n  built:  %s\n",
				version.Version, version.Commit, version.Date)
			return err
		},
	}
}
