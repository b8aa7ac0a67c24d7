package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"slices"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bjaus/wikifmt"
	"github.com/bjaus/wikifmt/internal/logging"
)

var errRequestsFailed = errors.New("some requests failed")

func newFormatCmd(opts *options) *cobra.Command {
	var asText bool
	cmd := &cobra.Command{
		Use:   "format TEMPLATE [ARG...]",
		Short: "Substitute placeholders in a template",
		Long: `Substitute #N placeholders with the given arguments. Arguments that parse
as integers or floats are treated as numbers unless --text is set.`,
		Example: `  wikifmt format 'Deals #1[i]% damage' 12
  wikifmt format '#1 for #2[f1] turns' Burn 2.5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			f, err := cfg.Formatter()
			if err != nil {
				return err
			}
			values := make([]wikifmt.Value, 0, len(args)-1)
			for _, arg := range args[1:] {
				if asText {
					values = append(values, wikifmt.Text(arg))
					continue
				}
				values = append(values, parseArgument(arg))
			}
			out, err := f.Format(args[0], values...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVarP(&asText, "text", "t", false, "treat every argument as text")
	return cmd
}

// parseArgument picks the narrowest value kind that reads s exactly.
func parseArgument(s string) wikifmt.Value {
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return wikifmt.Signed(n)
	}
	if n, err := strconv.ParseUint(s, 10, 64); err == nil {
		return wikifmt.Unsigned(n)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return wikifmt.Floating(f)
	}
	return wikifmt.Text(s)
}

func newWikiCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "wiki TEMPLATE",
		Short: "Convert rich-text tags to wiki markup",
		Long: `Convert rich-text tags in TEMPLATE to MediaWiki markup. Use - to read the
template from standard input.`,
		Example: `  wikifmt wiki 'Inflicts <u>Burn</u> for <b>3</b> turns'
  echo '<quote>Hello</quote>' | wikifmt wiki -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			f, err := cfg.Formatter()
			if err != nil {
				return err
			}
			template := args[0]
			if template == "-" {
				b, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return err
				}
				template = string(b)
			}
			out, err := f.FormatWiki(template)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}

func newRenderCmd(opts *options) *cobra.Command {
	var keepGoing bool
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Render a YAML batch of templates",
		Long: `Render every request in a YAML file and write the entries in the configured
output format. Use - to read the batch from standard input.`,
		Example: `  wikifmt render skills.yaml -o wikitable
  wikifmt render skills.yaml -o 'go-template={{.Key}}: {{.Text}}'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("render")
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			format, err := cfg.Format()
			if err != nil {
				return err
			}
			f, err := cfg.Formatter()
			if err != nil {
				return err
			}

			in := cmd.InOrStdin()
			if args[0] != "-" {
				file, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer file.Close()
				in = file
			}
			reqs, err := wikifmt.LoadRequests(in)
			if err != nil {
				return err
			}
			logger.Debug().Int("requests", len(reqs)).Str("format", format.String()).Msg("Rendering batch")

			out := cmd.OutOrStdout()
			if !keepGoing {
				entries := make([]wikifmt.Entry, 0, len(reqs))
				for entry, err := range f.RenderAll(slices.Values(reqs)) {
					if err != nil {
						return err
					}
					entries = append(entries, entry)
				}
				return wikifmt.Write(out, format, entries...)
			}

			failed := 0
			entries := func(yield func(wikifmt.Entry) bool) {
				for entry, err := range f.RenderAll(slices.Values(reqs)) {
					if err != nil {
						failed++
						logger.Warn().Err(err).Msg("Skipping request")
						continue
					}
					if !yield(entry) {
						return
					}
				}
			}
			if err := wikifmt.WriteIter(out, format, entries); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%w: %d of %d", errRequestsFailed, failed, len(reqs))
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&keepGoing, "keep-going", "k", false, "skip requests that fail to render")
	return cmd
}

func newTagsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "Print the active tag vocabulary as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			f, err := cfg.Formatter()
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(map[string]any{"tags": f.Config().Vocabulary.Tags()}); err != nil {
				return err
			}
			return enc.Close()
		},
	}
}
