package strfind

import (
	"fmt"

	"github.com/arthur-debert/strfind/pkg/config"
	"github.com/arthur-debert/strfind/pkg/filesystem"
	"github.com/arthur-debert/strfind/pkg/logging"
	"github.com/arthur-debert/strfind/pkg/output"
	"github.com/arthur-debert/strfind/pkg/output/styles"
	"github.com/arthur-debert/strfind/pkg/pathfilter"
	"github.com/arthur-debert/strfind/pkg/search"
	"github.com/arthur-debert/strfind/pkg/types"
	"github.com/spf13/cobra"
)

// searchOptions holds the root command's search flags
type searchOptions struct {
	directory  string
	filename   string
	term       string
	ignoreCase bool
	regex      bool
	output     string
	exclude    []string
	strict     bool
	quiet      bool
	noColor    bool
}

func (o *searchOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&o.directory, "directory", "d", "", MsgFlagDirectory)
	flags.StringVarP(&o.filename, "filename", "f", "", MsgFlagFilename)
	flags.StringVarP(&o.term, "searchstring", "s", "", MsgFlagSearch)
	flags.BoolVarP(&o.ignoreCase, "ignorecase", "i", false, MsgFlagIgnoreCase)
	flags.BoolVarP(&o.regex, "regex", "r", false, MsgFlagRegex)
	flags.StringVarP(&o.output, "output", "o", "", MsgFlagOutput)
	flags.StringArrayVarP(&o.exclude, "exclude", "e", nil, MsgFlagExclude)
	flags.BoolVar(&o.strict, "strict", false, MsgFlagStrict)
	flags.BoolVarP(&o.quiet, "quiet", "q", false, MsgFlagQuiet)
	flags.BoolVar(&o.noColor, "no-color", false, MsgFlagNoColor)

	_ = cmd.MarkFlagRequired("searchstring")
	_ = cmd.RegisterFlagCompletionFunc("output", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"path", "name", "full"}, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagDirname("directory")
}

// overrides turns the flags the user actually set into configuration keys,
// so unset flags never mask a configured value.
func (o *searchOptions) overrides(cmd *cobra.Command) map[string]interface{} {
	changed := cmd.Flags().Changed
	values := map[string]interface{}{}

	if changed("filename") {
		values["search.filename"] = o.filename
	}
	if changed("output") {
		values["search.output"] = o.output
	}
	if changed("ignorecase") {
		values["search.ignorecase"] = o.ignoreCase
	}
	if changed("regex") {
		values["search.regex"] = o.regex
	}
	if changed("exclude") {
		values["search.exclude"] = pathfilter.SplitNames(o.exclude...)
	}
	if changed("strict") {
		values["search.strict"] = o.strict
	}
	if changed("quiet") {
		values["display.quiet"] = o.quiet
	}
	if changed("no-color") {
		values["display.color"] = !o.noColor
	}

	return values
}

func runSearch(cmd *cobra.Command, global *globalOptions, opts *searchOptions) error {
	logger := logging.GetLogger(logging.ComponentCLI)

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: global.configFile,
		Overrides:  opts.overrides(cmd),
	})
	if err != nil {
		return err
	}

	if cfg.Display.Styles != "" {
		if err := styles.LoadStyles(cfg.Display.Styles); err != nil {
			return fmt.Errorf(MsgErrLoadStyles, err)
		}
	}

	printer := output.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), output.Options{
		Color: output.ColorEnabled(cmd.OutOrStdout(), cfg.Display.Color),
		Quiet: cfg.Display.Quiet,
	})

	mode, err := types.ParseOutputMode(cfg.Search.Output)
	if err != nil {
		if cfg.Search.Strict {
			return err
		}
		logger.Debug().Str("output", cfg.Search.Output).Msg("Falling back to path output")
		printer.Warn(fmt.Sprintf(MsgOutputFallback, cfg.Search.Output))
	}

	req, err := types.NewSearchRequest(types.RequestOptions{
		Root:        opts.directory,
		NamePattern: cfg.Search.Filename,
		Term:        opts.term,
		IgnoreCase:  cfg.Search.IgnoreCase,
		UseRegex:    cfg.Search.Regex,
		Output:      mode,
		Exclude:     cfg.Search.Exclude,
	})
	if err != nil {
		return err
	}

	if _, err := search.NewEngine(filesystem.NewOS(), printer).Run(req); err != nil {
		return &ExitError{Code: ExitCode(err), Err: err}
	}
	return nil
}
