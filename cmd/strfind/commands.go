package strfind

import (
	"fmt"
	"os"
	"strings"

	"github.com/arthur-debert/strfind/internal/version"
	"github.com/arthur-debert/strfind/pkg/cobrax/topics"
	"github.com/arthur-debert/strfind/pkg/config"
	"github.com/arthur-debert/strfind/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

// globalOptions are the flags shared by every command
type globalOptions struct {
	verbosity  int
	configFile string
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	global := &globalOptions{}
	opts := &searchOptions{}

	rootCmd := &cobra.Command{
		Use:     "strfind -s <string> [flags]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Resolved(),
		Args:    cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_, noColorEnv := os.LookupEnv("NO_COLOR")
			logging.Setup(logging.Options{
				Verbosity: global.verbosity,
				Quiet:     opts.quiet,
				NoColor:   opts.noColor || noColorEnv,
				Console:   cmd.ErrOrStderr(),
			})
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, global, opts)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.PersistentFlags().CountVarP(&global.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&global.configFile, "config", "", MsgFlagConfig)

	opts.register(rootCmd)

	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newConfigCmd(global))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	if _, err := topics.InitializeWithOptions(rootCmd, helpTopics, topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprint(cmd.OutOrStdout(), version.String())
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletionV2(out, true)
			case "zsh":
				return cmd.Root().GenZshCompletion(out)
			case "fish":
				return cmd.Root().GenFishCompletion(out, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(out)
			}
			return nil
		},
	}
}

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "man <directory>",
		Short: MsgManShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := args[0]
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf(MsgErrManDir, err)
			}

			header := &doc.GenManHeader{
				Title:   "STRFIND",
				Section: "1",
				Source:  "strfind " + version.Resolved(),
				Manual:  "strfind manual",
			}
			if err := doc.GenManTree(cmd.Root(), header, dir); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), MsgManWritten, dir)
			return nil
		},
	}
}

func newConfigCmd(global *globalOptions) *cobra.Command {
	var defaults bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: MsgConfigShort,
		Long:  MsgConfigLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if defaults {
				_, _ = fmt.Fprint(out, config.Defaults())
				return nil
			}

			cfg, err := config.Load(config.LoadOptions{ConfigFile: global.configFile})
			if err != nil {
				return err
			}

			dump, err := config.Dump(cfg)
			if err != nil {
				return err
			}

			if len(cfg.Sources) == 0 {
				_, _ = fmt.Fprint(out, MsgConfigNoFiles)
			} else {
				_, _ = fmt.Fprintf(out, MsgConfigSources, strings.Join(cfg.Sources, ", "))
			}
			_, _ = fmt.Fprint(out, dump)
			return nil
		},
	}

	cmd.Flags().BoolVar(&defaults, "defaults", false, MsgFlagDefaults)
	return cmd
}
