package cli

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/wordlist/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Fetch and normalise an English word list for word games",
	Long: `Downloads the dwyl/english-words alphabetic list, keeps lowercase
ASCII words that pass the length and character filters, and writes them
deduplicated and sorted, one per line.

Defaults can be set in a TOML config file:

  [source]
  timeout = "60s"

  [output]
  path = "data/wordlists/english_words.txt"

  [filter]
  min_length = 2
  max_length = 0
  allow_hyphens = false
  allow_apostrophes = false

Flags given on the command line take precedence over the config file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.SetInteractive(term.IsTerminal(int(os.Stderr.Fd())))
	},
	RunE: runBuild,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.wordlist/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
