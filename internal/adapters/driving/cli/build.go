package cli

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/wordlist/internal/adapters/driven/config/file"
	"github.com/custodia-labs/wordlist/internal/adapters/driven/source/httpsource"
	"github.com/custodia-labs/wordlist/internal/adapters/driven/storage/textfile"
	"github.com/custodia-labs/wordlist/internal/core/domain"
	"github.com/custodia-labs/wordlist/internal/core/ports/driving"
	"github.com/custodia-labs/wordlist/internal/core/services"
	"github.com/custodia-labs/wordlist/internal/logger"
	"github.com/custodia-labs/wordlist/internal/normalisers/wordlist"
)

// Flag names.
const (
	flagOutput           = "output"
	flagMinLength        = "min-length"
	flagMaxLength        = "max-length"
	flagAllowHyphens     = "allow-hyphens"
	flagAllowApostrophes = "allow-apostrophes"
)

// buildOptions mirrors the command line surface. Toggles are 0 or 1.
type buildOptions struct {
	Output           string `validate:"required"`
	MinLength        int    `validate:"gte=0"`
	MaxLength        int    `validate:"gte=0"`
	AllowHyphens     int    `validate:"oneof=0 1"`
	AllowApostrophes int    `validate:"oneof=0 1"`
}

var (
	buildFlags buildOptions
	validate   = validator.New()
)

// newBuilder wires the production pipeline. Tests may replace it.
var newBuilder = func() driving.WordListBuilder {
	return services.NewBuildService(httpsource.New(nil), wordlist.New(), textfile.NewWriter())
}

func init() {
	defaults := domain.DefaultBuildSettings()

	flags := rootCmd.Flags()
	flags.StringVarP(&buildFlags.Output, flagOutput, "o", defaults.OutputPath,
		"path to write the normalised word list")
	flags.IntVar(&buildFlags.MinLength, flagMinLength, defaults.Filter.MinLength,
		"minimum word length to include")
	flags.IntVar(&buildFlags.MaxLength, flagMaxLength, defaults.Filter.MaxLength,
		"maximum word length to include; 0 disables")
	flags.IntVar(&buildFlags.AllowHyphens, flagAllowHyphens, 0,
		"allow hyphens '-' in words (0 or 1)")
	flags.IntVar(&buildFlags.AllowApostrophes, flagAllowApostrophes, 0,
		"allow apostrophes '\\'' in words (0 or 1)")
}

func runBuild(cmd *cobra.Command, _ []string) error {
	store, err := file.NewConfigStore(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config: %s", store.Path())

	settings, err := services.NewSettingsService(store).Get()
	if err != nil {
		return err
	}

	req, err := resolveRequest(cmd, settings)
	if err != nil {
		return err
	}

	summary, err := newBuilder().Build(cmd.Context(), req)
	if err != nil {
		return err
	}

	logger.Info("%d lines read, %d duplicates, %d rejected in %s",
		summary.Stats.Lines, summary.Stats.Duplicates, summary.Stats.Rejected(), summary.Elapsed)
	fmt.Fprintln(cmd.OutOrStdout(), formatSummary(summary))
	return nil
}

// resolveRequest overlays explicitly set flags on the configured settings
// and validates the result.
func resolveRequest(cmd *cobra.Command, settings *domain.BuildSettings) (domain.BuildRequest, error) {
	flags := cmd.Flags()

	opts := buildOptions{
		Output:           settings.OutputPath,
		MinLength:        settings.Filter.MinLength,
		MaxLength:        settings.Filter.MaxLength,
		AllowHyphens:     boolToInt(settings.Filter.AllowHyphens),
		AllowApostrophes: boolToInt(settings.Filter.AllowApostrophes),
	}
	if flags.Changed(flagOutput) {
		opts.Output = buildFlags.Output
	}
	if flags.Changed(flagMinLength) {
		opts.MinLength = buildFlags.MinLength
	}
	if flags.Changed(flagMaxLength) {
		opts.MaxLength = buildFlags.MaxLength
	}
	if flags.Changed(flagAllowHyphens) {
		opts.AllowHyphens = buildFlags.AllowHyphens
	}
	if flags.Changed(flagAllowApostrophes) {
		opts.AllowApostrophes = buildFlags.AllowApostrophes
	}

	if err := validate.Struct(opts); err != nil {
		return domain.BuildRequest{}, fmt.Errorf("%w: %s", domain.ErrInvalidInput, describeValidation(err))
	}

	return domain.BuildRequest{
		Source:     settings.Source,
		OutputPath: opts.Output,
		Filter: domain.FilterOptions{
			MinLength:        opts.MinLength,
			MaxLength:        opts.MaxLength,
			AllowHyphens:     opts.AllowHyphens == 1,
			AllowApostrophes: opts.AllowApostrophes == 1,
		},
	}, nil
}

// describeValidation names the offending flag for each failed rule.
func describeValidation(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err.Error()
	}

	fe := verrs[0]
	name := flagNameFor(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("--%s must not be empty", name)
	case "gte":
		return fmt.Sprintf("--%s must be >= %s, got %v", name, fe.Param(), fe.Value())
	case "oneof":
		return fmt.Sprintf("--%s must be one of %s, got %v", name, fe.Param(), fe.Value())
	default:
		return fmt.Sprintf("--%s is invalid", name)
	}
}

func flagNameFor(field string) string {
	switch field {
	case "Output":
		return flagOutput
	case "MinLength":
		return flagMinLength
	case "MaxLength":
		return flagMaxLength
	case "AllowHyphens":
		return flagAllowHyphens
	case "AllowApostrophes":
		return flagAllowApostrophes
	default:
		return field
	}
}

// formatSummary renders e.g.
// "Wrote 370,105 words to data/wordlists/english_words.txt (min_len=2, max_len=none, hyphens=false, apostrophes=false)".
func formatSummary(s *domain.BuildSummary) string {
	return fmt.Sprintf("Wrote %s words to %s (%s)",
		humanize.Comma(int64(s.Count)), s.OutputPath, s.Filter)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
