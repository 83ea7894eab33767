package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/numregex/pkg/config"
	"github.com/dmitrymomot/numregex/pkg/logger"
	"github.com/dmitrymomot/numregex/pkg/numformat"
	"github.com/dmitrymomot/numregex/pkg/numregex"
	"github.com/dmitrymomot/numregex/pkg/validator"
)

// app carries state shared by every subcommand.
type app struct {
	log      *slog.Logger
	registry *numformat.Registry
	cache    *numregex.Cache

	locale       string
	profilesFile string
}

// patternArgs represents the pattern option flags shared by pattern and match.
type patternArgs struct {
	digits          int
	sign            string
	grouping        string
	decimals        int
	decimalRequired bool
	whiteSpace      string
}

func (a *patternArgs) bind(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&a.digits, "digits", "d", 0,
		"Exact number of integer digits. 0 allows any number of digits.")
	cmd.Flags().StringVarP(&a.sign, "sign", "s", numregex.SignNone.String(),
		"Allowed signs: none, positive, negative, positive-or-none, negative-or-none, positive-or-negative, any.")
	cmd.Flags().StringVarP(&a.grouping, "grouping", "g", numregex.GroupingNone.String(),
		"Group separators: none, required, optional.")
	cmd.Flags().IntVar(&a.decimals, "decimals", 0,
		"Maximum number of decimal digits, or the exact number with --decimal-required.")
	cmd.Flags().BoolVar(&a.decimalRequired, "decimal-required", false,
		"Require exactly --decimals decimal digits.")
	cmd.Flags().StringVarP(&a.whiteSpace, "whitespace", "w", numregex.WhiteSpaceNone.String(),
		"Surrounding whitespace: none, leading, trailing, leading-or-trailing.")
}

func (a *patternArgs) options() (numregex.Options, error) {
	sign, err := numregex.ParseSign(a.sign)
	if err != nil {
		return numregex.Options{}, err
	}
	grouping, err := numregex.ParseGrouping(a.grouping)
	if err != nil {
		return numregex.Options{}, err
	}
	ws, err := numregex.ParseWhiteSpace(a.whiteSpace)
	if err != nil {
		return numregex.Options{}, err
	}

	decimals := numregex.WithDecimalDigits(a.decimals)
	if a.decimalRequired {
		decimals = numregex.WithRequiredDecimalDigits(a.decimals)
	}
	o := numregex.NewOptions(
		numregex.WithDigitCount(a.digits),
		numregex.WithSign(sign),
		numregex.WithGrouping(grouping),
		decimals,
		numregex.WithWhiteSpace(ws),
	)
	return o, o.Validate()
}

// newRootCmd creates the root command with every subcommand attached.
func newRootCmd(cfg config.Config, log *slog.Logger) *cobra.Command {
	a := &app{
		log:      log,
		registry: numformat.NewRegistry(),
		cache:    numregex.NewCache(cfg.CacheSize, numregex.WithCacheLogger(log)),
	}

	cmd := &cobra.Command{
		Use:           "numregex",
		Short:         "Culture-aware regular expressions for numeric strings",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.profilesFile == "" {
				return nil
			}
			if err := a.registry.LoadFile(a.profilesFile); err != nil {
				return err
			}
			a.log.Debug("profiles loaded",
				slog.String("file", a.profilesFile),
				slog.Any("names", a.registry.Names()),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			hits, misses := a.cache.Stats()
			a.log.Debug("done", logger.Group("cache",
				slog.Uint64("hits", hits),
				slog.Uint64("misses", misses),
				slog.Int("size", a.cache.Len()),
			))
		},
	}

	cmd.PersistentFlags().StringVarP(&a.locale, "locale", "l", cfg.Locale,
		"Locale identifier or custom profile name. Defaults to NUMREGEX_LOCALE.")
	cmd.PersistentFlags().StringVar(&a.profilesFile, "profiles", cfg.ProfilesFile,
		"YAML file with custom profiles. Defaults to NUMREGEX_PROFILES_FILE.")

	cmd.AddCommand(newPatternCmd(a))
	cmd.AddCommand(newMatchCmd(a))
	cmd.AddCommand(newProfileCmd(a))
	return cmd
}

func (a *app) compile(pa *patternArgs) (*numregex.Matcher, error) {
	o, err := pa.options()
	if err != nil {
		return nil, err
	}
	p, err := a.registry.Lookup(a.locale)
	if err != nil {
		return nil, err
	}
	m, err := a.cache.Compile(p, o)
	if err != nil {
		return nil, fmt.Errorf("locale %s: %w", a.locale, err)
	}
	a.log.Debug("pattern ready",
		logger.Locale(a.locale),
		logger.Options(o),
		logger.Pattern(m.String()),
	)
	return m, nil
}

// newPatternCmd creates the pattern subcommand.
func newPatternCmd(a *app) *cobra.Command {
	pa := &patternArgs{}
	cmd := &cobra.Command{
		Use:   "pattern",
		Short: "Print the regular expression for the given options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.compile(pa)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), m.String())
			return err
		},
	}
	pa.bind(cmd)
	return cmd
}

// newMatchCmd creates the match subcommand.
func newMatchCmd(a *app) *cobra.Command {
	pa := &patternArgs{}
	cmd := &cobra.Command{
		Use:   "match [value...]",
		Short: "Check values against the pattern",
		Long: `Check values against the pattern for the given options.
Values are read one per line from stdin when none are provided.
Exits with status 1 when any value does not match.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.compile(pa)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				args, err = readLines(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			rules := make([]validator.Rule, len(args))
			for i, value := range args {
				rules[i] = validator.NumericFormat(value, value, m)
			}
			verr := validator.Apply(rules...)
			rejected := validator.ExtractValidationErrors(verr)

			out := cmd.OutOrStdout()
			for _, value := range args {
				verdict := "valid"
				if rejected.Has(value) {
					verdict = "invalid"
					a.log.Debug("value rejected", logger.Input(value))
				}
				if _, err := fmt.Fprintf(out, "%q\t%s\n", value, verdict); err != nil {
					return err
				}
			}
			if verr != nil {
				a.log.Debug("values rejected",
					slog.Any("values", rejected.Fields()),
					logger.Pattern(m.String()),
				)
				return verr
			}
			return nil
		},
	}
	pa.bind(cmd)
	return cmd
}

// newProfileCmd creates the profile subcommand.
func newProfileCmd(a *app) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "profile [name]",
		Short: "Show the formatting profile of a locale",
		Long: `Show the formatting profile of a locale or custom profile as YAML.
Uses --locale when no name is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _, name := range a.registry.Names() {
					if _, err := fmt.Fprintln(out, name); err != nil {
						return err
					}
				}
				return nil
			}

			name := a.locale
			if len(args) == 1 {
				name = args[0]
			}
			p, err := a.registry.Lookup(name)
			if err != nil {
				return err
			}
			enc := yaml.NewEncoder(out)
			enc.SetIndent(2)
			if err := enc.Encode(p); err != nil {
				return fmt.Errorf("encode profile: %w", err)
			}
			return enc.Close()
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List custom profile names instead.")
	return cmd
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimRight(sc.Text(), "\r"); line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read values: %w", err)
	}
	return lines, nil
}
