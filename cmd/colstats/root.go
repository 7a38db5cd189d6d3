package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/shashank-93rao/colstats/internal/log"
	"github.com/shashank-93rao/colstats/pkg/dataset"
	"github.com/shashank-93rao/colstats/pkg/reduce"
	"github.com/shashank-93rao/colstats/pkg/stats/factory"
)

const (
	flagInput    = "input"
	flagSchema   = "schema"
	flagLogLevel = "log-level"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	root := &cobra.Command{
		Use:   "colstats",
		Short: "Summarise the numeric columns of a JSON object",
		Long: `colstats reads a JSON object mapping column names to arrays of numbers,
reduces every column with the chosen statistic, rounds to six decimal places
and prints the result as JSON.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return log.SetLevelString(v.GetString(flagLogLevel))
		},
	}

	pf := root.PersistentFlags()
	pf.StringArrayP(flagInput, "i", nil, "input file, repeatable; later files are appended column by column (default: stdin)")
	pf.StringP(flagSchema, "s", "", "schema file selecting the columns to reduce")
	pf.String(flagLogLevel, "warn", "log level (debug, info, warn, error)")

	v.SetEnvPrefix("COLSTATS")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlag(flagSchema, pf.Lookup(flagSchema))
	_ = v.BindPFlag(flagLogLevel, pf.Lookup(flagLogLevel))

	for _, kind := range factory.Kinds() {
		root.AddCommand(newStatCmd(v, kind))
	}
	return root
}

func newStatCmd(v *viper.Viper, kind factory.Kind) *cobra.Command {
	return &cobra.Command{
		Use:     string(kind),
		Aliases: factory.Aliases(kind),
		Short:   fmt.Sprintf("Print the %s of every column", kind),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inputs, err := cmd.Flags().GetStringArray(flagInput)
			if err != nil {
				return err
			}
			return run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), kind, inputs, v.GetString(flagSchema))
		},
	}
}

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, kind factory.Kind, inputs []string, schemaPath string) error {
	var opts []dataset.Option
	if schemaPath != "" {
		data, err := os.ReadFile(schemaPath)
		if err != nil {
			return fmt.Errorf("read schema: %w", err)
		}
		s, err := dataset.ParseSchema(data)
		if err != nil {
			return fmt.Errorf("%s: %w", schemaPath, err)
		}
		log.Ctx(ctx).Debug().Strs("columns", s.Columns()).Msg("loaded schema")
		opts = append(opts, dataset.WithSchema(s))
	}

	ds, err := loadDataset(ctx, stdin, inputs, opts)
	if err != nil {
		return err
	}

	r, err := factory.GetReducer(kind)
	if err != nil {
		return err
	}
	res, err := reduce.Columns(ctx, ds, r)
	if err != nil {
		return err
	}
	return res.Indent(stdout)
}

func loadDataset(ctx context.Context, stdin io.Reader, inputs []string, opts []dataset.Option) (*dataset.Dataset, error) {
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	var ds *dataset.Dataset
	for _, name := range inputs {
		data, err := readInput(stdin, name)
		if err != nil {
			return nil, err
		}
		next, err := dataset.Parse(data, opts...)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(name), err)
		}
		log.Ctx(ctx).Info().Str("input", displayName(name)).Int("columns", next.Len()).Msg("parsed dataset")

		if ds == nil {
			ds = next
			continue
		}
		if ds, err = dataset.Append(ds, next); err != nil {
			return nil, fmt.Errorf("%s: %w", displayName(name), err)
		}
	}
	return ds, nil
}

func readInput(stdin io.Reader, name string) ([]byte, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func displayName(name string) string {
	if name == "-" {
		return "stdin"
	}
	return name
}
