package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BigBoySanchez/go-vwb/verify"
	"github.com/BigBoySanchez/go-vwb/vwb"
)

var goldenCmd = &cobra.Command{
	Use:   "golden <blob>",
	Short: "Record a golden hash file from a blob",
	Long: `Golden decodes every tensor in the blob and writes one line per
tensor with its name, element count and additive hash. The resulting file
is the expected-value input for the verify subcommand.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGolden(args[0])
	},
}

func init() {
	goldenCmd.Flags().StringP("out", "o", "-", "output path, - for stdout")
	goldenCmd.Flags().String("prefix", "tensor", "name prefix for golden entries")

	cobra.CheckErr(viper.BindPFlag("golden.out", goldenCmd.Flags().Lookup("out")))
	cobra.CheckErr(viper.BindPFlag("golden.prefix", goldenCmd.Flags().Lookup("prefix")))

	rootCmd.AddCommand(goldenCmd)
}

func runGolden(path string) error {
	blob, err := vwb.Parse(path)
	if err != nil {
		return err
	}

	prefix := viper.GetString("golden.prefix")
	entries := make([]verify.GoldenEntry, len(blob.Tensors))
	for i, t := range blob.Tensors {
		entries[i] = verify.GoldenEntry{
			Name:     fmt.Sprintf("%s%d", prefix, i),
			Elements: t.Elements,
			Hash:     verify.Hash(t.Data()),
		}
	}

	var out io.Writer = os.Stdout
	outPath := viper.GetString("golden.out")
	if outPath != "-" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("failed to create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := verify.WriteGolden(out, entries); err != nil {
		return fmt.Errorf("failed to write golden file: %w", err)
	}

	sugar.Debugw("recorded golden entries", "tensors", len(entries), "out", outPath)
	return nil
}
