package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BigBoySanchez/go-vwb/verify"
	"github.com/BigBoySanchez/go-vwb/weightstream"
)

var verifyCmd = &cobra.Command{
	Use:   "verify <blob>",
	Short: "Check decoded tensor hashes against a golden file",
	Long: `Verify streams the blob the way the embedded consumer does, tensor
by tensor with the element counts recorded in the golden file, and compares
each tensor's additive hash against the recorded value. Exits non-zero on
any mismatch.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runVerify(cmd, args[0])
	},
}

func init() {
	verifyCmd.Flags().StringP("golden", "g", "", "golden hash file to check against")

	cobra.CheckErr(viper.BindPFlag("verify.golden", verifyCmd.Flags().Lookup("golden")))

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, blobPath string) error {
	goldenPath := viper.GetString("verify.golden")
	if goldenPath == "" {
		return fmt.Errorf("missing golden file (--golden)")
	}

	gf, err := os.Open(goldenPath)
	if err != nil {
		return fmt.Errorf("failed to open golden file: %w", err)
	}
	entries, err := verify.ParseGolden(gf)
	gf.Close()
	if err != nil {
		return fmt.Errorf("failed to parse golden file: %w", err)
	}

	f, err := os.Open(blobPath)
	if err != nil {
		return fmt.Errorf("failed to open blob: %w", err)
	}
	defer f.Close()

	ctx := cmd.Context()
	stream := weightstream.New(f,
		weightstream.WithLogger(streamLogger{sugar: sugar}),
		weightstream.WithProgressCallback(func(p weightstream.Progress) {
			sugar.Debugw("tensor read",
				"index", p.TensorIndex,
				"elements", p.Elements,
				"bytes", p.BytesRead,
			)
		}),
	)
	if err := stream.Reset(ctx); err != nil {
		return err
	}

	mismatches := 0
	for _, e := range entries {
		values, err := stream.ReadTensor(ctx, e.Elements)
		if err != nil {
			return fmt.Errorf("%s: %w", e.Name, err)
		}

		got := verify.Hash(values)
		if got != e.Hash {
			mismatches++
			sugar.Errorw("hash mismatch",
				"tensor", e.Name,
				"elements", e.Elements,
				"expected", fmt.Sprintf("0x%08X", e.Hash),
				"got", fmt.Sprintf("0x%08X", got),
			)
		}
	}

	if mismatches > 0 {
		return fmt.Errorf("verification failed: %d of %d tensors mismatched", mismatches, len(entries))
	}

	sugar.Infow("verification passed",
		"tensors", len(entries),
		"bytes", stream.BytesRead(),
	)
	return nil
}
