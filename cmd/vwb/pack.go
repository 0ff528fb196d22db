package main

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/BigBoySanchez/go-vwb/vwb"
)

var packCmd = &cobra.Command{
	Use:   "pack <input-file>",
	Short: "Pack raw tensor data into a weight blob",
	Long: `Pack reads concatenated raw tensor data and a manifest listing the
element count of each tensor, quantizes float inputs to int8, and writes a
block-compressed weight blob.

The manifest holds one element count per line; blank lines and lines
starting with # are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPack(args[0])
	},
}

func init() {
	packCmd.Flags().StringP("out", "o", "", "output blob path")
	packCmd.Flags().StringP("manifest", "m", "", "manifest file with per-tensor element counts")
	packCmd.Flags().StringP("format", "f", "int8", "input element format: int8, float32 or float16")

	cobra.CheckErr(viper.BindPFlag("pack.out", packCmd.Flags().Lookup("out")))
	cobra.CheckErr(viper.BindPFlag("pack.manifest", packCmd.Flags().Lookup("manifest")))
	cobra.CheckErr(viper.BindPFlag("pack.format", packCmd.Flags().Lookup("format")))

	rootCmd.AddCommand(packCmd)
}

func runPack(inputPath string) error {
	outPath := viper.GetString("pack.out")
	if outPath == "" {
		return fmt.Errorf("missing output path (--out)")
	}
	manifestPath := viper.GetString("pack.manifest")
	if manifestPath == "" {
		return fmt.Errorf("missing manifest path (--manifest)")
	}
	format := viper.GetString("pack.format")

	width, ok := map[string]int{"int8": 1, "float32": 4, "float16": 2}[format]
	if !ok {
		return fmt.Errorf("unknown format %q", format)
	}

	counts, err := readManifest(manifestPath)
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	total := 0
	for _, n := range counts {
		total += n * width
	}
	if total != len(data) {
		return fmt.Errorf("manifest describes %d bytes, input has %d", total, len(data))
	}

	writer := vwb.NewWriter()
	pos := 0
	for i, n := range counts {
		raw := data[pos : pos+n*width]
		pos += n * width

		scale := float32(1)
		switch format {
		case "int8":
			values := make([]int8, n)
			for j, b := range raw {
				values[j] = int8(b)
			}
			err = writer.AddTensor(values)
		case "float32":
			values := make([]float32, n)
			for j := range values {
				values[j] = math.Float32frombits(binary.LittleEndian.Uint32(raw[j*4:]))
			}
			scale, err = writer.AddTensorFloat32(values)
		case "float16":
			bits := make([]uint16, n)
			for j := range bits {
				bits[j] = binary.LittleEndian.Uint16(raw[j*2:])
			}
			scale, err = writer.AddTensorFloat16(bits)
		}
		if err != nil {
			return fmt.Errorf("tensor %d: %w", i, err)
		}
		sugar.Debugw("added tensor", "index", i, "elements", n, "scale", scale)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	written, err := writer.WriteTo(out)
	if err != nil {
		out.Close()
		return fmt.Errorf("failed to write blob: %w", err)
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("failed to close output: %w", err)
	}

	sugar.Infow("packed blob",
		"path", outPath,
		"tensors", writer.TensorCount(),
		"bytes", written,
	)
	return nil
}

func readManifest(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return parseManifest(f)
}

func parseManifest(r io.Reader) ([]int, error) {
	var counts []int

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}

		n, err := strconv.Atoi(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: bad element count %q: %w", line, text, err)
		}
		if n <= 0 {
			return nil, fmt.Errorf("line %d: element count must be positive, got %d", line, n)
		}
		counts = append(counts, n)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(counts) == 0 {
		return nil, fmt.Errorf("manifest lists no tensors")
	}
	return counts, nil
}
