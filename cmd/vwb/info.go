package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/BigBoySanchez/go-vwb/verify"
	"github.com/BigBoySanchez/go-vwb/vwb"
)

var infoCmd = &cobra.Command{
	Use:   "info <blob>",
	Short: "Print blob header and tensor table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInfo(args[0])
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(path string) error {
	blob, err := vwb.Parse(path)
	if err != nil {
		return err
	}

	h := blob.Header
	fmt.Printf("magic:    0x%08X (%s)\n", h.Magic, variantName(h.Magic))
	fmt.Printf("payload:  %d bytes\n", h.PayloadSize)
	if h.Magic == vwb.MagicBlock {
		fmt.Printf("block:    %d elements\n", h.BlockSize)
	} else {
		fmt.Printf("checksum: 0x%08X\n", h.BlockSize)
	}
	fmt.Printf("tensors:  %d\n", len(blob.Tensors))

	fmt.Printf("\n%4s %9s %7s %9s  %s\n", "#", "elements", "blocks", "offset", "fingerprint")
	for i, t := range blob.Tensors {
		fmt.Printf("%4d %9d %7d %9d  0x%016X\n",
			i, t.Elements, t.Blocks, t.Offset, verify.Fingerprint(t.Data()))
	}
	return nil
}

func variantName(magic uint32) string {
	switch magic {
	case vwb.MagicRaw:
		return "VWB0"
	case vwb.MagicBlock:
		return "VWB1"
	}
	return "unknown"
}
