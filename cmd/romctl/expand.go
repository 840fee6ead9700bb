package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/romkit/rom"
)

func init() {
	rootCmd.AddCommand(newExpandCmd())
}

func newExpandCmd() *cobra.Command {
	var (
		sizeStr string
		output  string
	)

	cmd := &cobra.Command{
		Use:   "expand <rom>",
		Short: "Grow a ROM image to an expanded size",
		Long: `The expand command grows a ROM image to one of the sizes its rom type
supports. For Earthbound images the legal targets are 0x400000 and 0x600000.

By default the image is rewritten in place; use --output to write elsewhere.

Example:
  romctl expand earthbound.smc --size 0x400000
  romctl expand earthbound.smc --size 0x600000 --output expanded.smc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExpand(args[0], sizeStr, output)
		},
	}
	cmd.Flags().StringVar(&sizeStr, "size", "", "Target size in bytes (hex accepted)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the expanded image to this path instead of in place")
	_ = cmd.MarkFlagRequired("size")
	return cmd
}

func runExpand(path, sizeStr, output string) error {
	desired, err := strconv.ParseInt(sizeStr, 0, 64)
	if err != nil {
		return fmt.Errorf("invalid size %q: %w", sizeStr, err)
	}

	table, err := loadTable()
	if err != nil {
		return err
	}
	r, err := rom.Open(path, table)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	printVerbose("Detected %s image of %#x bytes\n", r.Tag, r.Size())

	if err := r.Expand(int(desired)); err != nil {
		return err
	}

	if output == "" {
		output = path
	}
	if err := r.Save(output); err != nil {
		return err
	}

	printInfo("Expanded %s to %#x bytes (%s)\n", path, r.Size(), output)
	return nil
}
