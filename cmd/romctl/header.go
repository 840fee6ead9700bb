package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/romkit/format"
	"github.com/LittlestCube/romkit/rom"
)

func init() {
	rootCmd.AddCommand(newHeaderCmd())
}

func newHeaderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "header",
		Short: "Manage a ROM image's copier header",
	}
	cmd.AddCommand(newHeaderAddCmd())
	cmd.AddCommand(newHeaderStripCmd())
	return cmd
}

func newHeaderAddCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "add <rom>",
		Short: "Prepend a zero-filled copier header",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeaderAdd(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the headered image to this path instead of in place")
	return cmd
}

func runHeaderAdd(path, output string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}
	r, err := rom.Open(path, table)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	if r.HeaderStripped() {
		return fmt.Errorf("%s already has a copier header", path)
	}

	if err := r.AddHeader(); err != nil {
		return err
	}

	if output == "" {
		output = path
	}
	if err := r.Save(output); err != nil {
		return err
	}

	printInfo("Added a %#x-byte header to %s (%s)\n", format.HeaderSize, path, output)
	return nil
}

func newHeaderStripCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "strip <rom>",
		Short: "Remove the copier header from a headered image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHeaderStrip(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write the stripped image to this path instead of in place")
	return cmd
}

func runHeaderStrip(path, output string) error {
	table, err := loadTable()
	if err != nil {
		return err
	}

	// Detection strips the header as a side effect; saving the image
	// persists the stripped form.
	r, err := rom.Open(path, table)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}
	if !r.HeaderStripped() {
		return fmt.Errorf("%s has no copier header to strip", path)
	}

	if output == "" {
		output = path
	}
	if err := r.Save(output); err != nil {
		return err
	}

	printInfo("Stripped the %#x-byte header from %s (%s)\n", format.HeaderSize, path, output)
	return nil
}
