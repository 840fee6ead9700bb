package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LittlestCube/romkit/rom"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info <rom>",
		Short: "Detect a ROM image's type and report its free ranges",
		Long: `The info command loads a ROM image, detects its rom type, and reports
the image size and the byte ranges still free for new content.

Example:
  romctl info earthbound.smc
  romctl info earthbound.smc --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	}
	return cmd
}

type romInfo struct {
	Path           string   `json:"path"`
	Type           string   `json:"type"`
	Size           int      `json:"size"`
	HeaderStripped bool     `json:"header_stripped"`
	FreeBytes      int      `json:"free_bytes"`
	FreeRanges     []string `json:"free_ranges"`
}

func runInfo(args []string) error {
	path := args[0]

	printVerbose("Opening image: %s\n", path)

	table, err := loadTable()
	if err != nil {
		return err
	}
	r, err := rom.Open(path, table)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	info := romInfo{
		Path:           path,
		Type:           string(r.Tag),
		Size:           r.Size(),
		HeaderStripped: r.HeaderStripped(),
		FreeBytes:      r.Free.FreeBytes(),
	}
	for _, fr := range r.Free.Ranges() {
		info.FreeRanges = append(info.FreeRanges, fr.String())
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("\nImage Information:\n")
	printInfo("  File: %s\n", info.Path)
	printInfo("  Type: %s\n", info.Type)
	printInfo("  Size: %#x bytes\n", info.Size)
	if info.HeaderStripped {
		printInfo("  Copier header: present (ignored)\n")
	}
	printInfo("  Free: %#x bytes in %d ranges\n", info.FreeBytes, len(info.FreeRanges))
	for _, fr := range info.FreeRanges {
		printInfo("    %s\n", fr)
	}
	return nil
}
