package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/jellyblocker/internal/presets"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List starting boards",
	Long: `Shows the built-in starting boards and any found in --presets-dir.
A file there with the same ID as a built-in replaces it.`,
	Args: cobra.NoArgs,
	RunE: runPresets,
}

func runPresets(cmd *cobra.Command, _ []string) error {
	all, err := presets.All(expandHome(flagPresetsDir))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(all) == 0 {
		fmt.Fprintln(out, "No starting boards available.")
		return nil
	}

	maxIDLen := 2 // "ID" header
	for _, p := range all {
		maxIDLen = max(maxIDLen, len(p.ID))
	}

	fmt.Fprintln(out, "Starting boards:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, "ID", "Cells", "Name")
	fmt.Fprintf(out, "  %-*s  %-5s  %s\n", maxIDLen, "--", "-----", "----")
	for _, p := range all {
		fmt.Fprintf(out, "  %-*s  %-5d  %s\n", maxIDLen, p.ID, p.Cells(), p.Name)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'jellyblocker play --preset <id>' to start on a board.")
	return nil
}
