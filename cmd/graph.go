package cmd

import "github.com/spf13/cobra"

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Structural queries over a bead snapshot",
}

func init() {
	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(graphCyclesCmd)
	graphCmd.AddCommand(graphAdjacencyCmd)
	graphCmd.AddCommand(graphReadyCmd)
	graphCmd.AddCommand(graphLevelsCmd)
}
