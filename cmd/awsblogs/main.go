package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "awsblogs",
		Short: "AWS blogs tool server",
		Long: "awsblogs serves tools for searching, browsing and reading AWS blog posts over MCP (stdio) " +
			"or HTTP, and can run the same tools from the command line.",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file (default: ./config.yaml if present)")

	root.AddCommand(
		newServeCmd(&configPath),
		newCallCmd(&configPath),
		newCategoriesCmd(&configPath),
		newHealthcheckCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "awsblogs %s (commit: %s, built: %s)\n", version, commit, date)
		},
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
