package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	_ "karnaugh/internal/cover/exact"
	_ "karnaugh/internal/cover/weighted"
)

func newRootCmd() *cobra.Command {
	var debug bool
	rootCmd := &cobra.Command{
		Use:   "kmap-cli",
		Short: "kmap-cli",
		Long:  `A CLI tool to minimize Boolean functions of two to six variables with Karnaugh maps.`,

		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				log.SetLevel(log.DebugLevel)
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newSimplifyCmd(),
		newCanonicalCmd(),
		newGrayCmd(),
		newSweepCmd(),
	)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
