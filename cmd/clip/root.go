package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "clip",
	Short: "Save web content to LightNote from the command line",
	Long: `clip is the capture client for a LightNote backend.
It plays the same role as the browser extension: grab a piece of text,
attach its source, and fire it at the service. There is no queue and no
retry; if the service is down the save is simply reported as failed.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
