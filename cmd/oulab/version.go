package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/oulab/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionLine())
	},
}

// versionLine reports the embedded version with the Go runtime and platform.
func versionLine() string {
	return fmt.Sprintf("oulab version %s (%s %s/%s)", version.Get(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
