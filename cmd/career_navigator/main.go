// Package main provides the entry point for the Career Growth Navigator HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "career_navigator",
	Short: "Career Growth Navigator HTTP API Server",
	Long:  "Career Growth Navigator generates personalized career transition plans (skill gaps, six-month roadmaps, course picks, salary insights, and job search strategy) via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
