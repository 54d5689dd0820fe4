// Package main is the entry point for the meridian CLI, a thin wrapper
// around the client library for poking the API from a shell.
//
// Usage:
//
//	meridian centroid create cluster/<id> --input '{"field1": 1}'
//	meridian centroid get centroid/<id>
//	meridian cluster ready cluster/<id>
//
// Credentials come from MERIDIAN_USERNAME and MERIDIAN_API_KEY; a YAML
// profile can set the endpoint.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/juju/loggo/v2"
	"github.com/spf13/cobra"

	meridian "github.com/meridianml/meridian-go"
	"github.com/meridianml/meridian-go/pkg/config"
)

// Version information - set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
)

var (
	profilePath string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "meridian",
	Short: "Command-line client for the Meridian ML platform",
	Long: `meridian issues authenticated calls against the Meridian REST API.

Set MERIDIAN_USERNAME and MERIDIAN_API_KEY, then address resources by
identifier, e.g. "cluster/5f0a1b2c3d4e5f0a1b2c3d4e".`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			return loggo.ConfigureLoggers("meridian=DEBUG")
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("meridian %s (%s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "c", "", "path to a YAML profile file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(versionCmd)
}

// newClient builds the API client from the profile file or environment.
func newClient() (*meridian.Client, error) {
	var (
		cfg *config.Config
		err error
	)
	if profilePath != "" {
		cfg, err = config.FromFile(profilePath)
	} else {
		cfg, err = config.FromEnv()
	}
	if err != nil {
		return nil, err
	}
	return meridian.New(cfg)
}

// printEnvelope writes an API envelope as indented JSON on stdout.
func printEnvelope(envelope map[string]any) error {
	out, err := json.MarshalIndent(envelope, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// parseJSONFlag decodes an optional JSON object flag value.
func parseJSONFlag(raw, name string) (map[string]any, error) {
	if raw == "" {
		return nil, nil
	}
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return decoded, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
