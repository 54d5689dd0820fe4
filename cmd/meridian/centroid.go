package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/meridianml/meridian-go/pkg/resources"
	"github.com/meridianml/meridian-go/pkg/resources/base"
	"github.com/meridianml/meridian-go/pkg/resources/centroids"
)

var centroidCmd = &cobra.Command{
	Use:   "centroid",
	Short: "Create, inspect, and delete centroids",
}

var (
	centroidInput        string
	centroidArgs         string
	centroidWaitInterval time.Duration
	centroidWaitAttempts int
	centroidQuery        string
	centroidChanges      string
)

var centroidCreateCmd = &cobra.Command{
	Use:   "create <cluster-id>",
	Short: "Create a centroid from a cluster and an input data point",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		clusterID, err := resources.ParseKindID(resources.KindCluster, args[0])
		if err != nil {
			return err
		}
		input, err := parseJSONFlag(centroidInput, "--input")
		if err != nil {
			return err
		}
		extra, err := parseJSONFlag(centroidArgs, "--args")
		if err != nil {
			return err
		}

		policy := base.WaitPolicy{
			Interval:    centroidWaitInterval,
			MaxAttempts: centroidWaitAttempts,
		}
		envelope, err := client.Centroids.Create(cmd.Context(), clusterID, input, extra,
			centroids.WithWaitPolicy(policy))
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var centroidGetCmd = &cobra.Command{
	Use:   "get <centroid-id>",
	Short: "Fetch a centroid's current envelope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := resources.ParseKindID(resources.KindCentroid, args[0])
		if err != nil {
			return err
		}
		envelope, err := client.Centroids.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var centroidListCmd = &cobra.Command{
	Use:   "list",
	Short: "List centroids",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		envelope, err := client.Centroids.List(cmd.Context(), centroidQuery)
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var centroidUpdateCmd = &cobra.Command{
	Use:   "update <centroid-id>",
	Short: "Update a centroid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := resources.ParseKindID(resources.KindCentroid, args[0])
		if err != nil {
			return err
		}
		changes, err := parseJSONFlag(centroidChanges, "--changes")
		if err != nil {
			return err
		}
		envelope, err := client.Centroids.Update(cmd.Context(), id, changes)
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var centroidDeleteCmd = &cobra.Command{
	Use:   "delete <centroid-id>",
	Short: "Delete a centroid",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := resources.ParseKindID(resources.KindCentroid, args[0])
		if err != nil {
			return err
		}
		if _, err := client.Centroids.Delete(cmd.Context(), id); err != nil {
			return err
		}
		return nil
	},
}

func init() {
	centroidCreateCmd.Flags().StringVar(&centroidInput, "input", "", "input data point as a JSON object")
	centroidCreateCmd.Flags().StringVar(&centroidArgs, "args", "", "extra creation arguments as a JSON object")
	centroidCreateCmd.Flags().DurationVar(&centroidWaitInterval, "wait-interval", base.DefaultWaitInterval, "pause between cluster readiness checks (0 disables the wait)")
	centroidCreateCmd.Flags().IntVar(&centroidWaitAttempts, "wait-attempts", base.DefaultWaitAttempts, "maximum cluster readiness checks before creating anyway")
	centroidListCmd.Flags().StringVar(&centroidQuery, "query", "", "listing filter, e.g. \"limit=10;\"")
	centroidUpdateCmd.Flags().StringVar(&centroidChanges, "changes", "", "fields to update as a JSON object")

	centroidCmd.AddCommand(centroidCreateCmd, centroidGetCmd, centroidListCmd, centroidUpdateCmd, centroidDeleteCmd)
	rootCmd.AddCommand(centroidCmd)
}
