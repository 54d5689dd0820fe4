package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/meridianml/meridian-go/pkg/resources"
)

var clusterCmd = &cobra.Command{
	Use:   "cluster",
	Short: "Inspect clusters",
}

var clusterQuery string

var clusterGetCmd = &cobra.Command{
	Use:   "get <cluster-id>",
	Short: "Fetch a cluster's current envelope",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := resources.ParseKindID(resources.KindCluster, args[0])
		if err != nil {
			return err
		}
		envelope, err := client.Clusters.Get(cmd.Context(), id)
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var clusterListCmd = &cobra.Command{
	Use:   "list",
	Short: "List clusters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		envelope, err := client.Clusters.List(cmd.Context(), clusterQuery)
		if err != nil {
			return err
		}
		return printEnvelope(envelope)
	},
}

var clusterReadyCmd = &cobra.Command{
	Use:   "ready <cluster-id>",
	Short: "Report whether a cluster finished training",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}
		id, err := resources.ParseKindID(resources.KindCluster, args[0])
		if err != nil {
			return err
		}
		ready, err := client.Clusters.IsReady(cmd.Context(), id)
		if err != nil {
			return err
		}
		fmt.Println(ready)
		return nil
	},
}

func init() {
	clusterListCmd.Flags().StringVar(&clusterQuery, "query", "", "listing filter, e.g. \"limit=10;\"")
	clusterCmd.AddCommand(clusterGetCmd, clusterListCmd, clusterReadyCmd)
	rootCmd.AddCommand(clusterCmd)
}
