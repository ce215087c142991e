package main

import (
	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/catalog/database/seeders"
	"github.com/shashiranjanraj/catalog/pkg/database"
)

// catalog seed
var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the sample products and ensure the category index",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		client, err := database.ConnectFromConfig(cmd.Context())
		if err != nil {
			return err
		}
		defer database.Disconnect(client) //nolint:errcheck

		return seeders.NewSeeder(client, cmd.OutOrStdout()).Run(cmd.Context())
	},
}
