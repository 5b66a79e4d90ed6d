package main

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"smartdna/internal/config"
	"smartdna/internal/llm"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List configured providers and whether they have credentials",
	RunE: func(cmd *cobra.Command, _ []string) error {
		providers, err := config.LoadProviders()
		if err != nil {
			return eris.Wrap(err, "load provider config")
		}
		registry := llm.NewRegistry(providers.Configs())

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%-10s %-45s %-9s %-7s %s\n", "PROVIDER", "MODEL", "AVAILABLE", "IMAGES", "$/1K")
		for _, s := range registry.Status() {
			fmt.Fprintf(out, "%-10s %-45s %-9t %-7t %.4f\n", s.Name, s.Model, s.Available, s.SupportsImages, s.CostPer1KTokens)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(providersCmd)
}
