package cmd

import (
	"os"

	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/config"
	"github.com/facetwall/facetwall/style"
	"github.com/facetwall/facetwall/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func init() {
	rootCmd.AddCommand(envCmd)
	envCmd.Flags().BoolP("set-only", "s", false, "Only list variables that are set")
	envCmd.Flags().BoolP("unset-only", "u", false, "Only list variables that are not set")
	envCmd.Flags().StringP("section", "S", "", "Only list variables of one config section")

	envCmd.MarkFlagsMutuallyExclusive("set-only", "unset-only")
}

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "List the environment variables facetwall reads",
	Run: func(cmd *cobra.Command, args []string) {
		var (
			setOnly   = lo.Must(cmd.Flags().GetBool("set-only"))
			unsetOnly = lo.Must(cmd.Flags().GetBool("unset-only"))
			section   = lo.Must(cmd.Flags().GetString("section"))
		)

		fields := lo.Filter(lo.Values(config.Default), func(f config.Field, _ int) bool {
			return section == "" || f.Section() == section
		})
		names := lo.Map(fields, func(f config.Field, _ int) string {
			return f.Env()
		})
		if section == "" {
			names = append(names, where.EnvConfigPath)
		}
		slices.Sort(names)

		name := style.New().Bold(true).Foreground(color.Purple).Render
		for _, env := range names {
			value, present := os.LookupEnv(env)
			if (setOnly && !present) || (unsetOnly && present) {
				continue
			}

			cmd.Print(name(env), "=")
			if present {
				cmd.Println(style.Fg(color.Green)(value))
			} else {
				cmd.Println(style.Fg(color.Red)("unset"))
			}
		}
	},
}
