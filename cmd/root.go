// Package cmd implements the command-line interface of facetwall.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/icon"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/style"
	"github.com/facetwall/facetwall/util"
	"github.com/facetwall/facetwall/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	// leftovers of decoders killed mid-write
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the facetwall application.
var rootCmd = &cobra.Command{
	Use:   constant.Facetwall,
	Short: "Play a folder of images and videos across the facets of a rotating wall",
	Long: constant.Banner + "\n\n" +
		style.New().Italic(true).Foreground(color.Orange).Render("    - every facet plays its own item, fails on its own and recovers on its own"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute initializes child command routing and processes the CLI entry point.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
