package cmd

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/icon"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check that the external decoders and player are installed",
	Run: func(cmd *cobra.Command, args []string) {
		_, ff, err := decode.FromConfig()
		handleErr(err)

		tools := ff.CheckTools(cmd.Context())

		mpv := decode.Tool{Name: viper.GetString(key.PlayerMPV)}
		if mpv.Path, err = exec.LookPath(mpv.Name); err != nil {
			mpv.Err = fmt.Errorf("%s not found: %w", mpv.Name, err)
		}

		for _, tool := range tools {
			printTool(tool, true)
		}
		printTool(mpv, viper.GetBool(key.EngineNative))

		if missing := decode.Missing(tools); len(missing) > 0 {
			printMissingDependencyError(missing[0].Name)
			handleErr(missing[0].Err)
		}
	},
}

func printTool(tool decode.Tool, required bool) {
	switch {
	case !tool.Found() && required:
		fmt.Printf("%s %s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), style.Bold(tool.Name), style.Faint("not found"))
	case !tool.Found():
		fmt.Printf("%s %s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Mark)), style.Bold(tool.Name), style.Faint("not found, only needed for --native"))
	case tool.Outdated():
		fmt.Printf("%s %s %s %s\n", style.Fg(color.Yellow)(icon.Get(icon.Mark)), style.Bold(tool.Name), tool.Version,
			style.Faint(fmt.Sprintf("older than %s, decoding may fail", decode.MinToolVersion)))
	default:
		fmt.Printf("%s %s %s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), style.Bold(tool.Name), tool.Version, style.Faint(tool.Path))
	}
}

func printMissingDependencyError(dep string) {
	installCmd := lo.Switch[string, string](runtime.GOOS).
		Case(constant.Darwin, "brew install ffmpeg").
		Case(constant.Linux, "sudo apt install ffmpeg").
		Case(constant.Windows, "scoop install ffmpeg").
		Default("")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(style.ErrorColor).
		Padding(1, 2).
		Margin(1, 0)

	title := style.New().Bold(true).Foreground(style.ErrorColor).Render(fmt.Sprintf("%s Error: Missing Dependency", icon.Get(icon.Fail)))
	body := style.New().Foreground(style.Text).Render(fmt.Sprintf("The required dependency '%s' was not found in your PATH.", dep))

	suggestion := ""
	if installCmd != "" {
		suggestion = fmt.Sprintf("\n\nTo install it, try running:\n  %s", style.New().Foreground(style.AccentColor).Bold(true).Render(installCmd))
	}

	fmt.Println(box.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			title,
			"\n",
			body,
			suggestion,
		),
	))
}
