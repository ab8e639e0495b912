package cmd

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"text/template"

	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/constant"
	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(versionCmd)
	versionCmd.SetOut(os.Stdout)
	versionCmd.Flags().BoolP("short", "s", false, "Only print the version number")
	versionCmd.Flags().BoolP("tools", "t", false, "Also report the versions of ffmpeg and ffprobe")
}

type versionInfo struct {
	App      string
	Version  string
	Revision string
	BuiltAt  string
	BuiltBy  string
	Platform string
	Tools    []decode.Tool
}

var versionTemplate = template.Must(template.New("version").Funcs(template.FuncMap{
	"faint":   style.Faint,
	"bold":    style.Bold,
	"magenta": style.Fg(color.Purple),
	"red":     style.Fg(color.Red),
	"pad":     func(s string) string { return fmt.Sprintf("%-14s", s) },
}).Parse(`{{ magenta "▇▇▇" }} {{ magenta .App }}

  {{ faint (pad "Version") }}  {{ bold .Version }}
  {{ faint (pad "Git Commit") }}  {{ bold .Revision }}
  {{ faint (pad "Build Date") }}  {{ bold .BuiltAt }}
  {{ faint (pad "Built By") }}  {{ bold .BuiltBy }}
  {{ faint (pad "Platform") }}  {{ bold .Platform }}
{{- range .Tools }}
  {{ faint (pad .Name) }}  {{ if .Found }}{{ bold .Version }}{{ else }}{{ red "missing" }}{{ end }}
{{- end }}
`))

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version and build information",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("short")) {
			cmd.Println(constant.Version)
			return
		}

		info := versionInfo{
			App:      constant.Facetwall,
			Version:  constant.Version,
			Revision: constant.Revision,
			BuiltAt:  strings.TrimSpace(constant.BuiltAt),
			BuiltBy:  constant.BuiltBy,
			Platform: runtime.GOOS + "/" + runtime.GOARCH,
		}

		if lo.Must(cmd.Flags().GetBool("tools")) {
			_, ff, err := decode.FromConfig()
			handleErr(err)
			info.Tools = ff.CheckTools(cmd.Context())
		}

		handleErr(versionTemplate.Execute(cmd.OutOrStdout(), info))
	},
}
