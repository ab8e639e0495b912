package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/icon"
	"github.com/facetwall/facetwall/media"
	"github.com/facetwall/facetwall/style"
	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// probeOutput is one line of `probe --json`.
type probeOutput struct {
	decode.Info
	Kind  string `json:"kind" jsonschema:"enum=image,enum=video,enum=unknown"`
	Error string `json:"error,omitempty" jsonschema:"description=Why the file could not be probed"`
}

func init() {
	rootCmd.AddCommand(probeCmd)
	probeCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	probeCmd.Flags().Bool("schema", false, "Print the JSON Schema of the --json output and exit")
	probeCmd.SetOut(os.Stdout)
}

var probeCmd = &cobra.Command{
	Use:   "probe [files...]",
	Short: "Show what the decode backend sees in media files",
	Args: func(cmd *cobra.Command, args []string) error {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			return nil
		}
		return cobra.MinimumNArgs(1)(cmd, args)
	},
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("schema")) {
			reflector := new(jsonschema.Reflector)
			reflector.Anonymous = true
			reflector.Namer = func(t reflect.Type) string {
				return filepath.Base(t.PkgPath()) + "." + t.Name()
			}
			handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect([]probeOutput{})))
			return
		}

		_, ff, err := decode.FromConfig()
		handleErr(err)

		outputs := lo.Map(args, func(path string, _ int) probeOutput {
			return probe(cmd, ff, path)
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(outputs))
			return
		}

		for i, out := range outputs {
			printProbe(cmd, out)
			if i < len(outputs)-1 {
				cmd.Println()
			}
		}
	},
}

func probe(cmd *cobra.Command, ff *decode.FFmpeg, path string) probeOutput {
	kind := media.Classify(path)
	out := probeOutput{Info: decode.Info{Path: path}, Kind: kind.String()}

	switch kind {
	case media.Image:
		img, err := decode.ImageLoader{}.Load(path)
		if err != nil {
			out.Error = err.Error()
			break
		}
		size := img.Bounds().Size()
		out.Dimensions = decode.Dimensions{Width: size.X, Height: size.Y}
	case media.Video:
		info, err := ff.Inspect(cmd.Context(), path)
		if err != nil {
			out.Error = err.Error()
			break
		}
		out.Info = info
	default:
		out.Error = "unsupported extension, expected one of " + strings.Join(append(media.Extensions(media.Image), media.Extensions(media.Video)...), " ")
	}

	return out
}

func printProbe(cmd *cobra.Command, out probeOutput) {
	mark := style.Fg(color.Green)(icon.Get(icon.Success))
	if out.Error != "" {
		mark = style.Fg(color.Red)(icon.Get(icon.Fail))
	}

	cmd.Printf("%s %s %s\n", mark, style.Bold(out.Path), style.Faint(out.Kind))
	if out.Error != "" {
		cmd.Println("  " + style.Fg(color.Red)(out.Error))
		return
	}

	row := func(name, value string) {
		if value != "" {
			cmd.Printf("  %s %s\n", style.Fg(color.Blue)(fmt.Sprintf("%-11s", name)), value)
		}
	}

	row("Dimensions", out.Dimensions.String())
	row("Codec", out.Codec)
	if out.FrameRate > 0 {
		row("Frame rate", fmt.Sprintf("%.3f fps", out.FrameRate))
	}
	if out.Duration > 0 {
		row("Duration", fmt.Sprintf("%.1fs", out.Duration))
	}
}
