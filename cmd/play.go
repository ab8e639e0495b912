package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/facetwall/facetwall/color"
	"github.com/facetwall/facetwall/config"
	"github.com/facetwall/facetwall/decode"
	"github.com/facetwall/facetwall/diag"
	"github.com/facetwall/facetwall/engine"
	"github.com/facetwall/facetwall/icon"
	"github.com/facetwall/facetwall/key"
	"github.com/facetwall/facetwall/log"
	"github.com/facetwall/facetwall/media"
	"github.com/facetwall/facetwall/player"
	"github.com/facetwall/facetwall/playlist"
	"github.com/facetwall/facetwall/rotation"
	"github.com/facetwall/facetwall/shape"
	"github.com/facetwall/facetwall/style"
	"github.com/facetwall/facetwall/surface"
	"github.com/facetwall/facetwall/tui"
	"github.com/facetwall/facetwall/util"
	"github.com/facetwall/facetwall/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)

	flags := playCmd.Flags()
	bind := func(k, flag string) {
		lo.Must0(viper.BindPFlag(k, flags.Lookup(flag)))
	}

	flags.StringP("shape", "s", "", "Primitive to map the media onto")
	lo.Must0(playCmd.RegisterFlagCompletionFunc("shape", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return shape.Names(), cobra.ShellCompDirectiveNoFileComp
	}))
	bind(key.WallShape, "shape")

	flags.IntP("facets", "n", 0, "Override the facet count of the shape")
	bind(key.WallFacets, "facets")

	flags.Bool("headless", false, "Run the engine without the terminal wall")

	flags.Bool("native", false, "Play videos with the native media component (mpv) instead of frame decoding")
	bind(key.EngineNative, "native")

	flags.Int("dwell", 0, "How long images stay up, in milliseconds")
	bind(key.EngineDwell, "dwell")

	flags.Float64("fps", 0, "Video frame rate; overrides engine.frame_interval_ms")

	flags.Int("recovery", 0, "How long a failed facet shows its error, in milliseconds")
	bind(key.EngineRecoveryDelay, "recovery")

	flags.String("overlay", "", "Caption mode: hidden, filename or custom")
	lo.Must0(playCmd.RegisterFlagCompletionFunc("overlay", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return config.Default[key.OverlayMode].Options, cobra.ShellCompDirectiveNoFileComp
	}))
	bind(key.OverlayMode, "overlay")

	flags.String("text", "", "Caption text for --overlay custom")
	bind(key.OverlayText, "text")

	flags.StringP("filter", "f", "", "Only play files whose name fuzzily matches")

	flags.BoolP("recursive", "r", false, "Descend into subdirectories")
	bind(key.PlaylistRecursive, "recursive")

	flags.String("metrics-addr", "", "Serve /metrics, /status and facet frames on this address, e.g. :9090")
}

var playCmd = &cobra.Command{
	Use:   "play [paths...]",
	Short: "Play images, videos, directories and m3u lists on the wall",
	Example: "  facetwall play ~/Pictures/trip\n" +
		"  facetwall play -s sphere --fps 24 clips.m3u\n" +
		"  facetwall play --headless --metrics-addr :9090 /srv/media",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		handleErr(play(ctx, cmd, args))
	},
}

// wall is a running scene. Its fields are written before ready is marked and only read after.
type wall struct {
	ready     util.Ready
	scheduler *engine.Scheduler
	err       error
}

func (w *wall) scene() (tui.Wall, error) {
	if w.err != nil {
		return nil, w.err
	}
	return w.scheduler, nil
}

func play(ctx context.Context, cmd *cobra.Command, args []string) error {
	if err := config.Validate(); err != nil {
		return err
	}

	sh, err := shape.FromConfig()
	if err != nil {
		return err
	}

	rot, err := rotation.FromConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	memories := make([]*surface.Memory, sh.Facets)
	for i := range memories {
		memories[i] = surface.NewMemory()
	}

	var (
		w       = &wall{}
		running sync.WaitGroup
	)

	running.Add(1)
	go func() {
		defer running.Done()
		defer w.ready.MarkReady()

		w.scheduler, w.err = buildScheduler(cmd, args, memories)
		if w.err != nil {
			return
		}

		running.Add(1)
		go func() {
			defer running.Done()
			if err := w.scheduler.Run(ctx); err != nil {
				log.Errorf("scheduler: %v", err)
			}
		}()
	}()

	if addr := lo.Must(cmd.Flags().GetString("metrics-addr")); addr != "" {
		server := diag.New(&lazyStatus{w: w}, lo.Map(memories, func(m *surface.Memory, _ int) diag.Snapshotter { return m }))
		go func() {
			if err := server.ListenAndServe(ctx, addr); err != nil {
				log.Errorf("diagnostics: %v", err)
			}
		}()
	}

	if lo.Must(cmd.Flags().GetBool("headless")) || !util.IsTerminal() {
		err = headless(ctx, w, sh)
	} else {
		err = tui.Run(ctx, &tui.Options{
			Shape:    sh,
			Surfaces: lo.Map(memories, func(m *surface.Memory, _ int) tui.Snapshotter { return m }),
			Rotation: rot,
			Ready:    &w.ready,
			Scene:    w.scene,
		})
	}

	cancel()
	running.Wait()

	if err == nil {
		err = w.err
	}
	return err
}

func buildScheduler(cmd *cobra.Command, args []string, memories []*surface.Memory) (*engine.Scheduler, error) {
	pl, err := playlist.Load(args, playlist.Options{
		Recursive: viper.GetBool(key.PlaylistRecursive),
		Filter:    lo.Must(cmd.Flags().GetString("filter")),
	})
	if err != nil {
		return nil, err
	}

	opts, err := engine.OptionsFromConfig()
	if err != nil {
		return nil, err
	}

	if fps := lo.Must(cmd.Flags().GetFloat64("fps")); fps > 0 {
		opts.FrameInterval = time.Duration(float64(time.Second) / fps)
	}

	backend, ff, err := decode.FromConfig()
	if err != nil {
		return nil, err
	}
	ff.FrameRate = decode.FrameRateFor(opts.FrameInterval)

	opts.Backend = backend
	opts.Images = decode.ImageLoader{Box: opts.FrameBox}
	if viper.GetBool(key.EngineNative) {
		opts.Native = player.NewMPV(viper.GetString(key.PlayerMPV), where.Temp())
	}

	if pl.Count(media.Video) > 0 && !viper.GetBool(key.EngineNative) {
		if missing := decode.Missing(ff.CheckTools(context.Background())); len(missing) > 0 {
			return nil, missing[0].Err
		}
	}

	surfaces := make([]surface.Surface, len(memories))
	for i, m := range memories {
		surfaces[i] = surface.Logged{Surface: m, Facet: i}
	}

	return engine.New(pl, surfaces, opts)
}

// lazyStatus answers with no facets until the scheduler exists.
type lazyStatus struct {
	w *wall
}

func (l *lazyStatus) Status() []engine.FacetStatus {
	if !l.w.ready.IsReady() || l.w.scheduler == nil {
		return nil
	}
	return l.w.scheduler.Status()
}

func headless(ctx context.Context, w *wall, sh shape.Shape) error {
	erase := func() {}
	frames := spinner.Dot.Frames
	polls := 0

	err := w.ready.Await(ctx, 100*time.Millisecond, func() {
		erase()
		erase = util.PrintErasable(fmt.Sprintf("%s Building %s", frames[polls%len(frames)], sh))
		polls++
	})
	erase()
	if err != nil {
		return nil
	}
	if w.err != nil {
		return w.err
	}

	fmt.Printf("%s Playing %s on %s %s\n",
		icon.Get(icon.Playing),
		util.Quantify(len(w.scheduler.Status()), "facet", "facets"),
		style.Fg(color.Purple)(sh.String()),
		style.Faint("(ctrl+c to stop)"),
	)

	<-ctx.Done()

	statuses := w.scheduler.Status()
	assignments := lo.SumBy(statuses, func(s engine.FacetStatus) int { return s.Assignments })
	failures := lo.SumBy(statuses, func(s engine.FacetStatus) int { return s.Failures })
	fmt.Printf("%s %s, %s\n",
		icon.Get(icon.Success),
		util.Quantify(assignments, "assignment", "assignments"),
		util.Quantify(failures, "failure", "failures"),
	)
	return nil
}
