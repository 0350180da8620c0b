package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/leonelquinteros/gotext"

	"cavegen/pkg/engine/input"
	"cavegen/pkg/engine/terminal"
	"cavegen/pkg/game/devtools"
	"cavegen/pkg/game/generator"
	"cavegen/pkg/game/renderer"
	ebitenrenderer "cavegen/pkg/game/renderer/ebiten"
	"cavegen/pkg/game/renderer/tui"
)

// options are the command-line settings that are not part of generator.Config
type options struct {
	config    generator.Config
	renderer  string
	scale     float64
	dumpPath  string
	htmlDir   string
	localeDir string
	lang      string
	verbose   bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	opts := options{config: generator.DefaultConfig()}
	cfg := &opts.config
	fillMode := string(cfg.FillMode)

	fs := flag.NewFlagSet("cavegen", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&cfg.Width, "width", cfg.Width, "map width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "map height in cells")
	fs.StringVar(&cfg.Seed, "seed", cfg.Seed, "seed string; numeric seeds are used as-is, others are hashed")
	fs.BoolVar(&cfg.UseRandomSeed, "random-seed", cfg.UseRandomSeed, "derive a new seed from the clock on every run")
	fs.IntVar(&cfg.RandomFillPercent, "fill", cfg.RandomFillPercent, "initial wall percentage [0,100]")
	fs.IntVar(&cfg.SmoothLevel, "smooth", cfg.SmoothLevel, "smoothing passes [0,20]")
	fs.IntVar(&cfg.WallThresholdSize, "wall-threshold", cfg.WallThresholdSize, "wall regions smaller than this are removed")
	fs.IntVar(&cfg.RoomThresholdSize, "room-threshold", cfg.RoomThresholdSize, "rooms smaller than this are filled in")
	fs.IntVar(&cfg.PassageWidth, "passage-width", cfg.PassageWidth, "radius of carved passages")
	fs.IntVar(&cfg.BorderSize, "border", cfg.BorderSize, "blocked border added around the rendered map")
	fs.StringVar(&fillMode, "fill-mode", fillMode, "initial noise: random or perlin")
	fs.StringVar(&opts.renderer, "renderer", "tui", "output: tui, ebiten or none")
	fs.Float64Var(&opts.scale, "scale", 0, "characters (tui) or pixels (ebiten) per cell; 0 picks a default")
	fs.StringVar(&opts.dumpPath, "dump", "", "write a debug dump of the map to this file")
	fs.StringVar(&opts.htmlDir, "html", "", "write an HTML snapshot of the map into this directory")
	fs.StringVar(&opts.localeDir, "locale", "locales", "directory holding the message catalogues")
	fs.StringVar(&opts.lang, "lang", "en_GB", "language of user-facing messages")
	fs.BoolVar(&opts.verbose, "v", false, "log generation phases to stderr")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	cfg.FillMode = generator.FillMode(fillMode)

	// An explicit seed means a reproducible run unless -random-seed is also given.
	seedSet, randomSet := false, false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			seedSet = true
		case "random-seed":
			randomSet = true
		}
	})
	if seedSet && !randomSet {
		cfg.UseRandomSeed = false
	}

	switch opts.renderer {
	case "tui", "ebiten", "none":
	default:
		return opts, fmt.Errorf("unknown renderer %q", opts.renderer)
	}
	if opts.scale < 0 {
		return opts, fmt.Errorf("%w: %v", renderer.ErrInvalidScale, opts.scale)
	}
	if opts.scale == 0 {
		opts.scale = 1
		if opts.renderer == "ebiten" {
			opts.scale = 8
		}
	}
	return opts, nil
}

func initGettext(localeDir, lang string) {
	gotext.Configure(localeDir, lang, "default")
}

// writeArtifacts saves the optional dump and HTML snapshot of m
func writeArtifacts(opts options, m *generator.Map, logger *log.Logger) error {
	if opts.dumpPath != "" {
		path, err := devtools.DumpMapToFile(m, opts.dumpPath)
		if err != nil {
			return fmt.Errorf("dump map: %w", err)
		}
		logger.Print(gotext.Get("Map written to %s", path))
	}
	if opts.htmlDir != "" {
		path, err := devtools.SaveScreenshotHTML(m, opts.htmlDir, time.Now())
		if err != nil {
			return fmt.Errorf("save snapshot: %w", err)
		}
		logger.Print(gotext.Get("Snapshot written to %s", path))
	}
	return nil
}

// artifactGenerator wraps a generator so every successful map is also
// written to the requested debug files.
type artifactGenerator struct {
	generator.MapGenerator
	opts   options
	logger *log.Logger
}

func (a artifactGenerator) Generate() (*generator.Map, error) {
	m, err := a.MapGenerator.Generate()
	if err != nil {
		return nil, err
	}
	if err := writeArtifacts(a.opts, m, a.logger); err != nil {
		return nil, err
	}
	return m, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		fmt.Fprintln(stderr, err)
		return 2
	}
	initGettext(opts.localeDir, opts.lang)

	logger := log.New(stderr, "cavegen: ", log.LstdFlags)
	genOpts := []generator.Option{}
	if opts.verbose {
		genOpts = append(genOpts, generator.WithLogger(logger))
	}

	cave, err := generator.New(opts.config, genOpts...)
	if err != nil {
		fmt.Fprintln(stderr, renderer.ErrorMessage(err))
		return 1
	}
	gen := artifactGenerator{MapGenerator: cave, opts: opts, logger: logger}

	switch opts.renderer {
	case "ebiten":
		r := ebitenrenderer.New(gen, opts.scale, logger)
		renderer.SetRenderer(r)
		if err := r.Run(); err != nil {
			logger.Printf("window: %v", err)
			return 1
		}
	case "tui":
		r := tui.New(stdout)
		renderer.SetRenderer(r)
		var actions *input.LineReader
		if stdout == io.Writer(os.Stdout) && terminal.IsInteractive() {
			r.FitTerminal()
			actions = input.NewLineReader(os.Stdin)
		}
		if err := r.Run(gen, opts.scale, actions); err != nil {
			return 1
		}
	default:
		if _, err := gen.Generate(); err != nil {
			fmt.Fprintln(stderr, renderer.ErrorMessage(err))
			return 1
		}
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
