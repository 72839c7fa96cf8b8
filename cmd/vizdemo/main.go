package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/vdobler/facet/chart/internal/config"
	"github.com/vdobler/facet/chart/internal/demo"
	"github.com/vdobler/facet/chart/internal/server"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "render":
		runRender(os.Args[2:])
	case "serve":
		runServe(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: vizdemo <command> [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  render    Write every chart as SVG file")
	fmt.Fprintln(os.Stderr, "  serve     Serve the charts over HTTP")
}

// commonFlags registers the flags shared by all commands. Flags which
// are set override the config file.
type commonFlags struct {
	configPath    string
	width, height float64
	colour        string
	offline       bool
}

func (cf *commonFlags) register(flags *pflag.FlagSet) {
	flags.StringVarP(&cf.configPath, "config", "c", "", "JSON config file")
	flags.Float64Var(&cf.width, "width", 0, "viewport width in pixel")
	flags.Float64Var(&cf.height, "height", 0, "viewport height in pixel")
	flags.StringVar(&cf.colour, "colour", "", "paint coloring the painting chart")
	flags.BoolVar(&cf.offline, "offline", false, "use the bundled painting sample instead of fetching it")
}

func (cf *commonFlags) load(flags *pflag.FlagSet) (config.Config, demo.Options) {
	conf, err := config.Load(cf.configPath)
	if err != nil {
		slog.Error("error while reading config", "err", err)
		os.Exit(1)
	}
	if flags.Changed("width") {
		conf.Viewport.Width = cf.width
	}
	if flags.Changed("height") {
		conf.Viewport.Height = cf.height
	}
	if flags.Changed("colour") {
		conf.Colour = cf.colour
	}
	if err := conf.Validate(); err != nil {
		slog.Error("invalid configuration", "err", err)
		os.Exit(1)
	}
	opts := demo.OptionsFrom(conf)
	opts.Offline = cf.offline
	return conf, opts
}

func runRender(args []string) {
	flags := pflag.NewFlagSet("render", pflag.ExitOnError)
	var cf commonFlags
	var output string
	cf.register(flags)
	flags.StringVarP(&output, "output", "o", "", "Output directory (required)")

	flags.Parse(args)

	if output == "" {
		fmt.Fprintln(os.Stderr, "Error: --output is required")
		os.Exit(1)
	}
	conf, opts := cf.load(flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	page, err := demo.NewPage(conf, opts)
	if err != nil {
		slog.Error("error while building charts", "err", err)
		os.Exit(1)
	}
	loadErr := page.Load(ctx)
	if loadErr != nil {
		slog.Warn("some charts failed", "err", loadErr)
	}

	if err := os.MkdirAll(output, 0o755); err != nil {
		slog.Error("error while creating output directory", "err", err)
		os.Exit(1)
	}
	for _, e := range page.Entries {
		if err := writeChart(filepath.Join(output, e.Name+".svg"), e); err != nil {
			slog.Error("error while writing chart", "chart", e.Name, "err", err)
			os.Exit(1)
		}
	}
	if loadErr != nil {
		os.Exit(2)
	}
}

func writeChart(path string, e *demo.Entry) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := e.Render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runServe(args []string) {
	flags := pflag.NewFlagSet("serve", pflag.ExitOnError)
	var cf commonFlags
	var address string
	var port int
	cf.register(flags)
	flags.StringVarP(&address, "address", "a", "localhost", "Server address to bind")
	flags.IntVarP(&port, "port", "p", 8080, "Server port to bind")

	flags.Parse(args)
	conf, opts := cf.load(flags)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	e := server.New(conf, opts, logger)
	if err := server.Start(ctx, e, fmt.Sprintf("%s:%d", address, port)); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
