package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/origami"
	"github.com/osuushi/origami/config"
	"github.com/osuushi/origami/internal/axioms"
	"github.com/osuushi/origami/render"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Enumerate the folds of a sheet of paper and draw them. With no flags this
// runs the default configuration on the unit square and writes
// <name>-lines.svg and <name>-points.svg to the current directory.
func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, aurora.Red(err))
		os.Exit(1)
	}
}

type flags struct {
	config   string
	rounds   int
	axioms   []int
	boundary string
	workers  int
	out      string
	name     string
	svg      bool
	png      bool
	pngSize  int
	preview  bool
	logLevel string
}

func parseFlags(args []string) (*flags, error) {
	f := &flags{}
	app := kingpin.New("origami", "Enumerate the fold lines and crease points reachable with the origami axioms.")
	app.Flag("config", "YAML configuration file.").Short('c').StringVar(&f.config)
	app.Flag("rounds", "Number of rounds, overriding the configuration.").Short('r').IntVar(&f.rounds)
	app.Flag("axioms", "Axiom to apply (1-7), repeatable. Overrides the configuration.").Short('a').IntsVar(&f.axioms)
	app.Flag("boundary", "SVG file whose only polygon is the paper outline.").StringVar(&f.boundary)
	app.Flag("workers", "Worker goroutines, 0 for one per CPU.").Default("-1").IntVar(&f.workers)
	app.Flag("out", "Output directory.").Short('o').Default(".").StringVar(&f.out)
	app.Flag("name", "Base name of the output files. Random if empty.").Short('n').StringVar(&f.name)
	app.Flag("svg", "Write SVG files.").Default("true").BoolVar(&f.svg)
	app.Flag("png", "Write a PNG file.").BoolVar(&f.png)
	app.Flag("png-size", "Width of the PNG in pixels.").Default("1024").IntVar(&f.pngSize)
	app.Flag("preview", "Show the PNG in the terminal.").BoolVar(&f.preview)
	app.Flag("log-level", "Log level.").Default("info").EnumVar(&f.logLevel, "debug", "info", "warn", "error")

	if _, err := app.Parse(args); err != nil {
		return nil, err
	}
	return f, nil
}

func run(args []string, stdout io.Writer) error {
	f, err := parseFlags(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(f.logLevel)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	cfg, err := f.loadConfig()
	if err != nil {
		return err
	}

	result, err := origami.Enumerate(cfg, logger)
	if err != nil {
		return err
	}
	for _, rs := range result.Stats {
		fmt.Fprintln(stdout, rs)
	}
	fmt.Fprintf(stdout, "%v segments, %v points\n",
		aurora.Bold(len(result.Segments)), aurora.Bold(len(result.Points)))

	return f.write(result, stdout, logger)
}

func newLogger(level string) (*zap.Logger, error) {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrap(err, "log level")
	}
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(l)
	logger, err := cfg.Build()
	return logger, errors.Wrap(err, "building logger")
}

// The configuration file (or the defaults), with the command line on top.
func (f *flags) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if f.config != "" {
		var err error
		if cfg, err = config.Load(f.config); err != nil {
			return nil, err
		}
	}
	if f.rounds > 0 {
		cfg.Rounds = f.rounds
	}
	if len(f.axioms) > 0 {
		cfg.Axioms = make([]axioms.Axiom, len(f.axioms))
		for i, a := range f.axioms {
			cfg.Axioms[i] = axioms.Axiom(a)
		}
	}
	if f.boundary != "" {
		cfg.Boundary = config.Boundary{SVG: f.boundary}
	}
	if f.workers >= 0 {
		cfg.Workers = f.workers
	}
	return cfg, cfg.Validate()
}

func (f *flags) write(result *origami.Result, stdout io.Writer, logger *zap.Logger) error {
	name := f.name
	if name == "" {
		name = render.DefaultName()
	}
	if err := os.MkdirAll(f.out, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}
	opts := render.DefaultOptions()
	base := filepath.Join(f.out, name)

	if f.svg {
		if err := writeFile(base+"-lines.svg", func(w io.Writer) error {
			return render.LinesSVG(w, result.Segments, result.Boundary, opts)
		}); err != nil {
			return err
		}
		if err := writeFile(base+"-points.svg", func(w io.Writer) error {
			return render.PointsSVG(w, result.Points, result.Boundary, opts)
		}); err != nil {
			return err
		}
		logger.Info("wrote svg", zap.String("lines", base+"-lines.svg"), zap.String("points", base+"-points.svg"))
	}

	if f.png || f.preview {
		path := base + ".png"
		if err := render.PNG(path, result.Result, result.Boundary, f.pngSize, opts); err != nil {
			return err
		}
		logger.Info("wrote png", zap.String("path", path))
		if f.preview {
			if err := render.Preview(path, stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if closeErr := file.Close(); err == nil {
			err = errors.Wrap(closeErr, "closing output")
		}
	}()
	return write(file)
}
