package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/kwrobel/sitetree"
	"github.com/kwrobel/sitetree/export"
	"github.com/kwrobel/sitetree/fs"
	"github.com/kwrobel/sitetree/goquery"
	treeslog "github.com/kwrobel/sitetree/slog"
	"github.com/kwrobel/sitetree/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Resolved configuration from the last Run, for end-to-end tests.
	Config *sitetree.Config
}

// NewMain returns a new instance of Main.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments. Invoked without a
// command it runs export, so a bare "sitetree" rebuilds the artifact.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitetree"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) > 0 {
		switch args[0] {
		case "help", "--help", "-h":
			_, _ = parser.Parse([]string{"--help"})
			return nil
		}
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := resolveConfig(cli)
	if err != nil {
		return err
	}
	m.Config = cfg

	info, err := os.Stat(cfg.Root)
	if err != nil {
		return fmt.Errorf("scan root %q: %w", cfg.Root, err)
	}
	if !info.IsDir() {
		return sitetree.Errorf(sitetree.EINVALID, "scan root %q is not a directory", cfg.Root)
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	classifier, err := newClassifier(cfg)
	if err != nil {
		return err
	}

	var writer sitetree.TreeWriter
	if !cli.Export.DryRun {
		writer = fs.NewWriter(cfg.Output)
	}

	if cli.Verbose {
		classifier = treeslog.NewLoggingClassifier(classifier, logger)
		if writer != nil {
			writer = treeslog.NewLoggingTreeWriter(writer, logger)
		}
	}

	deps.Exporter = &export.Exporter{
		FS:         os.DirFS(cfg.Root),
		SiteName:   cfg.Name,
		Classifier: classifier,
		Titles:     sitetree.TitleTagExtractor{},
		Writer:     writer,
		Extensions: cfg.Extensions,
		Ignore:     cfg.Ignore,
		Logger:     logger,
	}

	return kongCtx.Run(deps)
}

// resolveConfig merges defaults, the optional YAML file, and flags, in
// ascending precedence. A config file named by --config must exist; the
// default file is looked up at the scan root and used only when present.
func resolveConfig(cli *CLI) (*sitetree.Config, error) {
	cfg := sitetree.DefaultConfig()

	path := cli.Config
	if path == "" {
		// The default file lives at the scan root. --root moves the
		// lookup; a root set inside the file moves the scan only.
		root := cli.Root
		if root == "" {
			root = cfg.Root
		}
		path = filepath.Join(root, yaml.DefaultFile)
	}
	fileCfg, err := yaml.LoadConfig(path)
	if err != nil {
		if cli.Config != "" || sitetree.ErrorCode(err) != sitetree.ENOTFOUND {
			return nil, err
		}
	} else {
		mergeConfig(cfg, fileCfg)
	}

	mergeConfig(cfg, &sitetree.Config{
		Name:     cli.Name,
		Root:     cli.Root,
		Output:   cli.Export.Output,
		Strategy: cli.Strategy,
	})

	if cfg.Name == "" {
		abs, err := filepath.Abs(cfg.Root)
		if err != nil {
			return nil, fmt.Errorf("resolve scan root: %w", err)
		}
		cfg.Name = filepath.Base(abs)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig overlays the non-zero fields of src onto dst.
func mergeConfig(dst, src *sitetree.Config) {
	if src.Name != "" {
		dst.Name = src.Name
	}
	if src.Root != "" {
		dst.Root = src.Root
	}
	if src.Output != "" {
		dst.Output = src.Output
	}
	if src.Strategy != "" {
		dst.Strategy = src.Strategy
	}
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
	if len(src.Ignore) > 0 {
		dst.Ignore = src.Ignore
	}
}

// newClassifier builds the classification strategy named by the config.
func newClassifier(cfg *sitetree.Config) (sitetree.Classifier, error) {
	switch cfg.Strategy {
	case sitetree.StrategyMeta:
		return goquery.NewClassifier(), nil
	case sitetree.StrategyIndex:
		return sitetree.IndexClassifier{}, nil
	default:
		return nil, sitetree.Errorf(sitetree.EINVALID, "unknown strategy %q", cfg.Strategy)
	}
}
