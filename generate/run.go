package generate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"cssel/state"
	"cssel/utils"
)

// Run is the cli action for the generate command. It reads a selector
// document, builds every entry and writes the rendered selectors to the
// destination (stdout when none is given).
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no selector document has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	// command line flags override configured behavior
	if cmd.Bool("annotate") {
		env.Cfg.Generate.Annotate = true
	}
	if cmd.Bool("overwrite") {
		env.Cfg.Generate.Overwrite = true
	}
	if s := cmd.String("sort"); len(s) > 0 {
		if s != "none" && s != "natural" {
			log.Warn("Unknown sort mode requested, keeping document order", zap.String("sort", s))
		} else {
			env.Cfg.Generate.Sort = s
		}
	}

	log.Info("Generation starting", zap.String("source", src), zap.String("destination", destName(dst)))
	defer func(start time.Time) {
		log.Info("Generation completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read selector document (%s): %w", src, err)
	}
	doc, err := LoadDocument(data)
	if err != nil {
		return fmt.Errorf("unable to parse selector document (%s): %w", src, err)
	}

	if ce := log.Check(zap.DebugLevel, "Loaded selector document"); ce != nil {
		ce.Write(zap.String("tree", doc.String()))
	}

	results, errs := doc.Build()
	for _, e := range multierr.Errors(errs) {
		log.Error("Unable to build selector", zap.Error(e))
	}

	lines := render(results, env.Cfg.Generate.Annotate)
	if env.Cfg.Generate.Sort == "natural" {
		utils.SortNatural(lines)
	}

	if err := writeOutput(dst, lines, env.Cfg.Generate.Overwrite, log); err != nil {
		return err
	}

	if failed := len(multierr.Errors(errs)); failed > 0 {
		return fmt.Errorf("failed to build %d of %d selectors", failed, len(doc.Selectors))
	}
	return nil
}

// render formats built selectors one per line, optionally prefixed with the
// entry name as a CSS comment.
func render(results []Result, annotate bool) []string {
	lines := make([]string, 0, len(results))
	for _, r := range results {
		if annotate && r.Name != "" {
			lines = append(lines, "/* "+r.Name+" */ "+r.Text)
		} else {
			lines = append(lines, r.Text)
		}
	}
	return lines
}

func destName(dst string) string {
	if len(dst) == 0 {
		return "STDOUT"
	}
	return dst
}

func writeOutput(dst string, lines []string, overwrite bool, log *zap.Logger) error {
	out := os.Stdout
	if len(dst) > 0 {
		if _, err := os.Stat(dst); err == nil {
			if !overwrite {
				return fmt.Errorf("output file already exists: %s", dst)
			}
			log.Warn("Overwriting existing file", zap.String("file", dst))
		} else if !os.IsNotExist(err) {
			return err
		} else if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return fmt.Errorf("unable to create output directory: %w", err)
		}

		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer f.Close()
		out = f
	}

	if len(lines) == 0 {
		log.Debug("Nothing to write", zap.String("destination", destName(dst)))
		return nil
	}
	if _, err := out.WriteString(strings.Join(lines, "\n") + "\n"); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}
	log.Debug("Selectors written", zap.Int("count", len(lines)), zap.String("destination", destName(dst)))
	return nil
}
