package litgen

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/veldran/countrygen/countries"
	"github.com/veldran/countrygen/errors"
	"github.com/veldran/countrygen/logger"
)

// RunConfig names the two file paths of a generation pass.
type RunConfig struct {
	InputPath  string
	OutputPath string
	Opts       Options
}

// Run executes one generation pass: load the dataset, render it with gen, and
// replace the output file.
//
// The full output is rendered in memory first and written atomically (temp
// file plus rename), so a failure partway through loading or rendering never
// leaves a truncated or corrupted output file. Any prior content is
// overwritten unconditionally.
func Run(gen Generator, cfg RunConfig) error {
	output, count, err := Render(gen, cfg.InputPath, cfg.Opts)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(cfg.OutputPath, []byte(output)); err != nil {
		return errors.Wrapf(err, "failed to write %s", cfg.OutputPath)
	}

	logger.Infow("generated constant table",
		"path", cfg.OutputPath,
		"records", count,
		"language", gen.Language())
	return nil
}

// Render produces the output text without touching the output file. It
// returns the rendered source and the number of records it declares.
func Render(gen Generator, inputPath string, opts Options) (string, int, error) {
	records, err := countries.Load(inputPath)
	if err != nil {
		return "", 0, err
	}

	if opts.Source == "" {
		opts.Source = filepath.ToSlash(inputPath)
	}

	output, err := gen.GenerateFile(records, opts)
	if err != nil {
		return "", 0, errors.Wrapf(err, "failed to render %s output", gen.Language())
	}
	return output, len(records), nil
}

// CheckResult holds the result of a staleness check.
type CheckResult struct {
	UpToDate   bool
	OutputPath string
	Reason     string // why the output is considered stale, empty when up to date
}

// Check regenerates the output in memory and byte-compares it with the
// existing output file. It never writes.
func Check(gen Generator, cfg RunConfig) (*CheckResult, error) {
	output, _, err := Render(gen, cfg.InputPath, cfg.Opts)
	if err != nil {
		return nil, err
	}

	existing, err := os.ReadFile(cfg.OutputPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &CheckResult{
				OutputPath: cfg.OutputPath,
				Reason:     "output file does not exist",
			}, nil
		}
		return nil, errors.Wrapf(err, "failed to read %s", cfg.OutputPath)
	}

	if !bytes.Equal(existing, []byte(output)) {
		return &CheckResult{
			OutputPath: cfg.OutputPath,
			Reason:     "content differs from regeneration",
		}, nil
	}

	return &CheckResult{UpToDate: true, OutputPath: cfg.OutputPath}, nil
}

// writeFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, creating parent directories as needed.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), path)
}
