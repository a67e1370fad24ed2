package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mnightingale/transcode"
)

var convertCmd = &cobra.Command{
	Use:   "convert [files...]",
	Short: "Convert files (or stdin) from one encoding to another",
	Long: `Convert reads bytes in the --from encoding and writes them in the --to encoding.

With no files it converts stdin. With one file the result goes to --output or
stdout. With several files each result is written to --out-dir under the same
base name, converting up to --jobs files at once.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("from", "", "source encoding (default from config: utf8)")
	convertCmd.Flags().String("to", "", "target encoding (default from config: utf16le)")
	convertCmd.Flags().StringP("output", "o", "", "output file (default stdout)")
	convertCmd.Flags().String("out-dir", "", "output directory when converting several files")
	convertCmd.Flags().Int("chunk", 0, "read size in bytes (default from config)")
	convertCmd.Flags().Int("jobs", 0, "parallel conversions for several files (0 = GOMAXPROCS)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	from, err := encodingFlag(cmd, "from", cfg.Convert.From)
	if err != nil {
		return err
	}
	to, err := encodingFlag(cmd, "to", cfg.Convert.To)
	if err != nil {
		return err
	}

	if len(args) > 1 {
		return convertMany(cmd, args, from, to)
	}

	in := io.Reader(cmd.InOrStdin())
	if len(args) == 1 {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}

	out := cmd.OutOrStdout()
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	chunk, _ := cmd.Flags().GetInt("chunk")
	if chunk <= 0 {
		chunk = cfg.Convert.ChunkSize
	}

	n, err := io.CopyBuffer(out, transcode.NewReader(in, from, to), make([]byte, chunk))
	if err != nil {
		var terr *transcode.Error
		if errors.As(err, &terr) {
			return fmt.Errorf("convert %s to %s: stopped at input byte %d after writing %d bytes: %w", from, to, terr.Offset, n, err)
		}
		return fmt.Errorf("convert %s to %s: %w", from, to, err)
	}
	logger.Debug("converted", zap.Stringer("from", from), zap.Stringer("to", to), zap.Int64("bytes", n))
	return nil
}

func convertMany(cmd *cobra.Command, paths []string, from, to transcode.Encoding) error {
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		return errors.New("--out-dir is required when converting several files")
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	if jobs <= 0 {
		jobs = cfg.Convert.Jobs
	}

	srcs := make([]transcode.Bytes, len(paths))
	for i, path := range paths {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		srcs[i] = b
	}

	results, err := transcode.ConvertAll(cmd.Context(), srcs, from, to, jobs)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	var errs []error
	for i, res := range results {
		if res.Err != nil {
			errs = append(errs, fmt.Errorf("%s: %d bytes unconverted: %w", paths[i], res.Remainder, res.Err))
			continue
		}
		if err := os.WriteFile(filepath.Join(outDir, filepath.Base(paths[i])), res.Output, 0o644); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
