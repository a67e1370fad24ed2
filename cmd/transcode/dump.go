package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mnightingale/transcode"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [file]",
	Short: "Print the code points of a file, one per line",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := encodingFlag(cmd, "from", cfg.Convert.From)
		if err != nil {
			return err
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
		chunk, _ := cmd.Flags().GetInt("chunk")
		if chunk <= 0 {
			chunk = cfg.Convert.ChunkSize
		}

		dec := transcode.NewDecoder(in, from, transcode.WithBufferSize(chunk))
		w := bufio.NewWriter(cmd.OutOrStdout())
		defer w.Flush()
		for {
			s, err := dec.ReadScalar()
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(w, s)
		}
	},
}

var encodeCmd = &cobra.Command{
	Use:   "encode TEXT...",
	Short: "Write the arguments in the --to encoding",
	Long: `Encode writes its arguments separated by spaces. With --code-points each
argument is a single code point in the form printed by dump (U+00E9), and no
separators are written.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		to, err := encodingFlag(cmd, "to", cfg.Convert.To)
		if err != nil {
			return err
		}
		enc := transcode.NewEncoder(cmd.OutOrStdout(), to)
		if points, _ := cmd.Flags().GetBool("code-points"); points {
			for _, arg := range args {
				s, err := transcode.ParseScalar(arg)
				if err != nil {
					return err
				}
				if err := enc.WriteScalar(s); err != nil {
					return err
				}
			}
			return enc.Close()
		}
		for i, arg := range args {
			if i > 0 {
				if err := enc.WriteScalar(' '); err != nil {
					return err
				}
			}
			if _, err := enc.WriteString(arg); err != nil {
				return err
			}
		}
		return enc.Close()
	},
}

func init() {
	dumpCmd.Flags().String("from", "", "source encoding (default from config)")
	dumpCmd.Flags().Int("chunk", 0, "read size in bytes (default from config)")
	encodeCmd.Flags().String("to", "", "target encoding (default from config)")
	encodeCmd.Flags().Bool("code-points", false, "arguments are code points such as U+1F600")
}
