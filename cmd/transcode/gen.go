package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mnightingale/transcode/internal/fixture"
)

var genCmd = &cobra.Command{
	Use:   "gen",
	Short: "Write random text in every encoding as fixture files",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		count, _ := cmd.Flags().GetInt("count")
		if !cmd.Flags().Changed("count") {
			count = cfg.Gen.Count
		}
		seed, _ := cmd.Flags().GetUint64("seed")
		if !cmd.Flags().Changed("seed") {
			seed = cfg.Gen.Seed
		}
		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = cfg.Gen.Dir
		}
		if count < 0 {
			return fmt.Errorf("--count must not be negative")
		}

		text := fixture.RandomText(fixture.NewRand(seed), count)
		paths, err := fixture.Write(dir, text)
		if err != nil {
			return err
		}
		for _, p := range paths {
			fmt.Fprintln(cmd.OutOrStdout(), p)
		}
		return nil
	},
}

func init() {
	genCmd.Flags().Int("count", 0, "number of scalars (default from config)")
	genCmd.Flags().Uint64("seed", 0, "random seed (default from config)")
	genCmd.Flags().String("dir", "", "output directory (default from config)")
}
