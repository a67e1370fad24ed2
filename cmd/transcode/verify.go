package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mnightingale/transcode"
)

var (
	passColor = color.New(color.FgGreen, color.Bold)
	failColor = color.New(color.FgRed, color.Bold)
)

var verifyCmd = &cobra.Command{
	Use:   "verify ENC_A ENC_B FILE_A FILE_B",
	Short: "Check that two files hold the same text in two encodings",
	Long: `Verify converts FILE_A from ENC_A to ENC_B and FILE_B from ENC_B to ENC_A
and compares each result with the other file, printing "compare <a->b> <b->a>".`,
	Args: cobra.ExactArgs(4),
	RunE: runVerify,
}

func runVerify(cmd *cobra.Command, args []string) error {
	a, err := transcode.ParseEncoding(args[0])
	if err != nil {
		return err
	}
	b, err := transcode.ParseEncoding(args[1])
	if err != nil {
		return err
	}
	bytesA, err := os.ReadFile(args[2])
	if err != nil {
		return err
	}
	bytesB, err := os.ReadFile(args[3])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "test <%s, %s> ...\n", a, b)

	ab, remAB, errAB := transcode.Convert(bytesA, a, b)
	ba, remBA, errBA := transcode.Convert(bytesB, b, a)
	if remAB != 0 || remBA != 0 {
		fmt.Fprintln(out, failColor.Sprint("convert failed!"))
		if errAB != nil {
			return errAB
		}
		return errBA
	}

	equal1 := ab.Equal(bytesB)
	equal2 := ba.Equal(bytesA)
	fmt.Fprintf(out, "compare %s %s\n", verdict(equal1), verdict(equal2))
	if !equal1 || !equal2 {
		return fmt.Errorf("%s and %s differ", args[2], args[3])
	}
	return nil
}

func verdict(ok bool) string {
	if ok {
		return passColor.Sprint("true")
	}
	return failColor.Sprint("false")
}
