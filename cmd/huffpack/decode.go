package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	huffman "github.com/nickeb96/huffman-compression"
	"github.com/nickeb96/huffman-compression/internal/logger"
)

var decodeOutput string

var decodeCmd = &cobra.Command{
	Use:   "decode [input]",
	Short: "Decompress a file",
	Long:  "Decompress a file produced by encode.  The output defaults to the input name without its .huff suffix, or with .out appended.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		in := args[0]
		out := decodeOutput
		if out == "" {
			out = defaultDecodeOutput(in)
		}
		if err := runDecode(log, in, out); err != nil {
			log.Errorf("decoding %s into %s: %s", in, out, err)
			os.Exit(1)
		}
	},
}

func init() {
	decodeCmd.Flags().StringVarP(&decodeOutput, "output", "o", "", "Output file")
}

func defaultDecodeOutput(in string) string {
	if trimmed := strings.TrimSuffix(in, fileSuffix); trimmed != in && trimmed != "" {
		return trimmed
	}
	return in + ".out"
}

func runDecode(log logger.Logger, in, out string) error {
	contents, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	log.Debugf("size of encoded file: %d bytes", len(contents))

	decoded, err := huffman.Decompress(contents)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, decoded, 0o644); err != nil {
		return err
	}
	log.Infof("size of decoded file: %d bytes", len(decoded))
	return nil
}
