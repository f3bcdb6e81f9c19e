package main

import (
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/nickeb96/huffman-compression"
	"github.com/nickeb96/huffman-compression/internal/logger"
)

const fileSuffix = ".huff"

var encodeOutput string

var encodeCmd = &cobra.Command{
	Use:   "encode [input]",
	Short: "Compress a file",
	Long:  "Compress a file, writing the result to <input>.huff unless --output is given.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		log := newLogger()
		in := args[0]
		out := encodeOutput
		if out == "" {
			out = in + fileSuffix
		}
		if err := runEncode(log, in, out); err != nil {
			log.Errorf("encoding %s into %s: %s", in, out, err)
			os.Exit(1)
		}
	},
}

func init() {
	encodeCmd.Flags().StringVarP(&encodeOutput, "output", "o", "", "Output file")
}

func runEncode(log logger.Logger, in, out string) error {
	contents, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	log.Infof("size of original file: %d bytes", len(contents))

	encoded := huffman.Compress(contents)
	if err := os.WriteFile(out, encoded, 0o644); err != nil {
		return err
	}
	log.Infof("size of encoded file: %d bytes", len(encoded))
	log.Debugf("wrote %s", out)
	return nil
}
