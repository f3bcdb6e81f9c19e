// Command huffpack compresses and decompresses files with static Huffman
// coding.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/nickeb96/huffman-compression/internal/logger"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "huffpack",
	Short: "Huffman file compressor",
	Long:  "huffpack compresses a file with a Huffman code built from its own byte frequencies, storing the code tree alongside the data.",
}

func newLogger() logger.Logger {
	return logger.New(os.Stderr, verbose)
}

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debugging details")
	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(inspectCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
