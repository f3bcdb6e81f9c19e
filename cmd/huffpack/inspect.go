package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	huffman "github.com/nickeb96/huffman-compression"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [input]",
	Short: "Describe a compressed file",
	Long:  "Print the header of a compressed file and the code table stored in it.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		quiet, _ := cmd.Flags().GetBool("quiet")
		if err := runInspect(os.Stdout, args[0], quiet); err != nil {
			newLogger().Errorf("inspecting %s: %s", args[0], err)
			os.Exit(1)
		}
	},
}

func init() {
	inspectCmd.Flags().BoolP("quiet", "Q", false, "Omit the code table")
}

func runInspect(w io.Writer, in string, quiet bool) error {
	contents, err := os.ReadFile(in)
	if err != nil {
		return err
	}

	c, err := huffman.ParseContainer(contents)
	if err != nil {
		return err
	}
	tree, err := huffman.DeserializeTree(c.Tree)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "File: %s\n", in)
	fmt.Fprintf(w, "\tSize: %d\n", len(contents))
	fmt.Fprintf(w, "\tHeader: %d\n", c.HeaderLength)
	fmt.Fprintf(w, "\tPayload: %d\n", len(c.Payload))
	fmt.Fprintf(w, "\tTree: %s\n", tree)
	if quiet {
		return nil
	}
	_, err = huffman.NewEncoder(tree).Dump(w)
	return err
}
