package main

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pkordes/tourdesk/internal/tagline"
)

var emphasizeCmd = &cobra.Command{
	Use:   "emphasize TEXT...",
	Short: "Split a tagline around its call-out phrase and print the result as JSON",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runEmphasize,
}

func init() {
	emphasizeCmd.Flags().String("markers", os.Getenv("MARKERS_FILE"), "YAML file of tagline markers")
}

func runEmphasize(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("markers")
	e, err := tagline.NewFromFile(path)
	if err != nil {
		return err
	}

	em := e.Emphasize(strings.Join(args, " "))
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		tagline.Emphasis
		HTML string `json:"html"`
	}{em, em.HTML()})
}
