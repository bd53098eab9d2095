package main

import (
	"fmt"
	"os"

	"github.com/ysaito/uracheck"
	"github.com/ysaito/uracheck/compare"
)

// Run executes the inputpage command.
func (c *InputpageCmd) Run(deps *Dependencies) error {
	vendor, err := uracheck.ParseVendor(c.Vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	subtitles, err := deps.Registry.Subtitles(vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}
	metadata, err := deps.Registry.Metadata(vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	inputHTML, err := os.ReadFile(c.InputFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s\n", c.InputFile)
		return err
	}
	resultHTML, err := os.ReadFile(c.ResultFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s\n", c.ResultFile)
		return err
	}

	inputSubs, err := subtitles.ExtractInputSubtitles(string(inputHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}
	resultSubs, err := subtitles.ExtractResultSubtitles(string(resultHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	inputMD, err := metadata.ExtractInputMetadata(string(inputHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}
	resultMD, err := metadata.ExtractResultMetadata(string(resultHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, compare.Page(inputSubs, resultSubs, inputMD, resultMD))
}
