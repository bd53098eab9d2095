package main

import (
	"fmt"
	"os"

	"github.com/ysaito/uracheck"
	"github.com/ysaito/uracheck/compare"
	"github.com/ysaito/uracheck/csv"
)

// Run executes the toppage command.
func (c *ToppageCmd) Run(deps *Dependencies) error {
	vendor, err := uracheck.ParseVendor(c.Vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	extractor, err := deps.Registry.Menu(vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	menuHTML, err := os.ReadFile(c.MenuFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s\n", c.MenuFile)
		return err
	}

	htmlRows, err := extractor.ExtractMenu(string(menuHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	csvText, err := os.ReadFile(c.CSVFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s\n", c.CSVFile)
		return err
	}

	csvRows, err := csv.FromCSV(string(csvText))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, compare.MenusAgainstCSV(htmlRows, csvRows))
}
