package main

import (
	"fmt"
	"os"

	"github.com/ysaito/uracheck"
	"github.com/ysaito/uracheck/compare"
	"golang.org/x/time/rate"
)

// Run executes the resultpage command.
func (c *ResultpageCmd) Run(deps *Dependencies) error {
	vendor, err := uracheck.ParseVendor(c.Vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	extractor, err := deps.Registry.Sections(vendor)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	resultHTML, err := os.ReadFile(c.ResultFile)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to read %s\n", c.ResultFile)
		return err
	}

	sections, err := extractor.ExtractSections(string(resultHTML))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}
	sections = compare.MarkDuplicates(sections)

	runner := &compare.RelevanceRunner{
		Analyzer:    deps.Analyzer,
		Concurrency: c.Concurrency,
	}
	if c.RPS > 0 {
		runner.Limiter = rate.NewLimiter(rate.Limit(c.RPS), 1)
	}

	results, err := runner.Run(deps.Ctx, sections)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", uracheck.ErrorMessage(err))
		return err
	}

	return writeJSON(deps.Stdout, uracheck.SectionReport{Results: results})
}
