package main

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ysaito/uracheck"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Registry uracheck.ExtractorRegistry
	Analyzer uracheck.RelevanceAnalyzer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `help:"Enable verbose logging"`

	Toppage    ToppageCmd    `cmd:"" help:"Compare a vendor menu page against its CSV export"`
	Inputpage  InputpageCmd  `cmd:"" help:"Compare an input page against its result page"`
	Resultpage ResultpageCmd `cmd:"" help:"Analyze title/content relevance of a result page"`
}

// ToppageCmd is the "toppage" subcommand.
type ToppageCmd struct {
	Vendor   string `required:"" help:"Vendor code: rsa, zap, tel or com"`
	MenuFile string `arg:"" type:"existingfile" help:"Menu listing HTML file"`
	CSVFile  string `arg:"" type:"existingfile" help:"Vendor CSV export"`
}

// InputpageCmd is the "inputpage" subcommand.
type InputpageCmd struct {
	Vendor     string `required:"" help:"Vendor code: rsa, zap, tel or com"`
	InputFile  string `arg:"" type:"existingfile" help:"Input page HTML file"`
	ResultFile string `arg:"" type:"existingfile" help:"Result page HTML file"`
}

// ResultpageCmd is the "resultpage" subcommand.
type ResultpageCmd struct {
	Vendor      string  `required:"" help:"Vendor code: rsa, zap, tel or com"`
	ResultFile  string  `arg:"" type:"existingfile" help:"Result page HTML file"`
	Concurrency int     `short:"c" default:"4" help:"Concurrent relevance lookup limit"`
	RPS         float64 `help:"Relevance lookups per second (0 = unlimited)"`
}

// writeJSON serializes a command result to stdout.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
