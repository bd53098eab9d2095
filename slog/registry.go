// Package slog provides logging decorators for the domain interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/ysaito/uracheck"
)

// Ensure LoggingRegistry implements uracheck.ExtractorRegistry.
var _ uracheck.ExtractorRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps an ExtractorRegistry so that every extractor it hands
// out logs what it extracted and how long extraction took.
type LoggingRegistry struct {
	next   uracheck.ExtractorRegistry
	logger *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next uracheck.ExtractorRegistry, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, logger: logger}
}

// Menu returns the vendor's menu extractor wrapped with logging.
func (r *LoggingRegistry) Menu(vendor uracheck.Vendor) (uracheck.MenuExtractor, error) {
	e, err := r.next.Menu(vendor)
	if err != nil {
		return nil, err
	}
	return &loggingMenuExtractor{next: e, vendor: vendor, logger: r.logger}, nil
}

// Subtitles returns the vendor's subtitle extractor wrapped with logging.
func (r *LoggingRegistry) Subtitles(vendor uracheck.Vendor) (uracheck.SubtitleExtractor, error) {
	e, err := r.next.Subtitles(vendor)
	if err != nil {
		return nil, err
	}
	return &loggingSubtitleExtractor{next: e, vendor: vendor, logger: r.logger}, nil
}

// Metadata returns the vendor's metadata extractor wrapped with logging.
func (r *LoggingRegistry) Metadata(vendor uracheck.Vendor) (uracheck.MetadataExtractor, error) {
	e, err := r.next.Metadata(vendor)
	if err != nil {
		return nil, err
	}
	return &loggingMetadataExtractor{next: e, vendor: vendor, logger: r.logger}, nil
}

// Sections returns the vendor's section extractor wrapped with logging.
func (r *LoggingRegistry) Sections(vendor uracheck.Vendor) (uracheck.SectionExtractor, error) {
	e, err := r.next.Sections(vendor)
	if err != nil {
		return nil, err
	}
	return &loggingSectionExtractor{next: e, vendor: vendor, logger: r.logger}, nil
}

type loggingMenuExtractor struct {
	next   uracheck.MenuExtractor
	vendor uracheck.Vendor
	logger *slog.Logger
}

func (e *loggingMenuExtractor) ExtractMenu(html string) (uracheck.RowSet, error) {
	begin := time.Now()
	rows, err := e.next.ExtractMenu(html)
	e.logger.Info("menu extraction",
		"vendor", string(e.vendor),
		"rows", len(rows),
		"duration", time.Since(begin),
	)
	return rows, err
}

type loggingSubtitleExtractor struct {
	next   uracheck.SubtitleExtractor
	vendor uracheck.Vendor
	logger *slog.Logger
}

func (e *loggingSubtitleExtractor) ExtractInputSubtitles(html string) ([]uracheck.SubtitleRow, error) {
	begin := time.Now()
	subtitles, err := e.next.ExtractInputSubtitles(html)
	e.logger.Info("input subtitle extraction",
		"vendor", string(e.vendor),
		"subtitles", len(subtitles),
		"duration", time.Since(begin),
	)
	return subtitles, err
}

func (e *loggingSubtitleExtractor) ExtractResultSubtitles(html string) ([]uracheck.SubtitleRow, error) {
	begin := time.Now()
	subtitles, err := e.next.ExtractResultSubtitles(html)
	e.logger.Info("result subtitle extraction",
		"vendor", string(e.vendor),
		"subtitles", len(subtitles),
		"duration", time.Since(begin),
	)
	return subtitles, err
}

type loggingMetadataExtractor struct {
	next   uracheck.MetadataExtractor
	vendor uracheck.Vendor
	logger *slog.Logger
}

func (e *loggingMetadataExtractor) ExtractInputMetadata(html string) (uracheck.PageMetadata, error) {
	begin := time.Now()
	md, err := e.next.ExtractInputMetadata(html)
	e.logger.Info("input metadata extraction",
		"vendor", string(e.vendor),
		"duration", time.Since(begin),
	)
	return md, err
}

func (e *loggingMetadataExtractor) ExtractResultMetadata(html string) (uracheck.PageMetadata, error) {
	begin := time.Now()
	md, err := e.next.ExtractResultMetadata(html)
	e.logger.Info("result metadata extraction",
		"vendor", string(e.vendor),
		"duration", time.Since(begin),
	)
	return md, err
}

type loggingSectionExtractor struct {
	next   uracheck.SectionExtractor
	vendor uracheck.Vendor
	logger *slog.Logger
}

func (e *loggingSectionExtractor) ExtractSections(html string) ([]uracheck.Section, error) {
	begin := time.Now()
	sections, err := e.next.ExtractSections(html)
	e.logger.Info("section extraction",
		"vendor", string(e.vendor),
		"sections", len(sections),
		"duration", time.Since(begin),
	)
	return sections, err
}
