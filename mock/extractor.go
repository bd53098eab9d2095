package mock

import "github.com/ysaito/uracheck"

var (
	_ uracheck.MenuExtractor     = (*MenuExtractor)(nil)
	_ uracheck.SubtitleExtractor = (*SubtitleExtractor)(nil)
	_ uracheck.MetadataExtractor = (*MetadataExtractor)(nil)
	_ uracheck.SectionExtractor  = (*SectionExtractor)(nil)
)

// MenuExtractor is a mock implementation of uracheck.MenuExtractor.
type MenuExtractor struct {
	ExtractMenuFn func(html string) (uracheck.RowSet, error)
}

func (e *MenuExtractor) ExtractMenu(html string) (uracheck.RowSet, error) {
	return e.ExtractMenuFn(html)
}

// SubtitleExtractor is a mock implementation of uracheck.SubtitleExtractor.
type SubtitleExtractor struct {
	ExtractInputSubtitlesFn  func(html string) ([]uracheck.SubtitleRow, error)
	ExtractResultSubtitlesFn func(html string) ([]uracheck.SubtitleRow, error)
}

func (e *SubtitleExtractor) ExtractInputSubtitles(html string) ([]uracheck.SubtitleRow, error) {
	return e.ExtractInputSubtitlesFn(html)
}

func (e *SubtitleExtractor) ExtractResultSubtitles(html string) ([]uracheck.SubtitleRow, error) {
	return e.ExtractResultSubtitlesFn(html)
}

// MetadataExtractor is a mock implementation of uracheck.MetadataExtractor.
type MetadataExtractor struct {
	ExtractInputMetadataFn  func(html string) (uracheck.PageMetadata, error)
	ExtractResultMetadataFn func(html string) (uracheck.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractInputMetadata(html string) (uracheck.PageMetadata, error) {
	return e.ExtractInputMetadataFn(html)
}

func (e *MetadataExtractor) ExtractResultMetadata(html string) (uracheck.PageMetadata, error) {
	return e.ExtractResultMetadataFn(html)
}

// SectionExtractor is a mock implementation of uracheck.SectionExtractor.
type SectionExtractor struct {
	ExtractSectionsFn func(html string) ([]uracheck.Section, error)
}

func (e *SectionExtractor) ExtractSections(html string) ([]uracheck.Section, error) {
	return e.ExtractSectionsFn(html)
}
