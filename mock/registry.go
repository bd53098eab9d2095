package mock

import "github.com/ysaito/uracheck"

var _ uracheck.ExtractorRegistry = (*ExtractorRegistry)(nil)

// ExtractorRegistry is a mock implementation of uracheck.ExtractorRegistry.
type ExtractorRegistry struct {
	MenuFn      func(vendor uracheck.Vendor) (uracheck.MenuExtractor, error)
	SubtitlesFn func(vendor uracheck.Vendor) (uracheck.SubtitleExtractor, error)
	MetadataFn  func(vendor uracheck.Vendor) (uracheck.MetadataExtractor, error)
	SectionsFn  func(vendor uracheck.Vendor) (uracheck.SectionExtractor, error)
}

func (r *ExtractorRegistry) Menu(vendor uracheck.Vendor) (uracheck.MenuExtractor, error) {
	return r.MenuFn(vendor)
}

func (r *ExtractorRegistry) Subtitles(vendor uracheck.Vendor) (uracheck.SubtitleExtractor, error) {
	return r.SubtitlesFn(vendor)
}

func (r *ExtractorRegistry) Metadata(vendor uracheck.Vendor) (uracheck.MetadataExtractor, error) {
	return r.MetadataFn(vendor)
}

func (r *ExtractorRegistry) Sections(vendor uracheck.Vendor) (uracheck.SectionExtractor, error) {
	return r.SectionsFn(vendor)
}
