package uracheck

// Vendor identifies a fortune-telling service provider. Each vendor has its
// own HTML markup conventions, so extraction is configured per vendor.
type Vendor string

// Supported vendor codes.
const (
	VendorRsa Vendor = "rsa"
	VendorZap Vendor = "zap"
	VendorTel Vendor = "tel"
	VendorCom Vendor = "com"
)

// Vendors lists all supported vendor codes.
func Vendors() []Vendor {
	return []Vendor{VendorRsa, VendorZap, VendorTel, VendorCom}
}

// ParseVendor validates a vendor code string.
// Returns EUNSUPPORTED for unknown codes.
func ParseVendor(code string) (Vendor, error) {
	switch v := Vendor(code); v {
	case VendorRsa, VendorZap, VendorTel, VendorCom:
		return v, nil
	}
	return "", Errorf(EUNSUPPORTED, "unsupported vendor: %s", code)
}

// MenuExtractor extracts menu rows from a vendor's listing page.
type MenuExtractor interface {
	// ExtractMenu parses HTML and returns one Row per matched menu item,
	// in document order. Missing sub-fields degrade to ""/0, never error.
	ExtractMenu(html string) (RowSet, error)
}

// SubtitleExtractor extracts subtitle sequences from input and result pages.
type SubtitleExtractor interface {
	// ExtractInputSubtitles returns the subtitle sequence of an input page,
	// with 1-based order preserved.
	ExtractInputSubtitles(html string) ([]SubtitleRow, error)

	// ExtractResultSubtitles returns the subtitle sequence of a result page.
	ExtractResultSubtitles(html string) ([]SubtitleRow, error)
}

// MetadataExtractor extracts page-level scalar fields from input and result pages.
type MetadataExtractor interface {
	ExtractInputMetadata(html string) (PageMetadata, error)
	ExtractResultMetadata(html string) (PageMetadata, error)
}

// SectionExtractor extracts titled content sections from a result page for
// relevance analysis.
type SectionExtractor interface {
	ExtractSections(html string) ([]Section, error)
}

// ExtractorRegistry resolves vendor codes to extraction implementations.
//
// Lookups return EUNSUPPORTED for unknown vendors and ENOTIMPLEMENTED for
// known vendors that lack the requested capability.
type ExtractorRegistry interface {
	Menu(vendor Vendor) (MenuExtractor, error)
	Subtitles(vendor Vendor) (SubtitleExtractor, error)
	Metadata(vendor Vendor) (MetadataExtractor, error)
	Sections(vendor Vendor) (SectionExtractor, error)
}
