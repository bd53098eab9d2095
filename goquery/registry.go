package goquery

import "github.com/ysaito/uracheck"

var _ uracheck.ExtractorRegistry = (*Registry)(nil)

// Registry resolves vendor codes to extraction implementations. The rule set
// is fixed at startup; lookups for unknown vendors fail with EUNSUPPORTED
// and lookups for capabilities a vendor lacks fail with ENOTIMPLEMENTED.
type Registry struct {
	menus     map[uracheck.Vendor]uracheck.MenuExtractor
	subtitles map[uracheck.Vendor]uracheck.SubtitleExtractor
	metadata  map[uracheck.Vendor]uracheck.MetadataExtractor
	sections  map[uracheck.Vendor]uracheck.SectionExtractor
}

// NewRegistry creates a Registry with all four vendors registered.
func NewRegistry() *Registry {
	rsa := NewRsaExtractor()
	zap := NewZapExtractor()
	tel := NewTelExtractor()
	com := NewComExtractor()

	return &Registry{
		menus: map[uracheck.Vendor]uracheck.MenuExtractor{
			uracheck.VendorRsa: rsa,
			uracheck.VendorZap: zap,
			uracheck.VendorTel: tel,
			uracheck.VendorCom: com,
		},
		// Only rsa's input/result page pair has a subtitle structure we
		// know how to read.
		subtitles: map[uracheck.Vendor]uracheck.SubtitleExtractor{
			uracheck.VendorRsa: rsa,
		},
		metadata: map[uracheck.Vendor]uracheck.MetadataExtractor{
			uracheck.VendorRsa: rsa,
			uracheck.VendorZap: zap,
			uracheck.VendorTel: tel,
			uracheck.VendorCom: com,
		},
		sections: map[uracheck.Vendor]uracheck.SectionExtractor{
			uracheck.VendorRsa: rsa,
			uracheck.VendorZap: zap,
			uracheck.VendorTel: tel,
			uracheck.VendorCom: com,
		},
	}
}

// Menu returns the menu extractor for a vendor.
func (r *Registry) Menu(vendor uracheck.Vendor) (uracheck.MenuExtractor, error) {
	if err := r.validate(vendor); err != nil {
		return nil, err
	}
	e, ok := r.menus[vendor]
	if !ok {
		return nil, uracheck.Errorf(uracheck.ENOTIMPLEMENTED, "menu extraction not implemented for vendor: %s", vendor)
	}
	return e, nil
}

// Subtitles returns the subtitle extractor for a vendor.
func (r *Registry) Subtitles(vendor uracheck.Vendor) (uracheck.SubtitleExtractor, error) {
	if err := r.validate(vendor); err != nil {
		return nil, err
	}
	e, ok := r.subtitles[vendor]
	if !ok {
		return nil, uracheck.Errorf(uracheck.ENOTIMPLEMENTED, "subtitle extraction not implemented for vendor: %s", vendor)
	}
	return e, nil
}

// Metadata returns the page-metadata extractor for a vendor.
func (r *Registry) Metadata(vendor uracheck.Vendor) (uracheck.MetadataExtractor, error) {
	if err := r.validate(vendor); err != nil {
		return nil, err
	}
	e, ok := r.metadata[vendor]
	if !ok {
		return nil, uracheck.Errorf(uracheck.ENOTIMPLEMENTED, "metadata extraction not implemented for vendor: %s", vendor)
	}
	return e, nil
}

// Sections returns the result-section extractor for a vendor.
func (r *Registry) Sections(vendor uracheck.Vendor) (uracheck.SectionExtractor, error) {
	if err := r.validate(vendor); err != nil {
		return nil, err
	}
	e, ok := r.sections[vendor]
	if !ok {
		return nil, uracheck.Errorf(uracheck.ENOTIMPLEMENTED, "section extraction not implemented for vendor: %s", vendor)
	}
	return e, nil
}

func (r *Registry) validate(vendor uracheck.Vendor) error {
	_, err := uracheck.ParseVendor(string(vendor))
	return err
}
