package goquery

import (
	"github.com/ysaito/uracheck"
)

var (
	_ uracheck.MenuExtractor     = (*TelExtractor)(nil)
	_ uracheck.MetadataExtractor = (*TelExtractor)(nil)
	_ uracheck.SectionExtractor  = (*TelExtractor)(nil)
)

// telTaxMultiplier converts tel's tax-exclusive listing prices to
// tax-inclusive ones for comparison against the CSV export.
const telTaxMultiplier = 1.1

// TelExtractor extracts content from tel vendor pages.
type TelExtractor struct{}

// NewTelExtractor creates a new TelExtractor.
func NewTelExtractor() *TelExtractor {
	return &TelExtractor{}
}

// ExtractMenu parses a tel listing page into menu rows.
func (e *TelExtractor) ExtractMenu(html string) (uracheck.RowSet, error) {
	return extractMenu(html, MenuRule{
		ItemSelector:    "#HEAD .new_box",
		NameSelector:    "a.menu_title_text",
		CaptionSelector: "p.text2",
		PriceSelector:   "div.price_box p.price_non",
		IDSelector:      "a.menu_title_text",
		PriceMultiplier: telTaxMultiplier,
	})
}

// ExtractInputMetadata returns the page-level fields of a tel input page.
func (e *TelExtractor) ExtractInputMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "#navi li.select a",
		BreadcrumbSelector: "div.pan_kuzu",
		TitleSelector:      "div#midashi",
	})
}

// ExtractResultMetadata returns the page-level fields of a tel result page.
func (e *TelExtractor) ExtractResultMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "#navi li.select a",
		BreadcrumbSelector: "div.pan_kuzu",
		TitleSelector:      "div#oomidashi",
	})
}

// ExtractSections returns the titled result sections of a tel result page.
func (e *TelExtractor) ExtractSections(html string) ([]uracheck.Section, error) {
	return extractSections(html, SectionRule{
		SectionSelector: "div.res_bg.clearfix",
		TitleSelector:   "div#komidashi",
		TextSelector:    "div.res_sub_box p",
		ClientSelector:  "div.my_name span#nickname",
		PartnerSelector: "div.you_name span#nickname2",
		ClientNameFunc:  trimName,
		PartnerNameFunc: trimName,
	})
}
