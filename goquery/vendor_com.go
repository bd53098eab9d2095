package goquery

import (
	"github.com/ysaito/uracheck"
)

var (
	_ uracheck.MenuExtractor     = (*ComExtractor)(nil)
	_ uracheck.MetadataExtractor = (*ComExtractor)(nil)
	_ uracheck.SectionExtractor  = (*ComExtractor)(nil)
)

// ComExtractor extracts content from com vendor pages.
//
// com result pages carry no client/partner profile block, so section rows
// report empty names.
type ComExtractor struct{}

// NewComExtractor creates a new ComExtractor.
func NewComExtractor() *ComExtractor {
	return &ComExtractor{}
}

// ExtractMenu parses a com listing page into menu rows.
func (e *ComExtractor) ExtractMenu(html string) (uracheck.RowSet, error) {
	return extractMenu(html, MenuRule{
		ItemSelector:    ".inbox, .listbox",
		NameSelector:    ".top_menu_name a, p.ttl a",
		CaptionSelector: "p.list_text",
		PriceSelector:   ".price span, div.list_price span",
	})
}

// ExtractInputMetadata returns the page-level fields of a com input page.
func (e *ComExtractor) ExtractInputMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "ul.gnavi li.current a",
		BreadcrumbSelector: "div.breadcrumb",
		TitleSelector:      "div.main_ttl span",
	})
}

// ExtractResultMetadata returns the page-level fields of a com result page.
func (e *ComExtractor) ExtractResultMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "ul.gnavi li.current a",
		BreadcrumbSelector: "div.breadcrumb",
		TitleSelector:      "div.result_ttl span",
	})
}

// ExtractSections returns the titled result sections of a com result page.
func (e *ComExtractor) ExtractSections(html string) ([]uracheck.Section, error) {
	return extractSections(html, SectionRule{
		SectionSelector: "div.result_content[class*=frame]",
		TitleSelector:   "div.result_cont_ttl span",
		TextSelector:    "div.center",
	})
}
