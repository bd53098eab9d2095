package goquery

import (
	"github.com/ysaito/uracheck"
)

var (
	_ uracheck.MenuExtractor     = (*ZapExtractor)(nil)
	_ uracheck.MetadataExtractor = (*ZapExtractor)(nil)
	_ uracheck.SectionExtractor  = (*ZapExtractor)(nil)
)

// ZapExtractor extracts content from zap vendor pages.
type ZapExtractor struct{}

// NewZapExtractor creates a new ZapExtractor.
func NewZapExtractor() *ZapExtractor {
	return &ZapExtractor{}
}

// ExtractMenu parses a zap listing page into menu rows. zap menu items are
// not always wrapped in their own anchor, so the id falls back to the
// closest ancestor anchor.
func (e *ZapExtractor) ExtractMenu(html string) (uracheck.RowSet, error) {
	return extractMenu(html, MenuRule{
		ItemSelector:        ".severalmenu",
		NameSelector:        ".menu_info h1, .menu_info h2, .menu_info h3, .menu_info h4, .menu_info h5, .menu_info h6",
		CaptionSelector:     "p.caption",
		PriceSelector:       "p.price_info, div.price_info, div.price_normal",
		IDFromClosestAnchor: true,
	})
}

// ExtractInputMetadata returns the page-level fields of a zap input page.
func (e *ZapExtractor) ExtractInputMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "#gnav li.on a",
		BreadcrumbSelector: ".pankuzu",
		TitleSelector:      ".menu_hdr h1",
	})
}

// ExtractResultMetadata returns the page-level fields of a zap result page.
func (e *ZapExtractor) ExtractResultMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "#gnav li.on a",
		BreadcrumbSelector: ".pankuzu",
		TitleSelector:      ".article_hdr h1",
	})
}

// ExtractSections returns the titled result sections of a zap result page.
// zap section headings are sometimes rendered as images; the alt text then
// stands in for the visible title.
func (e *ZapExtractor) ExtractSections(html string) ([]uracheck.Section, error) {
	return extractSections(html, SectionRule{
		SectionSelector:   ".section_bdy, .article_bdy",
		TitleSelector:     "h1, h2, h3, h4, h5, h6",
		TextSelector:      ".detail_txt p:first-child",
		ClientSelector:    ".basic_info p",
		PartnerSelector:   ".info_other p",
		TitleFromImageAlt: true,
	})
}
