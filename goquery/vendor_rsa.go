package goquery

import (
	"github.com/ysaito/uracheck"
)

var (
	_ uracheck.MenuExtractor     = (*RsaExtractor)(nil)
	_ uracheck.SubtitleExtractor = (*RsaExtractor)(nil)
	_ uracheck.MetadataExtractor = (*RsaExtractor)(nil)
	_ uracheck.SectionExtractor  = (*RsaExtractor)(nil)
)

// RsaExtractor extracts content from rsa vendor pages. rsa is the only
// vendor whose input/result page pair is supported end to end.
type RsaExtractor struct{}

// NewRsaExtractor creates a new RsaExtractor.
func NewRsaExtractor() *RsaExtractor {
	return &RsaExtractor{}
}

// ExtractMenu parses an rsa listing page into menu rows.
func (e *RsaExtractor) ExtractMenu(html string) (uracheck.RowSet, error) {
	return extractMenu(html, MenuRule{
		ItemSelector:    ".appraisal_menu, .appraisal-menu",
		NameSelector:    "a p",
		CaptionSelector: "p.description",
		PriceSelector:   "p.price span",
	})
}

// ExtractInputSubtitles returns the subtitle sequence of an rsa input page.
func (e *RsaExtractor) ExtractInputSubtitles(html string) ([]uracheck.SubtitleRow, error) {
	return extractSubtitles(html, SubtitleRule{
		ItemSelector: "section#subMenuTitleLists div.submenu_title > p",
	})
}

// ExtractResultSubtitles returns the subtitle sequence of an rsa result page.
func (e *RsaExtractor) ExtractResultSubtitles(html string) ([]uracheck.SubtitleRow, error) {
	return extractSubtitles(html, SubtitleRule{
		ItemSelector: "div[class^=result_subheading]",
		TextSelector: "p",
	})
}

// ExtractInputMetadata returns the page-level fields of an rsa input page.
// rsa input pages have no real breadcrumb; a constant marks the element as
// program-controlled.
func (e *RsaExtractor) ExtractInputMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:         "nav#globalNavi li.current",
		TitleSelector:       "h1#mainTitle",
		SyntheticBreadcrumb: "プログラムで制御",
	})
}

// ExtractResultMetadata returns the page-level fields of an rsa result page.
func (e *RsaExtractor) ExtractResultMetadata(html string) (uracheck.PageMetadata, error) {
	return extractMetadata(html, MetadataRule{
		NavSelector:        "nav#globalNavi li.current",
		BreadcrumbSelector: "div.topic_path",
		TitleSelector:      "div.result_title_background_center p",
	})
}

// ExtractSections returns the titled result sections of an rsa result page.
func (e *RsaExtractor) ExtractSections(html string) ([]uracheck.Section, error) {
	return extractSections(html, SectionRule{
		SectionSelector:   "section",
		TitleSelector:     "div.result_subheading_background_center p",
		TextSelector:      "div.result_description_background_center",
		ClientSelector:    "#profileDisplaySection > div:first-child > p",
		PartnerSelector:   "#profileDisplaySection > div:nth-child(2) > p",
		RejectStyleScript: true,
		ClientNameFunc:    emspHead,
		PartnerNameFunc:   emspHead,
	})
}
