// Package goquery implements vendor-specific HTML extraction using CSS
// selectors. Each vendor's markup conventions are captured in declarative
// rule structs; the extraction mechanics are shared.
package goquery

import (
	"math"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ysaito/uracheck"
)

// MenuRule describes how to pull menu rows out of one vendor's listing page.
type MenuRule struct {
	// ItemSelector matches the repeating menu item container.
	ItemSelector string

	// Sub-field selectors, relative to the item container.
	NameSelector    string
	CaptionSelector string
	PriceSelector   string

	// IDSelector matches the anchor whose href carries the menu id.
	// Empty means the first anchor inside the item.
	IDSelector string

	// IDFromClosestAnchor additionally searches the closest ancestor anchor
	// when no anchor exists inside the item.
	IDFromClosestAnchor bool

	// PriceMultiplier, when non-zero, is applied to the extracted price and
	// the product rounded to the nearest integer (tax conversion).
	PriceMultiplier float64
}

// SubtitleRule describes how to pull the subtitle sequence out of a page.
type SubtitleRule struct {
	// ItemSelector matches one subtitle element per entry, in document order.
	ItemSelector string

	// TextSelector, when non-empty, locates the text node within the item.
	// Empty means the item's own text.
	TextSelector string
}

// MetadataRule describes how to pull the three page-level scalar fields out
// of one vendor's page.
type MetadataRule struct {
	NavSelector        string
	BreadcrumbSelector string
	TitleSelector      string

	// SyntheticBreadcrumb replaces breadcrumb extraction entirely for pages
	// that have no real breadcrumb.
	SyntheticBreadcrumb string
}

// SectionRule describes how to pull titled content sections out of a result
// page for relevance analysis.
type SectionRule struct {
	SectionSelector string
	TitleSelector   string
	TextSelector    string
	ClientSelector  string
	PartnerSelector string

	// TitleFromImageAlt substitutes the alt text of an image inside the
	// title element for the element's visible text.
	TitleFromImageAlt bool

	// RejectStyleScript drops sections whose content element contains style
	// or script children.
	RejectStyleScript bool

	// ClientNameFunc/PartnerNameFunc post-process the raw name text.
	// Nil means firstToken.
	ClientNameFunc  func(string) string
	PartnerNameFunc func(string) string
}

func parseDoc(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, uracheck.Errorf(uracheck.EINVALID, "failed to parse HTML: %v", err)
	}
	return doc, nil
}

// extractMenu applies a MenuRule to a listing page. One Row per matched
// container, in document order; missing sub-fields degrade to ""/0.
func extractMenu(html string, rule MenuRule) (uracheck.RowSet, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	var rows uracheck.RowSet
	doc.Find(rule.ItemSelector).Each(func(_ int, item *goquery.Selection) {
		priceText := strings.TrimSpace(item.Find(rule.PriceSelector).Text())
		price := priceFromText(priceText, rule.PriceMultiplier)

		rows = append(rows, uracheck.Row{
			Menu:    strings.TrimSpace(item.Find(rule.NameSelector).Text()),
			Caption: strings.TrimSpace(item.Find(rule.CaptionSelector).Text()),
			Price:   price,
			ID:      menuID(item, rule),
			IsTax:   strings.Contains(priceText, uracheck.TaxLabel),
		})
	})

	return rows, nil
}

// priceFromText strips every non-digit character and parses the remainder as
// an integer; absent or unparseable prices yield 0. The multiplier, if any,
// is applied afterwards and the result rounded to the nearest integer.
func priceFromText(text string, multiplier float64) float64 {
	var sb strings.Builder
	for _, r := range text {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	price := uracheck.ParsePrice(sb.String())
	if multiplier != 0 {
		price = math.Round(price * multiplier)
	}
	return price
}

func menuID(item *goquery.Selection, rule MenuRule) string {
	sel := rule.IDSelector
	if sel == "" {
		sel = "a"
	}
	href, ok := item.Find(sel).First().Attr("href")
	if !ok && rule.IDFromClosestAnchor {
		href, _ = item.Closest("a").Attr("href")
	}
	return menuIDFromHref(href)
}

var fileExtRe = regexp.MustCompile(`\.[^/.]+$`)

// menuIDFromHref derives a menu id from an anchor href: the last path
// segment with any file extension stripped. Absent hrefs yield "".
func menuIDFromHref(href string) string {
	if href == "" {
		return ""
	}
	segments := strings.Split(href, "/")
	last := segments[len(segments)-1]
	return fileExtRe.ReplaceAllString(last, "")
}

// extractSubtitles applies a SubtitleRule to a page, producing 1-based order.
func extractSubtitles(html string, rule SubtitleRule) ([]uracheck.SubtitleRow, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	var subtitles []uracheck.SubtitleRow
	doc.Find(rule.ItemSelector).Each(func(i int, item *goquery.Selection) {
		text := item.Text()
		if rule.TextSelector != "" {
			text = item.Find(rule.TextSelector).Text()
		}
		subtitles = append(subtitles, uracheck.SubtitleRow{
			Order: i + 1,
			Text:  strings.TrimSpace(text),
		})
	})

	return subtitles, nil
}

// extractMetadata applies a MetadataRule to a page. Absent DOM matches
// degrade to empty strings.
func extractMetadata(html string, rule MetadataRule) (uracheck.PageMetadata, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return uracheck.PageMetadata{}, err
	}

	breadcrumb := rule.SyntheticBreadcrumb
	if breadcrumb == "" {
		breadcrumb = strings.TrimSpace(doc.Find(rule.BreadcrumbSelector).First().Text())
		breadcrumb = strings.TrimPrefix(breadcrumb, "> ")
	}

	return uracheck.PageMetadata{
		NavText:    strings.TrimSpace(doc.Find(rule.NavSelector).First().Text()),
		Breadcrumb: breadcrumb,
		MainTitle:  strings.TrimSpace(doc.Find(rule.TitleSelector).First().Text()),
	}, nil
}

// extractSections applies a SectionRule to a result page. Sections with an
// empty title, empty content, content ending in "……" (truncated preview), or
// rejected by RejectStyleScript are skipped.
func extractSections(html string, rule SectionRule) ([]uracheck.Section, error) {
	doc, err := parseDoc(html)
	if err != nil {
		return nil, err
	}

	client := extractName(doc, rule.ClientSelector, rule.ClientNameFunc)
	partner := extractName(doc, rule.PartnerSelector, rule.PartnerNameFunc)

	var sections []uracheck.Section
	doc.Find(rule.SectionSelector).Each(func(_ int, section *goquery.Selection) {
		titleEl := section.Find(rule.TitleSelector)
		contentEl := section.Find(rule.TextSelector)

		title := sectionTitle(titleEl, rule.TitleFromImageAlt)
		content := strings.TrimSpace(contentEl.Text())

		if title == "" || content == "" {
			return
		}
		if strings.HasSuffix(content, "……") {
			return
		}
		if rule.RejectStyleScript && contentEl.Find("style, script").Length() > 0 {
			return
		}

		sections = append(sections, uracheck.Section{
			Title:       title,
			Content:     content,
			ClientName:  client,
			PartnerName: partner,
		})
	})

	return sections, nil
}

func sectionTitle(titleEl *goquery.Selection, fromImageAlt bool) string {
	title := strings.TrimSpace(titleEl.Text())
	if fromImageAlt {
		if img := titleEl.Find("img"); img.Length() > 0 {
			if alt := strings.TrimSpace(img.AttrOr("alt", "")); alt != "" {
				title = alt
			}
		}
	}
	return title
}

func extractName(doc *goquery.Document, selector string, process func(string) string) string {
	if selector == "" {
		return ""
	}
	text := doc.Find(selector).First().Text()
	if process == nil {
		process = firstToken
	}
	return process(text)
}

// firstToken takes only the first whitespace-delimited token of a name field.
func firstToken(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// emspHead strips the "&emsp;"-delimited suffix from a name field. The
// delimiter may appear literally or already decoded to an em space.
func emspHead(s string) string {
	if head, _, found := strings.Cut(s, "&emsp;"); found {
		return strings.TrimSpace(head)
	}
	if head, _, found := strings.Cut(s, "\u2003"); found {
		return strings.TrimSpace(head)
	}
	return strings.TrimSpace(s)
}

// trimName trims surrounding whitespace only.
func trimName(s string) string {
	return strings.TrimSpace(s)
}
