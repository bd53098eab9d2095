package uracheck

// PageMetadata holds the three scalar fields extracted from one page.
type PageMetadata struct {
	NavText    string `json:"navText"`
	Breadcrumb string `json:"breadcrumb"`
	MainTitle  string `json:"mainTitle"`
}

// MetadataEquality holds the pairwise equality checks within a single page.
type MetadataEquality struct {
	TitleEqualsNav        bool `json:"title_eq_nav"`
	TitleEqualsBreadcrumb bool `json:"title_eq_breadcrumb"`
	NavEqualsBreadcrumb   bool `json:"nav_eq_breadcrumb"`
}

// MetadataComparisonRecord cross-compares page metadata within each page and
// between the input and result pages. Equality is exact: case-sensitive, no
// normalization beyond the trimming the extractor already applied.
type MetadataComparisonRecord struct {
	Input  MetadataEquality `json:"input"`
	Result MetadataEquality `json:"result"`

	NavTextMatches    bool `json:"nav_text_match"`
	BreadcrumbMatches bool `json:"breadcrumb_match"`
	MainTitleMatches  bool `json:"main_title_match"`
}

// PageComparison is the composite result of an input-vs-result page check.
type PageComparison struct {
	SubTitleComparison []SubtitleComparisonRecord `json:"subTitleComparison"`
	PageDataComparison MetadataComparisonRecord   `json:"pageDataComparison"`
}
