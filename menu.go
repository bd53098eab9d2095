package uracheck

// Row is one menu listing entry, extracted from HTML or CSV.
type Row struct {
	Menu    string  `json:"menu"`
	Caption string  `json:"caption"`
	Price   float64 `json:"price"`
	ID      string  `json:"id"`
	IsTax   bool    `json:"isTax"`
}

// CompositeKey returns the concatenated menu+caption+price string used for
// "same set" matching. Price uses its natural stringification (no trailing
// zeros for integral values).
func (r Row) CompositeKey() string {
	return r.Menu + r.Caption + FormatPrice(r.Price)
}

// RowSet is an ordered sequence of menu rows, conceptually a table with
// named columns. Order is significant for index-based correlation but not
// for set matching. Comparison never mutates a RowSet.
type RowSet []Row

// TaxLabel is the display annotation attached to tax-inclusive rows.
const TaxLabel = "税込"

// ComparisonRecord is the diff outcome for a single source row.
// Diff flags are 0 for matched, 1 for mismatch. DiffID is only populated by
// the CSV-oriented comparison, where an id column exists.
type ComparisonRecord struct {
	Menu      string  `json:"menu_html"`
	Caption   string  `json:"caption_html"`
	Price     float64 `json:"price_html"`
	ID        string  `json:"menuid_html"`
	IsSameSet bool    `json:"is_same_set"`

	DiffMenu    int  `json:"diff_menu"`
	DiffCaption int  `json:"diff_caption"`
	DiffPrice   int  `json:"diff_price"`
	DiffID      *int `json:"diff_menuid,omitempty"`

	// Tax carries TaxLabel when the source row's raw price text marked the
	// price as tax-inclusive. Display only; never participates in diffing.
	Tax string `json:"tax_html,omitempty"`
}
