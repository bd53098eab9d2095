package uracheck

// SubtitleRow is a single subtitle extracted from an input or result page.
type SubtitleRow struct {
	// Order is the 1-based position in document order.
	Order int `json:"index"`

	Text string `json:"subTitle"`
}

// Ordering classifications for SubtitleComparisonRecord.CheckOrder.
// An empty classification means the item is present and in order.
const (
	OrderItemMissing     = "Item Missing or Created with Image"
	OrderNextItemMissing = "Next Item Missing or Created with Image"
	OrderMismatched      = "Mismatched Items"
)

// SubtitleComparisonRecord is the outcome for one input subtitle.
//
// CheckText reports whether the input text appears anywhere in the result
// sequence. It is computed independently of CheckOrder even though the two
// share the same equality predicate.
type SubtitleComparisonRecord struct {
	Order      int    `json:"index_input"`
	Text       string `json:"sub_title_input"`
	CheckOrder string `json:"check_order"`
	CheckText  bool   `json:"check_text"`
}
