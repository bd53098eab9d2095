package compare

import "github.com/ysaito/uracheck"

// CheckOrder verifies that every input subtitle appears in the result page in
// the same relative order, one record per input subtitle. Classification
// priority: current missing, then next missing, then out of order; an empty
// classification means no issue. CheckText reports presence of the current
// text independently of the classification.
func CheckOrder(input, result []uracheck.SubtitleRow) []uracheck.SubtitleComparisonRecord {
	records := make([]uracheck.SubtitleComparisonRecord, 0, len(input))
	for i, cur := range input {
		rec := uracheck.SubtitleComparisonRecord{
			Order:     cur.Order,
			Text:      cur.Text,
			CheckText: indexOfText(result, cur.Text) >= 0,
		}

		curIdx := indexOfText(result, cur.Text)
		hasNext := i+1 < len(input)

		switch {
		case curIdx < 0:
			rec.CheckOrder = uracheck.OrderItemMissing
		case hasNext && indexOfText(result, input[i+1].Text) < 0:
			rec.CheckOrder = uracheck.OrderNextItemMissing
		case hasNext && curIdx > indexOfText(result, input[i+1].Text):
			rec.CheckOrder = uracheck.OrderMismatched
		}

		records = append(records, rec)
	}
	return records
}

// indexOfText returns the first index whose text equals s, or -1.
func indexOfText(rows []uracheck.SubtitleRow, s string) int {
	for i, r := range rows {
		if r.Text == s {
			return i
		}
	}
	return -1
}
