// Package compare implements the comparison logic of the checker: menu row
// matching, subtitle ordering, page-metadata equality, duplication marking
// and the relevance analysis fan-out.
package compare

import "github.com/ysaito/uracheck"

// Menus compares each source row against the whole target set, one record per
// source row. Matching is any-match containment, not a 1:1 assignment: a
// single target row may satisfy multiple source rows. Neither row set is
// mutated.
func Menus(source, target uracheck.RowSet) []uracheck.ComparisonRecord {
	return compareMenus(source, target, false)
}

// MenusAgainstCSV is Menus with the id column diffed as well, for targets
// that carry one (the vendor CSV export).
func MenusAgainstCSV(html, csv uracheck.RowSet) []uracheck.ComparisonRecord {
	return compareMenus(html, csv, true)
}

func compareMenus(source, target uracheck.RowSet, withID bool) []uracheck.ComparisonRecord {
	records := make([]uracheck.ComparisonRecord, 0, len(source))
	for _, row := range source {
		records = append(records, compareRow(row, target, withID))
	}
	return records
}

func compareRow(row uracheck.Row, target uracheck.RowSet, withID bool) uracheck.ComparisonRecord {
	rec := uracheck.ComparisonRecord{
		Menu:    row.Menu,
		Caption: row.Caption,
		Price:   row.Price,
		ID:      row.ID,
	}
	if row.IsTax {
		rec.Tax = uracheck.TaxLabel
	}

	key := row.CompositeKey()
	for _, t := range target {
		if t.CompositeKey() == key {
			rec.IsSameSet = true
			break
		}
	}
	if rec.IsSameSet {
		if withID {
			rec.DiffID = new(int)
		}
		return rec
	}

	// Per-field fallback: every flag defaults to mismatch, any target row can
	// clear it. Price additionally requires the menu or caption of that same
	// target row to match.
	rec.DiffMenu, rec.DiffCaption, rec.DiffPrice = 1, 1, 1
	diffID := 1
	for _, t := range target {
		nameMatch := t.Menu == row.Menu
		captionMatch := t.Caption == row.Caption
		if nameMatch {
			rec.DiffMenu = 0
		}
		if captionMatch {
			rec.DiffCaption = 0
		}
		if (nameMatch || captionMatch) && t.Price == row.Price {
			rec.DiffPrice = 0
		}
		if t.ID == row.ID {
			diffID = 0
		}
	}
	if withID {
		rec.DiffID = &diffID
	}
	return rec
}
