package uracheck

// Duplication labels for Section.Duplication.
const (
	DuplicationFound = "重複あり"
	DuplicationNone  = "重複なし"
)

// Section is a titled content block extracted from a result page, carrying
// the client and partner names extracted from the same page.
type Section struct {
	Title       string `json:"title"`
	Content     string `json:"content"`
	ClientName  string `json:"clientName"`
	PartnerName string `json:"partnerName"`

	// Duplication is set by compare.MarkDuplicates; empty until then.
	Duplication string `json:"duplication,omitempty"`
}

// SectionAnalysis is one row of the relevance report for a result page.
type SectionAnalysis struct {
	SmallMenu       string        `json:"smallMenu"`
	Content         string        `json:"content"`
	Duplication     string        `json:"duplication"`
	Relevance       RelevanceTier `json:"relevance"`
	RelevanceReason string        `json:"relevanceReason"`
	ClientName      string        `json:"clientName"`
	PartnerName     string        `json:"partnerName"`
}

// SectionReport is the serializable envelope for a relevance analysis run.
type SectionReport struct {
	Results []SectionAnalysis `json:"results"`
}
