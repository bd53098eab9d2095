package compare

import "github.com/ysaito/uracheck"

// Metadata cross-compares the page-level fields within each page and between
// the input and result pages. Exact string equality only.
func Metadata(input, result uracheck.PageMetadata) uracheck.MetadataComparisonRecord {
	return uracheck.MetadataComparisonRecord{
		Input:  pageEquality(input),
		Result: pageEquality(result),

		NavTextMatches:    input.NavText == result.NavText,
		BreadcrumbMatches: input.Breadcrumb == result.Breadcrumb,
		MainTitleMatches:  input.MainTitle == result.MainTitle,
	}
}

func pageEquality(md uracheck.PageMetadata) uracheck.MetadataEquality {
	return uracheck.MetadataEquality{
		TitleEqualsNav:        md.MainTitle == md.NavText,
		TitleEqualsBreadcrumb: md.MainTitle == md.Breadcrumb,
		NavEqualsBreadcrumb:   md.NavText == md.Breadcrumb,
	}
}

// Page assembles the composite input-vs-result page comparison: subtitle
// ordering plus metadata equality.
func Page(inputSubs, resultSubs []uracheck.SubtitleRow, inputMD, resultMD uracheck.PageMetadata) uracheck.PageComparison {
	return uracheck.PageComparison{
		SubTitleComparison: CheckOrder(inputSubs, resultSubs),
		PageDataComparison: Metadata(inputMD, resultMD),
	}
}
