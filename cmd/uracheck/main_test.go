package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysaito/uracheck"
	main "github.com/ysaito/uracheck/cmd/uracheck"
	"github.com/ysaito/uracheck/mock"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCmdToppage(t *testing.T) {
	t.Parallel()

	t.Run("compares a menu page against its CSV export", func(t *testing.T) {
		t.Parallel()

		menuFile := writeTempFile(t, "menu.html", `<div class="appraisal_menu">
	<a href="/menu/m0001.html"><p>恋愛成就鑑定</p></a>
	<p class="description">ふたりの相性を徹底鑑定</p>
	<p class="price"><span>2,800円（税込）</span></p>
</div>`)
		csvFile := writeTempFile(t, "export.csv",
			"メニューID,メニュー名,キャプション,金額(税込)\n"+
				"m0001,恋愛成就鑑定,ふたりの相性を徹底鑑定,2800\n")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"toppage", "--vendor", "rsa", menuFile, csvFile}, stdout, stderr)

		require.NoError(t, err)
		assert.Empty(t, stderr.String())

		var records []uracheck.ComparisonRecord
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &records))
		require.Len(t, records, 1)
		assert.True(t, records[0].IsSameSet)
		assert.Equal(t, "m0001", records[0].ID)
		assert.Equal(t, uracheck.TaxLabel, records[0].Tax)
		require.NotNil(t, records[0].DiffID)
		assert.Equal(t, 0, *records[0].DiffID)
	})

	t.Run("unknown vendor fails", func(t *testing.T) {
		t.Parallel()

		menuFile := writeTempFile(t, "menu.html", "<html></html>")
		csvFile := writeTempFile(t, "export.csv", "メニューID\n")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"toppage", "--vendor", "xyz", menuFile, csvFile}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, uracheck.EUNSUPPORTED, uracheck.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}

func TestCmdInputpage(t *testing.T) {
	t.Parallel()

	t.Run("compares subtitles and metadata", func(t *testing.T) {
		t.Parallel()

		inputFile := writeTempFile(t, "input.html", `<body>
<nav id="globalNavi"><ul><li class="current">恋愛占い</li></ul></nav>
<h1 id="mainTitle">恋愛占い</h1>
<section id="subMenuTitleLists">
	<div class="submenu_title"><p>あなたの基本性格</p></div>
	<div class="submenu_title"><p>ふたりの相性</p></div>
</section>
</body>`)
		resultFile := writeTempFile(t, "result.html", `<body>
<nav id="globalNavi"><ul><li class="current">恋愛占い</li></ul></nav>
<div class="topic_path">&gt; 恋愛占い</div>
<div class="result_title_background_center"><p>恋愛占い</p></div>
<div class="result_subheading_background_center"><p>あなたの基本性格</p></div>
<div class="result_subheading_background_left"><p>ふたりの相性</p></div>
</body>`)

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"inputpage", "--vendor", "rsa", inputFile, resultFile}, stdout, stderr)

		require.NoError(t, err)

		var page uracheck.PageComparison
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &page))
		require.Len(t, page.SubTitleComparison, 2)
		assert.Equal(t, "", page.SubTitleComparison[0].CheckOrder)
		assert.True(t, page.SubTitleComparison[0].CheckText)
		assert.True(t, page.PageDataComparison.NavTextMatches)
		assert.True(t, page.PageDataComparison.MainTitleMatches)
		assert.False(t, page.PageDataComparison.BreadcrumbMatches, "input breadcrumb is synthetic")
	})

	t.Run("vendor without subtitle support fails", func(t *testing.T) {
		t.Parallel()

		inputFile := writeTempFile(t, "input.html", "<html></html>")
		resultFile := writeTempFile(t, "result.html", "<html></html>")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"inputpage", "--vendor", "zap", inputFile, resultFile}, stdout, stderr)

		require.Error(t, err)
		assert.Equal(t, uracheck.ENOTIMPLEMENTED, uracheck.ErrorCode(err))
	})
}

func TestCmdResultpage(t *testing.T) {
	t.Run("analyzes sections with duplication marking", func(t *testing.T) {
		t.Parallel()

		resultFile := writeTempFile(t, "result.html", `<body>
<div id="profileDisplaySection">
	<div><p>花子&emsp;1990年1月1日生まれ</p></div>
	<div><p>太郎&emsp;1988年5月5日生まれ</p></div>
</div>
<section>
	<div class="result_subheading_background_center"><p>ふたりの相性</p></div>
	<div class="result_description_background_center">おふたりは強い絆で結ばれています。</div>
</section>
<section>
	<div class="result_subheading_background_center"><p>未来</p></div>
	<div class="result_description_background_center">おふたりは強い絆で結ばれています。</div>
</section>
</body>`)

		m := main.NewMain()
		m.Analyzer = &mock.RelevanceAnalyzer{
			AnalyzeFn: func(_ context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error) {
				assert.Equal(t, "花子", req.ClientName)
				return uracheck.RelevanceResult{Tier: uracheck.TierHigh, Reason: "ok"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"resultpage", "--vendor", "rsa", resultFile}, stdout, stderr)

		require.NoError(t, err)

		var report uracheck.SectionReport
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		require.Len(t, report.Results, 2)
		assert.Equal(t, "ふたりの相性", report.Results[0].SmallMenu)
		assert.Equal(t, uracheck.DuplicationNone, report.Results[0].Duplication)
		assert.Equal(t, uracheck.DuplicationFound, report.Results[1].Duplication)
		assert.Equal(t, uracheck.TierHigh, report.Results[0].Relevance)
		assert.Equal(t, "太郎", report.Results[0].PartnerName)
	})

	t.Run("a failing lookup degrades only its own section", func(t *testing.T) {
		t.Parallel()

		resultFile := writeTempFile(t, "result.html", `<body>
<section>
	<div class="result_subheading_background_center"><p>一</p></div>
	<div class="result_description_background_center">本文一</div>
</section>
<section>
	<div class="result_subheading_background_center"><p>二</p></div>
	<div class="result_description_background_center">本文二</div>
</section>
</body>`)

		m := main.NewMain()
		m.Analyzer = &mock.RelevanceAnalyzer{
			AnalyzeFn: func(_ context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error) {
				if req.Title == "一" {
					return uracheck.RelevanceResult{}, uracheck.Errorf(uracheck.EEXTERNAL, "invalid response format")
				}
				return uracheck.RelevanceResult{Tier: uracheck.TierMedium, Reason: "ok"}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(),
			[]string{"resultpage", "--vendor", "rsa", resultFile}, stdout, stderr)

		require.NoError(t, err)

		var report uracheck.SectionReport
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &report))
		require.Len(t, report.Results, 2)
		assert.Equal(t, uracheck.TierError, report.Results[0].Relevance)
		assert.Equal(t, uracheck.ErrorReason, report.Results[0].RelevanceReason)
		assert.Equal(t, uracheck.TierMedium, report.Results[1].Relevance)
	})

	t.Run("requires an API key when no analyzer is injected", func(t *testing.T) {
		resultFile := writeTempFile(t, "result.html", "<html></html>")

		t.Setenv("ANTHROPIC_API_KEY", "")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(),
			[]string{"resultpage", "--vendor", "rsa", resultFile}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "ANTHROPIC_API_KEY")
		assert.Contains(t, stderr.String(), "ANTHROPIC_API_KEY")
	})
}
