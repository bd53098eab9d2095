package goquery_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysaito/uracheck/goquery"
)

func TestComExtractor_ExtractMenu(t *testing.T) {
	t.Parallel()

	t.Run("matches both container classes", func(t *testing.T) {
		t.Parallel()

		html := `<body>
<div class="inbox">
	<div class="top_menu_name"><a href="/com/menu/c100.html">運命の人</a></div>
	<p class="list_text">運命の相手の特徴</p>
	<div class="price"><span>2,500円（税込）</span></div>
</div>
<div class="listbox">
	<p class="ttl"><a href="/com/menu/c200.html">結婚の時期</a></p>
	<p class="list_text">結婚のタイミングを占う</p>
	<div class="list_price"><span>3,200円</span></div>
</div>
</body>`

		rows, err := goquery.NewComExtractor().ExtractMenu(html)

		require.NoError(t, err)
		require.Len(t, rows, 2)

		assert.Equal(t, "運命の人", rows[0].Menu)
		assert.Equal(t, float64(2500), rows[0].Price)
		assert.Equal(t, "c100", rows[0].ID)
		assert.True(t, rows[0].IsTax)

		assert.Equal(t, "結婚の時期", rows[1].Menu)
		assert.Equal(t, float64(3200), rows[1].Price)
		assert.Equal(t, "c200", rows[1].ID)
		assert.False(t, rows[1].IsTax)
	})
}

func TestComExtractor_ExtractSections(t *testing.T) {
	t.Parallel()

	t.Run("client and partner names are empty", func(t *testing.T) {
		t.Parallel()

		html := `<div class="result_content frame01">
	<div class="result_cont_ttl"><span>あなたの宿命</span></div>
	<div class="center">生まれ持った宿命が導くのは、穏やかな愛の形です。</div>
</div>`

		sections, err := goquery.NewComExtractor().ExtractSections(html)

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, "あなたの宿命", sections[0].Title)
		assert.Equal(t, "", sections[0].ClientName)
		assert.Equal(t, "", sections[0].PartnerName)
	})

	t.Run("ignores result_content without a frame class", func(t *testing.T) {
		t.Parallel()

		html := `<div class="result_content">
	<div class="result_cont_ttl"><span>枠なし</span></div>
	<div class="center">本文</div>
</div>`

		sections, err := goquery.NewComExtractor().ExtractSections(html)

		require.NoError(t, err)
		assert.Empty(t, sections)
	})
}
