package anthropic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ysaito/uracheck"
	"github.com/ysaito/uracheck/anthropic"
)

func TestBuildSystemPrompt(t *testing.T) {
	t.Parallel()

	t.Run("includes name lines when names are present", func(t *testing.T) {
		t.Parallel()

		prompt := anthropic.BuildSystemPrompt("花子", "太郎")

		assert.Contains(t, prompt, "相談者は花子")
		assert.Contains(t, prompt, "相性を占う相手は太郎")
		assert.Contains(t, prompt, "「あなた」は花子のことを指しています")
		assert.Contains(t, prompt, "「あの人」は太郎のことを指しています")
	})

	t.Run("omits name lines when names are empty", func(t *testing.T) {
		t.Parallel()

		prompt := anthropic.BuildSystemPrompt("", "")

		assert.NotContains(t, prompt, "相談者は")
		assert.NotContains(t, prompt, "相性を占う相手は")
		assert.NotContains(t, prompt, "「あなた」")
		assert.NotContains(t, prompt, "「あの人」")
		assert.Contains(t, prompt, "渡される文章は占いのテキストです")
	})

	t.Run("names are independent", func(t *testing.T) {
		t.Parallel()

		prompt := anthropic.BuildSystemPrompt("花子", "")

		assert.Contains(t, prompt, "相談者は花子")
		assert.NotContains(t, prompt, "相性を占う相手は")
	})

	t.Run("carries the output format contract", func(t *testing.T) {
		t.Parallel()

		prompt := anthropic.BuildSystemPrompt("", "")

		assert.Contains(t, prompt, "title_content_relevance(high、medium、low)")
		assert.Contains(t, prompt, "reason(そう判断した理由。箇条書きにしない)")
	})
}

func TestBuildUserPrompt(t *testing.T) {
	t.Parallel()

	prompt := anthropic.BuildUserPrompt("ふたりの相性", "おふたりは強い絆で結ばれています。")

	assert.Equal(t, "title: ふたりの相性\ncontent: おふたりは強い絆で結ばれています。", prompt)
}

func TestParseResponse(t *testing.T) {
	t.Parallel()

	t.Run("well-formed verdict", func(t *testing.T) {
		t.Parallel()

		result, err := anthropic.ParseResponse(`{"title_content_relevance": "high", "reason": "タイトルの内容が本文に記載されている"}`)

		require.NoError(t, err)
		assert.Equal(t, uracheck.TierHigh, result.Tier)
		assert.Equal(t, "タイトルの内容が本文に記載されている", result.Reason)
	})

	t.Run("non-JSON text is an external error", func(t *testing.T) {
		t.Parallel()

		_, err := anthropic.ParseResponse("I think the relevance is high.")

		require.Error(t, err)
		assert.Equal(t, uracheck.EEXTERNAL, uracheck.ErrorCode(err))
	})

	t.Run("missing tier is an external error", func(t *testing.T) {
		t.Parallel()

		_, err := anthropic.ParseResponse(`{"reason": "no tier"}`)

		require.Error(t, err)
		assert.Equal(t, uracheck.EEXTERNAL, uracheck.ErrorCode(err))
	})

	t.Run("missing reason is an external error", func(t *testing.T) {
		t.Parallel()

		_, err := anthropic.ParseResponse(`{"title_content_relevance": "low"}`)

		require.Error(t, err)
		assert.Equal(t, uracheck.EEXTERNAL, uracheck.ErrorCode(err))
	})
}
