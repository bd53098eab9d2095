// Package anthropic implements relevance scoring using the Anthropic API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/ysaito/uracheck"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-5-sonnet-20240620"

const maxTokens = 1000

// Ensure Analyzer implements uracheck.RelevanceAnalyzer at compile time.
var _ uracheck.RelevanceAnalyzer = (*Analyzer)(nil)

// Analyzer implements uracheck.RelevanceAnalyzer using Claude.
type Analyzer struct {
	client sdk.Client
	model  string
}

// NewAnalyzer creates a new Analyzer. An empty model selects DefaultModel.
func NewAnalyzer(apiKey, model string) *Analyzer {
	if model == "" {
		model = DefaultModel
	}
	return &Analyzer{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Analyze scores how well a section title matches its content.
func (a *Analyzer) Analyze(ctx context.Context, req uracheck.RelevanceRequest) (uracheck.RelevanceResult, error) {
	msg, err := a.client.Messages.New(ctx, sdk.MessageNewParams{
		Model:       sdk.Model(a.model),
		MaxTokens:   maxTokens,
		Temperature: sdk.Float(0),
		System: []sdk.TextBlockParam{
			{Text: BuildSystemPrompt(req.ClientName, req.PartnerName)},
		},
		Messages: []sdk.MessageParam{
			sdk.NewUserMessage(sdk.NewTextBlock(BuildUserPrompt(req.Title, req.Content))),
		},
	})
	if err != nil {
		return uracheck.RelevanceResult{}, err
	}

	var sb strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}

	return ParseResponse(sb.String())
}

// BuildSystemPrompt builds the scoring instructions. The client and partner
// lines are only included when the page carried those names.
func BuildSystemPrompt(clientName, partnerName string) string {
	var sb strings.Builder

	sb.WriteString("<instruction>\n")
	sb.WriteString("あなたのタスクはtitleとcontentの関連度が高いか確認することです\n")
	sb.WriteString("関連度はtitleの内容がcontentにちゃんと記載されていれば高くなります。\n")
	sb.WriteString("ユーザーに出す本番用の文章なので少しでも違和感を感じたら忌憚なく厳しく判断してください\n")
	sb.WriteString("</instruction>\n\n")

	sb.WriteString("<attention>\n")
	sb.WriteString(" - 渡される文章は占いのテキストです\n")
	if clientName != "" {
		fmt.Fprintf(&sb, " - 相談者は%s\n", clientName)
	}
	if partnerName != "" {
		fmt.Fprintf(&sb, " - 相性を占う相手は%s\n", partnerName)
	}
	if clientName != "" {
		fmt.Fprintf(&sb, " - 文章中に出てくる「あなた」は%sのことを指しています\n", clientName)
	}
	if partnerName != "" {
		fmt.Fprintf(&sb, " - 文章中に出てくる「あの人」は%sのことを指しています\n", partnerName)
	}
	sb.WriteString("</attention>\n\n")

	sb.WriteString("<output>\n")
	sb.WriteString("json形式で下記のフォーマットで出力して\n")
	sb.WriteString(" - title_content_relevance(high、medium、low)\n")
	sb.WriteString(" - reason(そう判断した理由。箇条書きにしない)\n")
	sb.WriteString("</output>")

	return sb.String()
}

// BuildUserPrompt builds the title/content payload.
func BuildUserPrompt(title, content string) string {
	return fmt.Sprintf("title: %s\ncontent: %s", title, content)
}

// ParseResponse decodes the model's JSON verdict. Unparseable or structurally
// incomplete responses fail with EEXTERNAL.
func ParseResponse(text string) (uracheck.RelevanceResult, error) {
	var result uracheck.RelevanceResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return uracheck.RelevanceResult{}, uracheck.Errorf(uracheck.EEXTERNAL, "invalid response format: %v", err)
	}
	if result.Tier == "" || result.Reason == "" {
		return uracheck.RelevanceResult{}, uracheck.Errorf(uracheck.EEXTERNAL, "incomplete response structure")
	}
	return result, nil
}
