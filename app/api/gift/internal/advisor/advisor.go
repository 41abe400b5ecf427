package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"GiftVisionary/app/api/gift/internal/types"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	missingKeyReasoning = "请先配置 AI 服务的 API Key 才能使用智能推荐功能哦！"
	networkReasoning    = "AI 似乎在思考人生（网络或 Key 异常），但我为您挑选了一些经典的通用好礼！"

	defaultTimeout = 5 * time.Second
)

// fallbackKeywords is the fixed degrade set returned on every failure path.
var fallbackKeywords = []string{"高档巧克力", "精美香薰", "定制马克杯", "拍立得", "乐高"}

// Advisor turns a gift request into shoppable keywords through a chat model.
// Generate never fails: every error path resolves to the fixed fallback set.
type Advisor struct {
	model   model.BaseChatModel
	timeout time.Duration
}

// New builds an Advisor. A nil model means the credential is absent and every
// call degrades to the configuration-warning fallback.
func New(m model.BaseChatModel, timeout time.Duration) *Advisor {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Advisor{model: m, timeout: timeout}
}

func (a *Advisor) Generate(ctx context.Context, req types.GiftRequest) types.AiKeywordResponse {
	log := logx.WithContext(ctx)
	if a.model == nil {
		log.Infow("advisor: chat model unavailable, using fallback keywords")
		return fallbackResponse(missingKeyReasoning)
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(buildPrompt(req)),
	}
	out, err := a.model.Generate(callCtx, messages)
	if err != nil {
		log.Errorf("advisor: keyword generation failed: %v", err)
		return fallbackResponse(networkReasoning)
	}
	if out == nil || strings.TrimSpace(out.Content) == "" {
		log.Errorf("advisor: model returned empty content")
		return fallbackResponse(networkReasoning)
	}

	resp, err := parseKeywordResponse(out.Content)
	if err != nil {
		log.Errorf("advisor: malformed keyword response: %v", err)
		return fallbackResponse(networkReasoning)
	}
	return resp
}

func fallbackResponse(reasoning string) types.AiKeywordResponse {
	keywords := make([]string, len(fallbackKeywords))
	copy(keywords, fallbackKeywords)
	return types.AiKeywordResponse{Keywords: keywords, Reasoning: reasoning}
}

func parseKeywordResponse(content string) (types.AiKeywordResponse, error) {
	var resp types.AiKeywordResponse
	if err := json.Unmarshal([]byte(stripCodeFence(content)), &resp); err != nil {
		return types.AiKeywordResponse{}, err
	}

	keywords := make([]string, 0, len(resp.Keywords))
	for _, kw := range resp.Keywords {
		if trimmed := strings.TrimSpace(kw); trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	if len(keywords) == 0 {
		return types.AiKeywordResponse{}, errors.New("no keywords in response")
	}
	resp.Keywords = keywords
	resp.Reasoning = strings.TrimSpace(resp.Reasoning)
	return resp, nil
}

// stripCodeFence unwraps markdown code fences some models insist on adding
// around JSON output.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
