package pricer

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const systemPrompt = `你是一个价格查询助手。请只返回数字，不要包含任何文字说明。`

const defaultTimeout = 5 * time.Second

var numberPattern = regexp.MustCompile(`\d+(?:\.\d+)?`)

// Pricer asks a chat model for the typical market price of a keyword. It is a
// best-effort oracle: callers must handle the absent case themselves.
type Pricer struct {
	model   model.BaseChatModel
	timeout time.Duration
}

func New(m model.BaseChatModel, timeout time.Duration) *Pricer {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Pricer{model: m, timeout: timeout}
}

// Estimate returns the rounded market price in yuan, or false when the model
// is unavailable, the call fails, or no positive number can be extracted.
func (p *Pricer) Estimate(ctx context.Context, keyword string) (int64, bool) {
	log := logx.WithContext(ctx)
	if p.model == nil {
		log.Infow("pricer: chat model unavailable, skipping price estimate",
			logx.Field("keyword", keyword))
		return 0, false
	}

	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	messages := []*schema.Message{
		schema.SystemMessage(systemPrompt),
		schema.UserMessage(buildPrompt(keyword)),
	}
	out, err := p.model.Generate(callCtx, messages)
	if err != nil {
		log.Errorf("pricer: price query failed (%s): %v", keyword, err)
		return 0, false
	}
	if out == nil {
		return 0, false
	}

	price, ok := parsePrice(out.Content)
	if !ok {
		log.Errorf("pricer: no parseable price in response for %q", keyword)
	}
	return price, ok
}

func buildPrompt(keyword string) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("请告诉我\"%s\"这个商品在市场上的常见价格或平均价格。\n\n", keyword))
	sb.WriteString("要求：\n")
	sb.WriteString("1. 只返回一个数字（人民币价格，单位：元）\n")
	sb.WriteString("2. 不要包含任何文字说明，只返回纯数字\n")
	sb.WriteString("3. 如果该商品有多种价位，请返回最常见的价位\n")
	sb.WriteString("4. 如果该商品价格范围较大，请返回价格区间的中位数\n\n")
	sb.WriteString("示例：\n")
	sb.WriteString("- 输入：\"iPhone 15\" -> 输出：5999\n")
	sb.WriteString("- 输入：\"乐高积木\" -> 输出：299\n")
	sb.WriteString("- 输入：\"香薰蜡烛\" -> 输出：89\n\n")
	sb.WriteString("请直接返回数字，不要有任何其他内容。")
	return sb.String()
}

// parsePrice extracts the first numeric token, rounds it, and rejects
// non-positive values.
func parsePrice(content string) (int64, bool) {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}

	token := numberPattern.FindString(content)
	if token == "" {
		return 0, false
	}
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	price := int64(math.Round(value))
	if price <= 0 {
		return 0, false
	}
	return price, true
}
