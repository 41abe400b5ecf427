package advisor

import (
	"fmt"
	"strings"

	"GiftVisionary/app/api/gift/internal/types"
)

const systemPrompt = `你是一个专业的送礼顾问助手，擅长根据用户需求推荐合适的礼物。请始终使用中文回复，并严格按照要求的 JSON 格式输出。`

// budgetGuidance maps the window midpoint onto one of four price tiers and
// returns the steering constraint injected into the prompt.
func budgetGuidance(budgetMin, budgetMax int64) string {
	avg := float64(budgetMin+budgetMax) / 2
	switch {
	case avg < 100:
		return "预算较低（100元以内），请推荐实用小物、创意文具、小饰品、零食礼盒等平价商品"
	case avg < 300:
		return "预算中等（100-300元），请推荐品牌化妆品、小家电、书籍、香薰、茶具等中档商品"
	case avg < 1000:
		return "预算较高（300-1000元），请推荐品牌护肤品、电子产品、品牌服饰、精品摆件等中高端商品"
	default:
		return "预算较高（1000元以上），请推荐高端品牌商品、数码产品、奢侈品、定制礼品等高端商品"
	}
}

func genderLabel(gender string) string {
	switch gender {
	case "male":
		return "男"
	case "female":
		return "女"
	default:
		return "未指定"
	}
}

func buildPrompt(req types.GiftRequest) string {
	avg := (req.BudgetMin + req.BudgetMax) / 2
	interests := strings.Join(req.Interests, "、")
	if interests == "" {
		interests = "未填写"
	}
	remarks := strings.TrimSpace(req.Remarks)
	if remarks == "" {
		remarks = "无"
	}

	var sb strings.Builder
	sb.WriteString("你是一位贴心的送礼顾问，请根据以下信息为用户推荐礼物。\n\n")
	sb.WriteString("【送礼对象信息】\n")
	sb.WriteString(fmt.Sprintf("- 昵称：%s\n", req.Nickname))
	sb.WriteString(fmt.Sprintf("- 关系：%s\n", req.Relation))
	sb.WriteString(fmt.Sprintf("- 性别：%s\n", genderLabel(req.Gender)))
	sb.WriteString(fmt.Sprintf("- 送礼场合：%s\n", req.Occasion))
	sb.WriteString(fmt.Sprintf("- 预算范围：%d - %d 元（平均约 %d 元）\n", req.BudgetMin, req.BudgetMax, avg))
	sb.WriteString(fmt.Sprintf("- 兴趣爱好：%s\n", interests))
	sb.WriteString(fmt.Sprintf("- 备注信息：%s\n\n", remarks))
	sb.WriteString("【重要要求 - 预算匹配】\n")
	sb.WriteString(budgetGuidance(req.BudgetMin, req.BudgetMax))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("**关键约束**：你生成的所有关键词对应的商品，其市场价格必须符合预算范围 %d-%d 元。\n", req.BudgetMin, req.BudgetMax))
	sb.WriteString("- 如果预算较低（<100元），不要推荐\"戴森吹风机\"、\"SK-II神仙水\"等高价商品\n")
	sb.WriteString("- 如果预算较高（>1000元），不要推荐\"定制马克杯\"、\"小饰品\"等低价商品\n")
	sb.WriteString("- 确保每个关键词搜索出的商品价格都在预算区间内\n\n")
	sb.WriteString("【任务要求】\n")
	sb.WriteString("1. 根据以上信息，生成 5-8 个具体的、可以直接在电商平台搜索的礼物关键词\n")
	sb.WriteString("2. 关键词必须是中文，每个关键词控制在10个字以内\n")
	sb.WriteString("3. 避免\"礼物\"、\"礼品\"等笼统词汇，要具体到产品名，如\"乐高花束\"、\"雅诗兰黛小棕瓶\"、\"小米手环8\"\n")
	sb.WriteString(fmt.Sprintf("4. **每个关键词必须对应符合预算价位的商品**，确保搜索结果的价格在 %d-%d 元范围内\n", req.BudgetMin, req.BudgetMax))
	sb.WriteString("5. 同时提供一句温暖治愈的推荐理由（30字左右）\n\n")
	sb.WriteString("请严格按以下 JSON 格式输出：\n")
	sb.WriteString(`{"keywords": ["关键词1", "关键词2"], "reasoning": "推荐理由"}`)
	return sb.String()
}
