package pricer

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
)

type stubModel struct {
	content string
	err     error
}

func (s *stubModel) Generate(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.Message, error) {
	if s.err != nil {
		return nil, s.err
	}
	return schema.AssistantMessage(s.content, nil), nil
}

func (s *stubModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("stream not implemented")
}

func TestEstimateWithoutModel(t *testing.T) {
	p := New(nil, 0)
	price, ok := p.Estimate(context.Background(), "乐高积木")

	assert.False(t, ok)
	assert.Zero(t, price)
}

func TestEstimateParsesModelReply(t *testing.T) {
	p := New(&stubModel{content: "5999"}, 0)
	price, ok := p.Estimate(context.Background(), "iPhone 15")

	assert.True(t, ok)
	assert.Equal(t, int64(5999), price)
}

func TestEstimateSwallowsModelError(t *testing.T) {
	p := New(&stubModel{err: errors.New("timeout")}, 0)
	_, ok := p.Estimate(context.Background(), "香薰蜡烛")

	assert.False(t, ok)
}

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    int64
		ok      bool
	}{
		{name: "plain integer", content: "5999", want: 5999, ok: true},
		{name: "decimal rounds up", content: "88.6", want: 89, ok: true},
		{name: "decimal rounds down", content: "88.4", want: 88, ok: true},
		{name: "half rounds away from zero", content: "88.5", want: 89, ok: true},
		{name: "embedded in prose", content: "大约 299 元左右", want: 299, ok: true},
		{name: "first token wins", content: "199-399", want: 199, ok: true},
		{name: "code fenced", content: "```\n450\n```", want: 450, ok: true},
		{name: "zero rejected", content: "0", ok: false},
		{name: "no digits", content: "无法确定价格", ok: false},
		{name: "empty", content: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			price, ok := parsePrice(tt.content)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, price)
			}
		})
	}
}

func TestBuildPromptNamesKeyword(t *testing.T) {
	assert.Contains(t, buildPrompt("小米手环8"), "小米手环8")
}
