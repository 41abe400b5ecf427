package config

import (
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
	"github.com/zeromicro/go-zero/rest"
)

type Config struct {
	rest.RestConf

	ChatModel  ModelConf
	PriceModel ModelConf `json:",optional"`

	ImageSearch ImageSearchConf `json:",optional"`

	RedisConf redis.RedisConf `json:",optional"`

	KafkaConf KafkaConf `json:",optional"`

	Pipeline PipelineConf `json:",optional"`

	LogConf logx.LogConf `json:",optional"`
}

type ModelConf struct {
	BaseUrl   string `json:",optional"`
	APIKey    string `json:",optional"`
	Model     string `json:",optional"`
	TimeoutMs int64  `json:",default=5000"`
}

type ImageSearchConf struct {
	Endpoint  string `json:",default=https://cn.apihz.cn/api/img/apihzimgsougou.php"`
	Id        string `json:",optional"`
	Key       string `json:",optional"`
	Limit     int    `json:",default=1"`
	TimeoutMs int64  `json:",default=8000"`
}

type KafkaConf struct {
	Broker         []string `json:",optional"`
	RecommendTopic string   `json:",optional"`
}

// PipelineConf holds the cosmetic pacing delays. Zero them for headless use.
type PipelineConf struct {
	AnalyzeDelayMs int64 `json:",default=2000"`
	PreviewDelayMs int64 `json:",default=1500"`
}
