package svc

import (
	"context"
	"time"

	"GiftVisionary/app/api/gift/internal/advisor"
	"GiftVisionary/app/api/gift/internal/config"
	"GiftVisionary/app/api/gift/internal/mq"
	"GiftVisionary/app/api/gift/internal/pipeline"
	"GiftVisionary/app/api/gift/internal/pricer"
	"GiftVisionary/app/api/gift/internal/search"
	"GiftVisionary/app/api/gift/internal/store"

	"github.com/cloudwego/eino-ext/components/model/ark"
	"github.com/cloudwego/eino/components/model"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/redis"
)

type ServiceContext struct {
	Config   config.Config
	Pipeline *pipeline.Pipeline
	Store    *store.ProfileStore
	Events   *mq.Producer
}

func NewServiceContext(c config.Config) *ServiceContext {
	logx.MustSetup(c.LogConf)

	chatModel := newChatModel(c.ChatModel, "advisor")
	priceModel := chatModel
	if c.PriceModel.APIKey != "" {
		priceModel = newChatModel(c.PriceModel, "pricer")
	}

	adv := advisor.New(chatModel, time.Duration(c.ChatModel.TimeoutMs)*time.Millisecond)
	orc := pricer.New(priceModel, time.Duration(c.PriceModel.TimeoutMs)*time.Millisecond)

	var imageClient *search.ImageClient
	if c.ImageSearch.Id != "" && c.ImageSearch.Key != "" {
		imageClient = search.NewImageClient(c.ImageSearch.Endpoint, c.ImageSearch.Id,
			c.ImageSearch.Key, c.ImageSearch.Limit,
			time.Duration(c.ImageSearch.TimeoutMs)*time.Millisecond)
	} else {
		logx.Infow("image search credential absent, image tier disabled")
	}
	searcher := search.NewSearcher(
		search.NewImageTier(imageClient, orc, nil),
		search.NewMockTier(nil),
	)

	var conn store.Conn
	if c.RedisConf.Host != "" {
		conn = redis.MustNewRedis(c.RedisConf)
	} else {
		logx.Infow("redis not configured, profiles held in process memory")
		conn = store.NewMemConn()
	}
	profileStore := store.New(conn)

	events := mq.NewProducer(c.KafkaConf.Broker, c.KafkaConf.RecommendTopic)

	return &ServiceContext{
		Config: c,
		Pipeline: pipeline.New(adv, searcher, profileStore, events,
			time.Duration(c.Pipeline.AnalyzeDelayMs)*time.Millisecond,
			time.Duration(c.Pipeline.PreviewDelayMs)*time.Millisecond),
		Store:  profileStore,
		Events: events,
	}
}

func (s *ServiceContext) Close() {
	if err := s.Events.Close(); err != nil {
		logx.Errorw("close recommendation producer failed", logx.Field("err", err))
	}
}

func newChatModel(c config.ModelConf, role string) model.BaseChatModel {
	if c.APIKey == "" {
		logx.Infow("chat model credential absent, running in fallback mode",
			logx.Field("role", role))
		return nil
	}
	cm, err := ark.NewChatModel(context.Background(), &ark.ChatModelConfig{
		BaseURL: c.BaseUrl,
		APIKey:  c.APIKey,
		Model:   c.Model,
	})
	if err != nil {
		logx.Errorw("init ark chat model failed",
			logx.Field("role", role), logx.Field("err", err))
		return nil
	}
	logx.Infow("ark chat model initialized", logx.Field("role", role))
	return cm
}
