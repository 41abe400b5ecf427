package store

import (
	"context"
	"encoding/json"
	"testing"

	"GiftVisionary/app/api/gift/internal/types"
	"GiftVisionary/app/common/consts/biz"
	"GiftVisionary/app/common/consts/errno"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xerrors "github.com/zeromicro/x/errors"
)

func momRequest() types.GiftRequest {
	return types.GiftRequest{
		Nickname:  "妈妈",
		Relation:  "母亲",
		Occasion:  "生日",
		BudgetMin: 100,
		BudgetMax: 300,
	}
}

func sampleProduct(id string) types.Product {
	return types.Product{
		Id:     id,
		Title:  "乐高花束",
		Price:  299,
		Source: types.SourceJD,
	}
}

func errCode(t *testing.T, err error) int {
	t.Helper()
	cm, ok := err.(*xerrors.CodeMsg)
	require.True(t, ok, "expected *errors.CodeMsg, got %T", err)
	return cm.Code
}

func TestUpsertCreatesThenMatchesByNickname(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	first, created, err := s.Upsert(ctx, momRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, first.Id)
	assert.NotNil(t, first.LastRequest)

	again := momRequest()
	again.Relation = "妈妈大人"
	second, created, err := s.Upsert(ctx, again)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, "妈妈大人", second.Relation)

	assert.Len(t, s.List(ctx), 1)
}

func TestUpsertForceNewCreatesSibling(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	first, _, err := s.Upsert(ctx, momRequest())
	require.NoError(t, err)

	req := momRequest()
	req.ForceNew = true
	second, created, err := s.Upsert(ctx, req)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEqual(t, first.Id, second.Id)

	assert.Len(t, s.List(ctx), 2)
}

func TestUpsertPinsByProfileIdAcrossRename(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	first, _, err := s.Upsert(ctx, momRequest())
	require.NoError(t, err)

	req := momRequest()
	req.Nickname = "老妈"
	req.ProfileId = first.Id
	renamed, created, err := s.Upsert(ctx, req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.Id, renamed.Id)
	assert.Equal(t, "老妈", renamed.Nickname)

	assert.Len(t, s.List(ctx), 1)
}

func TestGet(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	created, _, err := s.Upsert(ctx, momRequest())
	require.NoError(t, err)

	got, err := s.Get(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, created.Nickname, got.Nickname)

	_, err = s.Get(ctx, "missing")
	assert.Equal(t, errno.ProfileNotFound, errCode(t, err))
}

func TestToggleLikeRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	_, _, err := s.Upsert(ctx, momRequest())
	require.NoError(t, err)

	liked, count, err := s.ToggleLike(ctx, "妈妈", sampleProduct("p1"))
	require.NoError(t, err)
	assert.True(t, liked)
	assert.Equal(t, 1, count)

	liked, count, err = s.ToggleLike(ctx, "妈妈", sampleProduct("p1"))
	require.NoError(t, err)
	assert.False(t, liked)
	assert.Zero(t, count)
}

func TestToggleLikeErrors(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	_, _, err := s.ToggleLike(ctx, "  ", sampleProduct("p1"))
	assert.Equal(t, errno.InvalidParam, errCode(t, err))

	_, _, err = s.ToggleLike(ctx, "陌生人", sampleProduct("p1"))
	assert.Equal(t, errno.ProfileNotFound, errCode(t, err))
}

func TestRemoveFavorite(t *testing.T) {
	ctx := context.Background()
	s := New(NewMemConn())

	profile, _, err := s.Upsert(ctx, momRequest())
	require.NoError(t, err)
	_, _, err = s.ToggleLike(ctx, "妈妈", sampleProduct("p1"))
	require.NoError(t, err)

	require.NoError(t, s.RemoveFavorite(ctx, profile.Id, "p1"))

	got, err := s.Get(ctx, profile.Id)
	require.NoError(t, err)
	assert.Empty(t, got.SavedProducts)

	err = s.RemoveFavorite(ctx, profile.Id, "p1")
	assert.Equal(t, errno.ProductNotSaved, errCode(t, err))

	err = s.RemoveFavorite(ctx, "missing", "p1")
	assert.Equal(t, errno.ProfileNotFound, errCode(t, err))
}

func TestLoadIgnoresUnknownPayloadVersion(t *testing.T) {
	ctx := context.Background()
	conn := NewMemConn()

	raw, err := json.Marshal(envelope{
		Version:  biz.ProfilePayloadVersion + 1,
		Profiles: []types.RecipientProfile{{Id: "rp_1", Nickname: "妈妈"}},
	})
	require.NoError(t, err)
	require.NoError(t, conn.SetCtx(ctx, biz.ProfileNamespace, string(raw)))

	s := New(conn)
	assert.Empty(t, s.List(ctx))
}

func TestLoadIgnoresCorruptPayload(t *testing.T) {
	ctx := context.Background()
	conn := NewMemConn()
	require.NoError(t, conn.SetCtx(ctx, biz.ProfileNamespace, "not-json"))

	s := New(conn)
	assert.Empty(t, s.List(ctx))
}
