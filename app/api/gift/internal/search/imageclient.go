package search

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/rest/httpc"
)

const defaultImageTimeout = 8 * time.Second

// ImageClient queries the apihz image-by-keyword endpoint. Listings sourced
// from it only need the first result URL.
type ImageClient struct {
	endpoint string
	id       string
	key      string
	limit    int
	timeout  time.Duration
}

type imageSearchReply struct {
	Code int      `json:"code"`
	Msg  string   `json:"msg"`
	Res  []string `json:"res"`
}

func NewImageClient(endpoint, id, key string, limit int, timeout time.Duration) *ImageClient {
	if limit <= 0 {
		limit = 1
	}
	if timeout <= 0 {
		timeout = defaultImageTimeout
	}
	return &ImageClient{endpoint: endpoint, id: id, key: key, limit: limit, timeout: timeout}
}

// Search returns up to limit image URLs for the keyword, normalized to
// fully-qualified https URLs.
func (c *ImageClient) Search(ctx context.Context, keyword string) ([]string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	params := url.Values{}
	params.Set("id", c.id)
	params.Set("key", c.key)
	params.Set("words", keyword)
	params.Set("page", "1")
	params.Set("type", "1")
	params.Set("limit", strconv.Itoa(c.limit))

	resp, err := httpc.Do(callCtx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image search http status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var reply imageSearchReply
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil, err
	}
	if reply.Code != http.StatusOK {
		return nil, fmt.Errorf("image search code %d: %s", reply.Code, reply.Msg)
	}

	urls := make([]string, 0, len(reply.Res))
	for _, u := range reply.Res {
		if u == "" {
			continue
		}
		if strings.HasPrefix(u, "//") {
			u = "https:" + u
		}
		urls = append(urls, u)
		if len(urls) >= c.limit {
			break
		}
	}
	return urls, nil
}
