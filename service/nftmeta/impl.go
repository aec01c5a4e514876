package nftmeta

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/domain/keys"
	"github.com/x-xyz/auctionindexer/service/cache"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTtl = time.Hour
)

type client struct {
	baseUrl string
	client  *http.Client
	timeout time.Duration
	series  map[domain.Address]string
	cache   cache.Service
}

func NewClient(cfg ClientCfg) domain.NftMetaUseCase {
	series := DefaultSeries
	if len(cfg.Series) > 0 {
		series = make(map[domain.Address]string, len(cfg.Series))
		for k, v := range cfg.Series {
			series[domain.Address(k).ToLower()] = v
		}
	}
	if cfg.HttpClient == nil {
		cfg.HttpClient = http.DefaultClient
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.CacheTtl <= 0 {
		cfg.CacheTtl = defaultCacheTtl
	}
	if cfg.Cache == nil {
		cfg.Cache = provider.NewLocal(keys.PfxNftMeta, 8)
	}

	return &client{
		baseUrl: strings.TrimRight(cfg.BaseUrl, "/"),
		client:  cfg.HttpClient,
		timeout: cfg.Timeout,
		series:  series,
		cache: cache.New(cache.ServiceConfig{
			Ttl:   cfg.CacheTtl,
			Pfx:   keys.PfxNftMeta,
			Cache: cfg.Cache,
		}),
	}
}

func (c *client) Get(ctx bCtx.Ctx, nftToken domain.Address, tokenId int64) (*domain.NftData, error) {
	series, ok := c.series[nftToken.ToLower()]
	if !ok {
		return nil, &domain.MetadataFetchError{NftToken: nftToken, TokenId: tokenId, Err: domain.ErrUnknownNftToken}
	}

	key := keys.TokenKey(series, tokenId)
	data := &domain.NftData{}
	if err := c.cache.GetByFunc(ctx, key, data, func() (interface{}, error) {
		return c.fetch(ctx, series, tokenId)
	}); err != nil {
		return nil, &domain.MetadataFetchError{NftToken: nftToken, TokenId: tokenId, Err: err}
	}
	return data, nil
}

func (c *client) fetch(ctx bCtx.Ctx, series string, tokenId int64) (*domain.NftData, error) {
	params := url.Values{"tokenId": {strconv.FormatInt(tokenId, 10)}}
	u := fmt.Sprintf("%s/nft/%s?%s", c.baseUrl, url.PathEscape(series), params.Encode())

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, err
	}

	resp := []nftDataResp{}
	if err := json.Unmarshal(body, &resp); err != nil {
		ctx.WithFields(log.Fields{"url": u, "err": err}).Error("json.Unmarshal failed")
		return nil, xerrors.Errorf("decode %s: %w", u, err)
	}
	if len(resp) == 0 {
		return nil, ErrEmptyResponse
	}
	return resp[0].toDomain(), nil
}

func (c *client) get(ctx bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(ctx, c.timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("NewRequestWithContext failed")
		return nil, err
	}
	resp, err := c.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("client.Do failed")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Error("unexpected status code")
		return nil, ErrStatusCodeNotOk
	}
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Error("failed to read body")
		return nil, err
	}
	return body, nil
}
