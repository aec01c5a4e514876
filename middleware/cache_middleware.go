package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
	"github.com/x-xyz/auctionindexer/domain/keys"
	"github.com/x-xyz/auctionindexer/service/cache"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
	"github.com/x-xyz/auctionindexer/service/redis"
)

// HeaderXCache tells whether a response came from the cache
const HeaderXCache = "X-Cache"

var (
	httpCacheProvider provider.Provider
	httpCacheOnce     sync.Once

	// listing pages stay well below freecache's entry limit
	httpCacheLocalMB = 16

	cacheMet = metrics.New("httpcache")
)

// SetupCache must run before CacheHttp, a nil redis keeps the cache in process only
func SetupCache(redis redis.Service) {
	httpCacheOnce.Do(func() {
		local := provider.NewLocal(keys.PfxHttp, httpCacheLocalMB)
		if redis == nil {
			httpCacheProvider = local
			return
		}
		httpCacheProvider = provider.NewLayered(local, provider.NewRedis(redis))
	})
}

// cachedResponse is what CacheHttp stores per request url
type cachedResponse struct {
	Body   []byte
	Header http.Header
}

// recorder copies the body into buf while writing it through
type recorder struct {
	http.ResponseWriter
	buf    bytes.Buffer
	w      io.Writer
	status int
}

func newRecorder(rw http.ResponseWriter) *recorder {
	r := &recorder{ResponseWriter: rw, status: http.StatusOK}
	r.w = io.MultiWriter(rw, &r.buf)
	return r
}

func (r *recorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *recorder) Write(b []byte) (int, error) {
	return r.w.Write(b)
}

func (r *recorder) Flush() {
	r.ResponseWriter.(http.Flusher).Flush()
}

func (r *recorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return r.ResponseWriter.(http.Hijacker).Hijack()
}

// requestKey hashes the path and the query with sorted values, so parameter order does not matter
func requestKey(u *url.URL) string {
	params := u.Query()
	for _, vs := range params {
		sort.Strings(vs)
	}
	hash := fnv.New64a()
	hash.Write([]byte(u.Path))
	hash.Write([]byte{'?'})
	// Encode sorts by key
	hash.Write([]byte(params.Encode()))
	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves responses below 400 from cache for ttl
func CacheHttp(ttl time.Duration) echo.MiddlewareFunc {
	if httpCacheProvider == nil {
		panic("need SetupCache before using CacheHttp")
	}

	svc := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   keys.PfxHttp,
		Cache: httpCacheProvider,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			bc := c.Get("ctx").(ctx.Ctx)
			key := requestKey(c.Request().URL)
			path := c.Path()

			hit := cachedResponse{}
			switch err := svc.Get(bc, key, &hit); err {
			case nil:
				cacheMet.BumpSum("hit", 1, "path", path)
				for k, v := range hit.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().Header().Set(HeaderXCache, "HIT")
				c.Response().WriteHeader(http.StatusOK)
				_, err := c.Response().Write(hit.Body)
				return err
			case cache.ErrNotFound:
			default:
				bc.WithField("err", err).Error("cache.Get failed")
			}

			cacheMet.BumpSum("miss", 1, "path", path)
			c.Response().Header().Set(HeaderXCache, "MISS")
			rec := newRecorder(c.Response().Writer)
			c.Response().Writer = rec
			if err := next(c); err != nil {
				c.Error(err)
			}
			if rec.status >= http.StatusBadRequest {
				return nil
			}

			header := rec.Header().Clone()
			header.Del(HeaderXCache)
			if err := svc.Set(bc, key, cachedResponse{Body: rec.buf.Bytes(), Header: header}); err != nil {
				bc.WithFields(log.Fields{"err": err, "path": path}).Error("cache.Set failed")
			}
			return nil
		}
	}
}
