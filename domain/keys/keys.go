package keys

import (
	"strconv"
	"strings"
)

const (
	delimiter = ":"

	PfxHealthCheck = "healthcheck"
	PfxNftMeta     = "nftmeta"
	PfxHttp        = "http"
)

// RedisKey joins components with ":"
func RedisKey(components ...string) string {
	return strings.Join(components, delimiter)
}

func HealthCheckKey(name string) string {
	return RedisKey(PfxHealthCheck, name)
}

// TokenKey addresses one token of a metadata series, the cache service adds PfxNftMeta
func TokenKey(series string, tokenId int64) string {
	return RedisKey(series, strconv.FormatInt(tokenId, 10))
}

// GetPrefix returns at most the first two components of key, used as a metric tag.
// A key without delimiter has no prefix.
func GetPrefix(key string) string {
	s := strings.SplitN(key, delimiter, 3)
	switch len(s) {
	case 1:
		return ""
	case 2:
		return s[0]
	default:
		return s[0] + delimiter + s[1]
	}
}
