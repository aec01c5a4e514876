package nftmeta

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
)

var (
	ErrStatusCodeNotOk = errors.New("http.status != 200")
	ErrEmptyResponse   = errors.New("metadata response is an empty array")
)

// DefaultSeries maps the known nft tokens to their metadata series
var DefaultSeries = map[domain.Address]string{
	domain.Address("0xca56af4bde480b3c177e1a4115189f261c2af034"): "hammer",
	domain.Address("0x13e14f6ec8fee53b69ebd4bd69e35ffcfe8960de"): "1",
}

type ClientCfg struct {
	BaseUrl    string
	HttpClient *http.Client
	Timeout    time.Duration
	// Series overrides DefaultSeries when not empty. Keys are matched case-insensitively.
	Series   map[string]string
	Cache    provider.Provider
	CacheTtl time.Duration
}

// nftDataResp accepts both a string and a numeric id
type nftDataResp struct {
	Id          json.RawMessage `json:"id"`
	Series      string          `json:"series"`
	Description string          `json:"description"`
	ExternalUrl string          `json:"external_url"`
	Image       string          `json:"image"`
	Name        string          `json:"name"`
	Rarity      int             `json:"rarity"`
	Tier        int             `json:"tier"`
}

func (r *nftDataResp) toDomain() *domain.NftData {
	return &domain.NftData{
		Id:          rawId(r.Id),
		Series:      r.Series,
		Description: r.Description,
		ExternalUrl: r.ExternalUrl,
		Image:       r.Image,
		Name:        r.Name,
		Rarity:      r.Rarity,
		Tier:        r.Tier,
	}
}

func rawId(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return strings.Trim(string(raw), `"`)
}
