package nftmeta

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/domain"
	"github.com/x-xyz/auctionindexer/service/cache/provider"
)

const hammer = domain.Address("0xcA56AF4bde480B3c177E1A4115189F261C2af034")

type nftmetaSuite struct {
	suite.Suite
	srv  *httptest.Server
	hits int32
	im   domain.NftMetaUseCase
}

func (s *nftmetaSuite) SetupTest() {
	atomic.StoreInt32(&s.hits, 0)
	s.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&s.hits, 1)
		switch {
		case r.URL.Path == "/nft/hammer" && r.URL.Query().Get("tokenId") == "7":
			w.Write([]byte(`[{"id":7,"series":"hammer","name":"Hammer #7","image":"ipfs://x","external_url":"https://x","rarity":3,"tier":2}]`))
		case r.URL.Path == "/nft/hammer" && r.URL.Query().Get("tokenId") == "8":
			w.Write([]byte(`[{"id":"8","series":"hammer"}]`))
		case r.URL.Path == "/nft/hammer" && r.URL.Query().Get("tokenId") == "9":
			w.Write([]byte(`[]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	s.im = NewClient(ClientCfg{BaseUrl: s.srv.URL + "/", Cache: provider.NewLocal("test", 1)})
}

func (s *nftmetaSuite) TearDownTest() {
	s.srv.Close()
}

func (s *nftmetaSuite) TestGet() {
	data, err := s.im.Get(bCtx.Background(), hammer, 7)
	s.Require().NoError(err)
	s.Equal("7", data.Id)
	s.Equal("Hammer #7", data.Name)
	s.Equal(3, data.Rarity)
	s.Equal(2, data.Tier)
	s.Equal("https://x", data.ExternalUrl)

	// cached
	_, err = s.im.Get(bCtx.Background(), hammer, 7)
	s.NoError(err)
	s.Equal(int32(1), atomic.LoadInt32(&s.hits))
}

func (s *nftmetaSuite) TestStringId() {
	data, err := s.im.Get(bCtx.Background(), hammer, 8)
	s.Require().NoError(err)
	s.Equal("8", data.Id)
}

func (s *nftmetaSuite) TestFailures() {
	var fetchErr *domain.MetadataFetchError

	_, err := s.im.Get(bCtx.Background(), hammer, 9)
	s.True(errors.As(err, &fetchErr))
	s.True(errors.Is(err, ErrEmptyResponse))

	_, err = s.im.Get(bCtx.Background(), hammer, 10)
	s.True(errors.Is(err, ErrStatusCodeNotOk))

	_, err = s.im.Get(bCtx.Background(), domain.Address("0x0000000000000000000000000000000000000001"), 1)
	s.True(errors.As(err, &fetchErr))
	s.True(errors.Is(err, domain.ErrUnknownNftToken))
	s.Equal(int64(1), fetchErr.TokenId)
}

func TestNftmeta(t *testing.T) {
	suite.Run(t, new(nftmetaSuite))
}
