package query

import (
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/x-xyz/auctionindexer/base/ctx"
	"github.com/x-xyz/auctionindexer/base/database/mongoclient"
	"github.com/x-xyz/auctionindexer/domain"
)

var (
	mockCTX = ctx.Background()
)

const (
	mockTable = domain.Table("querytest")
	dbName    = "testdb"
)

type dummy struct {
	Key    string          `bson:"key"`
	Rank   int             `bson:"rank"`
	Amount decimal.Decimal `bson:"amount"`
}

func TestGetSortOption(t *testing.T) {
	req := require.New(t)
	req.Equal(bson.D{{Key: "endTime", Value: -1}, {Key: "auctionId", Value: 1}}, getSortOption("-endTime", "", "auctionId"))
	req.Empty(getSortOption(""))
}

type querySuite struct {
	suite.Suite
	im *impl
}

func (q *querySuite) SetupTest() {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		q.T().Skip("MONGO_TEST_URI not set")
	}
	q.im = &impl{
		client:     mongoclient.MustConnectMongoClient(uri, "admin", dbName, false, true, 1),
		checkIndex: false,
	}
	q.Require().NoError(q.im.coll(mockTable).Drop(mockCTX))
}

func (q *querySuite) TestUpsertFindOne() {
	d := dummy{Key: "a", Rank: 1, Amount: decimal.RequireFromString("1.25")}
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"key": "a"}, d))

	// whole document replaced
	d.Rank = 2
	q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"key": "a"}, d))

	res := dummy{}
	q.Require().NoError(q.im.FindOne(mockCTX, mockTable, bson.M{"key": "a"}, &res))
	q.Equal(2, res.Rank)
	q.True(d.Amount.Equal(res.Amount))

	q.Equal(ErrNotFound, q.im.FindOne(mockCTX, mockTable, bson.M{"key": "b"}, &res))

	n, err := q.im.Count(mockCTX, mockTable, bson.M{})
	q.NoError(err)
	q.Equal(1, n)
}

func (q *querySuite) TestSearch() {
	for i, k := range []string{"c", "a", "b"} {
		q.Require().NoError(q.im.Upsert(mockCTX, mockTable, bson.M{"key": k}, dummy{Key: k, Rank: i}))
	}

	res := []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 2, []string{"-key"}, bson.M{}, &res))
	q.Len(res, 2)
	q.Equal("c", res[0].Key)
	q.Equal("b", res[1].Key)

	res = []dummy{}
	q.Require().NoError(q.im.Search(mockCTX, mockTable, 0, 0, []string{"key"}, bson.M{"key": bson.M{"$gt": "a"}}, &res))
	q.Len(res, 2)
	q.Equal("b", res[0].Key)
}

func (q *querySuite) TestEnsureIndexes() {
	models := []mongo.IndexModel{{Keys: bson.D{{Key: "key", Value: 1}}, Options: options.Index().SetUnique(true)}}
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, models))
	// idempotent
	q.Require().NoError(q.im.EnsureIndexes(mockCTX, mockTable, models))
	q.NoError(q.im.Ping(mockCTX))
}

func TestQuerySuite(t *testing.T) {
	suite.Run(t, new(querySuite))
}
