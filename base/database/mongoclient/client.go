package mongoclient

import (
	"context"
	"crypto/tls"
	"runtime"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/x-xyz/auctionindexer/base/log"
	"github.com/x-xyz/auctionindexer/base/metrics"
)

const (
	mgSocketTimeout  = 60 * time.Second
	mgConnectTimeout = 30 * time.Second
	// used when the config leaves the multiplier unset
	defaultPoolMultiplier = 8
)

var met = metrics.New("mongo")

// Client wraps mongo.Client together with the database every collection lives in
type Client struct {
	DbName string
	*mongo.Client
}

// MustConnectMongoClient panics when ConnectMongoClient fails
func MustConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) *Client {
	cli, err := ConnectMongoClient(uri, authDBName, dbName, ssl, setSafe, poolSizeMultiplier)
	if err != nil {
		log.Log().WithFields(log.Fields{"mongoURI": uri, "err": err}).Panic("fail to dial Mongo")
	}
	return cli
}

// poolSize splits the total pool, NumCPU*multiplier, across the hosts of the uri
func poolSize(hosts int, multiplier float64) uint64 {
	if multiplier <= 0 {
		multiplier = defaultPoolMultiplier
	}
	if hosts <= 0 {
		hosts = 1
	}
	total := int(float64(runtime.NumCPU()) * multiplier)
	if total < 1 {
		total = 1
	}
	return uint64((total + hosts - 1) / hosts)
}

// poolMonitor counts pool events instead of logging each one
func poolMonitor() *event.PoolMonitor {
	return &event.PoolMonitor{Event: func(evt *event.PoolEvent) {
		switch evt.Type {
		case event.GetFailed, event.ConnectionClosed, event.PoolCleared:
			met.BumpSum("pool.event", 1, "type", evt.Type, "reason", evt.Reason)
		}
	}}
}

func clientOptions(uri, authDBName string, conn connstring.ConnString, ssl, setSafe bool, multiplier float64) *options.ClientOptions {
	opts := options.Client().
		ApplyURI(uri).
		SetSocketTimeout(mgSocketTimeout).
		SetConnectTimeout(mgConnectTimeout).
		SetRegistry(Registry).
		SetPoolMonitor(poolMonitor()).
		SetRetryWrites(true)

	// the uri may carry credentials without an authSource
	if conn.Username != "" && conn.AuthSource == "" {
		opts.SetAuth(options.Credential{
			AuthMechanism:           conn.AuthMechanism,
			AuthMechanismProperties: conn.AuthMechanismProperties,
			Username:                conn.Username,
			Password:                conn.Password,
			PasswordSet:             conn.PasswordSet,
			AuthSource:              authDBName,
		})
	}

	size := poolSize(len(conn.Hosts), multiplier)
	opts.SetMinPoolSize(size / 4)
	opts.SetMaxPoolSize(size)

	if ssl {
		opts.SetTLSConfig(&tls.Config{})
	}
	if setSafe {
		// auction and checkpoint writes must survive a primary step down
		opts.SetWriteConcern(writeconcern.New(writeconcern.WMajority()))
	}
	return opts
}

// ConnectMongoClient dials the uri and checks that dbName can be listed
func ConnectMongoClient(uri, authDBName, dbName string, ssl, setSafe bool, poolSizeMultiplier float64) (*Client, error) {
	logger := log.Log().WithField("dbName", dbName)
	conn, err := connstring.Parse(uri)
	if err != nil {
		logger.WithField("err", err).Error("fail to parse connstring")
		return nil, err
	}
	logger = logger.WithField("mongoHosts", conn.Hosts)

	opts := clientOptions(uri, authDBName, conn, ssl, setSafe, poolSizeMultiplier)
	logger.WithField("maxPoolSize", *opts.MaxPoolSize).Info("mongo driver pool size")

	ctx, cancel := context.WithTimeout(context.Background(), mgConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		logger.WithField("err", err).Error("fail to connect mongo db")
		return nil, err
	}

	if _, err := client.Database(dbName).ListCollectionNames(ctx, bson.D{}); err != nil {
		logger.WithField("err", err).Error("fail to test mongo db")
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo connected")
	return &Client{
		Client: client,
		DbName: dbName,
	}, nil
}
