package abi

import (
	"errors"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

var MarketplaceABI abi.ABI

var ErrMissingTopic = errors.New("log is missing indexed topics")

var marketplaceABI = `[
{"type":"event","anonymous":false,"name":"List","inputs":[{"type":"uint256","name":"auctionId","indexed":true}]},
{"type":"event","anonymous":false,"name":"Bid","inputs":[{"type":"uint256","name":"auctionId","indexed":true},{"type":"uint256","name":"amount"},{"type":"address","name":"highestBidder"}]},
{"type":"event","anonymous":false,"name":"Sold","inputs":[{"type":"uint256","name":"auctionId","indexed":true},{"type":"uint256","name":"salesPrice"},{"type":"address","name":"token"},{"type":"address","name":"highestBidder"}]},
{"type":"event","anonymous":false,"name":"CloseAuction","inputs":[{"type":"uint256","name":"auctionId","indexed":true},{"type":"address","name":"highestBidder"}]},
{"type":"event","anonymous":false,"name":"WithdrawAll","inputs":[{"type":"uint256","name":"auctionId","indexed":true},{"type":"address","name":"account"}]},
{"type":"event","anonymous":false,"name":"EmergencyWithdrawal","inputs":[{"type":"uint256","name":"auctionId","indexed":true},{"type":"address","name":"highestBidder"}]},
{"type":"function","name":"auctionsLength","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"auctions","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[
	{"type":"address","name":"nftToken"},
	{"type":"uint256","name":"nftTokenId"},
	{"type":"address","name":"owner"},
	{"type":"address","name":"token"},
	{"type":"uint256","name":"targetPrice"},
	{"type":"uint256","name":"reservePrice"},
	{"type":"uint256","name":"endTime"},
	{"type":"uint256","name":"minIncrement"},
	{"type":"bool","name":"isSettled"},
	{"type":"address","name":"highestBidder"},
	{"type":"uint8","name":"auctionType"},
	{"type":"bool","name":"isSold"}]},
{"type":"function","name":"lastPrice","stateMutability":"view","inputs":[{"type":"address","name":""},{"type":"uint256","name":""}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"lastToken","stateMutability":"view","inputs":[{"type":"address","name":""},{"type":"uint256","name":""}],"outputs":[{"type":"address","name":""}]},
{"type":"function","name":"finalHighestBid","stateMutability":"view","inputs":[{"type":"uint256","name":""}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"bidBalance","stateMutability":"view","inputs":[{"type":"uint256","name":""},{"type":"address","name":""}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"getUserBidsLength","stateMutability":"view","inputs":[{"type":"address","name":"user"}],"outputs":[{"type":"uint256","name":""}]},
{"type":"function","name":"getUserBids","stateMutability":"view","inputs":[{"type":"address","name":"user"},{"type":"uint256","name":"cursor"},{"type":"uint256","name":"size"}],"outputs":[{"type":"uint256[]","name":""},{"type":"uint256[]","name":""}]}
]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(marketplaceABI))
	if err != nil {
		panic("Failed to parse marketplace abi")
	}
	MarketplaceABI = _abi
}

type MarketplaceListLog struct {
	AuctionId *big.Int // indexed
}

type MarketplaceBidLog struct {
	AuctionId     *big.Int // indexed
	Amount        *big.Int
	HighestBidder common.Address
}

type MarketplaceSoldLog struct {
	AuctionId     *big.Int // indexed
	SalesPrice    *big.Int
	Token         common.Address
	HighestBidder common.Address
}

type MarketplaceCloseAuctionLog struct {
	AuctionId     *big.Int // indexed
	HighestBidder common.Address
}

type MarketplaceWithdrawAllLog struct {
	AuctionId *big.Int // indexed
	Account   common.Address
}

type MarketplaceEmergencyWithdrawalLog struct {
	AuctionId     *big.Int // indexed
	HighestBidder common.Address
}

func indexedAuctionId(log *types.Log) (*big.Int, error) {
	if len(log.Topics) < 2 {
		return nil, ErrMissingTopic
	}
	return new(big.Int).SetBytes(log.Topics[1].Bytes()), nil
}

func ToMarketplaceListLog(log *types.Log) (*MarketplaceListLog, error) {
	id, err := indexedAuctionId(log)
	if err != nil {
		return nil, err
	}
	return &MarketplaceListLog{AuctionId: id}, nil
}

func ToMarketplaceBidLog(log *types.Log) (*MarketplaceBidLog, error) {
	var l MarketplaceBidLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "Bid", log.Data); err != nil {
		return nil, err
	}
	id, err := indexedAuctionId(log)
	if err != nil {
		return nil, err
	}
	l.AuctionId = id
	return &l, nil
}

func ToMarketplaceSoldLog(log *types.Log) (*MarketplaceSoldLog, error) {
	var l MarketplaceSoldLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "Sold", log.Data); err != nil {
		return nil, err
	}
	id, err := indexedAuctionId(log)
	if err != nil {
		return nil, err
	}
	l.AuctionId = id
	return &l, nil
}

func ToMarketplaceCloseAuctionLog(log *types.Log) (*MarketplaceCloseAuctionLog, error) {
	var l MarketplaceCloseAuctionLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "CloseAuction", log.Data); err != nil {
		return nil, err
	}
	id, err := indexedAuctionId(log)
	if err != nil {
		return nil, err
	}
	l.AuctionId = id
	return &l, nil
}

func ToMarketplaceWithdrawAllLog(log *types.Log) (*MarketplaceWithdrawAllLog, error) {
	var l MarketplaceWithdrawAllLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "WithdrawAll", log.Data); err != nil {
		return nil, err
	}
	id, err := indexedAuctionId(log)
	if err != nil {
		return nil, err
	}
	l.AuctionId = id
	return &l, nil
}

func ToMarketplaceEmergencyWithdrawalLog(log *types.Log) (*MarketplaceEmergencyWithdrawalLog, error) {
	var l MarketplaceEmergencyWithdrawalLog
	if err := MarketplaceABI.UnpackIntoInterface(&l, "EmergencyWithdrawal", log.Data); err != nil {
		return nil, err
	}
	id, err := indexedAuctionId(log)
	if err != nil {
		return nil, err
	}
	l.AuctionId = id
	return &l, nil
}
