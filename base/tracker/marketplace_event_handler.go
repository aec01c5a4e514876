package tracker

import (
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"golang.org/x/xerrors"

	"github.com/x-xyz/auctionindexer/base/abi"
	"github.com/x-xyz/auctionindexer/domain"
)

var ErrUnknownEvent = errors.New("unknown marketplace event")

var (
	listTopic                = abi.MarketplaceABI.Events["List"].ID
	bidTopic                 = abi.MarketplaceABI.Events["Bid"].ID
	soldTopic                = abi.MarketplaceABI.Events["Sold"].ID
	closeAuctionTopic        = abi.MarketplaceABI.Events["CloseAuction"].ID
	withdrawAllTopic         = abi.MarketplaceABI.Events["WithdrawAll"].ID
	emergencyWithdrawalTopic = abi.MarketplaceABI.Events["EmergencyWithdrawal"].ID
)

// marketplaceTopics matches any of the six marketplace events in the first topic
func marketplaceTopics() [][]common.Hash {
	return [][]common.Hash{{
		listTopic,
		bidTopic,
		soldTopic,
		closeAuctionTopic,
		withdrawAllTopic,
		emergencyWithdrawalTopic,
	}}
}

// eventBase rejects auction ids past int64, they cannot be stored
func eventBase(l *types.Log, auctionId *big.Int) (domain.EventBase, error) {
	id, err := domain.BigToInt64(auctionId)
	if err != nil {
		return domain.EventBase{}, xerrors.Errorf("auction id in tx %s: %w", l.TxHash.Hex(), err)
	}
	return domain.EventBase{
		AuctionId: domain.AuctionId(id),
		EventMeta: domain.EventMeta{
			BlockNumber: l.BlockNumber,
			TxHash:      l.TxHash,
			LogIndex:    l.Index,
		},
	}, nil
}

// decodeMarketplaceLog turns one raw log into its typed event, amounts in token units
func decodeMarketplaceLog(l *types.Log) (domain.MarketplaceEvent, error) {
	if len(l.Topics) == 0 {
		return nil, abi.ErrMissingTopic
	}

	switch l.Topics[0] {
	case listTopic:
		e, err := abi.ToMarketplaceListLog(l)
		if err != nil {
			return nil, err
		}
		base, err := eventBase(l, e.AuctionId)
		if err != nil {
			return nil, err
		}
		return &domain.ListEvent{EventBase: base}, nil

	case bidTopic:
		e, err := abi.ToMarketplaceBidLog(l)
		if err != nil {
			return nil, err
		}
		base, err := eventBase(l, e.AuctionId)
		if err != nil {
			return nil, err
		}
		return &domain.BidEvent{
			EventBase: base,
			Amount:    domain.WeiToDecimal(e.Amount),
			Bidder:    domain.ToAddress(e.HighestBidder),
		}, nil

	case soldTopic:
		e, err := abi.ToMarketplaceSoldLog(l)
		if err != nil {
			return nil, err
		}
		base, err := eventBase(l, e.AuctionId)
		if err != nil {
			return nil, err
		}
		return &domain.SoldEvent{
			EventBase:  base,
			SalesPrice: domain.WeiToDecimal(e.SalesPrice),
			Token:      domain.ToAddress(e.Token),
			Bidder:     domain.ToAddress(e.HighestBidder),
		}, nil

	case closeAuctionTopic:
		e, err := abi.ToMarketplaceCloseAuctionLog(l)
		if err != nil {
			return nil, err
		}
		base, err := eventBase(l, e.AuctionId)
		if err != nil {
			return nil, err
		}
		return &domain.CloseAuctionEvent{
			EventBase: base,
			Bidder:    domain.ToAddress(e.HighestBidder),
		}, nil

	case withdrawAllTopic:
		e, err := abi.ToMarketplaceWithdrawAllLog(l)
		if err != nil {
			return nil, err
		}
		base, err := eventBase(l, e.AuctionId)
		if err != nil {
			return nil, err
		}
		return &domain.WithdrawAllEvent{
			EventBase: base,
			Account:   domain.ToAddress(e.Account),
		}, nil

	case emergencyWithdrawalTopic:
		e, err := abi.ToMarketplaceEmergencyWithdrawalLog(l)
		if err != nil {
			return nil, err
		}
		base, err := eventBase(l, e.AuctionId)
		if err != nil {
			return nil, err
		}
		return &domain.EmergencyWithdrawalEvent{
			EventBase: base,
			Bidder:    domain.ToAddress(e.HighestBidder),
		}, nil
	}
	return nil, xerrors.Errorf("%w: topic %s", ErrUnknownEvent, l.Topics[0].Hex())
}
