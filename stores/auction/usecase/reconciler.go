package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/x-xyz/auctionindexer/domain"
)

// chainFacts are the values a patch re-reads from the contract instead of trusting the event
type chainFacts struct {
	BidBalance decimal.Decimal
	EndTime    int64
}

type patchFunc func(a *domain.Auction, f chainFacts)

// decision is what applying one event to the stored record requires
type decision struct {
	// rebuild reconstructs the record from the contract before patching
	rebuild bool
	onList  bool
	patch   patchFunc
	// needsFacts is set when patch reads chainFacts
	needsFacts bool
	// bidder whose facts are read and whose bid list is refreshed, null for none
	account   domain.Address
	propagate bool
}

// decide maps an event and the currently stored record (nil when absent) to a decision.
// It performs no I/O.
func decide(ev domain.MarketplaceEvent, stored *domain.Auction) decision {
	missing := stored == nil

	switch e := ev.(type) {
	case *domain.ListEvent:
		return decision{rebuild: true, onList: true}

	case *domain.BidEvent:
		bidder := e.Bidder.ToLower()
		return decision{
			rebuild:    missing,
			needsFacts: true,
			account:    bidder,
			patch: func(a *domain.Auction, f chainFacts) {
				a.HighestBidder = bidder
				a.HighestBid = f.BidBalance
				a.EndTime = f.EndTime
			},
		}

	case *domain.SoldEvent:
		d := decision{rebuild: missing, account: e.Bidder.ToLower(), propagate: true}
		if !missing {
			bidder, price, token := e.Bidder.ToLower(), e.SalesPrice, e.Token.ToLower()
			d.patch = func(a *domain.Auction, _ chainFacts) {
				a.IsSettled = true
				a.IsSold = true
				a.HighestBidder = bidder
				a.HighestBid = price
				a.FinalHighestBid = price
				a.LastPrice = price
				a.LastToken = token
			}
		}
		return d

	case *domain.CloseAuctionEvent:
		d := decision{rebuild: missing, account: e.Bidder.ToLower()}
		if !missing {
			d.patch = func(a *domain.Auction, _ chainFacts) {
				a.IsSettled = true
				a.HighestBidder = domain.EmptyAddress
				a.HighestBid = decimal.Zero
			}
		}
		return d

	case *domain.WithdrawAllEvent:
		return decision{account: e.Account.ToLower()}

	case *domain.EmergencyWithdrawalEvent:
		d := decision{account: e.Bidder.ToLower()}
		if !missing {
			d.patch = func(a *domain.Auction, _ chainFacts) {
				a.HighestBidder = domain.EmptyAddress
			}
		}
		return d
	}
	return decision{}
}

// sameAuction compares two records by value, amounts by numeric equality
func sameAuction(a, b *domain.Auction) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.AuctionId == b.AuctionId &&
		a.NftToken == b.NftToken &&
		a.NftTokenId == b.NftTokenId &&
		a.Owner == b.Owner &&
		a.Token == b.Token &&
		a.TargetPrice.Equal(b.TargetPrice) &&
		a.ReservePrice.Equal(b.ReservePrice) &&
		a.EndTime == b.EndTime &&
		a.MinIncrement.Equal(b.MinIncrement) &&
		a.IsSettled == b.IsSettled &&
		a.HighestBidder == b.HighestBidder &&
		a.AuctionType == b.AuctionType &&
		a.IsSold == b.IsSold &&
		a.HighestBid.Equal(b.HighestBid) &&
		a.FinalHighestBid.Equal(b.FinalHighestBid) &&
		a.LastPrice.Equal(b.LastPrice) &&
		a.LastToken == b.LastToken &&
		sameNftData(a.NftData, b.NftData)
}

func sameNftData(a, b *domain.NftData) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func cloneAuction(a *domain.Auction) *domain.Auction {
	cp := *a
	if a.NftData != nil {
		d := *a.NftData
		cp.NftData = &d
	}
	return &cp
}
