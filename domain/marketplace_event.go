package domain

import (
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

type EventKind string

const (
	EventList                EventKind = "List"
	EventBid                 EventKind = "Bid"
	EventSold                EventKind = "Sold"
	EventCloseAuction        EventKind = "CloseAuction"
	EventWithdrawAll         EventKind = "WithdrawAll"
	EventEmergencyWithdrawal EventKind = "EmergencyWithdrawal"
)

// EventMeta locates a decoded event in the chain
type EventMeta struct {
	BlockNumber uint64
	TxHash      common.Hash
	LogIndex    uint
}

// MarketplaceEvent is one decoded marketplace log. Variants embed EventBase and
// are always handled by pointer.
type MarketplaceEvent interface {
	Kind() EventKind
	GetAuctionId() AuctionId
	Meta() EventMeta
	isMarketplaceEvent()
}

type EventBase struct {
	AuctionId AuctionId
	EventMeta EventMeta
}

func (e EventBase) GetAuctionId() AuctionId { return e.AuctionId }
func (e EventBase) Meta() EventMeta         { return e.EventMeta }
func (EventBase) isMarketplaceEvent()       {}

type ListEvent struct {
	EventBase
}

func (ListEvent) Kind() EventKind { return EventList }

type BidEvent struct {
	EventBase
	// Amount is informational, the bid balance is always re-read from the contract
	Amount decimal.Decimal
	Bidder Address
}

func (BidEvent) Kind() EventKind { return EventBid }

type SoldEvent struct {
	EventBase
	SalesPrice decimal.Decimal
	Token      Address
	Bidder     Address
}

func (SoldEvent) Kind() EventKind { return EventSold }

type CloseAuctionEvent struct {
	EventBase
	Bidder Address
}

func (CloseAuctionEvent) Kind() EventKind { return EventCloseAuction }

type WithdrawAllEvent struct {
	EventBase
	Account Address
}

func (WithdrawAllEvent) Kind() EventKind { return EventWithdrawAll }

type EmergencyWithdrawalEvent struct {
	EventBase
	Bidder Address
}

func (EmergencyWithdrawalEvent) Kind() EventKind { return EventEmergencyWithdrawal }
