package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")
	// ErrInvalidAddress will throw if an address param is not a hex address
	ErrInvalidAddress = errors.New("Invalid address")

	ErrUnknownNftToken = errors.New("unknown nft token")
	// ErrNullNftToken marks an auction snapshot from a node that has not seen the auction yet
	ErrNullNftToken = errors.New("auction nft token is the null address")
	ErrInvalidResult = errors.New("unexpected contract call result")
	ErrCronRunning   = errors.New("cron sweep already running")
)

// ContractCallFailed is returned once every retry of a contract read failed
type ContractCallFailed struct {
	Method  string
	Args    []interface{}
	Retries int
	LastErr error
}

func (e *ContractCallFailed) Error() string {
	return fmt.Sprintf("contract call %s%v failed after %d retries: %v", e.Method, e.Args, e.Retries, e.LastErr)
}

func (e *ContractCallFailed) Unwrap() error {
	return e.LastErr
}

// MetadataFetchError aborts the reconstruction of a single auction
type MetadataFetchError struct {
	NftToken Address
	TokenId  int64
	Err      error
}

func (e *MetadataFetchError) Error() string {
	return fmt.Sprintf("fetch nft metadata %s/%d: %v", e.NftToken, e.TokenId, e.Err)
}

func (e *MetadataFetchError) Unwrap() error {
	return e.Err
}
