package validator

import (
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"golang.org/x/xerrors"

	"github.com/x-xyz/auctionindexer/domain"
)

// TagIdList validates a comma separated list of non-negative integers
const TagIdList = "id_list"

var idListRe = regexp.MustCompile(`^\s*\d+\s*(,\s*\d+\s*)*$`)

// IsValidAddress accepts a 0x prefixed 20 bytes hex address in any letter case
func IsValidAddress(address string) bool {
	return strings.HasPrefix(address, "0x") && common.IsHexAddress(address)
}

func IsValidIdList(s string) bool {
	return idListRe.MatchString(s)
}

// NewCustomValidator registers the custom tags on v
func NewCustomValidator(v *validator.Validate) echo.Validator {
	_ = v.RegisterValidation(TagIdList, func(fl validator.FieldLevel) bool {
		return IsValidIdList(fl.Field().String())
	})
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

// Validate fails with an error wrapping domain.ErrBadParamInput
func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return xerrors.Errorf("%s: %w", err.Error(), domain.ErrBadParamInput)
	}
	return nil
}
