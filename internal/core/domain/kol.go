package domain

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// KolProfile is a tippable creator ("key opinion leader") from the static directory.
type KolProfile struct {
	ID            string `json:"id" yaml:"id"`
	DisplayName   string `json:"name" yaml:"name"`
	WalletAddress string `json:"address" yaml:"address"`
	Handle        string `json:"handle,omitempty" yaml:"handle"`
	Category      string `json:"category,omitempty" yaml:"category"`
	Avatar        string `json:"avatar,omitempty" yaml:"avatar"`
	Description   string `json:"description,omitempty" yaml:"description"`
}

// Tippable reports whether the profile carries a well-formed account address.
func (k KolProfile) Tippable() bool {
	return IsAddress(k.WalletAddress)
}

// IsAddress reports whether s is a 0x-prefixed 20-byte hex account address.
func IsAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// IsZeroAddress reports whether s is the all-zero account.
func IsZeroAddress(s string) bool {
	return IsAddress(s) && common.HexToAddress(s) == (common.Address{})
}
