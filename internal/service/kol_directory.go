package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"

	"gopkg.in/yaml.v3"
)

// DefaultKols is the built-in creator table.
var DefaultKols = []domain.KolProfile{
	{ID: "rand", DisplayName: "Rand Hindi", Handle: "@randhindi", WalletAddress: "0x8ba1f109551bD432803012645ac136c22C3e0b1", Category: "Founder", Avatar: "👨‍💼", Description: "Zama Founder"},
	{ID: "bella", DisplayName: "Bella Thorne", Handle: "@bellathorne", WalletAddress: "0x9c72f0949a6b6c8b3F7d0e2F8a1c9B5E4D7F3A2", Category: "Creator", Avatar: "👩‍🎤", Description: "OnlyFans Creator"},
	{ID: "branch", DisplayName: "Branch", Handle: "@Branch", WalletAddress: "0x7a3B5c8E9f2d1a4b6C8d0e3F7A5B2C9D1E4F6A8", Category: "Creator", Avatar: "🌿", Description: "Content Creator"},
	{ID: "1", DisplayName: "Crypto Alice", Handle: "@cryptoalice", WalletAddress: "0x742d35Cc6634C0532925a3b844Bc9e7595f0bEb", Category: "DeFi", Avatar: "👩‍💼"},
	{ID: "2", DisplayName: "NFT Bob", Handle: "@nftbob", WalletAddress: "0x8626f6940E2eb28930eFb4CeF49B2d1F2C9C1199", Category: "NFT", Avatar: "🎨"},
	{ID: "3", DisplayName: "Trading Charlie", Handle: "@tradingcharlie", WalletAddress: "0xdD2FD4581271e230360230F9337D5c0430Bf44C0", Category: "Trading", Avatar: "📊"},
	{ID: "4", DisplayName: "Web3 Diana", Handle: "@web3diana", WalletAddress: "0xbDA5747bFD65F08deb54cb465eB87D40e51B197E", Category: "Web3", Avatar: "🚀"},
}

type kolDirectory struct {
	kols []domain.KolProfile
	byID map[string]int
}

// NewKolDirectory creates a directory over a fixed table. The slice is copied.
func NewKolDirectory(kols []domain.KolProfile) (ports.KolDirectory, error) {
	d := &kolDirectory{
		kols: append([]domain.KolProfile(nil), kols...),
		byID: make(map[string]int, len(kols)),
	}
	for i, k := range d.kols {
		if k.ID == "" {
			return nil, fmt.Errorf("kol at index %d has no id", i)
		}
		if _, dup := d.byID[k.ID]; dup {
			return nil, fmt.Errorf("duplicate kol id %q", k.ID)
		}
		d.byID[k.ID] = i
	}
	return d, nil
}

// LoadKolDirectory reads a YAML (or JSON) list of profiles from path.
// An empty path yields the built-in table.
func LoadKolDirectory(path string) (ports.KolDirectory, error) {
	if path == "" {
		return NewKolDirectory(DefaultKols)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading kol file: %w", err)
	}
	var kols []domain.KolProfile
	if err := yaml.Unmarshal(data, &kols); err != nil {
		return nil, fmt.Errorf("parsing kol file: %w", err)
	}
	return NewKolDirectory(kols)
}

func (d *kolDirectory) List(ctx context.Context) []domain.KolProfile {
	return append([]domain.KolProfile(nil), d.kols...)
}

func (d *kolDirectory) Get(ctx context.Context, id string) *domain.KolProfile {
	i, ok := d.byID[id]
	if !ok {
		return nil
	}
	k := d.kols[i]
	return &k
}

func (d *kolDirectory) FindByAddress(ctx context.Context, address string) *domain.KolProfile {
	for _, k := range d.kols {
		if strings.EqualFold(k.WalletAddress, address) {
			k := k
			return &k
		}
	}
	return nil
}
