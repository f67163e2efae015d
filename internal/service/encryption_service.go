package service

import (
	"bytes"
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strings"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

const (
	mockRandomLen  = 32
	mockHandleLen  = mockRandomLen + 32 // random || keccak tag
	sealedPlainLen = 8
)

// NewEncryptor builds the encryption backend named by backend ("mock" or "sealed").
// hexKey is only used by the sealed backend.
func NewEncryptor(backend, hexKey string) (ports.Encryptor, error) {
	switch backend {
	case "", string(domain.SchemeMock):
		return NewMockEncryptor(rand.Reader), nil
	case string(domain.SchemeSealed):
		return NewSealedEncryptor(hexKey)
	}
	return nil, fmt.Errorf("unknown encryption backend %q", backend)
}

// bindingPair validates both addresses and returns their 40-byte concatenation.
func bindingPair(contractAddress, userAddress string) ([]byte, error) {
	if !domain.IsAddress(contractAddress) {
		return nil, apperror.ErrInvalidAddress("contract", contractAddress)
	}
	if !domain.IsAddress(userAddress) {
		return nil, apperror.ErrInvalidAddress("user", userAddress)
	}
	pair := make([]byte, 0, 2*common.AddressLength)
	pair = append(pair, common.HexToAddress(contractAddress).Bytes()...)
	pair = append(pair, common.HexToAddress(userAddress).Bytes()...)
	return pair, nil
}

func sameBinding(a, b *domain.CiphertextHandle) bool {
	return strings.EqualFold(a.ContractAddress, b.ContractAddress) &&
		strings.EqualFold(a.UserAddress, b.UserAddress)
}

func checkValue(value uint64) error {
	if value > math.MaxUint32 {
		return apperror.ErrInvalidAmount()
	}
	return nil
}

func decodeHandle(hexHandle string) ([]byte, error) {
	raw, err := hexutil.Decode(hexHandle)
	if err != nil || len(raw) == 0 {
		return nil, apperror.Validation("Ciphertext must be 0x-prefixed hex")
	}
	return raw, nil
}

// ---- Mock backend ----

// MockEncryptor produces pseudorandom handles carrying a Keccak-256 tag over
// the bound pair. It cannot add or decrypt real values.
type MockEncryptor struct {
	rand io.Reader
}

// NewMockEncryptor creates the mock backend reading entropy from r.
func NewMockEncryptor(r io.Reader) *MockEncryptor {
	return &MockEncryptor{rand: r}
}

func (e *MockEncryptor) Scheme() domain.EncryptionScheme { return domain.SchemeMock }

func (e *MockEncryptor) Encrypt(ctx context.Context, contractAddress, userAddress string, value uint64) (*domain.CiphertextHandle, error) {
	pair, err := bindingPair(contractAddress, userAddress)
	if err != nil {
		return nil, err
	}
	if err := checkValue(value); err != nil {
		return nil, err
	}

	random := make([]byte, mockRandomLen)
	if _, err := io.ReadFull(e.rand, random); err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating handle: %w", err))
	}

	handle := append(random, crypto.Keccak256(pair, random)...)
	return &domain.CiphertextHandle{
		Handle:          handle,
		ContractAddress: contractAddress,
		UserAddress:     userAddress,
		Scheme:          domain.SchemeMock,
	}, nil
}

// Add verifies both operands and returns a fresh handle for the same pair.
func (e *MockEncryptor) Add(ctx context.Context, balance, tip *domain.CiphertextHandle) (*domain.CiphertextHandle, error) {
	if !sameBinding(balance, tip) {
		return nil, apperror.ErrBindingMismatch()
	}
	for _, h := range []*domain.CiphertextHandle{balance, tip} {
		if err := e.Verify(h, h.ContractAddress, h.UserAddress); err != nil {
			return nil, err
		}
	}
	return e.Encrypt(ctx, tip.ContractAddress, tip.UserAddress, 0)
}

func (e *MockEncryptor) Decrypt(ctx context.Context, handle *domain.CiphertextHandle, contractAddress, userAddress string) (uint64, error) {
	if err := e.Verify(handle, contractAddress, userAddress); err != nil {
		return 0, err
	}
	return 0, apperror.ErrNotConfigured("Decryption is unavailable with the mock encryption backend")
}

func (e *MockEncryptor) Verify(handle *domain.CiphertextHandle, contractAddress, userAddress string) error {
	pair, err := bindingPair(contractAddress, userAddress)
	if err != nil {
		return err
	}
	if handle == nil || len(handle.Handle) != mockHandleLen {
		return apperror.ErrBindingMismatch()
	}
	random, tag := handle.Handle[:mockRandomLen], handle.Handle[mockRandomLen:]
	if !bytes.Equal(tag, crypto.Keccak256(pair, random)) {
		return apperror.ErrBindingMismatch()
	}
	return nil
}

func (e *MockEncryptor) Parse(hexHandle string) (*domain.CiphertextHandle, error) {
	raw, err := decodeHandle(hexHandle)
	if err != nil {
		return nil, err
	}
	return &domain.CiphertextHandle{Handle: raw, Scheme: domain.SchemeMock}, nil
}

// ---- Sealed backend ----

// SealedEncryptor implements ports.Encryptor using AES-256-GCM. The bound
// (contract, user) pair is the associated data, so a handle opens only
// under the pair it was produced for.
type SealedEncryptor struct {
	aead cipher.AEAD
}

// NewSealedEncryptor creates the sealed backend.
// hexKey must be a 64-character hex string (32 bytes decoded).
func NewSealedEncryptor(hexKey string) (*SealedEncryptor, error) {
	key, err := hex.DecodeString(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decoding encryption key: %w", err)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("encryption key must be 32 bytes, got %d", len(key))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("creating cipher: %w", err)
	}
	aesGCM, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("creating GCM: %w", err)
	}
	return &SealedEncryptor{aead: aesGCM}, nil
}

func (e *SealedEncryptor) Scheme() domain.EncryptionScheme { return domain.SchemeSealed }

func (e *SealedEncryptor) handleLen() int {
	return e.aead.NonceSize() + sealedPlainLen + e.aead.Overhead()
}

func (e *SealedEncryptor) Encrypt(ctx context.Context, contractAddress, userAddress string, value uint64) (*domain.CiphertextHandle, error) {
	pair, err := bindingPair(contractAddress, userAddress)
	if err != nil {
		return nil, err
	}
	if err := checkValue(value); err != nil {
		return nil, err
	}
	return e.seal(pair, contractAddress, userAddress, value)
}

func (e *SealedEncryptor) seal(pair []byte, contractAddress, userAddress string, value uint64) (*domain.CiphertextHandle, error) {
	nonce := make([]byte, e.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("generating nonce: %w", err))
	}

	plaintext := make([]byte, sealedPlainLen)
	binary.BigEndian.PutUint64(plaintext, value)

	return &domain.CiphertextHandle{
		Handle:          e.aead.Seal(nonce, nonce, plaintext, pair),
		ContractAddress: contractAddress,
		UserAddress:     userAddress,
		Scheme:          domain.SchemeSealed,
	}, nil
}

func (e *SealedEncryptor) open(handle *domain.CiphertextHandle, contractAddress, userAddress string) (uint64, error) {
	pair, err := bindingPair(contractAddress, userAddress)
	if err != nil {
		return 0, err
	}
	if handle == nil || len(handle.Handle) != e.handleLen() {
		return 0, apperror.ErrBindingMismatch()
	}

	nonceSize := e.aead.NonceSize()
	nonce, sealed := handle.Handle[:nonceSize], handle.Handle[nonceSize:]
	plaintext, err := e.aead.Open(nil, nonce, sealed, pair)
	if err != nil {
		return 0, apperror.ErrBindingMismatch()
	}
	return binary.BigEndian.Uint64(plaintext), nil
}

// Add opens both operands and seals their sum under the balance's pair.
func (e *SealedEncryptor) Add(ctx context.Context, balance, tip *domain.CiphertextHandle) (*domain.CiphertextHandle, error) {
	if !sameBinding(balance, tip) {
		return nil, apperror.ErrBindingMismatch()
	}
	current, err := e.open(balance, balance.ContractAddress, balance.UserAddress)
	if err != nil {
		return nil, err
	}
	amount, err := e.open(tip, tip.ContractAddress, tip.UserAddress)
	if err != nil {
		return nil, err
	}
	if current > math.MaxUint64-amount {
		return nil, apperror.ErrEncryptionFailure(fmt.Errorf("balance overflow"))
	}

	pair, _ := bindingPair(balance.ContractAddress, balance.UserAddress)
	return e.seal(pair, balance.ContractAddress, balance.UserAddress, current+amount)
}

func (e *SealedEncryptor) Decrypt(ctx context.Context, handle *domain.CiphertextHandle, contractAddress, userAddress string) (uint64, error) {
	return e.open(handle, contractAddress, userAddress)
}

func (e *SealedEncryptor) Verify(handle *domain.CiphertextHandle, contractAddress, userAddress string) error {
	_, err := e.open(handle, contractAddress, userAddress)
	return err
}

func (e *SealedEncryptor) Parse(hexHandle string) (*domain.CiphertextHandle, error) {
	raw, err := decodeHandle(hexHandle)
	if err != nil {
		return nil, err
	}
	return &domain.CiphertextHandle{Handle: raw, Scheme: domain.SchemeSealed}, nil
}
