package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/rs/zerolog"
)

// MaxDecryptDurationDays bounds the validity window of a decryption grant.
const MaxDecryptDurationDays = 365

const decryptPrimaryType = "UserDecryptRequestVerification"

// DecryptOptions names the EIP-712 domain grants are signed under and the
// contracts whose handles are public.
type DecryptOptions struct {
	ChainID           uint64
	VerifyingContract string
	PublicContracts   []string
}

// DecryptServiceImpl implements ports.DecryptService.
type DecryptServiceImpl struct {
	enc  ports.Encryptor
	opts DecryptOptions
	now  func() time.Time
	log  zerolog.Logger
}

// NewDecryptService creates a new DecryptServiceImpl.
func NewDecryptService(enc ports.Encryptor, opts DecryptOptions, log zerolog.Logger) *DecryptServiceImpl {
	return &DecryptServiceImpl{enc: enc, opts: opts, now: time.Now, log: log}
}

// UserDecryptTypedData builds the typed data a wallet signs to grant
// time-boxed decryption rights over the listed contracts.
func UserDecryptTypedData(chainID uint64, verifyingContract string, req ports.UserDecryptRequest) apitypes.TypedData {
	contracts := make([]interface{}, len(req.ContractAddresses))
	for i, addr := range req.ContractAddresses {
		contracts[i] = addr
	}
	chain := strconv.FormatUint(chainID, 10)

	return apitypes.TypedData{
		Types: apitypes.Types{
			"EIP712Domain": {
				{Name: "name", Type: "string"},
				{Name: "version", Type: "string"},
				{Name: "chainId", Type: "uint256"},
				{Name: "verifyingContract", Type: "address"},
			},
			decryptPrimaryType: {
				{Name: "publicKey", Type: "bytes"},
				{Name: "contractAddresses", Type: "address[]"},
				{Name: "contractsChainId", Type: "uint256"},
				{Name: "startTimestamp", Type: "uint256"},
				{Name: "durationDays", Type: "uint256"},
			},
		},
		PrimaryType: decryptPrimaryType,
		Domain: apitypes.TypedDataDomain{
			Name:              "Decryption",
			Version:           "1",
			ChainId:           math.NewHexOrDecimal256(int64(chainID)),
			VerifyingContract: verifyingContract,
		},
		Message: apitypes.TypedDataMessage{
			"publicKey":         req.PublicKey,
			"contractAddresses": contracts,
			"contractsChainId":  chain,
			"startTimestamp":    strconv.FormatInt(req.StartTimestamp, 10),
			"durationDays":      strconv.FormatInt(req.DurationDays, 10),
		},
	}
}

// UserDecrypt checks the signed grant and decrypts the handle for its bound user.
func (s *DecryptServiceImpl) UserDecrypt(ctx context.Context, req ports.UserDecryptRequest) (*ports.UserDecryptResult, error) {
	if err := validateDecryptRequest(req); err != nil {
		return nil, err
	}
	if !containsAddress(req.ContractAddresses, req.ContractAddress) {
		return nil, apperror.ErrDecryptForbidden("contract is not covered by the grant")
	}

	now := s.now().Unix()
	if now < req.StartTimestamp {
		return nil, apperror.ErrDecryptForbidden("grant is not valid yet")
	}
	if now > req.StartTimestamp+req.DurationDays*24*60*60 {
		return nil, apperror.ErrDecryptForbidden("grant has expired")
	}

	signer, err := s.recoverSigner(req)
	if err != nil {
		return nil, err
	}
	if !strings.EqualFold(signer, req.UserAddress) {
		s.log.Warn().Str("signer", signer).Str("user", req.UserAddress).Msg("decrypt grant signed by another account")
		return nil, apperror.ErrDecryptForbidden("signature does not match user")
	}

	handle, err := s.enc.Parse(req.Handle)
	if err != nil {
		return nil, err
	}
	value, err := s.enc.Decrypt(ctx, handle, req.ContractAddress, req.UserAddress)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user", req.UserAddress).Str("contract", req.ContractAddress).Msg("handle decrypted")
	return &ports.UserDecryptResult{Handle: req.Handle, Value: value}, nil
}

// PublicDecrypt decrypts a handle bound to a public contract.
func (s *DecryptServiceImpl) PublicDecrypt(ctx context.Context, req ports.PublicDecryptRequest) (*ports.UserDecryptResult, error) {
	if len(s.opts.PublicContracts) == 0 {
		return nil, apperror.ErrNotConfigured("Public decryption is not enabled")
	}

	var missing []string
	for _, f := range []struct{ name, value string }{
		{"handle", req.Handle},
		{"contractAddress", req.ContractAddress},
		{"userAddress", req.UserAddress},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return nil, apperror.ErrMissingFields(strings.Join(missing, ", "))
	}
	if !domain.IsAddress(req.ContractAddress) {
		return nil, apperror.ErrInvalidAddress("contract", req.ContractAddress)
	}
	if !domain.IsAddress(req.UserAddress) {
		return nil, apperror.ErrInvalidAddress("user", req.UserAddress)
	}
	if !containsAddress(s.opts.PublicContracts, req.ContractAddress) {
		return nil, apperror.ErrDecryptForbidden("contract is not publicly decryptable")
	}

	handle, err := s.enc.Parse(req.Handle)
	if err != nil {
		return nil, err
	}
	value, err := s.enc.Decrypt(ctx, handle, req.ContractAddress, req.UserAddress)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("contract", req.ContractAddress).Msg("public handle decrypted")
	return &ports.UserDecryptResult{Handle: req.Handle, Value: value}, nil
}

func (s *DecryptServiceImpl) recoverSigner(req ports.UserDecryptRequest) (string, error) {
	sig, err := hexutil.Decode(req.Signature)
	if err != nil || len(sig) != crypto.SignatureLength {
		return "", apperror.ErrDecryptForbidden("malformed signature")
	}
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	hash, _, err := apitypes.TypedDataAndHash(UserDecryptTypedData(s.opts.ChainID, s.opts.VerifyingContract, req))
	if err != nil {
		return "", apperror.Validation(fmt.Sprintf("Invalid decryption request: %v", err))
	}
	pub, err := crypto.SigToPub(hash, sig)
	if err != nil {
		return "", apperror.ErrDecryptForbidden("signature cannot be recovered")
	}
	return crypto.PubkeyToAddress(*pub).Hex(), nil
}

func validateDecryptRequest(req ports.UserDecryptRequest) error {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"handle", req.Handle},
		{"contractAddress", req.ContractAddress},
		{"userAddress", req.UserAddress},
		{"publicKey", req.PublicKey},
		{"signature", req.Signature},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(req.ContractAddresses) == 0 {
		missing = append(missing, "contractAddresses")
	}
	if len(missing) > 0 {
		return apperror.ErrMissingFields(strings.Join(missing, ", "))
	}

	if !domain.IsAddress(req.ContractAddress) {
		return apperror.ErrInvalidAddress("contract", req.ContractAddress)
	}
	if !domain.IsAddress(req.UserAddress) {
		return apperror.ErrInvalidAddress("user", req.UserAddress)
	}
	for _, addr := range req.ContractAddresses {
		if !domain.IsAddress(addr) {
			return apperror.ErrInvalidAddress("contract", addr)
		}
	}
	if _, err := hexutil.Decode(req.PublicKey); err != nil {
		return apperror.Validation("publicKey must be 0x-prefixed hex")
	}
	if req.DurationDays < 1 || req.DurationDays > MaxDecryptDurationDays {
		return apperror.Validation(fmt.Sprintf("durationDays must be between 1 and %d", MaxDecryptDurationDays))
	}
	if req.StartTimestamp <= 0 {
		return apperror.Validation("startTimestamp must be a positive unix time")
	}
	return nil
}

func containsAddress(list []string, addr string) bool {
	for _, a := range list {
		if strings.EqualFold(a, addr) {
			return true
		}
	}
	return false
}
