package service

import (
	"context"
	"crypto/ecdsa"
	"crypto/rand"
	"testing"
	"time"

	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var decryptNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

type decryptFixture struct {
	svc  *DecryptServiceImpl
	enc  ports.Encryptor
	key  *ecdsa.PrivateKey
	user string
}

func newDecryptFixture(t *testing.T, enc ports.Encryptor) *decryptFixture {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	svc := NewDecryptService(enc, DecryptOptions{ChainID: sepoliaChainID, VerifyingContract: testContract}, newTestLogger())
	svc.now = func() time.Time { return decryptNow }
	return &decryptFixture{svc: svc, enc: enc, key: key, user: crypto.PubkeyToAddress(key.PublicKey).Hex()}
}

// grant builds a request for a handle encrypting value, signed by signer.
func (f *decryptFixture) grant(t *testing.T, value uint64, signer *ecdsa.PrivateKey) ports.UserDecryptRequest {
	t.Helper()
	h, err := f.enc.Encrypt(context.Background(), testContract, f.user, value)
	require.NoError(t, err)

	req := ports.UserDecryptRequest{
		Handle:            h.Hex(),
		ContractAddress:   testContract,
		UserAddress:       f.user,
		PublicKey:         "0x2000000000000000000000000000000000000000000000000000000000000001",
		ContractAddresses: []string{testContract},
		StartTimestamp:    decryptNow.Add(-time.Hour).Unix(),
		DurationDays:      10,
	}
	req.Signature = sign(t, req, signer)
	return req
}

func sign(t *testing.T, req ports.UserDecryptRequest, key *ecdsa.PrivateKey) string {
	t.Helper()
	hash, _, err := apitypes.TypedDataAndHash(UserDecryptTypedData(sepoliaChainID, testContract, req))
	require.NoError(t, err)
	sig, err := crypto.Sign(hash, key)
	require.NoError(t, err)
	sig[crypto.RecoveryIDOffset] += 27 // wallets return V in {27, 28}
	return hexutil.Encode(sig)
}

func TestDecryptService_UserDecrypt(t *testing.T) {
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)
	f := newDecryptFixture(t, enc)
	req := f.grant(t, 1234, f.key)

	res, err := f.svc.UserDecrypt(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), res.Value)
	assert.Equal(t, req.Handle, res.Handle)
}

func TestDecryptService_UserDecrypt_Forbidden(t *testing.T) {
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)
	other, err := crypto.GenerateKey()
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(f *decryptFixture, req *ports.UserDecryptRequest)
	}{
		{"signed by another account", func(f *decryptFixture, req *ports.UserDecryptRequest) {
			req.Signature = sign(t, *req, other)
		}},
		{"contract not covered", func(f *decryptFixture, req *ports.UserDecryptRequest) {
			req.ContractAddresses = []string{testOther}
			req.Signature = sign(t, *req, f.key)
		}},
		{"expired", func(f *decryptFixture, req *ports.UserDecryptRequest) {
			req.StartTimestamp = decryptNow.Add(-11 * 24 * time.Hour).Unix()
			req.Signature = sign(t, *req, f.key)
		}},
		{"not yet valid", func(f *decryptFixture, req *ports.UserDecryptRequest) {
			req.StartTimestamp = decryptNow.Add(time.Hour).Unix()
			req.Signature = sign(t, *req, f.key)
		}},
		{"tampered duration", func(f *decryptFixture, req *ports.UserDecryptRequest) {
			req.DurationDays = 11
		}},
		{"malformed signature", func(f *decryptFixture, req *ports.UserDecryptRequest) {
			req.Signature = "0x1234"
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDecryptFixture(t, enc)
			req := f.grant(t, 5, f.key)
			tt.mutate(f, &req)

			_, err := f.svc.UserDecrypt(context.Background(), req)
			assert.Equal(t, "DEC_001", codeOf(t, err))
			assert.True(t, apperror.IsKind(err, apperror.KindForbidden))
		})
	}
}

func TestDecryptService_UserDecrypt_Validation(t *testing.T) {
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(req *ports.UserDecryptRequest)
		code   string
	}{
		{"missing handle", func(req *ports.UserDecryptRequest) { req.Handle = "" }, "VAL_002"},
		{"no contracts", func(req *ports.UserDecryptRequest) { req.ContractAddresses = nil }, "VAL_002"},
		{"duration too long", func(req *ports.UserDecryptRequest) { req.DurationDays = 366 }, "VAL_002"},
		{"zero duration", func(req *ports.UserDecryptRequest) { req.DurationDays = 0 }, "VAL_002"},
		{"bad public key", func(req *ports.UserDecryptRequest) { req.PublicKey = "abc" }, "VAL_002"},
		{"bad user", func(req *ports.UserDecryptRequest) { req.UserAddress = "0x12" }, "VAL_003"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDecryptFixture(t, enc)
			req := f.grant(t, 5, f.key)
			tt.mutate(&req)

			_, err := f.svc.UserDecrypt(context.Background(), req)
			assert.Equal(t, tt.code, codeOf(t, err))
		})
	}
}

func TestDecryptService_MockBackendUnavailable(t *testing.T) {
	f := newDecryptFixture(t, NewMockEncryptor(rand.Reader))
	req := f.grant(t, 5, f.key)

	_, err := f.svc.UserDecrypt(context.Background(), req)
	assert.Equal(t, "CFG_002", codeOf(t, err))
}

func TestDecryptService_PublicDecrypt(t *testing.T) {
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)
	svc := NewDecryptService(enc, DecryptOptions{
		ChainID:           sepoliaChainID,
		VerifyingContract: testContract,
		PublicContracts:   []string{testContract},
	}, newTestLogger())

	h, err := enc.Encrypt(context.Background(), testContract, testUser, 4200)
	require.NoError(t, err)

	res, err := svc.PublicDecrypt(context.Background(), ports.PublicDecryptRequest{
		Handle:          h.Hex(),
		ContractAddress: testContract,
		UserAddress:     testUser,
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(4200), res.Value)
	assert.Equal(t, h.Hex(), res.Handle)
}

func TestDecryptService_PublicDecrypt_Errors(t *testing.T) {
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)
	h, err := enc.Encrypt(context.Background(), testContract, testUser, 1)
	require.NoError(t, err)
	valid := ports.PublicDecryptRequest{Handle: h.Hex(), ContractAddress: testContract, UserAddress: testUser}

	tests := []struct {
		name   string
		public []string
		mutate func(req *ports.PublicDecryptRequest)
		code   string
	}{
		{"disabled", nil, func(req *ports.PublicDecryptRequest) {}, "CFG_002"},
		{"contract not public", []string{testOther}, func(req *ports.PublicDecryptRequest) {}, "DEC_001"},
		{"missing handle", []string{testContract}, func(req *ports.PublicDecryptRequest) { req.Handle = "" }, "VAL_002"},
		{"bad user", []string{testContract}, func(req *ports.PublicDecryptRequest) { req.UserAddress = "0x12" }, "VAL_003"},
		{"wrong pair", []string{testContract}, func(req *ports.PublicDecryptRequest) { req.UserAddress = testOther }, "ENC_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDecryptService(enc, DecryptOptions{
				ChainID:           sepoliaChainID,
				VerifyingContract: testContract,
				PublicContracts:   tt.public,
			}, newTestLogger())

			req := valid
			tt.mutate(&req)
			_, err := svc.PublicDecrypt(context.Background(), req)
			assert.Equal(t, tt.code, codeOf(t, err))
		})
	}
}

func TestDecryptService_PublicDecrypt_MockBackend(t *testing.T) {
	enc := NewMockEncryptor(rand.Reader)
	svc := NewDecryptService(enc, DecryptOptions{ChainID: sepoliaChainID, PublicContracts: []string{testContract}}, newTestLogger())
	h, err := enc.Encrypt(context.Background(), testContract, testUser, 1)
	require.NoError(t, err)

	_, err = svc.PublicDecrypt(context.Background(), ports.PublicDecryptRequest{
		Handle: h.Hex(), ContractAddress: testContract, UserAddress: testUser,
	})
	assert.Equal(t, "CFG_002", codeOf(t, err))
}
