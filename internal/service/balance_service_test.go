package service

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"private-tips/internal/adapter/storage/memory"
	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/internal/core/ports/mocks"
	"private-tips/pkg/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// runUpdate makes a mock store apply fn to current, mimicking a real Update.
func runUpdate(current *domain.EncryptedBalance) func(context.Context, string, ports.BalanceUpdateFunc) (*domain.EncryptedBalance, error) {
	return func(ctx context.Context, kolID string, fn ports.BalanceUpdateFunc) (*domain.EncryptedBalance, error) {
		blob, err := fn(current)
		if err != nil {
			return nil, err
		}
		version := int64(1)
		if current != nil {
			version = current.Version + 1
		}
		return &domain.EncryptedBalance{KolID: kolID, Blob: blob, LastUpdated: time.Now(), Version: version}, nil
	}
}

func TestBalanceService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	svc := NewBalanceService(store, nil, NewMockEncryptor(rand.Reader), newTestLogger())

	want := &domain.EncryptedBalance{KolID: "vitalik", Blob: json.RawMessage(`"0xabcd"`), Version: 2}
	store.EXPECT().Get(gomock.Any(), "vitalik").Return(want, nil)

	got, err := svc.Get(context.Background(), "vitalik")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestBalanceService_Get_Unknown(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	svc := NewBalanceService(store, nil, NewMockEncryptor(rand.Reader), newTestLogger())

	store.EXPECT().Get(gomock.Any(), "nobody").Return(nil, nil)

	got, err := svc.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestBalanceService_Get_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	svc := NewBalanceService(store, nil, NewMockEncryptor(rand.Reader), newTestLogger())

	_, err := svc.Get(context.Background(), "")
	assert.True(t, apperror.IsKind(err, apperror.KindValidation))

	store.EXPECT().Get(gomock.Any(), "vitalik").Return(nil, errors.New("connection reset"))
	_, err = svc.Get(context.Background(), "vitalik")
	assert.Equal(t, "SYS_002", codeOf(t, err))
}

func TestBalanceService_Set(t *testing.T) {
	tests := []struct {
		name    string
		kolID   string
		blob    string
		wantErr string
	}{
		{"object blob", "vitalik", `{"handle":"0x01"}`, ""},
		{"string blob", "vitalik", `"0x01"`, ""},
		{"missing id", "", `"0x01"`, "VAL_002"},
		{"empty blob", "vitalik", ``, "VAL_002"},
		{"null blob", "vitalik", ` null `, "VAL_002"},
		{"invalid json", "vitalik", `{oops`, "VAL_002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := mocks.NewMockBalanceStore(ctrl)
			svc := NewBalanceService(store, nil, NewMockEncryptor(rand.Reader), newTestLogger())

			if tt.wantErr == "" {
				store.EXPECT().Set(gomock.Any(), tt.kolID, json.RawMessage(tt.blob)).
					Return(&domain.EncryptedBalance{KolID: tt.kolID, Blob: json.RawMessage(tt.blob), Version: 1}, nil)
			}

			bal, err := svc.Set(context.Background(), tt.kolID, []byte(tt.blob))
			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, codeOf(t, err))
				return
			}
			require.NoError(t, err)
			assert.JSONEq(t, tt.blob, string(bal.Blob))
		})
	}
}

func TestBalanceService_Accumulate_FirstTip(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)
	svc := NewBalanceService(store, nil, enc, newTestLogger())

	tip, err := enc.Encrypt(context.Background(), testContract, testUser, 250)
	require.NoError(t, err)
	store.EXPECT().Update(gomock.Any(), "vitalik", gomock.Any()).DoAndReturn(runUpdate(nil))

	bal, err := svc.Accumulate(context.Background(), "vitalik", tip)
	require.NoError(t, err)

	hexHandle, ok := bal.HandleHex()
	require.True(t, ok)
	assert.Equal(t, tip.Hex(), hexHandle)
}

func TestBalanceService_Accumulate_AddsToExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	enc, err := NewSealedEncryptor(testAESKey)
	require.NoError(t, err)
	svc := NewBalanceService(store, nil, enc, newTestLogger())
	ctx := context.Background()

	prev, err := enc.Encrypt(ctx, testContract, testUser, 100)
	require.NoError(t, err)
	tip, err := enc.Encrypt(ctx, testContract, testUser, 250)
	require.NoError(t, err)
	current := &domain.EncryptedBalance{KolID: "vitalik", Blob: domain.BalanceBlobFromHandle(prev), Version: 4}
	store.EXPECT().Update(gomock.Any(), "vitalik", gomock.Any()).DoAndReturn(runUpdate(current))

	bal, err := svc.Accumulate(ctx, "vitalik", tip)
	require.NoError(t, err)
	assert.Equal(t, int64(5), bal.Version)

	hexHandle, ok := bal.HandleHex()
	require.True(t, ok)
	sum, err := enc.Parse(hexHandle)
	require.NoError(t, err)
	total, err := enc.Decrypt(ctx, sum, testContract, testUser)
	require.NoError(t, err)
	assert.Equal(t, uint64(350), total)
}

func TestBalanceService_Accumulate_ForeignBlobRestarts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	enc := NewMockEncryptor(rand.Reader)
	svc := NewBalanceService(store, nil, enc, newTestLogger())

	tip, err := enc.Encrypt(context.Background(), testContract, testUser, 1)
	require.NoError(t, err)
	current := &domain.EncryptedBalance{KolID: "vitalik", Blob: json.RawMessage(`{"set":"by client"}`), Version: 1}
	store.EXPECT().Update(gomock.Any(), "vitalik", gomock.Any()).DoAndReturn(runUpdate(current))

	bal, err := svc.Accumulate(context.Background(), "vitalik", tip)
	require.NoError(t, err)
	hexHandle, _ := bal.HandleHex()
	assert.Equal(t, tip.Hex(), hexHandle)
}

func TestBalanceService_Accumulate_BindingMismatchRestarts(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	enc := NewMockEncryptor(rand.Reader)
	svc := NewBalanceService(store, nil, enc, newTestLogger())
	ctx := context.Background()

	// The stored handle was produced for a different recipient.
	prev, err := enc.Encrypt(ctx, testContract, testOther, 1)
	require.NoError(t, err)
	tip, err := enc.Encrypt(ctx, testContract, testUser, 1)
	require.NoError(t, err)
	current := &domain.EncryptedBalance{KolID: "vitalik", Blob: domain.BalanceBlobFromHandle(prev)}
	store.EXPECT().Update(gomock.Any(), "vitalik", gomock.Any()).DoAndReturn(runUpdate(current))

	bal, err := svc.Accumulate(ctx, "vitalik", tip)
	require.NoError(t, err)
	hexHandle, _ := bal.HandleHex()
	assert.Equal(t, tip.Hex(), hexHandle)
}

func TestBalanceService_Accumulate_AfterHexOverwrite(t *testing.T) {
	tests := []struct {
		name string
		enc  func(t *testing.T) ports.Encryptor
	}{
		{"mock", func(t *testing.T) ports.Encryptor { return NewMockEncryptor(rand.Reader) }},
		{"sealed", func(t *testing.T) ports.Encryptor {
			enc, err := NewSealedEncryptor(testAESKey)
			require.NoError(t, err)
			return enc
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			enc := tt.enc(t)
			svc := NewBalanceService(memory.NewBalanceStore(), nil, enc, newTestLogger())

			_, err := svc.Set(ctx, "bella", []byte(`"0xdeadbeef"`))
			require.NoError(t, err)

			var last *domain.CiphertextHandle
			for i := 0; i < 3; i++ {
				tip, err := enc.Encrypt(ctx, testContract, testUser, 10)
				require.NoError(t, err)
				bal, err := svc.Accumulate(ctx, "bella", tip)
				require.NoError(t, err, "tip %d", i)
				hexHandle, ok := bal.HandleHex()
				require.True(t, ok)
				last, err = enc.Parse(hexHandle)
				require.NoError(t, err)
			}

			if enc.Scheme() == domain.SchemeSealed {
				total, err := enc.Decrypt(ctx, last, testContract, testUser)
				require.NoError(t, err)
				assert.Equal(t, uint64(30), total)
			}
		})
	}
}

func TestBalanceService_Accumulate_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockBalanceStore(ctrl)
	enc := NewMockEncryptor(rand.Reader)
	svc := NewBalanceService(store, nil, enc, newTestLogger())

	tip, err := enc.Encrypt(context.Background(), testContract, testUser, 1)
	require.NoError(t, err)
	store.EXPECT().Update(gomock.Any(), "vitalik", gomock.Any()).Return(nil, errors.New("tx aborted"))

	_, err = svc.Accumulate(context.Background(), "vitalik", tip)
	assert.Equal(t, "SYS_002", codeOf(t, err))
}
