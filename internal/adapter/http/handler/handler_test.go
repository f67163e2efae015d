package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"private-tips/internal/core/domain"
	"private-tips/internal/core/ports"
	"private-tips/internal/core/ports/mocks"
	"private-tips/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	alice   = "0x1111111111111111111111111111111111111111"
	kolAddr = "0x2222222222222222222222222222222222222222"
)

var txHash = "0x" + strings.Repeat("ab", 32)

var handlerNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func init() {
	gin.SetMode(gin.TestMode)
}

func newContext(method, target string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			_ = json.NewEncoder(&buf).Encode(b)
		}
	}
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func u64(v uint64) *uint64 { return &v }

// --- KOL Handler Tests ---

func TestKolHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	kols := mocks.NewMockKolDirectory(ctrl)
	h := NewKolHandler(kols)

	bella := domain.KolProfile{ID: "bella", DisplayName: "Bella", WalletAddress: kolAddr}
	kols.EXPECT().List(gomock.Any()).Return([]domain.KolProfile{bella})
	kols.EXPECT().Get(gomock.Any(), "bella").Return(&bella)
	kols.EXPECT().Get(gomock.Any(), "nobody").Return(nil)

	c, w := newContext(http.MethodGet, "/api/kols", nil)
	h.List(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(1), decode(t, w)["total"])

	c, w = newContext(http.MethodGet, "/api/kols/bella", nil)
	c.Params = gin.Params{{Key: "id", Value: "bella"}}
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newContext(http.MethodGet, "/api/kols/nobody", nil)
	c.Params = gin.Params{{Key: "id", Value: "nobody"}}
	h.Get(c)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Balance Handler Tests ---

func TestBalanceHandler_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBalanceService(ctrl)
	h := NewBalanceHandler(svc)
	h.now = func() time.Time { return handlerNow }

	updated := handlerNow.Add(-time.Hour)
	svc.EXPECT().Get(gomock.Any(), "bella").Return(&domain.EncryptedBalance{
		KolID: "bella", Blob: json.RawMessage(`"0xabcd"`), LastUpdated: updated,
	}, nil)
	svc.EXPECT().Get(gomock.Any(), "nobody").Return(nil, nil)

	c, w := newContext(http.MethodGet, "/api/kol-balance?kolId=bella", nil)
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"encryptedBalance":"0xabcd","lastUpdated":"2025-03-01T11:00:00Z"}`, w.Body.String())

	c, w = newContext(http.MethodGet, "/api/kol-balance?kolId=nobody", nil)
	h.Get(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"encryptedBalance":null,"lastUpdated":"2025-03-01T12:00:00Z"}`, w.Body.String())
}

func TestBalanceHandler_Get_MissingKolID(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewBalanceHandler(mocks.NewMockBalanceService(ctrl))

	c, w := newContext(http.MethodGet, "/api/kol-balance", nil)
	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing kolId parameter", decode(t, w)["error"])
}

func TestBalanceHandler_Set(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBalanceService(ctrl)
	h := NewBalanceHandler(svc)

	svc.EXPECT().Set(gomock.Any(), "bella", gomock.Any()).DoAndReturn(
		func(_ context.Context, kolID string, blob []byte) (*domain.EncryptedBalance, error) {
			assert.JSONEq(t, `{"ciphertext":"0x01"}`, string(blob))
			return &domain.EncryptedBalance{KolID: kolID, Blob: blob}, nil
		})

	c, w := newContext(http.MethodPost, "/api/kol-balance", `{"kolId":"bella","encryptedBalance":{"ciphertext":"0x01"}}`)
	h.Set(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true}`, w.Body.String())
}

func TestBalanceHandler_Set_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockBalanceService(ctrl)
	h := NewBalanceHandler(svc)

	svc.EXPECT().Set(gomock.Any(), "bella", gomock.Any()).
		Return(nil, apperror.ErrMissingFields("kolId, encryptedBalance"))

	c, w := newContext(http.MethodPost, "/api/kol-balance", `{"kolId":"bella","encryptedBalance":null}`)
	h.Set(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required fields: kolId, encryptedBalance", decode(t, w)["error"])

	c, w = newContext(http.MethodPost, "/api/kol-balance", `{"kolId":"bad id!","encryptedBalance":"x"}`)
	h.Set(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Tip Handler Tests ---

func newTipHandler(t *testing.T) (*TipHandler, *mocks.MockTipService) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockTipService(ctrl)
	h := NewTipHandler(svc)
	h.now = func() time.Time { return handlerNow }
	return h, svc
}

func record(state domain.TipState) *domain.TipRecord {
	rec := domain.NewTipRecord("enc_1740830400000_abc123def", domain.StrategyRelay, handlerNow)
	rec.KolID = "bella"
	rec.FromAddress = alice
	rec.ToAddress = kolAddr
	rec.State = state
	return rec
}

func TestTipHandler_EncryptTip(t *testing.T) {
	h, svc := newTipHandler(t)

	svc.EXPECT().EncryptTip(gomock.Any(), domain.TipRequest{Amount: 0.01, FromAddress: alice, ToAddress: kolAddr}).
		Return(&ports.EncryptTipResult{Ciphertext: "0xdead", EncryptionID: "enc_1_x"}, nil)

	c, w := newContext(http.MethodPost, "/api/encrypt-tip", map[string]interface{}{"amount": 0.01, "from": alice, "to": kolAddr})
	h.EncryptTip(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ciphertext":"0xdead","encryptionId":"enc_1_x"}`, w.Body.String())
}

func TestTipHandler_EncryptTip_ValidationMessage(t *testing.T) {
	h, svc := newTipHandler(t)

	svc.EXPECT().EncryptTip(gomock.Any(), domain.TipRequest{}).
		Return(nil, apperror.ErrMissingFields("amount, from, to"))

	c, w := newContext(http.MethodPost, "/api/encrypt-tip", `{}`)
	h.EncryptTip(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "Missing required fields: amount, from, to", resp["error"])
	assert.Equal(t, "ValidationError", resp["kind"])
}

func TestTipHandler_EncryptTip_MalformedBody(t *testing.T) {
	h, _ := newTipHandler(t)

	c, w := newContext(http.MethodPost, "/api/encrypt-tip", `{"amount":"lots"}`)
	h.EncryptTip(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTipHandler_Send(t *testing.T) {
	tests := []struct {
		name  string
		rec   func() *domain.TipRecord
		err   error
		code  int
		state string
	}{
		{
			name: "succeeded with notice",
			rec: func() *domain.TipRecord {
				rec := record(domain.TipStateSucceeded)
				rec.TxHash = txHash
				rec.BlockNumber = u64(7_000_001)
				at := handlerNow.Add(5 * time.Second)
				rec.NoticeExpiresAt = &at
				return rec
			},
			code:  http.StatusOK,
			state: "succeeded",
		},
		{
			name:  "still confirming",
			rec:   func() *domain.TipRecord { return record(domain.TipStateConfirming) },
			code:  http.StatusAccepted,
			state: "confirming",
		},
		{
			name: "failed on insufficient funds",
			rec: func() *domain.TipRecord {
				rec := record(domain.TipStateIdle)
				rec.Fail(apperror.ErrInsufficientFunds(), handlerNow)
				return rec
			},
			err:   apperror.ErrInsufficientFunds(),
			code:  http.StatusBadRequest,
			state: "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc := newTipHandler(t)
			svc.EXPECT().Send(gomock.Any(), ports.SendTipInput{KolID: "bella", Amount: 0.5, FromAddress: alice}).
				Return(tt.rec(), tt.err)

			c, w := newContext(http.MethodPost, "/api/tips", `{"kolId":" bella ","amount":"0.5","from":"`+alice+`"}`)
			h.Send(c)

			assert.Equal(t, tt.code, w.Code)
			resp := decode(t, w)
			assert.Equal(t, tt.state, resp["state"])
			assert.Equal(t, "enc_1740830400000_abc123def", resp["encryptionId"])
			assert.NotNil(t, resp["transitions"])
		})
	}
}

func TestTipHandler_Send_Details(t *testing.T) {
	h, svc := newTipHandler(t)
	rec := record(domain.TipStateSucceeded)
	rec.BlockNumber = u64(42)
	rec.GasUsed = u64(21_000)
	at := handlerNow.Add(5 * time.Second)
	rec.NoticeExpiresAt = &at
	svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(rec, nil)

	c, w := newContext(http.MethodPost, "/api/tips", map[string]interface{}{"kolId": "bella", "amount": 1, "from": alice})
	h.Send(c)

	resp := decode(t, w)
	assert.Equal(t, "42", resp["blockNumber"])
	assert.Equal(t, "21000", resp["gasUsed"])
	assert.Equal(t, "Tip sent successfully with FHE protection!", resp["message"])
	assert.Equal(t, "2025-03-01T12:00:05Z", resp["noticeExpiresAt"])
}

func TestTipHandler_Send_FailedBody(t *testing.T) {
	h, svc := newTipHandler(t)
	rec := record(domain.TipStateIdle)
	rec.Fail(apperror.ErrUserRejected(), handlerNow)
	svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(rec, apperror.ErrUserRejected())

	c, w := newContext(http.MethodPost, "/api/tips", map[string]interface{}{"kolId": "bella", "amount": 1, "from": alice})
	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "WAL_001", resp["error_code"])
	assert.Equal(t, "UserRejectedError", resp["errorKind"])
	assert.Equal(t, "Transaction was cancelled. Please try again when ready.", resp["message"])
}

func TestTipHandler_Send_Busy(t *testing.T) {
	h, svc := newTipHandler(t)
	svc.EXPECT().Send(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrTipInFlight())

	c, w := newContext(http.MethodPost, "/api/tips", map[string]interface{}{"kolId": "bella", "amount": 1, "from": alice})
	h.Send(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TIP_002", decode(t, w)["error_code"])
}

func TestTipHandler_Get(t *testing.T) {
	h, svc := newTipHandler(t)
	svc.EXPECT().Get(gomock.Any(), "enc_missing").Return(nil, apperror.ErrNotFound("Tip"))

	c, w := newContext(http.MethodGet, "/api/tips/enc_missing", nil)
	c.Params = gin.Params{{Key: "encryptionId", Value: "enc_missing"}}
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTipHandler_DirectAwaitingWallet(t *testing.T) {
	h, svc := newTipHandler(t)
	rec := record(domain.TipStateRelaying)
	rec.Strategy = domain.StrategyDirect
	rec.ValueWei = "10000000000000000"
	svc.EXPECT().Get(gomock.Any(), rec.EncryptionID).Return(rec, nil)

	c, w := newContext(http.MethodGet, "/api/tips/"+rec.EncryptionID, nil)
	c.Params = gin.Params{{Key: "encryptionId", Value: rec.EncryptionID}}
	h.Get(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "10000000000000000", resp["valueWei"])
	assert.Equal(t, "Waiting for wallet confirmation...", resp["message"])
}

func TestTipHandler_Confirm(t *testing.T) {
	h, svc := newTipHandler(t)
	rec := record(domain.TipStateConfirming)
	svc.EXPECT().Confirm(gomock.Any(), rec.EncryptionID, txHash).Return(rec, nil)

	c, w := newContext(http.MethodPost, "/", map[string]string{"txHash": txHash})
	c.Params = gin.Params{{Key: "encryptionId", Value: rec.EncryptionID}}
	h.Confirm(c)
	assert.Equal(t, http.StatusAccepted, w.Code)

	c, w = newContext(http.MethodPost, "/", `{"txHash":"not-hex"}`)
	c.Params = gin.Params{{Key: "encryptionId", Value: rec.EncryptionID}}
	h.Confirm(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTipHandler_Fail(t *testing.T) {
	h, svc := newTipHandler(t)
	rec := record(domain.TipStateRelaying)
	rec.Fail(apperror.ClassifyMessage("User rejected transaction"), handlerNow)
	svc.EXPECT().ReportFailure(gomock.Any(), rec.EncryptionID, "User rejected transaction").Return(rec, nil)

	c, w := newContext(http.MethodPost, "/", map[string]string{"error": " User rejected transaction "})
	c.Params = gin.Params{{Key: "encryptionId", Value: rec.EncryptionID}}
	h.Fail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "failed", resp["state"])
	assert.Equal(t, "UserRejectedError", resp["errorKind"])

	c, w = newContext(http.MethodPost, "/", `{}`)
	h.Fail(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Relay Handler Tests ---

func TestRelayHandler_Confirmed(t *testing.T) {
	ctrl := gomock.NewController(t)
	relayer := mocks.NewMockRelayer(ctrl)
	h := NewRelayHandler(relayer)

	relayer.EXPECT().Relay(gomock.Any(), ports.RelayRequest{Ciphertext: "0xdead", ToAddress: kolAddr, RequestID: "req-1"}).
		Return(&domain.TransactionResult{
			TxHash:      txHash,
			BlockNumber: u64(7_000_001),
			GasUsed:     u64(21_064),
			Network:     "Sepolia",
			ExplorerURL: "https://sepolia.etherscan.io/tx/" + txHash,
			Status:      domain.TxStatusConfirmed,
		}, nil)

	c, w := newContext(http.MethodPost, "/api/relay-tx", map[string]string{"ciphertext": "0xdead", "toAddress": kolAddr})
	c.Request.Header.Set("Idempotency-Key", "req-1")
	h.Relay(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, txHash, resp["txHash"])
	assert.Equal(t, "7000001", resp["blockNumber"])
	assert.Equal(t, "21064", resp["gasUsed"])
	assert.Equal(t, "Sepolia", resp["network"])
	assert.Equal(t, resp["explorerUrl"], resp["etherscanUrl"])
	assert.Equal(t, "confirmed", resp["status"])
}

func TestRelayHandler_Pending(t *testing.T) {
	ctrl := gomock.NewController(t)
	relayer := mocks.NewMockRelayer(ctrl)
	h := NewRelayHandler(relayer)

	relayer.EXPECT().Relay(gomock.Any(), ports.RelayRequest{Ciphertext: "0xdead", ToAddress: kolAddr, RequestID: "body-id"}).
		Return(&domain.TransactionResult{TxHash: txHash, Network: "Sepolia", Status: domain.TxStatusPending}, nil)

	c, w := newContext(http.MethodPost, "/api/relay-tx", map[string]string{"ciphertext": "0xdead", "toAddress": kolAddr, "requestId": "body-id"})
	c.Request.Header.Set("Idempotency-Key", "header-id")
	h.Relay(c)

	assert.Equal(t, http.StatusAccepted, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "pending", resp["status"])
	assert.NotContains(t, resp, "blockNumber")
}

func TestRelayHandler_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		want string
	}{
		{"no signing key", apperror.ErrSigningKeyMissing(), http.StatusInternalServerError, "CFG_001"},
		{"insufficient funds", apperror.ErrInsufficientFunds(), http.StatusBadRequest, "FUND_001"},
		{"network", apperror.ErrNodeUnreachable(errors.New("dial tcp")), http.StatusInternalServerError, "NET_002"},
		{"already relayed", apperror.ErrAlreadyRelayed(), http.StatusConflict, "TIP_001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			relayer := mocks.NewMockRelayer(ctrl)
			relayer.EXPECT().Relay(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			c, w := newContext(http.MethodPost, "/api/relay-tx", map[string]string{"ciphertext": "0xdead", "toAddress": kolAddr})
			NewRelayHandler(relayer).Relay(c)

			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.want, decode(t, w)["error_code"])
		})
	}
}

func TestRelayHandler_Reverted(t *testing.T) {
	ctrl := gomock.NewController(t)
	relayer := mocks.NewMockRelayer(ctrl)
	relayer.EXPECT().Relay(gomock.Any(), gomock.Any()).
		Return(&domain.TransactionResult{TxHash: txHash, Status: domain.TxStatusReverted}, nil)

	c, w := newContext(http.MethodPost, "/api/relay-tx", map[string]string{"ciphertext": "0xdead", "toAddress": kolAddr})
	NewRelayHandler(relayer).Relay(c)

	assert.Equal(t, "NET_003", decode(t, w)["error_code"])
}

func TestRelayHandler_BadCiphertext(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := NewRelayHandler(mocks.NewMockRelayer(ctrl))

	c, w := newContext(http.MethodPost, "/api/relay-tx", map[string]string{"ciphertext": "deadbeef", "toAddress": kolAddr})
	h.Relay(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Decrypt Handler Tests ---

func TestDecryptHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDecryptService(ctrl)
	h := NewDecryptHandler(svc)

	body := map[string]interface{}{
		"handle":            "0x01",
		"contractAddress":   kolAddr,
		"userAddress":       alice,
		"publicKey":         "0x02",
		"contractAddresses": []string{kolAddr},
		"startTimestamp":    1740830400,
		"durationDays":      10,
		"signature":         "0x03",
	}

	svc.EXPECT().UserDecrypt(gomock.Any(), ports.UserDecryptRequest{
		Handle:            "0x01",
		ContractAddress:   kolAddr,
		UserAddress:       alice,
		PublicKey:         "0x02",
		ContractAddresses: []string{kolAddr},
		StartTimestamp:    1740830400,
		DurationDays:      10,
		Signature:         "0x03",
	}).Return(&ports.UserDecryptResult{Handle: "0x01", Value: 1234}, nil)

	c, w := newContext(http.MethodPost, "/api/decrypt", body)
	h.UserDecrypt(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"handle":"0x01","value":1234}`, w.Body.String())

	svc.EXPECT().UserDecrypt(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrDecryptForbidden("grant has expired"))
	c, w = newContext(http.MethodPost, "/api/decrypt", body)
	h.UserDecrypt(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "DEC_001", decode(t, w)["error_code"])
}

func TestDecryptHandler_PublicDecrypt(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockDecryptService(ctrl)
	h := NewDecryptHandler(svc)
	body := map[string]interface{}{"handle": "0x01", "contractAddress": kolAddr, "userAddress": alice}

	svc.EXPECT().PublicDecrypt(gomock.Any(), ports.PublicDecryptRequest{
		Handle:          "0x01",
		ContractAddress: kolAddr,
		UserAddress:     alice,
	}).Return(&ports.UserDecryptResult{Handle: "0x01", Value: 77}, nil)

	c, w := newContext(http.MethodPost, "/api/public-decrypt", body)
	h.PublicDecrypt(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"handle":"0x01","value":77}`, w.Body.String())

	svc.EXPECT().PublicDecrypt(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrNotConfigured("Public decryption is not enabled"))
	c, w = newContext(http.MethodPost, "/api/public-decrypt", body)
	h.PublicDecrypt(c)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "CFG_002", decode(t, w)["error_code"])

	c, w = newContext(http.MethodPost, "/api/public-decrypt", map[string]interface{}{"handle": "nothex"})
	h.PublicDecrypt(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Health Check Tests ---

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	redisCheck := mocks.NewMockHealthChecker(ctrl)
	chainCheck := mocks.NewMockHealthChecker(ctrl)
	redisCheck.EXPECT().Ping(gomock.Any()).Return(nil).Times(2)
	redisCheck.EXPECT().Name().Return("redis").AnyTimes()
	chainCheck.EXPECT().Ping(gomock.Any()).Return(nil)
	chainCheck.EXPECT().Ping(gomock.Any()).Return(errors.New("connection refused"))
	chainCheck.EXPECT().Name().Return("ethereum").AnyTimes()

	c, w := newContext(http.MethodGet, "/health", nil)
	HealthCheck(redisCheck, chainCheck)(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "healthy", decode(t, w)["status"])

	c, w = newContext(http.MethodGet, "/health", nil)
	HealthCheck(redisCheck, chainCheck)(c)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	resp := decode(t, w)
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	assert.Equal(t, "unhealthy", deps["ethereum"].(map[string]interface{})["status"])
}

func TestSwagger(t *testing.T) {
	SetSwaggerSpec(nil)
	c, w := newContext(http.MethodGet, "/swagger/spec", nil)
	SwaggerSpec(c)
	assert.Equal(t, http.StatusNotFound, w.Code)

	SetSwaggerSpec([]byte("openapi: 3.0.3\n"))
	defer SetSwaggerSpec(nil)
	c, w = newContext(http.MethodGet, "/swagger/spec", nil)
	SwaggerSpec(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")

	c, w = newContext(http.MethodGet, "/swagger", nil)
	SwaggerUI(c)
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}
