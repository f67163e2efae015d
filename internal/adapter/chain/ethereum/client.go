package ethereum

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"private-tips/internal/core/ports"
	"private-tips/pkg/apperror"

	goethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"
)

// backend is the method set of *ethclient.Client the adapter uses.
type backend interface {
	ChainID(ctx context.Context) (*big.Int, error)
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg goethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	Close()
}

// Client implements ports.ChainClient over a JSON-RPC node. Node errors are
// mapped to apperror kinds here so nothing upstream parses error strings.
type Client struct {
	rpc backend
}

var _ ports.ChainClient = (*Client)(nil)

// Dial connects to the node at rawURL (http, https, ws or ipc).
func Dial(ctx context.Context, rawURL string) (*Client, error) {
	c, err := ethclient.DialContext(ctx, rawURL)
	if err != nil {
		return nil, fmt.Errorf("dialing ethereum rpc: %w", err)
	}
	return &Client{rpc: c}, nil
}

// Close releases the underlying connection.
func (c *Client) Close() {
	c.rpc.Close()
}

func (c *Client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.rpc.ChainID(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return id, nil
}

func (c *Client) BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error) {
	bal, err := c.rpc.BalanceAt(ctx, account, blockNumber)
	if err != nil {
		return nil, classify(err)
	}
	return bal, nil
}

func (c *Client) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	nonce, err := c.rpc.PendingNonceAt(ctx, account)
	if err != nil {
		return 0, classify(err)
	}
	return nonce, nil
}

func (c *Client) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.rpc.SuggestGasPrice(ctx)
	if err != nil {
		return nil, classify(err)
	}
	return price, nil
}

func (c *Client) EstimateGas(ctx context.Context, msg goethereum.CallMsg) (uint64, error) {
	gas, err := c.rpc.EstimateGas(ctx, msg)
	if err != nil {
		return 0, classify(err)
	}
	return gas, nil
}

func (c *Client) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.rpc.SendTransaction(ctx, tx); err != nil {
		return classify(err)
	}
	return nil
}

// TransactionReceipt returns nil, nil while the transaction is not yet mined.
func (c *Client) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	receipt, err := c.rpc.TransactionReceipt(ctx, txHash)
	if errors.Is(err, goethereum.NotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return receipt, nil
}

// classify maps a node or transport error to a typed error. Context
// cancellation is returned unchanged so callers can tell a deadline apart
// from a node failure.
func classify(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	classified := apperror.ClassifyMessage(err.Error())
	classified.Err = err
	return classified
}
