package ethereum

import "context"

// HealthCheck implements ports.HealthChecker for the JSON-RPC node.
type HealthCheck struct {
	client *Client
}

// NewHealthCheck creates a node health checker.
func NewHealthCheck(client *Client) *HealthCheck {
	return &HealthCheck{client: client}
}

// Ping asks the node for its chain id.
func (h *HealthCheck) Ping(ctx context.Context) error {
	_, err := h.client.ChainID(ctx)
	return err
}

// Name returns the dependency name.
func (h *HealthCheck) Name() string {
	return "ethereum-rpc"
}
