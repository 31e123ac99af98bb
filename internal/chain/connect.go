package chain

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// DefaultEndpoints is the ordered fallback list; the first entry is the
// known-good primary.
var DefaultEndpoints = []string{
	"wss://pas-rpc.stakeworld.io",
	"wss://paseo-asset-hub-rpc.polkadot.io",
	"wss://polkadot-asset-hub-rpc.polkadot.io",
	"wss://asset-hub-paseo-rpc.dwellir.com",
	"wss://paseo-asset-hub-rpc.dwellir.com",
}

var ErrAllEndpointsFailed = errors.New("failed to connect to any endpoint")

// Connect tries each endpoint in order and returns the first connection
// that answers. When every endpoint fails the error names them all.
func Connect(ctx context.Context, d Dialer, endpoints []string, log *zap.Logger) (Conn, error) {
	var attempted []string
	for _, endpoint := range endpoints {
		conn, err := d.Dial(ctx, endpoint)
		if err != nil {
			log.Warn("endpoint unreachable",
				zap.String("endpoint", endpoint),
				zap.Error(err))
			attempted = append(attempted, endpoint)
			continue
		}
		log.Info("connected to endpoint", zap.String("endpoint", endpoint))
		return conn, nil
	}
	return nil, fmt.Errorf("%w: tried %s", ErrAllEndpointsFailed, strings.Join(attempted, ", "))
}
