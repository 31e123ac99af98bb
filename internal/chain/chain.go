// Package chain is the boundary to the wallet extension and the asset
// hub node. Both are external collaborators: the types here reproduce
// their call shape, nothing in this package implements a chain.
package chain

import "context"

// Provider is one injected wallet the extension exposes after Enable.
type Provider struct {
	Name string
}

type Account struct {
	Address string
	Name    string
	Source  string
}

// Signer is the opaque signing handle obtained from the wallet extension
// for an account's source.
type Signer interface {
	Sign(ctx context.Context, payload []byte) ([]byte, error)
}

type Extension interface {
	Enable(ctx context.Context, appName string) ([]Provider, error)
	Accounts(ctx context.Context) ([]Account, error)
	Signer(ctx context.Context, source string) (Signer, error)
}

type StatusKind int

const (
	StatusInBlock StatusKind = iota
	StatusFinalized
)

// TxStatus is one update from a submitted extrinsic's status stream.
type TxStatus struct {
	Kind      StatusKind
	BlockHash string
}

// Call names a pallet method with its arguments.
type Call struct {
	Module string
	Method string
	Args   []any
}

type Conn interface {
	Endpoint() string
	// Modules lists the pallets the connected node exposes.
	Modules(ctx context.Context) ([]string, error)
	// QueryBalance returns the free balance as a raw integer string.
	QueryBalance(ctx context.Context, address string) (string, error)
	// Submit signs and sends the call. The returned channel carries
	// status updates and closes after finalization.
	Submit(ctx context.Context, call Call, from Account, signer Signer) (<-chan TxStatus, error)
	Close() error
}

type Dialer interface {
	Dial(ctx context.Context, endpoint string) (Conn, error)
}
