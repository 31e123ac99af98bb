package chain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

const mintAmount = 1

var (
	ErrNoExtension  = errors.New("no wallet extension found")
	ErrNoAccounts   = errors.New("no accounts found in extension")
	ErrNotConnected = errors.New("wallet not connected")
	ErrNoNFTModule  = errors.New("nft functionality not found on this network")
)

// Minter drives the asset-hub mint page flows against the chain
// boundary: connect a wallet, then create a collection, mint items and
// attach metadata, preferring the nfts pallet and falling back once to
// uniques.
type Minter struct {
	ext       Extension
	dialer    Dialer
	endpoints []string
	log       *zap.Logger

	CollectionID string
	ItemID       string

	// OnStatus receives the human-readable progress line the page shows.
	OnStatus func(string)

	accounts []Account
	account  Account
	signer   Signer
	conn     Conn
	modules  []string
}

func NewMinter(ext Extension, dialer Dialer, endpoints []string, log *zap.Logger) *Minter {
	if len(endpoints) == 0 {
		endpoints = DefaultEndpoints
	}
	return &Minter{
		ext:          ext,
		dialer:       dialer,
		endpoints:    endpoints,
		log:          log,
		CollectionID: "1",
		ItemID:       "1",
		OnStatus:     func(string) {},
	}
}

func (m *Minter) status(format string, args ...any) {
	line := fmt.Sprintf(format, args...)
	m.log.Info(line)
	m.OnStatus(line)
}

// ConnectWallet enables the extension, picks the first account, dials
// the endpoint list and fetches the signer.
func (m *Minter) ConnectWallet(ctx context.Context, appName string) error {
	m.status("Connecting to wallet...")

	providers, err := m.ext.Enable(ctx, appName)
	if err != nil {
		return fmt.Errorf("enable extension: %w", err)
	}
	if len(providers) == 0 {
		return ErrNoExtension
	}

	accounts, err := m.ext.Accounts(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}
	if len(accounts) == 0 {
		return ErrNoAccounts
	}
	m.accounts = accounts
	m.account = accounts[0]

	conn, err := Connect(ctx, m.dialer, m.endpoints, m.log)
	if err != nil {
		return err
	}
	m.conn = conn

	modules, err := conn.Modules(ctx)
	if err != nil {
		return fmt.Errorf("list modules: %w", err)
	}
	m.modules = modules

	signer, err := m.ext.Signer(ctx, m.account.Source)
	if err != nil {
		return fmt.Errorf("get signer: %w", err)
	}
	m.signer = signer

	m.status("Wallet connected successfully. Available modules: %s", strings.Join(modules, ", "))
	return nil
}

func (m *Minter) Accounts() []Account { return m.accounts }

// SelectAccount switches the signing account to one of the listed
// addresses.
func (m *Minter) SelectAccount(ctx context.Context, address string) error {
	for _, a := range m.accounts {
		if a.Address == address {
			signer, err := m.ext.Signer(ctx, a.Source)
			if err != nil {
				return fmt.Errorf("get signer: %w", err)
			}
			m.account = a
			m.signer = signer
			return nil
		}
	}
	return fmt.Errorf("account %s not found", address)
}

// Balance returns the selected account's free balance, formatted.
func (m *Minter) Balance(ctx context.Context) (string, error) {
	if m.conn == nil {
		return "", ErrNotConnected
	}
	raw, err := m.conn.QueryBalance(ctx, m.account.Address)
	if err != nil {
		return "", fmt.Errorf("query balance: %w", err)
	}
	return FormatBalance(raw), nil
}

func (m *Minter) hasModule(name string) bool {
	for _, mod := range m.modules {
		if mod == name {
			return true
		}
	}
	return false
}

// nftCall picks the pallet for an NFT operation: nfts preferred, uniques
// as the single fallback, otherwise a descriptive error naming what the
// node does expose.
func (m *Minter) nftCall(method string, nftsArgs, uniquesArgs []any) (Call, error) {
	if m.hasModule("nfts") {
		return Call{Module: "nfts", Method: method, Args: nftsArgs}, nil
	}
	if m.hasModule("uniques") {
		m.status(`This network uses the "uniques" module instead of "nfts".`)
		return Call{Module: "uniques", Method: method, Args: uniquesArgs}, nil
	}
	return Call{}, fmt.Errorf("%w: available modules: %s", ErrNoNFTModule, strings.Join(m.modules, ", "))
}

// CreateCollection creates the collection the items will be minted into.
func (m *Minter) CreateCollection(ctx context.Context) error {
	call, err := m.nftCall("create",
		[]any{m.account.Address, collectionConfig{MaxSupply: 1000}},
		[]any{m.CollectionID, m.account.Address},
	)
	if err != nil {
		return err
	}
	m.status("Signing transaction to create collection...")
	return m.submit(ctx, call, nil)
}

// MintNFT mints one item into the collection. After the mint finalizes
// the item id advances so the next mint does not collide.
func (m *Minter) MintNFT(ctx context.Context) error {
	call, err := m.nftCall("mint",
		[]any{m.CollectionID, m.ItemID, m.account.Address, mintAmount},
		[]any{m.CollectionID, m.ItemID, m.account.Address},
	)
	if err != nil {
		return err
	}
	m.status("Signing transaction...")
	return m.submit(ctx, call, func() {
		if id, err := strconv.Atoi(m.ItemID); err == nil {
			m.ItemID = strconv.Itoa(id + 1)
		}
	})
}

// SetMetadata attaches the item's metadata document.
func (m *Minter) SetMetadata(ctx context.Context) error {
	metadata, err := json.Marshal(itemMetadata{
		Name:        fmt.Sprintf("Paseo NFT #%s", m.ItemID),
		Description: "A custom NFT on Paseo Asset Hub",
		Image:       "ipfs://example-placeholder-uri",
		Attributes: []itemAttribute{
			{TraitType: "Rarity", Value: "Common"},
			{TraitType: "Collection", Value: fmt.Sprintf("Paseo #%s", m.CollectionID)},
			{TraitType: "Creator", Value: shortAddress(m.account.Address)},
		},
	})
	if err != nil {
		return err
	}

	call, err := m.nftCall("setMetadata",
		[]any{m.CollectionID, m.ItemID, string(metadata)},
		[]any{m.CollectionID, m.ItemID, string(metadata), false},
	)
	if err != nil {
		return err
	}
	m.status("Signing transaction to set metadata...")
	return m.submit(ctx, call, nil)
}

// submit sends the call and drains its status stream, reporting each
// update. onFinalized runs once, after the finalized status.
func (m *Minter) submit(ctx context.Context, call Call, onFinalized func()) error {
	if m.conn == nil {
		return ErrNotConnected
	}
	statuses, err := m.conn.Submit(ctx, call, m.account, m.signer)
	if err != nil {
		return fmt.Errorf("submit %s.%s: %w", call.Module, call.Method, err)
	}
	for st := range statuses {
		switch st.Kind {
		case StatusInBlock:
			m.status("Transaction included in block: %s", st.BlockHash)
		case StatusFinalized:
			m.status("Transaction finalized in block: %s", st.BlockHash)
			if onFinalized != nil {
				onFinalized()
			}
		}
	}
	return nil
}

type collectionConfig struct {
	Settings  int `json:"settings"`
	MaxSupply int `json:"maxSupply"`
}

type itemMetadata struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	Attributes  []itemAttribute `json:"attributes"`
}

type itemAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

func shortAddress(addr string) string {
	if len(addr) <= 8 {
		return addr
	}
	return addr[:8] + "..."
}
