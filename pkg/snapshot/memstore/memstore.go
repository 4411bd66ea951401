// Package memstore is the in-memory Snapshot reference implementation used
// by this module's own unit tests, where the concrete engine choice is out
// of scope (spec §1) but a façade instance is still needed to exercise
// pkg/syscall end to end.
package memstore

import (
	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

// Store is a plain in-memory Snapshot. Commit is a no-op: there is no
// durable tier underneath it.
type Store struct {
	height          uint32
	persistingBlock *state.Block
	bestHeader      *state.Header

	headersByHash  map[hash.Uint256]*state.Header
	headersByIndex map[uint32]*state.Header
	blocksByHash   map[hash.Uint256]*state.Block
	blocksByIndex  map[uint32]*state.Block
	transactions   map[hash.Uint256]*state.Transaction
	txHeights      map[hash.Uint256]uint32
	contracts      map[hash.Uint160]*state.Contract
	items          map[string]storage.Item
}

// New returns an empty store.
func New() *Store {
	return &Store{
		headersByHash:  make(map[hash.Uint256]*state.Header),
		headersByIndex: make(map[uint32]*state.Header),
		blocksByHash:   make(map[hash.Uint256]*state.Block),
		blocksByIndex:  make(map[uint32]*state.Block),
		transactions:   make(map[hash.Uint256]*state.Transaction),
		txHeights:      make(map[hash.Uint256]uint32),
		contracts:      make(map[hash.Uint160]*state.Contract),
		items:          make(map[string]storage.Item),
	}
}

// Height implements snapshot.Snapshot.
func (s *Store) Height() uint32 { return s.height }

// SetHeight is a test/bootstrap helper.
func (s *Store) SetHeight(h uint32) { s.height = h }

// PersistingBlock implements snapshot.Snapshot.
func (s *Store) PersistingBlock() (*state.Block, bool) {
	if s.persistingBlock == nil {
		return nil, false
	}
	return s.persistingBlock, true
}

// SetPersistingBlock is a test/bootstrap helper; pass nil to clear it.
func (s *Store) SetPersistingBlock(b *state.Block) { s.persistingBlock = b }

// BestHeader implements snapshot.Snapshot.
func (s *Store) BestHeader() (*state.Header, bool) {
	if s.bestHeader == nil {
		return nil, false
	}
	return s.bestHeader, true
}

// SetBestHeader is a test/bootstrap helper.
func (s *Store) SetBestHeader(h *state.Header) { s.bestHeader = h }

// GetHeader implements snapshot.Snapshot.
func (s *Store) GetHeader(h hash.Uint256) (*state.Header, bool) {
	v, ok := s.headersByHash[h]
	return v, ok
}

// GetHeaderByIndex implements snapshot.Snapshot.
func (s *Store) GetHeaderByIndex(index uint32) (*state.Header, bool) {
	v, ok := s.headersByIndex[index]
	return v, ok
}

// GetBlock implements snapshot.Snapshot.
func (s *Store) GetBlock(h hash.Uint256) (*state.Block, bool) {
	v, ok := s.blocksByHash[h]
	return v, ok
}

// GetBlockByIndex implements snapshot.Snapshot.
func (s *Store) GetBlockByIndex(index uint32) (*state.Block, bool) {
	v, ok := s.blocksByIndex[index]
	return v, ok
}

// GetTransaction implements snapshot.Snapshot.
func (s *Store) GetTransaction(h hash.Uint256) (*state.Transaction, bool) {
	v, ok := s.transactions[h]
	return v, ok
}

// GetTransactionHeight implements snapshot.Snapshot.
func (s *Store) GetTransactionHeight(h hash.Uint256) (uint32, bool) {
	v, ok := s.txHeights[h]
	return v, ok
}

// GetContract implements snapshot.Snapshot.
func (s *Store) GetContract(h hash.Uint160) (*state.Contract, bool) {
	v, ok := s.contracts[h]
	return v, ok
}

// PutContract implements snapshot.Snapshot.
func (s *Store) PutContract(c *state.Contract) {
	s.contracts[c.Hash] = c
}

// DeleteContract implements snapshot.Snapshot.
func (s *Store) DeleteContract(h hash.Uint160) {
	delete(s.contracts, h)
}

// Storage implements snapshot.Snapshot.
func (s *Store) Storage() storage.Namespace { return (*namespace)(s) }

// Commit implements snapshot.Snapshot; there is nothing underneath an
// in-memory store to flush to.
func (s *Store) Commit() error { return nil }

// PutBlock is a test/bootstrap helper indexing a block by hash and index,
// along with its header and transactions.
func (s *Store) PutBlock(b *state.Block) {
	s.blocksByHash[b.Hash] = b
	s.blocksByIndex[b.Index] = b
	hdr := b.Header
	s.headersByHash[b.Hash] = &hdr
	s.headersByIndex[b.Index] = &hdr
	for _, tx := range b.Transactions {
		s.transactions[tx.Hash] = tx
		s.txHeights[tx.Hash] = b.Index
	}
}

type namespace Store

func (n *namespace) Get(key storage.Key) (storage.Item, bool) {
	v, ok := (*Store)(n).items[string(key.Encode())]
	return v, ok
}

func (n *namespace) Put(key storage.Key, item storage.Item) {
	(*Store)(n).items[string(key.Encode())] = item
}

func (n *namespace) Delete(key storage.Key) {
	delete((*Store)(n).items, string(key.Encode()))
}

func (n *namespace) Seek(prefix []byte, each func(storage.Key, storage.Item) bool) {
	for k, v := range (*Store)(n).items {
		if len(k) < len(prefix) || k[:len(prefix)] != string(prefix) {
			continue
		}
		key, err := storage.DecodeKey([]byte(k))
		if err != nil {
			continue
		}
		if !each(key, v) {
			return
		}
	}
}
