// Package leveldbstore is a second reference Snapshot adapter, backed by
// github.com/syndtr/goleveldb, exercising the module against a log-
// structured merge store rather than boltstore's B+tree — the spec leaves
// the concrete engine unspecified, so this module ships two to prove the
// façade is engine-agnostic.
package leveldbstore

import (
	"encoding/json"
	"fmt"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

var (
	prefixMeta         = byte('m')
	prefixHeader       = byte('h')
	prefixHeaderIndex  = byte('H')
	prefixBlock        = byte('b')
	prefixBlockIndex   = byte('B')
	prefixTransaction  = byte('t')
	prefixTxHeight     = byte('T')
	prefixContract     = byte('c')
	prefixStorage      = byte('s')

	keyHeight          = []byte{prefixMeta, 0x01}
	keyPersistingBlock = []byte{prefixMeta, 0x02}
	keyBestHeader      = []byte{prefixMeta, 0x03}
)

// Store is a goleveldb-backed Snapshot. Like boltstore, writes accumulate
// in memory and are flushed as one leveldb.Batch on Commit.
type Store struct {
	db *leveldb.DB

	height          uint32
	heightSet       bool
	persistingBlock *state.Block
	persistingSet   bool
	bestHeader      *state.Header
	bestHeaderSet   bool

	putContracts    map[hash.Uint160]*state.Contract
	deleteContracts map[hash.Uint160]bool
	putItems        map[string]storage.Item
	deleteItems     map[string]bool
}

// Open opens (creating if absent) a goleveldb database at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open leveldb database: %w", err)
	}
	return &Store{
		db:              db,
		putContracts:    make(map[hash.Uint160]*state.Contract),
		deleteContracts: make(map[hash.Uint160]bool),
		putItems:        make(map[string]storage.Item),
		deleteItems:     make(map[string]bool),
	}, nil
}

// Close releases the underlying leveldb handle.
func (s *Store) Close() error { return s.db.Close() }

func withPrefix(p byte, b []byte) []byte {
	out := make([]byte, 1+len(b))
	out[0] = p
	copy(out[1:], b)
	return out
}

func indexKey(p byte, index uint32) []byte {
	v, _ := json.Marshal(index)
	return withPrefix(p, v)
}

// Height implements snapshot.Snapshot.
func (s *Store) Height() uint32 {
	if s.heightSet {
		return s.height
	}
	v, err := s.db.Get(keyHeight, nil)
	if err != nil {
		return 0
	}
	var h uint32
	_ = json.Unmarshal(v, &h)
	return h
}

// SetHeight stages the new chain height.
func (s *Store) SetHeight(h uint32) {
	s.height = h
	s.heightSet = true
}

// PersistingBlock implements snapshot.Snapshot.
func (s *Store) PersistingBlock() (*state.Block, bool) {
	if s.persistingSet {
		if s.persistingBlock == nil {
			return nil, false
		}
		return s.persistingBlock, true
	}
	v, err := s.db.Get(keyPersistingBlock, nil)
	if err != nil {
		return nil, false
	}
	var b state.Block
	if err := json.Unmarshal(v, &b); err != nil {
		return nil, false
	}
	return &b, true
}

// SetPersistingBlock stages the currently persisting block.
func (s *Store) SetPersistingBlock(b *state.Block) {
	s.persistingBlock = b
	s.persistingSet = true
}

// BestHeader implements snapshot.Snapshot.
func (s *Store) BestHeader() (*state.Header, bool) {
	if s.bestHeaderSet {
		if s.bestHeader == nil {
			return nil, false
		}
		return s.bestHeader, true
	}
	v, err := s.db.Get(keyBestHeader, nil)
	if err != nil {
		return nil, false
	}
	var h state.Header
	if err := json.Unmarshal(v, &h); err != nil {
		return nil, false
	}
	return &h, true
}

// SetBestHeader stages the new best header.
func (s *Store) SetBestHeader(h *state.Header) {
	s.bestHeader = h
	s.bestHeaderSet = true
}

// GetHeader implements snapshot.Snapshot.
func (s *Store) GetHeader(h hash.Uint256) (*state.Header, bool) {
	v, err := s.db.Get(withPrefix(prefixHeader, h.BytesLE()), nil)
	if err != nil {
		return nil, false
	}
	var decoded state.Header
	if err := json.Unmarshal(v, &decoded); err != nil {
		return nil, false
	}
	return &decoded, true
}

// GetHeaderByIndex implements snapshot.Snapshot.
func (s *Store) GetHeaderByIndex(index uint32) (*state.Header, bool) {
	v, err := s.db.Get(indexKey(prefixHeaderIndex, index), nil)
	if err != nil {
		return nil, false
	}
	h, err := hash.Uint256DecodeBytesLE(v)
	if err != nil {
		return nil, false
	}
	return s.GetHeader(h)
}

// GetBlock implements snapshot.Snapshot.
func (s *Store) GetBlock(h hash.Uint256) (*state.Block, bool) {
	v, err := s.db.Get(withPrefix(prefixBlock, h.BytesLE()), nil)
	if err != nil {
		return nil, false
	}
	var decoded state.Block
	if err := json.Unmarshal(v, &decoded); err != nil {
		return nil, false
	}
	return &decoded, true
}

// GetBlockByIndex implements snapshot.Snapshot.
func (s *Store) GetBlockByIndex(index uint32) (*state.Block, bool) {
	v, err := s.db.Get(indexKey(prefixBlockIndex, index), nil)
	if err != nil {
		return nil, false
	}
	h, err := hash.Uint256DecodeBytesLE(v)
	if err != nil {
		return nil, false
	}
	return s.GetBlock(h)
}

// GetTransaction implements snapshot.Snapshot.
func (s *Store) GetTransaction(h hash.Uint256) (*state.Transaction, bool) {
	v, err := s.db.Get(withPrefix(prefixTransaction, h.BytesLE()), nil)
	if err != nil {
		return nil, false
	}
	var decoded state.Transaction
	if err := json.Unmarshal(v, &decoded); err != nil {
		return nil, false
	}
	return &decoded, true
}

// GetTransactionHeight implements snapshot.Snapshot.
func (s *Store) GetTransactionHeight(h hash.Uint256) (uint32, bool) {
	v, err := s.db.Get(withPrefix(prefixTxHeight, h.BytesLE()), nil)
	if err != nil {
		return 0, false
	}
	var height uint32
	if err := json.Unmarshal(v, &height); err != nil {
		return 0, false
	}
	return height, true
}

// GetContract implements snapshot.Snapshot.
func (s *Store) GetContract(h hash.Uint160) (*state.Contract, bool) {
	if c, ok := s.putContracts[h]; ok {
		return c, true
	}
	if s.deleteContracts[h] {
		return nil, false
	}
	v, err := s.db.Get(withPrefix(prefixContract, h.BytesLE()), nil)
	if err != nil {
		return nil, false
	}
	var decoded state.Contract
	if err := json.Unmarshal(v, &decoded); err != nil {
		return nil, false
	}
	return &decoded, true
}

// PutContract implements snapshot.Snapshot.
func (s *Store) PutContract(c *state.Contract) {
	s.putContracts[c.Hash] = c
	delete(s.deleteContracts, c.Hash)
}

// DeleteContract implements snapshot.Snapshot.
func (s *Store) DeleteContract(h hash.Uint160) {
	s.deleteContracts[h] = true
	delete(s.putContracts, h)
}

// Storage implements snapshot.Snapshot.
func (s *Store) Storage() storage.Namespace { return (*namespace)(s) }

// Commit flushes every staged change as one leveldb.Batch.
func (s *Store) Commit() error {
	batch := new(leveldb.Batch)
	if s.heightSet {
		v, err := json.Marshal(s.height)
		if err != nil {
			return err
		}
		batch.Put(keyHeight, v)
	}
	if s.persistingSet {
		if s.persistingBlock == nil {
			batch.Delete(keyPersistingBlock)
		} else {
			v, err := json.Marshal(s.persistingBlock)
			if err != nil {
				return err
			}
			batch.Put(keyPersistingBlock, v)
		}
	}
	if s.bestHeaderSet {
		if s.bestHeader == nil {
			batch.Delete(keyBestHeader)
		} else {
			v, err := json.Marshal(s.bestHeader)
			if err != nil {
				return err
			}
			batch.Put(keyBestHeader, v)
		}
	}
	for h, c := range s.putContracts {
		v, err := json.Marshal(c)
		if err != nil {
			return err
		}
		batch.Put(withPrefix(prefixContract, h.BytesLE()), v)
	}
	for h := range s.deleteContracts {
		batch.Delete(withPrefix(prefixContract, h.BytesLE()))
	}
	for k, item := range s.putItems {
		v, err := json.Marshal(item)
		if err != nil {
			return err
		}
		batch.Put(withPrefix(prefixStorage, []byte(k)), v)
	}
	for k := range s.deleteItems {
		batch.Delete(withPrefix(prefixStorage, []byte(k)))
	}
	if err := s.db.Write(batch, nil); err != nil {
		return err
	}
	s.heightSet = false
	s.persistingSet = false
	s.bestHeaderSet = false
	s.putContracts = make(map[hash.Uint160]*state.Contract)
	s.deleteContracts = make(map[hash.Uint160]bool)
	s.putItems = make(map[string]storage.Item)
	s.deleteItems = make(map[string]bool)
	return nil
}

// PutBlock writes a block, its header and its transactions directly,
// bypassing the staged-write path — a bootstrap/test helper.
func (s *Store) PutBlock(b *state.Block) error {
	batch := new(leveldb.Batch)
	blockBytes, err := json.Marshal(b)
	if err != nil {
		return err
	}
	batch.Put(withPrefix(prefixBlock, b.Hash.BytesLE()), blockBytes)
	batch.Put(indexKey(prefixBlockIndex, b.Index), b.Hash.BytesLE())

	hdr := b.Header
	headerBytes, err := json.Marshal(&hdr)
	if err != nil {
		return err
	}
	batch.Put(withPrefix(prefixHeader, b.Hash.BytesLE()), headerBytes)
	batch.Put(indexKey(prefixHeaderIndex, b.Index), b.Hash.BytesLE())

	for _, t := range b.Transactions {
		txBytes, err := json.Marshal(t)
		if err != nil {
			return err
		}
		batch.Put(withPrefix(prefixTransaction, t.Hash.BytesLE()), txBytes)
		heightBytes, err := json.Marshal(b.Index)
		if err != nil {
			return err
		}
		batch.Put(withPrefix(prefixTxHeight, t.Hash.BytesLE()), heightBytes)
	}
	return s.db.Write(batch, nil)
}

type namespace Store

func (n *namespace) Get(key storage.Key) (storage.Item, bool) {
	s := (*Store)(n)
	k := string(key.Encode())
	if item, ok := s.putItems[k]; ok {
		return item, true
	}
	if s.deleteItems[k] {
		return storage.Item{}, false
	}
	v, err := s.db.Get(withPrefix(prefixStorage, []byte(k)), nil)
	if err != nil {
		return storage.Item{}, false
	}
	var item storage.Item
	if err := json.Unmarshal(v, &item); err != nil {
		return storage.Item{}, false
	}
	return item, true
}

func (n *namespace) Put(key storage.Key, item storage.Item) {
	s := (*Store)(n)
	k := string(key.Encode())
	s.putItems[k] = item
	delete(s.deleteItems, k)
}

func (n *namespace) Delete(key storage.Key) {
	s := (*Store)(n)
	k := string(key.Encode())
	s.deleteItems[k] = true
	delete(s.putItems, k)
}

func (n *namespace) Seek(prefix []byte, each func(storage.Key, storage.Item) bool) {
	s := (*Store)(n)
	seen := make(map[string]bool)
	for k, item := range s.putItems {
		seen[k] = true
		if len(k) < len(prefix) || k[:len(prefix)] != string(prefix) {
			continue
		}
		key, err := storage.DecodeKey([]byte(k))
		if err != nil {
			continue
		}
		if !each(key, item) {
			return
		}
	}
	rng := util.BytesPrefix(withPrefix(prefixStorage, prefix))
	it := s.db.NewIterator(rng, nil)
	defer it.Release()
	for it.Next() {
		rawKey := it.Key()
		k := string(rawKey[1:])
		if seen[k] || s.deleteItems[k] {
			continue
		}
		var item storage.Item
		if err := json.Unmarshal(it.Value(), &item); err != nil {
			continue
		}
		key, err := storage.DecodeKey([]byte(k))
		if err != nil {
			continue
		}
		if !each(key, item) {
			return
		}
	}
}
