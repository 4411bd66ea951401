// Package boltstore is a Snapshot adapter backed by go.etcd.io/bbolt, with
// an in-process LRU in front of the contract bucket — contract lookups
// dominate syscall traffic (every Contract.Call checks has_storage) and are
// small enough to cache wholesale. Writes accumulate in memory and are
// flushed to bbolt in a single read-write transaction on Commit, mirroring
// neo-go's dao.DAO/Persist split (cache mutations, batch-write once).
package boltstore

import (
	"encoding/json"
	"fmt"

	lru "github.com/hashicorp/golang-lru"
	bolt "go.etcd.io/bbolt"

	"github.com/nspcc-dev/neo-interop/pkg/hash"
	"github.com/nspcc-dev/neo-interop/pkg/state"
	"github.com/nspcc-dev/neo-interop/pkg/storage"
)

var (
	bucketMeta         = []byte("meta")
	bucketHeaders      = []byte("headers")
	bucketHeaderIndex  = []byte("header_index")
	bucketBlocks       = []byte("blocks")
	bucketBlockIndex   = []byte("block_index")
	bucketTransactions = []byte("transactions")
	bucketTxHeights    = []byte("tx_heights")
	bucketContracts    = []byte("contracts")
	bucketStorage      = []byte("storage")

	keyHeight          = []byte("height")
	keyPersistingBlock = []byte("persisting_block")
	keyBestHeader      = []byte("best_header")
)

var allBuckets = [][]byte{
	bucketMeta, bucketHeaders, bucketHeaderIndex, bucketBlocks, bucketBlockIndex,
	bucketTransactions, bucketTxHeights, bucketContracts, bucketStorage,
}

// Store is a bbolt-backed Snapshot. It is not safe for concurrent use,
// matching every other Snapshot implementation in this module (spec §5:
// one session owns the façade for its lifetime).
type Store struct {
	db            *bolt.DB
	contractCache *lru.Cache

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

// Open creates or opens a bbolt database at path and returns a Store over
// it, with a contract LRU of cacheSize entries.
func Open(path string, cacheSize int) (*Store, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("open bolt database: %w", err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		for _, b := range allBuckets {
			if _, err := tx.CreateBucketIfNotExists(b); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		db.Close()
		return nil, fmt.Errorf("init buckets: %w", err)
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("init contract cache: %w", err)
	}
	return &Store{
		db:              db,
		contractCache:   cache,
		putContracts:    make(map[hash.Uint160]*state.Contract),
		deleteContracts: make(map[hash.Uint160]bool),
		putItems:        make(map[string]storage.Item),
		deleteItems:     make(map[string]bool),
	}, nil
}

// Close releases the underlying bbolt database handle.
func (s *Store) Close() error { return s.db.Close() }

// Height implements snapshot.Snapshot.
func (s *Store) Height() uint32 {
	if s.heightSet {
		return s.height
	}
	var h uint32
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketMeta).Get(keyHeight)
		if v != nil {
			_ = json.Unmarshal(v, &h)
		}
		return nil
	})
	return h
}

// SetHeight records the new chain height, staged until Commit.
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
	var b *state.Block
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketMeta).Get(keyPersistingBlock)
		if v == nil {
			return nil
		}
		var decoded state.Block
		if err := json.Unmarshal(v, &decoded); err != nil {
			return err
		}
		b = &decoded
		return nil
	})
	return b, b != nil
}

// SetPersistingBlock stages the currently persisting block; pass nil to
// clear it.
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
	var h *state.Header
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketMeta).Get(keyBestHeader)
		if v == nil {
			return nil
		}
		var decoded state.Header
		if err := json.Unmarshal(v, &decoded); err != nil {
			return err
		}
		h = &decoded
		return nil
	})
	return h, h != nil
}

// SetBestHeader stages the new best header.
func (s *Store) SetBestHeader(h *state.Header) {
	s.bestHeader = h
	s.bestHeaderSet = true
}

// GetHeader implements snapshot.Snapshot.
func (s *Store) GetHeader(h hash.Uint256) (*state.Header, bool) {
	var out *state.Header
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketHeaders).Get(h.BytesLE())
		if v == nil {
			return nil
		}
		var decoded state.Header
		if err := json.Unmarshal(v, &decoded); err != nil {
			return err
		}
		out = &decoded
		return nil
	})
	return out, out != nil
}

// GetHeaderByIndex implements snapshot.Snapshot.
func (s *Store) GetHeaderByIndex(index uint32) (*state.Header, bool) {
	var h hash.Uint256
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketHeaderIndex).Get(indexKey(index))
		if v == nil {
			return nil
		}
		decoded, err := hash.Uint256DecodeBytesLE(v)
		if err != nil {
			return err
		}
		h = decoded
		found = true
		return nil
	})
	if !found {
		return nil, false
	}
	return s.GetHeader(h)
}

// GetBlock implements snapshot.Snapshot.
func (s *Store) GetBlock(h hash.Uint256) (*state.Block, bool) {
	var out *state.Block
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketBlocks).Get(h.BytesLE())
		if v == nil {
			return nil
		}
		var decoded state.Block
		if err := json.Unmarshal(v, &decoded); err != nil {
			return err
		}
		out = &decoded
		return nil
	})
	return out, out != nil
}

// GetBlockByIndex implements snapshot.Snapshot.
func (s *Store) GetBlockByIndex(index uint32) (*state.Block, bool) {
	var h hash.Uint256
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketBlockIndex).Get(indexKey(index))
		if v == nil {
			return nil
		}
		decoded, err := hash.Uint256DecodeBytesLE(v)
		if err != nil {
			return err
		}
		h = decoded
		found = true
		return nil
	})
	if !found {
		return nil, false
	}
	return s.GetBlock(h)
}

// GetTransaction implements snapshot.Snapshot.
func (s *Store) GetTransaction(h hash.Uint256) (*state.Transaction, bool) {
	var out *state.Transaction
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketTransactions).Get(h.BytesLE())
		if v == nil {
			return nil
		}
		var decoded state.Transaction
		if err := json.Unmarshal(v, &decoded); err != nil {
			return err
		}
		out = &decoded
		return nil
	})
	return out, out != nil
}

// GetTransactionHeight implements snapshot.Snapshot.
func (s *Store) GetTransactionHeight(h hash.Uint256) (uint32, bool) {
	var height uint32
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketTxHeights).Get(h.BytesLE())
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &height); err != nil {
			return err
		}
		found = true
		return nil
	})
	return height, found
}

// GetContract implements snapshot.Snapshot, consulting the LRU before
// falling back to bbolt.
func (s *Store) GetContract(h hash.Uint160) (*state.Contract, bool) {
	if c, ok := s.putContracts[h]; ok {
		return c, true
	}
	if s.deleteContracts[h] {
		return nil, false
	}
	if v, ok := s.contractCache.Get(h); ok {
		return v.(*state.Contract), true
	}
	var out *state.Contract
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketContracts).Get(h.BytesLE())
		if v == nil {
			return nil
		}
		var decoded state.Contract
		if err := json.Unmarshal(v, &decoded); err != nil {
			return err
		}
		out = &decoded
		return nil
	})
	if out != nil {
		s.contractCache.Add(h, out)
	}
	return out, out != nil
}

// PutContract implements snapshot.Snapshot.
func (s *Store) PutContract(c *state.Contract) {
	s.putContracts[c.Hash] = c
	delete(s.deleteContracts, c.Hash)
	s.contractCache.Remove(c.Hash)
}

// DeleteContract implements snapshot.Snapshot.
func (s *Store) DeleteContract(h hash.Uint160) {
	s.deleteContracts[h] = true
	delete(s.putContracts, h)
	s.contractCache.Remove(h)
}

// Storage implements snapshot.Snapshot.
func (s *Store) Storage() storage.Namespace { return (*namespace)(s) }

// Commit flushes every staged change to bbolt in one read-write
// transaction.
func (s *Store) Commit() error {
	err := s.db.Update(func(tx *bolt.Tx) error {
		meta := tx.Bucket(bucketMeta)
		if s.heightSet {
			v, err := json.Marshal(s.height)
			if err != nil {
				return err
			}
			if err := meta.Put(keyHeight, v); err != nil {
				return err
			}
		}
		if s.persistingSet {
			if err := putOrDeleteJSON(meta, keyPersistingBlock, s.persistingBlock); err != nil {
				return err
			}
		}
		if s.bestHeaderSet {
			if err := putOrDeleteJSON(meta, keyBestHeader, s.bestHeader); err != nil {
				return err
			}
		}

		contracts := tx.Bucket(bucketContracts)
		for h, c := range s.putContracts {
			v, err := json.Marshal(c)
			if err != nil {
				return err
			}
			if err := contracts.Put(h.BytesLE(), v); err != nil {
				return err
			}
		}
		for h := range s.deleteContracts {
			if err := contracts.Delete(h.BytesLE()); err != nil {
				return err
			}
		}

		items := tx.Bucket(bucketStorage)
		for k, item := range s.putItems {
			v, err := json.Marshal(item)
			if err != nil {
				return err
			}
			if err := items.Put([]byte(k), v); err != nil {
				return err
			}
		}
		for k := range s.deleteItems {
			if err := items.Delete([]byte(k)); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
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

// PutBlock writes a block, its header and its transactions directly to
// bbolt — a bootstrap/test helper, not part of the staged-write path the
// syscall layer uses.
func (s *Store) PutBlock(b *state.Block) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		blockBytes, err := json.Marshal(b)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketBlocks).Put(b.Hash.BytesLE(), blockBytes); err != nil {
			return err
		}
		if err := tx.Bucket(bucketBlockIndex).Put(indexKey(b.Index), b.Hash.BytesLE()); err != nil {
			return err
		}
		hdr := b.Header
		headerBytes, err := json.Marshal(&hdr)
		if err != nil {
			return err
		}
		if err := tx.Bucket(bucketHeaders).Put(b.Hash.BytesLE(), headerBytes); err != nil {
			return err
		}
		if err := tx.Bucket(bucketHeaderIndex).Put(indexKey(b.Index), b.Hash.BytesLE()); err != nil {
			return err
		}
		for _, t := range b.Transactions {
			txBytes, err := json.Marshal(t)
			if err != nil {
				return err
			}
			if err := tx.Bucket(bucketTransactions).Put(t.Hash.BytesLE(), txBytes); err != nil {
				return err
			}
			heightBytes, err := json.Marshal(b.Index)
			if err != nil {
				return err
			}
			if err := tx.Bucket(bucketTxHeights).Put(t.Hash.BytesLE(), heightBytes); err != nil {
				return err
			}
		}
		return nil
	})
}

func putOrDeleteJSON(b *bolt.Bucket, key []byte, v interface{}) error {
	if v == nil {
		return b.Delete(key)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return b.Put(key, data)
}

func indexKey(index uint32) []byte {
	v, _ := json.Marshal(index)
	return v
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
	var out storage.Item
	found := false
	_ = s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(bucketStorage).Get([]byte(k))
		if v == nil {
			return nil
		}
		if err := json.Unmarshal(v, &out); err != nil {
			return err
		}
		found = true
		return nil
	})
	return out, found
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
	_ = s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketStorage).Cursor()
		for k, v := c.Seek(prefix); k != nil && len(k) >= len(prefix) && string(k[:len(prefix)]) == string(prefix); k, v = c.Next() {
			sk := string(k)
			if seen[sk] || s.deleteItems[sk] {
				continue
			}
			var item storage.Item
			if err := json.Unmarshal(v, &item); err != nil {
				continue
			}
			key, err := storage.DecodeKey(k)
			if err != nil {
				continue
			}
			if !each(key, item) {
				return nil
			}
		}
		return nil
	})
}
