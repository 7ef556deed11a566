package commitstore

import (
	"errors"
	"sync"

	"github.com/google/uuid"
	"github.com/mr-shifu/commitment-lib/pkg/common/commitstore"
)

var (
	ErrCommitmentAlreadyExists = errors.New("commitstore: commitment already exists")
	ErrCommitmentNotFound      = errors.New("commitstore: commitment not found")
)

// InMemoryCommitStore keeps serialized commitment records in an in-memory
// vault keyed by a minted storage key, with a commitment-id index on top.
// The store lock makes the duplicate-id check in ImportNew atomic; callers
// sharing a committer or receiver across goroutines still need to serialize
// the surrounding protocol calls.
type InMemoryCommitStore struct {
	lock  sync.RWMutex
	index map[uint64]string
	vault map[string][]byte
}

func NewInMemoryCommitStore() *InMemoryCommitStore {
	return &InMemoryCommitStore{
		index: make(map[uint64]string),
		vault: make(map[string][]byte),
	}
}

func (cs *InMemoryCommitStore) ImportNew(id uint64, commitment *commitstore.Commitment) error {
	cb, err := commitment.Bytes()
	if err != nil {
		return err
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	if _, ok := cs.index[id]; ok {
		return ErrCommitmentAlreadyExists
	}

	ski := uuid.New().String()
	cs.index[id] = ski
	cs.vault[ski] = cb
	return nil
}

func (cs *InMemoryCommitStore) Import(id uint64, commitment *commitstore.Commitment) error {
	cb, err := commitment.Bytes()
	if err != nil {
		return err
	}

	cs.lock.Lock()
	defer cs.lock.Unlock()

	ski, ok := cs.index[id]
	if !ok {
		ski = uuid.New().String()
		cs.index[id] = ski
	}
	cs.vault[ski] = cb
	return nil
}

func (cs *InMemoryCommitStore) Get(id uint64) (*commitstore.Commitment, error) {
	cs.lock.RLock()
	defer cs.lock.RUnlock()

	ski, ok := cs.index[id]
	if !ok {
		return nil, ErrCommitmentNotFound
	}
	cb, ok := cs.vault[ski]
	if !ok {
		return nil, ErrCommitmentNotFound
	}

	return commitstore.FromBytes(cb)
}

func (cs *InMemoryCommitStore) Delete(id uint64) error {
	cs.lock.Lock()
	defer cs.lock.Unlock()

	ski, ok := cs.index[id]
	if !ok {
		return ErrCommitmentNotFound
	}
	delete(cs.vault, ski)
	delete(cs.index, id)
	return nil
}
