package ledger

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/nspcc-dev/neo-go/pkg/core/storage"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"go.uber.org/zap"
)

// World executes contract operations against the persistent store in the
// current process. Submitted invocations are applied one at a time: each
// one either commits all of its writes or none of them.
//
// World must be constructed using NewWorld.
type World struct {
	mtx sync.RWMutex

	store   storage.Store
	methods Dispatcher
	log     *zap.Logger
}

// NewWorld constructs World over the given store resolving operations using
// methods. Nil logger disables logging. World takes ownership of the store.
func NewWorld(store storage.Store, methods Dispatcher, log *zap.Logger) *World {
	if log == nil {
		log = zap.NewNop()
	}

	return &World{
		store:   store,
		methods: methods,
		log:     log,
	}
}

// Call evaluates the named operation without changing the world state and
// returns its payload. Writes of the operation, if any, are discarded.
func (x *World) Call(ctx context.Context, name string, args ...string) ([]byte, error) {
	m, err := x.methods.Lookup(name)
	if err != nil {
		return nil, err
	}

	x.mtx.RLock()
	defer x.mtx.RUnlock()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	res, err := m.Handler(NewStagedStore(x.store), args)
	if err != nil {
		return nil, fmt.Errorf("call %s: %w", name, err)
	}

	return EncodeResult(res)
}

// Submit executes the named operation and commits its writes if it succeeds.
// Failed operation leaves the world state untouched.
func (x *World) Submit(ctx context.Context, name string, args ...string) ([]byte, error) {
	m, err := x.methods.Lookup(name)
	if err != nil {
		return nil, err
	}

	x.mtx.Lock()
	defer x.mtx.Unlock()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	txID := uuid.New()
	staged := NewStagedStore(x.store)

	res, err := m.Handler(staged, args)
	if err != nil {
		x.log.Warn("transaction failed, writes discarded",
			zap.Stringer("tx", txID), zap.String("method", name), zap.Error(err))
		return nil, fmt.Errorf("submit %s: %w", name, err)
	}

	payload, err := EncodeResult(res)
	if err != nil {
		return nil, fmt.Errorf("encode %s result: %w", name, err)
	}

	if !m.Safe {
		if err = staged.Commit(); err != nil {
			return nil, fmt.Errorf("commit %s: %w", name, err)
		}
	}

	x.log.Debug("transaction committed",
		zap.Stringer("tx", txID), zap.String("method", name), zap.Int("writes", staged.Writes()))

	return payload, nil
}

// Import writes items passed by f to put into the world state in a single
// commit. Nothing is written if f fails.
func (x *World) Import(ctx context.Context, f func(put func(key string, value []byte) error) error) error {
	x.mtx.Lock()
	defer x.mtx.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	staged := NewStagedStore(x.store)

	err := f(staged.PutState)
	if err != nil {
		return err
	}

	if err = staged.Commit(); err != nil {
		return err
	}

	x.log.Info("world state imported", zap.Int("items", staged.Writes()))

	return nil
}

// Export passes all world state items into f in ascending key order.
func (x *World) Export(f func(KV) error) error {
	x.mtx.RLock()
	defer x.mtx.RUnlock()

	return Range(NewStagedStore(x.store), "", "", f)
}

// StateHash returns digest of the current world state, see StateHash.
func (x *World) StateHash() (util.Uint256, error) {
	x.mtx.RLock()
	defer x.mtx.RUnlock()

	return StateHash(NewStagedStore(x.store))
}

// Close closes the underlying store.
func (x *World) Close() error {
	x.mtx.Lock()
	defer x.mtx.Unlock()

	return x.store.Close()
}
