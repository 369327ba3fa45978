// Copyright 2025 The FundingMatch Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"encoding/binary"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
)

// CheckpointRepository implements storage.CheckpointRepository for BadgerDB.
type CheckpointRepository struct {
	backend *Backend
}

var _ storage.CheckpointRepository = (*CheckpointRepository)(nil)

// NewCheckpointRepository creates a new CheckpointRepository.
func NewCheckpointRepository(backend *Backend) *CheckpointRepository {
	return &CheckpointRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (r *CheckpointRepository) Close() error {
	return nil
}

// WithTransaction delegates to the backend.
func (r *CheckpointRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// PutCheckpoint records an opportunity as processed.
func (r *CheckpointRepository) PutCheckpoint(ctx context.Context, cp *core.IngestCheckpoint) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeCheckpointKey(cp.OpportunityId)
		value := storage.MarshalCheckpoint(cp)
		if err := tx.Set(key, value); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// HasCheckpoint reports whether an unexpired checkpoint exists for the ID.
func (r *CheckpointRepository) HasCheckpoint(ctx context.Context, id core.ID, now time.Time) (bool, error) {
	var found bool
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeCheckpointKey(id))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			cp, unmarshalErr := storage.UnmarshalCheckpoint(val)
			if unmarshalErr != nil {
				return unmarshalErr
			}
			found = cp.ExpiresAt.After(now)
			return nil
		})
	}, false)

	return found, err
}

// DeleteCheckpoint removes the checkpoint for the ID.
func (r *CheckpointRepository) DeleteCheckpoint(ctx context.Context, id core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeCheckpointKey(id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// ListCheckpoints retrieves every stored checkpoint.
func (r *CheckpointRepository) ListCheckpoints(ctx context.Context) ([]*core.IngestCheckpoint, error) {
	var result []*core.IngestCheckpoint
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(checkpointPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var cp *core.IngestCheckpoint
			err := iter.Item().Value(func(val []byte) error {
				var err error
				cp, err = storage.UnmarshalCheckpoint(val)
				return err
			})
			if err != nil {
				return err
			}
			if cp != nil {
				result = append(result, cp)
			}
		}
		return nil
	}, false)
	return result, err
}

// PurgeExpired removes all checkpoints whose ExpiresAt is before now.
func (r *CheckpointRepository) PurgeExpired(ctx context.Context, now time.Time) (int, error) {
	var expired []core.ID

	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(checkpointPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				cp, unmarshalErr := storage.UnmarshalCheckpoint(val)
				if unmarshalErr != nil {
					return unmarshalErr
				}
				if cp.ExpiresAt.Before(now) {
					expired = append(expired, cp.OpportunityId)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return 0, err
	}

	err = r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range expired {
			if err := tx.Delete(makeCheckpointKey(id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
	if err != nil {
		return 0, err
	}

	return len(expired), nil
}

// LastPurge returns the time of the most recent purge.
func (r *CheckpointRepository) LastPurge(ctx context.Context) (time.Time, error) {
	var t time.Time
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get([]byte(lastPurgeKey))
		if err != nil {
			if err == badger.ErrKeyNotFound {
				return nil
			}
			return err
		}

		return item.Value(func(val []byte) error {
			if len(val) != 8 {
				return storage.ErrSerializationFailed
			}
			t = time.UnixMicro(int64(binary.BigEndian.Uint64(val))).UTC()
			return nil
		})
	}, false)

	return t, err
}

// SetLastPurge records the time of the most recent purge.
func (r *CheckpointRepository) SetLastPurge(ctx context.Context, t time.Time) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, uint64(t.UnixMicro()))
		if err := tx.Set([]byte(lastPurgeKey), buf); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
