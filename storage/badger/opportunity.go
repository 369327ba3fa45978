package badger

import (
	"context"
	"strconv"
	"time"

	"github.com/dgraph-io/badger/v4"

	"github.com/altitut/FundingMatch-sub001/core"
	"github.com/altitut/FundingMatch-sub001/storage"
)

// OpportunityRepository implements storage.OpportunityRepository for BadgerDB.
type OpportunityRepository struct {
	backend *Backend
}

var _ storage.OpportunityRepository = (*OpportunityRepository)(nil)

// NewOpportunityRepository creates a new OpportunityRepository.
func NewOpportunityRepository(backend *Backend) *OpportunityRepository {
	return &OpportunityRepository{
		backend: backend,
	}
}

// Close is a no-op; the backend owns the database handle.
func (r *OpportunityRepository) Close() error {
	return nil
}

// FindSimilar delegates to the backend.
func (r *OpportunityRepository) FindSimilar(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.SearchResult, error) {
	return r.backend.FindSimilar(ctx, vector, minSimilarity, limit)
}

// WithTransaction delegates to the backend.
func (r *OpportunityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return r.backend.WithTransaction(ctx, fn)
}

// AddOpportunities adds one or more opportunities to storage.
// IDs are content-based: re-adding the same opportunity overwrites in place.
func (r *OpportunityRepository) AddOpportunities(ctx context.Context, opps ...*core.Opportunity) ([]*core.Opportunity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, opp := range opps {
			if opp.Id == 0 {
				opp.Id = core.IDFromContent(opp.IdentityKey())
			}

			if opp.InsertedAt.IsZero() {
				opp.InsertedAt = time.Now().UTC()
			}
			opp.UpdatedAt = opp.InsertedAt

			key := makeOpportunityKey(opp.Id)
			value := storage.MarshalOpportunity(opp)
			if err := tx.Set(key, value); err != nil {
				return err
			}
			if err := tx.Set(makeAgencyIndexKey(opp.Agency, opp.Id), nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return opps, err
}

// UpdateOpportunities updates existing opportunities.
func (r *OpportunityRepository) UpdateOpportunities(ctx context.Context, opps ...*core.Opportunity) ([]*core.Opportunity, error) {
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, opp := range opps {
			key := makeOpportunityKey(opp.Id)

			old, err := readOpportunity(tx, key)
			if err != nil {
				return err
			}
			if old == nil {
				return storage.ErrNotFound
			}

			opp.InsertedAt = old.InsertedAt
			opp.UpdatedAt = time.Now().UTC()

			value := storage.MarshalOpportunity(opp)
			if err := tx.Set(key, value); err != nil {
				return err
			}
			if old.Agency != opp.Agency {
				if err := tx.Delete(makeAgencyIndexKey(old.Agency, opp.Id)); err != nil {
					return err
				}
			}
			if err := tx.Set(makeAgencyIndexKey(opp.Agency, opp.Id), nil); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	return opps, err
}

// DeleteOpportunities removes opportunities by their IDs.
func (r *OpportunityRepository) DeleteOpportunities(ctx context.Context, ids ...core.ID) error {
	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeOpportunityKey(id)

			opp, err := readOpportunity(tx, key)
			if err != nil {
				return err
			}
			if opp == nil {
				return storage.ErrNotFound
			}

			if err := tx.Delete(key); err != nil {
				return err
			}
			if err := tx.Delete(makeAgencyIndexKey(opp.Agency, id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetOpportunity retrieves a single opportunity by ID.
func (r *OpportunityRepository) GetOpportunity(ctx context.Context, id core.ID) (*core.Opportunity, error) {
	var result *core.Opportunity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		key := makeOpportunityKey(id)
		var err error
		result, err = readOpportunity(tx, key)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetOpportunities retrieves multiple opportunities by their IDs.
func (r *OpportunityRepository) GetOpportunities(ctx context.Context, ids ...core.ID) ([]*core.Opportunity, error) {
	var result []*core.Opportunity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeOpportunityKey(id)
			opp, err := readOpportunity(tx, key)
			if err != nil {
				return err
			}
			if opp != nil {
				result = append(result, opp)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetAllOpportunities retrieves every stored opportunity.
func (r *OpportunityRepository) GetAllOpportunities(ctx context.Context) ([]*core.Opportunity, error) {
	var result []*core.Opportunity
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(opportunityPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var opp *core.Opportunity
			err := iter.Item().Value(func(val []byte) error {
				var err error
				opp, err = storage.UnmarshalOpportunity(val)
				return err
			})
			if err != nil {
				return err
			}
			if opp != nil {
				result = append(result, opp)
			}
		}
		return nil
	}, false)
	return result, err
}

// GetOpportunitiesByAgency retrieves every opportunity for one agency using
// the agency index.
func (r *OpportunityRepository) GetOpportunitiesByAgency(ctx context.Context, agency string) ([]*core.Opportunity, error) {
	var ids []core.ID
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		prefix := agencyScanPrefix(agency)
		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			suffix := iter.Item().Key()[len(prefix):]
			id, err := strconv.ParseUint(string(suffix), 10, 64)
			if err != nil {
				return err
			}
			ids = append(ids, core.ID(id))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return r.GetOpportunities(ctx, ids...)
}

// readOpportunity reads an opportunity from the transaction.
// Returns nil, nil if the key is absent.
func readOpportunity(tx *badger.Txn, key []byte) (*core.Opportunity, error) {
	item, err := tx.Get(key)
	if err != nil {
		if err == badger.ErrKeyNotFound {
			return nil, nil
		}
		return nil, err
	}

	var opp *core.Opportunity
	err = item.Value(func(val []byte) error {
		var unmarshalErr error
		opp, unmarshalErr = storage.UnmarshalOpportunity(val)
		return unmarshalErr
	})
	return opp, err
}
