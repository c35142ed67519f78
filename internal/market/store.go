package market

import (
	"sync"

	"github.com/google/uuid"
)

// Store owns every market record in the system. All access goes through
// its methods; callers always receive copies, never aliases into the
// internal slice. A single mutex guards mutation so the store stays
// correct if a surface ever drives it from more than one goroutine.
type Store struct {
	mu      sync.Mutex
	records []Record
	nextSeq uint64
}

// NewStore creates a store seeded with the given records. Seed records
// without an id get one assigned; insertion sequence follows slice order,
// so later seed entries count as more recently added.
func NewStore(seed ...Record) *Store {
	s := &Store{records: make([]Record, 0, len(seed))}
	for _, r := range seed {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		s.nextSeq++
		r.seq = s.nextSeq
		s.records = append(s.records, r)
	}
	return s
}

// Add inserts a new record, assigning a fresh unique id, and returns the
// stored record. It never fails for well-typed input.
func (s *Store) Add(in RecordInput) Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextSeq++
	r := Record{
		ID:     uuid.NewString(),
		Date:   in.Date,
		Animal: in.Animal,
		Market: in.Market,
		Price:  in.Price,
		Demand: in.Demand,
		seq:    s.nextSeq,
	}
	s.records = append(s.records, r)
	return r
}

// Update replaces the stored record with the same id. An unknown id is
// silently absorbed; callers that need confirmation check List afterward.
// The record keeps its original insertion sequence.
func (s *Store) Update(r Record) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == r.ID {
			r.seq = s.records[i].seq
			s.records[i] = r
			return
		}
	}
}

// Delete removes the record with the given id if present. Deleting an
// absent id is a no-op, so the call is idempotent.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.records {
		if s.records[i].ID == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return
		}
	}
}

// List returns a copy of all current records. Order is unspecified;
// callers sort when order matters.
func (s *Store) List() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len reports the number of records held.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.records)
}
