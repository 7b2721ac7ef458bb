package signing

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/fieldsign/fieldsign/internal/footprints"
	"github.com/fieldsign/fieldsign/pkg/pagination"
	"github.com/fieldsign/fieldsign/pkg/repository"
)

// fakeFieldStore holds the unsigned candidate set in memory. markSigned
// removes signed fields from the set, so a second batch observes them as
// already signed, mirroring the committed row state.
type fakeFieldStore struct {
	mu         sync.Mutex
	candidates []candidate
	field      *lockedField
	markErr    error
	markCalls  [][]uuid.UUID
	clearCalls int
}

func (s *fakeFieldStore) lockCandidates(ctx context.Context, tx *sql.Tx, documentID, contactID uuid.UUID) ([]candidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]candidate, len(s.candidates))
	copy(out, s.candidates)
	return out, nil
}

func (s *fakeFieldStore) markSigned(ctx context.Context, tx *sql.Tx, ids []uuid.UUID) error {
	if s.markErr != nil {
		return s.markErr
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.markCalls = append(s.markCalls, ids)

	signed := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		signed[id] = true
	}
	remaining := s.candidates[:0]
	for _, c := range s.candidates {
		if !signed[c.ID] {
			remaining = append(remaining, c)
		}
	}
	s.candidates = remaining
	return nil
}

func (s *fakeFieldStore) lockField(ctx context.Context, tx *sql.Tx, fieldID uuid.UUID) (*lockedField, error) {
	if s.field == nil {
		return nil, ErrFieldNotFound
	}
	return s.field, nil
}

func (s *fakeFieldStore) clearSigned(ctx context.Context, tx *sql.Tx, fieldID uuid.UUID) error {
	s.clearCalls++
	return nil
}

func (s *fakeFieldStore) hasUnsignedRequired(ctx context.Context, documentID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range s.candidates {
		if c.Required {
			return true, nil
		}
	}
	return false, nil
}

type fakeFootprints struct {
	mu      sync.Mutex
	actions []footprints.Action
	err     error
}

func (f *fakeFootprints) RecordTx(ctx context.Context, q repository.Queryer, documentID, contactID uuid.UUID, action footprints.Action, reqCtx footprints.Context) (*footprints.Footprint, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.actions = append(f.actions, action)
	return &footprints.Footprint{ID: uuid.New(), DocumentID: documentID, ContactID: contactID, Action: action}, nil
}

func (f *fakeFootprints) Record(ctx context.Context, documentID, contactID uuid.UUID, action footprints.Action, reqCtx footprints.Context) (*footprints.Footprint, error) {
	return f.RecordTx(ctx, nil, documentID, contactID, action, reqCtx)
}

func (f *fakeFootprints) ListForDocument(ctx context.Context, documentID uuid.UUID, page pagination.PageRequest) (*pagination.PageResult[footprints.Footprint], error) {
	return nil, nil
}

func (f *fakeFootprints) Find(ctx context.Context, id uuid.UUID) (*footprints.Footprint, error) {
	return nil, nil
}

func (f *fakeFootprints) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.actions)
}

// serialTransact stands in for the row locks: transactions run one at a
// time, the way FOR UPDATE serializes concurrent batch signs.
type serialTransact struct {
	mu sync.Mutex
}

func (s *serialTransact) run(ctx context.Context, fn func(tx *sql.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(nil)
}

func newTestEngine(store *fakeFieldStore, fp *fakeFootprints) *engine {
	st := &serialTransact{}
	return &engine{
		store:      store,
		footprints: fp,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		transact:   st.run,
	}
}

func fillableCandidates(n int) []candidate {
	cs := make([]candidate, n)
	for i := range cs {
		cs[i] = candidate{ID: uuid.New(), Kind: "text", Name: "field", Required: true, HasValue: true}
	}
	return cs
}

func TestEngine_BatchSign_SignsAllAndRecordsOneFootprint(t *testing.T) {
	cs := fillableCandidates(3)
	want := []uuid.UUID{cs[0].ID, cs[1].ID, cs[2].ID}
	store := &fakeFieldStore{candidates: cs}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	result, err := e.BatchSign(context.Background(), uuid.New(), uuid.New(), footprints.Context{})
	if err != nil {
		t.Fatalf("BatchSign() error = %v", err)
	}
	if !result.Success || result.SignedFieldsCount != 3 {
		t.Fatalf("result = %+v, want success with 3 signed", result)
	}
	if fp.count() != 1 {
		t.Fatalf("footprints recorded = %d, want 1", fp.count())
	}
	if fp.actions[0] != footprints.ActionSigned {
		t.Errorf("action = %q, want %q", fp.actions[0], footprints.ActionSigned)
	}
	if len(store.markCalls) != 1 {
		t.Fatalf("markSigned calls = %d, want 1", len(store.markCalls))
	}
	for i, id := range store.markCalls[0] {
		if id != want[i] {
			t.Errorf("signed id[%d] = %s, want %s (candidate order)", i, id, want[i])
		}
	}
}

func TestEngine_BatchSign_RetryIsIdempotent(t *testing.T) {
	store := &fakeFieldStore{candidates: fillableCandidates(2)}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	documentID, contactID := uuid.New(), uuid.New()

	first, err := e.BatchSign(context.Background(), documentID, contactID, footprints.Context{})
	if err != nil {
		t.Fatalf("first BatchSign() error = %v", err)
	}
	if first.SignedFieldsCount != 2 {
		t.Fatalf("first count = %d, want 2", first.SignedFieldsCount)
	}

	second, err := e.BatchSign(context.Background(), documentID, contactID, footprints.Context{})
	if err != nil {
		t.Fatalf("retry BatchSign() error = %v", err)
	}
	if !second.Success || second.SignedFieldsCount != 0 {
		t.Fatalf("retry result = %+v, want success with 0 signed", second)
	}
	if fp.count() != 1 {
		t.Errorf("footprints recorded = %d, want 1 (no footprint on the no-op retry)", fp.count())
	}
}

func TestEngine_BatchSign_ConcurrentCallsRecordOneFootprint(t *testing.T) {
	store := &fakeFieldStore{candidates: fillableCandidates(4)}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	documentID, contactID := uuid.New(), uuid.New()

	var wg sync.WaitGroup
	results := make([]*BatchResult, 2)
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = e.BatchSign(context.Background(), documentID, contactID, footprints.Context{})
		}(i)
	}
	wg.Wait()

	total := 0
	for i := 0; i < 2; i++ {
		if errs[i] != nil {
			t.Fatalf("BatchSign()[%d] error = %v", i, errs[i])
		}
		if !results[i].Success {
			t.Fatalf("result[%d] = %+v, want success", i, results[i])
		}
		total += results[i].SignedFieldsCount
	}
	if total != 4 {
		t.Errorf("total signed = %d, want 4 (winner signs all, loser signs none)", total)
	}
	if fp.count() != 1 {
		t.Errorf("footprints recorded = %d, want exactly 1", fp.count())
	}
}

func TestEngine_BatchSign_RequiredWithoutInputAborts(t *testing.T) {
	cs := fillableCandidates(2)
	cs = append(cs, candidate{ID: uuid.New(), Kind: "text", Name: "missing", Required: true})
	store := &fakeFieldStore{candidates: cs}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	_, err := e.BatchSign(context.Background(), uuid.New(), uuid.New(), footprints.Context{})
	if !errors.Is(err, ErrMissingValue) {
		t.Fatalf("BatchSign() error = %v, want ErrMissingValue", err)
	}
	if len(store.markCalls) != 0 {
		t.Errorf("markSigned calls = %d, want 0", len(store.markCalls))
	}
	if fp.count() != 0 {
		t.Errorf("footprints recorded = %d, want 0", fp.count())
	}
}

func TestEngine_BatchSign_FootprintFailureAborts(t *testing.T) {
	store := &fakeFieldStore{candidates: fillableCandidates(2)}
	fp := &fakeFootprints{err: errors.New("footprint insert failed")}
	e := newTestEngine(store, fp)

	result, err := e.BatchSign(context.Background(), uuid.New(), uuid.New(), footprints.Context{})
	if err == nil {
		t.Fatalf("BatchSign() = %+v, want error when the footprint cannot be recorded", result)
	}
	if fp.count() != 0 {
		t.Errorf("footprints recorded = %d, want 0", fp.count())
	}
}

func TestEngine_ResetField_RecordsResetFootprint(t *testing.T) {
	documentID, contactID := uuid.New(), uuid.New()
	store := &fakeFieldStore{field: &lockedField{
		DocumentID: documentID,
		ContactID:  &contactID,
		Name:       "applicant_signature",
		Signed:     true,
	}}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	gotDoc, err := e.ResetField(context.Background(), uuid.New(), footprints.Context{})
	if err != nil {
		t.Fatalf("ResetField() error = %v", err)
	}
	if gotDoc != documentID {
		t.Errorf("document id = %s, want %s", gotDoc, documentID)
	}
	if store.clearCalls != 1 {
		t.Errorf("clearSigned calls = %d, want 1", store.clearCalls)
	}
	if fp.count() != 1 || fp.actions[0] != footprints.ActionReset {
		t.Errorf("footprints = %v, want exactly one reset action", fp.actions)
	}
}

func TestEngine_ResetField_Unsigned(t *testing.T) {
	contactID := uuid.New()
	store := &fakeFieldStore{field: &lockedField{
		DocumentID: uuid.New(),
		ContactID:  &contactID,
		Name:       "applicant_signature",
	}}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	_, err := e.ResetField(context.Background(), uuid.New(), footprints.Context{})
	if !errors.Is(err, ErrNotSigned) {
		t.Fatalf("ResetField() error = %v, want ErrNotSigned", err)
	}
	if store.clearCalls != 0 {
		t.Errorf("clearSigned calls = %d, want 0", store.clearCalls)
	}
	if fp.count() != 0 {
		t.Errorf("footprints recorded = %d, want 0", fp.count())
	}
}

func TestEngine_ResetField_NotFound(t *testing.T) {
	store := &fakeFieldStore{}
	fp := &fakeFootprints{}
	e := newTestEngine(store, fp)

	_, err := e.ResetField(context.Background(), uuid.New(), footprints.Context{})
	if !errors.Is(err, ErrFieldNotFound) {
		t.Fatalf("ResetField() error = %v, want ErrFieldNotFound", err)
	}
}

func TestEngine_IsDocumentComplete(t *testing.T) {
	store := &fakeFieldStore{candidates: []candidate{
		{ID: uuid.New(), Kind: "text", Name: "optional_note", Required: false},
	}}
	e := newTestEngine(store, &fakeFootprints{})

	complete, err := e.IsDocumentComplete(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("IsDocumentComplete() error = %v", err)
	}
	if !complete {
		t.Error("complete = false, want true with no unsigned required fields")
	}

	store.candidates = append(store.candidates, candidate{ID: uuid.New(), Kind: "text", Name: "full_name", Required: true})
	complete, err = e.IsDocumentComplete(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("IsDocumentComplete() error = %v", err)
	}
	if complete {
		t.Error("complete = true, want false with an unsigned required field")
	}
}
