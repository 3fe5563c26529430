package gallery

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/storage"
	"go.uber.org/zap"
)

// Store is the persistence collaborator. LoadCatalog fails with
// storage.ErrSlotEmpty or storage.ErrMalformedSnapshot when there is no usable
// snapshot; any other error means the snapshot could not be read.
type Store interface {
	LoadCatalog(ctx context.Context) ([]models.MediaEntry, error)
	SaveCatalog(ctx context.Context, entries []models.MediaEntry) error
}

type Option func(*Session)

func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithClock overrides time.Now, used for the seed timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

func WithPropertyID(id string) Option {
	return func(s *Session) { s.propertyID = id }
}

// WithCommitTimeout bounds each write-back to the store.
func WithCommitTimeout(d time.Duration) Option {
	return func(s *Session) { s.commitTimeout = d }
}

// Session owns the catalog, filter and selection of the one gallery a
// process serves. Every method holds mu for its whole duration, so events
// are applied one at a time.
type Session struct {
	mu        sync.Mutex
	catalog   *Catalog
	filter    FilterState
	selection Selection

	store         Store
	dirty         bool
	commitTimeout time.Duration
	propertyID    string
	now           func() time.Time
	log           *zap.Logger
}

// Open reads the initial catalog from store, falling back to the seed catalog
// when the snapshot is missing or malformed. Read failures are returned so a
// stored catalog is never replaced by the seed.
func Open(ctx context.Context, store Store, opts ...Option) (*Session, error) {
	s := &Session{
		filter:        DefaultFilter(),
		store:         store,
		commitTimeout: 3 * time.Second,
		propertyID:    "p1",
		now:           time.Now,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}

	entries, err := store.LoadCatalog(ctx)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrSlotEmpty), errors.Is(err, storage.ErrMalformedSnapshot):
		s.log.Warn("catalog snapshot unusable, using seed catalog", zap.Error(err))
		entries = SeedCatalog(s.now(), s.propertyID)
	default:
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	s.catalog = NewCatalog(entries)
	s.log.Info("gallery session opened", zap.Int("entries", s.catalog.Len()))
	return s, nil
}

func (s *Session) Entries() []models.MediaEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Entries()
}

func (s *Session) Entry(id string) (models.MediaEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.catalog.Get(id)
}

// Add prepends entry and writes the catalog back.
func (s *Session) Add(ctx context.Context, entry models.MediaEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.catalog.Add(entry)
	s.commit(ctx)
}

// Update replaces the entry with the same id. A miss is a no-op.
func (s *Session) Update(ctx context.Context, entry models.MediaEntry) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.catalog.Update(entry) {
		return false
	}
	s.commit(ctx)
	return true
}

// Remove deletes the entry and drops it from the selection.
func (s *Session) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.catalog.Remove(id) {
		return false
	}
	s.selection.Drop(id)
	s.commit(ctx)
	return true
}

func (s *Session) Filter() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

func (s *Session) SetCategory(category string) FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.WithCategory(category)
	return s.filter
}

func (s *Session) SetComplex(complex string) FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.filter.WithComplex(complex)
	return s.filter
}

// SetType selects a type. A type the active category does not offer resets
// the selector to All.
func (s *Session) SetType(typ string) FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = s.withOfferedType(s.filter, typ)
	return s.filter
}

func (s *Session) withOfferedType(f FilterState, typ string) FilterState {
	typ = orAll(typ)
	if typ != All && !contains(TypeOptions(s.catalog.entries, f.Category), typ) {
		typ = All
	}
	return f.WithType(typ)
}

// FilterUpdate carries a partial filter change. Nil fields are left as they
// are.
type FilterUpdate struct {
	Category *string `json:"category"`
	Complex  *string `json:"complex"`
	Type     *string `json:"type"`
}

// ApplyFilter applies u as a single transition and returns the resulting view.
// A category change resets the type; a type is kept only when the resulting
// category offers it.
func (s *Session) ApplyFilter(u FilterUpdate) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.filter
	if u.Category != nil && orAll(*u.Category) != f.Category {
		f = f.WithCategory(*u.Category)
	}
	if u.Complex != nil {
		f = f.WithComplex(*u.Complex)
	}
	if u.Type != nil {
		f = s.withOfferedType(f, *u.Type)
	}
	s.filter = f
	return s.view()
}

func contains(values []string, v string) bool {
	for _, x := range values {
		if x == v {
			return true
		}
	}
	return false
}

func (s *Session) ResetFilter() FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filter = DefaultFilter()
	return s.filter
}

// View is the filter, visible set, selection and option lists read in one
// step.
type View struct {
	Filter    FilterState         `json:"filter"`
	Items     []models.MediaEntry `json:"items"`
	Total     int                 `json:"total"`
	Selected  []string            `json:"selected"`
	Ready     bool                `json:"ready"`
	Complexes []string            `json:"complexes"`
	Types     []string            `json:"types"`
}

func (s *Session) Snapshot() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view()
}

func (s *Session) view() View {
	items := VisibleSet(s.catalog.entries, s.filter)
	return View{
		Filter:    s.filter,
		Items:     items,
		Total:     len(items),
		Selected:  s.selection.IDs(),
		Ready:     s.selection.ReadyToCompare(),
		Complexes: ComplexOptions(s.catalog.entries),
		Types:     TypeOptions(s.catalog.entries, s.filter.Category),
	}
}

// Visible is the filtered, newest-first view of the catalog.
func (s *Session) Visible() []models.MediaEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return VisibleSet(s.catalog.entries, s.filter)
}

func (s *Session) ComplexOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ComplexOptions(s.catalog.entries)
}

// TypeOptions returns the type options for the active category.
func (s *Session) TypeOptions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TypeOptions(s.catalog.entries, s.filter.Category)
}

// TypeOptionsFor previews the type options of category without changing the
// filter.
func (s *Session) TypeOptionsFor(category string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return TypeOptions(s.catalog.entries, category)
}

func (s *Session) Toggle(id string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Toggle(id)
	return s.selection.IDs()
}

func (s *Session) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Clear()
}

func (s *Session) Selected() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

func (s *Session) IsSelected(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.Contains(id)
}

func (s *Session) ReadyToCompare() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.ReadyToCompare()
}

// Compare opens the comparison for the current selection.
func (s *Session) Compare() (Pair, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return OpenComparison(s.catalog, s.selection.ids)
}

// Flush writes the catalog back if an earlier commit failed.
func (s *Session) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.dirty {
		return nil
	}
	return s.save(ctx)
}

// commit must be called with mu held. A failed write leaves the session dirty
// and is retried by the next commit or Flush.
func (s *Session) commit(ctx context.Context) {
	s.dirty = true
	if err := s.save(ctx); err != nil {
		s.log.Error("catalog write-back failed", zap.Error(err), zap.Int("entries", s.catalog.Len()))
	}
}

func (s *Session) save(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.commitTimeout)
	defer cancel()
	if err := s.store.SaveCatalog(ctx, s.catalog.Entries()); err != nil {
		return err
	}
	s.dirty = false
	return nil
}
