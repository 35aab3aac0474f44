// Package history keeps the bounded, newest-first list of commands the user
// has copied, persisted as a JSON array.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/apstudio/apstudio/internal/command"
	"github.com/apstudio/apstudio/internal/fileutil"
	"github.com/apstudio/apstudio/internal/logging"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// DefaultLimit is the number of entries kept when no limit is configured.
const DefaultLimit = 50

// ErrNotFound is returned when a history reference matches no entry.
var ErrNotFound = errors.New("history entry not found")

// Item is an immutable snapshot taken when a command was copied.
type Item struct {
	ID        string        `json:"id"`
	Timestamp int64         `json:"timestamp"` // unix milliseconds
	Command   string        `json:"command"`
	State     command.State `json:"state"`
}

// Time returns the snapshot time.
func (i Item) Time() time.Time {
	return time.UnixMilli(i.Timestamp)
}

// Store owns the history list and its backing file. It is not safe for
// concurrent use; each CLI invocation opens its own Store.
type Store struct {
	path   string
	limit  int
	items  []Item
	logger logging.Logger
	now    func() time.Time
}

// Open loads the history at path. A missing file yields an empty store. A
// file that cannot be parsed is logged and ignored, so a corrupt history
// never blocks the tool; the next save overwrites it.
func Open(path string, limit int, logger logging.Logger) (*Store, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if logger == nil {
		logger = logging.Discard()
	}
	s := &Store{path: path, limit: limit, logger: logger, now: time.Now}

	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the data dir
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		logger.Warn("ignoring unreadable history file", "path", path, "error", err)
		return s, nil
	}
	if len(items) > limit {
		items = items[:limit]
	}
	s.items = items
	return s, nil
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of entries.
func (s *Store) Len() int {
	return len(s.items)
}

// Items returns a copy of the entries, newest first.
func (s *Store) Items() []Item {
	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// Append records a copied command. It is a no-op when cmd equals the newest
// entry's command; only the head is compared, not the whole list. When the
// list grows past the limit the oldest entries are evicted. The store is
// saved after every change.
func (s *Store) Append(cmd string, state command.State) (Item, bool, error) {
	if len(s.items) > 0 && s.items[0].Command == cmd {
		return s.items[0], false, nil
	}

	id, err := gonanoid.New(10)
	if err != nil {
		return Item{}, false, fmt.Errorf("failed to generate history id: %w", err)
	}
	item := Item{
		ID:        id,
		Timestamp: s.now().UnixMilli(),
		Command:   cmd,
		State:     state,
	}

	items := make([]Item, 0, len(s.items)+1)
	items = append(items, item)
	items = append(items, s.items...)
	if len(items) > s.limit {
		evicted := len(items) - s.limit
		items = items[:s.limit]
		s.logger.Debug("evicted history entries", "count", evicted)
	}
	s.items = items

	if err := s.save(); err != nil {
		return item, true, err
	}
	return item, true, nil
}

// Get resolves ref to an entry. ref is either an entry ID or a 1-based
// position in the newest-first list.
func (s *Store) Get(ref string) (Item, error) {
	for _, it := range s.items {
		if it.ID == ref {
			return it, nil
		}
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(s.items) {
		return s.items[n-1], nil
	}
	return Item{}, fmt.Errorf("%w: %q", ErrNotFound, ref)
}

// Restore returns the draft captured by the referenced entry. The caller
// replaces its current draft with it wholesale.
func (s *Store) Restore(ref string) (command.State, error) {
	it, err := s.Get(ref)
	if err != nil {
		return command.State{}, err
	}
	return it.State, nil
}

// Clear removes every entry and saves.
func (s *Store) Clear() error {
	s.items = nil
	return s.save()
}

// MarshalJSON encodes the entries in their persisted layout.
func (s *Store) MarshalJSON() ([]byte, error) {
	if s.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(s.items)
}

func (s *Store) save() error {
	data, err := json.MarshalIndent(s.Items(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := fileutil.WriteAtomic(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	return nil
}
