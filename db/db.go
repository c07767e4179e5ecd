// Package db persists generated puzzles in a PocketBase collection so the
// interactive clients can fetch them later.
package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/random"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/habibrosyad/pocketbase-go-sdk"
	"github.com/sirupsen/logrus"

	"sudoku_engine_go/internal/config"
	"sudoku_engine_go/internal/types"
)

var (
	// ErrNotFound reports a puzzle ID with no record behind it.
	ErrNotFound = errors.New("puzzle not found")
	// ErrDuplicateID reports an attempt to save under a taken ID.
	ErrDuplicateID = errors.New("puzzle id already exists")
)

// idLength is the length of generated record IDs. Short IDs keep puzzle
// links shareable.
const idLength = 6

const reauthInterval = 30 * time.Minute

// Store wraps the PocketBase client for one puzzle collection.
type Store struct {
	client     *pocketbase.Client
	collection string
	log        *logrus.Logger
}

// Meta is a listing entry: everything about a stored puzzle except the
// grids themselves.
type Meta struct {
	ID         string
	Difficulty string
	Clues      int
	Seed       int64
	Created    string
}

// ListFilter narrows and orders List results. Zero values mean no filter
// and the default created-descending order.
type ListFilter struct {
	Difficulty string
	SortField  string
	SortAsc    bool
}

// New connects to PocketBase with superuser credentials and keeps the
// session alive by re-authenticating on a timer; tokens expire server
// side after a while.
func New(cfg config.StoreConfig, log *logrus.Logger) (*Store, error) {
	client := pocketbase.NewClient(cfg.URL,
		pocketbase.WithSuperuserEmailPassword(cfg.Email, cfg.Password))

	if err := client.Authorize(); err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}

	s := &Store{client: client, collection: cfg.Collection, log: log}
	go s.reauthenticate()
	return s, nil
}

func (s *Store) reauthenticate() {
	ticker := time.NewTicker(reauthInterval)
	for range ticker.C {
		if err := s.client.Authorize(); err != nil {
			s.log.WithError(err).Warn("pocketbase re-authentication failed")
		} else {
			s.log.Debug("re-authenticated with pocketbase")
		}
	}
}

// Save stores the puzzle and returns its record ID. An empty puzzle ID
// gets a generated short ID; IDs longer than six characters are rejected
// to keep links short.
func (s *Store) Save(p *types.Puzzle) (string, error) {
	id := p.ID
	if id == "" {
		id = random.RandString(idLength)
	}
	if len(id) > idLength {
		return "", fmt.Errorf("invalid id %q: must be at most %d characters", id, idLength)
	}

	exists, err := s.Exists(id)
	if err != nil {
		return "", fmt.Errorf("failed to check for existing puzzle: %w", err)
	}
	if exists {
		return "", fmt.Errorf("%w: %s", ErrDuplicateID, id)
	}

	blob, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to marshal puzzle: %w", err)
	}

	data := map[string]any{
		"id":         id,
		"puzzle":     string(blob),
		"difficulty": p.Difficulty.String(),
		"clues":      p.Initial.CountFilled(),
		"seed":       p.Seed,
	}
	if _, err := s.client.Create(s.collection, data); err != nil {
		return "", fmt.Errorf("failed to save puzzle: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"id":         id,
		"difficulty": p.Difficulty.String(),
	}).Info("saved puzzle")
	return id, nil
}

// Get loads a stored puzzle by ID.
func (s *Store) Get(id string) (*types.Puzzle, error) {
	record, err := s.client.One(s.collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load puzzle %s: %w", id, err)
	}

	blob, _ := record["puzzle"].(string)
	puzzle, err := types.PuzzleFromJSON([]byte(blob))
	if err != nil {
		return nil, fmt.Errorf("corrupt puzzle record %s: %w", id, err)
	}
	puzzle.ID = id
	return puzzle, nil
}

// Exists reports whether a record with this ID is present.
func (s *Store) Exists(id string) (bool, error) {
	_, err := s.client.One(s.collection, id)
	if err != nil {
		if strings.Contains(err.Error(), "404") {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// List returns one page of stored puzzles plus the total record count.
func (s *Store) List(page, perPage int, filter ListFilter) ([]Meta, int, error) {
	var rules []string
	if filter.Difficulty != "" {
		rules = append(rules, fmt.Sprintf("difficulty = %q", filter.Difficulty))
	}

	sortField := filter.SortField
	if sortField == "" {
		sortField = "created"
	}
	if !filter.SortAsc {
		sortField = "-" + sortField
	}

	params := pocketbase.ParamsList{
		Page:    page,
		Size:    perPage,
		Sort:    sortField,
		Filters: strings.Join(rules, " && "),
	}
	result, err := s.client.List(s.collection, params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list puzzles: %w", err)
	}

	metas := slice.Map(result.Items, func(_ int, record map[string]any) Meta {
		return metaFromRecord(record)
	})
	return metas, result.TotalItems, nil
}

func metaFromRecord(record map[string]any) Meta {
	meta := Meta{}
	if id, ok := record["id"].(string); ok {
		meta.ID = id
	}
	if difficulty, ok := record["difficulty"].(string); ok {
		meta.Difficulty = difficulty
	}
	if clues, ok := record["clues"].(float64); ok {
		meta.Clues = int(clues)
	}
	if seed, ok := record["seed"].(float64); ok {
		meta.Seed = int64(seed)
	}
	if created, ok := record["created"].(string); ok {
		meta.Created = created
	}
	return meta
}
