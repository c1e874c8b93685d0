package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/osgb-lab/riskdesk/pkg/domain/interfaces"
	"github.com/osgb-lab/riskdesk/pkg/domain/model"
	"github.com/osgb-lab/riskdesk/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// ErrEntryNotFound is returned when a catalog ID does not exist
var ErrEntryNotFound = goerr.New("catalog entry not found")

// DefaultSearchLimit caps a search page when the query does not set one
const DefaultSearchLimit = 100

// entryDocument mirrors the JSON shape of the published catalog files.
// The keys are the Turkish column headers the files are exported with.
type entryDocument struct {
	Group           string `json:"Grup Adı"`
	Topic           string `json:"Konu"`
	Hazard          string `json:"Tehlike"`
	Risk            string `json:"Risk"`
	LegalBasis      string `json:"Yasal Dayanak"`
	Measure         string `json:"Önlem"`
	AffectedPersons string `json:"Etkilenenler"`
}

type snapshot struct {
	entries    []*model.CatalogEntry
	byID       map[int]*model.CatalogEntry
	categories []string
}

// Service serves the external risk catalog from an in-memory snapshot of
// a directory of JSON files. The first access loads the directory lazily;
// Reload replaces the snapshot wholesale.
type Service struct {
	dir string

	mu   sync.RWMutex
	snap *snapshot
}

var _ interfaces.Catalog = &Service{}

// New creates a catalog service reading from the given directory
func New(dir string) *Service {
	return &Service{dir: dir}
}

func (s *Service) current(ctx context.Context) (*snapshot, error) {
	s.mu.RLock()
	snap := s.snap
	s.mu.RUnlock()
	if snap != nil {
		return snap, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snap == nil {
		loaded, err := load(ctx, s.dir)
		if err != nil {
			return nil, err
		}
		s.snap = loaded
	}
	return s.snap, nil
}

// Reload discards the snapshot and loads the catalog directory again
func (s *Service) Reload(ctx context.Context) error {
	loaded, err := load(ctx, s.dir)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.snap = loaded
	s.mu.Unlock()
	return nil
}

// Get retrieves an entry by its stable integer ID
func (s *Service) Get(ctx context.Context, id int) (*model.CatalogEntry, error) {
	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	entry, exists := snap.byID[id]
	if !exists {
		return nil, goerr.Wrap(ErrEntryNotFound, "unknown catalog id", goerr.V("id", id))
	}
	return entry, nil
}

// Categories returns the sorted unique group labels of the catalog
func (s *Service) Categories(ctx context.Context) ([]string, error) {
	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}
	return snap.categories, nil
}

// Search filters entries by free text and category with pagination. The
// text query matches hazard, risk and topic; the category filter matches
// the group label. Both are case-insensitive substring matches.
func (s *Service) Search(ctx context.Context, query interfaces.CatalogQuery) (*interfaces.CatalogPage, error) {
	snap, err := s.current(ctx)
	if err != nil {
		return nil, err
	}

	text := strings.ToLower(strings.TrimSpace(query.Query))
	category := strings.ToLower(strings.TrimSpace(query.Category))

	filtered := make([]*model.CatalogEntry, 0, len(snap.entries))
	for _, entry := range snap.entries {
		if category != "" && !strings.Contains(strings.ToLower(entry.Group), category) {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(entry.Hazard), text) &&
			!strings.Contains(strings.ToLower(entry.Risk), text) &&
			!strings.Contains(strings.ToLower(entry.Topic), text) {
			continue
		}
		filtered = append(filtered, entry)
	}

	limit := query.Limit
	if limit <= 0 {
		limit = DefaultSearchLimit
	}
	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	total := len(filtered)
	end := offset + limit
	if offset > total {
		offset = total
	}
	if end > total {
		end = total
	}

	return &interfaces.CatalogPage{
		Results: filtered[offset:end],
		Total:   total,
		HasMore: query.Offset+limit < total,
	}, nil
}

// load reads every *.json file of the directory into one combined list.
// Files are parsed concurrently but IDs are assigned in file name order so
// they stay stable across reloads of an unchanged directory. A missing
// directory yields an empty catalog; an unreadable file is skipped.
func load(ctx context.Context, dir string) (*snapshot, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return emptySnapshot(), nil
		}
		return nil, goerr.Wrap(err, "failed to read catalog directory", goerr.V("dir", dir))
	}

	var files []string
	for _, e := range dirEntries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".json") {
			files = append(files, e.Name())
		}
	}
	sort.Strings(files)

	parsed := make([][]entryDocument, len(files))
	eg, ctx := errgroup.WithContext(ctx)
	for i, name := range files {
		eg.Go(func() error {
			docs, err := parseFile(filepath.Join(dir, name))
			if err != nil {
				logging.From(ctx).Warn("skipping unreadable catalog file",
					"file", name, logging.ErrAttr(err))
				return nil
			}
			parsed[i] = docs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	snap := emptySnapshot()
	categories := map[string]struct{}{}
	nextID := 1
	for i, docs := range parsed {
		for _, doc := range docs {
			entry := &model.CatalogEntry{
				ID:              nextID,
				Group:           doc.Group,
				Topic:           doc.Topic,
				Hazard:          doc.Hazard,
				Risk:            doc.Risk,
				LegalBasis:      doc.LegalBasis,
				Measure:         doc.Measure,
				AffectedPersons: doc.AffectedPersons,
				SourceFile:      files[i],
			}
			nextID++
			snap.entries = append(snap.entries, entry)
			snap.byID[entry.ID] = entry

			if group := strings.TrimSpace(entry.Group); group != "" {
				categories[group] = struct{}{}
			}
		}
	}

	for group := range categories {
		snap.categories = append(snap.categories, group)
	}
	sort.Strings(snap.categories)

	return snap, nil
}

func emptySnapshot() *snapshot {
	return &snapshot{byID: map[int]*model.CatalogEntry{}}
}

func parseFile(path string) ([]entryDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file")
	}

	var docs []entryDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog file")
	}
	return docs, nil
}
