package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"go-web3jobs-bot/internal/models"
)

// SeenStore records which listings have already been delivered so the
// unseen-only mode can narrow to new ones. Backed by a JSON file; a missing
// or corrupt file just means an empty history.
type SeenStore struct {
	mu       sync.Mutex
	filePath string
	seen     map[string]int64
	log      zerolog.Logger
}

type seenEntry struct {
	Key       string `json:"key"`
	Timestamp int64  `json:"timestamp"`
}

// Entries older than this are dropped on load. Must exceed the filter's
// max listing age or expired entries would resurface as "new".
const retention = 90 * 24 * time.Hour

func NewSeenStore(cacheDir string, log zerolog.Logger) *SeenStore {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		log.Warn().Err(err).Msg("failed to create cache directory")
	}
	store := &SeenStore{
		filePath: filepath.Join(cacheDir, "seen_jobs.json"),
		seen:     make(map[string]int64),
		log:      log,
	}
	store.load()
	return store
}

// key identifies a listing for dedup purposes: the URL when present,
// otherwise a normalized title+company pair.
func key(job models.Job) string {
	if job.URL != "" {
		return job.URL
	}
	title := strings.Join(strings.Fields(strings.ToLower(job.Title)), " ")
	company := strings.Join(strings.Fields(strings.ToLower(job.Company)), " ")
	return title + "::" + company
}

// FilterUnseen narrows jobs to the ones not recorded as delivered.
func (s *SeenStore) FilterUnseen(jobs []models.Job) []models.Job {
	s.mu.Lock()
	defer s.mu.Unlock()

	unseen := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if _, exists := s.seen[key(job)]; !exists {
			unseen = append(unseen, job)
		}
	}
	return unseen
}

// MarkSeen records jobs as delivered. Re-marking an already-seen job is a no-op.
func (s *SeenStore) MarkSeen(jobs []models.Job) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UnixMilli()
	changed := false
	for _, job := range jobs {
		k := key(job)
		if _, exists := s.seen[k]; !exists {
			s.seen[k] = now
			changed = true
		}
	}

	if changed {
		s.save()
	}
}

func (s *SeenStore) load() {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			s.log.Warn().Err(err).Msg("failed to read seen_jobs.json")
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		s.log.Warn().Err(err).Msg("failed to parse seen_jobs.json")
		return
	}

	cutoff := time.Now().Add(-retention).UnixMilli()
	for _, e := range entries {
		if e.Timestamp > cutoff {
			s.seen[e.Key] = e.Timestamp
		}
	}
	s.log.Info().Int("loaded", len(s.seen)).Int("expired", len(entries)-len(s.seen)).Msg("📋 seen-job history loaded")
}

func (s *SeenStore) save() {
	entries := make([]seenEntry, 0, len(s.seen))
	for k, ts := range s.seen {
		entries = append(entries, seenEntry{Key: k, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to marshal seen jobs")
		return
	}
	if err := os.WriteFile(s.filePath, data, 0644); err != nil {
		s.log.Warn().Err(err).Msg("failed to write seen_jobs.json")
	}
}
