package seed

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/vocalog/diary-api/internal/models"
)

// Result counts what one import pass did
type Result struct {
	EpisodesSeeded  int `json:"episodesSeeded"`
	EpisodesUpdated int `json:"episodesUpdated"`
	ShardsInserted  int `json:"shardsInserted"`
	ShardsUpdated   int `json:"shardsUpdated"`
	ShardsSkipped   int `json:"shardsSkipped"`
}

// Importer loads diary exports into the database. Exports come in a
// few shapes (wrapped in "data", episodes with nested shards, bare
// shard lists, legacy "clips" naming) and in both camelCase and
// snake_case keys; the importer accepts all of them.
//
// Re-importing is safe: episodes and shards are upserted by ID, and an
// existing shard's analysis document is merged on write so user edits
// and publish state survive the reload.
type Importer struct {
	db *gorm.DB
}

func NewImporter(db *gorm.DB) *Importer {
	return &Importer{db: db}
}

// episodePayload is one episode object from an export
type episodePayload struct {
	ID           string         `json:"id"`
	EpisodeID    string         `json:"episodeId"`
	Title        *string        `json:"title"`
	Note         *string        `json:"note"`
	CreatedAt    string         `json:"createdAt"`
	CreatedAtAlt string         `json:"created_at"`
	Shards       []shardPayload `json:"shards"`
	Clips        []shardPayload `json:"clips"`
}

// shardPayload is one shard object from an export. Every field carries
// its snake_case alias because database dumps and app exports disagree
// on casing.
type shardPayload struct {
	ID           string          `json:"id"`
	ShardID      string          `json:"shardId"`
	EpisodeID    string          `json:"episodeId"`
	EpisodeIDAlt string          `json:"episode_id"`
	StartTime    flexFloat       `json:"startTime"`
	StartTimeAlt flexFloat       `json:"start_time"`
	StartTimeSec flexFloat       `json:"startTimeSec"`
	EndTime      flexFloat       `json:"endTime"`
	EndTimeAlt   flexFloat       `json:"end_time"`
	EndTimeSec   flexFloat       `json:"endTimeSec"`
	Source       string          `json:"source"`
	Meta         json.RawMessage `json:"meta"`
	MetaAlt      json.RawMessage `json:"meta_json"`
	Features     json.RawMessage `json:"features"`
	FeaturesAlt  json.RawMessage `json:"features_json"`
	Analysis     json.RawMessage `json:"analysis"`
	AnalysisAlt  json.RawMessage `json:"analysis_json"`
}

// envelope is the wrapped object form of an export
type envelope struct {
	Episodes []episodePayload `json:"episodes"`
	Shards   []shardPayload   `json:"shards"`
	Clips    []shardPayload   `json:"clips"`
	Data     *envelope        `json:"data"`
}

// flexFloat accepts JSON numbers and numeric strings. Old exports
// stringify timeline fields; anything unparseable reads as absent.
type flexFloat struct {
	value *float64
}

func (f *flexFloat) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil
		}
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f.value = &v
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return nil
	}
	f.value = &v
	return nil
}

func (f flexFloat) ptr() *float64 {
	return f.value
}

// ImportJSON imports one export payload and reports what changed
func (imp *Importer) ImportJSON(ctx context.Context, raw []byte) (*Result, error) {
	episodes, shards, err := parsePayload(raw)
	if err != nil {
		return nil, err
	}

	result := &Result{}

	for _, ep := range episodes {
		id := strings.TrimSpace(firstNonEmpty(ep.ID, ep.EpisodeID))
		if id == "" {
			continue
		}
		created, err := imp.upsertEpisode(ctx, id, ep.Title, ep.Note, parseTimestamp(firstNonEmpty(ep.CreatedAt, ep.CreatedAtAlt)))
		if err != nil {
			return nil, err
		}
		if created {
			result.EpisodesSeeded++
		} else {
			result.EpisodesUpdated++
		}
	}

	for _, sp := range shards {
		id := strings.TrimSpace(firstNonEmpty(sp.ID, sp.ShardID))
		if id == "" {
			result.ShardsSkipped++
			continue
		}
		created, err := imp.upsertShard(ctx, id, sp)
		if err != nil {
			return nil, err
		}
		if created {
			result.ShardsInserted++
		} else {
			result.ShardsUpdated++
		}
	}

	return result, nil
}

// parsePayload extracts episode and shard payloads from any of the
// accepted export shapes. Shards nested inside episodes win; top-level
// shard lists are only consulted when no episode carried any.
func parsePayload(raw []byte) ([]episodePayload, []shardPayload, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil, fmt.Errorf("empty payload")
	}

	var episodes []episodePayload
	var topLevelShards []shardPayload

	if trimmed[0] == '[' {
		var err error
		episodes, topLevelShards, err = parseList(trimmed)
		if err != nil {
			return nil, nil, err
		}
	} else {
		var env envelope
		if err := json.Unmarshal(trimmed, &env); err != nil {
			return nil, nil, fmt.Errorf("decoding export: %w", err)
		}
		episodes = env.Episodes
		if episodes == nil && env.Data != nil {
			episodes = env.Data.Episodes
		}
		switch {
		case env.Shards != nil:
			topLevelShards = env.Shards
		case env.Clips != nil:
			topLevelShards = env.Clips
		case env.Data != nil && env.Data.Shards != nil:
			topLevelShards = env.Data.Shards
		case env.Data != nil:
			topLevelShards = env.Data.Clips
		}
	}

	var shards []shardPayload
	for _, ep := range episodes {
		shards = append(shards, ep.Shards...)
		shards = append(shards, ep.Clips...)
	}
	if len(shards) == 0 {
		shards = topLevelShards
	}

	return episodes, shards, nil
}

// parseList disambiguates a bare JSON array: it is a list of episodes
// only when every element carries a shard collection, otherwise a list
// of shards when every element carries an id.
func parseList(trimmed []byte) ([]episodePayload, []shardPayload, error) {
	var probe []struct {
		ID      string          `json:"id"`
		ShardID string          `json:"shardId"`
		Shards  json.RawMessage `json:"shards"`
		Clips   json.RawMessage `json:"clips"`
	}
	if err := json.Unmarshal(trimmed, &probe); err != nil {
		return nil, nil, fmt.Errorf("decoding export: %w", err)
	}
	if len(probe) == 0 {
		return nil, nil, nil
	}

	allEpisodes := true
	allShards := true
	for _, item := range probe {
		if !isJSONArray(item.Shards) && !isJSONArray(item.Clips) {
			allEpisodes = false
		}
		if item.ID == "" && item.ShardID == "" {
			allShards = false
		}
	}

	if allEpisodes {
		var episodes []episodePayload
		if err := json.Unmarshal(trimmed, &episodes); err != nil {
			return nil, nil, fmt.Errorf("decoding episode list: %w", err)
		}
		return episodes, nil, nil
	}
	if allShards {
		var shards []shardPayload
		if err := json.Unmarshal(trimmed, &shards); err != nil {
			return nil, nil, fmt.Errorf("decoding shard list: %w", err)
		}
		return nil, shards, nil
	}
	return nil, nil, nil
}

func isJSONArray(raw json.RawMessage) bool {
	t := bytes.TrimSpace(raw)
	return len(t) > 0 && t[0] == '['
}

// upsertEpisode creates or patches one episode row. Empty strings
// never clear a stored title or note.
func (imp *Importer) upsertEpisode(ctx context.Context, id string, title, note *string, createdAt *time.Time) (bool, error) {
	var episode models.Episode
	err := imp.db.WithContext(ctx).First(&episode, "id = ?", id).Error
	created := false
	if errors.Is(err, gorm.ErrRecordNotFound) {
		episode = models.Episode{ID: id}
		created = true
	} else if err != nil {
		return false, fmt.Errorf("getting episode %s: %w", id, err)
	}

	if t := trimmedOrNil(title); t != nil {
		episode.Title = t
	}
	if n := trimmedOrNil(note); n != nil {
		episode.Note = n
	}
	if createdAt != nil {
		episode.CreatedAt = *createdAt
	}

	if created {
		if err := imp.db.WithContext(ctx).Create(&episode).Error; err != nil {
			return false, fmt.Errorf("creating episode %s: %w", id, err)
		}
		return true, nil
	}
	if err := imp.db.WithContext(ctx).Save(&episode).Error; err != nil {
		return false, fmt.Errorf("saving episode %s: %w", id, err)
	}
	return false, nil
}

// upsertShard creates or replaces one shard row. On replace the stored
// analysis document is merged on write so the user block and publish
// lifecycle fields survive unless the export carries its own.
func (imp *Importer) upsertShard(ctx context.Context, id string, sp shardPayload) (bool, error) {
	metaRaw := rawObject(sp.Meta, sp.MetaAlt)
	featuresRaw := rawObject(sp.Features, sp.FeaturesAlt)
	analysisRaw := rawObject(sp.Analysis, sp.AnalysisAlt)

	episodeID := strings.TrimSpace(firstNonEmpty(sp.EpisodeID, sp.EpisodeIDAlt))
	if episodeID == "" {
		var metaDoc struct {
			EpisodeID string `json:"episodeId"`
		}
		_ = json.Unmarshal(metaRaw, &metaDoc)
		episodeID = strings.TrimSpace(metaDoc.EpisodeID)
	}
	if episodeID != "" {
		// first reference wins; counters track only declared episodes
		if _, err := imp.upsertEpisode(ctx, episodeID, nil, nil, nil); err != nil {
			return false, err
		}
	}

	var nextDoc models.AnalysisDocument
	if err := json.Unmarshal(analysisRaw, &nextDoc); err != nil {
		log.Printf("[WARN] Seed: ignoring malformed analysis on shard %s: %v", id, err)
		nextDoc = models.AnalysisDocument{}
	}

	startTime := firstFloat(sp.StartTime, sp.StartTimeAlt, sp.StartTimeSec)
	endTime := firstFloat(sp.EndTime, sp.EndTimeAlt, sp.EndTimeSec)

	var existing models.Shard
	err := imp.db.WithContext(ctx).First(&existing, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		shard := models.Shard{
			ID:        id,
			EpisodeID: nilIfEmpty(episodeID),
			StartTime: startTime,
			EndTime:   endTime,
			Source:    strings.TrimSpace(sp.Source),
			Meta:      datatypes.JSON(metaRaw),
			Features:  datatypes.JSON(featuresRaw),
		}
		if err := shard.SetAnalysisDoc(nextDoc); err != nil {
			return false, fmt.Errorf("encoding analysis for shard %s: %w", id, err)
		}
		if err := imp.db.WithContext(ctx).Create(&shard).Error; err != nil {
			return false, fmt.Errorf("creating shard %s: %w", id, err)
		}
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("getting shard %s: %w", id, err)
	}

	prevDoc, err := existing.AnalysisDoc()
	if err != nil {
		log.Printf("[WARN] Seed: replacing unreadable analysis on shard %s: %v", id, err)
		prevDoc = models.AnalysisDocument{}
	}
	merged := models.MergeAnalysis(prevDoc, nextDoc)

	existing.EpisodeID = nilIfEmpty(episodeID)
	existing.StartTime = startTime
	existing.EndTime = endTime
	existing.Source = strings.TrimSpace(sp.Source)
	existing.Meta = datatypes.JSON(metaRaw)
	existing.Features = datatypes.JSON(featuresRaw)
	if err := existing.SetAnalysisDoc(merged); err != nil {
		return false, fmt.Errorf("encoding analysis for shard %s: %w", id, err)
	}
	if err := imp.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return false, fmt.Errorf("saving shard %s: %w", id, err)
	}
	return false, nil
}

// rawObject returns the first candidate that is a JSON object, else {}
func rawObject(candidates ...json.RawMessage) json.RawMessage {
	for _, c := range candidates {
		t := bytes.TrimSpace(c)
		if len(t) > 0 && t[0] == '{' {
			return t
		}
	}
	return json.RawMessage(`{}`)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

func firstFloat(values ...flexFloat) *float64 {
	for _, v := range values {
		if v.value != nil {
			return v.ptr()
		}
	}
	return nil
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// parseTimestamp reads an ISO timestamp, tolerating a missing zone
func parseTimestamp(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			t = t.UTC()
			return &t
		}
	}
	return nil
}
