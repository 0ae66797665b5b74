package settings

import (
	"context"
	"errors"
	"time"

	"github.com/akademika/campus-api/model"
	"github.com/akademika/campus-api/utils/cache"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrEmptySection is returned when a save would persist a section with
	// zero fields. An empty document is never written.
	ErrEmptySection = errors.New("settings section must not be empty")

	// ErrNotFound is returned when no row exists for the requested key
	ErrNotFound = errors.New("settings section not found")
)

const (
	publicCacheKey = "campus_settings:public"
	publicCacheTTL = 5 * time.Minute
)

// Service reads and writes the campus settings sections. Each section lives
// under a fixed key as one JSON document; the storage layer replaces the
// whole document on write, so partial updates are merged in memory first.
type Service struct {
	db         *gorm.DB
	redisCache *cache.RedisCache // optional; nil disables caching
}

// NewService creates a new settings service
func NewService(db *gorm.DB, redisCache *cache.RedisCache) *Service {
	return &Service{db: db, redisCache: redisCache}
}

// LoadAll fetches every section keyed by setting_key. The table is bounded
// by the fixed set of known keys, so there is no pagination.
func (s *Service) LoadAll(ctx context.Context) (map[string]datatypes.JSONMap, error) {
	var rows []model.CampusSetting
	if err := s.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}

	sections := make(map[string]datatypes.JSONMap, len(rows))
	for _, row := range rows {
		sections[row.Key] = row.Value
	}
	return sections, nil
}

// LoadAllCached serves LoadAll through Redis for the public site. The cache
// is invalidated on every successful save, so staleness is bounded by the TTL
// only when a write happens on another instance.
func (s *Service) LoadAllCached(ctx context.Context) (map[string]datatypes.JSONMap, error) {
	if s.redisCache != nil {
		var cached map[string]datatypes.JSONMap
		if err := s.redisCache.GetJSON(ctx, publicCacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	sections, err := s.LoadAll(ctx)
	if err != nil {
		return nil, err
	}

	if s.redisCache != nil {
		s.redisCache.SetJSON(ctx, publicCacheKey, sections, publicCacheTTL)
	}

	return sections, nil
}

// Get returns the document stored at key
func (s *Service) Get(ctx context.Context, key string) (*model.CampusSetting, error) {
	var row model.CampusSetting
	err := s.db.WithContext(ctx).Where("setting_key = ?", key).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &row, nil
}

// SaveSection merges partial into the document currently stored at key and
// upserts the result. Fields present in partial overwrite; absent fields are
// retained. The current document is re-read immediately before the merge to
// narrow the window in which a concurrent editor's fields could be lost;
// concurrent saves to the same section remain last-write-wins.
func (s *Service) SaveSection(ctx context.Context, key string, partial map[string]interface{}) (*model.CampusSetting, error) {
	current := datatypes.JSONMap{}
	existing, err := s.Get(ctx, key)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		current = existing.Value
	}

	merged := MergeSection(current, partial)
	if len(merged) == 0 {
		return nil, ErrEmptySection
	}

	row := model.CampusSetting{
		Key:   key,
		Value: merged,
	}

	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"setting_value", "updated_at"}),
		}).
		Create(&row).Error
	if err != nil {
		return nil, err
	}

	if s.redisCache != nil {
		s.redisCache.Delete(ctx, publicCacheKey)
	}

	return &row, nil
}

// MergeSection shallow-merges partial into current without mutating either.
// Keys present in partial overwrite; the rest of current is retained. Nested
// values are not deep-merged: a section field is replaced wholesale.
func MergeSection(current datatypes.JSONMap, partial map[string]interface{}) datatypes.JSONMap {
	merged := make(datatypes.JSONMap, len(current)+len(partial))
	for k, v := range current {
		merged[k] = v
	}
	for k, v := range partial {
		merged[k] = v
	}
	return merged
}
