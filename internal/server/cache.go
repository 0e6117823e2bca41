package server

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"sort"
	"strings"

	"github.com/spacesedan/reviewlens/internal/clients"
	"github.com/spacesedan/reviewlens/internal/models"
	"github.com/spacesedan/reviewlens/internal/utils"
)

// AnalysisCacheKey hashes the set of review IDs. Sorting first makes the key
// independent of scan order, so the same review set always hits the same
// cache entry.
func AnalysisCacheKey(reviews []models.Review) string {
	ids := make([]string, len(reviews))
	for i, review := range reviews {
		ids[i] = review.ReviewID
	}
	sort.Strings(ids)

	hash := sha256.Sum256([]byte(strings.Join(ids, ":")))
	return hex.EncodeToString(hash[:])
}

// ValkeyAnalysisCache stores serialized analysis results in Valkey with a
// short TTL.
type ValkeyAnalysisCache struct {
	vc *clients.ValkeyClient
}

func NewValkeyAnalysisCache(vc *clients.ValkeyClient) *ValkeyAnalysisCache {
	return &ValkeyAnalysisCache{vc: vc}
}

func (c *ValkeyAnalysisCache) Get(ctx context.Context, key string) (models.AnalysisResult, bool) {
	var result models.AnalysisResult

	payload, ok := c.vc.GetCachedAnalysis(ctx, key)
	if !ok {
		return result, false
	}

	if err := utils.DeserializeFromJSON(payload, &result); err != nil {
		return result, false
	}

	return result, true
}

func (c *ValkeyAnalysisCache) Put(ctx context.Context, key string, result models.AnalysisResult) {
	payload, err := utils.SerializeToJSON(result)
	if err != nil {
		return
	}

	if err := c.vc.CacheAnalysis(ctx, key, payload); err != nil {
		slog.Warn("[AnalysisCache] Failed to cache analysis result",
			slog.String("cache_key", key),
			slog.String("error", err.Error()))
	}
}
