package records

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const leaderboardVersionKey = "lb:ver"

// Leaderboard responses are cached under a version-stamped key; mutating
// commands bump the version so stale boards stop being served immediately.
// Redis being down degrades to uncached queries, never to errors.

func (s *Service) leaderboardKey(scope Scope, version int64) string {
	return fmt.Sprintf("lb:%d:g%d:%s", version, scope.GameID, NormCode(scope.SeasonName))
}

func (s *Service) cachedLeaderboard(scope Scope) ([]LeaderboardRow, bool) {
	if s.rdb == nil || s.cfg.LeaderboardCacheSeconds <= 0 {
		return nil, false
	}
	ctx := context.Background()

	version, err := s.rdb.Get(ctx, leaderboardVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, false
	}

	payload, err := s.rdb.Get(ctx, s.leaderboardKey(scope, version)).Bytes()
	if err != nil {
		return nil, false
	}

	var rows []LeaderboardRow
	if err := json.Unmarshal(payload, &rows); err != nil {
		log.Printf("[CACHE] invalid cached leaderboard payload: %v", err)
		return nil, false
	}
	return rows, true
}

func (s *Service) storeLeaderboard(scope Scope, rows []LeaderboardRow) {
	if s.rdb == nil || s.cfg.LeaderboardCacheSeconds <= 0 {
		return
	}
	ctx := context.Background()

	version, err := s.rdb.Get(ctx, leaderboardVersionKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}

	ttl := time.Duration(s.cfg.LeaderboardCacheSeconds) * time.Second
	if err := s.rdb.Set(ctx, s.leaderboardKey(scope, version), payload, ttl).Err(); err != nil {
		log.Printf("[CACHE] failed to store leaderboard: %v", err)
	}
}

// bumpLeaderboardVersion invalidates all cached leaderboards after a mutation
func (s *Service) bumpLeaderboardVersion() {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Incr(context.Background(), leaderboardVersionKey).Err(); err != nil {
		log.Printf("[CACHE] failed to bump leaderboard version: %v", err)
	}
}
