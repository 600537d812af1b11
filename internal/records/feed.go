package records

import (
	"context"
	"encoding/json"
	"log"
)

// FeedChannel is the Redis channel carrying live match events for the
// WebSocket feed
const FeedChannel = "match_events"

// publishEvent pushes a JSON event to the feed channel after a command has
// committed. Best-effort: feed failures never fail the command.
func (s *Service) publishEvent(eventType string, fields map[string]interface{}) {
	if s.rdb == nil {
		return
	}

	payload := map[string]interface{}{"type": eventType}
	for k, v := range fields {
		payload[k] = v
	}

	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("[FEED] failed to encode %s event: %v", eventType, err)
		return
	}
	if err := s.rdb.Publish(context.Background(), FeedChannel, data).Err(); err != nil {
		log.Printf("[FEED] failed to publish %s event: %v", eventType, err)
	}
}
