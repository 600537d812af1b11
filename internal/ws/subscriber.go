package ws

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/rbillups/scoreboardbot/internal/records"
)

// StartFeedSubscriber subscribes to the match_events channel and relays every
// event to the feed hub. Runs until the context is cancelled.
func StartFeedSubscriber(ctx context.Context, rdb *redis.Client) {
	if rdb == nil {
		log.Println("[WS] Redis client not set; feed subscriber not started")
		return
	}

	pubsub := rdb.Subscribe(ctx, records.FeedChannel)
	ch := pubsub.Channel()
	go func() {
		defer pubsub.Close()
		log.Println("[WS] match_events subscriber started")
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-ch:
				if !ok {
					return
				}
				FeedHub.Broadcast([]byte(msg.Payload))
			}
		}
	}()
}
