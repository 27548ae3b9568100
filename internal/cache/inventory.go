package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	PostKeyPrefix    = "post:%d"
	PostsListKey     = "posts:list"
	RevokedKeyPrefix = "revoked:%s"
)

// PostTTL bounds staleness for cached post reads; every mutation that
// changes a post's visible fields or counts invalidates eagerly, the TTL is
// the backstop.
const PostTTL = 30 * time.Minute

func PostKey(postID uint) string {
	return fmt.Sprintf(PostKeyPrefix, postID)
}

// RevokedKey is the fast-path marker for a revoked token. The raw token is
// hashed by the caller; the key carries the digest, never the token itself.
func RevokedKey(digest string) string {
	return fmt.Sprintf(RevokedKeyPrefix, digest)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidatePost(ctx context.Context, postID uint) {
	Invalidate(ctx, PostKey(postID))
}

func InvalidatePostsList(ctx context.Context) {
	Invalidate(ctx, PostsListKey)
}
