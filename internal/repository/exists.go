package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/news-api/internal/apperror"
	"github.com/news-api/internal/cache"
	"github.com/news-api/internal/database"
)

// Kind names an entity that can be checked for existence
type Kind string

const (
	KindTopic   Kind = "topic"
	KindArticle Kind = "article"
	KindComment Kind = "comment"
	KindUser    Kind = "user"
)

// existenceQueries holds one fixed statement per kind; only the key is bound.
var existenceQueries = map[Kind]string{
	KindTopic:   "SELECT EXISTS(SELECT 1 FROM topics WHERE slug = $1)",
	KindArticle: "SELECT EXISTS(SELECT 1 FROM articles WHERE article_id = $1)",
	KindComment: "SELECT EXISTS(SELECT 1 FROM comments WHERE comment_id = $1)",
	KindUser:    "SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)",
}

// ExistenceChecker confirms a referenced key is present. It returns nil when
// the row exists and an *apperror.NotFoundError when it does not.
type ExistenceChecker interface {
	Exists(ctx context.Context, kind Kind, key interface{}) error
}

type existenceChecker struct {
	db database.DBTX
}

// NewExistenceChecker creates a database backed ExistenceChecker
func NewExistenceChecker(db database.DBTX) ExistenceChecker {
	return &existenceChecker{db: db}
}

func (c *existenceChecker) Exists(ctx context.Context, kind Kind, key interface{}) error {
	query, ok := existenceQueries[kind]
	if !ok {
		return fmt.Errorf("unknown entity kind %q", kind)
	}

	var exists bool
	if err := c.db.QueryRowContext(ctx, query, key).Scan(&exists); err != nil {
		return apperror.FromDB(err)
	}
	if !exists {
		return apperror.NewNotFoundError(string(kind), fmt.Sprint(key))
	}
	return nil
}

// cachedExistenceChecker remembers positive answers for kinds that can never
// disappear once created. Negative answers are never cached.
type cachedExistenceChecker struct {
	next      ExistenceChecker
	cache     *cache.Cache
	cacheable map[Kind]bool
}

// NewCachedExistenceChecker wraps next with a cache for topic and user keys
func NewCachedExistenceChecker(next ExistenceChecker, c *cache.Cache) ExistenceChecker {
	return &cachedExistenceChecker{
		next:  next,
		cache: c,
		cacheable: map[Kind]bool{
			KindTopic: true,
			KindUser:  true,
		},
	}
}

func (c *cachedExistenceChecker) Exists(ctx context.Context, kind Kind, key interface{}) error {
	if !c.cacheable[kind] {
		return c.next.Exists(ctx, kind, key)
	}

	cacheKey := cache.KeyExists(string(kind), key)
	if c.cache.Known(cacheKey) {
		return nil
	}

	if err := c.next.Exists(ctx, kind, key); err != nil {
		return err
	}
	c.cache.Remember(cacheKey)
	return nil
}

// ExistenceRecorder receives the outcome of every existence check
type ExistenceRecorder interface {
	RecordExistenceCheck(kind, result string)
}

type instrumentedExistenceChecker struct {
	next     ExistenceChecker
	recorder ExistenceRecorder
}

// NewInstrumentedExistenceChecker reports each check as "found", "missing" or "error"
func NewInstrumentedExistenceChecker(next ExistenceChecker, rec ExistenceRecorder) ExistenceChecker {
	return &instrumentedExistenceChecker{next: next, recorder: rec}
}

func (c *instrumentedExistenceChecker) Exists(ctx context.Context, kind Kind, key interface{}) error {
	err := c.next.Exists(ctx, kind, key)
	switch {
	case err == nil:
		c.recorder.RecordExistenceCheck(string(kind), "found")
	case errors.Is(err, apperror.ErrNotFound):
		c.recorder.RecordExistenceCheck(string(kind), "missing")
	default:
		c.recorder.RecordExistenceCheck(string(kind), "error")
	}
	return err
}
