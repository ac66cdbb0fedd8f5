package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// DefaultTTL — время жизни записи, если при создании кэша не задано другое
const DefaultTTL = 120 * time.Second

// Entry хранит значение вместе со временем последнего успешного обновления
type Entry[V any] struct {
	Value     V
	FetchedAt time.Time
}

// Cache — кэш "ключ — значение" с TTL. Один экземпляр на домен (курсы, погода),
// создаётся при старте и передаётся сервисам по ссылке. Конкурентные обновления
// одного ключа складываются в один запрос к API, разные ключи друг друга не ждут.
type Cache[K comparable, V any] struct {
	name    string
	ttl     time.Duration
	mu      sync.RWMutex
	entries map[K]Entry[V]
	sf      singleflight.Group
}

func New[K comparable, V any](name string, ttl time.Duration) *Cache[K, V] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache[K, V]{
		name:    name,
		ttl:     ttl,
		entries: make(map[K]Entry[V]),
	}
}

// GetOrRefresh возвращает свежее значение из кэша или обновляет его через refresh.
// При ошибке refresh в кэш ничего не пишется, старая запись остаётся как была,
// но протухшее значение никогда не возвращается вместо ошибки.
func (c *Cache[K, V]) GetOrRefresh(ctx context.Context, key K, refresh func(ctx context.Context) (V, error)) (V, error) {
	if ent, ok := c.fresh(key); ok {
		logrus.Infof("Кэш %s: значение взято из кэша, ключ %v", c.name, key)
		return ent.Value, nil
	}

	v, err, _ := c.sf.Do(fmt.Sprintf("%v", key), func() (interface{}, error) {
		// Пока мы ждали своей очереди, ключ мог обновиться
		if ent, ok := c.fresh(key); ok {
			return ent.Value, nil
		}
		value, err := refresh(ctx)
		if err != nil {
			return nil, err
		}
		c.store(key, value)
		return value, nil
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return v.(V), nil
}

// Peek отдаёт запись как есть, без проверки свежести
func (c *Cache[K, V]) Peek(key K) (Entry[V], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.entries[key]
	return ent, ok
}

func (c *Cache[K, V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

func (c *Cache[K, V]) fresh(key K) (Entry[V], bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ent, ok := c.entries[key]
	if !ok || time.Since(ent.FetchedAt) >= c.ttl {
		return Entry[V]{}, false
	}
	return ent, true
}

// store кладёт запись целиком и заодно выметает протухшие записи других ключей
func (c *Cache[K, V]) store(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for k, ent := range c.entries {
		if k != key && time.Since(ent.FetchedAt) >= c.ttl {
			delete(c.entries, k)
		}
	}

	c.entries[key] = Entry[V]{Value: value, FetchedAt: time.Now()}
	logrus.Infof("Кэш %s: значение сохранено, ключ %v", c.name, key)
}
