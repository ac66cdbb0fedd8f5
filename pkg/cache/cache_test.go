package cache_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"istanbul_helper_back/pkg/cache"
)

func TestGetOrRefreshReturnsCachedWithinTTL(t *testing.T) {
	c := cache.New[string, int]("test", time.Minute)

	var calls int32
	refresh := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		return 42, nil
	}

	first, err := c.GetOrRefresh(context.Background(), "k", refresh)
	require.NoError(t, err)
	second, err := c.GetOrRefresh(context.Background(), "k", refresh)
	require.NoError(t, err)

	assert.Equal(t, 42, first)
	assert.Equal(t, first, second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "второго запроса к API быть не должно")
}

func TestGetOrRefreshRefreshesAfterTTL(t *testing.T) {
	c := cache.New[string, int]("test", 50*time.Millisecond)

	var calls int32
	refresh := func(ctx context.Context) (int, error) {
		return int(atomic.AddInt32(&calls, 1)), nil
	}

	v, err := c.GetOrRefresh(context.Background(), "k", refresh)
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	time.Sleep(80 * time.Millisecond)

	v, err = c.GetOrRefresh(context.Background(), "k", refresh)
	require.NoError(t, err)
	assert.Equal(t, 2, v, "после истечения TTL должно быть ровно одно обновление")
}

func TestFailedRefreshKeepsPreviousEntry(t *testing.T) {
	c := cache.New[string, int]("test", 50*time.Millisecond)

	_, err := c.GetOrRefresh(context.Background(), "k", func(ctx context.Context) (int, error) {
		return 7, nil
	})
	require.NoError(t, err)

	before, ok := c.Peek("k")
	require.True(t, ok)

	time.Sleep(80 * time.Millisecond)

	_, err = c.GetOrRefresh(context.Background(), "k", func(ctx context.Context) (int, error) {
		return 0, errors.New("внешний API лежит")
	})
	require.Error(t, err)

	after, ok := c.Peek("k")
	require.True(t, ok, "неудачное обновление не должно трогать запись")
	assert.Equal(t, before.Value, after.Value)
	assert.Equal(t, before.FetchedAt, after.FetchedAt)
}

func TestDistinctKeysAreIndependent(t *testing.T) {
	c := cache.New[string, string]("test", time.Minute)

	_, err := c.GetOrRefresh(context.Background(), "a", func(ctx context.Context) (string, error) {
		return "first", nil
	})
	require.NoError(t, err)

	beforeA, ok := c.Peek("a")
	require.True(t, ok)

	_, err = c.GetOrRefresh(context.Background(), "b", func(ctx context.Context) (string, error) {
		return "second", nil
	})
	require.NoError(t, err)

	afterA, ok := c.Peek("a")
	require.True(t, ok, "обновление чужого ключа не должно трогать запись")
	assert.Equal(t, beforeA, afterA)

	entB, ok := c.Peek("b")
	require.True(t, ok)
	assert.Equal(t, "second", entB.Value)
	assert.Equal(t, 2, c.Len())
}

func TestConcurrentSameKeyShareOneRefresh(t *testing.T) {
	c := cache.New[string, int]("test", time.Minute)

	var calls int32
	refresh := func(ctx context.Context) (int, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(50 * time.Millisecond)
		return 99, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.GetOrRefresh(context.Background(), "k", refresh)
			assert.NoError(t, err)
			assert.Equal(t, 99, v)
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, atomic.LoadInt32(&calls), "конкурентные запросы одного ключа делят один fetch")
}

func TestDistinctKeysDoNotBlockEachOther(t *testing.T) {
	c := cache.New[string, int]("test", time.Minute)

	slow := func(ctx context.Context) (int, error) {
		time.Sleep(200 * time.Millisecond)
		return 1, nil
	}
	fast := func(ctx context.Context) (int, error) {
		return 2, nil
	}

	done := make(chan struct{})
	go func() {
		_, _ = c.GetOrRefresh(context.Background(), "slow", slow)
		close(done)
	}()
	time.Sleep(20 * time.Millisecond)

	start := time.Now()
	v, err := c.GetOrRefresh(context.Background(), "fast", fast)
	require.NoError(t, err)
	assert.Equal(t, 2, v)
	assert.Less(t, time.Since(start), 100*time.Millisecond, "другой ключ не должен ждать чужой fetch")

	<-done
}

func TestExpiredEntriesSweptOnStore(t *testing.T) {
	c := cache.New[string, int]("test", 50*time.Millisecond)

	_, err := c.GetOrRefresh(context.Background(), "old", func(ctx context.Context) (int, error) {
		return 1, nil
	})
	require.NoError(t, err)

	time.Sleep(80 * time.Millisecond)

	_, err = c.GetOrRefresh(context.Background(), "new", func(ctx context.Context) (int, error) {
		return 2, nil
	})
	require.NoError(t, err)

	_, ok := c.Peek("old")
	assert.False(t, ok, "протухшая запись выметается при записи новой")
	_, ok = c.Peek("new")
	assert.True(t, ok)
}
