package cache

import (
	"errors"
	"sync"
	"testing"

	"github.com/matryer/is"

	"github.com/flankware/othello/config"
)

func TestLoadOnce(t *testing.T) {
	is := is.New(t)
	c := NewCache()
	cfg := config.DefaultConfig()
	calls := 0
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		calls++
		return key + "-obj", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			obj, err := c.Get(cfg, "a", loader)
			is.NoErr(err)
			is.Equal(obj, "a-obj")
		}()
	}
	wg.Wait()
	is.Equal(calls, 1)
	is.Equal(c.Len(), 1)
}

func TestDropRebuilds(t *testing.T) {
	is := is.New(t)
	c := NewCache()
	n := 0
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		n++
		return n, nil
	}
	obj, err := c.Get(nil, "k", loader)
	is.NoErr(err)
	is.Equal(obj, 1)

	is.True(c.Drop("k"))
	is.True(!c.Drop("k"))

	obj, err = c.Get(nil, "k", loader)
	is.NoErr(err)
	is.Equal(obj, 2)
}

func TestFailedLoadStoresNothing(t *testing.T) {
	is := is.New(t)
	c := NewCache()
	boom := errors.New("boom")
	_, err := c.Get(nil, "k", func(*config.Config, string) (interface{}, error) {
		return nil, boom
	})
	is.Equal(err, boom)
	is.Equal(c.Len(), 0)
}

func TestCachesAreIndependent(t *testing.T) {
	is := is.New(t)
	a, b := NewCache(), NewCache()
	loader := func(cfg *config.Config, key string) (interface{}, error) {
		return new(int), nil
	}
	objA, err := a.Get(nil, "solver-level-1", loader)
	is.NoErr(err)
	objB, err := b.Get(nil, "solver-level-1", loader)
	is.NoErr(err)
	is.True(objA.(*int) != objB.(*int))

	is.True(a.Drop("solver-level-1"))
	is.Equal(a.Len(), 0)
	is.Equal(b.Len(), 1)
}
