package cache

import (
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/flankware/othello/config"
)

// The cache holds objects that are expensive to build and that we want to
// keep for the lifetime of the process, such as a solver per difficulty
// level with its warm transposition table. Objects are only built on first
// use.

type Cache struct {
	sync.Mutex
	objects map[string]interface{}
}

type LoadFunc func(cfg *config.Config, key string) (interface{}, error)

func NewCache() *Cache {
	return &Cache{objects: make(map[string]interface{})}
}

func (c *Cache) load(cfg *config.Config, key string, loadFunc LoadFunc) error {
	log.Debug().Str("key", key).Msg("loading into cache")

	obj, err := loadFunc(cfg, key)
	if err != nil {
		return err
	}
	c.objects[key] = obj

	return nil
}

// Get returns the object stored under key, building it with loadFunc if it
// is not there yet. A failed load stores nothing.
func (c *Cache) Get(cfg *config.Config, key string, loadFunc LoadFunc) (interface{}, error) {
	c.Lock()
	defer c.Unlock()
	if obj, ok := c.objects[key]; ok {
		log.Debug().Str("key", key).Msg("getting obj from cache")
		return obj, nil
	}
	if err := c.load(cfg, key, loadFunc); err != nil {
		return nil, err
	}
	return c.objects[key], nil
}

// Drop discards the object under key. It reports whether there was one.
func (c *Cache) Drop(key string) bool {
	c.Lock()
	defer c.Unlock()
	_, ok := c.objects[key]
	delete(c.objects, key)
	log.Debug().Str("key", key).Bool("existed", ok).Msg("dropping from cache")
	return ok
}

func (c *Cache) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.objects)
}
