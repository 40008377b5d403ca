package memory

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"companion-core/internal/model"
	"companion-core/pkg/log"
)

// Store capacities. Evicting the least recently used entry bounds memory
// without a separate janitor.
const (
	DefaultProfileCapacity = 4096
	DefaultTaskCapacity    = 4096
)

// Store is an in-process LRU-bounded implementation of both repository
// interfaces. Safe for concurrent use.
type Store struct {
	l        log.Logger
	mu       sync.Mutex
	profiles *lru.Cache[string, model.UserProfile]
	tasks    *lru.Cache[string, []model.Task]
	newID    func() string
}

// New creates a new in-memory store. Zero or negative capacities use the
// defaults.
func New(l log.Logger, profileCapacity, taskCapacity int) (*Store, error) {
	if profileCapacity <= 0 {
		profileCapacity = DefaultProfileCapacity
	}
	if taskCapacity <= 0 {
		taskCapacity = DefaultTaskCapacity
	}

	profiles, err := lru.New[string, model.UserProfile](profileCapacity)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to create profile cache: %w", err)
	}

	tasks, err := lru.New[string, []model.Task](taskCapacity)
	if err != nil {
		return nil, fmt.Errorf("memory: failed to create task cache: %w", err)
	}

	return &Store{
		l:        l,
		profiles: profiles,
		tasks:    tasks,
		newID:    newUUID,
	}, nil
}
