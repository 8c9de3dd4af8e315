package inmemdb

import (
	"sync"

	"github.com/trezcool/staffroom/core/school"
)

type (
	// DB holds the process-lifetime tables; nothing survives a restart.
	DB struct {
		state *stateTable
	}

	stateTable struct {
		sync.RWMutex
		snapshot school.State
	}
)

// Open returns a DB loaded with the given snapshot.
func Open(seed school.State) *DB {
	return &DB{
		state: &stateTable{snapshot: seed.Clone()},
	}
}
