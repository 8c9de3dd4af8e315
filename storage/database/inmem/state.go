package inmemdb

import (
	"github.com/trezcool/staffroom/core/school"
)

type stateRepository struct {
	db *stateTable
}

var _ school.Repository = (*stateRepository)(nil)

func NewStateRepository(db *DB) school.Repository {
	return &stateRepository{db: db.state}
}

func (repo *stateRepository) LoadState() (school.State, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()
	return repo.db.snapshot.Clone(), nil
}

// SaveState replaces the stored snapshot wholesale.
func (repo *stateRepository) SaveState(s school.State) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.snapshot = s.Clone()
	return nil
}
