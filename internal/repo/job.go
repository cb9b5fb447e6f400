package repo

import (
	"errors"
	"sort"
	"sync"

	"huffzip_go/internal/model"
)

var ErrNotFound = errors.New("not found")

type JobRepo interface {
	Save(j *model.Job) error
	FindByID(id string) (*model.Job, error)
	List() ([]*model.Job, error)
}

type jobRepoInMemory struct {
	mu    sync.RWMutex
	store map[string]*model.Job
}

func NewJobRepoInMemory() JobRepo {
	return &jobRepoInMemory{store: make(map[string]*model.Job)}
}

func (r *jobRepoInMemory) Save(j *model.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.store[j.ID] = j
	return nil
}

func (r *jobRepoInMemory) FindByID(id string) (*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	j, ok := r.store[id]
	if !ok {
		return nil, ErrNotFound
	}
	return j, nil
}

func (r *jobRepoInMemory) List() ([]*model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*model.Job, 0, len(r.store))
	for _, j := range r.store {
		out = append(out, j)
	}
	sort.Slice(out, func(i, k int) bool { return out[i].CreatedAt.After(out[k].CreatedAt) })
	return out, nil
}
