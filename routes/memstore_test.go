package routes

import (
	"sort"
	"sync"

	"motoconnect-api/models"
	"motoconnect-api/repositories"
)

// In-memory store fakes. Finds return copies so handlers only change
// durable state through Save, like the real repositories.

type memUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[string]models.User)}
}

func (s *memUserStore) Create(user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *memUserStore) FindByID(id string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &user, nil
}

func (s *memUserStore) FindByEmail(email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.Email == email {
			u := user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (s *memUserStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, id)
	return nil
}

type memProfileStore struct {
	mu       sync.Mutex
	profiles map[string]models.Profile // keyed by user id
}

func newMemProfileStore() *memProfileStore {
	return &memProfileStore{profiles: make(map[string]models.Profile)}
}

func (s *memProfileStore) Create(profile *models.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.UserID] = *profile
	return nil
}

func (s *memProfileStore) Save(profile *models.Profile) error {
	return s.Create(profile)
}

func (s *memProfileStore) FindByUser(userID string) (*models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, ok := s.profiles[userID]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &profile, nil
}

func (s *memProfileStore) FindAll() ([]models.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	profiles := make([]models.Profile, 0, len(s.profiles))
	for _, p := range s.profiles {
		profiles = append(profiles, p)
	}
	return profiles, nil
}

func (s *memProfileStore) DeleteByUser(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, userID)
	return nil
}

type memPostStore struct {
	mu    sync.Mutex
	posts map[string]models.Post
	seq   map[string]int
	next  int
}

func newMemPostStore() *memPostStore {
	return &memPostStore{posts: make(map[string]models.Post), seq: make(map[string]int)}
}

func (s *memPostStore) Create(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.seq[post.ID] = s.next
	s.posts[post.ID] = *post
	return nil
}

func (s *memPostStore) Save(post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts[post.ID] = *post
	return nil
}

func (s *memPostStore) FindByID(id string) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post, ok := s.posts[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &post, nil
}

func (s *memPostStore) FindAll() ([]models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	posts := make([]models.Post, 0, len(s.posts))
	for _, p := range s.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return s.seq[posts[i].ID] > s.seq[posts[j].ID]
	})
	return posts, nil
}

func (s *memPostStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.posts, id)
	return nil
}

type memMotorcycleStore struct {
	mu          sync.Mutex
	motorcycles map[string]models.Motorcycle
	seq         map[string]int
	next        int
}

func newMemMotorcycleStore() *memMotorcycleStore {
	return &memMotorcycleStore{motorcycles: make(map[string]models.Motorcycle), seq: make(map[string]int)}
}

func (s *memMotorcycleStore) Create(m *models.Motorcycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	s.seq[m.ID] = s.next
	s.motorcycles[m.ID] = *m
	return nil
}

func (s *memMotorcycleStore) Save(m *models.Motorcycle) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.motorcycles[m.ID] = *m
	return nil
}

func (s *memMotorcycleStore) FindByID(id string) (*models.Motorcycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.motorcycles[id]
	if !ok {
		return nil, repositories.ErrNotFound
	}
	return &m, nil
}

func (s *memMotorcycleStore) FindAll() ([]models.Motorcycle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	motorcycles := make([]models.Motorcycle, 0, len(s.motorcycles))
	for _, m := range s.motorcycles {
		motorcycles = append(motorcycles, m)
	}
	sort.Slice(motorcycles, func(i, j int) bool {
		return s.seq[motorcycles[i].ID] > s.seq[motorcycles[j].ID]
	})
	return motorcycles, nil
}

func (s *memMotorcycleStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.motorcycles, id)
	return nil
}
