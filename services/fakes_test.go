package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"sync"

	"jasit-store/models"
	"jasit-store/utils"
)

type fakeProductStore struct {
	mu        sync.Mutex
	products  map[string]*models.Product
	seq       int
	findAll   int
	updateErr error
	createErr error
}

func newFakeProductStore(products ...models.Product) *fakeProductStore {
	s := &fakeProductStore{products: map[string]*models.Product{}}
	for i := range products {
		p := products[i]
		s.products[p.ID] = &p
	}
	return s
}

func (s *fakeProductStore) FindAll(_ context.Context) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.findAll++
	out := []models.Product{}
	for _, p := range s.products {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeProductStore) FindByCategory(ctx context.Context, category string) ([]models.Product, error) {
	all, _ := s.FindAll(ctx)
	out := []models.Product{}
	for _, p := range all {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *fakeProductStore) FindByID(_ context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, utils.NotFound("Produk tidak ditemukan")
	}
	cp := *p
	return &cp, nil
}

func (s *fakeProductStore) Categories(_ context.Context) ([]string, error) {
	return []string{"Infrastruktur", "Web"}, nil
}

func (s *fakeProductStore) Create(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.createErr != nil {
		return s.createErr
	}
	s.seq++
	p.ID = fmt.Sprintf("p-new-%d", s.seq)
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *fakeProductStore) Update(_ context.Context, p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	if _, ok := s.products[p.ID]; !ok {
		return utils.NotFound("Produk tidak ditemukan")
	}
	cp := *p
	s.products[p.ID] = &cp
	return nil
}

func (s *fakeProductStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return utils.NotFound("Produk tidak ditemukan")
	}
	delete(s.products, id)
	return nil
}

type fakeStorage struct {
	uploaded  []string
	deleted   []string
	uploadErr error
	seq       int
}

func (s *fakeStorage) Upload(_ context.Context, r io.Reader, filename, folder string) (string, string, error) {
	if s.uploadErr != nil {
		return "", "", s.uploadErr
	}
	if _, err := io.ReadAll(r); err != nil {
		return "", "", err
	}
	s.seq++
	ref := fmt.Sprintf("%s/%d-%s", folder, s.seq, filename)
	s.uploaded = append(s.uploaded, ref)
	return "https://cdn.test/" + ref, ref, nil
}

func (s *fakeStorage) Delete(_ context.Context, ref string) error {
	s.deleted = append(s.deleted, ref)
	return nil
}

type fakeUserStore struct {
	users     map[string]*models.User
	profiles  map[int]*models.UserProfile
	nextID    int
	createErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}, profiles: map[int]*models.UserProfile{}, nextID: 1}
}

func (s *fakeUserStore) CreateWithProfile(_ context.Context, user *models.User, profile *models.UserProfile) error {
	if s.createErr != nil {
		return s.createErr
	}
	if _, ok := s.users[user.Email]; ok {
		return utils.Conflict("Email sudah terdaftar")
	}
	user.ID = s.nextID
	s.nextID++
	profile.UserID = user.ID
	cu, cp := *user, *profile
	s.users[user.Email] = &cu
	s.profiles[user.ID] = &cp
	return nil
}

func (s *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, utils.NotFound("Pengguna tidak ditemukan")
	}
	cu := *u
	return &cu, nil
}

func (s *fakeUserStore) FindByID(_ context.Context, id int) (*models.User, error) {
	for _, u := range s.users {
		if u.ID == id {
			cu := *u
			return &cu, nil
		}
	}
	return nil, utils.NotFound("Pengguna tidak ditemukan")
}

func (s *fakeUserStore) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	u, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := &models.UserWithProfile{ID: u.ID, Email: u.Email, Role: u.Role}
	if p, ok := s.profiles[userID]; ok {
		out.FullName, out.Phone, out.Company, out.Address = p.FullName, p.Phone, p.Company, p.Address
	}
	return out, nil
}

func (s *fakeUserStore) UpsertProfile(_ context.Context, profile *models.UserProfile) error {
	cp := *profile
	s.profiles[profile.UserID] = &cp
	return nil
}

func (s *fakeUserStore) UpdatePassword(_ context.Context, userID int, hashed string) error {
	for _, u := range s.users {
		if u.ID == userID {
			u.Password = hashed
			return nil
		}
	}
	return utils.NotFound("Pengguna tidak ditemukan")
}

type fakeMailer struct {
	sent []*models.CheckoutConfirmation
	err  error
}

func (m *fakeMailer) SendCheckoutConfirmation(_ context.Context, c *models.CheckoutConfirmation) error {
	m.sent = append(m.sent, c)
	return m.err
}

var errDB = errors.New("db unavailable")
