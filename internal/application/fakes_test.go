package application

import (
	"context"
	"io"

	"storefront/internal/domain/entity"
	repo "storefront/internal/domain/repository"
)

// In-memory fakes for the repository and capability interfaces. Error
// fields, when set, are returned on the next matching call.

type fakeUserRepo struct {
	users     map[int64]*entity.User
	nextID    int64
	createErr error
	updateErr error
	getErr    error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[int64]*entity.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, ex := range f.users {
		if ex.Email == u.Email {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	u.ID = f.nextID
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.users[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *fakeUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	for _, u := range f.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *entity.User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.users[u.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *u
	f.users[u.ID] = &cp
	return nil
}

type fakeProductRepo struct {
	products  map[int64]*entity.Product
	nextID    int64
	createErr error
	updateErr error
	getErr    error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[int64]*entity.Product{}}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, ex := range f.products {
		if ex.SKU == p.SKU {
			return repo.ErrDuplicate
		}
	}
	f.nextID++
	p.ID = f.nextID
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id int64) (*entity.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.products[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) GetByIDAndOwner(_ context.Context, id, ownerUserID int64) (*entity.Product, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	p, ok := f.products[id]
	if !ok || p.OwnerUserID != ownerUserID {
		return nil, repo.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProductRepo) ListByOwner(_ context.Context, ownerUserID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.OwnerUserID == ownerUserID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) ExistsBySKU(_ context.Context, sku string) (bool, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) ExistsBySKUExcluding(_ context.Context, sku string, excludeID int64) (bool, error) {
	for _, p := range f.products {
		if p.SKU == sku && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	if _, ok := f.products[p.ID]; !ok {
		return repo.ErrNotFound
	}
	cp := *p
	f.products[p.ID] = &cp
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.products[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.products, id)
	return nil
}

type fakeImageRepo struct {
	images    map[int64]*entity.Image
	nextID    int64
	createErr error
	getErr    error
}

func newFakeImageRepo() *fakeImageRepo {
	return &fakeImageRepo{images: map[int64]*entity.Image{}}
}

func (f *fakeImageRepo) Create(_ context.Context, img *entity.Image) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.nextID++
	img.ID = f.nextID
	cp := *img
	f.images[img.ID] = &cp
	return nil
}

func (f *fakeImageRepo) GetByID(_ context.Context, id int64) (*entity.Image, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	img, ok := f.images[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *img
	return &cp, nil
}

func (f *fakeImageRepo) ListByProduct(_ context.Context, productID int64) ([]*entity.Image, error) {
	var out []*entity.Image
	for _, img := range f.images {
		if img.ProductID == productID {
			cp := *img
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeImageRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.images[id]; !ok {
		return repo.ErrNotFound
	}
	delete(f.images, id)
	return nil
}

type fakeBlobStore struct {
	blobs     map[string][]byte
	putErr    error
	deleteErr error
	putCalls  int
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: map[string][]byte{}}
}

func (f *fakeBlobStore) Put(_ context.Context, key, _ string, r io.Reader) error {
	f.putCalls++
	if f.putErr != nil {
		return f.putErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.blobs[key] = b
	return nil
}

func (f *fakeBlobStore) Delete(_ context.Context, key string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.blobs, key)
	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, key string) (bool, error) {
	_, ok := f.blobs[key]
	return ok, nil
}

type fakeHealthRepo struct {
	pingErr     error
	createErr   error
	pingCalls   int
	createCalls int
}

func (f *fakeHealthRepo) Ping(_ context.Context) error {
	f.pingCalls++
	return f.pingErr
}

func (f *fakeHealthRepo) Create(_ context.Context, hc *entity.HealthCheck) error {
	f.createCalls++
	if f.createErr != nil {
		return f.createErr
	}
	hc.ID = int64(f.createCalls)
	return nil
}

// fakeHasher avoids bcrypt cost in tests; the mapping is reversible on
// purpose so assertions can see through it.
type fakeHasher struct{}

func (fakeHasher) Hash(plain string) (string, error) { return "hashed:" + plain, nil }
func (fakeHasher) Verify(hash, plain string) bool    { return hash == "hashed:"+plain }

type fakePublisher struct {
	published []any
	err       error
}

func (f *fakePublisher) PublishJSON(_ context.Context, body any) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, body)
	return nil
}
