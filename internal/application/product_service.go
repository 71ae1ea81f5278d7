package application

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"storefront/internal/domain/entity"
	repo "storefront/internal/domain/repository"
)

// ProductService enforces the per-owner CRUD rules on catalog records.
//
// The not-found/not-owned asymmetry is deliberate and load-bearing:
// Replace distinguishes a missing product (not found) from someone
// else's product (access denied), while Patch and Delete collapse both
// cases into not found.
type ProductService struct {
	Repo            repo.ProductRepository
	Logger          *logrus.Logger
	ES              *elasticsearch.Client
	ESProductsIndex string
}

func NewProductService(r repo.ProductRepository, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *ProductService {
	return &ProductService{Repo: r, Logger: logger, ES: es, ESProductsIndex: esIndex}
}

type ProductInput struct {
	Name         string
	Description  string
	SKU          string
	Manufacturer string
	Quantity     int
}

// ProductPatch carries a partial update. Nil pointers mean "leave alone";
// blank strings are likewise ignored for every field except Description,
// which may legitimately be set to empty.
type ProductPatch struct {
	Name         *string
	Description  *string
	SKU          *string
	Manufacturer *string
	Quantity     *int
}

func (s *ProductService) Create(ctx context.Context, actor *entity.User, in ProductInput) (*entity.Product, error) {
	if err := RequireVerified(actor); err != nil {
		return nil, err
	}

	taken, err := s.Repo.ExistsBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSKUTaken
	}

	now := time.Now().UTC()
	p := &entity.Product{
		Name:            in.Name,
		Description:     in.Description,
		SKU:             in.SKU,
		Manufacturer:    in.Manufacturer,
		Quantity:        in.Quantity,
		OwnerUserID:     actor.ID,
		DateAdded:       now,
		DateLastUpdated: now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrSKUTaken
		}
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

// Get is a public read: no actor, no ownership check.
func (s *ProductService) Get(ctx context.Context, id int64) (*entity.Product, error) {
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *ProductService) ListByOwner(ctx context.Context, ownerUserID int64) ([]*entity.Product, error) {
	return s.Repo.ListByOwner(ctx, ownerUserID)
}

// Replace overwrites every mutable field. The existence check runs before
// the ownership check, so a missing product reads as not found even to a
// caller who would not own it.
func (s *ProductService) Replace(ctx context.Context, actor *entity.User, id int64, in ProductInput) (*entity.Product, error) {
	if err := RequireVerified(actor); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	if p.OwnerUserID != actor.ID {
		return nil, ErrAccessDenied
	}

	taken, err := s.Repo.ExistsBySKUExcluding(ctx, in.SKU, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrSKUTaken
	}

	p.Name = in.Name
	p.Description = in.Description
	p.SKU = in.SKU
	p.Manufacturer = in.Manufacturer
	p.Quantity = in.Quantity
	p.DateLastUpdated = time.Now().UTC()

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrSKUTaken
		}
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

// Patch applies only the fields present in the request. The lookup is
// owner-scoped, so "no such product" and "not your product" are the same
// outcome here. Quantity is overwritten as-is when present; the
// create-time non-negativity constraint is not re-checked on this path.
func (s *ProductService) Patch(ctx context.Context, actor *entity.User, id int64, patch ProductPatch) (*entity.Product, error) {
	if err := RequireVerified(actor); err != nil {
		return nil, err
	}

	p, err := s.Repo.GetByIDAndOwner(ctx, id, actor.ID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if patch.Name != nil && strings.TrimSpace(*patch.Name) != "" {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.SKU != nil && strings.TrimSpace(*patch.SKU) != "" {
		taken, sErr := s.Repo.ExistsBySKUExcluding(ctx, *patch.SKU, id)
		if sErr != nil {
			return nil, sErr
		}
		if taken {
			return nil, ErrSKUTaken
		}
		p.SKU = *patch.SKU
	}
	if patch.Manufacturer != nil && strings.TrimSpace(*patch.Manufacturer) != "" {
		p.Manufacturer = *patch.Manufacturer
	}
	if patch.Quantity != nil {
		p.Quantity = *patch.Quantity
	}
	p.DateLastUpdated = time.Now().UTC()

	if err := s.Repo.Update(ctx, p); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrSKUTaken
		}
		return nil, err
	}
	s.indexProduct(ctx, p)
	return p, nil
}

// Delete removes a product permanently. Ownership mismatch is reported
// identically to absence.
func (s *ProductService) Delete(ctx context.Context, actor *entity.User, id int64) error {
	if err := RequireVerified(actor); err != nil {
		return err
	}

	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}
	if p.OwnerUserID != actor.ID {
		return ErrProductNotFound
	}

	if err := s.Repo.Delete(ctx, id); err != nil {
		return err
	}
	s.deindexProduct(ctx, id)
	return nil
}

// indexProduct mirrors the record into Elasticsearch, best-effort.
func (s *ProductService) indexProduct(ctx context.Context, p *entity.Product) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return
	}
	doc := map[string]any{
		"id":            p.ID,
		"name":          p.Name,
		"description":   p.Description,
		"sku":           p.SKU,
		"manufacturer":  p.Manufacturer,
		"quantity":      p.Quantity,
		"owner_user_id": p.OwnerUserID,
		"date_added":    p.DateAdded.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      s.ESProductsIndex,
		DocumentID: strconv.FormatInt(p.ID, 10),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", p.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("product_id", p.ID).Warn("es index response error")
	}
}

func (s *ProductService) deindexProduct(ctx context.Context, id int64) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESProductsIndex, DocumentID: strconv.FormatInt(id, 10)}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("product_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}

// Search performs a multi_match query over name, sku, manufacturer and
// description. Returns raw documents as stored in the index.
func (s *ProductService) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if s.ES == nil || s.ESProductsIndex == "" {
		return []map[string]any{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"sku^2", "name", "manufacturer", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESProductsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string         `json:"_id"`
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
