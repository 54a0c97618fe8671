package services

import (
	"context"
	"io"
	"strings"

	"jasit-store/libs"
	"jasit-store/models"
	"jasit-store/utils"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ProductStore interface {
	FindAll(ctx context.Context) ([]models.Product, error)
	FindByCategory(ctx context.Context, category string) ([]models.Product, error)
	FindByID(ctx context.Context, id string) (*models.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, p *models.Product) error
	Delete(ctx context.Context, id string) error
}

// ImageUpload is an image file received with a product form.
type ImageUpload struct {
	File     io.Reader
	Filename string
}

type ProductService struct {
	repo    ProductStore
	cache   *libs.ProductCache
	storage libs.ImageStorage
	log     *zap.Logger
}

func NewProductService(repo ProductStore, cache *libs.ProductCache, storage libs.ImageStorage, log *zap.Logger) *ProductService {
	return &ProductService{repo: repo, cache: cache, storage: storage, log: log}
}

func (s *ProductService) List(ctx context.Context, category string) ([]models.Product, error) {
	category = strings.TrimSpace(category)

	products, hit, err := s.cache.GetList(ctx, category)
	if err != nil {
		s.log.Warn("product cache read failed", zap.String("category", category), zap.Error(err))
	}
	if hit {
		return products, nil
	}

	if category == "" {
		products, err = s.repo.FindAll(ctx)
	} else {
		products, err = s.repo.FindByCategory(ctx, category)
	}
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, category, products); err != nil {
		s.log.Warn("product cache write failed", zap.String("category", category), zap.Error(err))
	}
	return products, nil
}

func (s *ProductService) Get(ctx context.Context, id string) (*models.Product, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, utils.NotFound("Produk tidak ditemukan")
	}
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) Categories(ctx context.Context) ([]string, error) {
	return s.repo.Categories(ctx)
}

func (s *ProductService) Create(ctx context.Context, req models.CreateProductRequest, img *ImageUpload) (*models.Product, error) {
	name, err := validName(req.Name)
	if err != nil {
		return nil, err
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		return nil, utils.InvalidInput("Kategori wajib diisi")
	}

	product := &models.Product{
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Price:       price,
		ImageURL:    strings.TrimSpace(req.ImageURL),
		Category:    category,
		Features:    cleanFeatures(req.Features),
	}

	if img != nil {
		url, ref, err := s.upload(ctx, *img)
		if err != nil {
			return nil, err
		}
		product.ImageURL, product.ImageRef = url, ref
	}

	if err := s.repo.Create(ctx, product); err != nil {
		s.discardImage(ctx, product.ImageRef)
		return nil, err
	}

	s.invalidate(ctx)
	return product, nil
}

// Update applies a partial change. A new image is uploaded before the row is
// written; the new image is removed again if the write fails, and the old one
// only once the write has succeeded.
func (s *ProductService) Update(ctx context.Context, id string, req models.UpdateProductRequest, img *ImageUpload) (*models.Product, error) {
	product, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	changes, err := productChanges(req)
	if err != nil {
		return nil, err
	}

	oldRef := product.ImageRef
	var newRef string
	if img != nil {
		url, ref, err := s.upload(ctx, *img)
		if err != nil {
			return nil, err
		}
		newRef = ref
		changes.ImageURL, changes.ImageRef = &url, &newRef
	} else if changes.ImageURL != nil {
		empty := ""
		changes.ImageRef = &empty
	}

	product.Apply(changes)

	if err := s.repo.Update(ctx, product); err != nil {
		s.discardImage(ctx, newRef)
		return nil, err
	}

	if changes.ImageRef != nil && oldRef != "" && oldRef != product.ImageRef {
		s.discardImage(ctx, oldRef)
	}

	s.invalidate(ctx)
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	product, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, product.ID); err != nil {
		return err
	}

	s.discardImage(ctx, product.ImageRef)
	s.invalidate(ctx)
	return nil
}

// UploadImage stores a standalone product image and returns its public URL.
func (s *ProductService) UploadImage(ctx context.Context, img ImageUpload) (string, error) {
	url, _, err := s.upload(ctx, img)
	return url, err
}

func (s *ProductService) upload(ctx context.Context, img ImageUpload) (string, string, error) {
	if s.storage == nil {
		return "", "", utils.InvalidInput("Penyimpanan gambar tidak tersedia")
	}
	url, ref, err := s.storage.Upload(ctx, img.File, img.Filename, libs.ProductImageFolder)
	if err != nil {
		s.log.Error("image upload failed", zap.String("filename", img.Filename), zap.Error(err))
		return "", "", err
	}
	return url, ref, nil
}

func (s *ProductService) discardImage(ctx context.Context, ref string) {
	if ref == "" || s.storage == nil {
		return
	}
	if err := s.storage.Delete(ctx, ref); err != nil {
		s.log.Warn("image cleanup failed", zap.String("ref", ref), zap.Error(err))
	}
}

func (s *ProductService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn("product cache invalidation failed", zap.Error(err))
	}
}

func productChanges(req models.UpdateProductRequest) (models.ProductChanges, error) {
	var ch models.ProductChanges

	if req.Name != nil {
		name, err := validName(*req.Name)
		if err != nil {
			return ch, err
		}
		ch.Name = &name
	}
	if req.Description != nil {
		desc := strings.TrimSpace(*req.Description)
		ch.Description = &desc
	}
	if req.Price != nil {
		price, err := parsePrice(*req.Price)
		if err != nil {
			return ch, err
		}
		ch.Price = &price
	}
	if req.Category != nil {
		category := strings.TrimSpace(*req.Category)
		if category == "" {
			return ch, utils.InvalidInput("Kategori wajib diisi")
		}
		ch.Category = &category
	}
	if req.ImageURL != nil {
		url := strings.TrimSpace(*req.ImageURL)
		ch.ImageURL = &url
	}
	if req.Features != nil {
		ch.Features = cleanFeatures(req.Features)
		ch.SetFeatures = true
	}
	return ch, nil
}

func validName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < 3 {
		return "", utils.InvalidInput("Nama produk minimal 3 karakter")
	}
	return name, nil
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, utils.InvalidInput("Harga tidak valid")
	}
	if price.IsNegative() {
		return decimal.Zero, utils.InvalidInput("Harga tidak boleh negatif")
	}
	return price, nil
}

// cleanFeatures trims every entry and drops the blank ones.
func cleanFeatures(features []string) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
