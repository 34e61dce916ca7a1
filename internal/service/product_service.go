package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/repository"
)

// ErrInvalidPayload is returned when a create or update body is not a JSON
// object.
var ErrInvalidPayload = errors.New("invalid product payload")

// ProductService handles business logic for products
type ProductService struct {
	repo repository.ProductRepository
}

// NewProductService creates a new product service
func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{
		repo: repo,
	}
}

// CreateProduct forwards body as the ProductInput of a new product.
func (s *ProductService) CreateProduct(ctx context.Context, body []byte) (*models.Product, error) {
	input, err := productInput(body)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, input)
}

// GetProduct returns a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateProduct replaces the product identified by id with body.
func (s *ProductService) UpdateProduct(ctx context.Context, id string, body []byte) (*models.Product, error) {
	input, err := productInput(body)
	if err != nil {
		return nil, err
	}
	return s.repo.Update(ctx, id, input)
}

// DeleteProduct removes a product by ID
func (s *ProductService) DeleteProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.repo.Delete(ctx, id)
}

// ListProducts returns all products
func (s *ProductService) ListProducts(ctx context.Context) ([]models.Product, error) {
	return s.repo.GetAll(ctx)
}

// productInput checks that body is a JSON object and returns it unchanged.
// Field validation is left to the backend's ProductInput type.
func productInput(body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil, ErrInvalidPayload
	}
	return json.RawMessage(trimmed), nil
}
