package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/graphql"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/models"
)

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrMalformedResponse = errors.New("malformed backend response")
)

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(ctx context.Context, input json.RawMessage) (*models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Update(ctx context.Context, id string, input json.RawMessage) (*models.Product, error)
	Delete(ctx context.Context, id string) (*models.Product, error)
	GetAll(ctx context.Context) ([]models.Product, error)
}

// Executor sends a GraphQL request and decodes the reply into out.
// *graphql.Client satisfies it.
type Executor interface {
	Do(ctx context.Context, req graphql.Request, out any) error
}

// GraphQLProductRepository implements ProductRepository against the
// backend GraphQL API. It holds no state between calls.
type GraphQLProductRepository struct {
	exec   Executor
	logger *slog.Logger
}

// NewGraphQLProductRepository creates a repository backed by exec
func NewGraphQLProductRepository(exec Executor, logger *slog.Logger) *GraphQLProductRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &GraphQLProductRepository{
		exec:   exec,
		logger: logger,
	}
}

// Create runs the createProduct mutation with input as $product.
func (r *GraphQLProductRepository) Create(ctx context.Context, input json.RawMessage) (*models.Product, error) {
	return r.single(ctx, createProductOp, map[string]any{
		"product": input,
	})
}

// GetByID runs the FindProductById query.
func (r *GraphQLProductRepository) GetByID(ctx context.Context, id string) (*models.Product, error) {
	return r.single(ctx, findProductByIDOp, map[string]any{
		"id": id,
	})
}

// Update runs the UpdateProductById mutation.
func (r *GraphQLProductRepository) Update(ctx context.Context, id string, input json.RawMessage) (*models.Product, error) {
	return r.single(ctx, updateProductOp, map[string]any{
		"id":      id,
		"product": input,
	})
}

// Delete runs the DeleteProductById mutation and returns the removed product.
func (r *GraphQLProductRepository) Delete(ctx context.Context, id string) (*models.Product, error) {
	return r.single(ctx, deleteProductOp, map[string]any{
		"id": id,
	})
}

// GetAll runs the AllProducts query. The result is never nil.
func (r *GraphQLProductRepository) GetAll(ctx context.Context) ([]models.Product, error) {
	req, err := allProductsOp.NewRequest(nil)
	if err != nil {
		return nil, err
	}

	var resp allProductsResponse
	if err := r.exec.Do(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", allProductsOp.Name, err)
	}

	if resp.Data == nil || resp.Data.AllProducts == nil {
		return nil, r.malformed(allProductsOp, resp.Errors)
	}

	products := resp.Data.AllProducts.Data
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// single executes an operation whose result is the single-product envelope.
// A null product maps to ErrProductNotFound.
func (r *GraphQLProductRepository) single(ctx context.Context, op graphql.Operation, vars map[string]any) (*models.Product, error) {
	req, err := op.NewRequest(vars)
	if err != nil {
		return nil, err
	}

	var resp singleProductResponse
	if err := r.exec.Do(ctx, req, &resp); err != nil {
		return nil, fmt.Errorf("%s: %w", op.Name, err)
	}

	if resp.Data == nil {
		return nil, r.malformed(op, resp.Errors)
	}

	if resp.Data.Product == nil {
		if len(resp.Errors) > 0 {
			r.logger.Info("backend returned null product with errors",
				"operation", op.Name,
				"errors", resp.Errors.Error(),
			)
		}
		return nil, ErrProductNotFound
	}

	return resp.Data.Product, nil
}

func (r *GraphQLProductRepository) malformed(op graphql.Operation, gqlErrs graphql.Errors) error {
	if len(gqlErrs) > 0 {
		return fmt.Errorf("%s: %w: %w", op.Name, ErrMalformedResponse, gqlErrs)
	}
	return fmt.Errorf("%s: %w: missing data", op.Name, ErrMalformedResponse)
}
