package repository

import (
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/graphql"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/models"
)

// Product documents sent to the backend. The root field is aliased to
// "product" and _id to "id" so every single-product response shares one
// envelope.
var (
	createProductOp = graphql.MustParseOperation(`mutation createProduct($product: ProductInput!) {
  product: createProduct(data: $product) {
    id: _id
    serialNumber
    title
    weightLbs
    quantity
  }
}`)

	findProductByIDOp = graphql.MustParseOperation(`query FindProductById($id: ID!) {
  product: findProductByID(id: $id) {
    id: _id
    serialNumber
    title
    weightLbs
    quantity
  }
}`)

	updateProductOp = graphql.MustParseOperation(`mutation UpdateProductById(
  $id: ID!
  $product: ProductInput!
) {
  product: updateProduct(
    id: $id
    data: $product
  ) {
    id: _id
    serialNumber
    title
    weightLbs
    quantity
  }
}`)

	deleteProductOp = graphql.MustParseOperation(`mutation DeleteProductById($id: ID!) {
  product: deleteProduct(id: $id) {
    id: _id
    serialNumber
    title
    weightLbs
    quantity
  }
}`)

	allProductsOp = graphql.MustParseOperation(`query AllProducts {
  allProducts {
    data {
      id: _id
      serialNumber
      title
      weightLbs
      quantity
    }
  }
}`)
)

// singleProductResponse is {"data":{"product": Product|null}}.
type singleProductResponse struct {
	Data *struct {
		Product *models.Product `json:"product"`
	} `json:"data"`
	Errors graphql.Errors `json:"errors,omitempty"`
}

// allProductsResponse is {"data":{"allProducts":{"data":[Product]}}}.
type allProductsResponse struct {
	Data *struct {
		AllProducts *struct {
			Data []models.Product `json:"data"`
		} `json:"allProducts"`
	} `json:"data"`
	Errors graphql.Errors `json:"errors,omitempty"`
}
