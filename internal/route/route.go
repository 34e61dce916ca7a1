// Package route maps an inbound (method, path) pair onto one of the fixed
// product routes. Matching is stateless and first-match-wins.
package route

import (
	"net/http"
	"strings"
)

// ProductResource is the only resource segment the service understands.
const ProductResource = "product"

// AllowedMethods is the value sent in the Allow header of a 405 response.
const AllowedMethods = "GET, HEAD, POST, PUT, DELETE"

// MethodNotAllowedBody is the plain-text body of a 405 response.
const MethodNotAllowedBody = "This method is not allowed\n"

// Kind enumerates every route outcome.
type Kind int

const (
	NotFound Kind = iota
	Welcome
	CreateProduct
	GetProduct
	UpdateProduct
	DeleteProduct
	ListProducts
)

var kindNames = map[Kind]string{
	NotFound:      "not_found",
	Welcome:       "welcome",
	CreateProduct: "create_product",
	GetProduct:    "get_product",
	UpdateProduct: "update_product",
	DeleteProduct: "delete_product",
	ListProducts:  "list_products",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Route is the result of matching a request. ID holds the slug for the
// single-product kinds and is empty otherwise.
type Route struct {
	Kind Kind
	ID   string
}

// MethodAllowed reports whether method passes the method gate
func MethodAllowed(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut, http.MethodDelete:
		return true
	}
	return false
}

// ParsePath splits path on "/" and returns the segment at index 1 as the
// resource and the segment at index 2, if any, as the slug. Further
// segments are ignored and nothing is decoded.
func ParsePath(path string) (resource, slug string) {
	segments := strings.Split(path, "/")
	if len(segments) > 1 {
		resource = segments[1]
	}
	if len(segments) > 2 {
		slug = segments[2]
	}
	return resource, slug
}

// Match resolves method and path to a Route.
func Match(method, path string) Route {
	resource, slug := ParsePath(path)

	switch {
	case method == http.MethodGet && resource == "" && slug == "":
		return Route{Kind: Welcome}
	case method == http.MethodPost && resource == ProductResource && slug == "":
		return Route{Kind: CreateProduct}
	case method == http.MethodGet && resource == ProductResource && slug != "":
		return Route{Kind: GetProduct, ID: slug}
	case method == http.MethodPut && resource == ProductResource && slug != "":
		return Route{Kind: UpdateProduct, ID: slug}
	case method == http.MethodDelete && resource == ProductResource && slug != "":
		return Route{Kind: DeleteProduct, ID: slug}
	case method == http.MethodGet && resource == ProductResource && slug == "":
		return Route{Kind: ListProducts}
	}

	return Route{Kind: NotFound}
}
