package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/models"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/repository"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/route"
	"github.com/Lixing-Zhang/kart-challenge/product-edge/internal/service"
)

const (
	msgPageNotFound    = "The page you requested could not be found"
	msgProductNotFound = "Product Not Found"
	msgInvalidPayload  = "Invalid product payload"
)

// ProductHandler translates REST product requests into backend GraphQL
// operations. It must see every path, so it is mounted as a catch-all.
type ProductHandler struct {
	service *service.ProductService
	logger  *slog.Logger
}

// NewProductHandler creates a new product handler
func NewProductHandler(service *service.ProductService, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger,
	}
}

// ServeHTTP applies the method gate, matches the route and dispatches it.
//   - GET    /              welcome page
//   - POST   /product       201 created product
//   - GET    /product       200 product list
//   - GET    /product/{id}  200 product
//   - PUT    /product/{id}  200 updated product
//   - DELETE /product/{id}  204
//
// Single-product routes answer 404 "Product Not Found" when the backend
// returns a null product.
func (h *ProductHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !route.MethodAllowed(r.Method) {
		w.Header().Set("Allow", route.AllowedMethods)
		writeText(w, http.StatusMethodNotAllowed, route.MethodNotAllowedBody)
		return
	}

	rt := route.Match(r.Method, r.URL.EscapedPath())

	switch rt.Kind {
	case route.Welcome:
		serveWelcome(w)
	case route.CreateProduct:
		h.createProduct(w, r, rt)
	case route.GetProduct:
		product, err := h.service.GetProduct(r.Context(), rt.ID)
		h.respondProduct(w, r, rt, http.StatusOK, product, err)
	case route.UpdateProduct:
		h.updateProduct(w, r, rt)
	case route.DeleteProduct:
		product, err := h.service.DeleteProduct(r.Context(), rt.ID)
		h.respondProduct(w, r, rt, http.StatusNoContent, product, err)
	case route.ListProducts:
		h.listProducts(w, r, rt)
	default:
		writeText(w, http.StatusNotFound, msgPageNotFound)
	}
}

func (h *ProductHandler) createProduct(w http.ResponseWriter, r *http.Request, rt route.Route) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("failed to read request body", "route", rt.Kind.String(), "error", err)
		writeText(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	product, err := h.service.CreateProduct(r.Context(), body)
	h.respondProduct(w, r, rt, http.StatusCreated, product, err)
}

func (h *ProductHandler) updateProduct(w http.ResponseWriter, r *http.Request, rt route.Route) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		h.logger.Warn("failed to read request body", "route", rt.Kind.String(), "error", err)
		writeText(w, http.StatusBadRequest, msgInvalidPayload)
		return
	}

	product, err := h.service.UpdateProduct(r.Context(), rt.ID, body)
	h.respondProduct(w, r, rt, http.StatusOK, product, err)
}

func (h *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request, rt route.Route) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.backendFailure(w, rt, err)
		return
	}

	writeJSON(w, http.StatusOK, products, h.logger)
}

// respondProduct shapes a single-product result. A null product overrides
// status with 404; a successful delete has no body.
func (h *ProductHandler) respondProduct(w http.ResponseWriter, r *http.Request, rt route.Route, status int, product *models.Product, err error) {
	switch {
	case errors.Is(err, repository.ErrProductNotFound):
		h.logger.Info("product not found", "route", rt.Kind.String(), "productId", rt.ID)
		writeText(w, http.StatusNotFound, msgProductNotFound)
	case errors.Is(err, service.ErrInvalidPayload):
		h.logger.Warn("rejected product payload", "route", rt.Kind.String(), "path", r.URL.Path)
		writeText(w, http.StatusBadRequest, msgInvalidPayload)
	case err != nil:
		h.backendFailure(w, rt, err)
	case status == http.StatusNoContent:
		w.WriteHeader(http.StatusNoContent)
	default:
		writeJSON(w, status, product, h.logger)
	}
}

func (h *ProductHandler) backendFailure(w http.ResponseWriter, rt route.Route, err error) {
	h.logger.Error("backend request failed", "route", rt.Kind.String(), "productId", rt.ID, "error", err)
	writeText(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
}
