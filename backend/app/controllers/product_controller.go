package controllers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"stocklist/backend/app/apperr"
	"stocklist/backend/app/dto"
	"stocklist/backend/app/services"
)

type ProductController struct {
	Catalog *services.CatalogService
	Dev     bool
}

func NewProductController(catalog *services.CatalogService, dev bool) *ProductController {
	return &ProductController{Catalog: catalog, Dev: dev}
}

func (c *ProductController) List(w http.ResponseWriter, r *http.Request) {
	products, err := c.Catalog.List(r.Context())
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (c *ProductController) Search(w http.ResponseWriter, r *http.Request) {
	products, err := c.Catalog.Search(r.URL.Query().Get("query"))
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (c *ProductController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	p, err := c.Catalog.Get(id)
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProductController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, apperr.New(apperr.Validation, "Invalid request body"), c.Dev)
		return
	}
	p, err := c.Catalog.Create(r.Context(), req)
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

func (c *ProductController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apperr.Write(w, apperr.New(apperr.Validation, "Invalid request body"), c.Dev)
		return
	}
	p, err := c.Catalog.Update(r.Context(), id, req)
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (c *ProductController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := c.pathID(w, r)
	if !ok {
		return
	}
	p, err := c.Catalog.Delete(r.Context(), id)
	if err != nil {
		apperr.Write(w, err, c.Dev)
		return
	}
	writeJSON(w, http.StatusOK, dto.DeleteProductResponse{Message: "Product deleted successfully", DeletedProduct: p})
}

// pathID parses the {id} segment. A non-numeric id can never match a stored
// product, so it reports not-found rather than a validation error.
func (c *ProductController) pathID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		apperr.Write(w, apperr.New(apperr.NotFound, "Product not found"), c.Dev)
		return 0, false
	}
	return id, true
}
