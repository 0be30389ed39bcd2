package router

import (
	"net/http"

	"stocklist/backend/app/controllers"
	"stocklist/backend/app/middleware"
)

// NewRouter builds the gateway route table. The literal /api/products/search
// pattern outranks the {id} wildcard in ServeMux precedence, so "search" is
// never parsed as a product id.
func NewRouter(authCtrl *controllers.AuthController, productCtrl *controllers.ProductController, mw *middleware.Auth, requireAdminDelete bool) http.Handler {
	mux := http.NewServeMux()

	// public
	mux.HandleFunc("POST /api/auth/register", authCtrl.Register)
	mux.HandleFunc("POST /api/auth/login", authCtrl.Login)

	// authenticated reads
	mux.Handle("GET /api/products", mw.RequireAuth(http.HandlerFunc(productCtrl.List)))
	mux.Handle("GET /api/products/search", mw.RequireAuth(http.HandlerFunc(productCtrl.Search)))
	mux.Handle("GET /api/products/{id}", mw.RequireAuth(http.HandlerFunc(productCtrl.Get)))

	// admin writes
	mux.Handle("POST /api/products", mw.RequireAdmin(http.HandlerFunc(productCtrl.Create)))
	mux.Handle("PUT /api/products/{id}", mw.RequireAdmin(http.HandlerFunc(productCtrl.Update)))

	// delete historically shipped without the admin check; parity mode keeps it off
	deleteGate := mw.RequireAuth
	if requireAdminDelete {
		deleteGate = mw.RequireAdmin
	}
	mux.Handle("DELETE /api/products/{id}", deleteGate(http.HandlerFunc(productCtrl.Delete)))

	return mux
}
