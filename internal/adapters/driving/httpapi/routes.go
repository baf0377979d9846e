package httpapi

import "net/http"

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /bakeries", s.handleListBakeries)
	mux.HandleFunc("PATCH /bakeries/{id}", s.handleRenameBakery)
	mux.HandleFunc("GET /bakeries/{id}/baked_goods", s.handleListBakeryGoods)

	mux.HandleFunc("GET /baked_goods", s.handleListBakedGoods)
	mux.HandleFunc("POST /baked_goods", s.handleCreateBakedGood)
	mux.HandleFunc("DELETE /baked_goods/{id}", s.handleDeleteBakedGood)

	mux.HandleFunc("GET /healthz", s.handleHealth)

	return mux
}
