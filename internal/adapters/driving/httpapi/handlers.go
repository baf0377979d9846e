package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

// healthTimeout bounds the storage ping behind /healthz.
const healthTimeout = 2 * time.Second

func (s *Server) handleListBakeries(w http.ResponseWriter, r *http.Request) {
	bakeries, err := s.ports.Bakeries.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBakeryList(bakeries))
}

func (s *Server) handleRenameBakery(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	if err := parseForm(r); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	name, err := formString(r, "name")
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	bakery, err := s.ports.Bakeries.Rename(r.Context(), id, name)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBakeryResponse(bakery))
}

func (s *Server) handleListBakeryGoods(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	goods, err := s.ports.BakedGoods.ListByBakery(r.Context(), id)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBakedGoodList(goods))
}

func (s *Server) handleListBakedGoods(w http.ResponseWriter, r *http.Request) {
	goods, err := s.ports.BakedGoods.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBakedGoodList(goods))
}

func (s *Server) handleCreateBakedGood(w http.ResponseWriter, r *http.Request) {
	good, err := bakedGoodFromForm(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	created, err := s.ports.BakedGoods.Create(r.Context(), good)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toBakedGoodResponse(created))
}

func (s *Server) handleDeleteBakedGood(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	if err := s.ports.BakedGoods.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, messageResponse{Message: "Baked good deleted"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if s.ports.Health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()
		if err := s.ports.Health.Ping(ctx); err != nil {
			s.log.WarnContext(r.Context(), "health check failed", "error", err)
			writeError(w, http.StatusServiceUnavailable, codeUnavailable, "storage unreachable")
			return
		}
	}
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok"})
}

// bakedGoodFromForm reads the name, price and bakery_id fields.
func bakedGoodFromForm(r *http.Request) (domain.BakedGood, error) {
	if err := parseForm(r); err != nil {
		return domain.BakedGood{}, err
	}
	name, err := formString(r, "name")
	if err != nil {
		return domain.BakedGood{}, err
	}
	price, err := formFloat(r, "price")
	if err != nil {
		return domain.BakedGood{}, err
	}
	bakeryID, err := formInt(r, "bakery_id")
	if err != nil {
		return domain.BakedGood{}, err
	}
	return domain.BakedGood{Name: name, Price: price, BakeryID: bakeryID}, nil
}
