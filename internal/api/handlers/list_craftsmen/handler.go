package list_craftsmen

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/craftopia-app/Craftopia-ReservationService/internal/api/handlers"
	"github.com/craftopia-app/Craftopia-ReservationService/internal/domain"
	catalogService "github.com/craftopia-app/Craftopia-ReservationService/internal/service/catalog"
)

const (
	msgInvalidMinRating = "minRating must be a number between 0 and 5"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/craftsmen?craft=&city=&minRating=&search=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		h.logger.Warn("GET /craftsmen - Invalid filter: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMinRating)
		return
	}

	result, err := h.service.ListCraftsmen(r.Context(), filter)
	if err != nil {
		if errors.Is(err, catalogService.ErrInvalidInput) {
			h.logger.Warn("GET /craftsmen - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMinRating)
			return
		}
		h.logger.Error("GET /craftsmen - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /craftsmen - Fetched %d craftsmen", len(result.Craftsmen))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// parseFilter собирает фильтр каталога из query-параметров
func parseFilter(r *http.Request) (domain.CraftsmenFilter, error) {
	var filter domain.CraftsmenFilter
	query := r.URL.Query()

	if craft := query.Get("craft"); craft != "" {
		filter.Craft = &craft
	}
	if city := query.Get("city"); city != "" {
		filter.City = &city
	}
	if search := query.Get("search"); search != "" {
		filter.Search = &search
	}
	if raw := query.Get("minRating"); raw != "" {
		minRating, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, err
		}
		filter.MinRating = &minRating
	}

	return filter, nil
}
