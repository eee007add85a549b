package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/villastay/villa-api/internal/logger"
	"github.com/villastay/villa-api/internal/models"
	"github.com/villastay/villa-api/internal/patch"
	"github.com/villastay/villa-api/internal/repositories"
)

// VillaReader defines read operations against the villa gateway.
type VillaReader interface {
	GetAll(ctx context.Context, filter repositories.Filter[models.Villa], pageSize, pageNumber int, include string) ([]models.Villa, error)
	Get(ctx context.Context, filter repositories.Filter[models.Villa], tracked bool) (*models.Villa, error)
}

// VillaWriter defines write operations against the villa gateway.
type VillaWriter interface {
	Create(ctx context.Context, villa *models.Villa) error
	Remove(ctx context.Context, villa *models.Villa) error
	Update(ctx context.Context, villa *models.Villa) (*models.Villa, error)
}

// VillaCreateRequest represents the JSON body for creating a villa
// swagger:model VillaCreateRequest
type VillaCreateRequest struct {
	// Display name
	// required: true
	// default: Royal Villa
	Name string `json:"name" validate:"required"`

	// Free-text description
	Details string `json:"details"`

	// Nightly rate
	// default: 200
	Rate float64 `json:"rate" validate:"gte=0"`

	// Square footage
	// default: 550
	Sqft int `json:"sqft" validate:"gte=0"`

	// Maximum occupancy
	// default: 4
	Occupancy int `json:"occupancy" validate:"gte=0"`

	// Image reference
	ImageURL string `json:"imageUrl"`

	// Free-text amenity list
	Amenity string `json:"amenity"`
}

// VillaUpdateRequest represents the JSON body for a full villa replace.
// Its json tags are also the closed set of fields a PATCH may edit.
// swagger:model VillaUpdateRequest
type VillaUpdateRequest struct {
	// Villa id, must match the path id
	// required: true
	ID int64 `json:"id" validate:"required"`

	// Display name
	// required: true
	Name string `json:"name" validate:"required"`

	// Free-text description
	Details string `json:"details"`

	// Nightly rate
	Rate float64 `json:"rate" validate:"gte=0"`

	// Square footage
	Sqft int `json:"sqft" validate:"gte=0"`

	// Maximum occupancy
	Occupancy int `json:"occupancy" validate:"gte=0"`

	// Image reference
	ImageURL string `json:"imageUrl"`

	// Free-text amenity list
	Amenity string `json:"amenity"`
}

// NewVillaListHandler returns an HTTP handler listing villas.
// @Summary List villas
// @Description Returns a page of villas, optionally filtered by occupancy and searched by name or amenity
// @Tags villas
// @Produce json
// @Param filterOccupancy query int false "Only villas with this exact occupancy"
// @Param search query string false "Substring match on name or amenity, applied to the returned page"
// @Param pageSize query int false "Page size, default 2, max 100, 0 disables pagination"
// @Param pageNumber query int false "1-indexed page number, default 1"
// @Success 200 {object} models.APIResponse "Page of villas"
// @Failure 400 {object} models.APIResponse "Invalid query parameters"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaAPI [get]
func NewVillaListHandler(store VillaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		q := r.URL.Query()

		pageSize := repositories.DefaultPageSize
		pageNumber := 1
		occupancy := 0

		var err error
		if v := q.Get("pageSize"); v != "" {
			if pageSize, err = strconv.Atoi(v); err != nil {
				writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid pageSize"))
				return
			}
		}
		if v := q.Get("pageNumber"); v != "" {
			if pageNumber, err = strconv.Atoi(v); err != nil {
				writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid pageNumber"))
				return
			}
		}
		if v := q.Get("filterOccupancy"); v != "" {
			if occupancy, err = strconv.Atoi(v); err != nil {
				writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid filterOccupancy"))
				return
			}
		}

		var filter repositories.Filter[models.Villa]
		if occupancy > 0 {
			filter = func(v models.Villa) bool { return v.Occupancy == occupancy }
		}

		villas, err := store.GetAll(ctx, filter, pageSize, pageNumber, "")
		if err != nil {
			logger.Log.Errorw("failed to list villas", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		// Search runs over the returned page, not the whole table.
		if search := strings.ToLower(q.Get("search")); search != "" {
			matched := make([]models.Villa, 0, len(villas))
			for _, v := range villas {
				if strings.Contains(strings.ToLower(v.Name), search) ||
					strings.Contains(strings.ToLower(v.Amenity), search) {
					matched = append(matched, v)
				}
			}
			villas = matched
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusOK, villas))
	}
}

// NewVillaGetHandler returns an HTTP handler fetching one villa by id.
// @Summary Get villa
// @Tags villas
// @Produce json
// @Param id path int true "Villa id"
// @Success 200 {object} models.APIResponse "Villa"
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 404 {object} models.APIResponse "Villa not found"
// @Router /VillaAPI/{id} [get]
// @Security BearerAuth
func NewVillaGetHandler(store VillaReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa id"))
			return
		}

		villa, err := store.Get(ctx, func(v models.Villa) bool { return v.ID == id }, false)
		if err != nil {
			logger.Log.Errorw("failed to get villa", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			writeResponse(w, http.StatusNotFound, models.Fail(http.StatusNotFound, "Villa not found"))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusOK, villa))
	}
}

// NewVillaCreateHandler returns an HTTP handler creating a villa.
// @Summary Create villa
// @Tags villas
// @Accept json
// @Produce json
// @Param request body handlers.VillaCreateRequest true "Villa to create"
// @Success 201 {object} models.APIResponse "Created villa with assigned id"
// @Failure 400 {object} models.APIResponse "Invalid request body"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaAPI [post]
// @Security BearerAuth
func NewVillaCreateHandler(store VillaWriter) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req VillaCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Validation error: "+err.Error()))
			return
		}

		villa := &models.Villa{
			Name:      req.Name,
			Details:   req.Details,
			Rate:      req.Rate,
			Sqft:      req.Sqft,
			Occupancy: req.Occupancy,
			ImageURL:  req.ImageURL,
			Amenity:   req.Amenity,
			CreatedAt: time.Now(),
		}
		if err := store.Create(ctx, villa); err != nil {
			logger.Log.Errorw("failed to create villa", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/VillaAPI/%d", villa.ID))
		writeResponse(w, http.StatusCreated, models.OK(http.StatusCreated, villa))
	}
}

// NewVillaUpdateHandler returns an HTTP handler replacing a villa record.
// @Summary Update villa
// @Description Full-record replace. The path id must match the body id.
// @Tags villas
// @Accept json
// @Produce json
// @Param id path int true "Villa id"
// @Param request body handlers.VillaUpdateRequest true "Replacement record"
// @Success 200 {object} models.APIResponse "Envelope with status 204"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaAPI/{id} [put]
// @Security BearerAuth
func NewVillaUpdateHandler(store VillaWriter) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa id"))
			return
		}

		var req VillaUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}
		if req.ID != id {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Id mismatch"))
			return
		}
		if err := validate.Struct(req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Validation error: "+err.Error()))
			return
		}

		villa := &models.Villa{
			ID:        req.ID,
			Name:      req.Name,
			Details:   req.Details,
			Rate:      req.Rate,
			Sqft:      req.Sqft,
			Occupancy: req.Occupancy,
			ImageURL:  req.ImageURL,
			Amenity:   req.Amenity,
		}
		if _, err := store.Update(ctx, villa); err != nil {
			logger.Log.Errorw("failed to update villa", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusNoContent, nil))
	}
}

// NewVillaPatchHandler returns an HTTP handler applying field-level edits
// to a villa: read-only fetch, apply the edits, persist the merged record.
// @Summary Patch villa
// @Tags villas
// @Accept json
// @Param id path int true "Villa id"
// @Param request body []patch.Op true "Field edits"
// @Success 204 "Patched"
// @Failure 400 {object} models.APIResponse "Invalid request"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaAPI/{id} [patch]
func NewVillaPatchHandler(reader VillaReader, writer VillaWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa id"))
			return
		}

		var ops []patch.Op
		if err := json.NewDecoder(r.Body).Decode(&ops); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}

		villa, err := reader.Get(ctx, func(v models.Villa) bool { return v.ID == id }, false)
		if err != nil {
			logger.Log.Errorw("failed to get villa", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Villa not found"))
			return
		}

		dto := VillaUpdateRequest{
			ID:        villa.ID,
			Name:      villa.Name,
			Details:   villa.Details,
			Rate:      villa.Rate,
			Sqft:      villa.Sqft,
			Occupancy: villa.Occupancy,
			ImageURL:  villa.ImageURL,
			Amenity:   villa.Amenity,
		}
		if err := patch.Apply(ops, &dto); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, err.Error()))
			return
		}
		if dto.ID != id {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Id cannot be patched"))
			return
		}

		updated := &models.Villa{
			ID:        id,
			Name:      dto.Name,
			Details:   dto.Details,
			Rate:      dto.Rate,
			Sqft:      dto.Sqft,
			Occupancy: dto.Occupancy,
			ImageURL:  dto.ImageURL,
			Amenity:   dto.Amenity,
			CreatedAt: villa.CreatedAt,
		}
		if _, err := writer.Update(ctx, updated); err != nil {
			logger.Log.Errorw("failed to patch villa", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// NewVillaDeleteHandler returns an HTTP handler deleting a villa.
// @Summary Delete villa
// @Tags villas
// @Produce json
// @Param id path int true "Villa id"
// @Success 200 {object} models.APIResponse "Envelope with status 204"
// @Failure 400 {object} models.APIResponse "Invalid id"
// @Failure 404 {object} models.APIResponse "Villa not found"
// @Router /VillaAPI/{id} [delete]
func NewVillaDeleteHandler(reader VillaReader, writer VillaWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa id"))
			return
		}

		villa, err := reader.Get(ctx, func(v models.Villa) bool { return v.ID == id }, false)
		if err != nil {
			logger.Log.Errorw("failed to get villa", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if villa == nil {
			writeResponse(w, http.StatusNotFound, models.Fail(http.StatusNotFound, "Villa not found"))
			return
		}

		if err := writer.Remove(ctx, villa); err != nil {
			logger.Log.Errorw("failed to delete villa", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusNoContent, nil))
	}
}
