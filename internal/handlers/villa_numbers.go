package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/villastay/villa-api/internal/logger"
	"github.com/villastay/villa-api/internal/models"
	"github.com/villastay/villa-api/internal/repositories"
)

// VillaNumberReader defines read operations against the villa-number gateway.
type VillaNumberReader interface {
	GetAll(ctx context.Context, filter repositories.Filter[models.VillaNumber], pageSize, pageNumber int, include string) ([]models.VillaNumber, error)
	Get(ctx context.Context, filter repositories.Filter[models.VillaNumber], tracked bool) (*models.VillaNumber, error)
}

// VillaNumberWriter defines write operations against the villa-number gateway.
type VillaNumberWriter interface {
	Create(ctx context.Context, number *models.VillaNumber) error
	Remove(ctx context.Context, number *models.VillaNumber) error
	Update(ctx context.Context, number *models.VillaNumber) (*models.VillaNumber, error)
}

// VillaNumberCreateRequest represents the JSON body for creating a villa number
// swagger:model VillaNumberCreateRequest
type VillaNumberCreateRequest struct {
	// Unit number, used as the primary key
	// required: true
	// default: 101
	VillaNo int64 `json:"villaNo" validate:"required"`

	// Id of the owning villa, must exist
	// required: true
	VillaID int64 `json:"villaId" validate:"required"`

	// Free-text details
	SpecialDetails string `json:"specialDetails"`
}

// VillaNumberUpdateRequest represents the JSON body for a full villa-number replace
// swagger:model VillaNumberUpdateRequest
type VillaNumberUpdateRequest struct {
	// Unit number, must match the path id
	// required: true
	VillaNo int64 `json:"villaNo" validate:"required"`

	// Id of the owning villa, must exist
	// required: true
	VillaID int64 `json:"villaId" validate:"required"`

	// Free-text details
	SpecialDetails string `json:"specialDetails"`
}

// NewVillaNumberListHandler returns an HTTP handler listing villa numbers
// with their owning villa attached.
// @Summary List villa numbers
// @Tags villa-numbers
// @Produce json
// @Success 200 {object} models.APIResponse "All villa numbers"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaNumberAPI [get]
func NewVillaNumberListHandler(store VillaNumberReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		numbers, err := store.GetAll(ctx, nil, 0, 1, "Villa")
		if err != nil {
			logger.Log.Errorw("failed to list villa numbers", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusOK, numbers))
	}
}

// NewVillaNumberGetHandler returns an HTTP handler fetching one villa number.
// @Summary Get villa number
// @Tags villa-numbers
// @Produce json
// @Param id path int true "Unit number"
// @Success 200 {object} models.APIResponse "Villa number"
// @Failure 404 {object} models.APIResponse "Villa number not found"
// @Router /VillaNumberAPI/{id} [get]
func NewVillaNumberGetHandler(store VillaNumberReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa number"))
			return
		}

		number, err := store.Get(ctx, func(n models.VillaNumber) bool { return n.VillaNo == id }, false)
		if err != nil {
			logger.Log.Errorw("failed to get villa number", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if number == nil {
			writeResponse(w, http.StatusNotFound, models.Fail(http.StatusNotFound, "Villa number not found"))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusOK, number))
	}
}

// NewVillaNumberCreateHandler returns an HTTP handler creating a villa number.
// The owning villa must exist; the check runs here, before persistence.
// @Summary Create villa number
// @Tags villa-numbers
// @Accept json
// @Produce json
// @Param request body handlers.VillaNumberCreateRequest true "Villa number to create"
// @Success 201 {object} models.APIResponse "Created villa number"
// @Failure 400 {object} models.APIResponse "Invalid request or unknown villa id"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaNumberAPI [post]
func NewVillaNumberCreateHandler(store VillaNumberWriter, villas VillaReader) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		var req VillaNumberCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}
		if err := validate.Struct(req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Validation error: "+err.Error()))
			return
		}

		owner, err := villas.Get(ctx, func(v models.Villa) bool { return v.ID == req.VillaID }, false)
		if err != nil {
			logger.Log.Errorw("failed to check villa", "villaId", req.VillaID, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if owner == nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Villa ID is Invalid!"))
			return
		}

		number := &models.VillaNumber{
			VillaNo:        req.VillaNo,
			VillaID:        req.VillaID,
			SpecialDetails: req.SpecialDetails,
			CreatedAt:      time.Now(),
		}
		if err := store.Create(ctx, number); err != nil {
			logger.Log.Errorw("failed to create villa number", "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		w.Header().Set("Location", fmt.Sprintf("/api/VillaNumberAPI/%d", number.VillaNo))
		writeResponse(w, http.StatusCreated, models.OK(http.StatusCreated, number))
	}
}

// NewVillaNumberUpdateHandler returns an HTTP handler replacing a villa number.
// @Summary Update villa number
// @Tags villa-numbers
// @Accept json
// @Produce json
// @Param id path int true "Unit number"
// @Param request body handlers.VillaNumberUpdateRequest true "Replacement record"
// @Success 200 {object} models.APIResponse "Envelope with status 204"
// @Failure 400 {object} models.APIResponse "Invalid request or unknown villa id"
// @Failure 500 {object} models.APIResponse "Store failure"
// @Router /VillaNumberAPI/{id} [put]
func NewVillaNumberUpdateHandler(store VillaNumberWriter, villas VillaReader) http.HandlerFunc {
	validate := validator.New()

	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa number"))
			return
		}

		var req VillaNumberUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid request body"))
			return
		}
		if req.VillaNo != id {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Id mismatch"))
			return
		}
		if err := validate.Struct(req); err != nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Validation error: "+err.Error()))
			return
		}

		owner, err := villas.Get(ctx, func(v models.Villa) bool { return v.ID == req.VillaID }, false)
		if err != nil {
			logger.Log.Errorw("failed to check villa", "villaId", req.VillaID, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if owner == nil {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Villa ID is Invalid!"))
			return
		}

		number := &models.VillaNumber{
			VillaNo:        req.VillaNo,
			VillaID:        req.VillaID,
			SpecialDetails: req.SpecialDetails,
		}
		if _, err := store.Update(ctx, number); err != nil {
			logger.Log.Errorw("failed to update villa number", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusNoContent, nil))
	}
}

// NewVillaNumberDeleteHandler returns an HTTP handler deleting a villa number.
// @Summary Delete villa number
// @Tags villa-numbers
// @Produce json
// @Param id path int true "Unit number"
// @Success 200 {object} models.APIResponse "Envelope with status 204"
// @Failure 404 {object} models.APIResponse "Villa number not found"
// @Router /VillaNumberAPI/{id} [delete]
func NewVillaNumberDeleteHandler(reader VillaNumberReader, writer VillaNumberWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil || id == 0 {
			writeResponse(w, http.StatusBadRequest, models.Fail(http.StatusBadRequest, "Invalid villa number"))
			return
		}

		number, err := reader.Get(ctx, func(n models.VillaNumber) bool { return n.VillaNo == id }, false)
		if err != nil {
			logger.Log.Errorw("failed to get villa number", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}
		if number == nil {
			writeResponse(w, http.StatusNotFound, models.Fail(http.StatusNotFound, "Villa number not found"))
			return
		}

		if err := writer.Remove(ctx, number); err != nil {
			logger.Log.Errorw("failed to delete villa number", "id", id, "err", err)
			writeResponse(w, http.StatusInternalServerError, models.Fail(http.StatusInternalServerError, err.Error()))
			return
		}

		writeResponse(w, http.StatusOK, models.OK(http.StatusNoContent, nil))
	}
}
