package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/villastay/villa-api/internal/models"
	"github.com/villastay/villa-api/internal/patch"
	"github.com/villastay/villa-api/internal/repositories"
)

// withURLParam injects a chi route parameter, as the router would.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.APIResponse {
	t.Helper()
	var resp models.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func sampleVillas() []models.Villa {
	return []models.Villa{
		{ID: 1, Name: "Royal Villa", Amenity: "pool", Occupancy: 4},
		{ID: 2, Name: "Premium Pool Villa", Amenity: "pool, spa", Occupancy: 4},
		{ID: 3, Name: "Diamond Villa", Amenity: "gym", Occupancy: 2},
	}
}

func TestVillaListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaReader(ctrl)
	handler := NewVillaListHandler(mockReader)

	t.Run("default paging", func(t *testing.T) {
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Nil(), repositories.DefaultPageSize, 1, "").
			Return(sampleVillas()[:2], nil)

		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)
	})

	t.Run("explicit paging params", func(t *testing.T) {
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Nil(), 10, 3, "").
			Return([]models.Villa{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI?pageSize=10&pageNumber=3", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("invalid pageSize", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI?pageSize=abc", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Invalid pageSize")
	})

	t.Run("invalid filterOccupancy", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI?filterOccupancy=many", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("occupancy filter is forwarded to the store", func(t *testing.T) {
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), repositories.DefaultPageSize, 1, "").
			DoAndReturn(func(_ context.Context, filter repositories.Filter[models.Villa], _, _ int, _ string) ([]models.Villa, error) {
				assert.NotNil(t, filter)
				assert.True(t, filter(models.Villa{Occupancy: 4}))
				assert.False(t, filter(models.Villa{Occupancy: 2}))
				return sampleVillas()[:2], nil
			})

		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI?filterOccupancy=4", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("search narrows the returned page", func(t *testing.T) {
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Nil(), repositories.DefaultPageSize, 1, "").
			Return(sampleVillas(), nil)

		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI?search=SPA", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		result, _ := json.Marshal(resp.Result)
		var villas []models.Villa
		assert.NoError(t, json.Unmarshal(result, &villas))
		assert.Len(t, villas, 1)
		assert.Equal(t, "Premium Pool Villa", villas[0].Name)
	})

	t.Run("store error", func(t *testing.T) {
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Nil(), repositories.DefaultPageSize, 1, "").
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/VillaAPI", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "database error")
	})
}

func TestVillaGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaReader(ctrl)
	handler := NewVillaGetHandler(mockReader)

	t.Run("found", func(t *testing.T) {
		villa := sampleVillas()[0]
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, filter repositories.Filter[models.Villa], _ bool) (*models.Villa, error) {
				assert.True(t, filter(villa))
				return &villa, nil
			})

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaAPI/1", nil), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaAPI/99", nil), "id", "99")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Villa not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaAPI/abc", nil), "id", "abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("zero id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaAPI/0", nil), "id", "0")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVillaCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockVillaWriter(ctrl)
	handler := NewVillaCreateHandler(mockWriter)

	t.Run("success", func(t *testing.T) {
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, villa *models.Villa) error {
				assert.Equal(t, "Royal Villa", villa.Name)
				assert.False(t, villa.CreatedAt.IsZero())
				villa.ID = 42
				return nil
			})

		body, _ := json.Marshal(VillaCreateRequest{Name: "Royal Villa", Rate: 200, Sqft: 550, Occupancy: 4})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/VillaAPI/42", w.Header().Get("Location"))
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("missing name", func(t *testing.T) {
		body, _ := json.Marshal(VillaCreateRequest{Rate: 200})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("negative rate", func(t *testing.T) {
		body, _ := json.Marshal(VillaCreateRequest{Name: "Cheap Villa", Rate: -1})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("store error", func(t *testing.T) {
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		body, _ := json.Marshal(VillaCreateRequest{Name: "Royal Villa"})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestVillaUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockVillaWriter(ctrl)
	handler := NewVillaUpdateHandler(mockWriter)

	t.Run("success wraps 204 inside HTTP 200", func(t *testing.T) {
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, villa *models.Villa) (*models.Villa, error) {
				assert.Equal(t, int64(1), villa.ID)
				assert.Equal(t, "Renamed", villa.Name)
				return villa, nil
			})

		body, _ := json.Marshal(VillaUpdateRequest{ID: 1, Name: "Renamed"})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/VillaAPI/1", bytes.NewReader(body)), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("id mismatch", func(t *testing.T) {
		body, _ := json.Marshal(VillaUpdateRequest{ID: 2, Name: "Renamed"})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/VillaAPI/1", bytes.NewReader(body)), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Id mismatch")
	})

	t.Run("invalid body", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/VillaAPI/1", bytes.NewReader([]byte("{bad"))), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVillaPatchHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaReader(ctrl)
	mockWriter := NewMockVillaWriter(ctrl)
	handler := NewVillaPatchHandler(mockReader, mockWriter)

	existing := models.Villa{
		ID:        1,
		Name:      "Royal Villa",
		Details:   "by the sea",
		Rate:      200,
		CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	patchBody := func(ops ...patch.Op) *bytes.Reader {
		body, _ := json.Marshal(ops)
		return bytes.NewReader(body)
	}

	t.Run("success returns bare 204", func(t *testing.T) {
		villa := existing
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(&villa, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, updated *models.Villa) (*models.Villa, error) {
				assert.Equal(t, "Garden Villa", updated.Name)
				assert.Equal(t, "by the sea", updated.Details)
				assert.Equal(t, existing.CreatedAt, updated.CreatedAt)
				return updated, nil
			})

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/VillaAPI/1",
			patchBody(patch.Op{Op: "replace", Path: "/name", Value: json.RawMessage(`"Garden Villa"`)})), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.String())
	})

	t.Run("villa missing", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/VillaAPI/99",
			patchBody(patch.Op{Op: "replace", Path: "/name", Value: json.RawMessage(`"x"`)})), "id", "99")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Villa not found")
	})

	t.Run("id cannot be patched", func(t *testing.T) {
		villa := existing
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(&villa, nil)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/VillaAPI/1",
			patchBody(patch.Op{Op: "replace", Path: "/id", Value: json.RawMessage(`5`)})), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Id cannot be patched")
	})

	t.Run("unknown field", func(t *testing.T) {
		villa := existing
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(&villa, nil)

		req := withURLParam(httptest.NewRequest(http.MethodPatch, "/api/VillaAPI/1",
			patchBody(patch.Op{Op: "replace", Path: "/owner", Value: json.RawMessage(`"me"`)})), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVillaDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaReader(ctrl)
	mockWriter := NewMockVillaWriter(ctrl)
	handler := NewVillaDeleteHandler(mockReader, mockWriter)

	t.Run("success wraps 204 inside HTTP 200", func(t *testing.T) {
		villa := sampleVillas()[0]
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(&villa, nil)
		mockWriter.EXPECT().
			Remove(gomock.Any(), &villa).
			Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/VillaAPI/1", nil), "id", "1")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/VillaAPI/99", nil), "id", "99")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
