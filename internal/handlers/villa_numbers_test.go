package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/villastay/villa-api/internal/models"
	"github.com/villastay/villa-api/internal/repositories"
)

func TestVillaNumberListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaNumberReader(ctrl)
	handler := NewVillaNumberListHandler(mockReader)

	t.Run("success eager-loads the villa relation", func(t *testing.T) {
		numbers := []models.VillaNumber{
			{VillaNo: 101, VillaID: 1, Villa: &models.Villa{ID: 1, Name: "Royal Villa"}},
			{VillaNo: 102, VillaID: 1, Villa: &models.Villa{ID: 1, Name: "Royal Villa"}},
		}
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Nil(), 0, 1, "Villa").
			Return(numbers, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/VillaNumberAPI", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)

		result, _ := json.Marshal(resp.Result)
		var got []models.VillaNumber
		assert.NoError(t, json.Unmarshal(result, &got))
		assert.Len(t, got, 2)
		assert.NotNil(t, got[0].Villa)
	})

	t.Run("store error", func(t *testing.T) {
		mockReader.EXPECT().
			GetAll(gomock.Any(), gomock.Nil(), 0, 1, "Villa").
			Return(nil, errors.New("database error"))

		req := httptest.NewRequest(http.MethodGet, "/api/VillaNumberAPI", nil)
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestVillaNumberGetHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaNumberReader(ctrl)
	handler := NewVillaNumberGetHandler(mockReader)

	t.Run("found", func(t *testing.T) {
		number := models.VillaNumber{VillaNo: 101, VillaID: 1}
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, filter repositories.Filter[models.VillaNumber], _ bool) (*models.VillaNumber, error) {
				assert.True(t, filter(number))
				return &number, nil
			})

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaNumberAPI/101", nil), "id", "101")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaNumberAPI/999", nil), "id", "999")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Villa number not found")
	})

	t.Run("non-numeric id", func(t *testing.T) {
		req := withURLParam(httptest.NewRequest(http.MethodGet, "/api/VillaNumberAPI/abc", nil), "id", "abc")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVillaNumberCreateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockVillaNumberWriter(ctrl)
	mockVillas := NewMockVillaReader(ctrl)
	handler := NewVillaNumberCreateHandler(mockWriter, mockVillas)

	t.Run("success", func(t *testing.T) {
		owner := models.Villa{ID: 1, Name: "Royal Villa"}
		mockVillas.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			DoAndReturn(func(_ context.Context, filter repositories.Filter[models.Villa], _ bool) (*models.Villa, error) {
				assert.True(t, filter(owner))
				return &owner, nil
			})
		mockWriter.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, number *models.VillaNumber) error {
				assert.Equal(t, int64(101), number.VillaNo)
				assert.Equal(t, int64(1), number.VillaID)
				assert.False(t, number.CreatedAt.IsZero())
				return nil
			})

		body, _ := json.Marshal(VillaNumberCreateRequest{VillaNo: 101, VillaID: 1, SpecialDetails: "ground floor"})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaNumberAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/VillaNumberAPI/101", w.Header().Get("Location"))
	})

	t.Run("unknown villa id", func(t *testing.T) {
		mockVillas.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		body, _ := json.Marshal(VillaNumberCreateRequest{VillaNo: 101, VillaID: 99})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaNumberAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Villa ID is Invalid!")
	})

	t.Run("missing villa number", func(t *testing.T) {
		body, _ := json.Marshal(VillaNumberCreateRequest{VillaID: 1})
		req := httptest.NewRequest(http.MethodPost, "/api/VillaNumberAPI", bytes.NewReader(body))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("invalid body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/VillaNumberAPI", bytes.NewReader([]byte("{bad")))
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestVillaNumberUpdateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWriter := NewMockVillaNumberWriter(ctrl)
	mockVillas := NewMockVillaReader(ctrl)
	handler := NewVillaNumberUpdateHandler(mockWriter, mockVillas)

	t.Run("success wraps 204 inside HTTP 200", func(t *testing.T) {
		owner := models.Villa{ID: 2}
		mockVillas.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(&owner, nil)
		mockWriter.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, number *models.VillaNumber) (*models.VillaNumber, error) {
				assert.Equal(t, int64(101), number.VillaNo)
				assert.Equal(t, int64(2), number.VillaID)
				return number, nil
			})

		body, _ := json.Marshal(VillaNumberUpdateRequest{VillaNo: 101, VillaID: 2, SpecialDetails: "sea view"})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/VillaNumberAPI/101", bytes.NewReader(body)), "id", "101")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.True(t, resp.IsSuccess)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("id mismatch", func(t *testing.T) {
		body, _ := json.Marshal(VillaNumberUpdateRequest{VillaNo: 102, VillaID: 2})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/VillaNumberAPI/101", bytes.NewReader(body)), "id", "101")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Id mismatch")
	})

	t.Run("unknown villa id", func(t *testing.T) {
		mockVillas.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		body, _ := json.Marshal(VillaNumberUpdateRequest{VillaNo: 101, VillaID: 99})
		req := withURLParam(httptest.NewRequest(http.MethodPut, "/api/VillaNumberAPI/101", bytes.NewReader(body)), "id", "101")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Contains(t, resp.ErrorMessages, "Villa ID is Invalid!")
	})
}

func TestVillaNumberDeleteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockReader := NewMockVillaNumberReader(ctrl)
	mockWriter := NewMockVillaNumberWriter(ctrl)
	handler := NewVillaNumberDeleteHandler(mockReader, mockWriter)

	t.Run("success wraps 204 inside HTTP 200", func(t *testing.T) {
		number := models.VillaNumber{VillaNo: 101, VillaID: 1}
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(&number, nil)
		mockWriter.EXPECT().
			Remove(gomock.Any(), &number).
			Return(nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/VillaNumberAPI/101", nil), "id", "101")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		resp := decodeEnvelope(t, w)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("not found", func(t *testing.T) {
		mockReader.EXPECT().
			Get(gomock.Any(), gomock.Any(), false).
			Return(nil, nil)

		req := withURLParam(httptest.NewRequest(http.MethodDelete, "/api/VillaNumberAPI/999", nil), "id", "999")
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
