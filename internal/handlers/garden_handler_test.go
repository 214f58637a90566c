package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"farm_manager/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGardenCRUD(t *testing.T) {
	s := newTestServer(t)
	token := s.login("a@farm.vn")

	w := s.do(http.MethodPost, "/api/gardens", token, gin.H{
		"name":           "Vườn Đà Lạt",
		"location":       "Lâm Đồng",
		"area":           1200.5,
		"number_of_beds": 24,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var garden models.Garden
	decode(t, w, &garden)
	assert.Equal(t, 24, garden.NumberOfBeds)

	path := fmt.Sprintf("/api/gardens/%d", garden.ID)
	w = s.do(http.MethodPut, path, token, gin.H{
		"name":           "Vườn Đà Lạt 2",
		"location":       "Lâm Đồng",
		"number_of_beds": 30,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = s.do(http.MethodGet, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &garden)
	assert.Equal(t, "Vườn Đà Lạt 2", garden.Name)
	assert.Equal(t, 30, garden.NumberOfBeds)

	w = s.do(http.MethodDelete, path, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, path, token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGardensAreScopedToUser(t *testing.T) {
	s := newTestServer(t)
	owner := s.login("owner@farm.vn")
	other := s.login("other@farm.vn")

	w := s.do(http.MethodPost, "/api/gardens", owner, gin.H{"name": "Vườn A", "location": "Củ Chi", "number_of_beds": 4})
	require.Equal(t, http.StatusCreated, w.Code)
	var garden models.Garden
	decode(t, w, &garden)

	w = s.do(http.MethodGet, fmt.Sprintf("/api/gardens/%d", garden.ID), other, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = s.do(http.MethodGet, "/api/gardens", other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var gardens []models.Garden
	decode(t, w, &gardens)
	assert.Empty(t, gardens)
}

func TestGardenBadID(t *testing.T) {
	s := newTestServer(t)
	token := s.login("a@farm.vn")

	for _, id := range []string{"abc", "0", "-3"} {
		w := s.do(http.MethodGet, "/api/gardens/"+id, token, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, id)
		assert.Equal(t, "id", errorBody(t, w)["field"])
	}
}
