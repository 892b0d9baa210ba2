package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int
	}{
		{"empty list still has one page", 0, 5, 1},
		{"exact multiple", 10, 5, 2},
		{"partial last page", 11, 5, 3},
		{"single item", 1, 5, 1},
		{"zero page size", 10, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}

func TestListSuccessResponseTotalPages(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	ListSuccessResponse(c, []string{"a", "b"}, 11, 2, 5)

	var body struct {
		Data struct {
			Count      int64 `json:"count"`
			Page       int   `json:"page"`
			TotalPages int   `json:"total_pages"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, int64(11), body.Data.Count)
	assert.Equal(t, 2, body.Data.Page)
	assert.Equal(t, 3, body.Data.TotalPages)
}
