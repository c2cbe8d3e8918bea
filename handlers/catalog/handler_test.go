package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHandler(r)

	t.Run("stories", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stories", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var res struct {
			Stories []Story `json:"stories"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Equal(t, Stories, res.Stories)
	})

	t.Run("games", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games", nil))
		require.Equal(t, http.StatusOK, w.Code)
		var res struct {
			Games []Game `json:"games"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.Games, 4)
		assert.Equal(t, "🚀", res.Games[0].Icon)
	})

	t.Run("grades", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/grades", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `{"id":1,"name":"Pre-K","ageRange":"3-5"}`)
		var res struct {
			Grades []Grade `json:"grades"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
		assert.Len(t, res.Grades, 5)
		assert.Equal(t, "8-9", res.Grades[4].AgeRange)
	})
}
