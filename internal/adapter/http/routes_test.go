package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/gomega"

	"todoapi/pkg/config"
)

func setupBareRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := config.GetDefaultConfig()
	cfg.RateLimitEnabled = false

	return SetupRouter(HandlersConfig{}, nil, nil, cfg)
}

func TestUnknownRouteReturnsNotFound(t *testing.T) {
	RegisterTestingT(t)

	router := setupBareRouter()

	req, _ := http.NewRequest("GET", "/nope", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusNotFound))

	body := map[string]string{}
	json.Unmarshal(rr.Body.Bytes(), &body)

	Expect(body["message"]).To(Equal("Not found"))
}

func TestUnknownMethodReturnsNotFound(t *testing.T) {
	RegisterTestingT(t)

	router := setupBareRouter()

	req, _ := http.NewRequest("PATCH", "/todos", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	Expect(rr.Code).To(Equal(http.StatusNotFound))
}
