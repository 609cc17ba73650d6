package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRouterSetup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	cartRoutes := NewDomainGroup("cart", "/cart")
	cartRoutes.GET("", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"cartItems": []string{}})
	})

	r := NewRouter(engine, WithAPIVersion("v1"))
	r.Register(cartRoutes)
	r.Setup()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterMiddlewareAppliesToAPIGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	called := false
	r := NewRouter(engine)
	r.Use(func(c *gin.Context) {
		called = true
		c.Next()
	})

	routes := NewDomainGroup("products", "/products")
	routes.GET("", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.Register(routes)
	r.Setup()

	// Health endpoint is outside the API group and skips the middleware
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	engine.ServeHTTP(httptest.NewRecorder(), req)
	assert.False(t, called)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/products", nil)
	engine.ServeHTTP(httptest.NewRecorder(), req)
	assert.True(t, called)
}

func TestDomainGroupAccessors(t *testing.T) {
	dg := NewDomainGroup("catalog", "/products")
	assert.Equal(t, "catalog", dg.Name())
	assert.Equal(t, "/products", dg.Prefix())
}
