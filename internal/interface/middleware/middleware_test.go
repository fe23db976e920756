package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-course-marketplace/internal/interface/middleware"
	"github.com/oksasatya/go-course-marketplace/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func get(r http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.RemoteAddr = "203.0.113.9:4711"
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	w := get(r, "/", nil)
	minted := w.Header().Get(middleware.RequestIDHeader)
	_, err := uuid.Parse(minted)
	require.NoError(t, err)
	assert.Equal(t, minted, w.Body.String())

	incoming := uuid.NewString()
	w = get(r, "/", map[string]string{middleware.RequestIDHeader: incoming})
	assert.Equal(t, incoming, w.Header().Get(middleware.RequestIDHeader))

	w = get(r, "/", map[string]string{middleware.RequestIDHeader: "<script>"})
	assert.NotEqual(t, "<script>", w.Header().Get(middleware.RequestIDHeader))
}

func TestRealIP(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RealIP())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("real_ip")) })

	cases := map[string]struct {
		headers map[string]string
		want    string
	}{
		"cloudflare wins":   {map[string]string{"CF-Connecting-IP": "198.51.100.1", "X-Real-IP": "198.51.100.2"}, "198.51.100.1"},
		"x-real-ip":         {map[string]string{"X-Real-IP": "198.51.100.2"}, "198.51.100.2"},
		"left-most xff":     {map[string]string{"X-Forwarded-For": "198.51.100.3, 10.0.0.1"}, "198.51.100.3"},
		"garbage ignored":   {map[string]string{"X-Real-IP": "not-an-ip"}, "203.0.113.9"},
		"remote addr alone": {nil, "203.0.113.9"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, get(r, "/", tc.headers).Body.String())
		})
	}
}

func limitedRouter(t *testing.T, max int, allow middleware.AllowFunc) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := helpers.NewRedisClient(mr.Addr(), "", 0)
	r := gin.New()
	r.Use(middleware.RealIP())
	r.GET("/limited", middleware.RateLimit(rdb, max, time.Minute, middleware.KeyByIP("rl:test"), allow), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, mr
}

func TestRateLimit(t *testing.T) {
	r, mr := limitedRouter(t, 2, nil)

	w := get(r, "/limited", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("X-RateLimit-Reset"))

	w = get(r, "/limited", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = get(r, "/limited", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	// another client has its own bucket
	w = get(r, "/limited", map[string]string{"X-Real-IP": "198.51.100.7"})
	assert.Equal(t, http.StatusNoContent, w.Code)

	mr.FastForward(time.Minute)
	w = get(r, "/limited", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestRateLimit_FailsOpen(t *testing.T) {
	r, mr := limitedRouter(t, 1, nil)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, get(r, "/limited", nil).Code)
	}
}

func TestRateLimit_AllowPrivateIP(t *testing.T) {
	r, _ := limitedRouter(t, 1, middleware.AllowPrivateIP())
	internal := map[string]string{"X-Real-IP": "10.1.2.3"}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, get(r, "/limited", internal).Code)
	}
	assert.Equal(t, http.StatusNoContent, get(r, "/limited", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/limited", nil).Code)
}

func TestRateLimit_DisabledWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", middleware.RateLimit(nil, 1, time.Minute, middleware.KeyByIP("rl"), nil), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	for i := 0; i < 3; i++ {
		w := get(r, "/", nil)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestKeyByIPAndPath(t *testing.T) {
	r := gin.New()
	r.Use(middleware.RealIP())
	r.GET("/users/confirm/:token", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.KeyByIPAndPath("rl:confirm")(c))
	})
	w := get(r, "/users/confirm/abc", nil)
	assert.Equal(t, "rl:confirm:path:/users/confirm/:token:ip:203.0.113.9", w.Body.String())
}
