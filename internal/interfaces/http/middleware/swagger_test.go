package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func serveSwagger(cfg SwaggerConfig, auth gin.HandlerFunc, remoteAddr string) *httptest.ResponseRecorder {
	router := gin.New()
	router.GET("/swagger/*any", SwaggerProtection(cfg, auth), func(c *gin.Context) {
		c.String(http.StatusOK, "docs")
	})
	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSwaggerProtection(t *testing.T) {
	deny := func(c *gin.Context) { c.AbortWithStatus(http.StatusUnauthorized) }
	allow := func(c *gin.Context) { c.Next() }

	tests := []struct {
		name   string
		cfg    SwaggerConfig
		auth   gin.HandlerFunc
		remote string
		want   int
	}{
		{"disabled", SwaggerConfig{}, nil, "127.0.0.1:1234", http.StatusNotFound},
		{"open", SwaggerConfig{Enabled: true}, nil, "10.1.2.3:1234", http.StatusOK},
		{"ip allowed", SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}}, nil, "127.0.0.1:1234", http.StatusOK},
		{"ip denied", SwaggerConfig{Enabled: true, AllowedIPs: []string{"127.0.0.1"}}, nil, "10.1.2.3:1234", http.StatusForbidden},
		{"cidr allowed", SwaggerConfig{Enabled: true, AllowedIPs: []string{"10.0.0.0/8"}}, nil, "10.1.2.3:1234", http.StatusOK},
		{"auth required and missing", SwaggerConfig{Enabled: true, RequireAuth: true}, deny, "127.0.0.1:1234", http.StatusUnauthorized},
		{"auth required and present", SwaggerConfig{Enabled: true, RequireAuth: true}, allow, "127.0.0.1:1234", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, serveSwagger(tt.cfg, tt.auth, tt.remote).Code)
		})
	}
}

func TestIsIPAllowed(t *testing.T) {
	_, network, _ := net.ParseCIDR("192.168.0.0/16")
	ips := []net.IP{net.ParseIP("10.0.0.1")}
	nets := []*net.IPNet{network}

	assert.True(t, isIPAllowed(net.ParseIP("10.0.0.1"), ips, nets))
	assert.True(t, isIPAllowed(net.ParseIP("192.168.4.2"), ips, nets))
	assert.False(t, isIPAllowed(net.ParseIP("172.16.0.1"), ips, nets))
	assert.False(t, isIPAllowed(nil, ips, nets))
}
