package routerhelper

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/stretchr/testify/assert"
)

func TestRouteGroupPrefix(t *testing.T) {
	router := httprouter.New()
	group := NewRouteGroup(router, "/api")

	called := ""
	group.GET("/route", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = r.URL.Path
	})
	group.GET("nearest", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		called = r.URL.Path
	})

	tests := []struct {
		name string
		path string
		want int
	}{
		{name: "grouped route", path: "/api/route", want: http.StatusOK},
		{name: "relative path", path: "/api/nearest", want: http.StatusOK},
		{name: "missing prefix", path: "/route", want: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called = ""
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusOK {
				assert.Equal(t, tt.path, called)
			}
		})
	}
}
