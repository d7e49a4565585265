package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

func TestMetrics_RecordSignIn(t *testing.T) {
	m := New()
	m.RecordSignIn(true)
	m.RecordSignIn(false)
	m.RecordSignIn(false)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	if !strings.Contains(body, `careerdesk_signin_total{result="success"} 1`) {
		t.Errorf("成功カウントが記録されるべき:\n%s", body)
	}
	if !strings.Contains(body, `careerdesk_signin_total{result="failure"} 2`) {
		t.Errorf("失敗カウントが記録されるべき:\n%s", body)
	}
}

func TestMetrics_Middleware(t *testing.T) {
	m := New()

	// chiルーター経由でルートパターンがラベルに使われることを確認
	r := chi.NewRouter()
	r.Use(m.Middleware)
	r.Get("/skills", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/skills", nil))

	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := metricsRec.Body.String()
	if !strings.Contains(body, `careerdesk_http_status_total{method="GET",path="/skills",status="200"} 1`) {
		t.Errorf("ステータスカウントが記録されるべき:\n%s", body)
	}
}
