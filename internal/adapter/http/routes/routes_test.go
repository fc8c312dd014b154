package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bengkel_service/internal/adapter/http/handlers/mocks"
	"bengkel_service/internal/domain/entities"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	jobs := mocks.NewMockIJobUseCase(ctrl)
	kpis := mocks.NewMockIKPIUseCase(ctrl)

	jobs.EXPECT().ListJobs(gomock.Any()).Return([]entities.Job{}, nil)
	jobs.EXPECT().CloseJob(gomock.Any(), "job-1", gomock.Any()).Return(entities.Job{ID: "job-1", IsClosed: true}, nil)

	r := NewRouter(Dependencies{Jobs: jobs, KPIs: kpis})

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/ping", http.StatusOK},
		{http.MethodGet, "/v1/jobs", http.StatusOK},
		{http.MethodPost, "/v1/jobs/job-1/close", http.StatusOK},
		{http.MethodGet, "/v1/kpis?month=0", http.StatusBadRequest},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/v1/estimates", http.StatusNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))
			if w.Code != tc.want {
				t.Fatalf("expected %d, got %d", tc.want, w.Code)
			}
		})
	}
}
