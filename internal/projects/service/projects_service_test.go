package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
	"github.com/geoprofit/geoprofit-dashboard/internal/upstream"
)

type fakeInvalidator struct {
	calls atomic.Int32
}

func (f *fakeInvalidator) InvalidateProject(ctx context.Context, projectID int) error {
	f.calls.Add(1)
	return nil
}

func validInput() *domain.ProjectInput {
	return &domain.ProjectInput{
		Name:                  "Torre Central",
		Location:              "Cali",
		ZoneType:              domain.ZoneCommercial,
		TotalArea:             1000,
		TerrainValue:          100000,
		ConstructionCostPerM2: 500,
		InvestmentHorizon:     5,
	}
}

func crudEngine(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/":
			var in domain.ProjectInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(domain.Project{ID: 1, Name: in.Name, ZoneType: in.ZoneType, Status: domain.StatusDraft})
		case r.Method == http.MethodPut && r.URL.Path == "/projects/1":
			json.NewEncoder(w).Encode(domain.Project{ID: 1, Name: "Torre Central", Status: domain.StatusDraft})
		case r.Method == http.MethodDelete && r.URL.Path == "/projects/1":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestCreate_ValidatesAndNormalizes(t *testing.T) {
	srv := crudEngine(t)
	defer srv.Close()

	inv := &fakeInvalidator{}
	svc := NewProjectsService(upstream.NewClient(srv.URL, 0, nil), inv, nil)

	in := validInput()
	p, err := svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, 1, p.ID)

	// Normalize filled the engine defaults before the upstream call.
	assert.Equal(t, 12, in.ConstructionTimeMonths)
	assert.Equal(t, 12, in.SellingTimeMonths)
	assert.Equal(t, 0.12, in.DiscountRate)
	// Creation does not touch the analysis cache.
	assert.Equal(t, int32(0), inv.calls.Load())
}

func TestCreate_RejectsInvalidInput(t *testing.T) {
	srv := crudEngine(t)
	defer srv.Close()
	svc := NewProjectsService(upstream.NewClient(srv.URL, 0, nil), &fakeInvalidator{}, nil)

	t.Run("bad zone type", func(t *testing.T) {
		in := validInput()
		in.ZoneType = "rural"
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("discount rate above 1", func(t *testing.T) {
		in := validInput()
		in.DiscountRate = 1.5
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		in := validInput()
		lat := 95.0
		in.Latitude = &lat
		_, err := svc.Create(context.Background(), in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUpdate_InvalidatesAnalysisCache(t *testing.T) {
	srv := crudEngine(t)
	defer srv.Close()

	inv := &fakeInvalidator{}
	svc := NewProjectsService(upstream.NewClient(srv.URL, 0, nil), inv, nil)

	_, err := svc.Update(context.Background(), 1, validInput())
	require.NoError(t, err)
	assert.Equal(t, int32(1), inv.calls.Load())
}

func TestDelete_InvalidatesAnalysisCache(t *testing.T) {
	srv := crudEngine(t)
	defer srv.Close()

	inv := &fakeInvalidator{}
	svc := NewProjectsService(upstream.NewClient(srv.URL, 0, nil), inv, nil)

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Equal(t, int32(1), inv.calls.Load())
}

func TestDelete_UpstreamFailureSkipsInvalidation(t *testing.T) {
	srv := crudEngine(t)
	defer srv.Close()

	inv := &fakeInvalidator{}
	svc := NewProjectsService(upstream.NewClient(srv.URL, 0, nil), inv, nil)

	err := svc.Delete(context.Background(), 99)
	require.Error(t, err)
	assert.Equal(t, int32(0), inv.calls.Load())
}
