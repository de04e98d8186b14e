package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	comparisondomain "github.com/geoprofit/geoprofit-dashboard/internal/comparison/domain"
	projectsdomain "github.com/geoprofit/geoprofit-dashboard/internal/projects/domain"
)

func TestClient_ProjectRoundTrip(t *testing.T) {
	// Fake engine: create stores the payload, list and get echo it back.
	var stored projectsdomain.Project

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/projects/":
			var in projectsdomain.ProjectInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
			stored = projectsdomain.Project{
				ID:                    42,
				Name:                  in.Name,
				Location:              in.Location,
				ZoneType:              in.ZoneType,
				TotalArea:             in.TotalArea,
				TerrainValue:          in.TerrainValue,
				ConstructionCostPerM2: in.ConstructionCostPerM2,
				InvestmentHorizon:     in.InvestmentHorizon,
				Status:                projectsdomain.StatusDraft,
			}
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(stored)
		case r.Method == http.MethodGet && r.URL.Path == "/projects/":
			json.NewEncoder(w).Encode(projectsdomain.ProjectList{
				Items: []projectsdomain.Project{stored},
				Total: 1, Page: 1, Size: 10, Pages: 1,
			})
		case r.Method == http.MethodGet && r.URL.Path == "/projects/42":
			json.NewEncoder(w).Encode(stored)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)
	ctx := context.Background()

	created, err := client.CreateProject(ctx, &projectsdomain.ProjectInput{
		Name:                  "Torre Norte",
		Location:              "Bogotá",
		ZoneType:              projectsdomain.ZoneMixed,
		TotalArea:             1000,
		TerrainValue:          100000,
		ConstructionCostPerM2: 500,
		InvestmentHorizon:     5,
	})
	require.NoError(t, err)
	assert.Equal(t, 42, created.ID)

	list, err := client.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	got, err := client.GetProject(ctx, 42)
	require.NoError(t, err)

	// Field values survive create -> list -> retrieve unchanged.
	assert.Equal(t, 1000.0, got.TotalArea)
	assert.Equal(t, 100000.0, got.TerrainValue)
	assert.Equal(t, 500.0, got.ConstructionCostPerM2)
	assert.Equal(t, 5, got.InvestmentHorizon)
	assert.Equal(t, *created, list.Items[0])
	assert.Equal(t, *created, *got)
}

func TestClient_RunFinancial(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/analysis/7/financial", r.URL.Path)
		w.Write([]byte(`{"npv": 250000.5, "irr": 0.18, "roi_percentage": 22.4, "cash_flows": [-100000, 50000, 60000]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	res, err := client.RunFinancial(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 250000.5, res.NPV)
	require.NotNil(t, res.IRR)
	assert.Equal(t, 0.18, *res.IRR)
	assert.Len(t, res.CashFlows, 3)
	assert.Equal(t, "engine", string(res.Source))
}

func TestClient_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"detail": "Proyecto no encontrado"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	_, err := client.GetProject(context.Background(), 99)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "Proyecto no encontrado", apiErr.Message)
}

func TestClient_TransportError(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", 0, nil)

	_, err := client.ListProjects(context.Background())
	require.Error(t, err)

	// Transport failures are wrapped plain errors, not engine API errors.
	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr))
}

func TestClient_CompareProjects(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/projects/compare", r.URL.Path)

		var req struct {
			ProjectIDs []int `json:"project_ids"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []int{4, 2}, req.ProjectIDs)

		w.Write([]byte(`{"projects": [
			{"project_id": 4, "project_name": "Torre Alta",
			 "financial": {"npv": 900000, "irr": 0.12, "roi": 20},
			 "geospatial": {"location_score": 8, "accessibility_score": 7},
			 "sustainability": {"score": 8.5, "carbon_footprint": 640},
			 "overall_score": 8.1},
			{"project_id": 2, "project_name": "Parque Verde",
			 "financial": {"npv": 400000, "irr": 0.24, "roi": 15},
			 "geospatial": {"location_score": 6, "accessibility_score": 6},
			 "sustainability": {"score": 6.5, "carbon_footprint": 480},
			 "overall_score": 6.2}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	metrics, err := client.CompareProjects(context.Background(), []int{4, 2})
	require.NoError(t, err)
	require.Len(t, metrics, 2)

	// Bundles arrive in engine order with nested sections decoded.
	assert.Equal(t, 4, metrics[0].ProjectID)
	assert.Equal(t, "Torre Alta", metrics[0].ProjectName)
	assert.Equal(t, 900000.0, metrics[0].Financial.NPV)
	assert.Equal(t, 0.24, metrics[1].Financial.IRR)
	assert.Equal(t, 6.5, metrics[1].Sustainability.Score)
	assert.Equal(t, 8.1, metrics[0].OverallScore)
}

func TestClient_Ranking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/projects/ranking", r.URL.Path)
		assert.Equal(t, "npv", r.URL.Query().Get("criteria"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Write([]byte(`{"projects": [
			{"project_id": 1, "project_name": "A", "overall_score": 9.0},
			{"project_id": 2, "project_name": "B", "overall_score": 7.5}
		]}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	ranked, err := client.Ranking(context.Background(), "npv", 5)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, []comparisondomain.Metrics{
		{ProjectID: 1, ProjectName: "A", OverallScore: 9.0},
		{ProjectID: 2, ProjectName: "B", OverallScore: 7.5},
	}, ranked)
}

func TestClient_ExportComparison(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/projects/compare/export", r.URL.Path)
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="comparison.pdf"`)
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	client := NewClient(server.URL, 0, nil)

	exp, err := client.ExportComparison(context.Background(), []int{1, 2}, "pdf")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", exp.ContentType)
	assert.Equal(t, "comparison.pdf", exp.Filename)
	assert.Equal(t, []byte("%PDF-1.4 fake"), exp.Data)
}
