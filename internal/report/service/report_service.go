package service

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	analysisdomain "github.com/geoprofit/geoprofit-dashboard/internal/analysis/domain"
	dashboardservice "github.com/geoprofit/geoprofit-dashboard/internal/dashboard/service"
	"github.com/geoprofit/geoprofit-dashboard/internal/numfmt"
)

// Report is a rendered standalone HTML document ready to stream as a
// download.
type Report struct {
	Filename string
	HTML     []byte
}

// ReportService renders the per-project HTML report from the same data
// the dashboard view assembles.
type ReportService struct {
	dashboards *dashboardservice.DashboardService
	logger     *zap.Logger

	// now is swappable for deterministic filenames in tests.
	now func() time.Time
}

func NewReportService(dashboards *dashboardservice.DashboardService, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{dashboards: dashboards, logger: logger, now: time.Now}
}

// Generate builds the HTML report for a project. Sections whose analysis
// failed render with N/A placeholders rather than dropping out silently.
func (s *ReportService) Generate(ctx context.Context, projectID int) (*Report, error) {
	d, err := s.dashboards.Build(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("report data for project %d: %w", projectID, err)
	}

	view := buildView(d)

	var buf bytes.Buffer
	if err := reportTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("render report for project %d: %w", projectID, err)
	}

	s.logger.Info("report generated",
		zap.Int("project_id", projectID),
		zap.Strings("failed_analyses", d.Failed))

	return &Report{
		Filename: reportFilename(d.Project.Name, s.now()),
		HTML:     buf.Bytes(),
	}, nil
}

// reportFilename is Reporte_<name with spaces as underscores>_<millis>.html.
func reportFilename(projectName string, at time.Time) string {
	name := strings.ReplaceAll(strings.TrimSpace(projectName), " ", "_")
	if name == "" {
		name = "Proyecto"
	}
	return fmt.Sprintf("Reporte_%s_%d.html", name, at.UnixMilli())
}

type cashFlowRowView struct {
	Period     int
	Flow       string
	Cumulative string
}

type financialView struct {
	NPV             string
	IRR             string
	ROI             string
	Rows            []cashFlowRowView
	PeriodCount     int
	TotalInvestment string
	TotalRevenue    string
	NetTotal        string
}

type geospatialView struct {
	LocationScore      string
	AccessibilityScore string
	RiskFactors        []string
	NearbyServices     []string
	Recommendations    []string
}

type sustainabilityView struct {
	OverallScore        string
	CarbonFootprint     string
	EnergyEfficiency    string
	WaterUsage          string
	WasteManagement     string
	GreenCertifications []string
	Recommendations     []string
}

type reportView struct {
	ProjectName     string
	Location        string
	ZoneType        string
	Status          string
	TotalArea       string
	TerrainValue    string
	ConstructionM2  string
	TotalInvestment string

	OverallScore string
	Failed       []string

	Financial      *financialView
	Geospatial     *geospatialView
	Sustainability *sustainabilityView

	GeneratedAt string
}

func buildView(d *dashboardservice.Dashboard) reportView {
	p := d.Project

	view := reportView{
		ProjectName:     p.Name,
		Location:        p.Location,
		ZoneType:        string(p.ZoneType),
		Status:          string(p.Status),
		TotalArea:       fmt.Sprintf("%.0f m²", p.TotalArea),
		TerrainValue:    numfmt.Currency(p.TerrainValue),
		ConstructionM2:  numfmt.Currency(p.ConstructionCostPerM2),
		TotalInvestment: numfmt.NotAvailable,
		OverallScore:    numfmt.NotAvailable,
		Failed:          d.Failed,
		GeneratedAt:     d.GeneratedAt.Format("2006-01-02 15:04 UTC"),
	}
	if p.TotalInvestment != nil {
		view.TotalInvestment = numfmt.Currency(*p.TotalInvestment)
	}
	if d.OverallScore != nil {
		view.OverallScore = numfmt.Score(*d.OverallScore)
	}

	if d.Financial != nil {
		view.Financial = buildFinancialView(d.Financial, d.CashFlow)
	}
	if d.Geospatial != nil {
		view.Geospatial = &geospatialView{
			LocationScore:      numfmt.Score(d.Geospatial.LocationScore),
			AccessibilityScore: numfmt.Score(d.Geospatial.AccessibilityScore),
			RiskFactors:        d.Geospatial.RiskFactors,
			NearbyServices:     d.Geospatial.NearbyServices,
			Recommendations:    d.Geospatial.Recommendations,
		}
	}
	if d.Sustainability != nil {
		sus := d.Sustainability
		view.Sustainability = &sustainabilityView{
			OverallScore:        numfmt.Score(sus.OverallScore),
			CarbonFootprint:     fmt.Sprintf("%.1f t CO₂e", sus.CarbonFootprint),
			EnergyEfficiency:    numfmt.Score(sus.EnergyEfficiency / 10),
			WaterUsage:          numfmt.Score(sus.WaterUsage / 10),
			WasteManagement:     numfmt.Score(sus.WasteManagement / 10),
			GreenCertifications: sus.GreenCertifications,
			Recommendations:     sus.Recommendations,
		}
	}
	return view
}

func buildFinancialView(fin *analysisdomain.FinancialResult, cf *analysisdomain.CashFlowSummary) *financialView {
	v := &financialView{
		NPV: numfmt.Currency(fin.NPV),
		IRR: numfmt.NotAvailable,
		ROI: numfmt.Percent(fin.ROIPercentage / 100),
	}
	if fin.IRR != nil {
		v.IRR = numfmt.Percent(*fin.IRR)
	}

	if cf != nil {
		v.PeriodCount = cf.PeriodCount
		v.TotalInvestment = numfmt.Currency(cf.TotalInvestment)
		v.TotalRevenue = numfmt.Currency(cf.TotalRevenue)
		v.NetTotal = numfmt.Currency(cf.NetTotal)
		v.Rows = make([]cashFlowRowView, len(cf.Rows))
		for i, row := range cf.Rows {
			v.Rows[i] = cashFlowRowView{
				Period:     row.Period,
				Flow:       numfmt.Currency(row.Flow),
				Cumulative: numfmt.Currency(row.Cumulative),
			}
		}
	}
	return v
}
