package service

import "html/template"

var reportTemplate = template.Must(template.New("report").Parse(reportHTML))

const reportHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>Reporte de Inversión - {{.ProjectName}}</title>
<style>
  body { font-family: Arial, Helvetica, sans-serif; margin: 40px; color: #1f2933; }
  h1 { border-bottom: 3px solid #2563eb; padding-bottom: 8px; }
  h2 { color: #2563eb; margin-top: 32px; }
  table { border-collapse: collapse; width: 100%; margin-top: 12px; }
  th, td { border: 1px solid #cbd5e1; padding: 6px 10px; text-align: right; }
  th { background: #eff6ff; }
  td.label, th.label { text-align: left; }
  .summary { background: #f8fafc; border: 1px solid #e2e8f0; padding: 16px; margin-top: 16px; }
  .warning { color: #b45309; }
  footer { margin-top: 40px; font-size: 12px; color: #64748b; border-top: 1px solid #e2e8f0; padding-top: 8px; }
</style>
</head>
<body>

<h1>Reporte de Inversión: {{.ProjectName}}</h1>

<h2>Información del Proyecto</h2>
<table>
  <tr><td class="label">Ubicación</td><td>{{.Location}}</td></tr>
  <tr><td class="label">Tipo de zona</td><td>{{.ZoneType}}</td></tr>
  <tr><td class="label">Estado</td><td>{{.Status}}</td></tr>
  <tr><td class="label">Área total</td><td>{{.TotalArea}}</td></tr>
  <tr><td class="label">Valor del terreno</td><td>{{.TerrainValue}}</td></tr>
  <tr><td class="label">Costo de construcción por m²</td><td>{{.ConstructionM2}}</td></tr>
  <tr><td class="label">Inversión total</td><td>{{.TotalInvestment}}</td></tr>
</table>

<h2>Resumen Ejecutivo</h2>
<div class="summary">
  <p>Puntaje general del proyecto: <strong>{{.OverallScore}}</strong> / 10</p>
  {{if .Failed}}<p class="warning">Análisis no disponibles: {{range $i, $k := .Failed}}{{if $i}}, {{end}}{{$k}}{{end}}</p>{{end}}
</div>

<h2>Análisis Financiero</h2>
{{with .Financial}}
<table>
  <tr><td class="label">VPN</td><td>{{.NPV}}</td></tr>
  <tr><td class="label">TIR</td><td>{{.IRR}}</td></tr>
  <tr><td class="label">ROI</td><td>{{.ROI}}</td></tr>
  <tr><td class="label">Inversión total (serie completa)</td><td>{{.TotalInvestment}}</td></tr>
  <tr><td class="label">Ingresos totales (serie completa)</td><td>{{.TotalRevenue}}</td></tr>
  <tr><td class="label">Flujo neto</td><td>{{.NetTotal}}</td></tr>
</table>
{{if .Rows}}
<h3>Flujo de Caja ({{len .Rows}} de {{.PeriodCount}} períodos)</h3>
<table>
  <tr><th class="label">Período</th><th>Flujo</th><th>Acumulado</th></tr>
  {{range .Rows}}<tr><td class="label">{{.Period}}</td><td>{{.Flow}}</td><td>{{.Cumulative}}</td></tr>
  {{end}}
</table>
{{end}}
{{else}}
<p class="warning">Análisis financiero no disponible.</p>
{{end}}

<h2>Análisis Geoespacial</h2>
{{with .Geospatial}}
<table>
  <tr><td class="label">Puntaje de ubicación</td><td>{{.LocationScore}}</td></tr>
  <tr><td class="label">Puntaje de accesibilidad</td><td>{{.AccessibilityScore}}</td></tr>
</table>
{{if .RiskFactors}}<p><strong>Factores de riesgo:</strong> {{range $i, $r := .RiskFactors}}{{if $i}}; {{end}}{{$r}}{{end}}</p>{{end}}
{{if .NearbyServices}}<p><strong>Servicios cercanos:</strong> {{range $i, $s := .NearbyServices}}{{if $i}}; {{end}}{{$s}}{{end}}</p>{{end}}
{{if .Recommendations}}<ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{else}}
<p class="warning">Análisis geoespacial no disponible.</p>
{{end}}

<h2>Análisis de Sostenibilidad</h2>
{{with .Sustainability}}
<table>
  <tr><td class="label">Puntaje general</td><td>{{.OverallScore}}</td></tr>
  <tr><td class="label">Huella de carbono</td><td>{{.CarbonFootprint}}</td></tr>
  <tr><td class="label">Eficiencia energética</td><td>{{.EnergyEfficiency}}</td></tr>
  <tr><td class="label">Uso de agua</td><td>{{.WaterUsage}}</td></tr>
  <tr><td class="label">Gestión de residuos</td><td>{{.WasteManagement}}</td></tr>
</table>
{{if .GreenCertifications}}<p><strong>Certificaciones alcanzables:</strong> {{range $i, $c := .GreenCertifications}}{{if $i}}; {{end}}{{$c}}{{end}}</p>{{end}}
{{if .Recommendations}}<ul>{{range .Recommendations}}<li>{{.}}</li>{{end}}</ul>{{end}}
{{else}}
<p class="warning">Análisis de sostenibilidad no disponible.</p>
{{end}}

<footer>Generado el {{.GeneratedAt}} · GeoProfit</footer>

</body>
</html>
`
