package site

import (
	"encoding/json"
	"html/template"

	"github.com/ebochsler/personal-site/internal/anim"
)

var siteFuncMap = template.FuncMap{
	// jsonify embeds precomputed data as an application/json script body.
	"jsonify": func(v any) template.JS {
		b, err := json.Marshal(v)
		if err != nil {
			return template.JS("null")
		}
		return template.JS(b)
	},
	"pace": anim.Pace,
}

const layoutTemplateStr = `{{define "head"}}<!DOCTYPE html>
<html lang="en" data-theme="dark">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="assets/site.css">
<link rel="stylesheet" href="assets/palette.css">
</head>
<body>
<nav class="topnav">
<a href="index.html">Home</a>
<a href="running.html">Running</a>
<a href="breweries.html">Breweries</a>
<button id="theme-toggle" type="button" aria-label="Toggle theme">◐</button>
</nav>
{{end}}

{{define "foot"}}
<footer class="share">
<img src="assets/qr-{{.Page}}.png" alt="Scan to open {{.BaseURL}}/{{.Page}}" width="128" height="128">
<span>{{.BaseURL}}/{{.Page}}</span>
</footer>
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="assets/playback.js"></script>
</body>
</html>{{end}}

{{define "stats"}}<section class="stat-grid">
{{range .}}<div class="stat-card" data-counter data-threshold="{{.Threshold}}">
<span class="stat-value" id="stat-{{.ID}}" data-final="{{.Final}}">0</span>
<span class="stat-label">{{.Label}}</span>
<script type="application/json" class="counter-frames" data-for="stat-{{.ID}}">{{jsonify .Frames}}</script>
</div>
{{end}}</section>{{end}}

{{define "bars"}}<div class="bar-chart" data-bars data-threshold="{{.Threshold}}">
{{range .Rows}}<div class="bar-row">
<span class="bar-label">{{.Label}}</span>
<div class="bar-track"><div class="bar-fill{{with .Category}} cat-{{.}}{{end}}" data-width="{{printf "%.1f" .FillPercent}}" style="transition-delay: {{printf "%.2f" .DelaySeconds}}s"></div></div>
<span class="bar-value">{{.Display}}</span>
</div>
{{end}}</div>{{end}}

{{define "mapslot"}}<div class="map" id="{{.Slot}}"></div>
{{range $mode, $spec := .Specs}}<script type="application/json" class="map-spec" data-slot="{{$spec.Slot}}" data-theme="{{$mode}}">{{jsonify $spec}}</script>
{{end}}{{end}}`

const indexTemplateStr = `{{template "head" .}}
<main class="landing">
<h1>{{.Title}}</h1>
<p>A year of running and a lot of taprooms, measured.</p>
<ul class="landing-links">
<li><a href="running.html">Running dashboard</a></li>
<li><a href="breweries.html">Brewery tracker</a></li>
</ul>
</main>
{{template "foot" .}}`

const runningTemplateStr = `{{template "head" .}}
<main>
<h1>Running{{if .Year}} · {{.Year}}{{end}}</h1>
<section class="status" role="status">{{if .Err}}<p class="status-error">Running data is unavailable right now. Everything else still works.</p>{{end}}</section>
{{if not .Err}}
{{template "stats" .Stats}}

<section class="calendars">
<h2>Activity Calendar</h2>
{{range .Calendars}}<div class="calendar">
<h3>{{.Label}}</h3>
<div class="calendar-grid">
{{range .Cells}}{{if .Blank}}<div class="cal-cell blank"></div>
{{else}}<div class="cal-cell{{if .Active}} active{{end}}" title="{{.Tooltip}}" style="--intensity: {{printf "%.2f" .Intensity}}"><span class="cal-day">{{.Day}}</span></div>
{{end}}{{end}}</div>
</div>
{{end}}</section>

<section>
<h2>Weekly Mileage</h2>
{{template "bars" .WeeklyMiles}}
</section>

<section>
<h2>Workout Mix</h2>
{{template "bars" .WorkoutTypes}}
</section>

<section class="recent-runs">
<h2>Recent Runs</h2>
{{range .RecentRuns}}<article class="run-card">
<h3>{{.Run.Name}}</h3>
<p class="run-meta">{{.Run.Date}} · {{printf "%.1f" .Run.DistanceMi}} mi · {{pace .Run.PaceMin}} /mi · {{printf "%.0f" .Run.ElevationFt}} ft</p>
{{template "mapslot" .Map}}
</article>
{{end}}</section>
{{end}}

{{if .Featured}}
<section class="featured">
<h2>Runs Abroad</h2>
{{range .Regionals}}<div class="regional" data-continent="{{.Continent}}">
<h3>{{.Label}}</h3>
{{range $mode, $svg := .SVG}}<div class="theme-variant" data-theme-variant="{{$mode}}">{{$svg}}</div>
{{end}}</div>
{{end}}
{{range .Featured}}<article class="route-card" id="route-{{.Route.ID}}">
<h3>{{.Route.City}}</h3>
<p class="run-meta">{{printf "%.1f" .Route.TotalMiles}} mi across {{.Route.TotalRuns}} runs · featured: {{.Route.FeaturedRun.Name}}</p>
{{template "mapslot" .Map}}
</article>
{{end}}</section>
{{end}}
</main>
{{template "foot" .}}`

const breweriesTemplateStr = `{{template "head" .}}
<main>
<h1>Breweries</h1>
<section class="status" role="status">{{if .Err}}<p class="status-error">Brewery data is unavailable right now. Everything else still works.</p>{{end}}</section>
{{if not .Err}}
{{template "stats" .Stats}}

<section>
<h2>By Category</h2>
{{template "bars" .Breakdown}}
</section>

<section>
<h2>Visits by Month</h2>
{{template "bars" .ByMonth}}
</section>

<section>
<h2>Most Visited</h2>
{{template "bars" .TopByVisits}}
</section>

<section>
<h2>Most Hours</h2>
{{template "bars" .TopByHours}}
</section>

{{with .VenueMap}}
<section class="venue-map">
<h2>The Map</h2>
{{template "mapslot" .}}
</section>
{{end}}
{{end}}
</main>
{{template "foot" .}}`

var pageTemplates = func() *template.Template {
	t := template.New("pages").Funcs(siteFuncMap)
	t = template.Must(t.Parse(layoutTemplateStr))
	t = template.Must(t.New("index").Parse(indexTemplateStr))
	t = template.Must(t.New("running").Parse(runningTemplateStr))
	t = template.Must(t.New("breweries").Parse(breweriesTemplateStr))
	return t
}()
