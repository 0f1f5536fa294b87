package analytics

import (
	"fmt"
	"math"
	"time"
)

// weekdayLabels are pt-BR abbreviations, Sunday first, matching the
// dashboard's chart axis.
var weekdayLabels = [7]string{"Dom", "Seg", "Ter", "Qua", "Qui", "Sex", "Sáb"}

// Placeholder tables used whenever the provider omits a section. They are
// fixed values, not random, so repeated requests render identically.
var (
	placeholderVisitorsByDay = []DayCount{
		{Day: "Dom", Visitors: 86}, {Day: "Seg", Visitors: 74},
		{Day: "Ter", Visitors: 92}, {Day: "Qua", Visitors: 110},
		{Day: "Qui", Visitors: 98}, {Day: "Sex", Visitors: 81},
		{Day: "Sáb", Visitors: 67},
	}
	placeholderTopPages = []PageCount{
		{Path: "/", Title: "Página Inicial", Views: 1240},
		{Path: "/blog", Title: "Blog", Views: 830},
		{Path: "/eventos", Title: "Eventos", Views: 650},
		{Path: "/sabedorias", Title: "Sabedorias", Views: 420},
		{Path: "/blog/meditacao-para-iniciantes", Title: "Meditação para Iniciantes", Views: 320},
	}
	placeholderTopSources = []ShareCount{
		{Name: "Google", Visitors: 520, Percentage: 45},
		{Name: "Direct", Visitors: 350, Percentage: 30},
		{Name: "Instagram", Visitors: 180, Percentage: 15},
		{Name: "Facebook", Visitors: 120, Percentage: 10},
	}
	placeholderTopCountries = []ShareCount{
		{Name: "Brasil", Visitors: 850, Percentage: 70},
		{Name: "Portugal", Visitors: 120, Percentage: 10},
		{Name: "Estados Unidos", Visitors: 100, Percentage: 8},
		{Name: "Outros", Visitors: 150, Percentage: 12},
	}
)

var pageTitles = map[string]string{
	"/":           "Página Inicial",
	"/blog":       "Blog",
	"/eventos":    "Eventos",
	"/sabedorias": "Sabedorias",
	"/admin":      "Admin",
}

// Transform reshapes the provider report into the dashboard schema. Each
// section falls back to its placeholder independently, so one empty
// upstream field never fails the whole response.
func Transform(report *ViewsReport) *Data {
	return &Data{
		Visitors: Metric{
			Count:  report.Uniques.Total,
			Change: percentChange(report.Uniques.Total, report.Uniques.PrevTotal),
		},
		PageViews: Metric{
			Count:  report.Views.Total,
			Change: percentChange(report.Views.Total, report.Views.PrevTotal),
		},
		AvgTimeOnSite: TimeMetric{
			Count:  formatSeconds(report.AvgTimeOnPage),
			Change: 0, // the provider has no previous-window figure
		},
		VisitorsByDay: visitorsByDay(report),
		TopPages:      topPages(report),
		TopSources:    topSources(report),
		TopCountries:  topCountries(report),
	}
}

// percentChange rounds to the nearest whole percent, matching the figures
// the dashboard has always shown.
func percentChange(current, previous int) int {
	if previous == 0 {
		return 0
	}
	return int(math.Round(float64(current-previous) / float64(previous) * 100))
}

func formatSeconds(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%dm %ds", total/60, total%60)
}

func visitorsByDay(report *ViewsReport) []DayCount {
	if len(report.Views.Data) == 0 {
		return placeholderVisitorsByDay
	}

	out := make([]DayCount, 0, len(report.Views.Data))
	for _, item := range report.Views.Data {
		label := item.Date
		if t, err := time.Parse("2006-01-02", item.Date); err == nil {
			label = weekdayLabels[int(t.Weekday())]
		}
		out = append(out, DayCount{Day: label, Visitors: item.Uniques})
	}
	return out
}

func topPages(report *ViewsReport) []PageCount {
	if len(report.TopPages) == 0 {
		return placeholderTopPages
	}

	pages := report.TopPages
	if len(pages) > 5 {
		pages = pages[:5]
	}

	out := make([]PageCount, 0, len(pages))
	for _, p := range pages {
		path := p.Path
		if path == "" {
			path = "/"
		}
		title, ok := pageTitles[path]
		if !ok {
			title = path
		}
		out = append(out, PageCount{Path: path, Title: title, Views: p.Views})
	}
	return out
}

func topSources(report *ViewsReport) []ShareCount {
	if len(report.TopSources) == 0 {
		return placeholderTopSources
	}

	total := 0
	for _, s := range report.TopSources {
		total += s.Uniques
	}

	sources := report.TopSources
	if len(sources) > 4 {
		sources = sources[:4]
	}

	out := make([]ShareCount, 0, len(sources))
	for _, s := range sources {
		name := s.Source
		if name == "" {
			name = "Direct"
		}
		out = append(out, ShareCount{
			Name:       name,
			Visitors:   s.Uniques,
			Percentage: share(s.Uniques, total),
		})
	}
	return out
}

func topCountries(report *ViewsReport) []ShareCount {
	if len(report.TopCountries) == 0 {
		return placeholderTopCountries
	}

	total := 0
	for _, c := range report.TopCountries {
		total += c.Uniques
	}

	countries := report.TopCountries
	if len(countries) > 4 {
		countries = countries[:4]
	}

	out := make([]ShareCount, 0, len(countries))
	for _, c := range countries {
		name := c.Country
		if name == "" {
			name = "Unknown"
		}
		out = append(out, ShareCount{
			Name:       name,
			Visitors:   c.Uniques,
			Percentage: share(c.Uniques, total),
		})
	}
	return out
}

func share(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(float64(part) / float64(total) * 100)
}
