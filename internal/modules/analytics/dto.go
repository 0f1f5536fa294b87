package analytics

// Data is the fixed schema the admin dashboard consumes, whatever the
// upstream provider returns.
type Data struct {
	Visitors      Metric       `json:"visitors"`
	PageViews     Metric       `json:"pageViews"`
	AvgTimeOnSite TimeMetric   `json:"avgTimeOnSite"`
	VisitorsByDay []DayCount   `json:"visitorsByDay"`
	TopPages      []PageCount  `json:"topPages"`
	TopSources    []ShareCount `json:"topSources"`
	TopCountries  []ShareCount `json:"topCountries"`
}

type Metric struct {
	Count  int `json:"count"`
	Change int `json:"change"` // percent vs the previous window
}

type TimeMetric struct {
	Count  string `json:"count"` // "3m 45s"
	Change int    `json:"change"`
}

type DayCount struct {
	Day      string `json:"day"` // pt-BR weekday abbreviation
	Visitors int    `json:"visitors"`
}

type PageCount struct {
	Path  string `json:"path"`
	Title string `json:"title"`
	Views int    `json:"views"`
}

type ShareCount struct {
	Name       string `json:"name"`
	Visitors   int    `json:"visitors"`
	Percentage int    `json:"percentage"`
}

// ViewsReport is the slice of the provider's response the transform reads.
// Every field may be absent upstream; the transform substitutes placeholder
// data rather than failing.
type ViewsReport struct {
	Uniques struct {
		Total     int `json:"total"`
		PrevTotal int `json:"prev_total"`
	} `json:"uniques"`
	Views struct {
		Total     int `json:"total"`
		PrevTotal int `json:"prev_total"`
		Data      []struct {
			Date    string `json:"date"`
			Uniques int    `json:"uniques"`
		} `json:"data"`
	} `json:"views"`
	AvgTimeOnPage float64 `json:"avgTimeOnPage"`
	TopPages      []struct {
		Path  string `json:"path"`
		Views int    `json:"views"`
	} `json:"topPages"`
	TopSources []struct {
		Source  string `json:"source"`
		Uniques int    `json:"uniques"`
	} `json:"topSources"`
	TopCountries []struct {
		Country string `json:"country"`
		Uniques int    `json:"uniques"`
	} `json:"topCountries"`
}
