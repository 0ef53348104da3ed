package view

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/sva-insights/founder-dashboard/internal/shared"
	"github.com/sva-insights/founder-dashboard/web"
)

// Engine renders HTML templates.
type Engine struct {
	templates *template.Template
}

// TemplateData contains values shared across templates.
type TemplateData struct {
	Title       string
	CSRFToken   string
	Flash       *shared.FlashMessage
	CurrentPath string
	Data        any
}

// NavItem is one entry of the dashboard navigation.
type NavItem struct {
	Path  string
	Label string
}

// Navigation lists the dashboards in menu order.
var Navigation = []NavItem{
	{Path: "/", Label: "Founder Success"},
	{Path: "/applications", Label: "Applications"},
	{Path: "/advisors", Label: "Advisors"},
	{Path: "/partner-roi", Label: "Partner ROI"},
	{Path: "/cycle-snapshot", Label: "Cycle Snapshot"},
	{Path: "/portfolio-trends", Label: "Portfolio Trends"},
	{Path: "/operational-health", Label: "Operational Health"},
	{Path: "/cohorts", Label: "Cohort Compare"},
	{Path: "/sample-data", Label: "Sample Data"},
}

// NewEngine parses templates at build-time.
func NewEngine() (*Engine, error) {
	funcMap := template.FuncMap{
		"nav":  func() []NavItem { return Navigation },
		"join": strings.Join,
		"inc":  func(i int) int { return i + 1 },
		"toneClass": func(tone any) string {
			s := strings.TrimSpace(fmt.Sprint(tone))
			if s == "" {
				s = "neutral"
			}
			return "tone-" + s
		},
	}
	tpl, err := template.New("root").Funcs(funcMap).ParseFS(web.Templates, "templates/layouts/*.html", "templates/partials/*.html", "templates/pages/*.html")
	if err != nil {
		return nil, err
	}
	return &Engine{templates: tpl}, nil
}

// Render executes a named template with TemplateData.
func (e *Engine) Render(w http.ResponseWriter, name string, data TemplateData) error {
	if e == nil {
		return fmt.Errorf("template engine not initialised")
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	return e.templates.ExecuteTemplate(w, name, data)
}
