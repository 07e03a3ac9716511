package ui

import (
	"bytes"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"hrdash/domain/dataset"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"markdown":    renderMarkdown,
		"stat":        formatStat,
		"noticeClass": noticeClass,
		"percent": func(count, total int) string {
			if total == 0 {
				return "0.0%"
			}
			return strconv.FormatFloat(100*float64(count)/float64(total), 'f', 1, 64) + "%"
		},
	}
}

// renderMarkdown converts notice text to HTML. Raw HTML in the input is dropped.
func renderMarkdown(md string) template.HTML {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags | html.SkipHTML})
	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}

// formatStat prints a summary value the way a describe() table does
func formatStat(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', 6, 64)
}

func noticeClass(level dataset.NoticeLevel) string {
	switch level {
	case dataset.NoticeSuccess:
		return "notice notice-success"
	case dataset.NoticeWarning:
		return "notice notice-warning"
	case dataset.NoticeError:
		return "notice notice-error"
	default:
		return "notice notice-info"
	}
}

// renderTemplate executes a template into a buffer first so a failure never sends a partial page
func (a *App) renderTemplate(w http.ResponseWriter, status int, templateName string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		a.log.Error("template error for %s: %v", templateName, err)
		http.Error(w, "Template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.log.Warn("error writing template response: %v", err)
	}
}
