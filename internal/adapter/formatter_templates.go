package adapter

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.tmpl
var formatterTemplateFS embed.FS

const (
	templateParticipants = "participants.tmpl"
	templateJury         = "jury.tmpl"
	templateHistory      = "history.tmpl"
	templatePrediction   = "prediction.tmpl"
	templateVideos       = "videos.tmpl"
)

var (
	formatterTemplates *template.Template
	formatterOnce      sync.Once
	formatterErr       error
)

func executeFormatterTemplate(name string, data any) (string, error) {
	formatterOnce.Do(func() {
		funcMap := template.FuncMap{
			"deref": func(s *string) string {
				if s == nil {
					return ""
				}
				return *s
			},
			"percent": func(v float64) string {
				return fmt.Sprintf("%.1f", v*100)
			},
		}
		tmpl := template.New("formatter").Funcs(funcMap)
		formatterTemplates, formatterErr = tmpl.ParseFS(formatterTemplateFS, "templates/*.tmpl")
	})

	if formatterErr != nil {
		return "", formatterErr
	}

	var builder strings.Builder
	if err := formatterTemplates.ExecuteTemplate(&builder, name, data); err != nil {
		return "", err
	}

	return strings.TrimRight(builder.String(), "\n"), nil
}
