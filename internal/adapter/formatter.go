package adapter

import (
	"github.com/kapu/paderewski-ai-go/internal/domain"
	"go.uber.org/zap"
)

// ResponseFormatter renders answers to free-text questions.
type ResponseFormatter struct {
	logger *zap.Logger
}

// NewResponseFormatter creates a new ResponseFormatter
func NewResponseFormatter(logger *zap.Logger) *ResponseFormatter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResponseFormatter{logger: logger}
}

// FormatParticipants lists participants, one per line.
func (f *ResponseFormatter) FormatParticipants(people []domain.Person) string {
	return f.render(templateParticipants, people, "Uczestnicy:\nBrak danych.")
}

// FormatJury lists jury members with their role when known.
func (f *ResponseFormatter) FormatJury(people []domain.Person) string {
	return f.render(templateJury, people, "Jury:\nBrak danych.")
}

func (f *ResponseFormatter) FormatHistory(history domain.HistoryExcerpt) string {
	return f.render(templateHistory, history, history.Excerpt)
}

// FormatPrediction renders the winner with a one-decimal percentage, or the
// reason no winner was chosen.
func (f *ResponseFormatter) FormatPrediction(prediction domain.Prediction) string {
	return f.render(templatePrediction, prediction, prediction.Rationale)
}

// FormatVideos renders search hits as "title: url" lines under a YouTube
// header. A search error is rendered in place of the hits.
func (f *ResponseFormatter) FormatVideos(videos []domain.Video, searchErr error) string {
	data := struct {
		Videos []domain.Video
		Err    string
	}{Videos: videos}
	if searchErr != nil {
		data.Err = searchErr.Error()
	}
	return f.render(templateVideos, data, "YouTube:")
}

func (f *ResponseFormatter) render(name string, data any, fallback string) string {
	out, err := executeFormatterTemplate(name, data)
	if err != nil {
		f.logger.Error("Failed to render response template", zap.String("template", name), zap.Error(err))
		return fallback
	}
	return out
}
