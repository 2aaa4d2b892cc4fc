package domain

import (
	"strings"
	"time"
)

// QueryContext carries one free-text question through routing.
type QueryContext struct {
	Raw        string
	Normalized string
	Type       QueryType
	ReceivedAt time.Time
}

func NewQueryContext(raw string) *QueryContext {
	return &QueryContext{
		Raw:        raw,
		Normalized: strings.ToLower(strings.TrimSpace(raw)),
		Type:       QueryGeneral,
		ReceivedAt: time.Now(),
	}
}

func (q *QueryContext) IsEmpty() bool {
	return q == nil || q.Normalized == ""
}
