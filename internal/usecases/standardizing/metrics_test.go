package standardizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

func TestFormatFollowers(t *testing.T) {
	tests := []struct {
		name     string
		count    int64
		expected string
	}{
		{name: "Abaixo de mil - número puro", count: 999, expected: "999"},
		{name: "Milhares - sufixo K", count: 1500, expected: "1.5K"},
		{name: "Milhares exatos", count: 48000, expected: "48.0K"},
		{name: "Milhões - sufixo M", count: 2500000, expected: "2.5M"},
		{name: "Um milhão e duzentos mil", count: 1200000, expected: "1.2M"},
		{name: "Zero seguidores", count: 0, expected: "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatFollowers(tt.count))
		})
	}
}

func TestExtractMetrics(t *testing.T) {
	tests := []struct {
		name     string
		record   *domain.RawPlatformRecord
		validate func(t *testing.T, extracted ExtractedMetrics)
	}{
		{
			name: "Taxa de engajamento - interações sobre seguidores em percentual",
			record: &domain.RawPlatformRecord{
				FollowerCount: 100000,
				AvgLikes:      3800,
				AvgComments:   400,
			},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 4.2, extracted.Metrics.EngagementRate)
				assert.Equal(t, "100.0K", extracted.Metrics.FollowersFormatted)
			},
		},
		{
			name:   "Sem seguidores - taxa zero em vez de divisão por zero",
			record: &domain.RawPlatformRecord{AvgLikes: 500},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 0.0, extracted.Metrics.EngagementRate)
			},
		},
		{
			name: "Série com trimestre direto - usa o valor da série",
			record: &domain.RawPlatformRecord{
				GrowthSeries: map[int]int64{1: 100, 7: 700, 30: 3000, 90: 9500, 365: 40000},
			},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, int64(9500), extracted.Metrics.Growth.Quarterly)
				assert.Equal(t, int64(40000), extracted.Metrics.Growth.Yearly)
			},
		},
		{
			name: "Série sem trimestre - média entre projeção semanal e mensal",
			record: &domain.RawPlatformRecord{
				GrowthSeries: map[int]int64{7: 700, 30: 3000},
			},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				// round((700*13 + 3000*3) / 2) = round(9050)
				assert.Equal(t, int64(9050), extracted.Metrics.Growth.Quarterly)
			},
		},
		{
			name: "Cadência semanal perfeita - consistência máxima",
			record: &domain.RawPlatformRecord{
				PostDates: weeklyDates(time.Date(2024, 1, 8, 12, 0, 0, 0, time.UTC), 8),
			},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 100.0, extracted.Metrics.PostingConsistency)
				assert.Equal(t, 1.14, extracted.Metrics.PostsPerWeek)
			},
		},
		{
			name: "Menos de três publicações - consistência neutra 50",
			record: &domain.RawPlatformRecord{
				PostDates: []time.Time{
					time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2024, 1, 20, 0, 0, 0, 0, time.UTC),
				},
			},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 50.0, extracted.Metrics.PostingConsistency)
			},
		},
		{
			name:   "Sem publicações - cadência zero e consistência neutra",
			record: &domain.RawPlatformRecord{},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 0.0, extracted.Metrics.PostsPerWeek)
				assert.Equal(t, 50.0, extracted.Metrics.PostingConsistency)
			},
		},
		{
			name: "Presença - todos os grupos observados",
			record: &domain.RawPlatformRecord{
				FollowerCount: 10000,
				AvgLikes:      200,
				GrowthSeries:  map[int]int64{30: 500},
				PostDates:     weeklyDates(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 4),
			},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 1.0, extracted.Presence)
			},
		},
		{
			name:   "Presença - registro vazio",
			record: &domain.RawPlatformRecord{},
			validate: func(t *testing.T, extracted ExtractedMetrics) {
				assert.Equal(t, 0.0, extracted.Presence)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validate(t, ExtractMetrics(tt.record))
		})
	}
}

// weeklyDates gera n datas com intervalo exato de sete dias
func weeklyDates(start time.Time, n int) []time.Time {
	dates := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		dates = append(dates, start.AddDate(0, 0, 7*i))
	}
	return dates
}
