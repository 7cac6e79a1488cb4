package normalizing

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

func TestNormalize(t *testing.T) {
	normalizer := NewService()

	tests := []struct {
		name        string
		payload     map[string]any
		platformTag string
		validate    func(t *testing.T, record *domain.RawPlatformRecord, err error)
	}{
		{
			name: "Perfil de Instagram completo - deve mapear o campo followers",
			payload: map[string]any{
				"id":        "ig-123",
				"url":       "https://instagram.com/kol",
				"username":  "kol",
				"followers": float64(15000),
				"avg_likes": float64(320.5),
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.PlatformInstagram, record.Platform)
				assert.Equal(t, "ig-123", record.ExternalID)
				assert.Equal(t, int64(15000), record.FollowerCount)
				assert.Equal(t, 320.5, record.AvgLikes)
			},
		},
		{
			name: "Canal de YouTube - seguidores vêm de subscriber_count",
			payload: map[string]any{
				"id":               "yt-9",
				"url":              "https://youtube.com/@canal",
				"subscriber_count": float64(1200000),
				"followers":        float64(5),
			},
			platformTag: "youtube",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(1200000), record.FollowerCount)
			},
		},
		{
			name: "Página de Facebook - seguidores vêm de page_likes",
			payload: map[string]any{
				"id":         "fb-7",
				"url":        "https://facebook.com/pagina",
				"page_likes": float64(48000),
			},
			platformTag: "facebook",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(48000), record.FollowerCount)
			},
		},
		{
			name: "Plataforma desconhecida - deve falhar com ErrUnsupportedPlatform",
			payload: map[string]any{
				"id":  "x-1",
				"url": "https://exemplo.com/perfil",
			},
			platformTag: "orkut",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.Nil(t, record)
				assert.True(t, IsUnsupportedPlatform(err))
			},
		},
		{
			name:        "Payload nulo - deve falhar com ErrMalformedInput",
			payload:     nil,
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.Nil(t, record)
				assert.True(t, IsMalformedInput(err))
			},
		},
		{
			name: "Payload sem id - deve apontar o campo ausente",
			payload: map[string]any{
				"url": "https://instagram.com/kol",
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.Nil(t, record)
				assert.True(t, IsMalformedInput(err))

				var normErr *NormalizationError
				assert.ErrorAs(t, err, &normErr)
				assert.Equal(t, "id", normErr.Field)
			},
		},
		{
			name: "Payload sem url - deve apontar o campo ausente",
			payload: map[string]any{
				"id": "ig-123",
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.Nil(t, record)

				var normErr *NormalizationError
				assert.ErrorAs(t, err, &normErr)
				assert.Equal(t, "url", normErr.Field)
			},
		},
		{
			name: "Fallback para profile_url quando url está ausente",
			payload: map[string]any{
				"id":          "tt-4",
				"profile_url": "https://tiktok.com/@kol",
			},
			platformTag: "tiktok",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "https://tiktok.com/@kol", record.ProfileURL)
			},
		},
		{
			name: "Números como string - devem ser convertidos",
			payload: map[string]any{
				"id":           "ig-55",
				"url":          "https://instagram.com/kol55",
				"followers":    "98000",
				"avg_comments": "12.75",
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(98000), record.FollowerCount)
				assert.Equal(t, 12.75, record.AvgComments)
			},
		},
		{
			name: "Contagens negativas - devem ser zeradas",
			payload: map[string]any{
				"id":          "tw-2",
				"url":         "https://twitter.com/kol",
				"followers":   float64(-100),
				"total_posts": float64(-3),
			},
			platformTag: "twitter",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(0), record.FollowerCount)
				assert.Equal(t, int64(0), record.TotalPosts)
			},
		},
		{
			name: "Série de crescimento com chaves string - deve indexar por dias",
			payload: map[string]any{
				"id":  "ig-77",
				"url": "https://instagram.com/kol77",
				"growth_series": map[string]any{
					"1":   float64(120),
					"7":   float64(800),
					"abc": float64(999),
				},
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, int64(120), record.GrowthSeries[1])
				assert.Equal(t, int64(800), record.GrowthSeries[7])
				assert.Len(t, record.GrowthSeries, 2)
			},
		},
		{
			name: "Datas de publicação - aceita RFC3339 e datas sem horário",
			payload: map[string]any{
				"id":  "ig-88",
				"url": "https://instagram.com/kol88",
				"post_dates": []any{
					"2024-01-10T15:04:05Z",
					"2024-01-17",
					"data-invalida",
				},
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Len(t, record.PostDates, 2)
				assert.Equal(t, time.Date(2024, 1, 17, 0, 0, 0, 0, time.UTC), record.PostDates[1])
			},
		},
		{
			name: "Dados demográficos - mapas e listas preservados",
			payload: map[string]any{
				"id":                "ig-99",
				"url":               "https://instagram.com/kol99",
				"audience_location": "BR",
				"age_brackets":      map[string]any{"18-24": float64(0.4), "25-34": float64(0.35)},
				"interests":         []any{"moda", "beleza", ""},
			},
			platformTag: "instagram",
			validate: func(t *testing.T, record *domain.RawPlatformRecord, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "BR", record.AudienceLocation)
				assert.Equal(t, 0.4, record.AgeBrackets["18-24"])
				assert.Equal(t, []string{"moda", "beleza"}, record.Interests)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			record, err := normalizer.Normalize(tt.payload, tt.platformTag)
			tt.validate(t, record, err)
		})
	}
}
