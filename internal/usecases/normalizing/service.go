// Package normalizing converte payloads heterogêneos dos provedores de dados
// no registro canônico RawPlatformRecord usado por todo o motor.
package normalizing

import (
	"strconv"
	"time"

	"github.com/vfg2006/kol-manager-api/internal/domain"
)

// followerFieldByPlatform resolve qual campo bruto carrega a contagem de
// seguidores em cada plataforma. Tabela explícita em vez de ramificações
// espalhadas pelos chamadores.
var followerFieldByPlatform = map[domain.Platform]string{
	domain.PlatformYouTube:   "subscriber_count",
	domain.PlatformInstagram: "followers",
	domain.PlatformFacebook:  "page_likes",
	domain.PlatformTikTok:    "followers",
	domain.PlatformTwitter:   "followers",
}

// Normalizer define a interface do normalizador de registros brutos
type Normalizer interface {
	// Normalize mapeia um payload opaco de provedor para o registro canônico
	Normalize(payload map[string]any, platformTag string) (*domain.RawPlatformRecord, error)
}

type Service struct{}

func NewService() Normalizer {
	return &Service{}
}

// Normalize mapeia um payload opaco de provedor para o registro canônico.
// Campos desconhecidos ou ausentes viram zero/vazio; tag de plataforma fora
// do conjunto suportado e identidade ausente são erros fatais.
func (s *Service) Normalize(payload map[string]any, platformTag string) (*domain.RawPlatformRecord, error) {
	platform, ok := domain.ParsePlatform(platformTag)
	if !ok {
		return nil, &NormalizationError{Err: ErrUnsupportedPlatform, Platform: platformTag}
	}

	if payload == nil {
		return nil, &NormalizationError{Err: ErrMalformedInput, Platform: string(platform), Field: "payload"}
	}

	externalID := asString(payload["id"])
	profileURL := asString(payload["url"])
	if profileURL == "" {
		profileURL = asString(payload["profile_url"])
	}

	// Identidade é obrigatória: sem id e url não há como referenciar o KOL
	if externalID == "" {
		return nil, &NormalizationError{Err: ErrMalformedInput, Platform: string(platform), Field: "id"}
	}
	if profileURL == "" {
		return nil, &NormalizationError{Err: ErrMalformedInput, Platform: string(platform), Field: "url"}
	}

	record := &domain.RawPlatformRecord{
		Platform:         platform,
		ExternalID:       externalID,
		Username:         asString(payload["username"]),
		DisplayName:      asString(payload["display_name"]),
		AvatarURL:        asString(payload["avatar_url"]),
		ProfileURL:       profileURL,
		FollowerCount:    asInt64(payload[followerFieldByPlatform[platform]]),
		TotalPosts:       asInt64(payload["total_posts"]),
		AvgLikes:         asFloat(payload["avg_likes"]),
		AvgComments:      asFloat(payload["avg_comments"]),
		GrowthSeries:     asGrowthSeries(payload["growth_series"]),
		PostDates:        asDates(payload["post_dates"]),
		GradeSignal:      asString(payload["grade"]),
		Verified:         asBool(payload["verified"]),
		AudienceLocation: asString(payload["audience_location"]),
		MarketShares:     asFloatMap(payload["market_shares"]),
		AgeBrackets:      asFloatMap(payload["age_brackets"]),
		GenderSplit:      asFloatMap(payload["gender_split"]),
		Interests:        asStrings(payload["interests"]),
		ContentTopics:    asStrings(payload["content_topics"]),
		ContentStyles:    asStrings(payload["content_styles"]),
	}

	// Contagens negativas não fazem sentido; tratar como ausentes
	if record.FollowerCount < 0 {
		record.FollowerCount = 0
	}
	if record.TotalPosts < 0 {
		record.TotalPosts = 0
	}

	return record, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asInt64 aceita os tipos numéricos que os decoders JSON costumam produzir
func asInt64(v any) int64 {
	switch n := v.(type) {
	case int64:
		return n
	case int:
		return int64(n)
	case float64:
		return int64(n)
	case string:
		parsed, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case string:
		parsed, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

func asStrings(v any) []string {
	switch list := v.(type) {
	case []string:
		out := make([]string, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]string, 0, len(list))
		for _, item := range list {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}

func asFloatMap(v any) map[string]float64 {
	switch m := v.(type) {
	case map[string]float64:
		out := make(map[string]float64, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out
	case map[string]any:
		out := make(map[string]float64, len(m))
		for k, val := range m {
			out[k] = asFloat(val)
		}
		return out
	}
	return nil
}

// asGrowthSeries converte a série bruta indexada por deslocamento em dias.
// Chaves não numéricas são ignoradas.
func asGrowthSeries(v any) map[int]int64 {
	switch m := v.(type) {
	case map[int]int64:
		out := make(map[int]int64, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out
	case map[string]any:
		out := make(map[int]int64, len(m))
		for k, val := range m {
			offset, err := strconv.Atoi(k)
			if err != nil {
				continue
			}
			out[offset] = asInt64(val)
		}
		return out
	}
	return nil
}

func asDates(v any) []time.Time {
	switch list := v.(type) {
	case []time.Time:
		out := make([]time.Time, len(list))
		copy(out, list)
		return out
	case []any:
		out := make([]time.Time, 0, len(list))
		for _, item := range list {
			s, ok := item.(string)
			if !ok {
				continue
			}
			parsed, err := time.Parse(time.RFC3339, s)
			if err != nil {
				// Aceitar também datas sem horário
				parsed, err = time.Parse("2006-01-02", s)
				if err != nil {
					continue
				}
			}
			out = append(out, parsed)
		}
		return out
	}
	return nil
}
