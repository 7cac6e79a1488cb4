package domain

import "time"

// RawPlatformRecord é o registro canônico produzido pelo normalizador a partir
// do payload bruto de um provedor de dados. Imutável: cada ingestão cria um
// registro novo, sem referências compartilhadas.
type RawPlatformRecord struct {
	Platform    Platform `json:"platform"`
	ExternalID  string   `json:"external_id"`
	Username    string   `json:"username"`
	DisplayName string   `json:"display_name"`
	AvatarURL   string   `json:"avatar_url"`
	ProfileURL  string   `json:"profile_url"`

	// Totais brutos. FollowerCount é resolvido pela tabela de campos por
	// plataforma (ex.: YouTube usa subscriber_count, Facebook usa page_likes).
	FollowerCount int64 `json:"follower_count"`
	TotalPosts    int64 `json:"total_posts"`

	// Interações médias por publicação, quando o provedor informa
	AvgLikes    float64 `json:"avg_likes"`
	AvgComments float64 `json:"avg_comments"`

	// Série de crescimento de seguidores indexada por deslocamento em dias
	// (1 = último dia, 7 = última semana, 30 = último mês...)
	GrowthSeries map[int]int64 `json:"growth_series"`

	// Datas das publicações recentes, usadas para cadência de postagem
	PostDates []time.Time `json:"post_dates"`

	// Sinal externo de classificação (ex.: "A", "B+") e verificação
	GradeSignal string `json:"grade_signal"`
	Verified    bool   `json:"verified"`

	// Pistas de audiência e conteúdo fornecidas pelo provedor (opcionais)
	AudienceLocation string             `json:"audience_location"`
	MarketShares     map[string]float64 `json:"market_shares"`
	AgeBrackets      map[string]float64 `json:"age_brackets"`
	GenderSplit      map[string]float64 `json:"gender_split"`
	Interests        []string           `json:"interests"`
	ContentTopics    []string           `json:"content_topics"`
	ContentStyles    []string           `json:"content_styles"`
}

// HasGrowthData indica se o registro carrega alguma série de crescimento
func (r *RawPlatformRecord) HasGrowthData() bool {
	return len(r.GrowthSeries) > 0
}

// HasAudienceData indica se o provedor entregou pistas de audiência
func (r *RawPlatformRecord) HasAudienceData() bool {
	return len(r.MarketShares) > 0 || len(r.AgeBrackets) > 0 || len(r.GenderSplit) > 0
}
