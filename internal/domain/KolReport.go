package domain

import "time"

// DataSource identifica a origem dos dados de um relatório padronizado
type DataSource string

const (
	DataSourceProviderAggregated DataSource = "provider_aggregated"
	DataSourceAIDerived          DataSource = "ai_derived"
	DataSourceManual             DataSource = "manual"
	DataSourceHybrid             DataSource = "hybrid"
)

// ReportSchemaVersion é a versão do esquema do relatório padronizado
const ReportSchemaVersion = "1.2"

// Grade é a classificação em letra derivada do weightedScore
type Grade string

const (
	GradeS      Grade = "S"
	GradeAPlus  Grade = "A+"
	GradeA      Grade = "A"
	GradeAMinus Grade = "A-"
	GradeBPlus  Grade = "B+"
	GradeB      Grade = "B"
	GradeBMinus Grade = "B-"
	GradeCPlus  Grade = "C+"
	GradeC      Grade = "C"
	GradeCMinus Grade = "C-"
	GradeD      Grade = "D"
)

// RecommendationTier é a faixa de recomendação derivada do weightedScore
type RecommendationTier string

const (
	TierStronglyRecommended RecommendationTier = "strongly_recommended"
	TierRecommended         RecommendationTier = "recommended"
	TierConditional         RecommendationTier = "conditional"
	TierNotRecommended      RecommendationTier = "not_recommended"
)

// RiskTier é a faixa de risco usada pela análise de risco e de conteúdo
type RiskTier string

const (
	RiskTierLow    RiskTier = "low"
	RiskTierMedium RiskTier = "medium"
	RiskTierHigh   RiskTier = "high"
)

// KolMetrics agrupa as métricas extraídas do registro normalizado
type KolMetrics struct {
	Followers          int64         `json:"followers"`
	FollowersFormatted string        `json:"followers_formatted"`
	EngagementRate     float64       `json:"engagement_rate"`
	AvgLikes           float64       `json:"avg_likes"`
	AvgComments        float64       `json:"avg_comments"`
	Growth             GrowthMetrics `json:"growth"`
	PostsPerWeek       float64       `json:"posts_per_week"`
	PostingConsistency float64       `json:"posting_consistency"`
}

// GrowthMetrics traz o crescimento de seguidores em cinco horizontes fixos
type GrowthMetrics struct {
	Daily     int64 `json:"daily"`
	Weekly    int64 `json:"weekly"`
	Monthly   int64 `json:"monthly"`
	Quarterly int64 `json:"quarterly"`
	Yearly    int64 `json:"yearly"`
}

// KolEvaluation agrupa as oito dimensões de avaliação e os agregados
type KolEvaluation struct {
	BrandFit        float64            `json:"brand_fit"`
	ContentQuality  float64            `json:"content_quality"`
	Engagement      float64            `json:"engagement"`
	AudienceProfile float64            `json:"audience_profile"`
	Professionalism float64            `json:"professionalism"`
	BusinessAbility float64            `json:"business_ability"`
	BrandSafety     float64            `json:"brand_safety"`
	Stability       float64            `json:"stability"`
	OverallScore    float64            `json:"overall_score"`
	WeightedScore   float64            `json:"weighted_score"`
	Grade           Grade              `json:"grade"`
	Recommendation  RecommendationTier `json:"recommendation"`
	WeightsVersion  string             `json:"weights_version"`
}

// AudienceAnalysis é o detalhamento de audiência do relatório
type AudienceAnalysis struct {
	PrimaryMarket   string             `json:"primary_market"`
	MarketShares    map[string]float64 `json:"market_shares"`
	AgeBrackets     map[string]float64 `json:"age_brackets"`
	GenderSplit     map[string]float64 `json:"gender_split"`
	Interests       []string           `json:"interests"`
	PurchasingPower string             `json:"purchasing_power"`
	QualityScore    float64            `json:"quality_score"`
}

// ContentSafety é o sub-bloco de segurança de marca da análise de conteúdo
type ContentSafety struct {
	RiskTier    RiskTier `json:"risk_tier"`
	Concerns    []string `json:"concerns"`
	SafetyScore float64  `json:"safety_score"`
}

// ContentAnalysis é o detalhamento de conteúdo do relatório
type ContentAnalysis struct {
	Categories     []string      `json:"categories"`
	Styles         []string      `json:"styles"`
	Creativity     float64       `json:"creativity"`
	Production     float64       `json:"production"`
	Storytelling   float64       `json:"storytelling"`
	Authenticity   float64       `json:"authenticity"`
	RecentActivity string        `json:"recent_activity"`
	Safety         ContentSafety `json:"safety"`
}

// MarketValue é a estimativa de valor comercial do influenciador
type MarketValue struct {
	CPM          float64 `json:"cpm"`
	CPV          float64 `json:"cpv"`
	CPE          float64 `json:"cpe"`
	ROIPotential float64 `json:"roi_potential"`
}

// BusinessRecommendation é o bloco de recomendação comercial
type BusinessRecommendation struct {
	CampaignTypes []string `json:"campaign_types"`
	BudgetRange   string   `json:"budget_range"`
	Notes         string   `json:"notes"`
}

// BusinessAnalysis é o detalhamento comercial do relatório
type BusinessAnalysis struct {
	MarketValue         MarketValue            `json:"market_value"`
	Responsiveness      float64                `json:"responsiveness"`
	ContentFlexibility  float64                `json:"content_flexibility"`
	DeadlineReliability float64                `json:"deadline_reliability"`
	PriceFairness       float64                `json:"price_fairness"`
	ClickPotential      float64                `json:"click_potential"`
	ConversionPotential float64                `json:"conversion_potential"`
	RepurchaseAffinity  float64                `json:"repurchase_affinity"`
	Recommendation      BusinessRecommendation `json:"recommendation"`
}

// RiskAnalysis é o detalhamento de risco do relatório
type RiskAnalysis struct {
	OverallTier    RiskTier `json:"overall_tier"`
	ContentRisk    float64  `json:"content_risk"`
	ReputationRisk float64  `json:"reputation_risk"`
	LegalRisk      float64  `json:"legal_risk"`
	BrandFitRisk   float64  `json:"brand_fit_risk"`
	Concerns       []string `json:"concerns"`
	Mitigations    []string `json:"mitigations"`
	Monitoring     []string `json:"monitoring"`
}

// ReportQuality é o indicador de qualidade em quatro partes do relatório
type ReportQuality struct {
	Completeness float64 `json:"completeness"`
	Freshness    float64 `json:"freshness"`
	Accuracy     float64 `json:"accuracy"`
	Consistency  float64 `json:"consistency"`
}

// ReportMetadata agrupa os metadados do relatório padronizado
type ReportMetadata struct {
	DataSource    DataSource    `json:"data_source"`
	GeneratedAt   time.Time     `json:"generated_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
	Quality       ReportQuality `json:"quality"`
	Confidence    float64       `json:"confidence"`
	SchemaVersion string        `json:"schema_version"`
}

// StandardizedKOLReport é o relatório canônico de um influenciador
type StandardizedKOLReport struct {
	KolID      string           `json:"kol_id"`
	Name       string           `json:"name"`
	Platform   Platform         `json:"platform"`
	URL        string           `json:"url"`
	Metrics    KolMetrics       `json:"metrics"`
	Evaluation KolEvaluation    `json:"evaluation"`
	Audience   AudienceAnalysis `json:"audience"`
	Content    ContentAnalysis  `json:"content"`
	Business   BusinessAnalysis `json:"business"`
	Risk       RiskAnalysis     `json:"risk"`
	Metadata   ReportMetadata   `json:"metadata"`
}
