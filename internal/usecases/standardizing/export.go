package standardizing

import (
	"fmt"
	"strings"

	"github.com/vfg2006/kol-manager-api/internal/domain"
)

// ExportField é um par rótulo/valor do resumo achatado de um relatório
type ExportField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// FlattenReport serializa um relatório padronizado em um resumo achatado com
// rótulos legíveis, na ordem de leitura esperada pelos operadores
func FlattenReport(report *domain.StandardizedKOLReport) []ExportField {
	return []ExportField{
		{Label: "Influenciador", Value: report.Name},
		{Label: "Plataforma", Value: string(report.Platform)},
		{Label: "Perfil", Value: report.URL},
		{Label: "Seguidores", Value: report.Metrics.FollowersFormatted},
		{Label: "Taxa de engajamento", Value: fmt.Sprintf("%.2f%%", report.Metrics.EngagementRate)},
		{Label: "Publicações por semana", Value: fmt.Sprintf("%.1f", report.Metrics.PostsPerWeek)},
		{Label: "Crescimento mensal", Value: fmt.Sprintf("%+d", report.Metrics.Growth.Monthly)},
		{Label: "Nota geral", Value: string(report.Evaluation.Grade)},
		{Label: "Score ponderado", Value: fmt.Sprintf("%.2f", report.Evaluation.WeightedScore)},
		{Label: "Recomendação", Value: string(report.Evaluation.Recommendation)},
		{Label: "Mercado principal", Value: report.Audience.PrimaryMarket},
		{Label: "Poder de compra da audiência", Value: report.Audience.PurchasingPower},
		{Label: "Categorias de conteúdo", Value: strings.Join(report.Content.Categories, ", ")},
		{Label: "Risco geral", Value: string(report.Risk.OverallTier)},
		{Label: "Faixa de orçamento estimada", Value: report.Business.Recommendation.BudgetRange},
		{Label: "Confiabilidade dos dados", Value: fmt.Sprintf("%.0f%%", report.Metadata.Confidence*100)},
		{Label: "Gerado em", Value: report.Metadata.GeneratedAt.Format("2006-01-02 15:04")},
	}
}
