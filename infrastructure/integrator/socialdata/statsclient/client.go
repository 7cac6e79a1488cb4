package statsclient

import (
	"net/http"
	"time"

	"github.com/vfg2006/kol-manager-api/internal/config"
)

type Client interface {
	GetProfileStats(params ProfileStatsParams, socialDataConfig *config.SocialData) (map[string]any, error)
}

type SocialDataClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente do provedor de dados sociais
func NewClient(cfg *config.Config) Client {
	return &SocialDataClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
