// Package socialdata integra o provedor externo de estatísticas de redes
// sociais. Interface estreita: recebe plataforma e URL/handle, devolve o
// payload bruto que o motor normaliza.
package socialdata

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/vfg2006/kol-manager-api/infrastructure/integrator/socialdata/statsclient"
	"github.com/vfg2006/kol-manager-api/internal/config"
	"github.com/vfg2006/kol-manager-api/internal/domain"
)

type SocialDataIntegrator interface {
	// FetchProfile busca as estatísticas brutas de um perfil pela URL
	FetchProfile(platform domain.Platform, profileURL string) (map[string]any, error)
}

type SocialDataService struct {
	cfg    *config.Config
	Client statsclient.Client
}

func New(cfg *config.Config, client statsclient.Client) SocialDataIntegrator {
	return &SocialDataService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *SocialDataService) FetchProfile(platform domain.Platform, profileURL string) (map[string]any, error) {
	handle, err := handleFromURL(profileURL)
	if err != nil {
		return nil, err
	}

	params := statsclient.ProfileStatsParams{
		Platform: string(platform),
		Handle:   handle,
	}

	payload, err := s.Client.GetProfileStats(params, &s.cfg.SocialData)
	if err != nil {
		return nil, err
	}

	return payload, nil
}

// handleFromURL extrai o handle do perfil do último segmento do caminho
func handleFromURL(profileURL string) (string, error) {
	parsed, err := url.Parse(profileURL)
	if err != nil {
		return "", fmt.Errorf("URL de perfil inválida: %w", err)
	}

	segments := strings.Split(strings.Trim(parsed.Path, "/"), "/")
	handle := segments[len(segments)-1]
	handle = strings.TrimPrefix(handle, "@")
	if handle == "" {
		return "", fmt.Errorf("URL de perfil sem handle: %s", profileURL)
	}

	return handle, nil
}
