package statsclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/kol-manager-api/internal/config"
)

type ProfileStatsParams struct {
	Platform string
	Handle   string
}

func (c *SocialDataClient) GetProfileStats(params ProfileStatsParams, socialDataConfig *config.SocialData) (map[string]any, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(socialDataConfig.URL)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao analisar a URL base do provedor")
	}
	endpoint.Path = path.Join(endpoint.Path, "/profiles/stats")

	// Adicionar parâmetros de consulta.
	query := endpoint.Query()
	query.Set("platform", params.Platform)
	query.Set("handle", params.Handle)
	endpoint.RawQuery = query.Encode()

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar a requisição ao provedor")
	}

	req.Header.Set("Authorization", "Bearer "+socialDataConfig.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar a requisição ao provedor")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição ao provedor falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON como payload opaco; a normalização é
	// responsabilidade do motor.
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "erro ao decodificar a resposta do provedor")
	}

	return payload, nil
}
