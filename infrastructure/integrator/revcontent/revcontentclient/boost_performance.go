package revcontentclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"

	"github.com/sirupsen/logrus"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
)

// BoostPerformance consulta as estatísticas de um boost e devolve os registros como recebidos.
// A chamada é somente leitura: repetições retornam o mesmo resultado sem efeitos colaterais.
func (c *RevcontentClient) BoostPerformance(ctx context.Context, boostID string) ([]revcontentdomain.BoostStats, error) {
	if !c.IsAuthenticated() {
		return nil, revcontentdomain.NewNotAuthenticated()
	}

	endpoint, err := url.Parse(c.cfg.Revcontent.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("URL base da Revcontent inválida: %w", err)
	}

	endpoint.Path = path.Join(endpoint.Path, "/stats/api/v1.0/boosts/performance")

	query := endpoint.Query()
	query.Set("boost_id", boostID)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	req.Header = c.authHeaders()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, fmt.Errorf("erro ao executar requisição de performance: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta de performance: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp.StatusCode, body)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, revcontentdomain.NewProtocolViolation(`response does not contain "data" key`)
	}

	// A presença da chave "data" é obrigatória; a lista em si pode vir vazia
	raw, ok := payload["data"]
	if !ok {
		return nil, revcontentdomain.NewProtocolViolation(`response does not contain "data" key`)
	}

	var stats []revcontentdomain.BoostStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return nil, revcontentdomain.NewProtocolViolation("performance records are not in the expected format")
	}

	return stats, nil
}
