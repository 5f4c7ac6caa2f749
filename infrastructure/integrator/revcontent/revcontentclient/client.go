package revcontentclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/internal/config"
)

type Client interface {
	Authenticate(ctx context.Context) error
	CreateBoost(ctx context.Context, boost revcontentdomain.NewBoost) (string, error)
	BoostPerformance(ctx context.Context, boostID string) ([]revcontentdomain.BoostStats, error)
	IsAuthenticated() bool
}

// RevcontentClient fala com a API REST da Revcontent usando um único token por sessão.
// O token é obtido por Authenticate e sobrescrito a cada nova autenticação; não há
// renovação automática. Escritas concorrentes devem ser serializadas pelo chamador.
type RevcontentClient struct {
	cfg         *config.Config
	httpClient  *http.Client
	accessToken string
}

func NewClient(cfg *config.Config) Client {
	return &RevcontentClient{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsAuthenticated indica se o cliente já possui um token de acesso
func (c *RevcontentClient) IsAuthenticated() bool {
	return c.accessToken != ""
}

// authHeaders monta os cabeçalhos autenticados no momento da chamada, sempre com o token atual
func (c *RevcontentClient) authHeaders() http.Header {
	headers := http.Header{}
	headers.Set("Authorization", "Bearer "+c.accessToken)
	headers.Set("Content-Type", "application/json")
	headers.Set("Cache-Control", "no-cache")

	return headers
}

// handleErrorResponse classifica respostas de falha dos endpoints de boosts
func (c *RevcontentClient) handleErrorResponse(statusCode int, body []byte) error {
	if statusCode == http.StatusBadRequest {
		var errorList revcontentdomain.ErrorListBody
		if err := json.Unmarshal(body, &errorList); err == nil && len(errorList.Errors) > 0 {
			return revcontentdomain.NewBadRequest(
				fmt.Sprintf("400 Bad Request: %s", strings.Join(errorList.Messages(), "; ")),
				statusCode,
				string(body),
			)
		}

		// Corpo fora do formato de lista de erros: repassa o texto bruto
		return revcontentdomain.NewBadRequest(
			fmt.Sprintf("400 Bad Request: %s", string(body)),
			statusCode,
			string(body),
		)
	}

	return revcontentdomain.NewRequestFailed(
		fmt.Sprintf("API request failed: %d %s", statusCode, string(body)),
		statusCode,
		string(body),
	)
}
