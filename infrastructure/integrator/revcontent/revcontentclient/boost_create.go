package revcontentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
)

type ResponseNewBoost struct {
	Data []map[string]interface{} `json:"data"`
}

// CreateBoost cria um boost na Revcontent e retorna o identificador gerado pela plataforma
func (c *RevcontentClient) CreateBoost(ctx context.Context, boost revcontentdomain.NewBoost) (string, error) {
	if !c.IsAuthenticated() {
		return "", revcontentdomain.NewNotAuthenticated()
	}

	payload, err := json.Marshal(boost)
	if err != nil {
		return "", fmt.Errorf("erro ao montar o corpo de criação do boost: %w", err)
	}

	url := c.cfg.Revcontent.BaseURL + "/stats/api/v1.0/boosts/add"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return "", err
	}

	req.Header = c.authHeaders()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return "", fmt.Errorf("erro ao executar requisição de criação do boost: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("erro ao ler resposta de criação do boost: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", c.handleErrorResponse(resp.StatusCode, body)
	}

	var response ResponseNewBoost
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON")
		return "", revcontentdomain.NewProtocolViolation("response does not contain campaign ID")
	}

	if len(response.Data) == 0 {
		return "", revcontentdomain.NewProtocolViolation("response does not contain campaign ID")
	}

	boostID := formatBoostID(response.Data[0]["id"])
	if boostID == "" {
		return "", revcontentdomain.NewProtocolViolation("response does not contain campaign ID")
	}

	return boostID, nil
}

// formatBoostID normaliza o identificador, que a API retorna ora como string ora como número
func formatBoostID(raw interface{}) string {
	switch value := raw.(type) {
	case nil:
		return ""
	case string:
		return value
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	}

	return fmt.Sprintf("%v", raw)
}
