package revcontentclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/sirupsen/logrus"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
)

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
}

// Authenticate obtém um token de acesso via client credentials e o guarda para as próximas chamadas
func (c *RevcontentClient) Authenticate(ctx context.Context) error {
	payload, err := json.Marshal(tokenRequest{
		GrantType:    "client_credentials",
		ClientID:     c.cfg.Revcontent.ClientID,
		ClientSecret: c.cfg.Revcontent.ClientSecret,
	})
	if err != nil {
		return fmt.Errorf("erro ao montar o corpo da autenticação: %w", err)
	}

	url := c.cfg.Revcontent.BaseURL + "/oauth/token"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}

	// O endpoint de token só aceita o corpo JSON acompanhado deste Content-Type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return fmt.Errorf("erro ao executar requisição de autenticação: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta de autenticação: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		var token tokenResponse
		if err := json.Unmarshal(body, &token); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return revcontentdomain.NewProtocolViolation("access token not found in response")
		}

		if token.AccessToken == "" {
			return revcontentdomain.NewProtocolViolation("access token not found in response")
		}

		c.accessToken = token.AccessToken

		return nil

	case resp.StatusCode == http.StatusBadRequest:
		var authError revcontentdomain.AuthErrorBody
		if err := json.Unmarshal(body, &authError); err != nil {
			logrus.WithError(err).Debug("Corpo de erro de autenticação fora do formato esperado")
		}

		return revcontentdomain.NewBadRequest(
			fmt.Sprintf("authentication failed with 400 Bad Request: %s - %s", authError.Code(), authError.Description()),
			resp.StatusCode,
			string(body),
		)

	default:
		return revcontentdomain.NewRequestFailed(
			fmt.Sprintf("authentication failed: %d %s", resp.StatusCode, string(body)),
			resp.StatusCode,
			string(body),
		)
	}
}
