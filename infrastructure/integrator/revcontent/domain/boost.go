package revcontentdomain

import (
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
)

// NewBoost contém os campos aceitos pela API da Revcontent na criação de um boost
type NewBoost struct {
	Name         string   `json:"name"`
	Budget       float64  `json:"budget"`
	BidAmount    float64  `json:"bid_amount"`
	CountryCodes []string `json:"country_codes"`
}

// BoostStats é um registro de performance retornado pela API, preservado na íntegra.
// A API alterna entre números e strings nos campos de métricas, então o acesso
// tipado passa pelos métodos auxiliares.
type BoostStats map[string]interface{}

// FloatMetric extrai uma métrica numérica do registro
func (s BoostStats) FloatMetric(key string) (float64, bool) {
	raw, ok := s[key]
	if !ok || raw == nil {
		return 0, false
	}

	switch value := raw.(type) {
	case float64:
		return value, true
	case int:
		return float64(value), true
	case int64:
		return float64(value), true
	case string:
		parsed, err := strconv.ParseFloat(value, 64)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"metric": key,
				"value":  value,
			}).Warn("Métrica com formato inesperado no registro de performance")
			return 0, false
		}

		return parsed, true
	}

	logrus.WithFields(logrus.Fields{
		"metric": key,
		"value":  raw,
	}).Warn("Métrica com tipo inesperado no registro de performance")

	return 0, false
}

// IntMetric extrai uma métrica inteira do registro
func (s BoostStats) IntMetric(key string) (int, bool) {
	value, ok := s.FloatMetric(key)
	if !ok {
		return 0, false
	}

	return int(value), true
}

// StringField extrai um campo textual do registro
func (s BoostStats) StringField(key string) string {
	raw, ok := s[key]
	if !ok || raw == nil {
		return ""
	}

	if value, ok := raw.(string); ok {
		return value
	}

	return fmt.Sprintf("%v", raw)
}
