package archive

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	revcontentdomain "github.com/vfg2006/boost-manager-api/infrastructure/integrator/revcontent/domain"
	"github.com/vfg2006/boost-manager-api/internal/config"
	"github.com/vfg2006/boost-manager-api/pkg/utils"
)

// Archiver grava em disco o retorno bruto de performance para auditoria posterior
type Archiver interface {
	SaveStats(boostID string, stats []revcontentdomain.BoostStats) (string, error)
}

type fileArchiver struct {
	cfg *config.Config
}

func New(cfg *config.Config) Archiver {
	return &fileArchiver{
		cfg: cfg,
	}
}

func (a *fileArchiver) SaveStats(boostID string, stats []revcontentdomain.BoostStats) (string, error) {
	if !a.cfg.Archive.Enabled {
		logrus.WithField("boost_id", boostID).Debug("archive: stats archiving disabled, skipping write")
		return "", nil
	}

	if err := os.MkdirAll(a.cfg.Archive.Dir, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar o diretório de arquivamento: %w", err)
	}

	timestamp := time.Now().Format("2006-01-02_15-04-05")
	filename := fmt.Sprintf("stats_RESULT_%s_%s.json", boostID, timestamp)
	path := filepath.Join(a.cfg.Archive.Dir, filename)

	if err := os.WriteFile(path, []byte(utils.PrettyJson(stats)), 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar o arquivo de estatísticas: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"boost_id": boostID,
		"file":     path,
	}).Info("archive: performance stats written to file")

	return path, nil
}
