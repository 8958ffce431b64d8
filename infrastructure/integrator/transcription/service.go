package transcription

import (
	"io"

	transcriptiondomain "github.com/vfg2006/entry-services-api/infrastructure/integrator/transcription/domain"
	"github.com/vfg2006/entry-services-api/infrastructure/integrator/transcription/transcriptionclient"
	"github.com/vfg2006/entry-services-api/internal/config"
)

type TranscriptionIntegrator interface {
	Transcribe(audio io.Reader, filename string) (*transcriptiondomain.Transcription, error)
}

type TranscriptionService struct {
	cfg    *config.Config
	Client transcriptionclient.Client
}

func New(cfg *config.Config, client transcriptionclient.Client) TranscriptionIntegrator {
	return &TranscriptionService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *TranscriptionService) Transcribe(audio io.Reader, filename string) (*transcriptiondomain.Transcription, error) {
	return s.Client.Transcribe(audio, filename)
}
