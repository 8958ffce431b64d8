package transcriptionclient

import (
	"io"
	"net/http"
	"time"

	transcriptiondomain "github.com/vfg2006/entry-services-api/infrastructure/integrator/transcription/domain"
	"github.com/vfg2006/entry-services-api/internal/config"
)

type Client interface {
	Transcribe(audio io.Reader, filename string) (*transcriptiondomain.Transcription, error)
}

type TranscriptionClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente de transcrição.
func NewClient(cfg *config.Config) Client {
	return &TranscriptionClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
