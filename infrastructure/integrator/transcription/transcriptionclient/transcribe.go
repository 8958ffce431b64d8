package transcriptionclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	transcriptiondomain "github.com/vfg2006/entry-services-api/infrastructure/integrator/transcription/domain"
	"github.com/vfg2006/entry-services-api/pkg/log"
	"github.com/vfg2006/entry-services-api/pkg/utils"
)

func (c *TranscriptionClient) Transcribe(audio io.Reader, filename string) (*transcriptiondomain.Transcription, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(c.config.Transcription.URL)
	if err != nil {
		return nil, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/transcribe")

	// Montar o corpo multipart com o arquivo de áudio.
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("audio", filename)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar o corpo multipart: %w", err)
	}

	if _, err := io.Copy(part, audio); err != nil {
		return nil, fmt.Errorf("erro ao copiar o áudio: %w", err)
	}

	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o corpo multipart: %w", err)
	}

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), &body)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	req.Header.Set("Authorization", "Bearer "+c.config.Transcription.AccessToken)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	transcription, err := parseTranscription(raw)
	if err != nil {
		return nil, err
	}

	log.L.WithField("transcription", utils.PrettyJson(transcription)).
		Debug("Resposta da transcrição processada")

	return transcription, nil
}

// parseTranscription remove as cercas de markdown que o serviço de
// transcrição às vezes devolve em torno do JSON (```json ... ```)
// antes de decodificar.
func parseTranscription(raw []byte) (*transcriptiondomain.Transcription, error) {
	text := strings.TrimSpace(string(raw))
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var transcription transcriptiondomain.Transcription
	if err := json.Unmarshal([]byte(text), &transcription); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return &transcription, nil
}
