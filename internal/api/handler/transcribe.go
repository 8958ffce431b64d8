package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/entry-services-api/infrastructure/integrator/transcription"
	"github.com/vfg2006/entry-services-api/pkg/apiErrors"
	"github.com/vfg2006/entry-services-api/pkg/utils"
)

// 10 MB cobre com folga um WAV de 16kHz mono de alguns minutos
const maxAudioSize = 10 << 20

type TranscribeResponse struct {
	Name            string  `json:"name"`
	Quantity        string  `json:"quantity"`
	QuantityEntries []int64 `json:"quantity_entries"`
}

// Transcribe recebe o áudio gravado no app, envia ao serviço de
// transcrição e devolve o resultado já com as quantidades parseadas
func Transcribe(service transcription.TranscriptionIntegrator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Transcribe")

		if err := r.ParseMultipartForm(maxAudioSize); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao processar o formulário multipart", nil)
			return
		}

		file, header, err := r.FormFile("audio")
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Arquivo de áudio não fornecido", nil)
			return
		}
		defer file.Close()

		result, err := service.Transcribe(file, header.Filename)
		if err != nil {
			logrus.WithError(err).Error("Erro ao transcrever áudio")
			apiErrors.WriteError(w, apiErrors.ErrExternalService, "Erro ao transcrever áudio", nil)
			return
		}

		response := TranscribeResponse{
			Name:            result.Name,
			Quantity:        result.Quantity,
			QuantityEntries: utils.ParseQuantityString(result.Quantity),
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(response)
		if err != nil {
			logrus.Error(err)
		}
	}
}
