package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/entry-services-api/internal/domain"
	"github.com/vfg2006/entry-services-api/internal/usecases/entrying"
	"github.com/vfg2006/entry-services-api/pkg/apiErrors"
	"github.com/vfg2006/entry-services-api/pkg/middleware"
)

// ListPersons retorna os persons do usuário logado, mais recentes primeiro
func ListPersons(service entrying.EntryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		persons, err := service.ListPersons(userClaims.UserID)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		if persons == nil {
			persons = []*domain.Person{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(persons)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// CreatePerson registra a primeira submissão de um novo person
func CreatePerson(service entrying.EntryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreatePerson")

		submitEntry(service, "")(w, r)
	}
}

// AddEntry agrega quantidades a um person existente
func AddEntry(service entrying.EntryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - AddEntry")

		personID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if personID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do person não fornecido", nil)
			return
		}

		submitEntry(service, personID)(w, r)
	}
}

// submitEntry é o caminho comum de criação e agregação: decodifica a
// submissão, delega ao usecase e devolve o resultado tipado.
func submitEntry(service entrying.EntryManager, personID string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		var input domain.EntryInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Erro ao decodificar requisição", nil)
			return
		}

		result, err := service.AddEntry(r.Context(), userClaims.UserID, personID, &input)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(result)
		if err != nil {
			logrus.Error(err)
		}
	}
}

// GetPersonDetails retorna os details de um person, mais recentes primeiro
func GetPersonDetails(service entrying.EntryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		personID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		details, err := service.ListDetails(userClaims.UserID, personID)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		if details == nil {
			details = []*domain.Detail{}
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(details)
		if err != nil {
			logrus.Error(err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
			return
		}
	}
}

// DeletePerson remove um person e todos os seus details
func DeletePerson(service entrying.EntryManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeletePerson")

		userClaims, ok := r.Context().Value(middleware.ContextKeyUser).(*domain.Claims)
		if !ok {
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
			return
		}

		personID := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if personID == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "ID do person não fornecido", nil)
			return
		}

		result, err := service.DeletePerson(r.Context(), userClaims.UserID, personID)
		if err != nil {
			handleEntryError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(w).Encode(result)
		if err != nil {
			logrus.Error(err)
		}
	}
}

// handleEntryError converte erros do usecase em respostas padronizadas;
// nenhum erro cru chega ao cliente
func handleEntryError(w http.ResponseWriter, err error) {
	var entryErr *entrying.EntryError
	if errors.As(err, &entryErr) {
		apiErrors.WriteError(w, entryErr.Code, entryErr.Details, nil)
		return
	}

	logrus.Error(err)
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar requisição", nil)
}
