package handler

import (
	"net/http"

	"github.com/vfg2006/entry-services-api/infrastructure/integrator/transcription"
	"github.com/vfg2006/entry-services-api/internal/api/handler/router"
	"github.com/vfg2006/entry-services-api/internal/usecases/authenticating"
	"github.com/vfg2006/entry-services-api/internal/usecases/entrying"
	"github.com/vfg2006/entry-services-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
	}
}

// Persons retorna as rotas de persons e submissões de quantidades. Os
// caminhos seguem o contrato do app.
func Persons(service entrying.EntryManager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/persons",
			Method:      http.MethodGet,
			Handler:     ListPersons(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
		{
			Path:        "/v1/create-person",
			Method:      http.MethodPost,
			Handler:     CreatePerson(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
		{
			Path:        "/v1/person/:id/add-entry",
			Method:      http.MethodPost,
			Handler:     AddEntry(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
		{
			Path:        "/v1/person/:id/details",
			Method:      http.MethodGet,
			Handler:     GetPersonDetails(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
		{
			Path:        "/v1/person-delete/:id",
			Method:      http.MethodDelete,
			Handler:     DeletePerson(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
	}
}

func Transcription(service transcription.TranscriptionIntegrator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/transcribe",
			Method:      http.MethodPost,
			Handler:     Transcribe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.ActiveUser()},
		},
	}
}
