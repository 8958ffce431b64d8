package middleware

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/entry-services-api/internal/domain"
	"github.com/vfg2006/entry-services-api/pkg/apiErrors"
)

// ActiveUser restringe a rota a usuários autenticados e ativos. Todos os
// dados de pesagem são particionados pelo usuário dono, então basta a conta
// estar ativa — não há papéis distintos neste sistema.
func ActiveUser() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userClaims, ok := r.Context().Value(ContextKeyUser).(*domain.Claims)

			if !ok {
				logrus.Warning("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			if !userClaims.UserActive {
				logrus.Warningf("Acesso negado para usuário desativado ID=%d", userClaims.UserID)
				apiErrors.WriteError(w, apiErrors.ErrUserDisabled, "Conta desativada", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
