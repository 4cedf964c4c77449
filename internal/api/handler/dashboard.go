package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/sociallearn/index-api/infrastructure/repository"
	"github.com/sociallearn/index-api/pkg/apiErrors"
)

func GetDashboardStats(dashboardRepo repository.DashboardRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := dashboardRepo.GetStats()
		if err != nil {
			logrus.WithError(err).Error("Erro ao montar o dashboard")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao montar o dashboard", nil)
			return
		}

		writeJSON(w, http.StatusOK, stats)
	}
}
