// Package scheduler contém os serviços de agendamento da API
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/entry-services-api/infrastructure/repository"
	"github.com/vfg2006/entry-services-api/internal/config"
)

type ReconcileTotalsConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// ReconcileTotalsService re-deriva periodicamente o total acumulado de cada
// person a partir dos details e corrige qualquer divergência. O caminho
// normal de escrita mantém o total correto; a reconciliação é a rede de
// proteção contra mutações manuais no banco.
type ReconcileTotalsService struct {
	scheduler           *gocron.Scheduler
	personRepo          repository.PersonRepository
	detailRepo          repository.DetailRepository
	config              ReconcileTotalsConfig
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastDriftCount      int
}

func NewReconcileTotalsService(
	personRepo repository.PersonRepository,
	detailRepo repository.DetailRepository,
	cfg *config.Config,
) *ReconcileTotalsService {
	reconcileConfig := ReconcileTotalsConfig{
		CronSchedule: cfg.Reconciliation.CronSchedule, // Default: 3h da manhã todos os dias
		SyncEnabled:  cfg.Reconciliation.Enabled,      // Default: desabilitado
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": reconcileConfig.CronSchedule,
	}).Info("Configuração do agendador de reconciliação de totais carregada")

	return &ReconcileTotalsService{
		scheduler:  scheduler,
		personRepo: personRepo,
		detailRepo: detailRepo,
		config:     reconcileConfig,
	}
}

func (s *ReconcileTotalsService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Cron de reconciliação de totais desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron de reconciliação de totais")

	// Agendar a reconciliação de totais
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.ReconcileTotals(); err != nil {
			logrus.WithError(err).Error("Erro na reconciliação de totais")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reconciliação de totais: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron de reconciliação de totais")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *ReconcileTotalsService) ReconcileTotals() error {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		logrus.Warn("Reconciliação de totais já está em execução")
		return nil
	}

	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	defer func() {
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
	}()

	logrus.Info("Iniciando reconciliação de totais")

	persons, err := s.personRepo.ListAllPersons()
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar lista de persons para reconciliação")
		return err
	}

	driftCount := 0
	for _, person := range persons {
		fixed, err := s.reconcilePerson(person.ID, person.TotalQuantity)
		if err != nil {
			logrus.WithError(err).WithField("person_id", person.ID).Error("Erro ao reconciliar person")
			continue
		}
		if fixed {
			driftCount++
		}
	}

	s.lastDriftCount = driftCount

	logrus.WithFields(logrus.Fields{
		"persons_checked": len(persons),
		"drift_corrected": driftCount,
	}).Info("Reconciliação de totais concluída")

	return nil
}

// reconcilePerson compara o total armazenado com a soma dos details e
// corrige quando divergem. Retorna true se houve correção.
func (s *ReconcileTotalsService) reconcilePerson(personID string, storedTotal int64) (bool, error) {
	derivedTotal, err := s.detailRepo.SumEntriesByPerson(personID)
	if err != nil {
		return false, err
	}

	if derivedTotal == storedTotal {
		return false, nil
	}

	logrus.WithFields(logrus.Fields{
		"person_id":     personID,
		"stored_total":  storedTotal,
		"derived_total": derivedTotal,
	}).Warn("Divergência de total detectada, corrigindo")

	if err := s.personRepo.SetTotal(personID, derivedTotal, time.Now()); err != nil {
		return false, err
	}

	return true, nil
}

// TriggerManualSync inicia manualmente uma reconciliação de totais
func (s *ReconcileTotalsService) TriggerManualSync() {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reconciliação de totais já em andamento, ignorando solicitação manual")
		return
	}
	s.syncMutex.Unlock()

	logrus.Info("Iniciando reconciliação manual de totais")
	go func() {
		if err := s.ReconcileTotals(); err != nil {
			logrus.WithError(err).Error("Erro na reconciliação manual de totais")
		}
	}()
}

// GetStatus retorna o status atual do agendador
func (s *ReconcileTotalsService) GetStatus() map[string]any {
	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_drift_corrected":   s.lastDriftCount,
	}
}
