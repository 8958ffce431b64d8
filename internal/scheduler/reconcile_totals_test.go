package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/entry-services-api/infrastructure/repository/mocks"
	"github.com/vfg2006/entry-services-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newReconcileServiceTest(t *testing.T) (*ReconcileTotalsService, *mocks.MockPersonRepository, *mocks.MockDetailRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockPersonRepo := mocks.NewMockPersonRepository(ctrl)
	mockDetailRepo := mocks.NewMockDetailRepository(ctrl)

	service := &ReconcileTotalsService{
		personRepo: mockPersonRepo,
		detailRepo: mockDetailRepo,
	}

	return service, mockPersonRepo, mockDetailRepo
}

func TestReconcileTotalsService_ReconcileTotals(t *testing.T) {
	service, mockPersonRepo, mockDetailRepo := newReconcileServiceTest(t)

	mockPersonRepo.EXPECT().
		ListAllPersons().
		Return([]*domain.Person{
			{ID: "pers1", TotalQuantity: 35},
			{ID: "pers2", TotalQuantity: 50},
		}, nil)

	// pers1 está consistente, nada a corrigir
	mockDetailRepo.EXPECT().
		SumEntriesByPerson("pers1").
		Return(int64(35), nil)

	// pers2 divergiu: o total armazenado é corrigido para a soma derivada
	mockDetailRepo.EXPECT().
		SumEntriesByPerson("pers2").
		Return(int64(42), nil)

	mockPersonRepo.EXPECT().
		SetTotal("pers2", int64(42), gomock.Any()).
		Return(nil)

	err := service.ReconcileTotals()

	require.NoError(t, err)
	assert.Equal(t, 1, service.lastDriftCount)
}

func TestReconcileTotalsService_ReconcileTotals_ContinuesOnError(t *testing.T) {
	service, mockPersonRepo, mockDetailRepo := newReconcileServiceTest(t)

	mockPersonRepo.EXPECT().
		ListAllPersons().
		Return([]*domain.Person{
			{ID: "pers1", TotalQuantity: 10},
			{ID: "pers2", TotalQuantity: 20},
		}, nil)

	// Erro em um person não interrompe a reconciliação dos demais
	mockDetailRepo.EXPECT().
		SumEntriesByPerson("pers1").
		Return(int64(0), assert.AnError)

	mockDetailRepo.EXPECT().
		SumEntriesByPerson("pers2").
		Return(int64(25), nil)

	mockPersonRepo.EXPECT().
		SetTotal("pers2", int64(25), gomock.Any()).
		Return(nil)

	err := service.ReconcileTotals()

	require.NoError(t, err)
	assert.Equal(t, 1, service.lastDriftCount)
}

func TestReconcileTotalsService_SkipsWhenAlreadyRunning(t *testing.T) {
	service, _, _ := newReconcileServiceTest(t)

	service.syncRunning = true

	// Nenhuma chamada aos repositórios é esperada
	err := service.ReconcileTotals()

	assert.NoError(t, err)
}
