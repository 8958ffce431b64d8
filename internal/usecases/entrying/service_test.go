package entrying

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/entry-services-api/infrastructure/database/postgres"
	connmocks "github.com/vfg2006/entry-services-api/infrastructure/database/postgres/mocks"
	"github.com/vfg2006/entry-services-api/infrastructure/repository/mocks"
	"github.com/vfg2006/entry-services-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type entryServiceMocks struct {
	conn       *connmocks.MockConn
	personRepo *mocks.MockPersonRepository
	detailRepo *mocks.MockDetailRepository
}

func newEntryServiceTest(t *testing.T) (*Service, *entryServiceMocks) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &entryServiceMocks{
		conn:       connmocks.NewMockConn(ctrl),
		personRepo: mocks.NewMockPersonRepository(ctrl),
		detailRepo: mocks.NewMockDetailRepository(ctrl),
	}

	service := &Service{
		conn:       m.conn,
		personRepo: m.personRepo,
		detailRepo: m.detailRepo,
	}

	return service, m
}

// expectTransaction faz o mock executar o corpo da transação diretamente.
func (m *entryServiceMocks) expectTransaction() {
	m.conn.EXPECT().
		RunInTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sql.Tx) error) error {
			return fn(nil)
		})
}

func TestService_AddEntry_CreatesPersonWithFirstDetail(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	var createdPerson *domain.Person
	m.personRepo.EXPECT().
		CreatePerson(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, person *domain.Person) error {
			createdPerson = person
			return nil
		})

	var createdDetail *domain.Detail
	m.detailRepo.EXPECT().
		CreateDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, detail *domain.Detail) error {
			createdDetail = detail
			return nil
		})

	result, err := service.AddEntry(context.Background(), 7, "", &domain.EntryInput{
		Name:            "Ramesh",
		Item:            "Leite",
		Unit:            "L",
		SelectedDate:    "2024-05-10T14:30:00Z",
		QuantityEntries: []int64{10, 20},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Entry updated successfully", result.Message)
	assert.Equal(t, int64(30), result.TotalQuantity)
	assert.NotEmpty(t, result.PersonID)

	require.NotNil(t, createdPerson)
	assert.Equal(t, 7, createdPerson.UserID)
	assert.Equal(t, int64(30), createdPerson.TotalQuantity)

	require.NotNil(t, createdDetail)
	assert.Equal(t, createdPerson.ID, createdDetail.PersonID)
	assert.Equal(t, []int64{10, 20}, createdDetail.QuantityEntries)
	// compare_date normalizado para a meia-noite do dia escolhido
	assert.Equal(t, 0, createdDetail.CompareDate.Hour())
	assert.Equal(t, 10, createdDetail.CompareDate.Day())
}

func TestService_AddEntry_AppendsToSameDayDetail(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	m.personRepo.EXPECT().
		GetPersonByID(gomock.Any(), 7, "pers12345678").
		Return(&domain.Person{ID: "pers12345678", UserID: 7, TotalQuantity: 30}, nil)

	m.personRepo.EXPECT().
		AddToTotal(gomock.Any(), 7, "pers12345678", int64(5), gomock.Any()).
		Return(int64(35), nil)

	existing := &domain.Detail{
		ID:              "det123456789",
		PersonID:        "pers12345678",
		QuantityEntries: []int64{10, 20},
	}
	m.detailRepo.EXPECT().
		GetDetailByCompareDate(gomock.Any(), "pers12345678", gomock.Any()).
		Return(existing, nil)

	// Mesmo dia: agrega no balde existente, sem criar um novo detail
	m.detailRepo.EXPECT().
		AppendEntries(gomock.Any(), "det123456789", []int64{5}, gomock.Any()).
		Return(nil)

	result, err := service.AddEntry(context.Background(), 7, "pers12345678", &domain.EntryInput{
		Name:            "Ramesh",
		Unit:            "L",
		SelectedDate:    "2024-05-10T18:00:00Z",
		QuantityEntries: []int64{5},
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(35), result.TotalQuantity)
	assert.Equal(t, "pers12345678", result.PersonID)
}

func TestService_AddEntry_NewDayCreatesSecondDetail(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	m.personRepo.EXPECT().
		GetPersonByID(gomock.Any(), 7, "pers12345678").
		Return(&domain.Person{ID: "pers12345678", UserID: 7, TotalQuantity: 35}, nil)

	m.personRepo.EXPECT().
		AddToTotal(gomock.Any(), 7, "pers12345678", int64(7), gomock.Any()).
		Return(int64(42), nil)

	m.detailRepo.EXPECT().
		GetDetailByCompareDate(gomock.Any(), "pers12345678", gomock.Any()).
		Return(nil, nil)

	var createdDetail *domain.Detail
	m.detailRepo.EXPECT().
		CreateDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, detail *domain.Detail) error {
			createdDetail = detail
			return nil
		})

	result, err := service.AddEntry(context.Background(), 7, "pers12345678", &domain.EntryInput{
		Name:            "Ramesh",
		Unit:            "L",
		SelectedDate:    "2024-05-11T09:00:00Z",
		QuantityEntries: []int64{7},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(42), result.TotalQuantity)

	require.NotNil(t, createdDetail)
	assert.Equal(t, []int64{7}, createdDetail.QuantityEntries)
	assert.Equal(t, 11, createdDetail.CompareDate.Day())
}

func TestService_AddEntry_ParsesQuantityString(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	m.personRepo.EXPECT().
		CreatePerson(gomock.Any(), gomock.Any()).
		Return(nil)

	var createdDetail *domain.Detail
	m.detailRepo.EXPECT().
		CreateDetail(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ postgres.Queryer, detail *domain.Detail) error {
			createdDetail = detail
			return nil
		})

	result, err := service.AddEntry(context.Background(), 7, "", &domain.EntryInput{
		Name:         "Suresh",
		Unit:         "kg",
		SelectedDate: "2024-05-10",
		Quantity:     "10 20  5",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(35), result.TotalQuantity)
	require.NotNil(t, createdDetail)
	assert.Equal(t, []int64{10, 20, 5}, createdDetail.QuantityEntries)
}

func TestService_AddEntry_PersonNotFound(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	m.personRepo.EXPECT().
		GetPersonByID(gomock.Any(), 7, "inexistente1").
		Return(nil, nil)

	_, err := service.AddEntry(context.Background(), 7, "inexistente1", &domain.EntryInput{
		Name:            "Ramesh",
		Unit:            "L",
		SelectedDate:    "2024-05-10",
		QuantityEntries: []int64{5},
	})

	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
}

func TestService_AddEntry_ValidationErrors(t *testing.T) {
	// Nenhum mock é configurado: a validação acontece antes de
	// qualquer acesso ao banco
	tests := []struct {
		name  string
		input *domain.EntryInput
	}{
		{
			name: "nome vazio",
			input: &domain.EntryInput{
				Name:            "   ",
				Unit:            "L",
				SelectedDate:    "2024-05-10",
				QuantityEntries: []int64{5},
			},
		},
		{
			name: "unidade vazia",
			input: &domain.EntryInput{
				Name:            "Ramesh",
				Unit:            "",
				SelectedDate:    "2024-05-10",
				QuantityEntries: []int64{5},
			},
		},
		{
			name: "data vazia",
			input: &domain.EntryInput{
				Name:            "Ramesh",
				Unit:            "L",
				QuantityEntries: []int64{5},
			},
		},
		{
			name: "data inválida",
			input: &domain.EntryInput{
				Name:            "Ramesh",
				Unit:            "L",
				SelectedDate:    "10/05/2024",
				QuantityEntries: []int64{5},
			},
		},
		{
			name: "sem quantidades",
			input: &domain.EntryInput{
				Name:         "Ramesh",
				Unit:         "L",
				SelectedDate: "2024-05-10",
			},
		},
		{
			name: "quantidade negativa",
			input: &domain.EntryInput{
				Name:            "Ramesh",
				Unit:            "L",
				SelectedDate:    "2024-05-10",
				QuantityEntries: []int64{10, -5},
			},
		},
		{
			name: "string de quantidades sem segmentos válidos",
			input: &domain.EntryInput{
				Name:         "Ramesh",
				Unit:         "L",
				SelectedDate: "2024-05-10",
				Quantity:     "abc",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _ := newEntryServiceTest(t)

			_, err := service.AddEntry(context.Background(), 7, "", tt.input)

			require.Error(t, err)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_DeletePerson_CascadesInTransaction(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	m.personRepo.EXPECT().
		GetPersonByID(gomock.Any(), 7, "pers12345678").
		Return(&domain.Person{ID: "pers12345678", UserID: 7}, nil)

	// Details saem antes do person, dentro da mesma transação
	m.detailRepo.EXPECT().
		DeleteByPerson(gomock.Any(), "pers12345678").
		Return(int64(3), nil)

	m.personRepo.EXPECT().
		DeletePerson(gomock.Any(), 7, "pers12345678").
		Return(int64(1), nil)

	result, err := service.DeletePerson(context.Background(), 7, "pers12345678")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Entry and its details deleted successfully", result.Message)
}

func TestService_DeletePerson_NotFound(t *testing.T) {
	service, m := newEntryServiceTest(t)

	m.expectTransaction()

	m.personRepo.EXPECT().
		GetPersonByID(gomock.Any(), 7, "inexistente1").
		Return(nil, nil)

	_, err := service.DeletePerson(context.Background(), 7, "inexistente1")

	require.Error(t, err)
	assert.True(t, IsNotFoundError(err))
}

func TestService_ListDetails(t *testing.T) {
	service, m := newEntryServiceTest(t)

	day1 := time.Date(2024, 5, 10, 14, 30, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 11, 9, 0, 0, 0, time.UTC)

	m.personRepo.EXPECT().
		GetPersonByID(gomock.Any(), 7, "pers12345678").
		Return(&domain.Person{ID: "pers12345678", UserID: 7}, nil)

	m.detailRepo.EXPECT().
		ListDetailsByPerson("pers12345678").
		Return([]*domain.Detail{
			{ID: "det2", SelectedDate: day2},
			{ID: "det1", SelectedDate: day1},
		}, nil)

	details, err := service.ListDetails(7, "pers12345678")

	require.NoError(t, err)
	require.Len(t, details, 2)
	assert.Equal(t, "det2", details[0].ID)
}

func TestService_ListDetails_EmptyID(t *testing.T) {
	service, _ := newEntryServiceTest(t)

	_, err := service.ListDetails(7, "  ")

	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
