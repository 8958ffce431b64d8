package entrying

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/vfg2006/entry-services-api/infrastructure/database/postgres"
	"github.com/vfg2006/entry-services-api/infrastructure/repository"
	"github.com/vfg2006/entry-services-api/internal/domain"
	"github.com/vfg2006/entry-services-api/pkg/apiErrors"
	"github.com/vfg2006/entry-services-api/pkg/log"
	"github.com/vfg2006/entry-services-api/pkg/utils"
)

type EntryManager interface {
	AddEntry(ctx context.Context, userID int, personID string, input *domain.EntryInput) (*domain.EntryResult, error)
	ListPersons(userID int) ([]*domain.Person, error)
	ListDetails(userID int, personID string) ([]*domain.Detail, error)
	DeletePerson(ctx context.Context, userID int, personID string) (*domain.EntryResult, error)
}

type Service struct {
	conn       postgres.Conn
	personRepo repository.PersonRepository
	detailRepo repository.DetailRepository
}

func NewService(conn postgres.Conn, personRepo repository.PersonRepository, detailRepo repository.DetailRepository) EntryManager {
	return &Service{
		conn:       conn,
		personRepo: personRepo,
		detailRepo: detailRepo,
	}
}

// AddEntry registra quantidades para um person. Sem personID cria um novo
// person com seu primeiro detail; com personID incrementa o total e agrega
// as quantidades no balde do dia. Toda a mutação roda em uma transação.
func (s *Service) AddEntry(ctx context.Context, userID int, personID string, input *domain.EntryInput) (*domain.EntryResult, error) {
	entries := input.QuantityEntries
	if len(entries) == 0 && input.Quantity != "" {
		entries = utils.ParseQuantityString(input.Quantity)
	}

	name := strings.TrimSpace(input.Name)
	unit := strings.TrimSpace(input.Unit)

	// Validação completa antes de qualquer acesso ao banco
	if name == "" {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "Name is required")
	}
	if strings.TrimSpace(input.SelectedDate) == "" {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "Date is required")
	}
	if unit == "" {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "Unit is required")
	}
	if len(entries) == 0 {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "At least one quantity entry is required")
	}
	for _, entry := range entries {
		if entry < 0 {
			return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrInvalidFormat, "Quantity entries must not be negative")
		}
	}

	selectedDate, err := utils.ParseDate(input.SelectedDate)
	if err != nil {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrInvalidFormat, "Invalid date format")
	}

	compareDate := utils.NormalizeDate(*selectedDate)
	sum := utils.SumQuantities(entries)
	now := time.Now()

	if personID == "" {
		return s.createPerson(ctx, userID, name, strings.TrimSpace(input.Item), unit, *selectedDate, compareDate, entries, sum, now)
	}

	return s.appendToPerson(ctx, userID, personID, *selectedDate, compareDate, entries, sum, now)
}

func (s *Service) createPerson(
	ctx context.Context,
	userID int,
	name, item, unit string,
	selectedDate, compareDate time.Time,
	entries []int64,
	sum int64,
	now time.Time,
) (*domain.EntryResult, error) {
	personID, err := utils.GenerateID()
	if err != nil {
		return nil, NewEntryError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	detailID, err := utils.GenerateID()
	if err != nil {
		return nil, NewEntryError(err, apiErrors.ErrInternalServer, "Erro ao gerar identificador")
	}

	person := &domain.Person{
		ID:            personID,
		UserID:        userID,
		Name:          name,
		Item:          item,
		Unit:          unit,
		TotalQuantity: sum,
		CreatedAt:     now,
		ModifiedAt:    now,
	}

	detail := &domain.Detail{
		ID:              detailID,
		PersonID:        personID,
		CompareDate:     compareDate,
		SelectedDate:    selectedDate,
		QuantityEntries: entries,
		CreatedDate:     now,
		ModifiedDate:    now,
	}

	err = s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if err := s.personRepo.CreatePerson(tx, person); err != nil {
			return err
		}
		return s.detailRepo.CreateDetail(tx, detail)
	})
	if err != nil {
		log.L.WithError(err).WithField("user_id", userID).Error("Erro ao criar person")
		return nil, NewEntryError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, "Failed to update entry")
	}

	return &domain.EntryResult{
		Success:       true,
		Message:       "Entry updated successfully",
		PersonID:      personID,
		TotalQuantity: sum,
	}, nil
}

func (s *Service) appendToPerson(
	ctx context.Context,
	userID int,
	personID string,
	selectedDate, compareDate time.Time,
	entries []int64,
	sum int64,
	now time.Time,
) (*domain.EntryResult, error) {
	var total int64

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		person, err := s.personRepo.GetPersonByID(tx, userID, personID)
		if err != nil {
			return err
		}
		if person == nil {
			return NewEntryError(ErrPersonNotFound, apiErrors.ErrPersonNotFound, "Person not found")
		}

		// O total devolvido é sempre o valor armazenado após o incremento
		total, err = s.personRepo.AddToTotal(tx, userID, personID, sum, now)
		if err != nil {
			return err
		}

		// FOR UPDATE: appends concorrentes no mesmo dia serializam aqui
		detail, err := s.detailRepo.GetDetailByCompareDate(tx, personID, compareDate)
		if err != nil {
			return err
		}

		if detail != nil {
			// selected_date do balde não muda no append
			return s.detailRepo.AppendEntries(tx, detail.ID, entries, now)
		}

		detailID, err := utils.GenerateID()
		if err != nil {
			return err
		}

		return s.detailRepo.CreateDetail(tx, &domain.Detail{
			ID:              detailID,
			PersonID:        personID,
			CompareDate:     compareDate,
			SelectedDate:    selectedDate,
			QuantityEntries: entries,
			CreatedDate:     now,
			ModifiedDate:    now,
		})
	})
	if err != nil {
		if IsNotFoundError(err) {
			return nil, err
		}
		log.L.WithError(err).WithFields(log.Fields{"user_id": userID, "person_id": personID}).Error("Erro ao registrar entrada")
		return nil, NewEntryError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, "Failed to update entry")
	}

	return &domain.EntryResult{
		Success:       true,
		Message:       "Entry updated successfully",
		PersonID:      personID,
		TotalQuantity: total,
	}, nil
}

func (s *Service) ListPersons(userID int) ([]*domain.Person, error) {
	persons, err := s.personRepo.ListPersons(userID)
	if err != nil {
		return nil, NewEntryError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar persons")
	}

	return persons, nil
}

func (s *Service) ListDetails(userID int, personID string) ([]*domain.Detail, error) {
	if strings.TrimSpace(personID) == "" {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "Person ID is required")
	}

	person, err := s.personRepo.GetPersonByID(s.conn, userID, personID)
	if err != nil {
		return nil, NewEntryError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, "Erro ao consultar person")
	}
	if person == nil {
		return nil, NewEntryError(ErrPersonNotFound, apiErrors.ErrPersonNotFound, "Person not found")
	}

	details, err := s.detailRepo.ListDetailsByPerson(personID)
	if err != nil {
		return nil, NewEntryError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, "Erro ao listar details")
	}

	return details, nil
}

// DeletePerson remove o person e todos os seus details na mesma transação:
// ou tudo é removido, ou nada é.
func (s *Service) DeletePerson(ctx context.Context, userID int, personID string) (*domain.EntryResult, error) {
	if strings.TrimSpace(personID) == "" {
		return nil, NewEntryError(ErrInvalidEntry, apiErrors.ErrMissingRequiredData, "Person ID is required")
	}

	err := s.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		person, err := s.personRepo.GetPersonByID(tx, userID, personID)
		if err != nil {
			return err
		}
		if person == nil {
			return NewEntryError(ErrPersonNotFound, apiErrors.ErrPersonNotFound, "Person not found")
		}

		// Details primeiro, por causa da chave estrangeira
		if _, err := s.detailRepo.DeleteByPerson(tx, personID); err != nil {
			return err
		}

		affected, err := s.personRepo.DeletePerson(tx, userID, personID)
		if err != nil {
			return err
		}
		if affected == 0 {
			return NewEntryError(ErrPersonNotFound, apiErrors.ErrPersonNotFound, "Person not found")
		}

		return nil
	})
	if err != nil {
		if IsNotFoundError(err) {
			return nil, err
		}
		log.L.WithError(err).WithFields(log.Fields{"user_id": userID, "person_id": personID}).Error("Erro ao excluir person")
		return nil, NewEntryError(ErrStoreOperation, apiErrors.ErrDatabaseOperation, "Failed to delete entry")
	}

	return &domain.EntryResult{
		Success: true,
		Message: "Entry and its details deleted successfully",
	}, nil
}
