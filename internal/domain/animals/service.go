package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
)

// DefaultWeight se usa cuando el peso viene vacío o no es positivo.
var DefaultWeight = decimal.NewFromInt(1)

const NoChip = "0"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Input son los campos editables de un animal (alta y actualización).
type Input struct {
	Code            string
	Name            string
	Chip            string
	GroupID         *int64
	FamilyCode      *int64
	Sex             string
	PalpationDate   *time.Time
	GestationTime   *string
	Weight          decimal.NullDecimal
	EarTag          *string
	BirthDate       *time.Time
	VaccinationDate *time.Time
	Status          Status
	Price           decimal.NullDecimal
}

// Normalize aplica las reglas de persistencia:
// chip vacío => "0", peso ausente o <= 0 => 1, status ausente => activo.
func Normalize(in Input) Input {
	in.Code = strings.TrimSpace(in.Code)
	in.Name = strings.TrimSpace(in.Name)
	in.Sex = strings.TrimSpace(in.Sex)

	in.Chip = strings.TrimSpace(in.Chip)
	if in.Chip == "" {
		in.Chip = NoChip
	}

	if !in.Weight.Valid || !in.Weight.Decimal.IsPositive() {
		in.Weight = decimal.NewNullDecimal(DefaultWeight)
	}

	if in.Status == 0 {
		in.Status = StatusActive
	}

	in.EarTag = trimOpt(in.EarTag)
	in.GestationTime = trimOpt(in.GestationTime)
	return in
}

func trimOpt(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

func (in Input) toAnimal() Animal {
	return Animal{
		Code:            in.Code,
		Name:            in.Name,
		Chip:            in.Chip,
		GroupID:         in.GroupID,
		FamilyCode:      in.FamilyCode,
		Sex:             Sex(in.Sex),
		PalpationDate:   in.PalpationDate,
		GestationTime:   in.GestationTime,
		Weight:          in.Weight,
		EarTag:          in.EarTag,
		BirthDate:       in.BirthDate,
		VaccinationDate: in.VaccinationDate,
		Status:          in.Status,
		Price:           in.Price,
		Exists:          true,
	}
}

func (s *Service) Create(ctx context.Context, in Input) (Animal, error) {
	in = Normalize(in)
	if in.Code == "" || in.Name == "" {
		return Animal{}, ErrInvalidInput
	}
	if !in.Status.Valid() {
		return Animal{}, ErrInvalidInput
	}

	a := in.toAnimal()
	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// Update reemplaza todos los campos del animal code (última escritura gana).
// Si in.Code viene vacío se conserva el código actual.
func (s *Service) Update(ctx context.Context, code string, in Input) (Animal, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Animal{}, ErrNotFound
	}

	in = Normalize(in)
	if in.Code == "" {
		in.Code = code
	}
	if !in.Status.Valid() {
		return Animal{}, ErrInvalidInput
	}

	a := in.toAnimal()
	if err := s.repo.Update(ctx, code, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

func (s *Service) GetByCode(ctx context.Context, code string) (Animal, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context) ([]Animal, error) {
	return s.repo.List(ctx)
}

func (s *Service) Delete(ctx context.Context, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return ErrNotFound
	}
	return s.repo.SoftDelete(ctx, code)
}
