package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/KauaBAG/IfControll/internal/dto"
	"github.com/KauaBAG/IfControll/internal/models"
	"github.com/KauaBAG/IfControll/internal/repository"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
)

const (
	// DefaultListLimit applies when the caller omits the limit parameter.
	DefaultListLimit = 100
	// MaxListLimit caps any requested window.
	MaxListLimit = 500
)

type manutencaoStore interface {
	GetByID(ctx context.Context, id int64) (*models.Manutencao, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, filter models.ManutencaoFilter) ([]models.Manutencao, int, error)
	Create(ctx context.Context, m *models.Manutencao) error
	Update(ctx context.Context, id int64, fields []repository.FieldUpdate) error
	Delete(ctx context.Context, id int64) error
}

type statusUpdateStore interface {
	Create(ctx context.Context, u *models.StatusUpdate) error
	ListByManutencao(ctx context.Context, manutencaoID int64) ([]models.StatusUpdate, error)
}

// CronologiaService owns the business rules of the maintenance chronology:
// plate normalisation, required-field checks, the partial-update whitelist
// and the automatic status history entries.
type CronologiaService struct {
	repo       manutencaoStore
	statusRepo statusUpdateStore
	cache      *CacheService
	validate   *validator.Validate
	logger     *zap.Logger
	now        func() time.Time
}

// NewCronologiaService constructs the service.
func NewCronologiaService(repo manutencaoStore, statusRepo statusUpdateStore, cache *CacheService, logger *zap.Logger) *CronologiaService {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &CronologiaService{
		repo:       repo,
		statusRepo: statusRepo,
		cache:      cache,
		validate:   v,
		logger:     logger,
		now:        time.Now,
	}
}

// Get fetches one case with its status history, oldest note first.
func (s *CronologiaService) Get(ctx context.Context, id int64) (*models.ManutencaoDetail, error) {
	m, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.ErrNotFound
		}
		return nil, err
	}
	updates, err := s.statusRepo.ListByManutencao(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.ManutencaoDetail{Manutencao: *m, Atualizacoes: updates}, nil
}

// List returns cases newest first plus the window metadata. The total in the
// metadata counts every match regardless of limit/offset.
func (s *CronologiaService) List(ctx context.Context, q dto.ListManutencoesQuery) ([]models.Manutencao, models.ListMeta, error) {
	filter := models.ManutencaoFilter{
		Placa:     strings.ToUpper(strings.TrimSpace(q.Placa)),
		Concluido: q.Concluido,
		Limit:     clampLimit(q.Limit),
		Offset:    q.Offset,
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	rows, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, models.ListMeta{}, err
	}
	return rows, models.ListMeta{Total: total, Limit: filter.Limit, Offset: filter.Offset}, nil
}

// Create validates and inserts a new case. When an initial status text comes
// along, it also seeds the first history entry, authored by the reporter or
// the system label.
func (s *CronologiaService) Create(ctx context.Context, req dto.CreateManutencaoRequest) (*models.Manutencao, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, requiredFieldError(err)
	}

	m := &models.Manutencao{
		Placa:         normalizePlaca(req.Placa),
		Situacao:      strings.TrimSpace(req.Situacao),
		QuemInformou:  req.QuemInformou,
		OndeEsta:      req.OndeEsta,
		StatusTexto:   req.StatusTexto,
		Previsao:      req.Previsao,
		DataConclusao: req.DataConclusao,
		Concluido:     req.Concluido,
	}
	if req.DataCadastro != nil && !req.DataCadastro.IsZero() {
		m.DataCadastro = *req.DataCadastro
	} else {
		m.DataCadastro = models.NewDateTime(s.now())
	}

	if err := s.repo.Create(ctx, m); err != nil {
		return nil, err
	}

	if req.StatusTexto != nil && strings.TrimSpace(*req.StatusTexto) != "" {
		entry := &models.StatusUpdate{
			ManutencaoID: m.ID,
			Texto:        *req.StatusTexto,
			Autor:        autorOuSistema(req.QuemInformou),
		}
		if err := s.statusRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	created, err := s.repo.GetByID(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, placasCacheKey)
	return created, nil
}

// updatableField pairs a wire name with the conversion applied to its raw
// JSON value before it reaches the UPDATE statement.
type updatableField struct {
	name    string
	convert func(raw json.RawMessage) (interface{}, error)
}

// updateWhitelist is the closed, ordered set of mutable columns. Anything
// else in the payload is ignored.
var updateWhitelist = []updatableField{
	{"placa", convertPlaca},
	{"situacao", convertString},
	{"quem_informou", convertNullString},
	{"onde_esta", convertNullString},
	{"status_texto", convertNullString},
	{"previsao", convertNullTime},
	{"data_conclusao", convertNullTime},
	{"concluido", convertFlag},
}

// Update applies the subset of whitelisted fields present in the payload.
// A payload with none of them is a validation error. A novo_status entry
// additionally appends to the history.
func (s *CronologiaService) Update(ctx context.Context, id int64, body map[string]json.RawMessage) (*models.Manutencao, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.ErrNotFound
	}

	fields := make([]repository.FieldUpdate, 0, len(updateWhitelist))
	for _, f := range updateWhitelist {
		raw, ok := body[f.name]
		if !ok {
			continue
		}
		value, err := f.convert(raw)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("Valor inválido para %s", f.name))
		}
		fields = append(fields, repository.FieldUpdate{Column: f.name, Value: value})
	}
	if len(fields) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "Nenhum campo para atualizar")
	}

	if err := s.repo.Update(ctx, id, fields); err != nil {
		return nil, err
	}

	if novo := stringField(body, "novo_status"); novo != "" {
		entry := &models.StatusUpdate{
			ManutencaoID: id,
			Texto:        novo,
			Autor:        stringFieldOr(body, "quem_informou", models.AutorSistema),
		}
		if err := s.statusRepo.Create(ctx, entry); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, placasCacheKey)
	return updated, nil
}

// Delete removes a case and, by cascade, its history.
func (s *CronologiaService) Delete(ctx context.Context, id int64) error {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return appErrors.ErrNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, placasCacheKey)
	return nil
}

// AddStatus appends one note to an existing case history.
func (s *CronologiaService) AddStatus(ctx context.Context, manutencaoID int64, req dto.CreateStatusUpdateRequest) (*models.StatusUpdate, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, requiredFieldError(err)
	}
	exists, err := s.repo.Exists(ctx, manutencaoID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "Manutenção não encontrada")
	}
	entry := &models.StatusUpdate{
		ManutencaoID: manutencaoID,
		Texto:        req.Texto,
		Autor:        autorOuSistema(req.Autor),
	}
	if err := s.statusRepo.Create(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func normalizePlaca(placa string) string {
	return strings.ToUpper(strings.TrimSpace(placa))
}

func autorOuSistema(autor *string) string {
	if autor != nil && strings.TrimSpace(*autor) != "" {
		return *autor
	}
	return models.AutorSistema
}

func requiredFieldError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return appErrors.Clone(appErrors.ErrValidation, "Campo obrigatório: "+fieldErrs[0].Field())
	}
	return appErrors.Clone(appErrors.ErrValidation, err.Error())
}

func clampLimit(limit int) int {
	if limit > MaxListLimit {
		return MaxListLimit
	}
	if limit < 0 {
		return 0
	}
	return limit
}

func convertPlaca(raw json.RawMessage) (interface{}, error) {
	s, err := decodeString(raw)
	if err != nil {
		return nil, err
	}
	return normalizePlaca(s), nil
}

func convertString(raw json.RawMessage) (interface{}, error) {
	return decodeString(raw)
}

func convertNullString(raw json.RawMessage) (interface{}, error) {
	var v *string
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func convertNullTime(raw json.RawMessage) (interface{}, error) {
	var v *models.DateTime
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	if v != nil && v.IsZero() {
		v = nil
	}
	return v, nil
}

func convertFlag(raw json.RawMessage) (interface{}, error) {
	var v models.Flag
	if err := v.UnmarshalJSON(raw); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeString(raw json.RawMessage) (string, error) {
	if string(raw) == "null" {
		return "", nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", err
	}
	return s, nil
}

func stringField(body map[string]json.RawMessage, name string) string {
	raw, ok := body[name]
	if !ok {
		return ""
	}
	s, err := decodeString(raw)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

func stringFieldOr(body map[string]json.RawMessage, name, fallback string) string {
	if s := stringField(body, name); s != "" {
		return s
	}
	return fallback
}
