package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain/authz"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
)

// AuditUseCase listagem da trilha de auditoria.
type AuditUseCase struct {
	repo repository.AuditLogRepository
}

// NewAuditUseCase constrói o caso de uso de auditoria.
func NewAuditUseCase(repo repository.AuditLogRepository) *AuditUseCase {
	return &AuditUseCase{repo: repo}
}

// List devolve os registros mais recentes primeiro, com filtros opcionais por
// autor, ação e entidade.
func (uc *AuditUseCase) List(ctx context.Context, filter repository.AuditLogFilter) ([]dto.AuditLogResponse, error) {
	entries, err := uc.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	out := make([]dto.AuditLogResponse, 0, len(entries))
	for _, e := range entries {
		item := dto.AuditLogResponse{
			ID:         e.ID,
			UserID:     e.UserID,
			Acao:       e.Acao,
			Entidade:   e.Entidade,
			EntidadeID: e.EntidadeID,
			Detalhes:   e.Detalhes,
			CriadoEm:   e.CriadoEm,
		}
		if e.UserEmail != "" || e.UserNome != "" {
			item.User = &dto.AuditLogUser{Email: e.UserEmail, Nome: e.UserNome}
		}
		out = append(out, item)
	}
	return out, nil
}

// registrarAuditoria grava um registro da trilha para uma ação mutadora.
// Best-effort: uma falha aqui é logada e NÃO desfaz a mutação principal.
// Ações sem identidade (escritas do sistema) não são auditadas.
func registrarAuditoria(ctx context.Context, repo repository.AuditLogRepository, identidade *authz.Identity, acao, entidade, entidadeID string, payload any) {
	if identidade == nil {
		return
	}
	detalhes, err := json.Marshal(payload)
	if err != nil {
		log.Warn().Err(err).Str("entidade", entidade).Msg("auditoria: falha ao serializar detalhes")
		return
	}
	entry := &entity.AuditLog{
		ID:         uuid.New().String(),
		UserID:     identidade.UserID,
		Acao:       acao,
		Entidade:   entidade,
		EntidadeID: entidadeID,
		Detalhes:   string(detalhes),
		CriadoEm:   time.Now(),
	}
	if err := repo.Create(ctx, entry); err != nil {
		log.Warn().Err(err).
			Str("acao", acao).
			Str("entidade", entidade).
			Str("entidade_id", entidadeID).
			Msg("auditoria: falha ao gravar registro")
	}
}
