package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/empresas-api/internal/application/dto"
	"github.com/jhoicas/empresas-api/internal/domain"
	"github.com/jhoicas/empresas-api/internal/domain/entity"
	"github.com/jhoicas/empresas-api/internal/domain/repository"
	"github.com/jhoicas/empresas-api/pkg/jwt"
)

// TxRunner executa o cadastro de usuário comum numa transação: o User e o
// vínculo EmpresaUsuario são gravados juntos ou nenhum é.
type TxRunner interface {
	RunSignup(ctx context.Context, fn func(
		users repository.UserRepository,
		vinculos repository.EmpresaUsuarioRepository,
	) error) error
}

// AuthUseCase casos de uso de autenticação: signup e signin.
type AuthUseCase struct {
	userRepo    repository.UserRepository
	vinculoRepo repository.EmpresaUsuarioRepository
	tx          TxRunner
	jwtCfg      jwt.Config
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, vinculoRepo repository.EmpresaUsuarioRepository, tx TxRunner, jwtCfg jwt.Config) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, vinculoRepo: vinculoRepo, tx: tx, jwtCfg: jwtCfg}
}

// Signup cadastra um usuário. Role ADMIN cria só o User, sem vínculo. Role
// USER (ou omitida) exige EmpresaID e Cargo e grava User + vínculo na mesma
// transação. A senha é hasheada com bcrypt antes de persistir; o texto plano
// nunca é gravado nem logado.
func (uc *AuthUseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.UserResponse, error) {
	existing, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        in.Email,
		PasswordHash: string(hash),
		Nome:         in.Nome,
		Role:         in.Role,
		CriadoEm:     time.Now(),
	}

	// Super usuário global: sem vínculo com empresa.
	if in.Role == entity.RoleAdmin {
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}
		return toUserResponse(user, nil), nil
	}

	// Usuário comum precisa de empresa e cargo.
	user.Role = entity.RoleUser
	if in.EmpresaID == "" || in.Cargo == "" {
		return nil, domain.ErrVinculoObrigatorio
	}

	vinculo := &entity.EmpresaUsuario{
		ID:        uuid.New().String(),
		UserID:    user.ID,
		EmpresaID: in.EmpresaID,
		Cargo:     in.Cargo,
		CriadoEm:  user.CriadoEm,
	}
	err = uc.tx.RunSignup(ctx, func(users repository.UserRepository, vinculos repository.EmpresaUsuarioRepository) error {
		if err := users.Create(ctx, user); err != nil {
			return err
		}
		return vinculos.Create(ctx, vinculo)
	})
	if err != nil {
		return nil, err
	}
	return toUserResponse(user, []*entity.EmpresaUsuario{vinculo}), nil
}

// Signin verifica email/senha e emite o token com os claims da identidade:
// sub, email, nome, role e a lista de vínculos com o nome de cada empresa.
// Email inexistente e senha incorreta produzem o MESMO erro, para não vazar
// qual parte falhou.
func (uc *AuthUseCase) Signin(ctx context.Context, in dto.SigninRequest) (*dto.SigninResponse, error) {
	user, err := uc.userRepo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	vinculos, err := uc.vinculoRepo.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	empresas := make([]jwt.EmpresaClaim, 0, len(vinculos))
	for _, v := range vinculos {
		empresas = append(empresas, jwt.EmpresaClaim{
			EmpresaID:   v.EmpresaID,
			Cargo:       v.Cargo,
			EmpresaNome: v.EmpresaNome,
		})
	}

	token, err := jwt.Generate(uc.jwtCfg, user.ID, user.Email, user.Nome, user.Role, empresas)
	if err != nil {
		return nil, err
	}
	return &dto.SigninResponse{
		AccessToken: token,
		User:        *toUserResponse(user, vinculos),
	}, nil
}

func toUserResponse(u *entity.User, vinculos []*entity.EmpresaUsuario) *dto.UserResponse {
	if u == nil {
		return nil
	}
	out := &dto.UserResponse{
		ID:       u.ID,
		Email:    u.Email,
		Nome:     u.Nome,
		Role:     u.Role,
		CriadoEm: u.CriadoEm,
	}
	for _, v := range vinculos {
		out.Empresas = append(out.Empresas, dto.EmpresaVinculoResponse{
			EmpresaID:   v.EmpresaID,
			Cargo:       v.Cargo,
			EmpresaNome: v.EmpresaNome,
		})
	}
	return out
}
