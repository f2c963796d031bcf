package authz

import "github.com/jhoicas/empresas-api/internal/domain/entity"

// EmpresaVinculo é a visão de um vínculo empresa/cargo dentro da identidade.
type EmpresaVinculo struct {
	EmpresaID   string
	Cargo       string
	EmpresaNome string
}

// Identity é a visão autenticada de um usuário, reconstruída a cada request a
// partir dos claims do token. Não consulta o banco: um vínculo alterado depois
// da emissão só vale para tokens novos (tradeoff aceito de claims defasados).
type Identity struct {
	UserID   string
	Email    string
	Nome     string
	Role     string // role global: ADMIN | USER
	Empresas []EmpresaVinculo
}

// Autorizado decide se a identidade pode acessar uma rota que exige um dos
// cargos informados. Regras, na ordem:
//
//  1. lista vazia: rota sem restrição de cargo, permite;
//  2. role global ADMIN permite incondicionalmente;
//  3. permite se ALGUM vínculo tem cargo contido nos requeridos. A checagem
//     não é amarrada à empresa alvo da rota: um USER que é ADMIN da empresa A
//     passa em rota ADMIN que opera sobre a empresa B (comportamento herdado,
//     ver DESIGN.md antes de unificar com VinculadoAEmpresa);
//  4. caso contrário nega — inclui identidade sem role alguma no claim.
func (i Identity) Autorizado(cargosRequeridos ...string) bool {
	if len(cargosRequeridos) == 0 {
		return true
	}
	if i.Role == entity.RoleAdmin {
		return true
	}
	for _, v := range i.Empresas {
		for _, cargo := range cargosRequeridos {
			if v.Cargo == cargo {
				return true
			}
		}
	}
	return false
}

// VinculadoAEmpresa decide o acesso a recursos de uma empresa específica
// (listagem de produtos da empresa). Predicado deliberadamente distinto de
// Autorizado: aqui importa o empresa_id do vínculo e o cargo é irrelevante.
// ADMIN global passa sempre.
func (i Identity) VinculadoAEmpresa(empresaID string) bool {
	if i.Role == entity.RoleAdmin {
		return true
	}
	for _, v := range i.Empresas {
		if v.EmpresaID == empresaID {
			return true
		}
	}
	return false
}
