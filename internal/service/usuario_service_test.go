package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"

	"github.com/rodrigomoreli/brumas2/internal/apierror"
	"github.com/rodrigomoreli/brumas2/internal/dto"
	"github.com/rodrigomoreli/brumas2/internal/model"
)

// ── Criar ────────────────────────────────────────────────────────────────────

func TestCriarUsuario_PadroesEHash(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	resp, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Username: "joao", Email: "joao@brumas.com.br", Password: "senha123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "operacional", resp.Perfil)
	assert.True(t, resp.Ativo)

	criado := repo.users[resp.ID]
	assert.NotEqual(t, "senha123", criado.SenhaHash, "the plain password must never be stored")
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(criado.SenhaHash), []byte("senha123")))
}

func TestCriarUsuario_EmailDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "joao", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	_, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Username: "outro", Email: "JOAO@brumas.com.br", Password: "senha123",
	})

	assert.EqualError(t, err, "Já existe um usuário com este email no sistema.")
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestCriarUsuario_UsernameDuplicado(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "joao", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	_, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Username: "joao", Email: "novo@brumas.com.br", Password: "senha123",
	})

	assert.EqualError(t, err, "Já existe um usuário com este username no sistema.")
}

func TestCriarUsuario_PerfilExplicito(t *testing.T) {
	repo := newStubUsuarioRepo()
	svc := NewUsuarioService(repo)

	resp, err := svc.Criar(context.Background(), dto.CriarUsuarioRequest{
		Username: "chefe", Email: "chefe@brumas.com.br", Password: "senha123",
		Perfil: "administrativo",
	})

	assert.NoError(t, err)
	assert.Equal(t, "administrativo", resp.Perfil)
}

// ── Obter / Listar ───────────────────────────────────────────────────────────

func TestObterUsuario_Inexistente(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo())

	_, err := svc.Obter(context.Background(), 42)
	assert.EqualError(t, err, "Usuário com id 42 não encontrado.")
	assert.True(t, apierror.IsKind(err, apierror.KindNotFound))
}

func TestListarUsuarios(t *testing.T) {
	repo := newStubUsuarioRepo()
	seedUsuario(t, repo, "a", "senha123", model.PerfilOperacional, true)
	seedUsuario(t, repo, "b", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	users, err := svc.Listar(context.Background(), 0, 0)
	assert.NoError(t, err)
	assert.Len(t, users, 2)
}

// ── Atualizar ────────────────────────────────────────────────────────────────

func TestAtualizarUsuario_TrocaDeSenhaRehash(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "joao", "antiga123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	_, err := svc.Atualizar(context.Background(), u.ID, dto.AtualizarUsuarioRequest{
		Password: dto.OptionalOf("nova456"),
	})

	assert.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(repo.users[u.ID].SenhaHash), []byte("nova456")))
}

func TestAtualizarUsuario_CamposAusentesFicam(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "joao", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	resp, err := svc.Atualizar(context.Background(), u.ID, dto.AtualizarUsuarioRequest{
		NomeCompleto: dto.OptionalOf("João da Silva"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "João da Silva", resp.NomeCompleto)
	assert.Equal(t, "joao", resp.Username, "untouched fields keep their value")
}

func TestAtualizarUsuario_Desativar(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "joao", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	resp, err := svc.Atualizar(context.Background(), u.ID, dto.AtualizarUsuarioRequest{
		Ativo: dto.OptionalOf(false),
	})

	assert.NoError(t, err)
	assert.False(t, resp.Ativo)
}

func TestAtualizarUsuario_PerfilInvalido(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "joao", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	_, err := svc.Atualizar(context.Background(), u.ID, dto.AtualizarUsuarioRequest{
		Perfil: dto.OptionalOf("gerente"),
	})

	assert.True(t, apierror.IsKind(err, apierror.KindValidation))
}

// ── Deletar ──────────────────────────────────────────────────────────────────

func TestDeletarUsuario_ProibidoDeletarASiMesmo(t *testing.T) {
	repo := newStubUsuarioRepo()
	u := seedUsuario(t, repo, "chefe", "senha123", model.PerfilAdministrativo, true)
	svc := NewUsuarioService(repo)

	err := svc.Deletar(context.Background(), u.ID, u)
	assert.EqualError(t, err, "Administradores não podem deletar a si mesmos.")
	assert.Contains(t, repo.users, u.ID)
}

func TestDeletarUsuario_Cascata(t *testing.T) {
	repo := newStubUsuarioRepo()
	chefe := seedUsuario(t, repo, "chefe", "senha123", model.PerfilAdministrativo, true)
	alvo := seedUsuario(t, repo, "alvo", "senha123", model.PerfilOperacional, true)
	svc := NewUsuarioService(repo)

	assert.NoError(t, svc.Deletar(context.Background(), alvo.ID, chefe))
	assert.NotContains(t, repo.users, alvo.ID)
}

func TestDeletarUsuario_CadastrosEmUso(t *testing.T) {
	repo := newStubUsuarioRepo()
	chefe := seedUsuario(t, repo, "chefe", "senha123", model.PerfilAdministrativo, true)
	alvo := seedUsuario(t, repo, "alvo", "senha123", model.PerfilOperacional, true)
	repo.emUso = true
	svc := NewUsuarioService(repo)

	err := svc.Deletar(context.Background(), alvo.ID, chefe)
	assert.EqualError(t, err, "Usuário possui cadastros em uso por eventos de outros usuários.")
	assert.True(t, apierror.IsKind(err, apierror.KindConflict))
}

func TestDeletarUsuario_Inexistente(t *testing.T) {
	repo := newStubUsuarioRepo()
	chefe := seedUsuario(t, repo, "chefe", "senha123", model.PerfilAdministrativo, true)
	svc := NewUsuarioService(repo)

	err := svc.Deletar(context.Background(), 42, chefe)
	assert.EqualError(t, err, "Usuário com id 42 não encontrado.")
}

// ── Me ───────────────────────────────────────────────────────────────────────

func TestMe_EspelhaOUsuarioAtual(t *testing.T) {
	svc := NewUsuarioService(newStubUsuarioRepo())
	u := admin()

	resp := svc.Me(u)
	assert.Equal(t, u.ID, resp.ID)
	assert.Equal(t, "admin", resp.Username)
	assert.Equal(t, "administrativo", resp.Perfil)
}
