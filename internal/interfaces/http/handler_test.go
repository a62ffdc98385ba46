package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/BusinessHub-api/internal/application/dto"
	"github.com/jhoicas/BusinessHub-api/internal/application/usecase"
	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
	apphttp "github.com/jhoicas/BusinessHub-api/internal/interfaces/http"
	pkgjwt "github.com/jhoicas/BusinessHub-api/pkg/jwt"
	"github.com/jhoicas/BusinessHub-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakePessoaRepo struct {
	mu   sync.Mutex
	byID map[string]entity.Pessoa
}

func newFakePessoaRepo() *fakePessoaRepo {
	return &fakePessoaRepo{byID: map[string]entity.Pessoa{}}
}

func (r *fakePessoaRepo) Create(_ context.Context, p *entity.Pessoa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[p.ID] = *p
	return nil
}

func (r *fakePessoaRepo) GetByID(_ context.Context, id string) (*entity.Pessoa, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *fakePessoaRepo) find(match func(entity.Pessoa) bool) *entity.Pessoa {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.byID {
		if match(p) {
			return &p
		}
	}
	return nil
}

func (r *fakePessoaRepo) GetByDocumento(_ context.Context, empresaID, documento string) (*entity.Pessoa, error) {
	return r.find(func(p entity.Pessoa) bool { return p.EmpresaID == empresaID && p.Documento == documento }), nil
}

func (r *fakePessoaRepo) GetByEmail(_ context.Context, empresaID, email string) (*entity.Pessoa, error) {
	return r.find(func(p entity.Pessoa) bool { return p.EmpresaID == empresaID && p.Email == email }), nil
}

func (r *fakePessoaRepo) List(_ context.Context, tipo string, f repository.ListFilter) ([]*entity.Pessoa, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Pessoa
	for _, p := range r.byID {
		if p.EmpresaID == f.EmpresaID && p.Tipo == tipo {
			out = append(out, &p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nome < out[j].Nome })
	return out, len(out), nil
}

func (r *fakePessoaRepo) Update(_ context.Context, p *entity.Pessoa) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[p.ID]; !ok {
		return domain.ErrNotFound
	}
	r.byID[p.ID] = *p
	return nil
}

func (r *fakePessoaRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

func newAPI(t *testing.T, deps apphttp.RouterDeps) *fiber.App {
	t.Helper()
	log := logger.Nop()
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(log)})
	app.Use(apphttp.RequestLogger(log))
	deps.JWTSecret = testJWTSecret
	apphttp.Router(app, deps)
	return app
}

var (
	userA   = pkgjwt.Identity{UserID: testUserID, EmpresaID: testEmpresaID, Role: entity.RoleUser}
	adminA  = pkgjwt.Identity{UserID: testUserID, EmpresaID: testEmpresaID, Role: entity.RoleAdmin}
	userB   = pkgjwt.Identity{UserID: testUserID, EmpresaID: testEmpresaBID, Role: entity.RoleUser}
	globalB = pkgjwt.Identity{UserID: testUserID, EmpresaID: testEmpresaBID, Role: entity.RoleAdmin, GlobalAdmin: true}
)

func call(t *testing.T, app *fiber.App, method, path string, id *pkgjwt.Identity, body any) (*http.Response, []byte) {
	t.Helper()
	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, rd)
	if rd != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id != nil {
		req.Header.Set("Authorization", tokenFor(t, *id))
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, raw
}

func errorCode(t *testing.T, raw []byte) string {
	t.Helper()
	var e dto.ErrorResponse
	require.NoError(t, json.Unmarshal(raw, &e), string(raw))
	return e.Code
}

func novoCliente(documento string) map[string]any {
	return map[string]any{"nome": "José da Conceição", "documento": documento, "email": "jose@example.com"}
}

func pessoasAPI(t *testing.T) *fiber.App {
	return newAPI(t, apphttp.RouterDeps{
		PessoaUC: usecase.NewPessoaUseCase(newFakePessoaRepo(), nil),
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Clientes / fornecedores
// ──────────────────────────────────────────────────────────────────────────────

func TestPessoas_CriarObterListar(t *testing.T) {
	app := pessoasAPI(t)

	resp, raw := call(t, app, http.MethodPost, "/api/clientes", &userA, novoCliente("123.456.789-09"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created dto.PessoaResponse
	require.NoError(t, json.Unmarshal(raw, &created))
	assert.Equal(t, entity.PessoaCliente, created.Tipo)
	assert.Equal(t, "12345678909", created.Documento)
	assert.Equal(t, testEmpresaID, created.EmpresaID)

	resp, raw = call(t, app, http.MethodGet, "/api/clientes/"+created.ID, &userA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))

	resp, raw = call(t, app, http.MethodGet, "/api/clientes", &userA, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ListResponse[dto.PessoaResponse]
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Equal(t, 1, list.Page.Total)
	assert.Equal(t, 20, list.Page.Limit)

	// mesma pessoa não aparece pela rota de fornecedores
	resp, raw = call(t, app, http.MethodGet, "/api/fornecedores/"+created.ID, &userA, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", errorCode(t, raw))
}

func TestPessoas_DocumentoDuplicadoNaEmpresa(t *testing.T) {
	app := pessoasAPI(t)

	resp, _ := call(t, app, http.MethodPost, "/api/clientes", &userA, novoCliente("12345678909"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	outro := novoCliente("123.456.789-09")
	outro["email"] = "outro@example.com"
	resp, raw := call(t, app, http.MethodPost, "/api/clientes", &userA, outro)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "DUPLICATE", errorCode(t, raw))

	// mesmo documento e email em outra empresa é permitido
	resp, raw = call(t, app, http.MethodPost, "/api/clientes", &userB, novoCliente("12345678909"))
	assert.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
}

func TestPessoas_IsolamentoEntreEmpresas(t *testing.T) {
	app := pessoasAPI(t)

	resp, raw := call(t, app, http.MethodPost, "/api/clientes", &userA, novoCliente("12345678909"))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.PessoaResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, _ = call(t, app, http.MethodGet, "/api/clientes/"+created.ID, &userB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, raw = call(t, app, http.MethodGet, "/api/clientes?empresaId="+testEmpresaID, &userB, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "FORBIDDEN", errorCode(t, raw))

	// admin global consulta a empresa A
	resp, raw = call(t, app, http.MethodGet, "/api/clientes?empresaId="+testEmpresaID, &globalB, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.ListResponse[dto.PessoaResponse]
	require.NoError(t, json.Unmarshal(raw, &list))
	assert.Len(t, list.Items, 1)

	resp, raw = call(t, app, http.MethodDelete, "/api/clientes/"+created.ID, &userB, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode, string(raw))
}

func TestPessoas_AtualizarERemover(t *testing.T) {
	app := pessoasAPI(t)

	resp, raw := call(t, app, http.MethodPost, "/api/fornecedores", &userA, novoCliente("12345678000195"))
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(raw))
	var created dto.PessoaResponse
	require.NoError(t, json.Unmarshal(raw, &created))

	resp, raw = call(t, app, http.MethodPut, "/api/fornecedores/"+created.ID, &userA, map[string]any{"nome": "Fornecedor Novo", "uf": "sp"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(raw))
	var updated dto.PessoaResponse
	require.NoError(t, json.Unmarshal(raw, &updated))
	assert.Equal(t, "Fornecedor Novo", updated.Nome)
	assert.Equal(t, "SP", updated.UF)

	resp, _ = call(t, app, http.MethodDelete, "/api/fornecedores/"+created.ID, &userA, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = call(t, app, http.MethodGet, "/api/fornecedores/"+created.ID, &userA, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestPessoas_CorpoInvalidoEValidacao(t *testing.T) {
	app := pessoasAPI(t)

	resp, raw := call(t, app, http.MethodPost, "/api/clientes", &userA, "{nao e json")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", errorCode(t, raw))

	resp, raw = call(t, app, http.MethodPost, "/api/clientes", &userA, map[string]any{"documento": "12345678909"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))
	assert.Contains(t, string(raw), "nome")

	bad := novoCliente("12345678909")
	bad["email"] = "nao-e-email"
	resp, raw = call(t, app, http.MethodPost, "/api/clientes", &userA, bad)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, string(raw), "email")

	// documento com tamanho de CPF/CNPJ inválido passa no validator mas falha no domínio
	resp, raw = call(t, app, http.MethodPost, "/api/clientes", &userA, novoCliente("123456789012"))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VALIDATION", errorCode(t, raw))
}

func TestRotasProtegidas_SemToken(t *testing.T) {
	app := pessoasAPI(t)
	resp, raw := call(t, app, http.MethodGet, "/api/clientes", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "MISSING_TOKEN", errorCode(t, raw))
}

func TestEmpresas_ExigemAdmin(t *testing.T) {
	app := newAPI(t, apphttp.RouterDeps{})

	resp, _ := call(t, app, http.MethodGet, "/api/empresas/"+testEmpresaID, &userA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	// admin da empresa não lista empresas; só admin global
	resp, _ = call(t, app, http.MethodGet, "/api/empresas", &adminA, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeamento de erros
// ──────────────────────────────────────────────────────────────────────────────

func TestMapError(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrInvalidInput, 400, "VALIDATION"},
		{fmt.Errorf("%w: soma das parcelas", domain.ErrInvalidInput), 400, "VALIDATION"},
		{domain.ErrUnauthorized, 401, "UNAUTHORIZED"},
		{domain.ErrForbidden, 403, "FORBIDDEN"},
		{fmt.Errorf("obter conta: %w", domain.ErrNotFound), 404, "NOT_FOUND"},
		{domain.ErrDuplicate, 409, "DUPLICATE"},
		{domain.ErrEmailAlreadyExists, 409, "DUPLICATE"},
		{domain.ErrConflict, 409, "CONFLICT"},
		{domain.ErrStorageUnavailable, 503, "STORAGE_UNAVAILABLE"},
		{fiber.ErrNotFound, 404, "NOT_FOUND"},
		{fiber.ErrRequestEntityTooLarge, 413, "PAYLOAD_TOO_LARGE"},
		{errors.New("conexão recusada"), 500, "INTERNAL"},
	}
	for _, tc := range cases {
		status, body := apphttp.MapError(tc.err)
		assert.Equal(t, tc.status, status, tc.err.Error())
		assert.Equal(t, tc.code, body.Code, tc.err.Error())
	}

	_, body := apphttp.MapError(errors.New("senha do banco: xyz"))
	assert.NotContains(t, body.Message, "xyz", "500 não expõe detalhes")
}

func TestErrorHandler_RespondeJSON(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler(logger.Nop())})
	app.Get("/boom", func(c *fiber.Ctx) error { return errors.New("falha inesperada") })
	app.Get("/storage", func(c *fiber.Ctx) error { return domain.ErrStorageUnavailable })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "INTERNAL", errorCode(t, raw))

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/storage", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
