package financeiro_test

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// ── contas ────────────────────────────────────────────────────────────────────

type fakeContaRepo struct {
	mu     sync.Mutex
	contas map[string]*entity.Conta
}

func newFakeContaRepo() *fakeContaRepo {
	return &fakeContaRepo{contas: map[string]*entity.Conta{}}
}

func cloneConta(c *entity.Conta) *entity.Conta {
	cp := *c
	cp.Parcelas = append([]entity.Parcela(nil), c.Parcelas...)
	cp.Itens = append([]entity.ContaItem(nil), c.Itens...)
	return &cp
}

func (r *fakeContaRepo) snapshot() map[string]*entity.Conta {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]*entity.Conta, len(r.contas))
	for k, v := range r.contas {
		out[k] = cloneConta(v)
	}
	return out
}

func (r *fakeContaRepo) restore(s map[string]*entity.Conta) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contas = s
}

func (r *fakeContaRepo) Create(_ context.Context, c *entity.Conta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contas[c.ID] = cloneConta(c)
	return nil
}

func (r *fakeContaRepo) GetByID(_ context.Context, id string) (*entity.Conta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.contas[id]
	if !ok {
		return nil, nil
	}
	return cloneConta(c), nil
}

func (r *fakeContaRepo) List(_ context.Context, f repository.ContaFilter) ([]*entity.Conta, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Conta
	for _, c := range r.contas {
		if c.EmpresaID != f.EmpresaID || c.Tipo != f.Tipo {
			continue
		}
		if f.Status != "" && c.Status != f.Status {
			continue
		}
		out = append(out, cloneConta(c))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DataVencimento.Before(out[j].DataVencimento) })
	return out, len(out), nil
}

func (r *fakeContaRepo) Update(_ context.Context, c *entity.Conta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.contas[c.ID]
	if !ok {
		return nil
	}
	cp := *c
	cp.Parcelas = cur.Parcelas
	cp.Itens = cur.Itens
	r.contas[c.ID] = &cp
	return nil
}

func (r *fakeContaRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.contas, id)
	return nil
}

func (r *fakeContaRepo) GetParcela(_ context.Context, id string) (*entity.Parcela, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.contas {
		for _, p := range c.Parcelas {
			if p.ID == id {
				cp := p
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeContaRepo) UpdateParcela(_ context.Context, p *entity.Parcela) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.contas[p.ContaID]
	for i := range c.Parcelas {
		if c.Parcelas[i].ID == p.ID {
			c.Parcelas[i] = *p
		}
	}
	return nil
}

func (r *fakeContaRepo) ReplaceItens(_ context.Context, contaID string, itens []entity.ContaItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.contas[contaID].Itens = append([]entity.ContaItem(nil), itens...)
	return nil
}

func (r *fakeContaRepo) Resumo(_ context.Context, empresaID, tipo string, hoje time.Time) (*repository.ResumoTotais, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := &repository.ResumoTotais{Pendente: decimal.Zero, Vencido: decimal.Zero, Pago: decimal.Zero}
	for _, c := range r.contas {
		if c.EmpresaID != empresaID || c.Tipo != tipo {
			continue
		}
		ps := c.Parcelas
		if len(ps) == 0 {
			ps = []entity.Parcela{{Valor: c.Valor, DataVencimento: c.DataVencimento, Status: c.Status}}
		}
		for _, p := range ps {
			switch p.Status {
			case entity.StatusPendente:
				t.Pendente = t.Pendente.Add(p.Valor)
				t.QtdPendente++
				if p.DataVencimento.Before(hoje) {
					t.Vencido = t.Vencido.Add(p.Valor)
					t.QtdVencido++
				}
			case entity.StatusPago:
				t.Pago = t.Pago.Add(p.Valor)
				t.QtdPago++
			}
		}
	}
	return t, nil
}

// fakeTx simula a transação: em erro, restaura o estado anterior.
type fakeTx struct {
	repo *fakeContaRepo
}

func (f fakeTx) RunContas(ctx context.Context, fn func(repository.ContaRepository) error) error {
	snap := f.repo.snapshot()
	if err := fn(f.repo); err != nil {
		f.repo.restore(snap)
		return err
	}
	return nil
}

// ── referências ───────────────────────────────────────────────────────────────

type fakePessoaRepo struct {
	repository.PessoaRepository
	pessoas map[string]*entity.Pessoa
}

func (r *fakePessoaRepo) GetByID(_ context.Context, id string) (*entity.Pessoa, error) {
	return r.pessoas[id], nil
}

type fakeLookupRepo struct {
	repository.LookupRepository
	itens map[string]*entity.Lookup
}

func (r *fakeLookupRepo) GetByID(_ context.Context, id string) (*entity.Lookup, error) {
	return r.itens[id], nil
}

type fakeProdutoRepo struct {
	repository.ProdutoRepository
	produtos map[string]*entity.Produto
}

func (r *fakeProdutoRepo) GetByID(_ context.Context, id string) (*entity.Produto, error) {
	return r.produtos[id], nil
}

type fakeAfiliadoRepo struct {
	repository.AfiliadoRepository
	afiliados map[string]*entity.Afiliado
}

func (r *fakeAfiliadoRepo) GetByID(_ context.Context, id string) (*entity.Afiliado, error) {
	return r.afiliados[id], nil
}

// ── cache ─────────────────────────────────────────────────────────────────────

type fakeCache struct {
	mu          sync.Mutex
	data        map[string][]byte
	loads       int
	invalidated []string
}

func newFakeCache() *fakeCache { return &fakeCache{data: map[string][]byte{}} }

func (c *fakeCache) FetchJSON(ctx context.Context, key string, _ time.Duration, dest any, loader func(context.Context) (any, error)) error {
	c.mu.Lock()
	raw, ok := c.data[key]
	c.mu.Unlock()
	if !ok {
		v, err := loader(ctx)
		if err != nil {
			return err
		}
		if raw, err = json.Marshal(v); err != nil {
			return err
		}
		c.mu.Lock()
		c.data[key] = raw
		c.loads++
		c.mu.Unlock()
	}
	return json.Unmarshal(raw, dest)
}

func (c *fakeCache) Invalidate(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.data, k)
		c.invalidated = append(c.invalidated, k)
	}
	return nil
}
