package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/BusinessHub-api/internal/domain"
	"github.com/jhoicas/BusinessHub-api/internal/domain/repository"
)

// Códigos SQLSTATE tratados nas escritas.
const (
	codeUniqueViolation = "23505"
	codeFKViolation     = "23503"
	codeCheckViolation  = "23514"
)

func pgCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// writeErr traduz erros de escrita: único -> ErrDuplicate, FK e CHECK -> ErrInvalidInput.
func writeErr(op string, err error) error {
	switch pgCode(err) {
	case codeUniqueViolation:
		return fmt.Errorf("%s: %w", op, domain.ErrDuplicate)
	case codeFKViolation:
		return fmt.Errorf("%w: registro referenciado ou referência inexistente", domain.ErrInvalidInput)
	case codeCheckViolation:
		return fmt.Errorf("%w: valor fora das regras da tabela", domain.ErrInvalidInput)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func derefStr(p *string) string {
	if p != nil {
		return *p
	}
	return ""
}

// where monta cláusulas WHERE com placeholders numerados.
type where struct {
	conds []string
	args  []any
}

// arg registra o valor e devolve o placeholder ($n).
func (w *where) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

// add acrescenta uma condição; %s no formato recebe os placeholders dos valores.
func (w *where) add(format string, vals ...any) {
	ph := make([]any, len(vals))
	for i, v := range vals {
		ph[i] = w.arg(v)
	}
	w.conds = append(w.conds, fmt.Sprintf(format, ph...))
}

// common aplica empresa, busca e ativo do ListFilter. alias prefixa as colunas ("" ou "p.").
func (w *where) common(f repository.ListFilter, alias, buscaCol string) {
	if f.EmpresaID != "" {
		w.add(alias+"empresa_id = %s", f.EmpresaID)
	}
	if f.Busca != "" && buscaCol != "" {
		w.add(alias+buscaCol+" LIKE '%%' || %s || '%%'", f.Busca)
	}
	if f.Ativo != nil {
		w.add(alias+"ativo = %s", *f.Ativo)
	}
}

func (w *where) String() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// page devolve LIMIT/OFFSET com placeholders a partir do filtro.
func (w *where) page(f repository.ListFilter) string {
	limit := f.Limit
	if limit <= 0 {
		limit = 20
	}
	return fmt.Sprintf(" LIMIT %s OFFSET %s", w.arg(limit), w.arg(f.Offset))
}

// listPage conta e lista numa mesma condição. O COUNT roda antes de page()
// acrescentar os argumentos de paginação.
func listPage[T any](
	ctx context.Context, q Querier,
	selectCols, from string, w *where, orderBy string, f repository.ListFilter,
	scan func(pgx.Row) (*T, error),
) ([]*T, int, error) {
	var total int
	if err := q.QueryRow(ctx, "SELECT COUNT(*) "+from+w.String(), w.args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count: %w", err)
	}
	query := "SELECT " + selectCols + " " + from + w.String() + " ORDER BY " + orderBy + w.page(f)
	list, err := queryAll(ctx, q, query, scan, w.args...)
	if err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// queryAll executa a consulta e aplica scan a cada linha.
func queryAll[T any](ctx context.Context, q Querier, query string, scan func(pgx.Row) (*T, error), args ...any) ([]*T, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	defer rows.Close()
	var list []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		list = append(list, item)
	}
	return list, rows.Err()
}

// queryOne executa a consulta de uma linha; sem linhas devolve nil, nil.
func queryOne[T any](ctx context.Context, q Querier, query string, scan func(pgx.Row) (*T, error), args ...any) (*T, error) {
	item, err := scan(q.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return item, nil
}

// execOne executa um UPDATE/DELETE por id; nenhuma linha afetada vira ErrNotFound.
func execOne(ctx context.Context, q Querier, op, query string, args ...any) error {
	tag, err := q.Exec(ctx, query, args...)
	if err != nil {
		return writeErr(op, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
