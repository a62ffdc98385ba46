// Package pdf gera o extrato de contas a pagar e a receber.
//
// Layout da página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  CABEÇALHO: Empresa + CNPJ   │  Tipo da conta + data         │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONTRAPARTE: Cliente/fornecedor ou afiliado                 │
//	│  CONTA: Descrição / Vencimento / Forma de pagamento / Status │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ITENS: Descrição | Qtd | Unitário | Total                   │
//	│  PARCELAS: Nº | Vencimento | Valor | Status | Pagamento      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAIS: Valor / Pago / Em aberto                            │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/BusinessHub-api/internal/application/financeiro"
	"github.com/jhoicas/BusinessHub-api/internal/domain/entity"
)

var _ financeiro.ExtratoGenerator = (*MarotoExtratoGenerator)(nil)

// ── Paleta ────────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 30, Green: 120, Blue: 60}
	colorRed     = &props.Color{Red: 170, Green: 40, Blue: 40}
)

var brl = message.NewPrinter(language.BrazilianPortuguese)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoExtratoGenerator implementa financeiro.ExtratoGenerator com Maroto v2.
type MarotoExtratoGenerator struct{}

// NewMarotoExtratoGenerator constrói o gerador.
func NewMarotoExtratoGenerator() *MarotoExtratoGenerator { return &MarotoExtratoGenerator{} }

// GenerateExtrato gera o PDF e devolve os bytes.
func (g *MarotoExtratoGenerator) GenerateExtrato(_ context.Context, d financeiro.ExtratoData) ([]byte, error) {
	if d.Empresa == nil || d.Conta == nil {
		return nil, fmt.Errorf("pdf: empresa e conta são obrigatórias")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Extrato de "+tituloTipo(d.Conta.Tipo), true).
		WithAuthor(d.Empresa.Nome, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(contraparteRow(d))
	m.AddRows(contaRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	if len(d.Conta.Itens) > 0 {
		m.AddRows(sectionRow("ITENS"))
		m.AddRows(itensHeaderRow())
		m.AddRows(itensRows(d.Conta.Itens)...)
		m.AddRows(row.New(3))
	}

	m.AddRows(sectionRow("PARCELAS"))
	m.AddRows(parcelasHeaderRow())
	m.AddRows(parcelasRows(d.Parcelas)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totaisRow(d))
	m.AddRows(row.New(4))
	m.AddRows(row.New(6).Add(col.New(12).Add(
		text.New("Gerado em "+d.GeradoEm.Format("02/01/2006 15:04"), props.Text{
			Size: 7, Color: colorGray, Align: align.Right,
		}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: gerar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Seções ────────────────────────────────────────────────────────────────────

func headerRow(d financeiro.ExtratoData) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(d.Empresa.Nome, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("CNPJ: "+formatCNPJ(d.Empresa.CNPJ), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("EXTRATO DE "+upper(tituloTipo(d.Conta.Tipo)), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Color: colorPrimary, Top: 1,
			}),
			text.New(d.Conta.Descricao, props.Text{
				Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7,
			}),
			text.New("Emitido em "+d.GeradoEm.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

func contraparteRow(d financeiro.ExtratoData) core.Row {
	titulo, nome, detalhe := "CONTRAPARTE", "—", ""
	switch {
	case d.Pessoa != nil:
		titulo = upper(d.Pessoa.Tipo)
		nome = d.Pessoa.Nome
		detalhe = fmt.Sprintf("Documento: %s   |   Email: %s   |   Tel: %s",
			nonEmpty(formatDocumento(d.Pessoa.Documento), "—"),
			nonEmpty(d.Pessoa.Email, "—"),
			nonEmpty(d.Pessoa.Telefone, "—"),
		)
	case d.Afiliado != nil:
		titulo = "AFILIADO"
		nome = d.Afiliado.Nome
		detalhe = fmt.Sprintf("Comissão: %s%%   |   Email: %s",
			d.Afiliado.PercentualComissao.String(), nonEmpty(d.Afiliado.Email, "—"))
	}
	return row.New(14).Add(
		col.New(12).Add(
			text.New(titulo, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(nome, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(detalhe, props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func contaRow(d financeiro.ExtratoData) core.Row {
	c := d.Conta
	pagamento := "—"
	if c.DataPagamento != nil {
		pagamento = c.DataPagamento.Format("02/01/2006")
	}
	return row.New(12).Add(
		col.New(12).Add(
			text.New("CONTA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(fmt.Sprintf("Vencimento: %s   |   Parcelas: %d   |   Forma: %s   |   Status: %s   |   Pagamento: %s",
				c.DataVencimento.Format("02/01/2006"),
				c.NumeroParcelas,
				nonEmpty(d.FormaPagamento, "—"),
				c.Status,
				pagamento,
			), props.Text{Size: 8, Top: 7, Color: colorGray}),
		),
	)
}

func sectionRow(label string) core.Row {
	return row.New(7).Add(col.New(12).Add(
		text.New(label, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2}),
	))
}

func headerCol(label string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(label, props.Text{
		Style: fontstyle.Bold, Size: 8, Align: a, Top: 1, Left: 1, Right: 1,
	}))
}

func cell(s string, size int, a align.Type) core.Col {
	return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a, Top: 1, Left: 1, Right: 1}))
}

func itensHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Descrição", 6, align.Left),
		headerCol("Qtd.", 2, align.Center),
		headerCol("Unitário", 2, align.Right),
		headerCol("Total", 2, align.Right),
	)
}

func itensRows(itens []entity.ContaItem) []core.Row {
	out := make([]core.Row, 0, len(itens))
	for _, it := range itens {
		out = append(out, row.New(6).Add(
			cell(it.Descricao, 6, align.Left),
			cell(it.Quantidade.String(), 2, align.Center),
			cell(formatBRL(it.ValorUnitario), 2, align.Right),
			cell(formatBRL(it.ValorTotal), 2, align.Right),
		))
	}
	return out
}

func parcelasHeaderRow() core.Row {
	return row.New(6).Add(
		headerCol("Nº", 1, align.Center),
		headerCol("Vencimento", 3, align.Left),
		headerCol("Valor", 3, align.Right),
		headerCol("Status", 2, align.Center),
		headerCol("Pagamento", 3, align.Right),
	)
}

func parcelasRows(parcelas []entity.Parcela) []core.Row {
	out := make([]core.Row, 0, len(parcelas))
	for _, p := range parcelas {
		pagamento := "—"
		if p.DataPagamento != nil {
			pagamento = p.DataPagamento.Format("02/01/2006")
		}
		status := text.New(p.Status, props.Text{Size: 8, Align: align.Center, Top: 1, Color: statusColor(p.Status)})
		out = append(out, row.New(6).Add(
			cell(fmt.Sprintf("%d", p.Numero), 1, align.Center),
			cell(p.DataVencimento.Format("02/01/2006"), 3, align.Left),
			cell(formatBRL(p.Valor), 3, align.Right),
			col.New(2).Add(status),
			cell(pagamento, 3, align.Right),
		))
	}
	return out
}

func totaisRow(d financeiro.ExtratoData) core.Row {
	pago, aberto := Totais(d.Parcelas)
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string, top float64) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1, Top: top})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Valor da conta:"),
			text.New("Pago:", props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2, Top: 6}),
			text.New("Em aberto:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 2, Top: 12, Color: colorPrimary}),
		),
		col.New(3).Add(
			value(formatBRL(d.Conta.Valor), 0),
			value(formatBRL(pago), 6),
			text.New(formatBRL(aberto), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Right: 1, Top: 12, Color: colorPrimary}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// Totais soma parcelas pagas e pendentes; canceladas não entram.
func Totais(parcelas []entity.Parcela) (pago, aberto decimal.Decimal) {
	for _, p := range parcelas {
		switch p.Status {
		case entity.StatusPago:
			pago = pago.Add(p.Valor)
		case entity.StatusPendente:
			aberto = aberto.Add(p.Valor)
		}
	}
	return pago, aberto
}

// formatBRL formata em reais no padrão pt-BR: R$ 1.234,56.
func formatBRL(v decimal.Decimal) string {
	return "R$ " + brl.Sprintf("%.2f", v.Round(2).InexactFloat64())
}

// formatCNPJ aplica a máscara 00.000.000/0000-00 quando há 14 dígitos.
func formatCNPJ(s string) string {
	if len(s) != 14 {
		return s
	}
	return s[:2] + "." + s[2:5] + "." + s[5:8] + "/" + s[8:12] + "-" + s[12:]
}

// formatDocumento aplica máscara de CPF (11 dígitos) ou CNPJ (14).
func formatDocumento(s string) string {
	if len(s) == 11 {
		return s[:3] + "." + s[3:6] + "." + s[6:9] + "-" + s[9:]
	}
	return formatCNPJ(s)
}

func tituloTipo(tipo string) string {
	if tipo == entity.ContaPagar {
		return "Contas a Pagar"
	}
	return "Contas a Receber"
}

func statusColor(s string) *props.Color {
	switch s {
	case entity.StatusPago:
		return colorGreen
	case entity.StatusCancelado:
		return colorRed
	}
	return colorGray
}

func upper(s string) string {
	return cases.Upper(language.BrazilianPortuguese).String(s)
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
