package repository

// ListFilter filtros comuns das listagens paginadas.
// Busca deve chegar já normalizada (minúscula, sem acentos).
type ListFilter struct {
	EmpresaID string
	Busca     string
	Ativo     *bool
	Limit     int
	Offset    int
}
