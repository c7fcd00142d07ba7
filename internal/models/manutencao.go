package models

// Manutencao is one vehicle maintenance case, keyed by license plate. Plates
// are always stored uppercase and trimmed; a plate may have many cases over
// time.
type Manutencao struct {
	ID            int64     `db:"id" json:"id"`
	Placa         string    `db:"placa" json:"placa"`
	Situacao      string    `db:"situacao" json:"situacao"`
	DataCadastro  DateTime  `db:"data_cadastro" json:"data_cadastro"`
	QuemInformou  *string   `db:"quem_informou" json:"quem_informou"`
	OndeEsta      *string   `db:"onde_esta" json:"onde_esta"`
	StatusTexto   *string   `db:"status_texto" json:"status_texto"`
	Previsao      *DateTime `db:"previsao" json:"previsao"`
	DataConclusao *DateTime `db:"data_conclusao" json:"data_conclusao"`
	Concluido     Flag      `db:"concluido" json:"concluido"`
	CreatedAt     DateTime  `db:"created_at" json:"created_at"`
	UpdatedAt     DateTime  `db:"updated_at" json:"updated_at"`
}

// ManutencaoDetail is the fetch-by-id payload: the case plus its full status
// history, oldest first.
type ManutencaoDetail struct {
	Manutencao
	Atualizacoes []StatusUpdate `json:"atualizacoes"`
}

// ManutencaoFilter constrains listing queries. Concluido is only applied when
// the caller sent the parameter.
type ManutencaoFilter struct {
	Placa     string
	Concluido *int
	Limit     int
	Offset    int
}

// ListMeta describes a paginated listing: total matches regardless of the
// window, plus the effective window.
type ListMeta struct {
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}
