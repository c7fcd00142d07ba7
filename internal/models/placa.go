package models

// PlacaResumo aggregates the maintenance history of one plate.
type PlacaResumo struct {
	Placa             string   `db:"placa" json:"placa"`
	Total             int      `db:"total" json:"total"`
	Concluidas        int      `db:"concluidas" json:"concluidas"`
	UltimaAtualizacao DateTime `db:"ultima_atualizacao" json:"ultima_atualizacao"`
}
