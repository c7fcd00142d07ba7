package models

// AutorSistema is recorded as the author when none is supplied.
const AutorSistema = "Sistema"

// StatusUpdate is one append-only note in a maintenance case history. Updates
// never change after insert and are deleted only by cascade with their case.
type StatusUpdate struct {
	ID           int64    `db:"id" json:"id"`
	ManutencaoID int64    `db:"manutencao_id" json:"manutencao_id"`
	Texto        string   `db:"texto" json:"texto"`
	Autor        string   `db:"autor" json:"autor"`
	CreatedAt    DateTime `db:"created_at" json:"created_at"`
}
