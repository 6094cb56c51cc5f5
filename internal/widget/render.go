package widget

import "cv-ranking-web/internal/domain"

// RankingHeaders are the table column titles, in cell order.
var RankingHeaders = [3]string{"Imię", "Nazwisko", "Punkty"}

// RankingRow is one rendered table row. Index is the position in the
// response; rows have no other identity.
type RankingRow struct {
	Index int
	Cells [3]string
}

// RenderRankingRows renders one row per entry: first name, last name, score.
func RenderRankingRows(entries []domain.RankingEntry) []RankingRow {
	rows := make([]RankingRow, 0, len(entries))
	for i, e := range entries {
		rows = append(rows, RankingRow{
			Index: i,
			Cells: [3]string{e.FirstName, e.LastName, e.ScoreText()},
		})
	}
	return rows
}
