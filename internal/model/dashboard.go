package model

// DashboardSummary aggregates the counts shown on the kiosk dashboard.
// Field names match the wire contract consumed by the frontend.
type DashboardSummary struct {
	TotalRemedios        int     `json:"totalRemedios"`
	RemediosVencidos     int     `json:"remediosVencidos"`
	TotalTransacoes      int     `json:"totalTransacoes"`
	RemediosBaixoEstoque int     `json:"remediosBaixoEstoque"`
	TotalAlunos          int     `json:"totalAlunos"`
	AlunosRecentes       []Aluno `json:"alunosRecentes"`
}
