package dto

// ImportResponse é a resposta de sucesso do import CSV
type ImportResponse struct {
	Imported int `json:"imported"`
}

// ErrorResponse é o corpo padrão de erro da API
// Details carrega os diagnósticos por linha num CSV inválido ([]csvimport.RowError)
// ou o detalhe textual do storage numa falha de insert
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	Hint    string `json:"hint,omitempty"`
}

// TagsResponse lista as tags distintas do usuário
type TagsResponse struct {
	Tags []string `json:"tags"`
}
