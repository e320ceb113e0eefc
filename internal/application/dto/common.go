package dto

// PageQuery paginación para listados (?page=&limit=).
type PageQuery struct {
	Page  int `query:"page"`
	Limit int `query:"limit"`
}

// Normalize aplica los valores por defecto del listado: page=1, limit=10, tope 100.
func (p *PageQuery) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = 10
	}
	if p.Limit > 100 {
		p.Limit = 100
	}
}

// Offset devuelve el desplazamiento SQL correspondiente a la página.
func (p PageQuery) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pages calcula el total de páginas para un total de filas.
func Pages(total, limit int) int {
	if limit <= 0 || total <= 0 {
		return 0
	}
	return (total + limit - 1) / limit
}

// ErrorResponse cuerpo de error HTTP. El campo de mensaje se serializa como
// "msg" para mantener el contrato que consume el frontend.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"msg"`
}
