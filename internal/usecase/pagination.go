package usecase

// Значения пагинации по умолчанию, когда клиент их не передал.
const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

// PageMeta описывает метаданные страницы выборки.
type PageMeta struct {
	Total   int64 `json:"total"`
	Limit   int   `json:"limit"`
	Offset  int   `json:"offset"`
	HasMore bool  `json:"hasMore"`
}

// Page — пагинированный результат: данные плюс метаданные.
type Page struct {
	Data any      `json:"data"`
	Meta PageMeta `json:"meta"`
}

// Confirmation — фиксированное подтверждение успешного удаления.
type Confirmation struct {
	Message string `json:"message"`
}

// normalizePagination подставляет значения по умолчанию вместо
// отсутствующих или некорректных limit/offset.
func normalizePagination(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = DefaultOffset
	}
	return limit, offset
}

func pageMeta(total int64, limit, offset int) PageMeta {
	return PageMeta{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: int64(offset+limit) < total,
	}
}
