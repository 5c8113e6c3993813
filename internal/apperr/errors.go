package apperr

import (
	"errors"
	"fmt"
)

// Kind классифицирует ошибку независимо от конкретного кода БД.
type Kind int

const (
	// KindValidation — тело запроса не прошло валидацию DTO.
	KindValidation Kind = iota + 1
	// KindBadRequest — некорректный идентификатор или параметр запроса.
	KindBadRequest
	// KindNotFound — доменная ошибка "ресурс не найден".
	KindNotFound
	// KindConflict — нарушение уникальности, переклассифицированное сервисом.
	KindConflict
	// KindAuthRequired — отсутствует заголовок авторизации.
	KindAuthRequired
	// KindAuthInvalid — токен есть, но не прошёл проверку.
	KindAuthInvalid
	// KindGatewayUnique — нарушение уникального ограничения в БД (23505).
	KindGatewayUnique
	// KindGatewayNotFound — update/delete не нашёл строку.
	KindGatewayNotFound
	// KindGatewayForeignKey — нарушение внешнего ключа (23503).
	KindGatewayForeignKey
	// KindGatewayValidation — БД отклонила сам запрос как некорректный.
	KindGatewayValidation
	// KindGateway — прочая известная ошибка БД (с кодом).
	KindGateway
	// KindInternal — всё неклассифицированное.
	KindInternal
)

// Error — единый тип ошибок приложения. Несёт вид ошибки, сообщение для
// клиента и, для ошибок шлюза БД, код и метаданные постгреса.
type Error struct {
	Kind    Kind
	Message string
	Code    string            // код ошибки БД, если ошибка пришла из шлюза
	Meta    map[string]any    // детали БД (constraint, таблица)
	Fields  map[string]string // поле -> нарушенное ограничение (для валидации)
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// WithCause прикрепляет исходную ошибку, не меняя классификацию.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// As возвращает *Error из цепочки обёрток или nil.
func As(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// IsKind сообщает, принадлежит ли ошибка заданному виду.
func IsKind(err error, kind Kind) bool {
	ae := As(err)
	return ae != nil && ae.Kind == kind
}

func Validation(message string, fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func BadRequest(message string) *Error {
	return &Error{Kind: KindBadRequest, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func AuthRequired(message string) *Error {
	return &Error{Kind: KindAuthRequired, Message: message}
}

func AuthInvalid(message string) *Error {
	return &Error{Kind: KindAuthInvalid, Message: message}
}

func GatewayUnique(code string, meta map[string]any, err error) *Error {
	return &Error{Kind: KindGatewayUnique, Message: "El registro ya existe", Code: code, Meta: meta, Err: err}
}

func GatewayNotFound(err error) *Error {
	return &Error{Kind: KindGatewayNotFound, Message: "Registro no encontrado", Err: err}
}

func GatewayForeignKey(code string, meta map[string]any, err error) *Error {
	return &Error{Kind: KindGatewayForeignKey, Message: "Error de referencia externa", Code: code, Meta: meta, Err: err}
}

func GatewayValidation(err error) *Error {
	return &Error{Kind: KindGatewayValidation, Message: "Error de validación en la base de datos", Err: err}
}

func Gateway(code string, meta map[string]any, err error) *Error {
	return &Error{Kind: KindGateway, Message: "Error en la base de datos", Code: code, Meta: meta, Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Error interno del servidor", Err: err}
}
