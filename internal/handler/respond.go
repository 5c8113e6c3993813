package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/GoArmGo/BlogApp/internal/usecase"
)

// Envelope — единый конверт успешного ответа API.
type Envelope struct {
	Success   bool               `json:"success"`
	Data      any                `json:"data"`
	Meta      *usecase.PageMeta  `json:"meta,omitempty"`
	Message   string             `json:"message,omitempty"`
	Timestamp string             `json:"timestamp"`
}

// ErrorEnvelope — конверт ответа с ошибкой.
type ErrorEnvelope struct {
	Success   bool         `json:"success"`
	Message   string       `json:"message"`
	Error     *ErrorDetail `json:"error,omitempty"`
	Timestamp string       `json:"timestamp"`
}

// ErrorDetail несёт машиночитаемые детали ошибки: код и метаданные БД,
// сообщение первопричины или пары поле -> ограничение для валидации.
type ErrorDetail struct {
	Code    string            `json:"code,omitempty"`
	Meta    map[string]any    `json:"meta,omitempty"`
	Message string            `json:"message,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func timestamp() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// normalize приводит результат обработчика к конверту. Правила в порядке
// проверки: уже обёрнутый результат проходит без изменений; пагинированный
// результат раскладывается в data+meta; подтверждение удаления — в
// data:null+message; всё остальное кладётся в data как есть.
func normalize(result any) any {
	switch v := result.(type) {
	case Envelope:
		return v
	case *Envelope:
		return *v
	case ErrorEnvelope:
		return v
	case *ErrorEnvelope:
		return *v
	case usecase.Page:
		return Envelope{Success: true, Data: v.Data, Meta: &v.Meta, Timestamp: timestamp()}
	case *usecase.Page:
		meta := v.Meta
		return Envelope{Success: true, Data: v.Data, Meta: &meta, Timestamp: timestamp()}
	case usecase.Confirmation:
		return Envelope{Success: true, Data: nil, Message: v.Message, Timestamp: timestamp()}
	case *usecase.Confirmation:
		return Envelope{Success: true, Data: nil, Message: v.Message, Timestamp: timestamp()}
	default:
		return Envelope{Success: true, Data: result, Timestamp: timestamp()}
	}
}

// mapError — тотальная функция из ошибки в (статус, тело ответа).
// Неизвестные коды шлюза остаются 400 (их мог спровоцировать клиент);
// до 500 доходят только неклассифицированные ошибки.
func mapError(err error) (int, ErrorEnvelope) {
	ae := apperr.As(err)
	if ae == nil {
		ae = apperr.Internal(err)
	}

	var status int
	switch ae.Kind {
	case apperr.KindConflict, apperr.KindGatewayUnique:
		status = http.StatusConflict
	case apperr.KindNotFound, apperr.KindGatewayNotFound:
		status = http.StatusNotFound
	case apperr.KindBadRequest, apperr.KindValidation,
		apperr.KindGatewayForeignKey, apperr.KindGatewayValidation, apperr.KindGateway:
		status = http.StatusBadRequest
	case apperr.KindAuthRequired, apperr.KindAuthInvalid:
		status = http.StatusUnauthorized
	default:
		status = http.StatusInternalServerError
	}

	return status, ErrorEnvelope{
		Success:   false,
		Message:   ae.Message,
		Error:     errorDetail(ae),
		Timestamp: timestamp(),
	}
}

func errorDetail(ae *apperr.Error) *ErrorDetail {
	switch {
	case ae.Code != "":
		return &ErrorDetail{Code: ae.Code, Meta: ae.Meta}
	case len(ae.Fields) > 0:
		return &ErrorDetail{Fields: ae.Fields}
	case ae.Kind == apperr.KindInternal || ae.Kind == apperr.KindGatewayValidation:
		if ae.Err != nil {
			return &ErrorDetail{Message: ae.Err.Error()}
		}
	}
	return nil
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload any, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// writeError — отправляет ответ с ошибкой через маппер.
func writeError(w http.ResponseWriter, err error, logger *slog.Logger) {
	status, body := mapError(err)
	if status == http.StatusInternalServerError {
		logger.Error("unclassified error", "error", err)
	}
	respondWithJSON(w, status, body, logger)
}
