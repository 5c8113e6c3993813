package dto

import (
	"encoding/json"
	"errors"
	"io"
	"reflect"
	"regexp"
	"strings"

	"github.com/GoArmGo/BlogApp/internal/apperr"
	"github.com/go-playground/validator/v10"
)

const malformedInputMessage = "Datos de entrada inválidos"

var validate = newValidator()

// newValidator настраивает validator так, чтобы в ошибках фигурировали
// json-имена полей, а не имена полей структуры.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var unknownFieldRe = regexp.MustCompile(`json: unknown field "([^"]+)"`)

// Decode читает JSON-тело запроса в DTO по принципу белого списка:
// неизвестные поля — ошибка валидации, а не молчаливое отбрасывание.
// После декодирования DTO проверяется по своим validate-тегам; результат
// ошибки перечисляет пары поле -> нарушенное ограничение.
func Decode(r io.Reader, dst any) error {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		if m := unknownFieldRe.FindStringSubmatch(err.Error()); m != nil {
			return apperr.Validation(malformedInputMessage, map[string]string{m[1]: "unknown"}).WithCause(err)
		}
		return apperr.Validation(malformedInputMessage, nil).WithCause(err)
	}

	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make(map[string]string, len(verrs))
			for _, fe := range verrs {
				fields[fe.Field()] = fe.Tag()
			}
			return apperr.Validation(malformedInputMessage, fields).WithCause(err)
		}
		return apperr.Validation(malformedInputMessage, nil).WithCause(err)
	}

	return nil
}
