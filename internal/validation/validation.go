// validation — единственная граница, на которой нетипизированный JSON запроса
// превращается в типизированную структуру. Схемы объявлены декларативно
// тегами validator; непрошедшие поля собираются в одну карту
// "имя поля -> сообщение" за один проход, без остановки на первой ошибке.
//
// Пакет чистый: ни одна проверка не выполняет I/O.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Имена полей в ошибках — из json-тегов, как их видит клиент.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v
}

// Check прогоняет структуру запроса по её схеме.
// Возвращает nil, если всё в порядке, иначе карту "поле -> сообщение"
// со ВСЕМИ непрошедшими полями.
func Check(req any) map[string]string {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Ошибка самой схемы (InvalidValidationError) — программная,
		// наружу уходит как единственная общая запись.
		return map[string]string{"general": "invalid request"}
	}

	details := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		details[fe.Field()] = message(fe)
	}

	return details
}

// message переводит ошибку правила в человекочитаемое сообщение.
func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "invalid email address"
	case "url":
		return "invalid URL format"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	default:
		return fmt.Sprintf("failed on rule %q", fe.Tag())
	}
}
