package handlers

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const MsgValidationFailed = "ошибка валидации данных"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в ошибках имена полей как в JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// ValidateStruct проверяет теги validate и возвращает ошибки по полям
// nil означает, что структура корректна
func ValidateStruct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"_": err.Error()}
	}

	result := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		result[fe.Field()] = describe(fe)
	}
	return result
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "обязательное поле"
	case "max":
		return "не длиннее " + fe.Param() + " символов"
	case "oneof":
		return "допустимые значения: " + fe.Param()
	case "datetime":
		return "ожидается формат " + fe.Param()
	case "email":
		return "некорректный email"
	case "timezone":
		return "неизвестная временная зона"
	}
	return "некорректное значение (" + fe.Tag() + ")"
}
