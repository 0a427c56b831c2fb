package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldViolation 单个字段的校验失败信息
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError 请求体校验失败。整体拒绝，不做部分接受。
type ValidationError struct {
	Fields []FieldViolation `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		parts[i] = fmt.Sprintf("%s: %s", f.Field, f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// FormatValidationError 将 gin 绑定错误转成按字段列出的 ValidationError。
// 非 validator 错误（如 JSON 语法错误）整体归到 body 字段。
func FormatValidationError(err error) *ValidationError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Fields: []FieldViolation{{Field: "body", Reason: err.Error()}}}
	}

	out := &ValidationError{}
	for _, fe := range verrs {
		reason := fe.Tag()
		if fe.Param() != "" {
			reason = fmt.Sprintf("%s=%s", fe.Tag(), fe.Param())
		}
		out.Fields = append(out.Fields, FieldViolation{
			Field:  fe.Field(),
			Reason: reason,
		})
	}
	return out
}
