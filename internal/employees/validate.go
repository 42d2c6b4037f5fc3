package employees

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/unicode/norm"

	"hrms-backend/internal/platform/apperr"
)

const (
	msgEmployeeIDTaken = "Employee ID already exists."
	msgEmailTaken      = "Email already exists."
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// normalize trims every field and NFC-normalizes the free-text ones.
func (r CreateEmployeeRequest) normalize() CreateEmployeeRequest {
	return CreateEmployeeRequest{
		EmployeeID: strings.TrimSpace(r.EmployeeID),
		FullName:   norm.NFC.String(strings.TrimSpace(r.FullName)),
		Email:      strings.TrimSpace(r.Email),
		Department: norm.NFC.String(strings.TrimSpace(r.Department)),
	}
}

// checkShape verifies presence, length and email syntax. It does not touch the store.
func checkShape(r CreateEmployeeRequest) error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.ErrInternal("validator failure")
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return apperr.ErrFields(fields)
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field may not be blank."
	case "email":
		return "Enter a valid email address."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	}
	return "Invalid value."
}

// validateEmployee は形式チェック + 一意性チェック（事前確認）。
// 最終的な一意性はストアの UNIQUE 制約が保証する。
func (s *Service) validateEmployee(ctx context.Context, in CreateEmployeeRequest) (CreateEmployeeRequest, error) {
	req := in.normalize()
	if err := checkShape(req); err != nil {
		return req, err
	}

	fields := map[string]string{}
	taken, err := s.store.ExistsEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return req, apperr.FromStore(err, "failed to check employee_id", "")
	}
	if taken {
		fields["employee_id"] = msgEmployeeIDTaken
	}
	taken, err = s.store.ExistsEmail(ctx, req.Email)
	if err != nil {
		return req, apperr.FromStore(err, "failed to check email", "")
	}
	if taken {
		fields["email"] = msgEmailTaken
	}
	if len(fields) > 0 {
		conflict := apperr.ErrConflict(conflictMessage(fields))
		conflict.Fields = fields
		return req, conflict
	}
	return req, nil
}

func conflictMessage(fields map[string]string) string {
	if _, ok := fields["employee_id"]; ok {
		return msgEmployeeIDTaken
	}
	return msgEmailTaken
}
