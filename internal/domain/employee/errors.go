package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("Employee not found")
	ErrEmployeeCodeExists = errors.New("Employee code already exists")
	ErrDepartmentNotFound = errors.New("Department not found")
)
