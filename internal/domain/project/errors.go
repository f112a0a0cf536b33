package project

import "errors"

var (
	ErrProjectNotFound = errors.New("Project not found")
)
