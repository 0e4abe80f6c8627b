package models

import "errors"

// ErrInvalidStatus неизвестное значение статуса в фильтре
var ErrInvalidStatus = errors.New("models: invalid booking status")
