package utils

import "errors"

var ErrorRecordNotFound = errors.New("record not found")

// ErrorValidation wraps every rejected input: bad amounts, unknown enum
// values, missing required fields. Callers check with errors.Is.
var ErrorValidation = errors.New("validation error")

// ErrorImport is returned when a backup document cannot be decoded.
// The restore is rejected wholesale and prior state is kept.
var ErrorImport = errors.New("invalid backup file")
