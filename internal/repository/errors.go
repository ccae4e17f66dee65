package repository

import "errors"

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrTermNotFound       = errors.New("term not found")
	ErrDealerNotFound     = errors.New("dealer not found")
	ErrAttachmentNotFound = errors.New("attachment not found")
)
