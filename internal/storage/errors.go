package storage

import "errors"

var (
	ErrUpload       = errors.New("blob upload failed")
	ErrUnauthorized = errors.New("blob store unauthorized")
	ErrNotFound     = errors.New("blob object not found")
)
