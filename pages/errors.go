package pages

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPageRequired          = errors.New("pages: page id required")
	ErrSlugRequired          = errors.New("pages: slug is required")
	ErrSlugInvalid           = errors.New("pages: slug contains invalid characters")
	ErrSlugExists            = errors.New("pages: slug already exists")
	ErrTitleRequired         = errors.New("pages: title is required")
	ErrStatusInvalid         = errors.New("pages: status must be draft or published")
	ErrSchemaTypeInvalid     = errors.New("pages: unsupported schema type")
	ErrPageNotFound          = errors.New("pages: page not found")
	ErrSoftDeleteUnsupported = errors.New("pages: soft delete not supported")
)

// PageNotFoundError captures failed lookups by id or slug.
type PageNotFoundError struct {
	Key string
}

func (e *PageNotFoundError) Error() string {
	if e == nil || strings.TrimSpace(e.Key) == "" {
		return ErrPageNotFound.Error()
	}
	return fmt.Sprintf("%s: %s", ErrPageNotFound.Error(), e.Key)
}

func (e *PageNotFoundError) Unwrap() error {
	return ErrPageNotFound
}

// SlugExistsError captures slug collisions on create or save.
type SlugExistsError struct {
	Slug string
}

func (e *SlugExistsError) Error() string {
	if e == nil || strings.TrimSpace(e.Slug) == "" {
		return ErrSlugExists.Error()
	}
	return fmt.Sprintf("%s: %s", ErrSlugExists.Error(), e.Slug)
}

func (e *SlugExistsError) Unwrap() error {
	return ErrSlugExists
}
