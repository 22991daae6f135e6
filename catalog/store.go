// Package catalog holds the catalog stores: the read side consumed by the
// filtering engine and the append-only producer side used by the admin
// flows. Records are never updated or deleted during a session; the
// catalog only grows.
package catalog

import (
	"context"
	"errors"

	"github.com/JosueChaves01/Proyecto-Habitacional-sub000/models"
)

var (
	ErrNotFound         = errors.New("catalog: record not found")
	ErrDuplicateID      = errors.New("catalog: id already exists")
	ErrUnknownProject   = errors.New("catalog: property references unknown project")
	ErrUnknownDeveloper = errors.New("catalog: project references unknown developer")
)

type Store interface {
	GetAllProperties(ctx context.Context) ([]models.Property, error)
	GetAllProjects(ctx context.Context) ([]models.Project, error)
	GetAllDevelopers(ctx context.Context) ([]models.Developer, error)

	GetProperty(ctx context.Context, id string) (models.Property, error)
	GetProject(ctx context.Context, id string) (models.Project, error)
	GetDeveloper(ctx context.Context, id string) (models.Developer, error)

	AddDeveloper(ctx context.Context, developer models.Developer) error
	AddProject(ctx context.Context, project models.Project) error
	AddProperty(ctx context.Context, property models.Property) error
}
