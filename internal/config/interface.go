package config

import "github.com/BerryBytes/aws-assume-role/models"

// RoleStore is the persistence surface the commands depend on.
type RoleStore interface {
	Load() (*models.Configuration, error)
	Save(cfg *models.Configuration) error
	AddRole(name string, def models.RoleDefinition) error
	RemoveRole(name string) error
	GetRole(name string) (models.RoleDefinition, error)
	ListRoles() ([]NamedRole, error)
	Path() string
}
