package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/tuchka/internal/dbx"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/documents"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/roles"
	"github.com/dmitrijs2005/tuchka/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Roles(db dbx.DBTX) roles.Repository
	Documents(db dbx.DBTX) documents.Repository
}
