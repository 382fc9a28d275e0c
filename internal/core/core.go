// Package core owns all SQL against the schema contract. Every query runs
// through the SQLTemplate, which joins an open transaction when the context
// carries one.
package core

import (
	"log/slog"

	"github.com/realworld-apps/conduit/internal/utils/databaseutils"
)

type Core struct {
	log         *slog.Logger
	sqlTemplate *databaseutils.SQLTemplate
	session     databaseutils.Session
}

func NewCore(log *slog.Logger, sqlTemplate *databaseutils.SQLTemplate, session databaseutils.Session) *Core {
	return &Core{
		log:         log,
		sqlTemplate: sqlTemplate,
		session:     session,
	}
}
