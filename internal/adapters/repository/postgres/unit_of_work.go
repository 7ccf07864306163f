package postgres

import (
	"context"
	"database/sql"
	"lightnote/internal/core/port"
)

type sqlUnitOfWork struct {
	db *sql.DB
	tx *sql.Tx
}

func NewUnitOfWork(db *sql.DB) port.UnitOfWork {
	return &sqlUnitOfWork{db: db}
}

func (u *sqlUnitOfWork) NoteRepo() port.NoteRepository {
	if u.tx != nil {
		return NewSqlNoteRepository(u.tx)
	}
	return NewSqlNoteRepository(u.db)
}

func (u *sqlUnitOfWork) TagRepo() port.TagRepository {
	if u.tx != nil {
		return NewSqlTagRepository(u.tx)
	}
	return NewSqlTagRepository(u.db)
}

func (u *sqlUnitOfWork) NoteTagRepo() port.NoteTagRepository {
	if u.tx != nil {
		return NewNoteTagRepository(u.tx)
	}
	return NewNoteTagRepository(u.db)
}

func (u *sqlUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	tx, err := u.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	uowWithTx := &sqlUnitOfWork{db: u.db, tx: tx}

	if err := fn(uowWithTx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
