package database

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/siherrmann/notegraph/helper"
	"github.com/siherrmann/notegraph/model"
	loadSql "github.com/siherrmann/notegraph/sql"
)

// LinksDBHandlerFunctions defines the interface for Links database operations.
type LinksDBHandlerFunctions interface {
	InsertLink(link *model.Link) error
	InsertLinkPair(pair *model.LinkPair) error
	SelectLink(id uuid.UUID) (*model.Link, error)
	SelectLinksFromNote(sourceID uuid.UUID) ([]*model.Link, error)
	SelectAllLinks() ([]*model.Link, error)
	DeleteLink(id uuid.UUID) error
}

// LinksDBHandler handles link-related database operations
type LinksDBHandler struct {
	db *helper.Database
}

// NewLinksDBHandler creates a new links database handler.
// It initializes the database connection and loads link-related SQL functions.
// If force is true, it will reload the SQL functions even if they already exist.
func NewLinksDBHandler(db *helper.Database, force bool) (*LinksDBHandler, error) {
	if db == nil {
		return nil, helper.NewError("database connection validation", fmt.Errorf("database connection is nil"))
	}

	linksDbHandler := &LinksDBHandler{
		db: db,
	}

	err := loadSql.LoadLinksSql(linksDbHandler.db.Instance, force)
	if err != nil {
		return nil, helper.NewError("load links sql", err)
	}

	err = linksDbHandler.CreateTable()
	if err != nil {
		return nil, helper.NewError("create table", err)
	}

	db.Logger.Info("Initialized LinksDBHandler")

	return linksDbHandler, nil
}

// CreateTable creates the 'links' table in the database.
// The notes table must exist first because of the foreign keys.
func (h *LinksDBHandler) CreateTable() error {
	_, err := h.db.Instance.Exec(`SELECT init_links();`)
	if err != nil {
		return helper.NewError("init links table", err)
	}

	h.db.Logger.Info("Checked/created table links")

	return nil
}

// InsertLink inserts a single directed link
func (h *LinksDBHandler) InsertLink(link *model.Link) error {
	_, err := h.db.Instance.Exec(
		`SELECT * FROM insert_link($1, $2, $3, $4, $5, $6)`,
		link.ID,
		link.SourceID,
		link.TargetID,
		link.Strength,
		link.Reason,
		link.CreatedAt,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}

	return nil
}

// InsertLinkPair inserts both mirrored links as one logical unit
func (h *LinksDBHandler) InsertLinkPair(pair *model.LinkPair) error {
	tx, err := h.db.Instance.Begin()
	if err != nil {
		return helper.NewError("begin", err)
	}
	defer tx.Rollback()

	for _, link := range []*model.Link{pair.Forward, pair.Reverse} {
		_, err := tx.Exec(
			`SELECT * FROM insert_link($1, $2, $3, $4, $5, $6)`,
			link.ID,
			link.SourceID,
			link.TargetID,
			link.Strength,
			link.Reason,
			link.CreatedAt,
		)
		if err != nil {
			return helper.NewError("exec", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return helper.NewError("commit", err)
	}

	return nil
}

// SelectLink retrieves a link by ID
func (h *LinksDBHandler) SelectLink(id uuid.UUID) (*model.Link, error) {
	row := h.db.Instance.QueryRow(
		`SELECT * FROM select_link($1)`,
		id,
	)

	link := &model.Link{}
	err := row.Scan(
		&link.ID,
		&link.SourceID,
		&link.TargetID,
		&link.Strength,
		&link.Reason,
		&link.CreatedAt,
	)
	if err != nil {
		return nil, helper.NewError("scan", err)
	}

	return link, nil
}

// SelectLinksFromNote retrieves all links originating at a note
func (h *LinksDBHandler) SelectLinksFromNote(sourceID uuid.UUID) ([]*model.Link, error) {
	rows, err := h.db.Instance.Query(
		`SELECT * FROM select_links_from_note($1)`,
		sourceID,
	)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var links []*model.Link
	for rows.Next() {
		link := &model.Link{}
		err := rows.Scan(
			&link.ID,
			&link.SourceID,
			&link.TargetID,
			&link.Strength,
			&link.Reason,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows", err)
	}

	return links, nil
}

// SelectAllLinks retrieves all links ordered by creation time
func (h *LinksDBHandler) SelectAllLinks() ([]*model.Link, error) {
	rows, err := h.db.Instance.Query(`SELECT * FROM select_all_links()`)
	if err != nil {
		return nil, helper.NewError("query", err)
	}
	defer rows.Close()

	var links []*model.Link
	for rows.Next() {
		link := &model.Link{}
		err := rows.Scan(
			&link.ID,
			&link.SourceID,
			&link.TargetID,
			&link.Strength,
			&link.Reason,
			&link.CreatedAt,
		)
		if err != nil {
			return nil, helper.NewError("scan", err)
		}
		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, helper.NewError("rows", err)
	}

	return links, nil
}

// DeleteLink deletes a single link
func (h *LinksDBHandler) DeleteLink(id uuid.UUID) error {
	_, err := h.db.Instance.Exec(
		`SELECT delete_link($1)`,
		id,
	)
	if err != nil {
		return helper.NewError("exec", err)
	}

	return nil
}
