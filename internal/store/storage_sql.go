// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/models"
	sq "github.com/Masterminds/squirrel"
)

type sqlStorage struct {
	db     *DB
	logger *logger.Logger
}

// NewSQLStorage returns a [MessageStorage] backed by db.
func NewSQLStorage(db *DB, logger *logger.Logger) MessageStorage {
	logger.Debug().Str("dialect", db.dialect).Msg("creating sql message storage")
	return &sqlStorage{
		db:     db,
		logger: logger,
	}
}

func (s *sqlStorage) CreateUser(ctx context.Context, name string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertUserQuery(s.db.builder, name)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	user := models.User{Name: name}
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		log.Err(err).Str("func", "*sqlStorage.CreateUser").Msg("error inserting user")
		return models.User{}, s.db.classify(err)
	}

	return user, nil
}

func (s *sqlStorage) ListUsers(ctx context.Context) ([]models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUsersQuery(s.db.builder)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStorage.ListUsers").Msg("error selecting users")
		return nil, s.db.classify(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		var u models.User
		if err = rows.Scan(&u.ID, &u.Name); err != nil {
			log.Err(err).Str("func", "*sqlStorage.ListUsers").Msg("error scanning user")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		users = append(users, u)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return users, nil
}

func (s *sqlStorage) GetUser(ctx context.Context, userID int64) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectUserQuery(s.db.builder, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var u models.User
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&u.ID, &u.Name)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqlStorage.GetUser").Msg("error selecting user")
		return models.User{}, s.db.classify(err)
	}

	return u, nil
}

func (s *sqlStorage) CreateMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertMessageQuery(s.db.builder, msg)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&msg.ID); err != nil {
		log.Err(err).Str("func", "*sqlStorage.CreateMessage").Msg("error inserting message")
		return models.Message{}, s.db.classify(err)
	}

	return msg.WithTimestamp(), nil
}

func (s *sqlStorage) ListMessages(ctx context.Context) ([]models.Message, error) {
	return s.selectMessages(ctx, nil)
}

func (s *sqlStorage) ListInbox(ctx context.Context, userID int64) ([]models.Message, error) {
	return s.selectMessages(ctx, sq.Eq{"to_id": userID})
}

func (s *sqlStorage) selectMessages(ctx context.Context, where sq.Sqlizer) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMessagesQuery(s.db.builder, where)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlStorage.selectMessages").Msg("error selecting messages")
		return nil, s.db.classify(err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		m, err := scanMessage(rows)
		if err != nil {
			log.Err(err).Str("func", "*sqlStorage.selectMessages").Msg("error scanning message")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		messages = append(messages, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}

func (s *sqlStorage) GetMessage(ctx context.Context, messageID int64) (models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectMessagesQuery(s.db.builder, sq.Eq{"id": messageID})
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	m, err := scanMessage(s.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Message{}, ErrMessageNotFound
	case err != nil:
		log.Err(err).Str("func", "*sqlStorage.GetMessage").Msg("error selecting message")
		return models.Message{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return m, nil
}

func (s *sqlStorage) UpdateMessage(ctx context.Context, req models.UpdateMessageRequest) (models.Message, error) {
	query, args, err := buildUpdateMessageQuery(s.db.builder, req)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.execAffectingMessage(ctx, "*sqlStorage.UpdateMessage", query, args); err != nil {
		return models.Message{}, err
	}

	return s.GetMessage(ctx, req.ID)
}

func (s *sqlStorage) MarkRead(ctx context.Context, messageID int64) (models.Message, error) {
	query, args, err := buildMarkReadQuery(s.db.builder, messageID)
	if err != nil {
		return models.Message{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.execAffectingMessage(ctx, "*sqlStorage.MarkRead", query, args); err != nil {
		return models.Message{}, err
	}

	return s.GetMessage(ctx, messageID)
}

func (s *sqlStorage) DeleteMessage(ctx context.Context, messageID int64) error {
	query, args, err := buildDeleteMessageQuery(s.db.builder, messageID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.execAffectingMessage(ctx, "*sqlStorage.DeleteMessage", query, args)
}

// execAffectingMessage runs a statement that must touch exactly one
// message row and reports [ErrMessageNotFound] when it touched none.
func (s *sqlStorage) execAffectingMessage(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing statement")
		return s.db.classify(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrMessageNotFound
	}

	return nil
}

func (s *sqlStorage) Counts(ctx context.Context) (int, int, error) {
	users, err := s.count(ctx, usersTable)
	if err != nil {
		return 0, 0, err
	}

	messages, err := s.count(ctx, messagesTable)
	if err != nil {
		return 0, 0, err
	}

	return users, messages, nil
}

func (s *sqlStorage) count(ctx context.Context, table string) (int, error) {
	query, args, err := buildCountQuery(s.db.builder, table)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var n int
	if err = s.db.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*sqlStorage.count").Str("table", table).Msg("error counting rows")
		return 0, s.db.classify(err)
	}

	return n, nil
}

func (s *sqlStorage) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMessage(row rowScanner) (models.Message, error) {
	var m models.Message
	err := row.Scan(&m.ID, &m.Text, &m.FromID, &m.ToID, &m.FromName, &m.ToName, &m.IsRead, &m.CreatedAt)
	if err != nil {
		return models.Message{}, err
	}

	return m.WithTimestamp(), nil
}
