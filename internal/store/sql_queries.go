package store

import (
	"github.com/MKhiriev/go-messenger/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	usersTable    = "users"
	messagesTable = "messages"
)

var (
	userColumns    = []string{"id", "name"}
	messageColumns = []string{"id", "text", "from_id", "to_id", "from_name", "to_name", "is_read", "created_at"}
)

func buildInsertUserQuery(b sq.StatementBuilderType, name string) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUsersQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		OrderBy("id ASC").
		ToSql()
}

func buildSelectUserQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertMessageQuery(b sq.StatementBuilderType, msg models.Message) (string, []any, error) {
	return b.Insert(messagesTable).
		Columns("text", "from_id", "to_id", "from_name", "to_name", "is_read", "created_at").
		Values(msg.Text, msg.FromID, msg.ToID, msg.FromName, msg.ToName, msg.IsRead, msg.CreatedAt).
		Suffix("RETURNING id").
		ToSql()
}

// buildSelectMessagesQuery selects messages ordered by id; a nil where
// selects all of them.
func buildSelectMessagesQuery(b sq.StatementBuilderType, where sq.Sqlizer) (string, []any, error) {
	query := b.Select(messageColumns...).From(messagesTable)
	if where != nil {
		query = query.Where(where)
	}

	return query.OrderBy("id ASC").ToSql()
}

func buildUpdateMessageQuery(b sq.StatementBuilderType, req models.UpdateMessageRequest) (string, []any, error) {
	query := b.Update(messagesTable).Set("is_read", req.IsRead)
	if req.Text != "" {
		query = query.Set("text", req.Text)
	}

	return query.Where(sq.Eq{"id": req.ID}).ToSql()
}

func buildMarkReadQuery(b sq.StatementBuilderType, messageID int64) (string, []any, error) {
	return b.Update(messagesTable).
		Set("is_read", true).
		Where(sq.Eq{"id": messageID}).
		ToSql()
}

func buildDeleteMessageQuery(b sq.StatementBuilderType, messageID int64) (string, []any, error) {
	return b.Delete(messagesTable).
		Where(sq.Eq{"id": messageID}).
		ToSql()
}

func buildCountQuery(b sq.StatementBuilderType, table string) (string, []any, error) {
	return b.Select("COUNT(*)").From(table).ToSql()
}
