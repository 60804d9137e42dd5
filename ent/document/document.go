// Code generated by ent, DO NOT EDIT.

package document

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the document type in the database.
	Label = "document"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "document_id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFolderPath holds the string denoting the folder_path field in the database.
	FieldFolderPath = "folder_path"
	// FieldMimeKind holds the string denoting the mime_kind field in the database.
	FieldMimeKind = "mime_kind"
	// FieldFullText holds the string denoting the full_text field in the database.
	FieldFullText = "full_text"
	// FieldIsContextFile holds the string denoting the is_context_file field in the database.
	FieldIsContextFile = "is_context_file"
	// FieldTokenCount holds the string denoting the token_count field in the database.
	FieldTokenCount = "token_count"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldLastSyncedAt holds the string denoting the last_synced_at field in the database.
	FieldLastSyncedAt = "last_synced_at"
	// FieldSyncError holds the string denoting the sync_error field in the database.
	FieldSyncError = "sync_error"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeChunks holds the string denoting the chunks edge name in mutations.
	EdgeChunks = "chunks"
	// ChunkFieldID holds the string denoting the ID field of the Chunk.
	ChunkFieldID = "chunk_id"
	// Table holds the table name of the document in the database.
	Table = "documents"
	// ChunksTable is the table that holds the chunks relation/edge.
	ChunksTable = "chunks"
	// ChunksInverseTable is the table name for the Chunk entity.
	// It exists in this package in order to avoid circular dependency with the "chunk" package.
	ChunksInverseTable = "chunks"
	// ChunksColumn is the table column denoting the chunks relation/edge.
	ChunksColumn = "document_id"
)

// Columns holds all SQL columns for document fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldTitle,
	FieldFolderPath,
	FieldMimeKind,
	FieldFullText,
	FieldIsContextFile,
	FieldTokenCount,
	FieldStatus,
	FieldLastSyncedAt,
	FieldSyncError,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultFolderPath holds the default value on creation for the "folder_path" field.
	DefaultFolderPath string
	// DefaultFullText holds the default value on creation for the "full_text" field.
	DefaultFullText string
	// DefaultIsContextFile holds the default value on creation for the "is_context_file" field.
	DefaultIsContextFile bool
	// DefaultTokenCount holds the default value on creation for the "token_count" field.
	DefaultTokenCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// MimeKind defines the type for the "mime_kind" enum field.
type MimeKind string

// MimeKind values.
const (
	MimeKindDoc   MimeKind = "doc"
	MimeKindPdf   MimeKind = "pdf"
	MimeKindSheet MimeKind = "sheet"
)

func (mk MimeKind) String() string {
	return string(mk)
}

// MimeKindValidator is a validator for the "mime_kind" field enum values. It is called by the builders before save.
func MimeKindValidator(mk MimeKind) error {
	switch mk {
	case MimeKindDoc, MimeKindPdf, MimeKindSheet:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for mime_kind field: %q", mk)
	}
}

// Status defines the type for the "status" enum field.
type Status string

// StatusSynced is the default value of the Status enum.
const DefaultStatus = StatusSynced

// Status values.
const (
	StatusSynced Status = "synced"
	StatusFailed Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSynced, StatusFailed:
		return nil
	default:
		return fmt.Errorf("document: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the Document queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFolderPath orders the results by the folder_path field.
func ByFolderPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFolderPath, opts...).ToFunc()
}

// ByMimeKind orders the results by the mime_kind field.
func ByMimeKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMimeKind, opts...).ToFunc()
}

// ByFullText orders the results by the full_text field.
func ByFullText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullText, opts...).ToFunc()
}

// ByIsContextFile orders the results by the is_context_file field.
func ByIsContextFile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsContextFile, opts...).ToFunc()
}

// ByTokenCount orders the results by the token_count field.
func ByTokenCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTokenCount, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByLastSyncedAt orders the results by the last_synced_at field.
func ByLastSyncedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSyncedAt, opts...).ToFunc()
}

// BySyncError orders the results by the sync_error field.
func BySyncError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncError, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByChunksCount orders the results by chunks count.
func ByChunksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newChunksStep(), opts...)
	}
}

// ByChunks orders the results by chunks terms.
func ByChunks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newChunksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newChunksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ChunksInverseTable, ChunkFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ChunksTable, ChunksColumn),
	)
}
