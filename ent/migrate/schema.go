// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AgentExecutionsColumns holds the columns for the "agent_executions" table.
	AgentExecutionsColumns = []*schema.Column{
		{Name: "execution_id", Type: field.TypeString, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "agent_role", Type: field.TypeString},
		{Name: "query_type", Type: field.TypeString, Nullable: true},
		{Name: "tokens_in", Type: field.TypeInt, Default: 0},
		{Name: "cache_hit", Type: field.TypeBool, Default: false},
		{Name: "duration_ms", Type: field.TypeInt, Default: 0},
		{Name: "tools_used", Type: field.TypeJSON, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AgentExecutionsTable holds the schema information for the "agent_executions" table.
	AgentExecutionsTable = &schema.Table{
		Name:       "agent_executions",
		Columns:    AgentExecutionsColumns,
		PrimaryKey: []*schema.Column{AgentExecutionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "agentexecution_session_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[1], AgentExecutionsColumns[9]},
			},
			{
				Name:    "agentexecution_agent_role",
				Unique:  false,
				Columns: []*schema.Column{AgentExecutionsColumns[2]},
			},
		},
	}
	// ChunksColumns holds the columns for the "chunks" table.
	ChunksColumns = []*schema.Column{
		{Name: "chunk_id", Type: field.TypeString, Unique: true},
		{Name: "order_index", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "token_count", Type: field.TypeInt},
		{Name: "embedding", Type: field.TypeOther, SchemaType: map[string]string{"postgres": "vector(1536)"}},
		{Name: "document_id", Type: field.TypeString},
	}
	// ChunksTable holds the schema information for the "chunks" table.
	ChunksTable = &schema.Table{
		Name:       "chunks",
		Columns:    ChunksColumns,
		PrimaryKey: []*schema.Column{ChunksColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "chunks_documents_chunks",
				Columns:    []*schema.Column{ChunksColumns[5]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "chunk_document_id_order_index",
				Unique:  true,
				Columns: []*schema.Column{ChunksColumns[5], ChunksColumns[1]},
			},
		},
	}
	// ConversationsColumns holds the columns for the "conversations" table.
	ConversationsColumns = []*schema.Column{
		{Name: "conversation_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "agent_role", Type: field.TypeString, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "closed"}, Default: "active"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ConversationsTable holds the schema information for the "conversations" table.
	ConversationsTable = &schema.Table{
		Name:       "conversations",
		Columns:    ConversationsColumns,
		PrimaryKey: []*schema.Column{ConversationsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "conversation_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ConversationsColumns[3], ConversationsColumns[5]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "document_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "title", Type: field.TypeString},
		{Name: "folder_path", Type: field.TypeString, Default: ""},
		{Name: "mime_kind", Type: field.TypeEnum, Enums: []string{"doc", "pdf", "sheet"}},
		{Name: "full_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "is_context_file", Type: field.TypeBool, Default: false},
		{Name: "token_count", Type: field.TypeInt, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"synced", "failed"}, Default: "synced"},
		{Name: "last_synced_at", Type: field.TypeTime, Nullable: true},
		{Name: "sync_error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_is_context_file",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[6]},
			},
			{
				Name:    "document_folder_path",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[3]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "assistant", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "agent_role", Type: field.TypeString, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt, Nullable: true},
		{Name: "tokens", Type: field.TypeInt, Nullable: true},
		{Name: "cache_hit", Type: field.TypeBool, Nullable: true},
		{Name: "query_type", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "conversation_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_conversations_messages",
				Columns:    []*schema.Column{MessagesColumns[9]},
				RefColumns: []*schema.Column{ConversationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_conversation_id_created_at_message_id",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[9], MessagesColumns[8], MessagesColumns[0]},
			},
		},
	}
	// SolarkSamplesColumns holds the columns for the "solark_samples" table.
	SolarkSamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plant_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "soc", Type: field.TypeFloat64},
		{Name: "battery_power", Type: field.TypeFloat64},
		{Name: "battery_voltage", Type: field.TypeFloat64},
		{Name: "battery_current", Type: field.TypeFloat64},
		{Name: "pv_power", Type: field.TypeFloat64},
		{Name: "load_power", Type: field.TypeFloat64},
		{Name: "grid_power", Type: field.TypeFloat64},
		{Name: "pv_to_load", Type: field.TypeBool, Default: false},
		{Name: "pv_to_bat", Type: field.TypeBool, Default: false},
		{Name: "bat_to_load", Type: field.TypeBool, Default: false},
		{Name: "grid_to_load", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// SolarkSamplesTable holds the schema information for the "solark_samples" table.
	SolarkSamplesTable = &schema.Table{
		Name:       "solark_samples",
		Columns:    SolarkSamplesColumns,
		PrimaryKey: []*schema.Column{SolarkSamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "solarksample_timestamp",
				Unique:  true,
				Columns: []*schema.Column{SolarkSamplesColumns[2]},
			},
		},
	}
	// SyncLogsColumns holds the columns for the "sync_logs" table.
	SyncLogsColumns = []*schema.Column{
		{Name: "sync_log_id", Type: field.TypeString, Unique: true},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "completed_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"running", "completed", "failed"}, Default: "running"},
		{Name: "processed", Type: field.TypeInt, Default: 0},
		{Name: "updated", Type: field.TypeInt, Default: 0},
		{Name: "deleted", Type: field.TypeInt, Default: 0},
		{Name: "failed", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// SyncLogsTable holds the schema information for the "sync_logs" table.
	SyncLogsTable = &schema.Table{
		Name:       "sync_logs",
		Columns:    SyncLogsColumns,
		PrimaryKey: []*schema.Column{SyncLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "synclog_started_at",
				Unique:  false,
				Columns: []*schema.Column{SyncLogsColumns[1]},
			},
		},
	}
	// VictronSamplesColumns holds the columns for the "victron_samples" table.
	VictronSamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "plant_id", Type: field.TypeString, Nullable: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "soc", Type: field.TypeFloat64},
		{Name: "battery_power", Type: field.TypeFloat64},
		{Name: "battery_voltage", Type: field.TypeFloat64},
		{Name: "battery_current", Type: field.TypeFloat64},
		{Name: "pv_power", Type: field.TypeFloat64},
		{Name: "load_power", Type: field.TypeFloat64},
		{Name: "grid_power", Type: field.TypeFloat64},
		{Name: "pv_to_load", Type: field.TypeBool, Default: false},
		{Name: "pv_to_bat", Type: field.TypeBool, Default: false},
		{Name: "bat_to_load", Type: field.TypeBool, Default: false},
		{Name: "grid_to_load", Type: field.TypeBool, Default: false},
		{Name: "created_at", Type: field.TypeTime},
	}
	// VictronSamplesTable holds the schema information for the "victron_samples" table.
	VictronSamplesTable = &schema.Table{
		Name:       "victron_samples",
		Columns:    VictronSamplesColumns,
		PrimaryKey: []*schema.Column{VictronSamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "victronsample_timestamp",
				Unique:  true,
				Columns: []*schema.Column{VictronSamplesColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AgentExecutionsTable,
		ChunksTable,
		ConversationsTable,
		DocumentsTable,
		MessagesTable,
		SolarkSamplesTable,
		SyncLogsTable,
		VictronSamplesTable,
	}
)

func init() {
	ChunksTable.ForeignKeys[0].RefTable = DocumentsTable
	MessagesTable.ForeignKeys[0].RefTable = ConversationsTable
}
