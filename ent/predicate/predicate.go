// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AgentExecution is the predicate function for agentexecution builders.
type AgentExecution func(*sql.Selector)

// Chunk is the predicate function for chunk builders.
type Chunk func(*sql.Selector)

// Conversation is the predicate function for conversation builders.
type Conversation func(*sql.Selector)

// Document is the predicate function for document builders.
type Document func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// SolarkSample is the predicate function for solarksample builders.
type SolarkSample func(*sql.Selector)

// SyncLog is the predicate function for synclog builders.
type SyncLog func(*sql.Selector)

// VictronSample is the predicate function for victronsample builders.
type VictronSample func(*sql.Selector)
