// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/offgrid-ops/commandcenter/ent/agentexecution"
	"github.com/offgrid-ops/commandcenter/ent/conversation"
	"github.com/offgrid-ops/commandcenter/ent/document"
	"github.com/offgrid-ops/commandcenter/ent/message"
	"github.com/offgrid-ops/commandcenter/ent/schema"
	"github.com/offgrid-ops/commandcenter/ent/solarksample"
	"github.com/offgrid-ops/commandcenter/ent/synclog"
	"github.com/offgrid-ops/commandcenter/ent/victronsample"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentexecutionFields := schema.AgentExecution{}.Fields()
	_ = agentexecutionFields
	// agentexecutionDescTokensIn is the schema descriptor for tokens_in field.
	agentexecutionDescTokensIn := agentexecutionFields[4].Descriptor()
	// agentexecution.DefaultTokensIn holds the default value on creation for the tokens_in field.
	agentexecution.DefaultTokensIn = agentexecutionDescTokensIn.Default.(int)
	// agentexecutionDescCacheHit is the schema descriptor for cache_hit field.
	agentexecutionDescCacheHit := agentexecutionFields[5].Descriptor()
	// agentexecution.DefaultCacheHit holds the default value on creation for the cache_hit field.
	agentexecution.DefaultCacheHit = agentexecutionDescCacheHit.Default.(bool)
	// agentexecutionDescDurationMs is the schema descriptor for duration_ms field.
	agentexecutionDescDurationMs := agentexecutionFields[6].Descriptor()
	// agentexecution.DefaultDurationMs holds the default value on creation for the duration_ms field.
	agentexecution.DefaultDurationMs = agentexecutionDescDurationMs.Default.(int)
	// agentexecutionDescCreatedAt is the schema descriptor for created_at field.
	agentexecutionDescCreatedAt := agentexecutionFields[9].Descriptor()
	// agentexecution.DefaultCreatedAt holds the default value on creation for the created_at field.
	agentexecution.DefaultCreatedAt = agentexecutionDescCreatedAt.Default.(func() time.Time)
	conversationFields := schema.Conversation{}.Fields()
	_ = conversationFields
	// conversationDescCreatedAt is the schema descriptor for created_at field.
	conversationDescCreatedAt := conversationFields[4].Descriptor()
	// conversation.DefaultCreatedAt holds the default value on creation for the created_at field.
	conversation.DefaultCreatedAt = conversationDescCreatedAt.Default.(func() time.Time)
	// conversationDescUpdatedAt is the schema descriptor for updated_at field.
	conversationDescUpdatedAt := conversationFields[5].Descriptor()
	// conversation.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	conversation.DefaultUpdatedAt = conversationDescUpdatedAt.Default.(func() time.Time)
	documentFields := schema.Document{}.Fields()
	_ = documentFields
	// documentDescFolderPath is the schema descriptor for folder_path field.
	documentDescFolderPath := documentFields[3].Descriptor()
	// document.DefaultFolderPath holds the default value on creation for the folder_path field.
	document.DefaultFolderPath = documentDescFolderPath.Default.(string)
	// documentDescFullText is the schema descriptor for full_text field.
	documentDescFullText := documentFields[5].Descriptor()
	// document.DefaultFullText holds the default value on creation for the full_text field.
	document.DefaultFullText = documentDescFullText.Default.(string)
	// documentDescIsContextFile is the schema descriptor for is_context_file field.
	documentDescIsContextFile := documentFields[6].Descriptor()
	// document.DefaultIsContextFile holds the default value on creation for the is_context_file field.
	document.DefaultIsContextFile = documentDescIsContextFile.Default.(bool)
	// documentDescTokenCount is the schema descriptor for token_count field.
	documentDescTokenCount := documentFields[7].Descriptor()
	// document.DefaultTokenCount holds the default value on creation for the token_count field.
	document.DefaultTokenCount = documentDescTokenCount.Default.(int)
	// documentDescCreatedAt is the schema descriptor for created_at field.
	documentDescCreatedAt := documentFields[11].Descriptor()
	// document.DefaultCreatedAt holds the default value on creation for the created_at field.
	document.DefaultCreatedAt = documentDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[9].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	solarksampleFields := schema.SolarkSample{}.Fields()
	_ = solarksampleFields
	// solarksampleDescPvToLoad is the schema descriptor for pv_to_load field.
	solarksampleDescPvToLoad := solarksampleFields[9].Descriptor()
	// solarksample.DefaultPvToLoad holds the default value on creation for the pv_to_load field.
	solarksample.DefaultPvToLoad = solarksampleDescPvToLoad.Default.(bool)
	// solarksampleDescPvToBat is the schema descriptor for pv_to_bat field.
	solarksampleDescPvToBat := solarksampleFields[10].Descriptor()
	// solarksample.DefaultPvToBat holds the default value on creation for the pv_to_bat field.
	solarksample.DefaultPvToBat = solarksampleDescPvToBat.Default.(bool)
	// solarksampleDescBatToLoad is the schema descriptor for bat_to_load field.
	solarksampleDescBatToLoad := solarksampleFields[11].Descriptor()
	// solarksample.DefaultBatToLoad holds the default value on creation for the bat_to_load field.
	solarksample.DefaultBatToLoad = solarksampleDescBatToLoad.Default.(bool)
	// solarksampleDescGridToLoad is the schema descriptor for grid_to_load field.
	solarksampleDescGridToLoad := solarksampleFields[12].Descriptor()
	// solarksample.DefaultGridToLoad holds the default value on creation for the grid_to_load field.
	solarksample.DefaultGridToLoad = solarksampleDescGridToLoad.Default.(bool)
	// solarksampleDescCreatedAt is the schema descriptor for created_at field.
	solarksampleDescCreatedAt := solarksampleFields[13].Descriptor()
	// solarksample.DefaultCreatedAt holds the default value on creation for the created_at field.
	solarksample.DefaultCreatedAt = solarksampleDescCreatedAt.Default.(func() time.Time)
	synclogFields := schema.SyncLog{}.Fields()
	_ = synclogFields
	// synclogDescStartedAt is the schema descriptor for started_at field.
	synclogDescStartedAt := synclogFields[1].Descriptor()
	// synclog.DefaultStartedAt holds the default value on creation for the started_at field.
	synclog.DefaultStartedAt = synclogDescStartedAt.Default.(func() time.Time)
	// synclogDescProcessed is the schema descriptor for processed field.
	synclogDescProcessed := synclogFields[4].Descriptor()
	// synclog.DefaultProcessed holds the default value on creation for the processed field.
	synclog.DefaultProcessed = synclogDescProcessed.Default.(int)
	// synclogDescUpdated is the schema descriptor for updated field.
	synclogDescUpdated := synclogFields[5].Descriptor()
	// synclog.DefaultUpdated holds the default value on creation for the updated field.
	synclog.DefaultUpdated = synclogDescUpdated.Default.(int)
	// synclogDescDeleted is the schema descriptor for deleted field.
	synclogDescDeleted := synclogFields[6].Descriptor()
	// synclog.DefaultDeleted holds the default value on creation for the deleted field.
	synclog.DefaultDeleted = synclogDescDeleted.Default.(int)
	// synclogDescFailed is the schema descriptor for failed field.
	synclogDescFailed := synclogFields[7].Descriptor()
	// synclog.DefaultFailed holds the default value on creation for the failed field.
	synclog.DefaultFailed = synclogDescFailed.Default.(int)
	victronsampleFields := schema.VictronSample{}.Fields()
	_ = victronsampleFields
	// victronsampleDescPvToLoad is the schema descriptor for pv_to_load field.
	victronsampleDescPvToLoad := victronsampleFields[9].Descriptor()
	// victronsample.DefaultPvToLoad holds the default value on creation for the pv_to_load field.
	victronsample.DefaultPvToLoad = victronsampleDescPvToLoad.Default.(bool)
	// victronsampleDescPvToBat is the schema descriptor for pv_to_bat field.
	victronsampleDescPvToBat := victronsampleFields[10].Descriptor()
	// victronsample.DefaultPvToBat holds the default value on creation for the pv_to_bat field.
	victronsample.DefaultPvToBat = victronsampleDescPvToBat.Default.(bool)
	// victronsampleDescBatToLoad is the schema descriptor for bat_to_load field.
	victronsampleDescBatToLoad := victronsampleFields[11].Descriptor()
	// victronsample.DefaultBatToLoad holds the default value on creation for the bat_to_load field.
	victronsample.DefaultBatToLoad = victronsampleDescBatToLoad.Default.(bool)
	// victronsampleDescGridToLoad is the schema descriptor for grid_to_load field.
	victronsampleDescGridToLoad := victronsampleFields[12].Descriptor()
	// victronsample.DefaultGridToLoad holds the default value on creation for the grid_to_load field.
	victronsample.DefaultGridToLoad = victronsampleDescGridToLoad.Default.(bool)
	// victronsampleDescCreatedAt is the schema descriptor for created_at field.
	victronsampleDescCreatedAt := victronsampleFields[13].Descriptor()
	// victronsample.DefaultCreatedAt holds the default value on creation for the created_at field.
	victronsample.DefaultCreatedAt = victronsampleDescCreatedAt.Default.(func() time.Time)
}
