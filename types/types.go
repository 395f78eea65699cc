package types

// AppType specifies app type.
type AppType string

// Watcher AppType enums.
const (
	Watcher AppType = "watch"
)

// SysVar specifies the system variables.
type SysVar string

// SysVarSchemaVersion SysVar enums.
const (
	SysVarSchemaVersion SysVar = "schema_version"
)

// SchemaVersion is the value stored under SysVarSchemaVersion.
const SchemaVersion = "1"

// TableName specifies table name.
type TableName string

const (
	HolderSnapshot TableName = "HolderSnapshot"
)
